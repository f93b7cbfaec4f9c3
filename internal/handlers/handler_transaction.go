package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/Derezo/accounting-api/internal/apperrors"
	portssvc "github.com/Derezo/accounting-api/internal/core/ports/services"
	"github.com/Derezo/accounting-api/internal/dto"
	"github.com/Derezo/accounting-api/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// transactionHandler handles HTTP requests for transaction validation and business transactions.
type transactionHandler struct {
	journalService portssvc.JournalSvcFacade
}

// newTransactionHandler creates a new transactionHandler.
func newTransactionHandler(js portssvc.JournalSvcFacade) *transactionHandler {
	return &transactionHandler{
		journalService: js,
	}
}

// RegisterTransactionRoutes registers routes related to transactions.
// rg is expected to carry the authentication middleware.
func RegisterTransactionRoutes(rg *gin.RouterGroup, journalService portssvc.JournalSvcFacade) {
	h := newTransactionHandler(journalService)

	rg.GET("/transaction-types", h.listTransactionTypes)

	transactions := rg.Group("/organizations/:organizationID/transactions")
	{
		transactions.POST("/validate", h.validateTransaction)
		transactions.POST("/business", h.createBusinessTransaction)
	}
}

// organizationIDParam reads and checks the organization path parameter, writing a 400 when it is invalid.
func organizationIDParam(c *gin.Context, logger *slog.Logger) (string, bool) {
	organizationID := c.Param("organizationID")
	if _, err := uuid.Parse(organizationID); err != nil {
		logger.Warn("Invalid organization ID in path", slog.String("organization_id", organizationID))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid organization ID format"})
		return "", false
	}
	return organizationID, true
}

// validateTransaction godoc
// @Summary Validate a transaction request
// @Description Runs the double-entry validation pipeline: structure, account resolution, balance and anomaly warnings.
// @Description An invalid transaction still returns 200; inspect isValid and errors in the report.
// @Tags transactions
// @Accept  json
// @Produce  json
// @Param   organizationID path string true "Organization ID"
// @Param   transaction body dto.ValidateTransactionRequest true "Transaction to validate"
// @Success 200 {object} dto.ValidationReportResponse
// @Failure 400 {object} map[string]string "Invalid input format"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 429 {object} map[string]string "Too many requests"
// @Failure 500 {object} map[string]string "Failed to validate transaction"
// @Security BearerAuth
// @Router /organizations/{organizationID}/transactions/validate [post]
func (h *transactionHandler) validateTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	organizationID, ok := organizationIDParam(c, logger)
	if !ok {
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req dto.ValidateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for ValidateTransaction", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	txnReq, err := req.ToDomain(organizationID, userID)
	if err != nil {
		logger.Warn("Invalid transaction date", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	logger = logger.With(slog.String("organization_id", organizationID))
	logger.Info("Received request to validate transaction", slog.Int("entries", len(txnReq.Entries)))

	report, err := h.journalService.ValidateTransactionRequest(c.Request.Context(), txnReq)
	if err != nil {
		logger.Error("Failed to validate transaction in service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to validate transaction"})
		return
	}

	c.JSON(http.StatusOK, dto.ToValidationReportResponse(report))
}

// createBusinessTransaction godoc
// @Summary Compile a business transaction
// @Description Builds the journal entries for a named business event (e.g. CASH_SALE) from the organization's chart of accounts
// @Description and validates the result. Nothing is persisted.
// @Tags transactions
// @Accept  json
// @Produce  json
// @Param   organizationID path string true "Organization ID"
// @Param   transaction body dto.BusinessTransactionRequest true "Transaction type and data"
// @Success 200 {object} dto.BusinessTransactionResponse
// @Failure 400 {object} map[string]string "Invalid input format"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 422 {object} map[string]string "Unknown transaction type, missing data or unresolvable account role"
// @Failure 429 {object} map[string]string "Too many requests"
// @Failure 500 {object} map[string]string "Failed to create business transaction"
// @Security BearerAuth
// @Router /organizations/{organizationID}/transactions/business [post]
func (h *transactionHandler) createBusinessTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	organizationID, ok := organizationIDParam(c, logger)
	if !ok {
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req dto.BusinessTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateBusinessTransaction", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	logger = logger.With(slog.String("organization_id", organizationID), slog.String("transaction_type", req.TransactionType))
	logger.Info("Received request to create business transaction")

	txnReq, err := h.journalService.CreateBusinessTransaction(c.Request.Context(), organizationID, req.TransactionType, req.Data, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrTemplateResolution) {
			logger.Warn("Business transaction could not be compiled", slog.String("error", err.Error()))
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to create business transaction in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create business transaction"})
		}
		return
	}

	report, err := h.journalService.ValidateTransactionRequest(c.Request.Context(), *txnReq)
	if err != nil {
		logger.Error("Failed to validate business transaction in service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create business transaction"})
		return
	}

	c.JSON(http.StatusOK, dto.BusinessTransactionResponse{
		Transaction: dto.ToTransactionResponse(txnReq),
		Validation:  dto.ToValidationReportResponse(report),
	})
}

// listTransactionTypes godoc
// @Summary List business transaction types
// @Description Lists every business transaction template with the data fields it requires
// @Tags transactions
// @Produce  json
// @Success 200 {object} dto.ListTransactionTypesResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Security BearerAuth
// @Router /transaction-types [get]
func (h *transactionHandler) listTransactionTypes(c *gin.Context) {
	c.JSON(http.StatusOK, dto.ToListTransactionTypesResponse(h.journalService.GetAvailableTransactionTypes()))
}
