package dto

import (
	"fmt"
	"strings"
	"time"

	"github.com/Derezo/accounting-api/internal/apperrors"
	"github.com/Derezo/accounting-api/internal/core/domain"
	"github.com/shopspring/decimal"
)

// JournalEntryRequest is one debit or credit line of a transaction request.
// Field rules are enforced by the validation pipeline so all problems land in the report.
type JournalEntryRequest struct {
	AccountID     string           `json:"accountID"`
	Direction     domain.Direction `json:"direction" enums:"DEBIT,CREDIT"`
	Amount        decimal.Decimal  `json:"amount" swaggertype:"string" example:"100.00"`
	Description   string           `json:"description"`
	ReferenceType string           `json:"referenceType,omitempty"`
	ReferenceID   string           `json:"referenceID,omitempty"`
}

// ValidateTransactionRequest is the body of the validate endpoint.
// The organization comes from the path and the user from the token.
type ValidateTransactionRequest struct {
	Date        string                `json:"date" example:"2025-06-15"` // RFC3339 or YYYY-MM-DD
	Description string                `json:"description"`
	Entries     []JournalEntryRequest `json:"entries"`
}

// ToDomain builds the domain request. Only an unparseable date is rejected here;
// an empty date is passed through as zero so the pipeline reports it.
func (r ValidateTransactionRequest) ToDomain(organizationID, userID string) (domain.TransactionRequest, error) {
	date, err := ParseDate(r.Date)
	if err != nil {
		return domain.TransactionRequest{}, err
	}

	entries := make([]domain.JournalEntry, len(r.Entries))
	for i, e := range r.Entries {
		entries[i] = domain.JournalEntry{
			AccountID:     e.AccountID,
			Direction:     e.Direction,
			Amount:        e.Amount,
			Description:   e.Description,
			ReferenceType: e.ReferenceType,
			ReferenceID:   e.ReferenceID,
		}
	}

	return domain.TransactionRequest{
		OrganizationID: organizationID,
		Date:           date,
		Description:    r.Description,
		Entries:        entries,
		UserID:         userID,
	}, nil
}

// ParseDate accepts an RFC3339 timestamp or a YYYY-MM-DD date. An empty string yields the zero time.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.DateOnly, s); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("%w: date %q must be an RFC3339 timestamp or YYYY-MM-DD date", apperrors.ErrValidation, s)
}

// BusinessTransactionRequest names a business transaction type and supplies its fields.
type BusinessTransactionRequest struct {
	TransactionType string         `json:"transactionType" binding:"required" example:"CASH_SALE"`
	Data            map[string]any `json:"data" binding:"required"`
}

// ValidationReportResponse is the outcome of validating a transaction request.
type ValidationReportResponse struct {
	IsValid  bool     `json:"isValid"`
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
}

// ToValidationReportResponse converts a domain.ValidationReport to its DTO.
// Nil slices are rendered as empty JSON arrays.
func ToValidationReportResponse(r *domain.ValidationReport) ValidationReportResponse {
	resp := ValidationReportResponse{IsValid: r.IsValid, Errors: r.Errors, Warnings: r.Warnings}
	if resp.Errors == nil {
		resp.Errors = []string{}
	}
	if resp.Warnings == nil {
		resp.Warnings = []string{}
	}
	return resp
}

// TransactionResponse mirrors a compiled domain.TransactionRequest.
type TransactionResponse struct {
	OrganizationID string                `json:"organizationID"`
	Date           time.Time             `json:"date"`
	Description    string                `json:"description"`
	Entries        []JournalEntryRequest `json:"entries"`
	UserID         string                `json:"userID"`
}

// ToTransactionResponse converts a domain.TransactionRequest to TransactionResponse DTO.
func ToTransactionResponse(req *domain.TransactionRequest) TransactionResponse {
	entries := make([]JournalEntryRequest, len(req.Entries))
	for i, e := range req.Entries {
		entries[i] = JournalEntryRequest{
			AccountID:     e.AccountID,
			Direction:     e.Direction,
			Amount:        e.Amount,
			Description:   e.Description,
			ReferenceType: e.ReferenceType,
			ReferenceID:   e.ReferenceID,
		}
	}
	return TransactionResponse{
		OrganizationID: req.OrganizationID,
		Date:           req.Date,
		Description:    req.Description,
		Entries:        entries,
		UserID:         req.UserID,
	}
}

// BusinessTransactionResponse carries a compiled transaction and its validation report.
type BusinessTransactionResponse struct {
	Transaction TransactionResponse      `json:"transaction"`
	Validation  ValidationReportResponse `json:"validation"`
}

// TransactionTypeResponse describes one registered business transaction type.
type TransactionTypeResponse struct {
	Type           string   `json:"type"`
	Name           string   `json:"name"`
	Description    string   `json:"description"`
	RequiredFields []string `json:"requiredFields"`
}

// ListTransactionTypesResponse wraps the catalog of business transaction types.
type ListTransactionTypesResponse struct {
	TransactionTypes []TransactionTypeResponse `json:"transactionTypes"`
}

// ToListTransactionTypesResponse converts domain.TransactionTypeInfo values to their DTO.
func ToListTransactionTypesResponse(infos []domain.TransactionTypeInfo) ListTransactionTypesResponse {
	types := make([]TransactionTypeResponse, len(infos))
	for i, info := range infos {
		types[i] = TransactionTypeResponse{
			Type:           info.Type,
			Name:           info.Name,
			Description:    info.Description,
			RequiredFields: info.RequiredFields,
		}
	}
	return ListTransactionTypesResponse{TransactionTypes: types}
}
