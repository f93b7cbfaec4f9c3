package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/Derezo/accounting-api/internal/core/domain"
	portsrepo "github.com/Derezo/accounting-api/internal/core/ports/repositories"
	portssvc "github.com/Derezo/accounting-api/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

// journalService exposes transaction validation and business transaction compilation.
type journalService struct {
	BaseService
	registry  *TemplateRegistry
	validator *JournalValidator
	compiler  *TemplateCompiler
	anomalies *AnomalyDetector
}

// ServiceOption is a functional option for configuring the journal service
type ServiceOption func(*journalService)

// WithClock sets the time source used for future-date warnings and default transaction dates.
func WithClock(now func() time.Time) ServiceOption {
	return func(s *journalService) {
		s.anomalies.now = now
		s.compiler.now = now
	}
}

// WithLargeAmountThreshold overrides the amount above which a warning is emitted.
func WithLargeAmountThreshold(threshold decimal.Decimal) ServiceOption {
	return func(s *journalService) {
		s.anomalies.largeAmountThreshold = threshold
	}
}

// WithFutureDateWindow overrides how far in the future a transaction may be dated without a warning.
func WithFutureDateWindow(window time.Duration) ServiceOption {
	return func(s *journalService) {
		s.anomalies.futureDateWindow = window
	}
}

// NewJournalService creates a new JournalService. A nil registry selects DefaultTemplateRegistry.
func NewJournalService(directory portsrepo.AccountDirectory, registry *TemplateRegistry, options ...ServiceOption) portssvc.JournalSvcFacade {
	if registry == nil {
		registry = DefaultTemplateRegistry()
	}
	anomalies := NewAnomalyDetector()
	svc := &journalService{
		registry:  registry,
		validator: NewJournalValidator(directory, anomalies),
		compiler:  NewTemplateCompiler(registry, directory),
		anomalies: anomalies,
	}

	for _, option := range options {
		option(svc)
	}

	return svc
}

// Ensure journalService implements the portssvc.JournalSvcFacade interface
var _ portssvc.JournalSvcFacade = (*journalService)(nil)

// ValidateTransactionRequest implements portssvc.TransactionValidatorSvc.
func (s *journalService) ValidateTransactionRequest(ctx context.Context, req domain.TransactionRequest) (*domain.ValidationReport, error) {
	return s.validator.ValidateTransactionRequest(ctx, req)
}

// CreateBusinessTransaction implements portssvc.BusinessTransactionSvc.
func (s *journalService) CreateBusinessTransaction(ctx context.Context, organizationID string, transactionType string, data map[string]any, userID string) (*domain.TransactionRequest, error) {
	req, err := s.compiler.Compile(ctx, organizationID, transactionType, data, userID)
	if err != nil {
		return nil, err
	}
	s.LogInfo(ctx, "Business transaction created",
		slog.String("organization_id", organizationID),
		slog.String("transaction_type", transactionType),
		slog.Int("entries", len(req.Entries)))
	return req, nil
}

// GetAvailableTransactionTypes implements portssvc.BusinessTransactionSvc.
func (s *journalService) GetAvailableTransactionTypes() []domain.TransactionTypeInfo {
	return s.registry.List()
}
