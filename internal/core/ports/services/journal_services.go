package services

import (
	"context"

	"github.com/Derezo/accounting-api/internal/core/domain"
)

// TransactionValidatorSvc validates proposed transactions against the double-entry rules.
type TransactionValidatorSvc interface {
	// ValidateTransactionRequest runs the full validation pipeline. Business-rule violations are
	// reported in the ValidationReport; only directory failures are returned as errors.
	ValidateTransactionRequest(ctx context.Context, req domain.TransactionRequest) (*domain.ValidationReport, error)
}

// BusinessTransactionSvc compiles named business events into transaction requests.
type BusinessTransactionSvc interface {
	// CreateBusinessTransaction compiles transactionType into a TransactionRequest. The result is not validated.
	CreateBusinessTransaction(ctx context.Context, organizationID string, transactionType string, data map[string]any, userID string) (*domain.TransactionRequest, error)

	// GetAvailableTransactionTypes lists every registered template.
	GetAvailableTransactionTypes() []domain.TransactionTypeInfo
}

// JournalSvcFacade combines all journal-related service interfaces
// This is a facade for clients that need access to all operations
type JournalSvcFacade interface {
	TransactionValidatorSvc
	BusinessTransactionSvc
}
