package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/Derezo/accounting-api/internal/apperrors"
	"github.com/Derezo/accounting-api/internal/core/domain"
	portsrepo "github.com/Derezo/accounting-api/internal/core/ports/repositories"
)

// reportBuilder accumulates errors and warnings across the validation stages.
type reportBuilder struct {
	errors   []string
	causes   []error
	warnings []string
}

func (b *reportBuilder) addErrors(kind error, msgs ...string) {
	for _, msg := range msgs {
		b.errors = append(b.errors, msg)
		b.causes = append(b.causes, &domain.ValidationError{Kind: kind, Message: msg})
	}
}

func (b *reportBuilder) addWarnings(msgs ...string) {
	b.warnings = append(b.warnings, msgs...)
}

func (b *reportBuilder) build() *domain.ValidationReport {
	report := &domain.ValidationReport{
		IsValid:  len(b.errors) == 0,
		Errors:   make([]string, len(b.errors)),
		Warnings: make([]string, len(b.warnings)),
	}
	copy(report.Errors, b.errors)
	copy(report.Warnings, b.warnings)
	if len(b.causes) > 0 {
		report.Causes = append([]error(nil), b.causes...)
	}
	return report
}

// JournalValidator runs the transaction validation pipeline:
// structure, account resolution, balance and anomaly detection.
type JournalValidator struct {
	BaseService
	structural *StructuralValidator
	resolver   *AccountResolver
	anomalies  *AnomalyDetector
}

// NewJournalValidator creates a JournalValidator backed by directory.
func NewJournalValidator(directory portsrepo.AccountDirectory, anomalies *AnomalyDetector) *JournalValidator {
	if anomalies == nil {
		anomalies = NewAnomalyDetector()
	}
	return &JournalValidator{
		structural: NewStructuralValidator(),
		resolver:   NewAccountResolver(directory),
		anomalies:  anomalies,
	}
}

// ValidateTransactionRequest validates req. Structural problems end the pipeline early;
// every other problem is collected so a single call reports all of them.
func (v *JournalValidator) ValidateTransactionRequest(ctx context.Context, req domain.TransactionRequest) (*domain.ValidationReport, error) {
	logger := v.GetLogger(ctx).With(slog.String("organization_id", req.OrganizationID))
	b := &reportBuilder{}

	if problems := v.structural.Validate(req); len(problems) > 0 {
		b.addErrors(apperrors.ErrSchema, problems...)
		logger.Debug("Transaction request rejected by structural check", slog.Int("problems", len(problems)))
		return b.build(), nil
	}

	resolved, err := v.resolver.Resolve(ctx, req.OrganizationID, req.AccountIDs())
	if err != nil {
		return nil, fmt.Errorf("%w: failed to resolve accounts: %w", apperrors.ErrInternal, err)
	}
	if len(resolved.MissingIDs) > 0 {
		b.addErrors(apperrors.ErrAccountResolution, fmt.Sprintf("Invalid or inactive account IDs: %s", strings.Join(resolved.MissingIDs, ", ")))
	}

	if balance := CheckBalance(req.Entries); !balance.Balanced {
		b.addErrors(apperrors.ErrImbalance, balance.Message())
	}

	b.addWarnings(v.anomalies.DetectAnomalies(req.Entries, req.Date, resolved.ByID())...)

	report := b.build()
	logger.Info("Transaction request validated",
		slog.Bool("is_valid", report.IsValid),
		slog.Int("errors", len(report.Errors)),
		slog.Int("warnings", len(report.Warnings)))
	return report, nil
}
