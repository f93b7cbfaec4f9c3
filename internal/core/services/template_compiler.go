package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/Derezo/accounting-api/internal/apperrors"
	"github.com/Derezo/accounting-api/internal/core/domain"
	portsrepo "github.com/Derezo/accounting-api/internal/core/ports/repositories"
	"github.com/shopspring/decimal"
)

const (
	descriptionPlaceholder = "{{description}}"
	referenceIDField       = "referenceId"
	dateField              = "date"
)

// ErrUnknownTransactionType is returned when no template is registered for a type.
var ErrUnknownTransactionType = fmt.Errorf("%w: unknown transaction type", apperrors.ErrTemplateResolution)

// roleKey identifies one account lookup within a compile call.
type roleKey struct {
	role     domain.AccountRole
	pinnedID string
}

// TemplateCompiler turns a named business transaction plus caller data into a TransactionRequest.
type TemplateCompiler struct {
	BaseService
	registry  *TemplateRegistry
	directory portsrepo.AccountDirectory
	now       func() time.Time
}

// NewTemplateCompiler creates a new TemplateCompiler.
func NewTemplateCompiler(registry *TemplateRegistry, directory portsrepo.AccountDirectory) *TemplateCompiler {
	return &TemplateCompiler{registry: registry, directory: directory, now: time.Now}
}

// Compile resolves every account role of the transactionType template for organizationID and
// builds the entries from data. The returned request has not been validated.
func (c *TemplateCompiler) Compile(ctx context.Context, organizationID, transactionType string, data map[string]any, userID string) (*domain.TransactionRequest, error) {
	logger := c.GetLogger(ctx).With(
		slog.String("organization_id", organizationID),
		slog.String("transaction_type", transactionType))

	tpl, ok := c.registry.Lookup(transactionType)
	if !ok {
		logger.Warn("Unknown business transaction type")
		return nil, fmt.Errorf("%w: %q", ErrUnknownTransactionType, transactionType)
	}

	date, err := transactionDate(data, c.now)
	if err != nil {
		return nil, err
	}

	description, err := stringField(data, descriptionField)
	if err != nil {
		return nil, err
	}
	referenceID, err := stringField(data, referenceIDField)
	if err != nil {
		return nil, err
	}

	// Amounts are checked before any directory query.
	amounts := make([]decimal.Decimal, len(tpl.EntryTemplates))
	for i, et := range tpl.EntryTemplates {
		if amounts[i], err = amountFromData(data, et.AmountField); err != nil {
			return nil, err
		}
	}

	resolved := make(map[roleKey]domain.Account, len(tpl.EntryTemplates))
	entries := make([]domain.JournalEntry, 0, len(tpl.EntryTemplates))

	for i, et := range tpl.EntryTemplates {
		pinnedID, err := stringField(data, et.AccountField)
		if err != nil {
			return nil, err
		}
		key := roleKey{role: et.Role, pinnedID: pinnedID}
		acc, cached := resolved[key]
		if !cached {
			acc, err = c.resolveRole(ctx, organizationID, key)
			if err != nil {
				logger.Warn("Failed to resolve account role", slog.String("account_type", string(et.Role.Type)), slog.String("error", err.Error()))
				return nil, err
			}
			resolved[key] = acc
		}

		entries = append(entries, domain.JournalEntry{
			AccountID:     acc.AccountID,
			Direction:     et.Direction,
			Amount:        amounts[i],
			Description:   renderDescription(et.DescriptionTemplate, description, tpl.Name),
			ReferenceType: transactionType,
			ReferenceID:   referenceID,
		})
	}

	if description == "" {
		description = tpl.Name
	}

	logger.Debug("Business transaction compiled", slog.Int("entries", len(entries)), slog.Int("roles", len(resolved)))
	return &domain.TransactionRequest{
		OrganizationID: organizationID,
		Date:           date,
		Description:    description,
		Entries:        entries,
		UserID:         userID,
	}, nil
}

// resolveRole finds the single account serving key. No match and several matches are both fatal.
func (c *TemplateCompiler) resolveRole(ctx context.Context, organizationID string, key roleKey) (domain.Account, error) {
	filter := portsrepo.AccountFilter{Type: key.role.Type, NameContains: key.role.NameHint}
	if key.pinnedID != "" {
		filter = portsrepo.AccountFilter{Type: key.role.Type, IDs: []string{key.pinnedID}}
	}

	accounts, err := c.directory.FindAccounts(ctx, organizationID, filter)
	if err != nil {
		c.LogError(ctx, err, "Failed to query account directory for template role", slog.String("organization_id", organizationID))
		return domain.Account{}, fmt.Errorf("%w: failed to resolve account role %s: %w", apperrors.ErrInternal, describeRole(key), err)
	}

	switch len(accounts) {
	case 0:
		return domain.Account{}, fmt.Errorf("%w: no active account found for role %s", apperrors.ErrTemplateResolution, describeRole(key))
	case 1:
		return accounts[0], nil
	default:
		labels := make([]string, len(accounts))
		for i, acc := range accounts {
			labels[i] = acc.Label()
		}
		return domain.Account{}, fmt.Errorf("%w: role %s matches %d accounts (%s)",
			apperrors.ErrAmbiguousAccountRole, describeRole(key), len(accounts), strings.Join(labels, ", "))
	}
}

func describeRole(key roleKey) string {
	switch {
	case key.pinnedID != "":
		return fmt.Sprintf("%s account %s", key.role.Type, key.pinnedID)
	case key.role.NameHint != "":
		return fmt.Sprintf("%s account named like %q", key.role.Type, key.role.NameHint)
	default:
		return fmt.Sprintf("%s account", key.role.Type)
	}
}

func renderDescription(tpl, description, fallback string) string {
	rendered := strings.TrimSpace(strings.ReplaceAll(tpl, descriptionPlaceholder, description))
	rendered = strings.TrimSpace(strings.TrimSuffix(rendered, "-"))
	if rendered == "" {
		return fallback
	}
	return rendered
}

// stringField reads data[field] as text. Strings, JSON numbers, integers, floats and
// Stringers are accepted; an absent field yields "".
func stringField(data map[string]any, field string) (string, error) {
	if field == "" {
		return "", nil
	}
	var s string
	switch v := data[field].(type) {
	case nil:
		return "", nil
	case string:
		s = v
	case json.Number:
		s = v.String()
	case int:
		s = strconv.Itoa(v)
	case int64:
		s = strconv.FormatInt(v, 10)
	case int32:
		s = strconv.FormatInt(int64(v), 10)
	case float64:
		s = strconv.FormatFloat(v, 'f', -1, 64)
	case fmt.Stringer:
		s = v.String()
	default:
		return "", fmt.Errorf("%w: field %q must be a string or number", apperrors.ErrTemplateResolution, field)
	}
	return strings.TrimSpace(s), nil
}

// amountFromData reads a positive amount from data[field]. JSON numbers, Go numbers,
// decimals and numeric strings are accepted.
func amountFromData(data map[string]any, field string) (decimal.Decimal, error) {
	raw, ok := data[field]
	if !ok || raw == nil {
		return decimal.Zero, fmt.Errorf("%w: field %q is required", apperrors.ErrTemplateResolution, field)
	}

	var amount decimal.Decimal
	var err error
	switch v := raw.(type) {
	case decimal.Decimal:
		amount = v
	case float64:
		amount = decimal.NewFromFloat(v)
	case float32:
		amount = decimal.NewFromFloat32(v)
	case int:
		amount = decimal.NewFromInt(int64(v))
	case int64:
		amount = decimal.NewFromInt(v)
	case int32:
		amount = decimal.NewFromInt32(v)
	case json.Number:
		amount, err = decimal.NewFromString(v.String())
	case string:
		amount, err = decimal.NewFromString(strings.TrimSpace(v))
	default:
		err = fmt.Errorf("unsupported type %T", raw)
	}
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: field %q must be a number", apperrors.ErrTemplateResolution, field)
	}
	if !amount.IsPositive() {
		return decimal.Zero, fmt.Errorf("%w: field %q must be a positive number", apperrors.ErrTemplateResolution, field)
	}
	return amount, nil
}

// transactionDate reads data["date"] as a time.Time, RFC3339 or YYYY-MM-DD string,
// defaulting to the current UTC day.
func transactionDate(data map[string]any, now func() time.Time) (time.Time, error) {
	switch v := data[dateField].(type) {
	case nil:
		return now().UTC().Truncate(24 * time.Hour), nil
	case time.Time:
		return v, nil
	case string:
		if t, err := time.Parse(time.RFC3339, v); err == nil {
			return t, nil
		}
		if t, err := time.Parse(time.DateOnly, v); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: field %q must be an RFC3339 timestamp or YYYY-MM-DD date", apperrors.ErrTemplateResolution, dateField)
}
