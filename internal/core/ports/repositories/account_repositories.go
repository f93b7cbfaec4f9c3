package repositories

import (
	"context"

	"github.com/Derezo/accounting-api/internal/core/domain"
)

// AccountFilter narrows an account directory lookup. Zero-valued fields are ignored.
type AccountFilter struct {
	IDs          []string           // Match any of these account IDs
	Type         domain.AccountType // Match this account type
	NameContains string             // Case-insensitive substring of the account name
}

// AccountDirectory is the read-only source of truth for accounts.
type AccountDirectory interface {
	// FindAccounts returns the active, non-deleted accounts of organizationID matching filter.
	FindAccounts(ctx context.Context, organizationID string, filter AccountFilter) ([]domain.Account, error)
}
