package services

import (
	"context"
	"log/slog"

	"github.com/Derezo/accounting-api/internal/core/domain"
	portsrepo "github.com/Derezo/accounting-api/internal/core/ports/repositories"
)

// ResolvedAccounts is the outcome of resolving a set of account IDs for one organization.
type ResolvedAccounts struct {
	Found      []domain.Account
	MissingIDs []string // In first-seen order
}

// ByID indexes the found accounts by account ID.
func (r *ResolvedAccounts) ByID() map[string]domain.Account {
	m := make(map[string]domain.Account, len(r.Found))
	for _, acc := range r.Found {
		m[acc.AccountID] = acc
	}
	return m
}

// AccountResolver looks up the accounts referenced by a transaction.
type AccountResolver struct {
	BaseService
	directory portsrepo.AccountDirectory
}

// NewAccountResolver creates a new AccountResolver.
func NewAccountResolver(directory portsrepo.AccountDirectory) *AccountResolver {
	return &AccountResolver{directory: directory}
}

// Resolve fetches the active accounts of organizationID among accountIDs. IDs that do not
// exist, belong to another organization, are inactive or deleted are all reported as missing.
func (r *AccountResolver) Resolve(ctx context.Context, organizationID string, accountIDs []string) (*ResolvedAccounts, error) {
	uniqueIDs := uniqueStrings(accountIDs)
	result := &ResolvedAccounts{Found: []domain.Account{}, MissingIDs: []string{}}
	if len(uniqueIDs) == 0 {
		return result, nil
	}

	accounts, err := r.directory.FindAccounts(ctx, organizationID, portsrepo.AccountFilter{IDs: uniqueIDs})
	if err != nil {
		r.LogError(ctx, err, "Failed to fetch accounts from directory", slog.String("organization_id", organizationID))
		return nil, err
	}

	found := make(map[string]domain.Account, len(accounts))
	for _, acc := range accounts {
		if !isUsable(acc, organizationID) {
			r.LogWarn(ctx, "Directory returned an account outside the active tenant scope",
				slog.String("organization_id", organizationID),
				slog.String("account_id", acc.AccountID),
				slog.String("account_organization_id", acc.OrganizationID))
			continue
		}
		found[acc.AccountID] = acc
	}

	for _, id := range uniqueIDs {
		acc, ok := found[id]
		if !ok {
			result.MissingIDs = append(result.MissingIDs, id)
			continue
		}
		result.Found = append(result.Found, acc)
	}

	r.LogDebug(ctx, "Accounts resolved",
		slog.Int("requested", len(uniqueIDs)),
		slog.Int("found", len(result.Found)),
		slog.Int("missing", len(result.MissingIDs)))
	return result, nil
}

func isUsable(acc domain.Account, organizationID string) bool {
	return acc.OrganizationID == organizationID && acc.IsActive && acc.DeletedAt == nil
}

// uniqueStrings returns a slice containing only the unique strings from the input.
func uniqueStrings(input []string) []string {
	seen := make(map[string]struct{}, len(input))
	result := make([]string, 0, len(input))
	for _, str := range input {
		if _, ok := seen[str]; !ok {
			seen[str] = struct{}{}
			result = append(result, str)
		}
	}
	return result
}
