package pgsql

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Derezo/accounting-api/internal/core/domain"
	portsrepo "github.com/Derezo/accounting-api/internal/core/ports/repositories"
	"github.com/Derezo/accounting-api/internal/models"
	"github.com/Derezo/accounting-api/internal/utils/mapping"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

const selectAccountColumns = `
		SELECT account_id, organization_id, code, name, account_type, is_active, deleted_at,
		       created_at, created_by, last_updated_at, last_updated_by
		FROM accounts`

// PgxAccountRepository reads the chart of accounts from PostgreSQL.
type PgxAccountRepository struct {
	BaseRepository
	queryTimeout time.Duration
}

// newPgxAccountRepository creates a new repository for account data.
// A zero queryTimeout leaves the caller's deadline untouched.
func newPgxAccountRepository(pool *pgxpool.Pool, queryTimeout time.Duration) portsrepo.AccountDirectory {
	return &PgxAccountRepository{BaseRepository: BaseRepository{Pool: pool}, queryTimeout: queryTimeout}
}

// Ensure PgxAccountRepository implements portsrepo.AccountDirectory
var _ portsrepo.AccountDirectory = (*PgxAccountRepository)(nil)

// FindAccounts returns the active, non-deleted accounts of organizationID matching filter,
// ordered by code.
func (r *PgxAccountRepository) FindAccounts(ctx context.Context, organizationID string, filter portsrepo.AccountFilter) ([]domain.Account, error) {
	query, args, ok := buildFindAccountsQuery(organizationID, filter)
	if !ok {
		return []domain.Account{}, nil
	}

	if r.queryTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.queryTimeout)
		defer cancel()
	}

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query accounts for organization %s: %w", organizationID, err)
	}
	defer rows.Close()

	var modelAccounts []models.Account
	for rows.Next() {
		var m models.Account
		if err := rows.Scan(
			&m.AccountID,
			&m.OrganizationID,
			&m.Code,
			&m.Name,
			&m.AccountType,
			&m.IsActive,
			&m.DeletedAt,
			&m.CreatedAt,
			&m.CreatedBy,
			&m.LastUpdatedAt,
			&m.LastUpdatedBy,
		); err != nil {
			return nil, fmt.Errorf("failed to scan account row: %w", err)
		}
		modelAccounts = append(modelAccounts, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating account rows for organization %s: %w", organizationID, err)
	}

	return mapping.ToDomainAccountSlice(modelAccounts), nil
}

// buildFindAccountsQuery renders the SQL for filter. It reports false when the filter
// can match no row; IDs that are not UUIDs cannot exist in the accounts table.
func buildFindAccountsQuery(organizationID string, filter portsrepo.AccountFilter) (string, []any, bool) {
	conditions := []string{"organization_id = $1", "is_active", "deleted_at IS NULL"}
	args := []any{organizationID}

	if filter.IDs != nil {
		ids := make([]string, 0, len(filter.IDs))
		for _, id := range filter.IDs {
			if _, err := uuid.Parse(id); err == nil {
				ids = append(ids, id)
			}
		}
		if len(ids) == 0 {
			return "", nil, false
		}
		args = append(args, ids)
		conditions = append(conditions, fmt.Sprintf("account_id = ANY($%d)", len(args)))
	}
	if filter.Type != "" {
		args = append(args, string(filter.Type))
		conditions = append(conditions, fmt.Sprintf("account_type = $%d", len(args)))
	}
	if filter.NameContains != "" {
		args = append(args, escapeLike(filter.NameContains))
		conditions = append(conditions, fmt.Sprintf("name ILIKE '%%' || $%d || '%%'", len(args)))
	}

	query := selectAccountColumns + "\n\t\tWHERE " + strings.Join(conditions, " AND ") + "\n\t\tORDER BY code, account_id;"
	return query, args, true
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
