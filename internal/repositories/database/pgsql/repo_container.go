package pgsql

import (
	"time"

	portsrepo "github.com/Derezo/accounting-api/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool, queryTimeout time.Duration) *portsrepo.RepositoryProvider {
	return &portsrepo.RepositoryProvider{
		AccountDirectory: newPgxAccountRepository(dbPool, queryTimeout),
	}
}
