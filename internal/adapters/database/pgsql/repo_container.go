package pgsql

import (
	portsrepo "github.com/SscSPs/gateway_client/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		CallbackRepo: NewPgxCallbackRepository(dbPool),
	}
}
