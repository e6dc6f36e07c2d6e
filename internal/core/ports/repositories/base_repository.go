package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"
)

// TransactionManager defines methods for transaction management. The build
// orchestrator uses it to scope one build's reads and writes to a single
// database transaction.
type TransactionManager interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) (pgx.Tx, error)

	// Commit commits a transaction.
	Commit(ctx context.Context, tx pgx.Tx) error

	// Rollback rolls back a transaction. Safe to call after Commit.
	Rollback(ctx context.Context, tx pgx.Tx) error

	// AcquireTenantPostingLock serializes posting per tenant for the duration
	// of the transaction.
	AcquireTenantPostingLock(ctx context.Context, tx pgx.Tx, tenantID string) error
}
