package pgsql

import (
	"context"
	"errors"
	"fmt"
	"hash/fnv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/prodbooks/mfg_ledger/internal/core/ports/repositories"
)

// BaseRepository provides common functionality for all repositories
type BaseRepository struct {
	Pool *pgxpool.Pool
}

var _ portsrepo.TransactionManager = (*BaseRepository)(nil)

// Begin starts a new database transaction
func (r *BaseRepository) Begin(ctx context.Context) (pgx.Tx, error) {
	tx, err := r.Pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	return tx, nil
}

// Commit commits a transaction
func (r *BaseRepository) Commit(ctx context.Context, tx pgx.Tx) error {
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// Rollback rolls back a transaction. Calling it after a successful commit is
// a no-op.
func (r *BaseRepository) Rollback(ctx context.Context, tx pgx.Tx) error {
	if err := tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		return fmt.Errorf("failed to rollback transaction: %w", err)
	}
	return nil
}

// AcquireTenantPostingLock takes a transaction-scoped advisory lock keyed on
// the tenant. Posting within a tenant is serialized; the lock releases
// automatically at commit or rollback.
func (r *BaseRepository) AcquireTenantPostingLock(ctx context.Context, tx pgx.Tx, tenantID string) error {
	if _, err := tx.Exec(ctx, `SELECT pg_advisory_xact_lock($1)`, tenantLockKey(tenantID)); err != nil {
		return fmt.Errorf("failed to acquire posting lock for tenant %s: %w", tenantID, err)
	}
	return nil
}

// tenantLockKey hashes a tenant ID into the bigint keyspace of the advisory
// lock functions.
func tenantLockKey(tenantID string) int64 {
	h := fnv.New64a()
	h.Write([]byte(tenantID))
	return int64(h.Sum64())
}
