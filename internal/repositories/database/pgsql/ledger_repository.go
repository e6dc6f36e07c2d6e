package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/prodbooks/mfg_ledger/internal/apperrors"
	"github.com/prodbooks/mfg_ledger/internal/core/domain"
	portsrepo "github.com/prodbooks/mfg_ledger/internal/core/ports/repositories"
	"github.com/prodbooks/mfg_ledger/internal/models"
	"github.com/prodbooks/mfg_ledger/internal/utils/mapping"
)

type PgxLedgerRepository struct {
	pool *pgxpool.Pool
}

// newPgxLedgerRepository creates a new repository for ledger data.
func newPgxLedgerRepository(pool *pgxpool.Pool) portsrepo.LedgerRepositoryFacade {
	return &PgxLedgerRepository{pool: pool}
}

var _ portsrepo.LedgerRepositoryFacade = (*PgxLedgerRepository)(nil)

// SaveLedgerTransactionInTx persists a ledger transaction and its entries
// within the caller's transaction. Entries go in via a batch.
func (r *PgxLedgerRepository) SaveLedgerTransactionInTx(ctx context.Context, tx pgx.Tx, txn domain.LedgerTransaction, entries []domain.LedgerEntry) error {
	m := mapping.ToModelLedgerTransaction(txn)
	headerQuery := `
		INSERT INTO ledger_transactions (ledger_transaction_id, tenant_id, transaction_date, description, reference_type, reference_id, status, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	_, err := tx.Exec(ctx, headerQuery,
		m.LedgerTransactionID,
		m.TenantID,
		m.TransactionDate,
		m.Description,
		m.ReferenceType,
		m.ReferenceID,
		m.Status,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: ledger transaction %s already exists", apperrors.ErrDuplicate, m.LedgerTransactionID)
		}
		return fmt.Errorf("failed to insert ledger transaction %s: %w", m.LedgerTransactionID, err)
	}

	entryQuery := `
		INSERT INTO ledger_entries (entry_id, ledger_transaction_id, account_id, amount, entry_type, memo)
		VALUES ($1, $2, $3, $4, $5, $6);
	`
	batch := &pgx.Batch{}
	for _, entry := range entries {
		em := mapping.ToModelLedgerEntry(entry)
		batch.Queue(entryQuery,
			em.EntryID,
			em.LedgerTransactionID,
			em.AccountID,
			em.Amount,
			em.EntryType,
			em.Memo,
		)
	}
	br := tx.SendBatch(ctx, batch)
	for range entries {
		if _, err := br.Exec(); err != nil {
			br.Close()
			return fmt.Errorf("failed to insert ledger entry: %w", err)
		}
	}
	if err := br.Close(); err != nil {
		return fmt.Errorf("failed to close ledger entry batch: %w", err)
	}

	return nil
}

// MarkLedgerTransactionVoidedInTx flips a posted transaction to VOIDED.
func (r *PgxLedgerRepository) MarkLedgerTransactionVoidedInTx(ctx context.Context, tx pgx.Tx, tenantID, ledgerTransactionID, userID string, now time.Time) error {
	query := `
		UPDATE ledger_transactions
		SET status = $1, last_updated_at = $2, last_updated_by = $3
		WHERE tenant_id = $4 AND ledger_transaction_id = $5 AND status = $6;
	`
	cmdTag, err := tx.Exec(ctx, query, models.LedgerVoided, now, userID, tenantID, ledgerTransactionID, models.LedgerPosted)
	if err != nil {
		return fmt.Errorf("failed to void ledger transaction %s: %w", ledgerTransactionID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("%w: posted ledger transaction %s", apperrors.ErrNotFound, ledgerTransactionID)
	}
	return nil
}

// FindLedgerTransactionByID retrieves a ledger transaction with its entries,
// scoped to the tenant.
func (r *PgxLedgerRepository) FindLedgerTransactionByID(ctx context.Context, tenantID, ledgerTransactionID string) (*domain.LedgerTransaction, error) {
	headerQuery := `
		SELECT ledger_transaction_id, tenant_id, transaction_date, description, reference_type, reference_id, status, created_at, created_by, last_updated_at, last_updated_by
		FROM ledger_transactions
		WHERE tenant_id = $1 AND ledger_transaction_id = $2;
	`

	var m models.LedgerTransaction
	err := r.pool.QueryRow(ctx, headerQuery, tenantID, ledgerTransactionID).Scan(
		&m.LedgerTransactionID,
		&m.TenantID,
		&m.TransactionDate,
		&m.Description,
		&m.ReferenceType,
		&m.ReferenceID,
		&m.Status,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: ledger transaction %s", apperrors.ErrNotFound, ledgerTransactionID)
		}
		return nil, fmt.Errorf("failed to query ledger transaction %s: %w", ledgerTransactionID, err)
	}
	txn := mapping.ToDomainLedgerTransaction(m)

	entryQuery := `
		SELECT entry_id, ledger_transaction_id, account_id, amount, entry_type, memo
		FROM ledger_entries
		WHERE ledger_transaction_id = $1
		ORDER BY entry_type, account_id;
	`
	rows, err := r.pool.Query(ctx, entryQuery, ledgerTransactionID)
	if err != nil {
		return nil, fmt.Errorf("failed to query ledger entries for %s: %w", ledgerTransactionID, err)
	}
	defer rows.Close()

	for rows.Next() {
		var em models.LedgerEntry
		if err := rows.Scan(&em.EntryID, &em.LedgerTransactionID, &em.AccountID, &em.Amount, &em.EntryType, &em.Memo); err != nil {
			return nil, fmt.Errorf("failed to scan ledger entry: %w", err)
		}
		txn.Entries = append(txn.Entries, mapping.ToDomainLedgerEntry(em))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating ledger entries: %w", err)
	}

	return &txn, nil
}
