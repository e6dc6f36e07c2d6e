package repositories

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/prodbooks/mfg_ledger/internal/core/domain"
)

// LedgerReader defines read operations for ledger transactions.
type LedgerReader interface {
	// FindLedgerTransactionByID retrieves a ledger transaction with its
	// entries, scoped to the tenant.
	FindLedgerTransactionByID(ctx context.Context, tenantID, ledgerTransactionID string) (*domain.LedgerTransaction, error)
}

// LedgerWriter defines the write operations performed inside the build
// orchestrator's atomic scope.
type LedgerWriter interface {
	// SaveLedgerTransactionInTx persists a ledger transaction and its entries.
	SaveLedgerTransactionInTx(ctx context.Context, tx pgx.Tx, txn domain.LedgerTransaction, entries []domain.LedgerEntry) error

	// MarkLedgerTransactionVoidedInTx flips a transaction to VOIDED. Entries
	// are retained, never deleted.
	MarkLedgerTransactionVoidedInTx(ctx context.Context, tx pgx.Tx, tenantID, ledgerTransactionID, userID string, now time.Time) error
}

// LedgerRepositoryFacade combines all ledger repository interfaces.
type LedgerRepositoryFacade interface {
	LedgerReader
	LedgerWriter
}
