package repositories

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/prodbooks/mfg_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// InventoryReader defines read operations for inventory items.
type InventoryReader interface {
	// FindItemByProductID retrieves the inventory item for a product, scoped
	// to the tenant.
	FindItemByProductID(ctx context.Context, tenantID, productID string) (*domain.InventoryItem, error)

	// ListItemsByTenant retrieves inventory items for a tenant.
	ListItemsByTenant(ctx context.Context, tenantID string, limit, offset int) ([]domain.InventoryItem, error)
}

// InventoryTransactionSupport defines the operations the build orchestrator
// performs on inventory rows inside its atomic scope. Balance arithmetic is
// done by the caller under row locks; these methods only persist it.
type InventoryTransactionSupport interface {
	// FindItemsByProductIDsForUpdate selects items and locks their rows with
	// NOWAIT semantics. A row already locked by a concurrent build surfaces
	// as apperrors.ErrConcurrencyConflict. Products with no item row are
	// absent from the map.
	FindItemsByProductIDsForUpdate(ctx context.Context, tx pgx.Tx, tenantID string, productIDs []string) (map[string]domain.InventoryItem, error)

	// SetItemBalancesInTx writes new absolute balances for a locked item.
	SetItemBalancesInTx(ctx context.Context, tx pgx.Tx, itemID string, onHand, available, totalValue, averageCost decimal.Decimal, userID string, now time.Time) error

	// CreateItemInTx inserts the item row created by a first receipt.
	CreateItemInTx(ctx context.Context, tx pgx.Tx, item domain.InventoryItem) error
}

// InventoryRepositoryFacade combines all inventory repository interfaces.
type InventoryRepositoryFacade interface {
	InventoryReader
	InventoryTransactionSupport
}
