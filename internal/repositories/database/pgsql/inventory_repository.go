package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/prodbooks/mfg_ledger/internal/apperrors"
	"github.com/prodbooks/mfg_ledger/internal/core/domain"
	portsrepo "github.com/prodbooks/mfg_ledger/internal/core/ports/repositories"
	"github.com/prodbooks/mfg_ledger/internal/models"
	"github.com/prodbooks/mfg_ledger/internal/utils/mapping"
)

// pgLockNotAvailable is the SQLSTATE raised by FOR UPDATE NOWAIT when the
// row is already locked.
const pgLockNotAvailable = "55P03"

type PgxInventoryRepository struct {
	pool *pgxpool.Pool
}

// newPgxInventoryRepository creates a new repository for inventory data.
func newPgxInventoryRepository(pool *pgxpool.Pool) portsrepo.InventoryRepositoryFacade {
	return &PgxInventoryRepository{pool: pool}
}

var _ portsrepo.InventoryRepositoryFacade = (*PgxInventoryRepository)(nil)

const inventoryColumns = `item_id, tenant_id, product_id, quantity_on_hand, quantity_available, total_value, average_cost, created_at, created_by, last_updated_at, last_updated_by`

func scanInventoryItem(row pgx.Row) (models.InventoryItem, error) {
	var m models.InventoryItem
	err := row.Scan(
		&m.ItemID,
		&m.TenantID,
		&m.ProductID,
		&m.QuantityOnHand,
		&m.QuantityAvailable,
		&m.TotalValue,
		&m.AverageCost,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// FindItemByProductID retrieves the inventory item for a product, scoped to
// the tenant.
func (r *PgxInventoryRepository) FindItemByProductID(ctx context.Context, tenantID, productID string) (*domain.InventoryItem, error) {
	query := `SELECT ` + inventoryColumns + ` FROM inventory_items WHERE tenant_id = $1 AND product_id = $2;`

	m, err := scanInventoryItem(r.pool.QueryRow(ctx, query, tenantID, productID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: inventory item for product %s", apperrors.ErrNotFound, productID)
		}
		return nil, fmt.Errorf("failed to query inventory item for product %s: %w", productID, err)
	}

	item := mapping.ToDomainInventoryItem(m)
	return &item, nil
}

// ListItemsByTenant retrieves inventory items for a tenant.
func (r *PgxInventoryRepository) ListItemsByTenant(ctx context.Context, tenantID string, limit, offset int) ([]domain.InventoryItem, error) {
	query := `SELECT ` + inventoryColumns + ` FROM inventory_items WHERE tenant_id = $1 ORDER BY product_id LIMIT $2 OFFSET $3;`

	rows, err := r.pool.Query(ctx, query, tenantID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list inventory items: %w", err)
	}
	defer rows.Close()

	var items []domain.InventoryItem
	for rows.Next() {
		m, err := scanInventoryItem(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan inventory item row: %w", err)
		}
		items = append(items, mapping.ToDomainInventoryItem(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating inventory item rows: %w", err)
	}

	return items, nil
}

// FindItemsByProductIDsForUpdate selects items and locks their rows. NOWAIT
// turns lock contention into an immediate error instead of a queue, so a
// concurrent build over the same components fails fast.
func (r *PgxInventoryRepository) FindItemsByProductIDsForUpdate(ctx context.Context, tx pgx.Tx, tenantID string, productIDs []string) (map[string]domain.InventoryItem, error) {
	result := make(map[string]domain.InventoryItem, len(productIDs))
	if len(productIDs) == 0 {
		return result, nil
	}

	query := `SELECT ` + inventoryColumns + ` FROM inventory_items WHERE tenant_id = $1 AND product_id = ANY($2) FOR UPDATE NOWAIT;`

	rows, err := tx.Query(ctx, query, tenantID, productIDs)
	if err != nil {
		return nil, mapLockError(err)
	}
	defer rows.Close()

	for rows.Next() {
		m, err := scanInventoryItem(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan locked inventory item: %w", err)
		}
		result[m.ProductID] = mapping.ToDomainInventoryItem(m)
	}
	if err := rows.Err(); err != nil {
		return nil, mapLockError(err)
	}

	return result, nil
}

// SetItemBalancesInTx writes new absolute balances for a locked item.
func (r *PgxInventoryRepository) SetItemBalancesInTx(ctx context.Context, tx pgx.Tx, itemID string, onHand, available, totalValue, averageCost decimal.Decimal, userID string, now time.Time) error {
	query := `
		UPDATE inventory_items
		SET quantity_on_hand = $1, quantity_available = $2, total_value = $3, average_cost = $4, last_updated_at = $5, last_updated_by = $6
		WHERE item_id = $7;
	`
	cmdTag, err := tx.Exec(ctx, query, onHand, available, totalValue, averageCost, now, userID, itemID)
	if err != nil {
		return fmt.Errorf("failed to update balances for inventory item %s: %w", itemID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("%w: inventory item %s", apperrors.ErrNotFound, itemID)
	}
	return nil
}

// CreateItemInTx inserts the item row created by a first receipt.
func (r *PgxInventoryRepository) CreateItemInTx(ctx context.Context, tx pgx.Tx, item domain.InventoryItem) error {
	m := mapping.ToModelInventoryItem(item)
	query := `
		INSERT INTO inventory_items (item_id, tenant_id, product_id, quantity_on_hand, quantity_available, total_value, average_cost, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	_, err := tx.Exec(ctx, query,
		m.ItemID,
		m.TenantID,
		m.ProductID,
		m.QuantityOnHand,
		m.QuantityAvailable,
		m.TotalValue,
		m.AverageCost,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: inventory item for product %s already exists", apperrors.ErrDuplicate, m.ProductID)
		}
		return fmt.Errorf("failed to insert inventory item for product %s: %w", m.ProductID, err)
	}
	return nil
}

// mapLockError surfaces NOWAIT lock contention as a concurrency conflict.
func mapLockError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgLockNotAvailable {
		return fmt.Errorf("%w: inventory rows locked by a concurrent build", apperrors.ErrConcurrencyConflict)
	}
	return fmt.Errorf("failed to lock inventory items: %w", err)
}
