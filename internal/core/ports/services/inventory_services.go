package services

import (
	"context"

	"github.com/prodbooks/mfg_ledger/internal/core/domain"
	"github.com/prodbooks/mfg_ledger/internal/dto"
)

// InventorySvcFacade exposes read access to inventory balances. Mutations
// happen only inside the build orchestrator's atomic scope.
type InventorySvcFacade interface {
	// GetItemByProduct retrieves the inventory item for a product.
	GetItemByProduct(ctx context.Context, tenantID, productID string) (*domain.InventoryItem, error)

	// ListItems retrieves inventory items for a tenant.
	ListItems(ctx context.Context, tenantID string, params dto.ListInventoryParams) ([]domain.InventoryItem, error)
}
