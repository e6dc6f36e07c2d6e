package services

import (
	"context"
	"fmt"

	"github.com/prodbooks/mfg_ledger/internal/core/domain"
	portsrepo "github.com/prodbooks/mfg_ledger/internal/core/ports/repositories"
	portssvc "github.com/prodbooks/mfg_ledger/internal/core/ports/services"
	"github.com/prodbooks/mfg_ledger/internal/dto"
)

// inventoryService exposes read access to inventory balances. All mutations
// go through the build orchestrator.
type inventoryService struct {
	inventoryRepo portsrepo.InventoryRepositoryFacade
}

// NewInventoryService creates a new inventory read service.
func NewInventoryService(inventoryRepo portsrepo.InventoryRepositoryFacade) portssvc.InventorySvcFacade {
	return &inventoryService{inventoryRepo: inventoryRepo}
}

var _ portssvc.InventorySvcFacade = (*inventoryService)(nil)

// GetItemByProduct retrieves the inventory item for a product. Implements
// portssvc.InventorySvcFacade.
func (s *inventoryService) GetItemByProduct(ctx context.Context, tenantID, productID string) (*domain.InventoryItem, error) {
	item, err := s.inventoryRepo.FindItemByProductID(ctx, tenantID, productID)
	if err != nil {
		return nil, fmt.Errorf("failed to find inventory item for product %s: %w", productID, err)
	}
	return item, nil
}

// ListItems retrieves inventory items for a tenant. Implements
// portssvc.InventorySvcFacade.
func (s *inventoryService) ListItems(ctx context.Context, tenantID string, params dto.ListInventoryParams) ([]domain.InventoryItem, error) {
	limit := params.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}
	offset := params.Offset
	if offset < 0 {
		offset = 0
	}
	return s.inventoryRepo.ListItemsByTenant(ctx, tenantID, limit, offset)
}
