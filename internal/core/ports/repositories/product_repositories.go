package repositories

import (
	"context"

	"github.com/prodbooks/mfg_ledger/internal/core/domain"
)

// ProductReader defines read operations for catalog products. Products are
// owned by the external catalog service; this engine only reads them for
// existence, ownership and classification checks.
type ProductReader interface {
	// FindProductByID retrieves a product scoped to the tenant.
	FindProductByID(ctx context.Context, tenantID, productID string) (*domain.Product, error)

	// FindProductsByIDs retrieves multiple products scoped to the tenant,
	// keyed by product ID. Missing products are simply absent from the map.
	FindProductsByIDs(ctx context.Context, tenantID string, productIDs []string) (map[string]domain.Product, error)
}

// ProductRepositoryFacade combines all product repository interfaces.
type ProductRepositoryFacade interface {
	ProductReader
}
