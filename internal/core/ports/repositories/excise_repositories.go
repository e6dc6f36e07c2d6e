package repositories

import (
	"context"

	"github.com/prodbooks/mfg_ledger/internal/core/domain"
)

// ExciseCategoryReader defines read operations for excise categories.
// Category maintenance belongs to the external tax configuration service.
type ExciseCategoryReader interface {
	// FindCategoryByID retrieves an excise category scoped to the tenant.
	FindCategoryByID(ctx context.Context, tenantID, categoryID string) (*domain.ExciseCategory, error)
}

// ExciseRepositoryFacade combines all excise repository interfaces.
type ExciseRepositoryFacade interface {
	ExciseCategoryReader
}
