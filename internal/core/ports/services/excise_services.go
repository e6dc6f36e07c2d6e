package services

import (
	"context"

	"github.com/prodbooks/mfg_ledger/internal/core/domain"
)

// ExciseSvcFacade answers whether a product falls in an active excisable
// category and at what rate. Read-only with respect to domain state.
type ExciseSvcFacade interface {
	// ClassifyProduct evaluates the product's excise flags against the
	// category table. Products without an active category are unregulated.
	ClassifyProduct(ctx context.Context, tenantID string, product domain.Product) (domain.ExciseClassification, error)
}
