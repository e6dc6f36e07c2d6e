package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/prodbooks/mfg_ledger/internal/apperrors"
	"github.com/prodbooks/mfg_ledger/internal/core/domain"
	portsrepo "github.com/prodbooks/mfg_ledger/internal/core/ports/repositories"
	portssvc "github.com/prodbooks/mfg_ledger/internal/core/ports/services"
	"github.com/prodbooks/mfg_ledger/internal/middleware"
)

// exciseService decides whether a finished product attracts excise duty and
// at what rate.
type exciseService struct {
	exciseRepo portsrepo.ExciseRepositoryFacade
}

// NewExciseService creates a new excise classification service.
func NewExciseService(exciseRepo portsrepo.ExciseRepositoryFacade) portssvc.ExciseSvcFacade {
	return &exciseService{exciseRepo: exciseRepo}
}

var _ portssvc.ExciseSvcFacade = (*exciseService)(nil)

// ClassifyProduct returns the excise classification for a product. A product
// is regulated only when it is flagged exciseable and its category is active.
// An exciseable product with a missing category is a configuration error.
// Implements portssvc.ExciseSvcFacade.
func (s *exciseService) ClassifyProduct(ctx context.Context, tenantID string, product domain.Product) (domain.ExciseClassification, error) {
	none := domain.ExciseClassification{Regulated: false, Rate: decimal.Zero}

	if !product.IsExciseable {
		return none, nil
	}
	if product.ExciseCategoryID == nil || *product.ExciseCategoryID == "" {
		return none, fmt.Errorf("%w: product %s is flagged exciseable but has no excise category", apperrors.ErrValidation, product.ProductID)
	}

	category, err := s.exciseRepo.FindCategoryByID(ctx, tenantID, *product.ExciseCategoryID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return none, fmt.Errorf("%w: excise category %s not found for product %s", apperrors.ErrValidation, *product.ExciseCategoryID, product.ProductID)
		}
		return none, fmt.Errorf("failed to load excise category: %w", err)
	}
	if !category.IsActive {
		middleware.GetLoggerFromCtx(ctx).Warn("Excise category inactive, treating product as unregulated",
			slog.String("product_id", product.ProductID),
			slog.String("excise_category_id", category.CategoryID),
		)
		return none, nil
	}

	return domain.ExciseClassification{
		Regulated:  true,
		CategoryID: category.CategoryID,
		Rate:       category.Rate,
	}, nil
}
