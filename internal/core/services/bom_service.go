package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/prodbooks/mfg_ledger/internal/apperrors"
	"github.com/prodbooks/mfg_ledger/internal/core/domain"
	portsrepo "github.com/prodbooks/mfg_ledger/internal/core/ports/repositories"
	portssvc "github.com/prodbooks/mfg_ledger/internal/core/ports/services"
	"github.com/prodbooks/mfg_ledger/internal/dto"
	"github.com/prodbooks/mfg_ledger/internal/middleware"
)

// bomService manages bills of material.
type bomService struct {
	bomRepo     portsrepo.BOMRepositoryFacade
	productRepo portsrepo.ProductRepositoryFacade
}

// NewBOMService creates a new BOM management service.
func NewBOMService(bomRepo portsrepo.BOMRepositoryFacade, productRepo portsrepo.ProductRepositoryFacade) portssvc.BOMSvcFacade {
	return &bomService{bomRepo: bomRepo, productRepo: productRepo}
}

var _ portssvc.BOMSvcFacade = (*bomService)(nil)

// CreateBOM validates and persists a new bill of material. Implements
// portssvc.BOMSvcFacade.
func (s *bomService) CreateBOM(ctx context.Context, tenantID string, req dto.CreateBOMRequest, userID string) (*domain.BillOfMaterial, error) {
	hundred := decimal.NewFromInt(100)
	if req.YieldPercent.LessThanOrEqual(decimal.Zero) || req.YieldPercent.GreaterThan(hundred) {
		return nil, fmt.Errorf("%w: yield percent must be in (0, 100], got %s", apperrors.ErrValidation, req.YieldPercent.String())
	}
	if len(req.Lines) == 0 {
		return nil, fmt.Errorf("%w: a BOM requires at least one component line", apperrors.ErrValidation)
	}

	finished, err := s.productRepo.FindProductByID(ctx, tenantID, req.FinishedProductID)
	if err != nil {
		return nil, fmt.Errorf("failed to find finished product %s: %w", req.FinishedProductID, err)
	}
	if finished.Kind != domain.FinishedGood {
		return nil, fmt.Errorf("%w: product %s is not a finished good", apperrors.ErrValidation, finished.ProductID)
	}

	componentIDs := make([]string, len(req.Lines))
	seen := make(map[string]struct{}, len(req.Lines))
	for i, line := range req.Lines {
		if line.ComponentProductID == req.FinishedProductID {
			return nil, fmt.Errorf("%w: a BOM cannot consume its own finished product", apperrors.ErrValidation)
		}
		if _, dup := seen[line.ComponentProductID]; dup {
			return nil, fmt.Errorf("%w: duplicate component %s", apperrors.ErrValidation, line.ComponentProductID)
		}
		seen[line.ComponentProductID] = struct{}{}
		if line.QuantityPer.LessThanOrEqual(decimal.Zero) {
			return nil, fmt.Errorf("%w: quantity per unit must be positive for component %s", apperrors.ErrValidation, line.ComponentProductID)
		}
		if line.ScrapPercent.IsNegative() {
			return nil, fmt.Errorf("%w: scrap percent must not be negative for component %s", apperrors.ErrValidation, line.ComponentProductID)
		}
		componentIDs[i] = line.ComponentProductID
	}

	components, err := s.productRepo.FindProductsByIDs(ctx, tenantID, componentIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to load component products: %w", err)
	}
	for _, id := range componentIDs {
		if _, ok := components[id]; !ok {
			return nil, fmt.Errorf("%w: component product %s", apperrors.ErrNotFound, id)
		}
	}

	now := time.Now().UTC()
	bom := domain.BillOfMaterial{
		BOMID:             uuid.NewString(),
		TenantID:          tenantID,
		FinishedProductID: req.FinishedProductID,
		Name:              req.Name,
		YieldPercent:      req.YieldPercent,
		Status:            domain.BOMActive,
		AuditFields:       domain.AuditFields{CreatedAt: now, CreatedBy: userID, LastUpdatedAt: now, LastUpdatedBy: userID},
	}
	bom.Lines = make([]domain.BOMLine, len(req.Lines))
	for i, line := range req.Lines {
		bom.Lines[i] = domain.BOMLine{
			BOMLineID:          uuid.NewString(),
			BOMID:              bom.BOMID,
			LineNumber:         i + 1,
			ComponentProductID: line.ComponentProductID,
			QuantityPer:        line.QuantityPer,
			ScrapPercent:       line.ScrapPercent,
		}
	}

	if err := s.bomRepo.SaveBOM(ctx, bom); err != nil {
		return nil, fmt.Errorf("failed to save BOM: %w", err)
	}

	middleware.GetLoggerFromCtx(ctx).Info("BOM created",
		slog.String("bom_id", bom.BOMID),
		slog.String("finished_product_id", bom.FinishedProductID),
		slog.Int("line_count", len(bom.Lines)),
	)
	return &bom, nil
}

// GetBOMByID retrieves a BOM with its lines. Implements portssvc.BOMSvcFacade.
func (s *bomService) GetBOMByID(ctx context.Context, tenantID, bomID string) (*domain.BillOfMaterial, error) {
	return s.bomRepo.FindBOMByID(ctx, tenantID, bomID)
}

// ArchiveBOM marks a BOM as ARCHIVED. Archiving is idempotent in effect but
// an already archived BOM is reported as such. Implements
// portssvc.BOMSvcFacade.
func (s *bomService) ArchiveBOM(ctx context.Context, tenantID, bomID, userID string) error {
	bom, err := s.bomRepo.FindBOMByID(ctx, tenantID, bomID)
	if err != nil {
		return fmt.Errorf("failed to find BOM %s: %w", bomID, err)
	}
	if bom.Status == domain.BOMArchived {
		return fmt.Errorf("%w: BOM %s", apperrors.ErrBOMArchived, bomID)
	}
	if err := s.bomRepo.UpdateBOMStatus(ctx, tenantID, bomID, domain.BOMArchived, userID, time.Now().UTC()); err != nil {
		return fmt.Errorf("failed to archive BOM %s: %w", bomID, err)
	}
	return nil
}
