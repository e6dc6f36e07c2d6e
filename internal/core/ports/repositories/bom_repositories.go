package repositories

import (
	"context"
	"time"

	"github.com/prodbooks/mfg_ledger/internal/core/domain"
)

// BOMReader defines read operations for bills of material.
type BOMReader interface {
	// FindBOMByID retrieves a BOM with its lines, scoped to the tenant.
	FindBOMByID(ctx context.Context, tenantID, bomID string) (*domain.BillOfMaterial, error)

	// ListBOMsByTenant retrieves BOMs for a tenant, newest first, without lines.
	ListBOMsByTenant(ctx context.Context, tenantID string, limit, offset int) ([]domain.BillOfMaterial, error)
}

// BOMWriter defines write operations for bills of material.
type BOMWriter interface {
	// SaveBOM persists a new BOM and its lines atomically.
	SaveBOM(ctx context.Context, bom domain.BillOfMaterial) error

	// UpdateBOMStatus transitions a BOM between ACTIVE and ARCHIVED.
	UpdateBOMStatus(ctx context.Context, tenantID, bomID string, status domain.BOMStatus, userID string, now time.Time) error
}

// BOMRepositoryFacade combines all BOM repository interfaces.
type BOMRepositoryFacade interface {
	BOMReader
	BOMWriter
}
