package services

import (
	"context"

	"github.com/prodbooks/mfg_ledger/internal/core/domain"
	"github.com/prodbooks/mfg_ledger/internal/dto"
)

// BOMSvcFacade manages bills of material.
type BOMSvcFacade interface {
	// CreateBOM validates and persists a new bill of material.
	CreateBOM(ctx context.Context, tenantID string, req dto.CreateBOMRequest, userID string) (*domain.BillOfMaterial, error)

	// GetBOMByID retrieves a BOM with its lines.
	GetBOMByID(ctx context.Context, tenantID, bomID string) (*domain.BillOfMaterial, error)

	// ArchiveBOM marks a BOM as ARCHIVED, blocking it from new builds.
	ArchiveBOM(ctx context.Context, tenantID, bomID, userID string) error
}
