package services

import (
	"context"

	"github.com/prodbooks/mfg_ledger/internal/core/domain"
	"github.com/prodbooks/mfg_ledger/internal/dto"
)

// BuildSvcFacade is the atomic build orchestrator: it validates a build
// request, consumes raw materials, costs and receives the finished good,
// posts the balanced journal, and exposes the reversal entry point.
type BuildSvcFacade interface {
	// BuildProduct executes one production build as a single all-or-nothing
	// unit of work and returns the posted assembly transaction.
	BuildProduct(ctx context.Context, tenantID string, req dto.BuildProductRequest, userID string) (*domain.AssemblyTransaction, error)

	// ReverseBuild undoes a posted build: restores inventory balances from
	// the stored assembly lines, voids the ledger transaction, and marks the
	// assembly REVERSED.
	ReverseBuild(ctx context.Context, tenantID, assemblyID, reason, userID string) error

	// GetAssemblyByID retrieves a build with its lines.
	GetAssemblyByID(ctx context.Context, tenantID, assemblyID string) (*domain.AssemblyTransaction, error)

	// ListAssemblies retrieves builds for a tenant, newest first.
	ListAssemblies(ctx context.Context, tenantID string, params dto.ListAssembliesParams) ([]domain.AssemblyTransaction, error)

	// GetWastageByAssembly retrieves the wastage record created by a build.
	GetWastageByAssembly(ctx context.Context, tenantID, assemblyID string) (*domain.WastageRecord, error)

	// GetExciseByAssembly retrieves the excise duty record created by a build.
	GetExciseByAssembly(ctx context.Context, tenantID, assemblyID string) (*domain.ExciseDutyRecord, error)

	// GetLedgerTransaction retrieves a ledger transaction with its entries.
	GetLedgerTransaction(ctx context.Context, tenantID, ledgerTransactionID string) (*domain.LedgerTransaction, error)
}
