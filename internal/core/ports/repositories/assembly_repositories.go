package repositories

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/prodbooks/mfg_ledger/internal/core/domain"
)

// AssemblyReader defines read operations for assembly transactions and their
// satellite records.
type AssemblyReader interface {
	// FindAssemblyByID retrieves an assembly transaction with its lines,
	// scoped to the tenant.
	FindAssemblyByID(ctx context.Context, tenantID, assemblyID string) (*domain.AssemblyTransaction, error)

	// ListAssembliesByTenant retrieves assembly transactions for a tenant,
	// newest first, without lines.
	ListAssembliesByTenant(ctx context.Context, tenantID string, limit, offset int) ([]domain.AssemblyTransaction, error)

	// FindWastageByAssemblyID retrieves the wastage record for an assembly,
	// if one was created.
	FindWastageByAssemblyID(ctx context.Context, tenantID, assemblyID string) (*domain.WastageRecord, error)

	// FindExciseByAssemblyID retrieves the excise duty record for an
	// assembly, if one was created.
	FindExciseByAssemblyID(ctx context.Context, tenantID, assemblyID string) (*domain.ExciseDutyRecord, error)
}

// AssemblyWriter defines the write operations performed inside the build
// orchestrator's atomic scope.
type AssemblyWriter interface {
	// FindAssemblyForUpdateInTx retrieves an assembly with its lines and
	// locks its row, preventing a concurrent double reversal.
	FindAssemblyForUpdateInTx(ctx context.Context, tx pgx.Tx, tenantID, assemblyID string) (*domain.AssemblyTransaction, error)

	// SaveAssemblyInTx persists an assembly transaction and its lines.
	SaveAssemblyInTx(ctx context.Context, tx pgx.Tx, assembly domain.AssemblyTransaction, lines []domain.AssemblyLine) error

	// UpdateAssemblyStatusInTx records the transition to REVERSED.
	UpdateAssemblyStatusInTx(ctx context.Context, tx pgx.Tx, tenantID, assemblyID string, status domain.AssemblyStatus, reason string, userID string, now time.Time) error

	// SaveWastageInTx persists a wastage record.
	SaveWastageInTx(ctx context.Context, tx pgx.Tx, record domain.WastageRecord) error

	// SaveExciseInTx persists an excise duty record.
	SaveExciseInTx(ctx context.Context, tx pgx.Tx, record domain.ExciseDutyRecord) error
}

// AssemblyRepositoryFacade combines all assembly repository interfaces.
type AssemblyRepositoryFacade interface {
	AssemblyReader
	AssemblyWriter
}
