package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/prodbooks/mfg_ledger/internal/apperrors"
	"github.com/prodbooks/mfg_ledger/internal/core/domain"
	portsrepo "github.com/prodbooks/mfg_ledger/internal/core/ports/repositories"
	"github.com/prodbooks/mfg_ledger/internal/models"
	"github.com/prodbooks/mfg_ledger/internal/utils/mapping"
)

type PgxAssemblyRepository struct {
	pool *pgxpool.Pool
}

// newPgxAssemblyRepository creates a new repository for assembly data.
func newPgxAssemblyRepository(pool *pgxpool.Pool) portsrepo.AssemblyRepositoryFacade {
	return &PgxAssemblyRepository{pool: pool}
}

var _ portsrepo.AssemblyRepositoryFacade = (*PgxAssemblyRepository)(nil)

const assemblyColumns = `assembly_id, tenant_id, bom_id, finished_product_id, quantity_produced, material_cost, labor_cost, overhead_cost, total_cost, previous_unit_cost, new_unit_cost, wastage_quantity, wastage_cost, is_exciseable, excise_duty_rate, excise_duty_amount, ledger_transaction_id, status, reversal_reason, reversed_at, notes, created_at, created_by, last_updated_at, last_updated_by`

func scanAssembly(row pgx.Row) (models.AssemblyTransaction, error) {
	var m models.AssemblyTransaction
	err := row.Scan(
		&m.AssemblyID,
		&m.TenantID,
		&m.BOMID,
		&m.FinishedProductID,
		&m.QuantityProduced,
		&m.MaterialCost,
		&m.LaborCost,
		&m.OverheadCost,
		&m.TotalCost,
		&m.PreviousUnitCost,
		&m.NewUnitCost,
		&m.WastageQuantity,
		&m.WastageCost,
		&m.IsExciseable,
		&m.ExciseDutyRate,
		&m.ExciseDutyAmount,
		&m.LedgerTransactionID,
		&m.Status,
		&m.ReversalReason,
		&m.ReversedAt,
		&m.Notes,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// SaveAssemblyInTx persists an assembly transaction and its lines within the
// caller's transaction.
func (r *PgxAssemblyRepository) SaveAssemblyInTx(ctx context.Context, tx pgx.Tx, assembly domain.AssemblyTransaction, lines []domain.AssemblyLine) error {
	m := mapping.ToModelAssembly(assembly)
	headerQuery := `
		INSERT INTO assembly_transactions (` + assemblyColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $23, $24, $25);
	`
	_, err := tx.Exec(ctx, headerQuery,
		m.AssemblyID,
		m.TenantID,
		m.BOMID,
		m.FinishedProductID,
		m.QuantityProduced,
		m.MaterialCost,
		m.LaborCost,
		m.OverheadCost,
		m.TotalCost,
		m.PreviousUnitCost,
		m.NewUnitCost,
		m.WastageQuantity,
		m.WastageCost,
		m.IsExciseable,
		m.ExciseDutyRate,
		m.ExciseDutyAmount,
		m.LedgerTransactionID,
		m.Status,
		m.ReversalReason,
		m.ReversedAt,
		m.Notes,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: assembly %s already exists", apperrors.ErrDuplicate, m.AssemblyID)
		}
		return fmt.Errorf("failed to insert assembly %s: %w", m.AssemblyID, err)
	}

	lineQuery := `
		INSERT INTO assembly_lines (assembly_line_id, assembly_id, component_product_id, planned_quantity, actual_quantity, unit_cost, planned_cost, actual_cost, quantity_variance, cost_variance, scrap_quantity, scrap_cost)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`
	batch := &pgx.Batch{}
	for _, line := range lines {
		lm := mapping.ToModelAssemblyLine(line)
		batch.Queue(lineQuery,
			lm.AssemblyLineID,
			lm.AssemblyID,
			lm.ComponentProductID,
			lm.PlannedQuantity,
			lm.ActualQuantity,
			lm.UnitCost,
			lm.PlannedCost,
			lm.ActualCost,
			lm.QuantityVariance,
			lm.CostVariance,
			lm.ScrapQuantity,
			lm.ScrapCost,
		)
	}
	br := tx.SendBatch(ctx, batch)
	for range lines {
		if _, err := br.Exec(); err != nil {
			br.Close()
			return fmt.Errorf("failed to insert assembly line: %w", err)
		}
	}
	if err := br.Close(); err != nil {
		return fmt.Errorf("failed to close assembly line batch: %w", err)
	}

	return nil
}

// FindAssemblyByID retrieves an assembly with its lines, scoped to the tenant.
func (r *PgxAssemblyRepository) FindAssemblyByID(ctx context.Context, tenantID, assemblyID string) (*domain.AssemblyTransaction, error) {
	query := `SELECT ` + assemblyColumns + ` FROM assembly_transactions WHERE tenant_id = $1 AND assembly_id = $2;`

	m, err := scanAssembly(r.pool.QueryRow(ctx, query, tenantID, assemblyID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: assembly %s", apperrors.ErrNotFound, assemblyID)
		}
		return nil, fmt.Errorf("failed to query assembly %s: %w", assemblyID, err)
	}
	assembly := mapping.ToDomainAssembly(m)

	lines, err := r.findLines(ctx, r.pool, assemblyID)
	if err != nil {
		return nil, err
	}
	assembly.Lines = lines

	return &assembly, nil
}

// FindAssemblyForUpdateInTx retrieves an assembly with its lines, locking
// the header row for the duration of the transaction.
func (r *PgxAssemblyRepository) FindAssemblyForUpdateInTx(ctx context.Context, tx pgx.Tx, tenantID, assemblyID string) (*domain.AssemblyTransaction, error) {
	query := `SELECT ` + assemblyColumns + ` FROM assembly_transactions WHERE tenant_id = $1 AND assembly_id = $2 FOR UPDATE;`

	m, err := scanAssembly(tx.QueryRow(ctx, query, tenantID, assemblyID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: assembly %s", apperrors.ErrNotFound, assemblyID)
		}
		return nil, fmt.Errorf("failed to lock assembly %s: %w", assemblyID, err)
	}
	assembly := mapping.ToDomainAssembly(m)

	lines, err := r.findLines(ctx, tx, assemblyID)
	if err != nil {
		return nil, err
	}
	assembly.Lines = lines

	return &assembly, nil
}

// querier abstracts pool and transaction for shared read helpers.
type querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

func (r *PgxAssemblyRepository) findLines(ctx context.Context, q querier, assemblyID string) ([]domain.AssemblyLine, error) {
	query := `
		SELECT assembly_line_id, assembly_id, component_product_id, planned_quantity, actual_quantity, unit_cost, planned_cost, actual_cost, quantity_variance, cost_variance, scrap_quantity, scrap_cost
		FROM assembly_lines
		WHERE assembly_id = $1
		ORDER BY component_product_id;
	`
	rows, err := q.Query(ctx, query, assemblyID)
	if err != nil {
		return nil, fmt.Errorf("failed to query assembly lines for %s: %w", assemblyID, err)
	}
	defer rows.Close()

	var lines []domain.AssemblyLine
	for rows.Next() {
		var lm models.AssemblyLine
		if err := rows.Scan(
			&lm.AssemblyLineID,
			&lm.AssemblyID,
			&lm.ComponentProductID,
			&lm.PlannedQuantity,
			&lm.ActualQuantity,
			&lm.UnitCost,
			&lm.PlannedCost,
			&lm.ActualCost,
			&lm.QuantityVariance,
			&lm.CostVariance,
			&lm.ScrapQuantity,
			&lm.ScrapCost,
		); err != nil {
			return nil, fmt.Errorf("failed to scan assembly line: %w", err)
		}
		lines = append(lines, mapping.ToDomainAssemblyLine(lm))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating assembly lines: %w", err)
	}

	return lines, nil
}

// ListAssembliesByTenant retrieves assembly headers for a tenant, newest
// first.
func (r *PgxAssemblyRepository) ListAssembliesByTenant(ctx context.Context, tenantID string, limit, offset int) ([]domain.AssemblyTransaction, error) {
	query := `SELECT ` + assemblyColumns + ` FROM assembly_transactions WHERE tenant_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3;`

	rows, err := r.pool.Query(ctx, query, tenantID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list assemblies: %w", err)
	}
	defer rows.Close()

	var assemblies []domain.AssemblyTransaction
	for rows.Next() {
		m, err := scanAssembly(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan assembly row: %w", err)
		}
		assemblies = append(assemblies, mapping.ToDomainAssembly(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating assembly rows: %w", err)
	}

	return assemblies, nil
}

// UpdateAssemblyStatusInTx records the transition to REVERSED.
func (r *PgxAssemblyRepository) UpdateAssemblyStatusInTx(ctx context.Context, tx pgx.Tx, tenantID, assemblyID string, status domain.AssemblyStatus, reason string, userID string, now time.Time) error {
	query := `
		UPDATE assembly_transactions
		SET status = $1, reversal_reason = $2, reversed_at = $3, last_updated_at = $4, last_updated_by = $5
		WHERE tenant_id = $6 AND assembly_id = $7;
	`
	cmdTag, err := tx.Exec(ctx, query, string(status), reason, now, now, userID, tenantID, assemblyID)
	if err != nil {
		return fmt.Errorf("failed to update assembly status for %s: %w", assemblyID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("%w: assembly %s", apperrors.ErrNotFound, assemblyID)
	}
	return nil
}

// SaveWastageInTx persists a wastage record.
func (r *PgxAssemblyRepository) SaveWastageInTx(ctx context.Context, tx pgx.Tx, record domain.WastageRecord) error {
	m := mapping.ToModelWastage(record)
	query := `
		INSERT INTO wastage_records (wastage_id, tenant_id, assembly_id, total_quantity, total_cost, percent_of_material_cost, reasons, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	_, err := tx.Exec(ctx, query,
		m.WastageID,
		m.TenantID,
		m.AssemblyID,
		m.TotalQuantity,
		m.TotalCost,
		m.PercentOfMaterialCost,
		m.Reasons,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to insert wastage record for assembly %s: %w", m.AssemblyID, err)
	}
	return nil
}

// SaveExciseInTx persists an excise duty record.
func (r *PgxAssemblyRepository) SaveExciseInTx(ctx context.Context, tx pgx.Tx, record domain.ExciseDutyRecord) error {
	m := mapping.ToModelExciseDutyRecord(record)
	query := `
		INSERT INTO excise_duty_records (excise_record_id, tenant_id, assembly_id, product_id, excise_category_id, base_value, rate, duty_amount, reporting_status, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
	`
	_, err := tx.Exec(ctx, query,
		m.ExciseRecordID,
		m.TenantID,
		m.AssemblyID,
		m.ProductID,
		m.ExciseCategoryID,
		m.BaseValue,
		m.Rate,
		m.DutyAmount,
		m.ReportingStatus,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to insert excise duty record for assembly %s: %w", m.AssemblyID, err)
	}
	return nil
}

// FindWastageByAssemblyID retrieves the wastage record for an assembly.
func (r *PgxAssemblyRepository) FindWastageByAssemblyID(ctx context.Context, tenantID, assemblyID string) (*domain.WastageRecord, error) {
	query := `
		SELECT wastage_id, tenant_id, assembly_id, total_quantity, total_cost, percent_of_material_cost, reasons, created_at, created_by, last_updated_at, last_updated_by
		FROM wastage_records
		WHERE tenant_id = $1 AND assembly_id = $2;
	`

	var m models.WastageRecord
	err := r.pool.QueryRow(ctx, query, tenantID, assemblyID).Scan(
		&m.WastageID,
		&m.TenantID,
		&m.AssemblyID,
		&m.TotalQuantity,
		&m.TotalCost,
		&m.PercentOfMaterialCost,
		&m.Reasons,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: wastage record for assembly %s", apperrors.ErrNotFound, assemblyID)
		}
		return nil, fmt.Errorf("failed to query wastage record for assembly %s: %w", assemblyID, err)
	}

	record := mapping.ToDomainWastage(m)
	return &record, nil
}

// FindExciseByAssemblyID retrieves the excise duty record for an assembly.
func (r *PgxAssemblyRepository) FindExciseByAssemblyID(ctx context.Context, tenantID, assemblyID string) (*domain.ExciseDutyRecord, error) {
	query := `
		SELECT excise_record_id, tenant_id, assembly_id, product_id, excise_category_id, base_value, rate, duty_amount, reporting_status, created_at, created_by, last_updated_at, last_updated_by
		FROM excise_duty_records
		WHERE tenant_id = $1 AND assembly_id = $2;
	`

	var m models.ExciseDutyRecord
	err := r.pool.QueryRow(ctx, query, tenantID, assemblyID).Scan(
		&m.ExciseRecordID,
		&m.TenantID,
		&m.AssemblyID,
		&m.ProductID,
		&m.ExciseCategoryID,
		&m.BaseValue,
		&m.Rate,
		&m.DutyAmount,
		&m.ReportingStatus,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: excise duty record for assembly %s", apperrors.ErrNotFound, assemblyID)
		}
		return nil, fmt.Errorf("failed to query excise duty record for assembly %s: %w", assemblyID, err)
	}

	record := mapping.ToDomainExciseDutyRecord(m)
	return &record, nil
}
