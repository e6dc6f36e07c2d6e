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

type PgxBOMRepository struct {
	pool *pgxpool.Pool
}

// newPgxBOMRepository creates a new repository for bill of material data.
func newPgxBOMRepository(pool *pgxpool.Pool) portsrepo.BOMRepositoryFacade {
	return &PgxBOMRepository{pool: pool}
}

var _ portsrepo.BOMRepositoryFacade = (*PgxBOMRepository)(nil)

const bomColumns = `bom_id, tenant_id, finished_product_id, name, yield_percent, status, created_at, created_by, last_updated_at, last_updated_by`

func scanBOM(row pgx.Row) (models.BillOfMaterial, error) {
	var m models.BillOfMaterial
	err := row.Scan(
		&m.BOMID,
		&m.TenantID,
		&m.FinishedProductID,
		&m.Name,
		&m.YieldPercent,
		&m.Status,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// SaveBOM persists a new BOM header and its lines in one transaction.
func (r *PgxBOMRepository) SaveBOM(ctx context.Context, bom domain.BillOfMaterial) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction for BOM save: %w", err)
	}
	defer tx.Rollback(ctx)

	m := mapping.ToModelBOM(bom)
	headerQuery := `
		INSERT INTO boms (bom_id, tenant_id, finished_product_id, name, yield_percent, status, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err = tx.Exec(ctx, headerQuery,
		m.BOMID,
		m.TenantID,
		m.FinishedProductID,
		m.Name,
		m.YieldPercent,
		m.Status,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: BOM with ID %s already exists", apperrors.ErrDuplicate, m.BOMID)
		}
		return fmt.Errorf("failed to insert BOM %s: %w", m.BOMID, err)
	}

	lineQuery := `
		INSERT INTO bom_lines (bom_line_id, bom_id, line_number, component_product_id, quantity_per, scrap_percent)
		VALUES ($1, $2, $3, $4, $5, $6);
	`
	batch := &pgx.Batch{}
	for _, line := range bom.Lines {
		lm := mapping.ToModelBOMLine(line)
		batch.Queue(lineQuery,
			lm.BOMLineID,
			lm.BOMID,
			lm.LineNumber,
			lm.ComponentProductID,
			lm.QuantityPer,
			lm.ScrapPercent,
		)
	}
	br := tx.SendBatch(ctx, batch)
	for range bom.Lines {
		if _, err := br.Exec(); err != nil {
			br.Close()
			return fmt.Errorf("failed to insert BOM line: %w", err)
		}
	}
	if err := br.Close(); err != nil {
		return fmt.Errorf("failed to close BOM line batch: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit BOM save: %w", err)
	}
	return nil
}

// FindBOMByID retrieves a BOM with its lines, scoped to the tenant.
func (r *PgxBOMRepository) FindBOMByID(ctx context.Context, tenantID, bomID string) (*domain.BillOfMaterial, error) {
	headerQuery := `SELECT ` + bomColumns + ` FROM boms WHERE tenant_id = $1 AND bom_id = $2;`

	m, err := scanBOM(r.pool.QueryRow(ctx, headerQuery, tenantID, bomID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: BOM %s", apperrors.ErrNotFound, bomID)
		}
		return nil, fmt.Errorf("failed to query BOM %s: %w", bomID, err)
	}
	bom := mapping.ToDomainBOM(m)

	lineQuery := `
		SELECT bom_line_id, bom_id, line_number, component_product_id, quantity_per, scrap_percent
		FROM bom_lines
		WHERE bom_id = $1
		ORDER BY line_number;
	`
	rows, err := r.pool.Query(ctx, lineQuery, bomID)
	if err != nil {
		return nil, fmt.Errorf("failed to query BOM lines for %s: %w", bomID, err)
	}
	defer rows.Close()

	for rows.Next() {
		var lm models.BOMLine
		if err := rows.Scan(&lm.BOMLineID, &lm.BOMID, &lm.LineNumber, &lm.ComponentProductID, &lm.QuantityPer, &lm.ScrapPercent); err != nil {
			return nil, fmt.Errorf("failed to scan BOM line: %w", err)
		}
		bom.Lines = append(bom.Lines, mapping.ToDomainBOMLine(lm))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating BOM lines: %w", err)
	}

	return &bom, nil
}

// ListBOMsByTenant retrieves BOM headers for a tenant, newest first.
func (r *PgxBOMRepository) ListBOMsByTenant(ctx context.Context, tenantID string, limit, offset int) ([]domain.BillOfMaterial, error) {
	query := `SELECT ` + bomColumns + ` FROM boms WHERE tenant_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3;`

	rows, err := r.pool.Query(ctx, query, tenantID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list BOMs: %w", err)
	}
	defer rows.Close()

	var boms []domain.BillOfMaterial
	for rows.Next() {
		m, err := scanBOM(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan BOM row: %w", err)
		}
		boms = append(boms, mapping.ToDomainBOM(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating BOM rows: %w", err)
	}

	return boms, nil
}

// UpdateBOMStatus transitions a BOM between ACTIVE and ARCHIVED.
func (r *PgxBOMRepository) UpdateBOMStatus(ctx context.Context, tenantID, bomID string, status domain.BOMStatus, userID string, now time.Time) error {
	query := `
		UPDATE boms
		SET status = $1, last_updated_at = $2, last_updated_by = $3
		WHERE tenant_id = $4 AND bom_id = $5;
	`
	cmdTag, err := r.pool.Exec(ctx, query, string(status), now, userID, tenantID, bomID)
	if err != nil {
		return fmt.Errorf("failed to update BOM status for %s: %w", bomID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("%w: BOM %s", apperrors.ErrNotFound, bomID)
	}
	return nil
}
