package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/prodbooks/mfg_ledger/internal/apperrors"
	"github.com/prodbooks/mfg_ledger/internal/core/domain"
	portsrepo "github.com/prodbooks/mfg_ledger/internal/core/ports/repositories"
	"github.com/prodbooks/mfg_ledger/internal/models"
	"github.com/prodbooks/mfg_ledger/internal/utils/mapping"
)

type PgxExciseRepository struct {
	pool *pgxpool.Pool
}

// newPgxExciseRepository creates a new repository for excise category data.
func newPgxExciseRepository(pool *pgxpool.Pool) portsrepo.ExciseRepositoryFacade {
	return &PgxExciseRepository{pool: pool}
}

var _ portsrepo.ExciseRepositoryFacade = (*PgxExciseRepository)(nil)

// FindCategoryByID retrieves an excise category scoped to the tenant.
func (r *PgxExciseRepository) FindCategoryByID(ctx context.Context, tenantID, categoryID string) (*domain.ExciseCategory, error) {
	query := `
		SELECT category_id, tenant_id, name, rate, is_active, created_at, created_by, last_updated_at, last_updated_by
		FROM excise_categories
		WHERE tenant_id = $1 AND category_id = $2;
	`

	var m models.ExciseCategory
	err := r.pool.QueryRow(ctx, query, tenantID, categoryID).Scan(
		&m.CategoryID,
		&m.TenantID,
		&m.Name,
		&m.Rate,
		&m.IsActive,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: excise category %s", apperrors.ErrNotFound, categoryID)
		}
		return nil, fmt.Errorf("failed to query excise category %s: %w", categoryID, err)
	}

	category := mapping.ToDomainExciseCategory(m)
	return &category, nil
}
