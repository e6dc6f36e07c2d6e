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

type PgxAccountRepository struct {
	pool *pgxpool.Pool
}

// newPgxAccountRepository creates a new repository for account data.
func newPgxAccountRepository(pool *pgxpool.Pool) portsrepo.AccountRepositoryFacade {
	return &PgxAccountRepository{pool: pool}
}

var _ portsrepo.AccountRepositoryFacade = (*PgxAccountRepository)(nil)

const accountColumns = `account_id, tenant_id, name, account_type, role, is_active, created_at, created_by, last_updated_at, last_updated_by`

func scanAccount(row pgx.Row) (models.Account, error) {
	var m models.Account
	err := row.Scan(
		&m.AccountID,
		&m.TenantID,
		&m.Name,
		&m.AccountType,
		&m.Role,
		&m.IsActive,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// FindAccountByRole retrieves the active account carrying the given role for
// a tenant. Roles are unique per tenant among active accounts.
func (r *PgxAccountRepository) FindAccountByRole(ctx context.Context, tenantID string, role domain.AccountRole) (*domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE tenant_id = $1 AND role = $2 AND is_active = TRUE;`

	m, err := scanAccount(r.pool.QueryRow(ctx, query, tenantID, string(role)))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: account role %s", apperrors.ErrNotFound, role)
		}
		return nil, fmt.Errorf("failed to query account for role %s: %w", role, err)
	}

	account := mapping.ToDomainAccount(m)
	return &account, nil
}

// FindAccountsByRoles retrieves the active accounts for multiple roles,
// keyed by role.
func (r *PgxAccountRepository) FindAccountsByRoles(ctx context.Context, tenantID string, roles []domain.AccountRole) (map[domain.AccountRole]domain.Account, error) {
	result := make(map[domain.AccountRole]domain.Account, len(roles))
	if len(roles) == 0 {
		return result, nil
	}

	roleStrings := make([]string, len(roles))
	for i, role := range roles {
		roleStrings[i] = string(role)
	}

	query := `SELECT ` + accountColumns + ` FROM accounts WHERE tenant_id = $1 AND role = ANY($2) AND is_active = TRUE;`

	rows, err := r.pool.Query(ctx, query, tenantID, roleStrings)
	if err != nil {
		return nil, fmt.Errorf("failed to query accounts by roles: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		m, err := scanAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan account row: %w", err)
		}
		account := mapping.ToDomainAccount(m)
		result[account.Role] = account
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating account rows: %w", err)
	}

	return result, nil
}
