package repositories

import (
	"context"

	"github.com/prodbooks/mfg_ledger/internal/core/domain"
)

// AccountReader defines read operations for the chart of accounts. Accounts
// are resolved by role; chart management itself is external.
type AccountReader interface {
	// FindAccountByRole retrieves the active account carrying the given role
	// for a tenant.
	FindAccountByRole(ctx context.Context, tenantID string, role domain.AccountRole) (*domain.Account, error)

	// FindAccountsByRoles retrieves the active accounts for multiple roles,
	// keyed by role. Unresolved roles are absent from the map.
	FindAccountsByRoles(ctx context.Context, tenantID string, roles []domain.AccountRole) (map[domain.AccountRole]domain.Account, error)
}

// AccountRepositoryFacade combines all account repository interfaces.
type AccountRepositoryFacade interface {
	AccountReader
}
