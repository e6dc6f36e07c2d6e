package services

import (
	"context"

	"github.com/prodbooks/mfg_ledger/internal/core/domain"
)

// AccountSvcFacade resolves well-known posting accounts from the chart of
// accounts by role. Chart management itself is handled elsewhere.
type AccountSvcFacade interface {
	// ResolveAccountByRole returns the active account carrying the role, or
	// a MissingLedgerAccountError when none is configured.
	ResolveAccountByRole(ctx context.Context, tenantID string, role domain.AccountRole) (*domain.Account, error)

	// ResolveAccountsByRoles resolves several roles at once, failing with a
	// MissingLedgerAccountError naming the first role that cannot resolve.
	ResolveAccountsByRoles(ctx context.Context, tenantID string, roles []domain.AccountRole) (map[domain.AccountRole]domain.Account, error)
}
