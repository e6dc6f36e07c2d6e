package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/prodbooks/mfg_ledger/internal/apperrors"
	"github.com/prodbooks/mfg_ledger/internal/core/domain"
	portsrepo "github.com/prodbooks/mfg_ledger/internal/core/ports/repositories"
	portssvc "github.com/prodbooks/mfg_ledger/internal/core/ports/services"
)

// accountService resolves ledger accounts by their posting role.
type accountService struct {
	accountRepo portsrepo.AccountRepositoryFacade
}

// NewAccountService creates a new account resolution service.
func NewAccountService(accountRepo portsrepo.AccountRepositoryFacade) portssvc.AccountSvcFacade {
	return &accountService{accountRepo: accountRepo}
}

var _ portssvc.AccountSvcFacade = (*accountService)(nil)

// ResolveAccountByRole finds the single active account configured for the
// given role. Implements portssvc.AccountSvcFacade.
func (s *accountService) ResolveAccountByRole(ctx context.Context, tenantID string, role domain.AccountRole) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByRole(ctx, tenantID, role)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, &apperrors.MissingLedgerAccountError{Role: string(role)}
		}
		return nil, fmt.Errorf("failed to resolve account for role %s: %w", role, err)
	}
	if !account.IsActive {
		return nil, &apperrors.MissingLedgerAccountError{Role: string(role)}
	}
	return account, nil
}

// ResolveAccountsByRoles resolves every requested role, failing if any role
// has no active account. Implements portssvc.AccountSvcFacade.
func (s *accountService) ResolveAccountsByRoles(ctx context.Context, tenantID string, roles []domain.AccountRole) (map[domain.AccountRole]domain.Account, error) {
	accounts, err := s.accountRepo.FindAccountsByRoles(ctx, tenantID, roles)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve accounts by roles: %w", err)
	}
	for _, role := range roles {
		account, ok := accounts[role]
		if !ok || !account.IsActive {
			return nil, &apperrors.MissingLedgerAccountError{Role: string(role)}
		}
	}
	return accounts, nil
}
