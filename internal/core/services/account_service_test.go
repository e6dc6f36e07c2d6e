package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/prodbooks/mfg_ledger/internal/apperrors"
	"github.com/prodbooks/mfg_ledger/internal/core/domain"
	portsrepo "github.com/prodbooks/mfg_ledger/internal/core/ports/repositories"
	"github.com/prodbooks/mfg_ledger/internal/core/services"
)

type MockAccountRepository struct {
	mock.Mock
}

var _ portsrepo.AccountRepositoryFacade = (*MockAccountRepository)(nil)

func (m *MockAccountRepository) FindAccountByRole(ctx context.Context, tenantID string, role domain.AccountRole) (*domain.Account, error) {
	args := m.Called(ctx, tenantID, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) FindAccountsByRoles(ctx context.Context, tenantID string, roles []domain.AccountRole) (map[domain.AccountRole]domain.Account, error) {
	args := m.Called(ctx, tenantID, roles)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[domain.AccountRole]domain.Account), args.Error(1)
}

func TestResolveAccountByRole_Success(t *testing.T) {
	repo := new(MockAccountRepository)
	svc := services.NewAccountService(repo)

	repo.On("FindAccountByRole", mock.Anything, "tenant-1", domain.RoleRawMaterialAsset).
		Return(&domain.Account{AccountID: "acc-rm", Role: domain.RoleRawMaterialAsset, IsActive: true}, nil)

	account, err := svc.ResolveAccountByRole(context.Background(), "tenant-1", domain.RoleRawMaterialAsset)
	require.NoError(t, err)
	assert.Equal(t, "acc-rm", account.AccountID)
}

func TestResolveAccountByRole_NotConfigured(t *testing.T) {
	repo := new(MockAccountRepository)
	svc := services.NewAccountService(repo)

	repo.On("FindAccountByRole", mock.Anything, "tenant-1", domain.RoleLaborApplied).
		Return(nil, apperrors.ErrNotFound)

	_, err := svc.ResolveAccountByRole(context.Background(), "tenant-1", domain.RoleLaborApplied)
	assert.ErrorIs(t, err, apperrors.ErrMissingLedgerAccount)

	var missing *apperrors.MissingLedgerAccountError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, string(domain.RoleLaborApplied), missing.Role)
}

func TestResolveAccountByRole_Inactive(t *testing.T) {
	repo := new(MockAccountRepository)
	svc := services.NewAccountService(repo)

	repo.On("FindAccountByRole", mock.Anything, "tenant-1", domain.RoleOverheadApplied).
		Return(&domain.Account{AccountID: "acc-overhead", Role: domain.RoleOverheadApplied, IsActive: false}, nil)

	_, err := svc.ResolveAccountByRole(context.Background(), "tenant-1", domain.RoleOverheadApplied)
	assert.ErrorIs(t, err, apperrors.ErrMissingLedgerAccount)
}

func TestResolveAccountsByRoles_AllResolved(t *testing.T) {
	repo := new(MockAccountRepository)
	svc := services.NewAccountService(repo)

	roles := []domain.AccountRole{domain.RoleRawMaterialAsset, domain.RoleFinishedGoodsAsset}
	repo.On("FindAccountsByRoles", mock.Anything, "tenant-1", roles).
		Return(map[domain.AccountRole]domain.Account{
			domain.RoleRawMaterialAsset:   {AccountID: "acc-rm", IsActive: true},
			domain.RoleFinishedGoodsAsset: {AccountID: "acc-fg", IsActive: true},
		}, nil)

	accounts, err := svc.ResolveAccountsByRoles(context.Background(), "tenant-1", roles)
	require.NoError(t, err)
	assert.Len(t, accounts, 2)
}

func TestResolveAccountsByRoles_OneMissing(t *testing.T) {
	repo := new(MockAccountRepository)
	svc := services.NewAccountService(repo)

	roles := []domain.AccountRole{domain.RoleRawMaterialAsset, domain.RoleFinishedGoodsAsset}
	repo.On("FindAccountsByRoles", mock.Anything, "tenant-1", roles).
		Return(map[domain.AccountRole]domain.Account{
			domain.RoleRawMaterialAsset: {AccountID: "acc-rm", IsActive: true},
		}, nil)

	_, err := svc.ResolveAccountsByRoles(context.Background(), "tenant-1", roles)
	assert.ErrorIs(t, err, apperrors.ErrMissingLedgerAccount)

	var missing *apperrors.MissingLedgerAccountError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, string(domain.RoleFinishedGoodsAsset), missing.Role)
}
