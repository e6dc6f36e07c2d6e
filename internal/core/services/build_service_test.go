package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/prodbooks/mfg_ledger/internal/apperrors"
	"github.com/prodbooks/mfg_ledger/internal/core/domain"
	portsrepo "github.com/prodbooks/mfg_ledger/internal/core/ports/repositories"
	portssvc "github.com/prodbooks/mfg_ledger/internal/core/ports/services"
	"github.com/prodbooks/mfg_ledger/internal/core/services"
	"github.com/prodbooks/mfg_ledger/internal/dto"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// --- Mock TransactionManager ---
type MockTxManager struct {
	mock.Mock
}

var _ portsrepo.TransactionManager = (*MockTxManager)(nil)

func (m *MockTxManager) Begin(ctx context.Context) (pgx.Tx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(pgx.Tx), args.Error(1)
}

func (m *MockTxManager) Commit(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *MockTxManager) Rollback(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *MockTxManager) AcquireTenantPostingLock(ctx context.Context, tx pgx.Tx, tenantID string) error {
	args := m.Called(ctx, tx, tenantID)
	return args.Error(0)
}

// --- Mock ProductRepository ---
type MockProductRepository struct {
	mock.Mock
}

var _ portsrepo.ProductRepositoryFacade = (*MockProductRepository)(nil)

func (m *MockProductRepository) FindProductByID(ctx context.Context, tenantID, productID string) (*domain.Product, error) {
	args := m.Called(ctx, tenantID, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Product), args.Error(1)
}

func (m *MockProductRepository) FindProductsByIDs(ctx context.Context, tenantID string, productIDs []string) (map[string]domain.Product, error) {
	args := m.Called(ctx, tenantID, productIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.Product), args.Error(1)
}

// --- Mock BOMRepository ---
type MockBOMRepository struct {
	mock.Mock
}

var _ portsrepo.BOMRepositoryFacade = (*MockBOMRepository)(nil)

func (m *MockBOMRepository) FindBOMByID(ctx context.Context, tenantID, bomID string) (*domain.BillOfMaterial, error) {
	args := m.Called(ctx, tenantID, bomID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BillOfMaterial), args.Error(1)
}

func (m *MockBOMRepository) ListBOMsByTenant(ctx context.Context, tenantID string, limit, offset int) ([]domain.BillOfMaterial, error) {
	args := m.Called(ctx, tenantID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BillOfMaterial), args.Error(1)
}

func (m *MockBOMRepository) SaveBOM(ctx context.Context, bom domain.BillOfMaterial) error {
	args := m.Called(ctx, bom)
	return args.Error(0)
}

func (m *MockBOMRepository) UpdateBOMStatus(ctx context.Context, tenantID, bomID string, status domain.BOMStatus, userID string, now time.Time) error {
	args := m.Called(ctx, tenantID, bomID, status, userID, now)
	return args.Error(0)
}

// --- Mock InventoryRepository ---
type MockInventoryRepository struct {
	mock.Mock
}

var _ portsrepo.InventoryRepositoryFacade = (*MockInventoryRepository)(nil)

func (m *MockInventoryRepository) FindItemByProductID(ctx context.Context, tenantID, productID string) (*domain.InventoryItem, error) {
	args := m.Called(ctx, tenantID, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.InventoryItem), args.Error(1)
}

func (m *MockInventoryRepository) ListItemsByTenant(ctx context.Context, tenantID string, limit, offset int) ([]domain.InventoryItem, error) {
	args := m.Called(ctx, tenantID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.InventoryItem), args.Error(1)
}

func (m *MockInventoryRepository) FindItemsByProductIDsForUpdate(ctx context.Context, tx pgx.Tx, tenantID string, productIDs []string) (map[string]domain.InventoryItem, error) {
	args := m.Called(ctx, tx, tenantID, productIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.InventoryItem), args.Error(1)
}

func (m *MockInventoryRepository) SetItemBalancesInTx(ctx context.Context, tx pgx.Tx, itemID string, onHand, available, totalValue, averageCost decimal.Decimal, userID string, now time.Time) error {
	args := m.Called(ctx, tx, itemID, onHand, available, totalValue, averageCost, userID, now)
	return args.Error(0)
}

func (m *MockInventoryRepository) CreateItemInTx(ctx context.Context, tx pgx.Tx, item domain.InventoryItem) error {
	args := m.Called(ctx, tx, item)
	return args.Error(0)
}

// --- Mock LedgerRepository ---
type MockLedgerRepository struct {
	mock.Mock
}

var _ portsrepo.LedgerRepositoryFacade = (*MockLedgerRepository)(nil)

func (m *MockLedgerRepository) FindLedgerTransactionByID(ctx context.Context, tenantID, ledgerTransactionID string) (*domain.LedgerTransaction, error) {
	args := m.Called(ctx, tenantID, ledgerTransactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LedgerTransaction), args.Error(1)
}

func (m *MockLedgerRepository) SaveLedgerTransactionInTx(ctx context.Context, tx pgx.Tx, txn domain.LedgerTransaction, entries []domain.LedgerEntry) error {
	args := m.Called(ctx, tx, txn, entries)
	return args.Error(0)
}

func (m *MockLedgerRepository) MarkLedgerTransactionVoidedInTx(ctx context.Context, tx pgx.Tx, tenantID, ledgerTransactionID, userID string, now time.Time) error {
	args := m.Called(ctx, tx, tenantID, ledgerTransactionID, userID, now)
	return args.Error(0)
}

// --- Mock AssemblyRepository ---
type MockAssemblyRepository struct {
	mock.Mock
}

var _ portsrepo.AssemblyRepositoryFacade = (*MockAssemblyRepository)(nil)

func (m *MockAssemblyRepository) FindAssemblyByID(ctx context.Context, tenantID, assemblyID string) (*domain.AssemblyTransaction, error) {
	args := m.Called(ctx, tenantID, assemblyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AssemblyTransaction), args.Error(1)
}

func (m *MockAssemblyRepository) ListAssembliesByTenant(ctx context.Context, tenantID string, limit, offset int) ([]domain.AssemblyTransaction, error) {
	args := m.Called(ctx, tenantID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AssemblyTransaction), args.Error(1)
}

func (m *MockAssemblyRepository) FindWastageByAssemblyID(ctx context.Context, tenantID, assemblyID string) (*domain.WastageRecord, error) {
	args := m.Called(ctx, tenantID, assemblyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.WastageRecord), args.Error(1)
}

func (m *MockAssemblyRepository) FindExciseByAssemblyID(ctx context.Context, tenantID, assemblyID string) (*domain.ExciseDutyRecord, error) {
	args := m.Called(ctx, tenantID, assemblyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExciseDutyRecord), args.Error(1)
}

func (m *MockAssemblyRepository) FindAssemblyForUpdateInTx(ctx context.Context, tx pgx.Tx, tenantID, assemblyID string) (*domain.AssemblyTransaction, error) {
	args := m.Called(ctx, tx, tenantID, assemblyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AssemblyTransaction), args.Error(1)
}

func (m *MockAssemblyRepository) SaveAssemblyInTx(ctx context.Context, tx pgx.Tx, assembly domain.AssemblyTransaction, lines []domain.AssemblyLine) error {
	args := m.Called(ctx, tx, assembly, lines)
	return args.Error(0)
}

func (m *MockAssemblyRepository) UpdateAssemblyStatusInTx(ctx context.Context, tx pgx.Tx, tenantID, assemblyID string, status domain.AssemblyStatus, reason string, userID string, now time.Time) error {
	args := m.Called(ctx, tx, tenantID, assemblyID, status, reason, userID, now)
	return args.Error(0)
}

func (m *MockAssemblyRepository) SaveWastageInTx(ctx context.Context, tx pgx.Tx, record domain.WastageRecord) error {
	args := m.Called(ctx, tx, record)
	return args.Error(0)
}

func (m *MockAssemblyRepository) SaveExciseInTx(ctx context.Context, tx pgx.Tx, record domain.ExciseDutyRecord) error {
	args := m.Called(ctx, tx, record)
	return args.Error(0)
}

// --- Mock AccountService ---
type MockAccountService struct {
	mock.Mock
}

var _ portssvc.AccountSvcFacade = (*MockAccountService)(nil)

func (m *MockAccountService) ResolveAccountByRole(ctx context.Context, tenantID string, role domain.AccountRole) (*domain.Account, error) {
	args := m.Called(ctx, tenantID, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountService) ResolveAccountsByRoles(ctx context.Context, tenantID string, roles []domain.AccountRole) (map[domain.AccountRole]domain.Account, error) {
	args := m.Called(ctx, tenantID, roles)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[domain.AccountRole]domain.Account), args.Error(1)
}

// --- Mock ExciseService ---
type MockExciseService struct {
	mock.Mock
}

var _ portssvc.ExciseSvcFacade = (*MockExciseService)(nil)

func (m *MockExciseService) ClassifyProduct(ctx context.Context, tenantID string, product domain.Product) (domain.ExciseClassification, error) {
	args := m.Called(ctx, tenantID, product)
	return args.Get(0).(domain.ExciseClassification), args.Error(1)
}

// --- Test Suite ---

type BuildServiceTestSuite struct {
	suite.Suite
	txManager     *MockTxManager
	productRepo   *MockProductRepository
	bomRepo       *MockBOMRepository
	inventoryRepo *MockInventoryRepository
	ledgerRepo    *MockLedgerRepository
	assemblyRepo  *MockAssemblyRepository
	accountSvc    *MockAccountService
	exciseSvc     *MockExciseService
	service       portssvc.BuildSvcFacade

	ctx      context.Context
	tenantID string
	userID   string
}

func (s *BuildServiceTestSuite) SetupTest() {
	s.txManager = new(MockTxManager)
	s.productRepo = new(MockProductRepository)
	s.bomRepo = new(MockBOMRepository)
	s.inventoryRepo = new(MockInventoryRepository)
	s.ledgerRepo = new(MockLedgerRepository)
	s.assemblyRepo = new(MockAssemblyRepository)
	s.accountSvc = new(MockAccountService)
	s.exciseSvc = new(MockExciseService)
	s.service = services.NewBuildService(
		s.txManager,
		s.productRepo,
		s.bomRepo,
		s.inventoryRepo,
		s.ledgerRepo,
		s.assemblyRepo,
		s.accountSvc,
		s.exciseSvc,
	)
	s.ctx = context.Background()
	s.tenantID = "tenant-1"
	s.userID = "user-1"
}

func (s *BuildServiceTestSuite) activeBOM() *domain.BillOfMaterial {
	return &domain.BillOfMaterial{
		BOMID:             "bom-1",
		TenantID:          s.tenantID,
		FinishedProductID: "fg-1",
		Name:              "Widget BOM",
		YieldPercent:      dec("100"),
		Status:            domain.BOMActive,
		Lines: []domain.BOMLine{
			{BOMLineID: "line-1", BOMID: "bom-1", LineNumber: 1, ComponentProductID: "comp-A", QuantityPer: dec("2"), ScrapPercent: dec("10")},
		},
	}
}

func (s *BuildServiceTestSuite) finishedProduct(exciseable bool) *domain.Product {
	p := &domain.Product{
		ProductID: "fg-1",
		TenantID:  s.tenantID,
		Name:      "Widget",
		SKU:       "WID-1",
		Kind:      domain.FinishedGood,
	}
	if exciseable {
		categoryID := "cat-1"
		p.IsExciseable = true
		p.ExciseCategoryID = &categoryID
	}
	return p
}

func (s *BuildServiceTestSuite) postingAccounts() map[domain.AccountRole]domain.Account {
	return map[domain.AccountRole]domain.Account{
		domain.RoleRawMaterialAsset:   {AccountID: "acc-rm", Role: domain.RoleRawMaterialAsset, IsActive: true},
		domain.RoleFinishedGoodsAsset: {AccountID: "acc-fg", Role: domain.RoleFinishedGoodsAsset, IsActive: true},
		domain.RoleLaborApplied:       {AccountID: "acc-labor", Role: domain.RoleLaborApplied, IsActive: true},
		domain.RoleOverheadApplied:    {AccountID: "acc-overhead", Role: domain.RoleOverheadApplied, IsActive: true},
	}
}

func (s *BuildServiceTestSuite) lockedItems() map[string]domain.InventoryItem {
	return map[string]domain.InventoryItem{
		"comp-A": {ItemID: "item-A", TenantID: s.tenantID, ProductID: "comp-A", QuantityOnHand: dec("100"), QuantityAvailable: dec("100"), TotalValue: dec("500"), AverageCost: dec("5")},
		"fg-1":   {ItemID: "item-FG", TenantID: s.tenantID, ProductID: "fg-1", QuantityOnHand: dec("10"), QuantityAvailable: dec("10"), TotalValue: dec("100"), AverageCost: dec("10")},
	}
}

func (s *BuildServiceTestSuite) buildRequest() dto.BuildProductRequest {
	labor := dec("50")
	overhead := dec("20")
	return dto.BuildProductRequest{
		BOMID:             "bom-1",
		FinishedProductID: "fg-1",
		Quantity:          dec("10"),
		LaborCost:         &labor,
		OverheadCost:      &overhead,
		WastageReasons:    []string{"edge trim"},
	}
}

// expectHappyPath wires the default expectations for a successful build.
func (s *BuildServiceTestSuite) expectHappyPath(classification domain.ExciseClassification) {
	s.bomRepo.On("FindBOMByID", mock.Anything, s.tenantID, "bom-1").Return(s.activeBOM(), nil)
	s.productRepo.On("FindProductByID", mock.Anything, s.tenantID, "fg-1").Return(s.finishedProduct(classification.Regulated), nil)
	s.productRepo.On("FindProductsByIDs", mock.Anything, s.tenantID, []string{"comp-A"}).
		Return(map[string]domain.Product{"comp-A": {ProductID: "comp-A", Name: "Steel Rod", Kind: domain.RawMaterial}}, nil)

	s.txManager.On("Begin", mock.Anything).Return(nil, nil)
	s.txManager.On("AcquireTenantPostingLock", mock.Anything, mock.Anything, s.tenantID).Return(nil)
	s.txManager.On("Rollback", mock.Anything, mock.Anything).Return(nil)
	s.txManager.On("Commit", mock.Anything, mock.Anything).Return(nil)

	s.accountSvc.On("ResolveAccountsByRoles", mock.Anything, s.tenantID, []domain.AccountRole{
		domain.RoleRawMaterialAsset,
		domain.RoleFinishedGoodsAsset,
		domain.RoleLaborApplied,
		domain.RoleOverheadApplied,
	}).Return(s.postingAccounts(), nil)
	s.exciseSvc.On("ClassifyProduct", mock.Anything, s.tenantID, mock.Anything).Return(classification, nil)
	if classification.Regulated {
		s.accountSvc.On("ResolveAccountsByRoles", mock.Anything, s.tenantID, []domain.AccountRole{
			domain.RoleExciseReceivable,
			domain.RoleExcisePayable,
		}).Return(map[domain.AccountRole]domain.Account{
			domain.RoleExciseReceivable: {AccountID: "acc-exc-recv", Role: domain.RoleExciseReceivable, IsActive: true},
			domain.RoleExcisePayable:    {AccountID: "acc-exc-pay", Role: domain.RoleExcisePayable, IsActive: true},
		}, nil)
	}

	s.inventoryRepo.On("FindItemsByProductIDsForUpdate", mock.Anything, mock.Anything, s.tenantID, []string{"comp-A", "fg-1"}).
		Return(s.lockedItems(), nil)
	s.inventoryRepo.On("SetItemBalancesInTx", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)
	s.ledgerRepo.On("SaveLedgerTransactionInTx", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)
	s.assemblyRepo.On("SaveAssemblyInTx", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)
	s.assemblyRepo.On("SaveWastageInTx", mock.Anything, mock.Anything, mock.Anything).Return(nil)
	s.assemblyRepo.On("SaveExciseInTx", mock.Anything, mock.Anything, mock.Anything).Return(nil)
}

func (s *BuildServiceTestSuite) TestBuildProduct_HappyPath() {
	s.expectHappyPath(domain.ExciseClassification{Regulated: false, Rate: decimal.Zero})

	assembly, err := s.service.BuildProduct(s.ctx, s.tenantID, s.buildRequest(), s.userID)
	s.Require().NoError(err)
	s.Require().NotNil(assembly)

	// 2 per unit, 10% scrap, 10 units: 22 issued at avg cost 5.
	s.True(assembly.MaterialCost.Equal(dec("110")), "material = %s", assembly.MaterialCost)
	s.True(assembly.LaborCost.Equal(dec("50")))
	s.True(assembly.OverheadCost.Equal(dec("20")))
	s.True(assembly.TotalCost.Equal(dec("180")))
	s.True(assembly.PreviousUnitCost.Equal(dec("10")))
	// (100 + 180) / (10 + 10)
	s.True(assembly.NewUnitCost.Equal(dec("14")), "new unit cost = %s", assembly.NewUnitCost)
	s.True(assembly.WastageQuantity.Equal(dec("2")))
	s.True(assembly.WastageCost.Equal(dec("10")))
	s.False(assembly.IsExciseable)
	s.Equal(domain.AssemblyPosted, assembly.Status)
	s.Require().Len(assembly.Lines, 1)
	s.True(assembly.Lines[0].ActualQuantity.Equal(dec("22")))
	s.True(assembly.Lines[0].ActualCost.Equal(dec("110")))

	// Component issue: 100-22 on hand, 500-110 value.
	s.inventoryRepo.AssertCalled(s.T(), "SetItemBalancesInTx", mock.Anything, mock.Anything, "item-A",
		mock.MatchedBy(func(d decimal.Decimal) bool { return d.Equal(dec("78")) }),
		mock.MatchedBy(func(d decimal.Decimal) bool { return d.Equal(dec("78")) }),
		mock.MatchedBy(func(d decimal.Decimal) bool { return d.Equal(dec("390")) }),
		mock.MatchedBy(func(d decimal.Decimal) bool { return d.Equal(dec("5")) }),
		s.userID, mock.Anything)

	// Finished good receipt at the new weighted average.
	s.inventoryRepo.AssertCalled(s.T(), "SetItemBalancesInTx", mock.Anything, mock.Anything, "item-FG",
		mock.MatchedBy(func(d decimal.Decimal) bool { return d.Equal(dec("20")) }),
		mock.MatchedBy(func(d decimal.Decimal) bool { return d.Equal(dec("20")) }),
		mock.MatchedBy(func(d decimal.Decimal) bool { return d.Equal(dec("280")) }),
		mock.MatchedBy(func(d decimal.Decimal) bool { return d.Equal(dec("14")) }),
		s.userID, mock.Anything)

	// The journal balances and hits the expected accounts.
	s.ledgerRepo.AssertCalled(s.T(), "SaveLedgerTransactionInTx", mock.Anything, mock.Anything, mock.Anything,
		mock.MatchedBy(func(entries []domain.LedgerEntry) bool {
			if len(entries) != 4 {
				return false
			}
			debits := decimal.Zero
			credits := decimal.Zero
			for _, e := range entries {
				if e.EntryType == domain.Debit {
					debits = debits.Add(e.Amount)
				} else {
					credits = credits.Add(e.Amount)
				}
			}
			return debits.Equal(credits) && debits.Equal(dec("180"))
		}))

	s.assemblyRepo.AssertCalled(s.T(), "SaveWastageInTx", mock.Anything, mock.Anything,
		mock.MatchedBy(func(w domain.WastageRecord) bool {
			return w.TotalQuantity.Equal(dec("2")) && w.TotalCost.Equal(dec("10")) && w.Reasons == "edge trim"
		}))
	s.assemblyRepo.AssertNotCalled(s.T(), "SaveExciseInTx", mock.Anything, mock.Anything, mock.Anything)
	s.txManager.AssertCalled(s.T(), "Commit", mock.Anything, mock.Anything)
}

func (s *BuildServiceTestSuite) TestBuildProduct_ExciseableProduct() {
	s.expectHappyPath(domain.ExciseClassification{Regulated: true, CategoryID: "cat-1", Rate: dec("5")})

	assembly, err := s.service.BuildProduct(s.ctx, s.tenantID, s.buildRequest(), s.userID)
	s.Require().NoError(err)

	// 5% of the 180 manufacturing cost.
	s.True(assembly.IsExciseable)
	s.True(assembly.ExciseDutyAmount.Equal(dec("9")), "duty = %s", assembly.ExciseDutyAmount)
	s.True(assembly.ExciseDutyRate.Equal(dec("5")))

	s.assemblyRepo.AssertCalled(s.T(), "SaveExciseInTx", mock.Anything, mock.Anything,
		mock.MatchedBy(func(r domain.ExciseDutyRecord) bool {
			return r.ExciseCategoryID == "cat-1" &&
				r.BaseValue.Equal(dec("180")) &&
				r.DutyAmount.Equal(dec("9")) &&
				r.ReportingStatus == domain.ExcisePending
		}))

	// The excise pair keeps the journal balanced at 189 per side.
	s.ledgerRepo.AssertCalled(s.T(), "SaveLedgerTransactionInTx", mock.Anything, mock.Anything, mock.Anything,
		mock.MatchedBy(func(entries []domain.LedgerEntry) bool {
			if len(entries) != 6 {
				return false
			}
			debits := decimal.Zero
			credits := decimal.Zero
			for _, e := range entries {
				if e.EntryType == domain.Debit {
					debits = debits.Add(e.Amount)
				} else {
					credits = credits.Add(e.Amount)
				}
			}
			return debits.Equal(credits) && debits.Equal(dec("189"))
		}))
}

func (s *BuildServiceTestSuite) TestBuildProduct_InsufficientStock() {
	s.expectHappyPath(domain.ExciseClassification{Regulated: false, Rate: decimal.Zero})
	// Override the lock read: only 15 of comp-A available against the 22 needed.
	s.inventoryRepo.ExpectedCalls = nil
	s.inventoryRepo.On("FindItemsByProductIDsForUpdate", mock.Anything, mock.Anything, s.tenantID, mock.Anything).
		Return(map[string]domain.InventoryItem{
			"comp-A": {ItemID: "item-A", ProductID: "comp-A", QuantityOnHand: dec("15"), QuantityAvailable: dec("15"), TotalValue: dec("75"), AverageCost: dec("5")},
		}, nil)

	_, err := s.service.BuildProduct(s.ctx, s.tenantID, s.buildRequest(), s.userID)
	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrInsufficientStock)

	var stockErr *apperrors.InsufficientStockError
	s.Require().ErrorAs(err, &stockErr)
	s.Equal("comp-A", stockErr.ProductID)
	s.True(stockErr.Required.Equal(dec("22")))
	s.True(stockErr.Available.Equal(dec("15")))

	// Nothing was mutated or committed.
	s.inventoryRepo.AssertNotCalled(s.T(), "SetItemBalancesInTx", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	s.txManager.AssertNotCalled(s.T(), "Commit", mock.Anything, mock.Anything)
}

func (s *BuildServiceTestSuite) TestBuildProduct_ArchivedBOM() {
	bom := s.activeBOM()
	bom.Status = domain.BOMArchived
	s.bomRepo.On("FindBOMByID", mock.Anything, s.tenantID, "bom-1").Return(bom, nil)

	_, err := s.service.BuildProduct(s.ctx, s.tenantID, s.buildRequest(), s.userID)
	s.ErrorIs(err, apperrors.ErrBOMArchived)
	s.txManager.AssertNotCalled(s.T(), "Begin", mock.Anything)
}

func (s *BuildServiceTestSuite) TestBuildProduct_BOMProductMismatch() {
	bom := s.activeBOM()
	bom.FinishedProductID = "other-product"
	s.bomRepo.On("FindBOMByID", mock.Anything, s.tenantID, "bom-1").Return(bom, nil)

	_, err := s.service.BuildProduct(s.ctx, s.tenantID, s.buildRequest(), s.userID)
	s.ErrorIs(err, apperrors.ErrInvalidRequest)
}

func (s *BuildServiceTestSuite) TestBuildProduct_NonPositiveQuantity() {
	req := s.buildRequest()
	req.Quantity = dec("0")

	_, err := s.service.BuildProduct(s.ctx, s.tenantID, req, s.userID)
	s.ErrorIs(err, apperrors.ErrInvalidRequest)
}

func (s *BuildServiceTestSuite) TestBuildProduct_NegativeLaborCost() {
	req := s.buildRequest()
	labor := dec("-1")
	req.LaborCost = &labor

	_, err := s.service.BuildProduct(s.ctx, s.tenantID, req, s.userID)
	s.ErrorIs(err, apperrors.ErrInvalidRequest)
}

func (s *BuildServiceTestSuite) TestBuildProduct_MissingLedgerAccount() {
	s.expectHappyPath(domain.ExciseClassification{Regulated: false, Rate: decimal.Zero})
	s.accountSvc.ExpectedCalls = nil
	s.accountSvc.On("ResolveAccountsByRoles", mock.Anything, s.tenantID, mock.Anything).
		Return(nil, &apperrors.MissingLedgerAccountError{Role: string(domain.RoleLaborApplied)})

	_, err := s.service.BuildProduct(s.ctx, s.tenantID, s.buildRequest(), s.userID)
	s.ErrorIs(err, apperrors.ErrMissingLedgerAccount)
	s.txManager.AssertNotCalled(s.T(), "Commit", mock.Anything, mock.Anything)
}

func (s *BuildServiceTestSuite) TestBuildProduct_ConcurrencyConflict() {
	s.expectHappyPath(domain.ExciseClassification{Regulated: false, Rate: decimal.Zero})
	s.inventoryRepo.ExpectedCalls = nil
	s.inventoryRepo.On("FindItemsByProductIDsForUpdate", mock.Anything, mock.Anything, s.tenantID, mock.Anything).
		Return(nil, apperrors.ErrConcurrencyConflict)

	_, err := s.service.BuildProduct(s.ctx, s.tenantID, s.buildRequest(), s.userID)
	s.ErrorIs(err, apperrors.ErrConcurrencyConflict)
	s.txManager.AssertNotCalled(s.T(), "Commit", mock.Anything, mock.Anything)
}

func (s *BuildServiceTestSuite) postedAssembly() *domain.AssemblyTransaction {
	return &domain.AssemblyTransaction{
		AssemblyID:          "asm-1",
		TenantID:            s.tenantID,
		BOMID:               "bom-1",
		FinishedProductID:   "fg-1",
		QuantityProduced:    dec("10"),
		MaterialCost:        dec("110"),
		LaborCost:           dec("50"),
		OverheadCost:        dec("20"),
		TotalCost:           dec("180"),
		LedgerTransactionID: "led-1",
		Status:              domain.AssemblyPosted,
		Lines: []domain.AssemblyLine{
			{AssemblyLineID: "asml-1", AssemblyID: "asm-1", ComponentProductID: "comp-A", ActualQuantity: dec("22"), UnitCost: dec("5"), ActualCost: dec("110")},
		},
	}
}

func (s *BuildServiceTestSuite) expectReversal(items map[string]domain.InventoryItem) {
	s.txManager.On("Begin", mock.Anything).Return(nil, nil)
	s.txManager.On("AcquireTenantPostingLock", mock.Anything, mock.Anything, s.tenantID).Return(nil)
	s.txManager.On("Rollback", mock.Anything, mock.Anything).Return(nil)
	s.txManager.On("Commit", mock.Anything, mock.Anything).Return(nil)

	s.assemblyRepo.On("FindAssemblyForUpdateInTx", mock.Anything, mock.Anything, s.tenantID, "asm-1").Return(s.postedAssembly(), nil)
	s.inventoryRepo.On("FindItemsByProductIDsForUpdate", mock.Anything, mock.Anything, s.tenantID, []string{"comp-A", "fg-1"}).Return(items, nil)
	s.inventoryRepo.On("SetItemBalancesInTx", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)
	s.ledgerRepo.On("MarkLedgerTransactionVoidedInTx", mock.Anything, mock.Anything, s.tenantID, "led-1", s.userID, mock.Anything).Return(nil)
	s.assemblyRepo.On("UpdateAssemblyStatusInTx", mock.Anything, mock.Anything, s.tenantID, "asm-1", domain.AssemblyReversed, "bad batch", s.userID, mock.Anything).Return(nil)
}

func (s *BuildServiceTestSuite) TestReverseBuild_RestoresExactBalances() {
	s.expectReversal(map[string]domain.InventoryItem{
		"comp-A": {ItemID: "item-A", ProductID: "comp-A", QuantityOnHand: dec("78"), QuantityAvailable: dec("78"), TotalValue: dec("390"), AverageCost: dec("5")},
		"fg-1":   {ItemID: "item-FG", ProductID: "fg-1", QuantityOnHand: dec("20"), QuantityAvailable: dec("20"), TotalValue: dec("280"), AverageCost: dec("14")},
	})

	err := s.service.ReverseBuild(s.ctx, s.tenantID, "asm-1", "bad batch", s.userID)
	s.Require().NoError(err)

	// Components come back by the stored actual quantity and cost.
	s.inventoryRepo.AssertCalled(s.T(), "SetItemBalancesInTx", mock.Anything, mock.Anything, "item-A",
		mock.MatchedBy(func(d decimal.Decimal) bool { return d.Equal(dec("100")) }),
		mock.MatchedBy(func(d decimal.Decimal) bool { return d.Equal(dec("100")) }),
		mock.MatchedBy(func(d decimal.Decimal) bool { return d.Equal(dec("500")) }),
		mock.MatchedBy(func(d decimal.Decimal) bool { return d.Equal(dec("5")) }),
		s.userID, mock.Anything)

	// The finished good gives back the original receipt.
	s.inventoryRepo.AssertCalled(s.T(), "SetItemBalancesInTx", mock.Anything, mock.Anything, "item-FG",
		mock.MatchedBy(func(d decimal.Decimal) bool { return d.Equal(dec("10")) }),
		mock.MatchedBy(func(d decimal.Decimal) bool { return d.Equal(dec("10")) }),
		mock.MatchedBy(func(d decimal.Decimal) bool { return d.Equal(dec("100")) }),
		mock.MatchedBy(func(d decimal.Decimal) bool { return d.Equal(dec("10")) }),
		s.userID, mock.Anything)

	s.ledgerRepo.AssertCalled(s.T(), "MarkLedgerTransactionVoidedInTx", mock.Anything, mock.Anything, s.tenantID, "led-1", s.userID, mock.Anything)
	s.assemblyRepo.AssertCalled(s.T(), "UpdateAssemblyStatusInTx", mock.Anything, mock.Anything, s.tenantID, "asm-1", domain.AssemblyReversed, "bad batch", s.userID, mock.Anything)
	s.txManager.AssertCalled(s.T(), "Commit", mock.Anything, mock.Anything)
}

func (s *BuildServiceTestSuite) TestReverseBuild_AllowsNegativeFinishedBalance() {
	// Most of the produced units were already consumed downstream.
	s.expectReversal(map[string]domain.InventoryItem{
		"comp-A": {ItemID: "item-A", ProductID: "comp-A", QuantityOnHand: dec("78"), QuantityAvailable: dec("78"), TotalValue: dec("390"), AverageCost: dec("5")},
		"fg-1":   {ItemID: "item-FG", ProductID: "fg-1", QuantityOnHand: dec("4"), QuantityAvailable: dec("4"), TotalValue: dec("56"), AverageCost: dec("14")},
	})

	err := s.service.ReverseBuild(s.ctx, s.tenantID, "asm-1", "bad batch", s.userID)
	s.Require().NoError(err)

	s.inventoryRepo.AssertCalled(s.T(), "SetItemBalancesInTx", mock.Anything, mock.Anything, "item-FG",
		mock.MatchedBy(func(d decimal.Decimal) bool { return d.Equal(dec("-6")) }),
		mock.MatchedBy(func(d decimal.Decimal) bool { return d.Equal(dec("-6")) }),
		mock.MatchedBy(func(d decimal.Decimal) bool { return d.Equal(dec("-124")) }),
		mock.Anything,
		s.userID, mock.Anything)
	s.txManager.AssertCalled(s.T(), "Commit", mock.Anything, mock.Anything)
}

func (s *BuildServiceTestSuite) TestReverseBuild_AlreadyReversed() {
	s.txManager.On("Begin", mock.Anything).Return(nil, nil)
	s.txManager.On("AcquireTenantPostingLock", mock.Anything, mock.Anything, s.tenantID).Return(nil)
	s.txManager.On("Rollback", mock.Anything, mock.Anything).Return(nil)

	reversed := s.postedAssembly()
	reversed.Status = domain.AssemblyReversed
	s.assemblyRepo.On("FindAssemblyForUpdateInTx", mock.Anything, mock.Anything, s.tenantID, "asm-1").Return(reversed, nil)

	err := s.service.ReverseBuild(s.ctx, s.tenantID, "asm-1", "bad batch", s.userID)
	s.ErrorIs(err, apperrors.ErrAlreadyReversed)
	s.ledgerRepo.AssertNotCalled(s.T(), "MarkLedgerTransactionVoidedInTx", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	s.txManager.AssertNotCalled(s.T(), "Commit", mock.Anything, mock.Anything)
}

func (s *BuildServiceTestSuite) TestReverseBuild_RequiresReason() {
	err := s.service.ReverseBuild(s.ctx, s.tenantID, "asm-1", "", s.userID)
	s.ErrorIs(err, apperrors.ErrInvalidRequest)
	s.txManager.AssertNotCalled(s.T(), "Begin", mock.Anything)
}

func (s *BuildServiceTestSuite) TestReverseBuild_NotFound() {
	s.txManager.On("Begin", mock.Anything).Return(nil, nil)
	s.txManager.On("AcquireTenantPostingLock", mock.Anything, mock.Anything, s.tenantID).Return(nil)
	s.txManager.On("Rollback", mock.Anything, mock.Anything).Return(nil)
	s.assemblyRepo.On("FindAssemblyForUpdateInTx", mock.Anything, mock.Anything, s.tenantID, "missing").
		Return(nil, apperrors.ErrNotFound)

	err := s.service.ReverseBuild(s.ctx, s.tenantID, "missing", "bad batch", s.userID)
	s.ErrorIs(err, apperrors.ErrNotFound)
}

func (s *BuildServiceTestSuite) TestListAssemblies_DefaultsAndCaps() {
	s.assemblyRepo.On("ListAssembliesByTenant", mock.Anything, s.tenantID, 20, 0).
		Return([]domain.AssemblyTransaction{}, nil).Once()
	_, err := s.service.ListAssemblies(s.ctx, s.tenantID, dto.ListAssembliesParams{})
	s.NoError(err)

	s.assemblyRepo.On("ListAssembliesByTenant", mock.Anything, s.tenantID, 100, 0).
		Return([]domain.AssemblyTransaction{}, nil).Once()
	_, err = s.service.ListAssemblies(s.ctx, s.tenantID, dto.ListAssembliesParams{Limit: 1000})
	s.NoError(err)

	s.assemblyRepo.AssertExpectations(s.T())
}

func TestBuildServiceTestSuite(t *testing.T) {
	suite.Run(t, new(BuildServiceTestSuite))
}

// Guard against accidental fallthrough of sentinel wrapping in the service.
func TestInsufficientStockErrorUnwraps(t *testing.T) {
	err := &apperrors.InsufficientStockError{ProductID: "p", Required: dec("2"), Available: dec("1")}
	if !errors.Is(err, apperrors.ErrInsufficientStock) {
		t.Fatal("expected InsufficientStockError to unwrap to ErrInsufficientStock")
	}
}
