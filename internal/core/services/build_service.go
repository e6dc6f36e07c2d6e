package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/prodbooks/mfg_ledger/internal/apperrors"
	"github.com/prodbooks/mfg_ledger/internal/core/domain"
	portsrepo "github.com/prodbooks/mfg_ledger/internal/core/ports/repositories"
	portssvc "github.com/prodbooks/mfg_ledger/internal/core/ports/services"
	"github.com/prodbooks/mfg_ledger/internal/dto"
	"github.com/prodbooks/mfg_ledger/internal/middleware"
	"github.com/prodbooks/mfg_ledger/internal/utils/accounting"
	"github.com/prodbooks/mfg_ledger/internal/utils/costing"
)

const (
	defaultListLimit = 20
	maxListLimit     = 100
)

// buildService coordinates the atomic production build: BOM resolution,
// material issue, weighted-average costing, journal posting, and the
// satellite wastage/excise records, all inside one database transaction.
type buildService struct {
	txManager     portsrepo.TransactionManager
	productRepo   portsrepo.ProductRepositoryFacade
	bomRepo       portsrepo.BOMRepositoryFacade
	inventoryRepo portsrepo.InventoryRepositoryFacade
	ledgerRepo    portsrepo.LedgerRepositoryFacade
	assemblyRepo  portsrepo.AssemblyRepositoryFacade
	accountSvc    portssvc.AccountSvcFacade
	exciseSvc     portssvc.ExciseSvcFacade
}

// NewBuildService creates a new build orchestrator service.
func NewBuildService(
	txManager portsrepo.TransactionManager,
	productRepo portsrepo.ProductRepositoryFacade,
	bomRepo portsrepo.BOMRepositoryFacade,
	inventoryRepo portsrepo.InventoryRepositoryFacade,
	ledgerRepo portsrepo.LedgerRepositoryFacade,
	assemblyRepo portsrepo.AssemblyRepositoryFacade,
	accountSvc portssvc.AccountSvcFacade,
	exciseSvc portssvc.ExciseSvcFacade,
) portssvc.BuildSvcFacade {
	return &buildService{
		txManager:     txManager,
		productRepo:   productRepo,
		bomRepo:       bomRepo,
		inventoryRepo: inventoryRepo,
		ledgerRepo:    ledgerRepo,
		assemblyRepo:  assemblyRepo,
		accountSvc:    accountSvc,
		exciseSvc:     exciseSvc,
	}
}

var _ portssvc.BuildSvcFacade = (*buildService)(nil)

// BuildProduct executes one production build as a single all-or-nothing unit
// of work. Implements portssvc.BuildSvcFacade.
func (s *buildService) BuildProduct(ctx context.Context, tenantID string, req dto.BuildProductRequest, userID string) (*domain.AssemblyTransaction, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	laborCost, overheadCost, err := normalizeCosts(req.LaborCost, req.OverheadCost)
	if err != nil {
		return nil, err
	}
	if req.BOMID == "" || req.FinishedProductID == "" {
		return nil, fmt.Errorf("%w: bomID and finishedProductID are required", apperrors.ErrInvalidRequest)
	}
	if req.Quantity.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: quantity must be positive, got %s", apperrors.ErrInvalidRequest, req.Quantity.String())
	}

	// Precondition reads: fail fast before any mutation is attempted.
	bom, err := s.bomRepo.FindBOMByID(ctx, tenantID, req.BOMID)
	if err != nil {
		return nil, fmt.Errorf("failed to find BOM %s: %w", req.BOMID, err)
	}
	if bom.Status != domain.BOMActive {
		return nil, fmt.Errorf("%w: BOM %s", apperrors.ErrBOMArchived, bom.BOMID)
	}
	if bom.FinishedProductID != req.FinishedProductID {
		return nil, fmt.Errorf("%w: BOM %s does not produce product %s", apperrors.ErrInvalidRequest, bom.BOMID, req.FinishedProductID)
	}

	finishedProduct, err := s.productRepo.FindProductByID(ctx, tenantID, req.FinishedProductID)
	if err != nil {
		return nil, fmt.Errorf("failed to find finished product %s: %w", req.FinishedProductID, err)
	}

	requirements, err := costing.ExplodeBOM(*bom, req.Quantity)
	if err != nil {
		return nil, err
	}

	componentIDs := make([]string, len(requirements))
	for i, r := range requirements {
		componentIDs[i] = r.ComponentProductID
	}
	componentProducts, err := s.productRepo.FindProductsByIDs(ctx, tenantID, componentIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to load component products: %w", err)
	}

	now := time.Now().UTC()
	audit := domain.AuditFields{CreatedAt: now, CreatedBy: userID, LastUpdatedAt: now, LastUpdatedBy: userID}

	tx, err := s.txManager.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer s.txManager.Rollback(ctx, tx)

	if err := s.txManager.AcquireTenantPostingLock(ctx, tx, tenantID); err != nil {
		return nil, err
	}

	// Resolve accounts and the excise classification before touching
	// inventory: cheap failures must not follow expensive mutations. Both
	// reads participate in the same transaction scope.
	accounts, err := s.resolveBuildAccounts(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	classification, err := s.exciseSvc.ClassifyProduct(ctx, tenantID, *finishedProduct)
	if err != nil {
		return nil, fmt.Errorf("failed to classify product for excise: %w", err)
	}
	if classification.Regulated {
		exciseAccounts, err := s.accountSvc.ResolveAccountsByRoles(ctx, tenantID,
			[]domain.AccountRole{domain.RoleExciseReceivable, domain.RoleExcisePayable})
		if err != nil {
			return nil, err
		}
		for role, acc := range exciseAccounts {
			accounts[role] = acc
		}
	}

	lockIDs := append(append([]string{}, componentIDs...), req.FinishedProductID)
	items, err := s.inventoryRepo.FindItemsByProductIDsForUpdate(ctx, tx, tenantID, lockIDs)
	if err != nil {
		return nil, err
	}

	assemblyID := uuid.NewString()
	ledgerTxnID := uuid.NewString()

	// Issue raw materials. Unit cost is captured before the mutation.
	materialCost := decimal.Zero
	wastageQty := decimal.Zero
	wastageCost := decimal.Zero
	lines := make([]domain.AssemblyLine, len(requirements))
	for i, r := range requirements {
		item, ok := items[r.ComponentProductID]
		if !ok || item.QuantityAvailable.LessThan(r.ActualQuantity) {
			available := decimal.Zero
			if ok {
				available = item.QuantityAvailable
			}
			return nil, &apperrors.InsufficientStockError{
				ProductID:   r.ComponentProductID,
				ProductName: componentProducts[r.ComponentProductID].Name,
				Required:    r.ActualQuantity,
				Available:   available,
			}
		}

		unitCost := item.AverageCost
		actualCost := r.ActualQuantity.Mul(unitCost)
		plannedCost := r.PlannedQuantity.Mul(unitCost)
		scrapCost := r.ScrapQuantity.Mul(unitCost)

		newOnHand := item.QuantityOnHand.Sub(r.ActualQuantity)
		newAvailable := item.QuantityAvailable.Sub(r.ActualQuantity)
		newValue := item.TotalValue.Sub(actualCost)
		if err := s.inventoryRepo.SetItemBalancesInTx(ctx, tx, item.ItemID,
			newOnHand, newAvailable, newValue, costing.AverageOf(newValue, newOnHand), userID, now); err != nil {
			return nil, fmt.Errorf("failed to issue component %s: %w", r.ComponentProductID, err)
		}

		lines[i] = domain.AssemblyLine{
			AssemblyLineID:     uuid.NewString(),
			AssemblyID:         assemblyID,
			ComponentProductID: r.ComponentProductID,
			PlannedQuantity:    r.PlannedQuantity,
			ActualQuantity:     r.ActualQuantity,
			UnitCost:           unitCost,
			PlannedCost:        plannedCost,
			ActualCost:         actualCost,
			QuantityVariance:   r.ActualQuantity.Sub(r.PlannedQuantity),
			CostVariance:       actualCost.Sub(plannedCost),
			ScrapQuantity:      r.ScrapQuantity,
			ScrapCost:          scrapCost,
		}

		materialCost = materialCost.Add(actualCost)
		wastageQty = wastageQty.Add(r.ScrapQuantity)
		wastageCost = wastageCost.Add(scrapCost)
	}

	// Cost the finished good once, after all issues, then receive it.
	totalCost := materialCost.Add(laborCost).Add(overheadCost)
	priorQty := decimal.Zero
	priorValue := decimal.Zero
	previousUnitCost := decimal.Zero
	finishedItem, finishedExists := items[req.FinishedProductID]
	if finishedExists {
		priorQty = finishedItem.QuantityOnHand
		priorValue = finishedItem.TotalValue
		previousUnitCost = finishedItem.AverageCost
	}
	newQty, newValue, newUnitCost := costing.WeightedAverageCost(priorQty, priorValue, req.Quantity, totalCost)

	if finishedExists {
		newAvailable := finishedItem.QuantityAvailable.Add(req.Quantity)
		if err := s.inventoryRepo.SetItemBalancesInTx(ctx, tx, finishedItem.ItemID,
			newQty, newAvailable, newValue, newUnitCost, userID, now); err != nil {
			return nil, fmt.Errorf("failed to receive finished good: %w", err)
		}
	} else {
		newItem := domain.InventoryItem{
			ItemID:            uuid.NewString(),
			TenantID:          tenantID,
			ProductID:         req.FinishedProductID,
			QuantityOnHand:    newQty,
			QuantityAvailable: req.Quantity,
			TotalValue:        newValue,
			AverageCost:       newUnitCost,
			AuditFields:       audit,
		}
		if err := s.inventoryRepo.CreateItemInTx(ctx, tx, newItem); err != nil {
			return nil, fmt.Errorf("failed to create finished good inventory item: %w", err)
		}
	}

	exciseAmount := decimal.Zero
	if classification.Regulated {
		exciseAmount = costing.ExciseAmount(totalCost, classification.Rate)
	}

	// Construct and verify the journal. An imbalance here is a defect, not
	// a recoverable condition; the whole build aborts.
	journalInput := accounting.AssemblyJournalInput{
		MaterialCost:             materialCost,
		LaborCost:                laborCost,
		OverheadCost:             overheadCost,
		FinishedGoodsAccountID:   accounts[domain.RoleFinishedGoodsAsset].AccountID,
		RawMaterialAccountID:     accounts[domain.RoleRawMaterialAsset].AccountID,
		LaborAppliedAccountID:    accounts[domain.RoleLaborApplied].AccountID,
		OverheadAppliedAccountID: accounts[domain.RoleOverheadApplied].AccountID,
		ExciseAmount:             exciseAmount,
	}
	if classification.Regulated {
		journalInput.ExciseReceivableAccountID = accounts[domain.RoleExciseReceivable].AccountID
		journalInput.ExcisePayableAccountID = accounts[domain.RoleExcisePayable].AccountID
	}
	entries := accounting.BuildAssemblyEntries(journalInput)
	if err := accounting.ValidateEntriesBalance(entries); err != nil {
		logger.Error("Assembly journal does not balance", slog.String("assembly_id", assemblyID), slog.String("error", err.Error()))
		return nil, err
	}
	for i := range entries {
		entries[i].EntryID = uuid.NewString()
		entries[i].LedgerTransactionID = ledgerTxnID
	}

	ledgerTxn := domain.LedgerTransaction{
		LedgerTransactionID: ledgerTxnID,
		TenantID:            tenantID,
		TransactionDate:     now,
		Description:         fmt.Sprintf("Production build of %s x %s", finishedProduct.Name, req.Quantity.String()),
		ReferenceType:       "ASSEMBLY",
		ReferenceID:         assemblyID,
		Status:              domain.LedgerPosted,
		AuditFields:         audit,
	}
	if err := s.ledgerRepo.SaveLedgerTransactionInTx(ctx, tx, ledgerTxn, entries); err != nil {
		return nil, fmt.Errorf("failed to save ledger transaction: %w", err)
	}

	assembly := domain.AssemblyTransaction{
		AssemblyID:          assemblyID,
		TenantID:            tenantID,
		BOMID:               bom.BOMID,
		FinishedProductID:   req.FinishedProductID,
		QuantityProduced:    req.Quantity,
		MaterialCost:        materialCost,
		LaborCost:           laborCost,
		OverheadCost:        overheadCost,
		TotalCost:           totalCost,
		PreviousUnitCost:    previousUnitCost,
		NewUnitCost:         newUnitCost,
		WastageQuantity:     wastageQty,
		WastageCost:         wastageCost,
		IsExciseable:        classification.Regulated,
		ExciseDutyRate:      classification.Rate,
		ExciseDutyAmount:    exciseAmount,
		LedgerTransactionID: ledgerTxnID,
		Status:              domain.AssemblyPosted,
		Notes:               req.Notes,
		AuditFields:         audit,
	}
	if err := s.assemblyRepo.SaveAssemblyInTx(ctx, tx, assembly, lines); err != nil {
		return nil, fmt.Errorf("failed to save assembly transaction: %w", err)
	}

	if wastageCost.IsPositive() {
		wastage := domain.WastageRecord{
			WastageID:             uuid.NewString(),
			TenantID:              tenantID,
			AssemblyID:            assemblyID,
			TotalQuantity:         wastageQty,
			TotalCost:             wastageCost,
			PercentOfMaterialCost: costing.WastagePercentage(wastageCost, materialCost),
			Reasons:               strings.Join(req.WastageReasons, "; "),
			AuditFields:           audit,
		}
		if err := s.assemblyRepo.SaveWastageInTx(ctx, tx, wastage); err != nil {
			return nil, fmt.Errorf("failed to save wastage record: %w", err)
		}
	}

	if classification.Regulated {
		exciseRecord := domain.ExciseDutyRecord{
			ExciseRecordID:   uuid.NewString(),
			TenantID:         tenantID,
			AssemblyID:       assemblyID,
			ProductID:        req.FinishedProductID,
			ExciseCategoryID: classification.CategoryID,
			BaseValue:        totalCost,
			Rate:             classification.Rate,
			DutyAmount:       exciseAmount,
			ReportingStatus:  domain.ExcisePending,
			AuditFields:      audit,
		}
		if err := s.assemblyRepo.SaveExciseInTx(ctx, tx, exciseRecord); err != nil {
			return nil, fmt.Errorf("failed to save excise duty record: %w", err)
		}
	}

	if err := s.txManager.Commit(ctx, tx); err != nil {
		return nil, err
	}

	logger.Info("Production build posted",
		slog.String("assembly_id", assemblyID),
		slog.String("ledger_transaction_id", ledgerTxnID),
		slog.String("total_cost", totalCost.String()),
	)

	assembly.Lines = lines
	return &assembly, nil
}

// ReverseBuild undoes a posted build. Inventory balances are restored from
// the stored assembly lines, not recomputed. Implements
// portssvc.BuildSvcFacade.
func (s *buildService) ReverseBuild(ctx context.Context, tenantID, assemblyID, reason, userID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	if assemblyID == "" {
		return fmt.Errorf("%w: assembly transaction ID is required", apperrors.ErrInvalidRequest)
	}
	if reason == "" {
		return fmt.Errorf("%w: a reversal reason is required", apperrors.ErrInvalidRequest)
	}

	now := time.Now().UTC()

	tx, err := s.txManager.Begin(ctx)
	if err != nil {
		return err
	}
	defer s.txManager.Rollback(ctx, tx)

	if err := s.txManager.AcquireTenantPostingLock(ctx, tx, tenantID); err != nil {
		return err
	}

	assembly, err := s.assemblyRepo.FindAssemblyForUpdateInTx(ctx, tx, tenantID, assemblyID)
	if err != nil {
		return fmt.Errorf("failed to find assembly %s: %w", assemblyID, err)
	}
	if assembly.Status == domain.AssemblyReversed {
		return fmt.Errorf("%w: %s", apperrors.ErrAlreadyReversed, assemblyID)
	}

	productIDs := make([]string, 0, len(assembly.Lines)+1)
	for _, line := range assembly.Lines {
		productIDs = append(productIDs, line.ComponentProductID)
	}
	productIDs = append(productIDs, assembly.FinishedProductID)

	items, err := s.inventoryRepo.FindItemsByProductIDsForUpdate(ctx, tx, tenantID, productIDs)
	if err != nil {
		return err
	}

	// Restore each component by exactly the quantities and costs issued.
	for _, line := range assembly.Lines {
		item, ok := items[line.ComponentProductID]
		if !ok {
			return fmt.Errorf("inventory item missing for component %s during reversal", line.ComponentProductID)
		}
		newOnHand := item.QuantityOnHand.Add(line.ActualQuantity)
		newAvailable := item.QuantityAvailable.Add(line.ActualQuantity)
		newValue := item.TotalValue.Add(line.ActualCost)
		if err := s.inventoryRepo.SetItemBalancesInTx(ctx, tx, item.ItemID,
			newOnHand, newAvailable, newValue, costing.AverageOf(newValue, newOnHand), userID, now); err != nil {
			return fmt.Errorf("failed to restore component %s: %w", line.ComponentProductID, err)
		}
	}

	// Back out the finished good by the original produced quantity and cost,
	// even if units have since been consumed.
	finishedItem, ok := items[assembly.FinishedProductID]
	if !ok {
		return fmt.Errorf("inventory item missing for finished product %s during reversal", assembly.FinishedProductID)
	}
	newOnHand := finishedItem.QuantityOnHand.Sub(assembly.QuantityProduced)
	newAvailable := finishedItem.QuantityAvailable.Sub(assembly.QuantityProduced)
	newValue := finishedItem.TotalValue.Sub(assembly.TotalCost)
	if newOnHand.IsNegative() || newAvailable.IsNegative() {
		logger.Warn("Reversal drove finished good balance negative",
			slog.String("assembly_id", assemblyID),
			slog.String("product_id", assembly.FinishedProductID),
			slog.String("quantity_on_hand", newOnHand.String()),
			slog.String("quantity_available", newAvailable.String()),
		)
	}
	if err := s.inventoryRepo.SetItemBalancesInTx(ctx, tx, finishedItem.ItemID,
		newOnHand, newAvailable, newValue, costing.AverageOf(newValue, newOnHand), userID, now); err != nil {
		return fmt.Errorf("failed to back out finished good: %w", err)
	}

	if err := s.ledgerRepo.MarkLedgerTransactionVoidedInTx(ctx, tx, tenantID, assembly.LedgerTransactionID, userID, now); err != nil {
		return fmt.Errorf("failed to void ledger transaction: %w", err)
	}

	if err := s.assemblyRepo.UpdateAssemblyStatusInTx(ctx, tx, tenantID, assemblyID, domain.AssemblyReversed, reason, userID, now); err != nil {
		return fmt.Errorf("failed to mark assembly reversed: %w", err)
	}

	if err := s.txManager.Commit(ctx, tx); err != nil {
		return err
	}

	logger.Info("Production build reversed", slog.String("assembly_id", assemblyID), slog.String("reason", reason))
	return nil
}

// GetAssemblyByID retrieves a build with its lines. Implements
// portssvc.BuildSvcFacade.
func (s *buildService) GetAssemblyByID(ctx context.Context, tenantID, assemblyID string) (*domain.AssemblyTransaction, error) {
	return s.assemblyRepo.FindAssemblyByID(ctx, tenantID, assemblyID)
}

// ListAssemblies retrieves builds for a tenant, newest first. Implements
// portssvc.BuildSvcFacade.
func (s *buildService) ListAssemblies(ctx context.Context, tenantID string, params dto.ListAssembliesParams) ([]domain.AssemblyTransaction, error) {
	limit := params.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}
	offset := params.Offset
	if offset < 0 {
		offset = 0
	}
	return s.assemblyRepo.ListAssembliesByTenant(ctx, tenantID, limit, offset)
}

// GetWastageByAssembly retrieves the wastage record created by a build.
// Implements portssvc.BuildSvcFacade.
func (s *buildService) GetWastageByAssembly(ctx context.Context, tenantID, assemblyID string) (*domain.WastageRecord, error) {
	return s.assemblyRepo.FindWastageByAssemblyID(ctx, tenantID, assemblyID)
}

// GetExciseByAssembly retrieves the excise duty record created by a build.
// Implements portssvc.BuildSvcFacade.
func (s *buildService) GetExciseByAssembly(ctx context.Context, tenantID, assemblyID string) (*domain.ExciseDutyRecord, error) {
	return s.assemblyRepo.FindExciseByAssemblyID(ctx, tenantID, assemblyID)
}

// GetLedgerTransaction retrieves a ledger transaction with its entries.
// Implements portssvc.BuildSvcFacade.
func (s *buildService) GetLedgerTransaction(ctx context.Context, tenantID, ledgerTransactionID string) (*domain.LedgerTransaction, error) {
	return s.ledgerRepo.FindLedgerTransactionByID(ctx, tenantID, ledgerTransactionID)
}

// resolveBuildAccounts resolves the four account roles every build posts to.
func (s *buildService) resolveBuildAccounts(ctx context.Context, tenantID string) (map[domain.AccountRole]domain.Account, error) {
	return s.accountSvc.ResolveAccountsByRoles(ctx, tenantID, []domain.AccountRole{
		domain.RoleRawMaterialAsset,
		domain.RoleFinishedGoodsAsset,
		domain.RoleLaborApplied,
		domain.RoleOverheadApplied,
	})
}

// normalizeCosts applies zero defaults to the optional labor and overhead
// costs and rejects negatives.
func normalizeCosts(labor, overhead *decimal.Decimal) (decimal.Decimal, decimal.Decimal, error) {
	laborCost := decimal.Zero
	if labor != nil {
		laborCost = *labor
	}
	overheadCost := decimal.Zero
	if overhead != nil {
		overheadCost = *overhead
	}
	if laborCost.IsNegative() || overheadCost.IsNegative() {
		return decimal.Zero, decimal.Zero, fmt.Errorf("%w: labor and overhead costs must not be negative", apperrors.ErrInvalidRequest)
	}
	return laborCost, overheadCost, nil
}
