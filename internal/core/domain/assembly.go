package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// AssemblyStatus indicates the state of an assembly transaction. POSTED may
// transition to REVERSED exactly once; both are otherwise terminal.
type AssemblyStatus string

const (
	AssemblyPosted   AssemblyStatus = "POSTED"
	AssemblyReversed AssemblyStatus = "REVERSED"
)

// AssemblyTransaction records one posted production build: the BOM used, the
// quantity produced, the full cost breakdown, and the link to the ledger
// transaction that carries the accounting effect. Immutable once POSTED
// except for the transition to REVERSED.
type AssemblyTransaction struct {
	AssemblyID          string          `json:"assemblyID"` // Primary Key (UUID)
	TenantID            string          `json:"tenantID"`
	BOMID               string          `json:"bomID"`
	FinishedProductID   string          `json:"finishedProductID"`
	QuantityProduced    decimal.Decimal `json:"quantityProduced"`
	MaterialCost        decimal.Decimal `json:"materialCost"`
	LaborCost           decimal.Decimal `json:"laborCost"`
	OverheadCost        decimal.Decimal `json:"overheadCost"`
	TotalCost           decimal.Decimal `json:"totalCost"` // material + labor + overhead
	PreviousUnitCost    decimal.Decimal `json:"previousUnitCost"`
	NewUnitCost         decimal.Decimal `json:"newUnitCost"`
	WastageQuantity     decimal.Decimal `json:"wastageQuantity"`
	WastageCost         decimal.Decimal `json:"wastageCost"`
	IsExciseable        bool            `json:"isExciseable"`
	ExciseDutyRate      decimal.Decimal `json:"exciseDutyRate"`
	ExciseDutyAmount    decimal.Decimal `json:"exciseDutyAmount"`
	LedgerTransactionID string          `json:"ledgerTransactionID"`
	Status              AssemblyStatus  `json:"status"`
	ReversalReason      *string         `json:"reversalReason,omitempty"`
	ReversedAt          *time.Time      `json:"reversedAt,omitempty"`
	Notes               string          `json:"notes,omitempty"`
	Lines               []AssemblyLine  `json:"lines,omitempty"`
	AuditFields
}

// AssemblyLine records the consumption of one BOM component in a specific
// build: planned vs. actual quantity and cost, variance, and scrap. Created
// atomically with its parent AssemblyTransaction; never mutated afterward.
type AssemblyLine struct {
	AssemblyLineID     string          `json:"assemblyLineID"`
	AssemblyID         string          `json:"assemblyID"`
	ComponentProductID string          `json:"componentProductID"`
	PlannedQuantity    decimal.Decimal `json:"plannedQuantity"`
	ActualQuantity     decimal.Decimal `json:"actualQuantity"`
	UnitCost           decimal.Decimal `json:"unitCost"` // Average cost captured at issue time
	PlannedCost        decimal.Decimal `json:"plannedCost"`
	ActualCost         decimal.Decimal `json:"actualCost"`
	QuantityVariance   decimal.Decimal `json:"quantityVariance"` // actual - planned
	CostVariance       decimal.Decimal `json:"costVariance"`
	ScrapQuantity      decimal.Decimal `json:"scrapQuantity"`
	ScrapCost          decimal.Decimal `json:"scrapCost"`
}
