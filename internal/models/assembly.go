package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// AssemblyStatus indicates the state of an assembly transaction.
type AssemblyStatus string

const (
	AssemblyPosted   AssemblyStatus = "POSTED"
	AssemblyReversed AssemblyStatus = "REVERSED"
)

// AssemblyTransaction is the persisted record of one production build.
type AssemblyTransaction struct {
	AssemblyID          string          `json:"assemblyID"` // Primary Key (UUID)
	TenantID            string          `json:"tenantID"`
	BOMID               string          `json:"bomID"`
	FinishedProductID   string          `json:"finishedProductID"`
	QuantityProduced    decimal.Decimal `json:"quantityProduced"`
	MaterialCost        decimal.Decimal `json:"materialCost"`
	LaborCost           decimal.Decimal `json:"laborCost"`
	OverheadCost        decimal.Decimal `json:"overheadCost"`
	TotalCost           decimal.Decimal `json:"totalCost"`
	PreviousUnitCost    decimal.Decimal `json:"previousUnitCost"`
	NewUnitCost         decimal.Decimal `json:"newUnitCost"`
	WastageQuantity     decimal.Decimal `json:"wastageQuantity"`
	WastageCost         decimal.Decimal `json:"wastageCost"`
	IsExciseable        bool            `json:"isExciseable"`
	ExciseDutyRate      decimal.Decimal `json:"exciseDutyRate"`
	ExciseDutyAmount    decimal.Decimal `json:"exciseDutyAmount"`
	LedgerTransactionID string          `json:"ledgerTransactionID"`
	Status              AssemblyStatus  `json:"status"`
	ReversalReason      *string         `json:"reversalReason"` // Nullable, set on reversal
	ReversedAt          *time.Time      `json:"reversedAt"`     // Nullable, set on reversal
	Notes               string          `json:"notes"`
	AuditFields
}

// AssemblyLine is the persisted per-component detail of a build.
type AssemblyLine struct {
	AssemblyLineID     string          `json:"assemblyLineID"` // Primary Key (UUID)
	AssemblyID         string          `json:"assemblyID"`
	ComponentProductID string          `json:"componentProductID"`
	PlannedQuantity    decimal.Decimal `json:"plannedQuantity"`
	ActualQuantity     decimal.Decimal `json:"actualQuantity"`
	UnitCost           decimal.Decimal `json:"unitCost"`
	PlannedCost        decimal.Decimal `json:"plannedCost"`
	ActualCost         decimal.Decimal `json:"actualCost"`
	QuantityVariance   decimal.Decimal `json:"quantityVariance"`
	CostVariance       decimal.Decimal `json:"costVariance"`
	ScrapQuantity      decimal.Decimal `json:"scrapQuantity"`
	ScrapCost          decimal.Decimal `json:"scrapCost"`
}
