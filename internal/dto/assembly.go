package dto

import (
	"time"

	"github.com/prodbooks/mfg_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// AssemblyLineResponse reports one component consumption within a build.
type AssemblyLineResponse struct {
	AssemblyLineID     string          `json:"assemblyLineID"`
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

// AssemblyResponse is the detail view of an assembly transaction.
type AssemblyResponse struct {
	AssemblyID          string                 `json:"assemblyID"`
	BOMID               string                 `json:"bomID"`
	FinishedProductID   string                 `json:"finishedProductID"`
	QuantityProduced    decimal.Decimal        `json:"quantityProduced"`
	MaterialCost        decimal.Decimal        `json:"materialCost"`
	LaborCost           decimal.Decimal        `json:"laborCost"`
	OverheadCost        decimal.Decimal        `json:"overheadCost"`
	TotalCost           decimal.Decimal        `json:"totalCost"`
	PreviousUnitCost    decimal.Decimal        `json:"previousUnitCost"`
	NewUnitCost         decimal.Decimal        `json:"newUnitCost"`
	WastageQuantity     decimal.Decimal        `json:"wastageQuantity"`
	WastageCost         decimal.Decimal        `json:"wastageCost"`
	IsExciseable        bool                   `json:"isExciseable"`
	ExciseDutyRate      decimal.Decimal        `json:"exciseDutyRate"`
	ExciseDutyAmount    decimal.Decimal        `json:"exciseDutyAmount"`
	LedgerTransactionID string                 `json:"ledgerTransactionID"`
	Status              string                 `json:"status"`
	ReversalReason      *string                `json:"reversalReason,omitempty"`
	ReversedAt          *time.Time             `json:"reversedAt,omitempty"`
	Notes               string                 `json:"notes,omitempty"`
	Lines               []AssemblyLineResponse `json:"lines,omitempty"`
	CreatedAt           time.Time              `json:"createdAt"`
	CreatedBy           string                 `json:"createdBy"`
}

// ListAssembliesParams holds pagination parameters for listing builds.
type ListAssembliesParams struct {
	Limit  int `form:"limit"`
	Offset int `form:"offset"`
}

// ListAssembliesResponse wraps a page of assembly transactions.
type ListAssembliesResponse struct {
	Assemblies []AssemblyResponse `json:"assemblies"`
	Limit      int                `json:"limit"`
	Offset     int                `json:"offset"`
}

// ToAssemblyLineResponse converts a domain assembly line to its DTO.
func ToAssemblyLineResponse(l domain.AssemblyLine) AssemblyLineResponse {
	return AssemblyLineResponse{
		AssemblyLineID:     l.AssemblyLineID,
		ComponentProductID: l.ComponentProductID,
		PlannedQuantity:    l.PlannedQuantity,
		ActualQuantity:     l.ActualQuantity,
		UnitCost:           l.UnitCost,
		PlannedCost:        l.PlannedCost,
		ActualCost:         l.ActualCost,
		QuantityVariance:   l.QuantityVariance,
		CostVariance:       l.CostVariance,
		ScrapQuantity:      l.ScrapQuantity,
		ScrapCost:          l.ScrapCost,
	}
}

// ToAssemblyResponse converts a domain assembly transaction to its DTO.
func ToAssemblyResponse(a *domain.AssemblyTransaction) AssemblyResponse {
	lines := make([]AssemblyLineResponse, len(a.Lines))
	for i, l := range a.Lines {
		lines[i] = ToAssemblyLineResponse(l)
	}
	return AssemblyResponse{
		AssemblyID:          a.AssemblyID,
		BOMID:               a.BOMID,
		FinishedProductID:   a.FinishedProductID,
		QuantityProduced:    a.QuantityProduced,
		MaterialCost:        a.MaterialCost,
		LaborCost:           a.LaborCost,
		OverheadCost:        a.OverheadCost,
		TotalCost:           a.TotalCost,
		PreviousUnitCost:    a.PreviousUnitCost,
		NewUnitCost:         a.NewUnitCost,
		WastageQuantity:     a.WastageQuantity,
		WastageCost:         a.WastageCost,
		IsExciseable:        a.IsExciseable,
		ExciseDutyRate:      a.ExciseDutyRate,
		ExciseDutyAmount:    a.ExciseDutyAmount,
		LedgerTransactionID: a.LedgerTransactionID,
		Status:              string(a.Status),
		ReversalReason:      a.ReversalReason,
		ReversedAt:          a.ReversedAt,
		Notes:               a.Notes,
		Lines:               lines,
		CreatedAt:           a.CreatedAt,
		CreatedBy:           a.CreatedBy,
	}
}
