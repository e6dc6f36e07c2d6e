package dto

import (
	"time"

	"github.com/prodbooks/mfg_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// BuildProductRequest is the inbound payload for posting a production build.
// Labor and overhead costs default to zero when omitted.
type BuildProductRequest struct {
	BOMID             string           `json:"bomID" binding:"required"`
	FinishedProductID string           `json:"finishedProductID" binding:"required"`
	Quantity          decimal.Decimal  `json:"quantity" binding:"required,posdecimal"`
	LaborCost         *decimal.Decimal `json:"laborCost,omitempty"`
	OverheadCost      *decimal.Decimal `json:"overheadCost,omitempty"`
	WastageReasons    []string         `json:"wastageReasons,omitempty"`
	Notes             string           `json:"notes,omitempty"`
}

// BuildProductResponse reports the outcome of a posted build.
type BuildProductResponse struct {
	AssemblyTransactionID  string           `json:"assemblyTransactionID"`
	Quantity               decimal.Decimal  `json:"quantity"`
	MaterialCost           decimal.Decimal  `json:"materialCost"`
	LaborCost              decimal.Decimal  `json:"laborCost"`
	OverheadCost           decimal.Decimal  `json:"overheadCost"`
	TotalManufacturingCost decimal.Decimal  `json:"totalManufacturingCost"`
	PreviousUnitCost       decimal.Decimal  `json:"previousUnitCost"`
	NewUnitCost            decimal.Decimal  `json:"newUnitCost"`
	WastageQuantity        decimal.Decimal  `json:"wastageQuantity"`
	WastageCost            decimal.Decimal  `json:"wastageCost"`
	IsExciseableProduct    bool             `json:"isExciseableProduct"`
	ExciseDutyAmount       *decimal.Decimal `json:"exciseDutyAmount,omitempty"`
	ExciseDutyRate         *decimal.Decimal `json:"exciseDutyRate,omitempty"`
	Status                 string           `json:"status"`
	CreatedAt              time.Time        `json:"createdAt"`
}

// ReverseBuildRequest is the inbound payload for reversing a posted build.
type ReverseBuildRequest struct {
	Reason string `json:"reason" binding:"required"`
}

// ToBuildProductResponse converts a posted assembly to the response DTO.
func ToBuildProductResponse(a *domain.AssemblyTransaction) BuildProductResponse {
	resp := BuildProductResponse{
		AssemblyTransactionID:  a.AssemblyID,
		Quantity:               a.QuantityProduced,
		MaterialCost:           a.MaterialCost,
		LaborCost:              a.LaborCost,
		OverheadCost:           a.OverheadCost,
		TotalManufacturingCost: a.TotalCost,
		PreviousUnitCost:       a.PreviousUnitCost,
		NewUnitCost:            a.NewUnitCost,
		WastageQuantity:        a.WastageQuantity,
		WastageCost:            a.WastageCost,
		IsExciseableProduct:    a.IsExciseable,
		Status:                 string(a.Status),
		CreatedAt:              a.CreatedAt,
	}
	if a.IsExciseable {
		amount := a.ExciseDutyAmount
		rate := a.ExciseDutyRate
		resp.ExciseDutyAmount = &amount
		resp.ExciseDutyRate = &rate
	}
	return resp
}
