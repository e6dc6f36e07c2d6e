package dto

import (
	"github.com/prodbooks/mfg_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// WastageResponse reports the scrap consumed by one build.
type WastageResponse struct {
	WastageID             string          `json:"wastageID"`
	AssemblyID            string          `json:"assemblyID"`
	TotalQuantity         decimal.Decimal `json:"totalQuantity"`
	TotalCost             decimal.Decimal `json:"totalCost"`
	PercentOfMaterialCost decimal.Decimal `json:"percentOfMaterialCost"`
	Reasons               string          `json:"reasons,omitempty"`
}

// ToWastageResponse converts a domain wastage record to its DTO.
func ToWastageResponse(w *domain.WastageRecord) WastageResponse {
	return WastageResponse{
		WastageID:             w.WastageID,
		AssemblyID:            w.AssemblyID,
		TotalQuantity:         w.TotalQuantity,
		TotalCost:             w.TotalCost,
		PercentOfMaterialCost: w.PercentOfMaterialCost,
		Reasons:               w.Reasons,
	}
}

// ExciseDutyResponse reports the duty accrued by one build.
type ExciseDutyResponse struct {
	ExciseRecordID   string          `json:"exciseRecordID"`
	AssemblyID       string          `json:"assemblyID"`
	ProductID        string          `json:"productID"`
	ExciseCategoryID string          `json:"exciseCategoryID"`
	BaseValue        decimal.Decimal `json:"baseValue"`
	Rate             decimal.Decimal `json:"rate"`
	DutyAmount       decimal.Decimal `json:"dutyAmount"`
	ReportingStatus  string          `json:"reportingStatus"`
}

// ToExciseDutyResponse converts a domain excise duty record to its DTO.
func ToExciseDutyResponse(e *domain.ExciseDutyRecord) ExciseDutyResponse {
	return ExciseDutyResponse{
		ExciseRecordID:   e.ExciseRecordID,
		AssemblyID:       e.AssemblyID,
		ProductID:        e.ProductID,
		ExciseCategoryID: e.ExciseCategoryID,
		BaseValue:        e.BaseValue,
		Rate:             e.Rate,
		DutyAmount:       e.DutyAmount,
		ReportingStatus:  string(e.ReportingStatus),
	}
}
