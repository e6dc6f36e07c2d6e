package dto

import (
	"time"

	"github.com/prodbooks/mfg_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateBOMLineRequest is one component line of a new bill of material.
type CreateBOMLineRequest struct {
	ComponentProductID string          `json:"componentProductID" binding:"required"`
	QuantityPer        decimal.Decimal `json:"quantityPer" binding:"required,posdecimal"`
	ScrapPercent       decimal.Decimal `json:"scrapPercent"`
}

// CreateBOMRequest is the inbound payload for creating a bill of material.
type CreateBOMRequest struct {
	FinishedProductID string                 `json:"finishedProductID" binding:"required"`
	Name              string                 `json:"name" binding:"required"`
	YieldPercent      decimal.Decimal        `json:"yieldPercent" binding:"required,posdecimal"`
	Lines             []CreateBOMLineRequest `json:"lines" binding:"required,min=1,dive"`
}

// BOMLineResponse reports one line of a bill of material.
type BOMLineResponse struct {
	BOMLineID          string          `json:"bomLineID"`
	LineNumber         int             `json:"lineNumber"`
	ComponentProductID string          `json:"componentProductID"`
	QuantityPer        decimal.Decimal `json:"quantityPer"`
	ScrapPercent       decimal.Decimal `json:"scrapPercent"`
}

// BOMResponse is the detail view of a bill of material.
type BOMResponse struct {
	BOMID             string            `json:"bomID"`
	FinishedProductID string            `json:"finishedProductID"`
	Name              string            `json:"name"`
	YieldPercent      decimal.Decimal   `json:"yieldPercent"`
	Status            string            `json:"status"`
	Lines             []BOMLineResponse `json:"lines,omitempty"`
	CreatedAt         time.Time         `json:"createdAt"`
	CreatedBy         string            `json:"createdBy"`
}

// ToBOMResponse converts a domain BOM to its DTO.
func ToBOMResponse(b *domain.BillOfMaterial) BOMResponse {
	lines := make([]BOMLineResponse, len(b.Lines))
	for i, l := range b.Lines {
		lines[i] = BOMLineResponse{
			BOMLineID:          l.BOMLineID,
			LineNumber:         l.LineNumber,
			ComponentProductID: l.ComponentProductID,
			QuantityPer:        l.QuantityPer,
			ScrapPercent:       l.ScrapPercent,
		}
	}
	return BOMResponse{
		BOMID:             b.BOMID,
		FinishedProductID: b.FinishedProductID,
		Name:              b.Name,
		YieldPercent:      b.YieldPercent,
		Status:            string(b.Status),
		Lines:             lines,
		CreatedAt:         b.CreatedAt,
		CreatedBy:         b.CreatedBy,
	}
}
