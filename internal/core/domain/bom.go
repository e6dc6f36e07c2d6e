package domain

import "github.com/shopspring/decimal"

// BOMStatus indicates whether a bill of material may be used for new builds.
type BOMStatus string

const (
	BOMActive   BOMStatus = "ACTIVE"
	BOMArchived BOMStatus = "ARCHIVED"
)

// BillOfMaterial is the recipe mapping one finished product to the component
// quantities required to produce it. Archived BOMs must not be used for new
// builds.
type BillOfMaterial struct {
	BOMID             string          `json:"bomID"` // Primary Key (UUID)
	TenantID          string          `json:"tenantID"`
	FinishedProductID string          `json:"finishedProductID"`
	Name              string          `json:"name"`
	YieldPercent      decimal.Decimal `json:"yieldPercent"` // Output efficiency; <100 inflates input quantities
	Status            BOMStatus       `json:"status"`
	Lines             []BOMLine       `json:"lines,omitempty"` // Ordered by LineNumber
	AuditFields
}

// BOMLine is one component requirement within a bill of material.
// Invariant: QuantityPer > 0.
type BOMLine struct {
	BOMLineID          string          `json:"bomLineID"`
	BOMID              string          `json:"bomID"`
	LineNumber         int             `json:"lineNumber"`
	ComponentProductID string          `json:"componentProductID"`
	QuantityPer        decimal.Decimal `json:"quantityPer"`  // Units of component per unit of finished good
	ScrapPercent       decimal.Decimal `json:"scrapPercent"` // Expected wastage rate for this component
}
