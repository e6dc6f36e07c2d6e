package models

import "github.com/shopspring/decimal"

// BOMStatus indicates whether a bill of material accepts new builds.
type BOMStatus string

const (
	BOMActive   BOMStatus = "ACTIVE"
	BOMArchived BOMStatus = "ARCHIVED"
)

// BillOfMaterial is the persisted form of a BOM header.
type BillOfMaterial struct {
	BOMID             string          `json:"bomID"` // Primary Key (UUID)
	TenantID          string          `json:"tenantID"`
	FinishedProductID string          `json:"finishedProductID"`
	Name              string          `json:"name"`
	YieldPercent      decimal.Decimal `json:"yieldPercent"`
	Status            BOMStatus       `json:"status"`
	AuditFields
}

// BOMLine is one component requirement of a BOM.
type BOMLine struct {
	BOMLineID          string          `json:"bomLineID"` // Primary Key (UUID)
	BOMID              string          `json:"bomID"`
	LineNumber         int             `json:"lineNumber"`
	ComponentProductID string          `json:"componentProductID"`
	QuantityPer        decimal.Decimal `json:"quantityPer"`
	ScrapPercent       decimal.Decimal `json:"scrapPercent"`
}
