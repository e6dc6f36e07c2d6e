package models

import "github.com/shopspring/decimal"

// WastageRecord aggregates the scrap consumed by one build.
type WastageRecord struct {
	WastageID             string          `json:"wastageID"` // Primary Key (UUID)
	TenantID              string          `json:"tenantID"`
	AssemblyID            string          `json:"assemblyID"`
	TotalQuantity         decimal.Decimal `json:"totalQuantity"`
	TotalCost             decimal.Decimal `json:"totalCost"`
	PercentOfMaterialCost decimal.Decimal `json:"percentOfMaterialCost"`
	Reasons               string          `json:"reasons"`
	AuditFields
}
