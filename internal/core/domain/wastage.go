package domain

import "github.com/shopspring/decimal"

// WastageRecord aggregates the scrap consumed by one assembly transaction
// for audit reporting. Created only when the total scrap cost is positive.
type WastageRecord struct {
	WastageID             string          `json:"wastageID"` // Primary Key (UUID)
	TenantID              string          `json:"tenantID"`
	AssemblyID            string          `json:"assemblyID"`
	TotalQuantity         decimal.Decimal `json:"totalQuantity"`
	TotalCost             decimal.Decimal `json:"totalCost"`
	PercentOfMaterialCost decimal.Decimal `json:"percentOfMaterialCost"`
	Reasons               string          `json:"reasons,omitempty"` // Free text, operator supplied
	AuditFields
}
