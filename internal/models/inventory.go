package models

import "github.com/shopspring/decimal"

// InventoryItem is the persisted per-product stock balance.
type InventoryItem struct {
	ItemID            string          `json:"itemID"` // Primary Key (UUID)
	TenantID          string          `json:"tenantID"`
	ProductID         string          `json:"productID"`
	QuantityOnHand    decimal.Decimal `json:"quantityOnHand"`
	QuantityAvailable decimal.Decimal `json:"quantityAvailable"`
	TotalValue        decimal.Decimal `json:"totalValue"`
	AverageCost       decimal.Decimal `json:"averageCost"`
	AuditFields
}
