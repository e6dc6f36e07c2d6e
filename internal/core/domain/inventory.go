package domain

import "github.com/shopspring/decimal"

// InventoryItem holds the quantity and weighted-average valuation state for
// one product. Mutated only through issue/receipt operations inside a build
// transaction, never edited directly.
//
// Invariant after any committed build: QuantityAvailable <= QuantityOnHand,
// both non-negative. AverageCost == TotalValue / QuantityOnHand (zero when
// the quantity is zero).
type InventoryItem struct {
	ItemID            string          `json:"itemID"` // Primary Key (UUID)
	TenantID          string          `json:"tenantID"`
	ProductID         string          `json:"productID"` // One item per product
	QuantityOnHand    decimal.Decimal `json:"quantityOnHand"`
	QuantityAvailable decimal.Decimal `json:"quantityAvailable"` // On-hand minus reservations
	TotalValue        decimal.Decimal `json:"totalValue"`
	AverageCost       decimal.Decimal `json:"averageCost"`
	AuditFields
}
