package dto

import (
	"github.com/prodbooks/mfg_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// InventoryItemResponse reports the balance state of one inventory item.
type InventoryItemResponse struct {
	ItemID            string          `json:"itemID"`
	ProductID         string          `json:"productID"`
	QuantityOnHand    decimal.Decimal `json:"quantityOnHand"`
	QuantityAvailable decimal.Decimal `json:"quantityAvailable"`
	TotalValue        decimal.Decimal `json:"totalValue"`
	AverageCost       decimal.Decimal `json:"averageCost"`
}

// ListInventoryParams holds pagination parameters for listing items.
type ListInventoryParams struct {
	Limit  int `form:"limit"`
	Offset int `form:"offset"`
}

// ToInventoryItemResponse converts a domain inventory item to its DTO.
func ToInventoryItemResponse(i *domain.InventoryItem) InventoryItemResponse {
	return InventoryItemResponse{
		ItemID:            i.ItemID,
		ProductID:         i.ProductID,
		QuantityOnHand:    i.QuantityOnHand,
		QuantityAvailable: i.QuantityAvailable,
		TotalValue:        i.TotalValue,
		AverageCost:       i.AverageCost,
	}
}
