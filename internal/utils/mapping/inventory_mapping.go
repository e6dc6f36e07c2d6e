package mapping

import (
	"github.com/prodbooks/mfg_ledger/internal/core/domain"
	"github.com/prodbooks/mfg_ledger/internal/models"
)

// ToModelInventoryItem converts a domain InventoryItem to a model InventoryItem
func ToModelInventoryItem(d domain.InventoryItem) models.InventoryItem {
	return models.InventoryItem{
		ItemID:            d.ItemID,
		TenantID:          d.TenantID,
		ProductID:         d.ProductID,
		QuantityOnHand:    d.QuantityOnHand,
		QuantityAvailable: d.QuantityAvailable,
		TotalValue:        d.TotalValue,
		AverageCost:       d.AverageCost,
		AuditFields:       ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainInventoryItem converts a model InventoryItem to a domain InventoryItem
func ToDomainInventoryItem(m models.InventoryItem) domain.InventoryItem {
	return domain.InventoryItem{
		ItemID:            m.ItemID,
		TenantID:          m.TenantID,
		ProductID:         m.ProductID,
		QuantityOnHand:    m.QuantityOnHand,
		QuantityAvailable: m.QuantityAvailable,
		TotalValue:        m.TotalValue,
		AverageCost:       m.AverageCost,
		AuditFields:       ToDomainAuditFields(m.AuditFields),
	}
}
