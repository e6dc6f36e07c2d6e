package mapping

import (
	"github.com/prodbooks/mfg_ledger/internal/core/domain"
	"github.com/prodbooks/mfg_ledger/internal/models"
)

// ToModelProduct converts a domain Product to a model Product
func ToModelProduct(d domain.Product) models.Product {
	return models.Product{
		ProductID:        d.ProductID,
		TenantID:         d.TenantID,
		Name:             d.Name,
		SKU:              d.SKU,
		Kind:             models.ProductKind(d.Kind),
		IsExciseable:     d.IsExciseable,
		ExciseCategoryID: d.ExciseCategoryID,
		AuditFields:      ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainProduct converts a model Product to a domain Product
func ToDomainProduct(m models.Product) domain.Product {
	return domain.Product{
		ProductID:        m.ProductID,
		TenantID:         m.TenantID,
		Name:             m.Name,
		SKU:              m.SKU,
		Kind:             domain.ProductKind(m.Kind),
		IsExciseable:     m.IsExciseable,
		ExciseCategoryID: m.ExciseCategoryID,
		AuditFields:      ToDomainAuditFields(m.AuditFields),
	}
}
