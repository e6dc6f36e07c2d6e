package mapping

import (
	"github.com/prodbooks/mfg_ledger/internal/core/domain"
	"github.com/prodbooks/mfg_ledger/internal/models"
)

// ToModelBOM converts a domain BillOfMaterial header to its model form
func ToModelBOM(d domain.BillOfMaterial) models.BillOfMaterial {
	return models.BillOfMaterial{
		BOMID:             d.BOMID,
		TenantID:          d.TenantID,
		FinishedProductID: d.FinishedProductID,
		Name:              d.Name,
		YieldPercent:      d.YieldPercent,
		Status:            models.BOMStatus(d.Status),
		AuditFields:       ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainBOM converts a model BillOfMaterial header to its domain form
func ToDomainBOM(m models.BillOfMaterial) domain.BillOfMaterial {
	return domain.BillOfMaterial{
		BOMID:             m.BOMID,
		TenantID:          m.TenantID,
		FinishedProductID: m.FinishedProductID,
		Name:              m.Name,
		YieldPercent:      m.YieldPercent,
		Status:            domain.BOMStatus(m.Status),
		AuditFields:       ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelBOMLine converts a domain BOMLine to a model BOMLine
func ToModelBOMLine(d domain.BOMLine) models.BOMLine {
	return models.BOMLine{
		BOMLineID:          d.BOMLineID,
		BOMID:              d.BOMID,
		LineNumber:         d.LineNumber,
		ComponentProductID: d.ComponentProductID,
		QuantityPer:        d.QuantityPer,
		ScrapPercent:       d.ScrapPercent,
	}
}

// ToDomainBOMLine converts a model BOMLine to a domain BOMLine
func ToDomainBOMLine(m models.BOMLine) domain.BOMLine {
	return domain.BOMLine{
		BOMLineID:          m.BOMLineID,
		BOMID:              m.BOMID,
		LineNumber:         m.LineNumber,
		ComponentProductID: m.ComponentProductID,
		QuantityPer:        m.QuantityPer,
		ScrapPercent:       m.ScrapPercent,
	}
}
