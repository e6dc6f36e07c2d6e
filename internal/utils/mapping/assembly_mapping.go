package mapping

import (
	"github.com/prodbooks/mfg_ledger/internal/core/domain"
	"github.com/prodbooks/mfg_ledger/internal/models"
)

// ToModelAssembly converts a domain AssemblyTransaction header to its model form
func ToModelAssembly(d domain.AssemblyTransaction) models.AssemblyTransaction {
	return models.AssemblyTransaction{
		AssemblyID:          d.AssemblyID,
		TenantID:            d.TenantID,
		BOMID:               d.BOMID,
		FinishedProductID:   d.FinishedProductID,
		QuantityProduced:    d.QuantityProduced,
		MaterialCost:        d.MaterialCost,
		LaborCost:           d.LaborCost,
		OverheadCost:        d.OverheadCost,
		TotalCost:           d.TotalCost,
		PreviousUnitCost:    d.PreviousUnitCost,
		NewUnitCost:         d.NewUnitCost,
		WastageQuantity:     d.WastageQuantity,
		WastageCost:         d.WastageCost,
		IsExciseable:        d.IsExciseable,
		ExciseDutyRate:      d.ExciseDutyRate,
		ExciseDutyAmount:    d.ExciseDutyAmount,
		LedgerTransactionID: d.LedgerTransactionID,
		Status:              models.AssemblyStatus(d.Status),
		ReversalReason:      d.ReversalReason,
		ReversedAt:          d.ReversedAt,
		Notes:               d.Notes,
		AuditFields:         ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainAssembly converts a model AssemblyTransaction header to its domain form
func ToDomainAssembly(m models.AssemblyTransaction) domain.AssemblyTransaction {
	return domain.AssemblyTransaction{
		AssemblyID:          m.AssemblyID,
		TenantID:            m.TenantID,
		BOMID:               m.BOMID,
		FinishedProductID:   m.FinishedProductID,
		QuantityProduced:    m.QuantityProduced,
		MaterialCost:        m.MaterialCost,
		LaborCost:           m.LaborCost,
		OverheadCost:        m.OverheadCost,
		TotalCost:           m.TotalCost,
		PreviousUnitCost:    m.PreviousUnitCost,
		NewUnitCost:         m.NewUnitCost,
		WastageQuantity:     m.WastageQuantity,
		WastageCost:         m.WastageCost,
		IsExciseable:        m.IsExciseable,
		ExciseDutyRate:      m.ExciseDutyRate,
		ExciseDutyAmount:    m.ExciseDutyAmount,
		LedgerTransactionID: m.LedgerTransactionID,
		Status:              domain.AssemblyStatus(m.Status),
		ReversalReason:      m.ReversalReason,
		ReversedAt:          m.ReversedAt,
		Notes:               m.Notes,
		AuditFields:         ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelAssemblyLine converts a domain AssemblyLine to a model AssemblyLine
func ToModelAssemblyLine(d domain.AssemblyLine) models.AssemblyLine {
	return models.AssemblyLine{
		AssemblyLineID:     d.AssemblyLineID,
		AssemblyID:         d.AssemblyID,
		ComponentProductID: d.ComponentProductID,
		PlannedQuantity:    d.PlannedQuantity,
		ActualQuantity:     d.ActualQuantity,
		UnitCost:           d.UnitCost,
		PlannedCost:        d.PlannedCost,
		ActualCost:         d.ActualCost,
		QuantityVariance:   d.QuantityVariance,
		CostVariance:       d.CostVariance,
		ScrapQuantity:      d.ScrapQuantity,
		ScrapCost:          d.ScrapCost,
	}
}

// ToDomainAssemblyLine converts a model AssemblyLine to a domain AssemblyLine
func ToDomainAssemblyLine(m models.AssemblyLine) domain.AssemblyLine {
	return domain.AssemblyLine{
		AssemblyLineID:     m.AssemblyLineID,
		AssemblyID:         m.AssemblyID,
		ComponentProductID: m.ComponentProductID,
		PlannedQuantity:    m.PlannedQuantity,
		ActualQuantity:     m.ActualQuantity,
		UnitCost:           m.UnitCost,
		PlannedCost:        m.PlannedCost,
		ActualCost:         m.ActualCost,
		QuantityVariance:   m.QuantityVariance,
		CostVariance:       m.CostVariance,
		ScrapQuantity:      m.ScrapQuantity,
		ScrapCost:          m.ScrapCost,
	}
}

// ToModelWastage converts a domain WastageRecord to a model WastageRecord
func ToModelWastage(d domain.WastageRecord) models.WastageRecord {
	return models.WastageRecord{
		WastageID:             d.WastageID,
		TenantID:              d.TenantID,
		AssemblyID:            d.AssemblyID,
		TotalQuantity:         d.TotalQuantity,
		TotalCost:             d.TotalCost,
		PercentOfMaterialCost: d.PercentOfMaterialCost,
		Reasons:               d.Reasons,
		AuditFields:           ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainWastage converts a model WastageRecord to a domain WastageRecord
func ToDomainWastage(m models.WastageRecord) domain.WastageRecord {
	return domain.WastageRecord{
		WastageID:             m.WastageID,
		TenantID:              m.TenantID,
		AssemblyID:            m.AssemblyID,
		TotalQuantity:         m.TotalQuantity,
		TotalCost:             m.TotalCost,
		PercentOfMaterialCost: m.PercentOfMaterialCost,
		Reasons:               m.Reasons,
		AuditFields:           ToDomainAuditFields(m.AuditFields),
	}
}
