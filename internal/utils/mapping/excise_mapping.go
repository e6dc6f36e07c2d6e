package mapping

import (
	"github.com/prodbooks/mfg_ledger/internal/core/domain"
	"github.com/prodbooks/mfg_ledger/internal/models"
)

// ToDomainExciseCategory converts a model ExciseCategory to its domain form
func ToDomainExciseCategory(m models.ExciseCategory) domain.ExciseCategory {
	return domain.ExciseCategory{
		CategoryID:  m.CategoryID,
		TenantID:    m.TenantID,
		Name:        m.Name,
		Rate:        m.Rate,
		IsActive:    m.IsActive,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelExciseDutyRecord converts a domain ExciseDutyRecord to its model form
func ToModelExciseDutyRecord(d domain.ExciseDutyRecord) models.ExciseDutyRecord {
	return models.ExciseDutyRecord{
		ExciseRecordID:   d.ExciseRecordID,
		TenantID:         d.TenantID,
		AssemblyID:       d.AssemblyID,
		ProductID:        d.ProductID,
		ExciseCategoryID: d.ExciseCategoryID,
		BaseValue:        d.BaseValue,
		Rate:             d.Rate,
		DutyAmount:       d.DutyAmount,
		ReportingStatus:  models.ExciseReportingStatus(d.ReportingStatus),
		AuditFields:      ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainExciseDutyRecord converts a model ExciseDutyRecord to its domain form
func ToDomainExciseDutyRecord(m models.ExciseDutyRecord) domain.ExciseDutyRecord {
	return domain.ExciseDutyRecord{
		ExciseRecordID:   m.ExciseRecordID,
		TenantID:         m.TenantID,
		AssemblyID:       m.AssemblyID,
		ProductID:        m.ProductID,
		ExciseCategoryID: m.ExciseCategoryID,
		BaseValue:        m.BaseValue,
		Rate:             m.Rate,
		DutyAmount:       m.DutyAmount,
		ReportingStatus:  domain.ExciseReportingStatus(m.ReportingStatus),
		AuditFields:      ToDomainAuditFields(m.AuditFields),
	}
}
