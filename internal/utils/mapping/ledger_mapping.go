package mapping

import (
	"github.com/prodbooks/mfg_ledger/internal/core/domain"
	"github.com/prodbooks/mfg_ledger/internal/models"
)

// ToModelLedgerTransaction converts a domain LedgerTransaction to its model form
func ToModelLedgerTransaction(d domain.LedgerTransaction) models.LedgerTransaction {
	return models.LedgerTransaction{
		LedgerTransactionID: d.LedgerTransactionID,
		TenantID:            d.TenantID,
		TransactionDate:     d.TransactionDate,
		Description:         d.Description,
		ReferenceType:       d.ReferenceType,
		ReferenceID:         d.ReferenceID,
		Status:              models.LedgerStatus(d.Status),
		AuditFields:         ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainLedgerTransaction converts a model LedgerTransaction to its domain form
func ToDomainLedgerTransaction(m models.LedgerTransaction) domain.LedgerTransaction {
	return domain.LedgerTransaction{
		LedgerTransactionID: m.LedgerTransactionID,
		TenantID:            m.TenantID,
		TransactionDate:     m.TransactionDate,
		Description:         m.Description,
		ReferenceType:       m.ReferenceType,
		ReferenceID:         m.ReferenceID,
		Status:              domain.LedgerStatus(m.Status),
		AuditFields:         ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelLedgerEntry converts a domain LedgerEntry to a model LedgerEntry
func ToModelLedgerEntry(d domain.LedgerEntry) models.LedgerEntry {
	return models.LedgerEntry{
		EntryID:             d.EntryID,
		LedgerTransactionID: d.LedgerTransactionID,
		AccountID:           d.AccountID,
		Amount:              d.Amount,
		EntryType:           models.EntryType(d.EntryType),
		Memo:                d.Memo,
	}
}

// ToDomainLedgerEntry converts a model LedgerEntry to a domain LedgerEntry
func ToDomainLedgerEntry(m models.LedgerEntry) domain.LedgerEntry {
	return domain.LedgerEntry{
		EntryID:             m.EntryID,
		LedgerTransactionID: m.LedgerTransactionID,
		AccountID:           m.AccountID,
		Amount:              m.Amount,
		EntryType:           domain.EntryType(m.EntryType),
		Memo:                m.Memo,
	}
}
