package dto

import (
	"time"

	"github.com/prodbooks/mfg_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// LedgerEntryResponse reports one debit or credit leg.
type LedgerEntryResponse struct {
	EntryID   string          `json:"entryID"`
	AccountID string          `json:"accountID"`
	Amount    decimal.Decimal `json:"amount"`
	EntryType string          `json:"entryType"`
	Memo      string          `json:"memo,omitempty"`
}

// LedgerTransactionResponse is the detail view of a ledger transaction.
type LedgerTransactionResponse struct {
	LedgerTransactionID string                `json:"ledgerTransactionID"`
	TransactionDate     time.Time             `json:"transactionDate"`
	Description         string                `json:"description"`
	ReferenceType       string                `json:"referenceType"`
	ReferenceID         string                `json:"referenceID"`
	Status              string                `json:"status"`
	Entries             []LedgerEntryResponse `json:"entries"`
}

// ToLedgerTransactionResponse converts a domain ledger transaction to its DTO.
func ToLedgerTransactionResponse(t *domain.LedgerTransaction) LedgerTransactionResponse {
	entries := make([]LedgerEntryResponse, len(t.Entries))
	for i, e := range t.Entries {
		entries[i] = LedgerEntryResponse{
			EntryID:   e.EntryID,
			AccountID: e.AccountID,
			Amount:    e.Amount,
			EntryType: string(e.EntryType),
			Memo:      e.Memo,
		}
	}
	return LedgerTransactionResponse{
		LedgerTransactionID: t.LedgerTransactionID,
		TransactionDate:     t.TransactionDate,
		Description:         t.Description,
		ReferenceType:       t.ReferenceType,
		ReferenceID:         t.ReferenceID,
		Status:              string(t.Status),
		Entries:             entries,
	}
}
