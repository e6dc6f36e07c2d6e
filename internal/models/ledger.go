package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// LedgerStatus indicates the state of a ledger transaction.
type LedgerStatus string

const (
	LedgerPosted LedgerStatus = "POSTED"
	LedgerVoided LedgerStatus = "VOIDED"
)

// EntryType distinguishes debits from credits.
type EntryType string

const (
	Debit  EntryType = "DEBIT"
	Credit EntryType = "CREDIT"
)

// LedgerTransaction is a single balanced financial event.
type LedgerTransaction struct {
	LedgerTransactionID string       `json:"ledgerTransactionID"` // Primary Key (UUID)
	TenantID            string       `json:"tenantID"`
	TransactionDate     time.Time    `json:"transactionDate"`
	Description         string       `json:"description"`
	ReferenceType       string       `json:"referenceType"` // e.g. ASSEMBLY
	ReferenceID         string       `json:"referenceID"`
	Status              LedgerStatus `json:"status"`
	AuditFields
}

// LedgerEntry is one debit or credit leg of a ledger transaction.
type LedgerEntry struct {
	EntryID             string          `json:"entryID"` // Primary Key (UUID)
	LedgerTransactionID string          `json:"ledgerTransactionID"`
	AccountID           string          `json:"accountID"`
	Amount              decimal.Decimal `json:"amount"` // Always positive
	EntryType           EntryType       `json:"entryType"`
	Memo                string          `json:"memo"`
}
