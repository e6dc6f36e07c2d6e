package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// EntryType indicates whether a ledger entry is a Debit or a Credit.
type EntryType string

const (
	Debit  EntryType = "DEBIT"
	Credit EntryType = "CREDIT"
)

// LedgerStatus indicates the state of a ledger transaction. A VOIDED
// transaction keeps its entries; they are never deleted.
type LedgerStatus string

const (
	LedgerPosted LedgerStatus = "POSTED"
	LedgerVoided LedgerStatus = "VOIDED"
)

// LedgerTransaction is a balanced set of ledger entries recorded as one
// financial event. Invariant, enforced before commit: the sum of DEBIT
// amounts equals the sum of CREDIT amounts exactly.
type LedgerTransaction struct {
	LedgerTransactionID string        `json:"ledgerTransactionID"` // Primary Key (UUID)
	TenantID            string        `json:"tenantID"`
	TransactionDate     time.Time     `json:"transactionDate"`
	Description         string        `json:"description"`
	ReferenceType       string        `json:"referenceType"` // e.g. ASSEMBLY
	ReferenceID         string        `json:"referenceID"`
	Status              LedgerStatus  `json:"status"`
	Entries             []LedgerEntry `json:"entries,omitempty"`
	AuditFields
}

// LedgerEntry is a single typed line within a LedgerTransaction, affecting
// one account. Amount is always positive; direction is carried by EntryType.
type LedgerEntry struct {
	EntryID             string          `json:"entryID"`
	LedgerTransactionID string          `json:"ledgerTransactionID"`
	AccountID           string          `json:"accountID"`
	Amount              decimal.Decimal `json:"amount"`
	EntryType           EntryType       `json:"entryType"`
	Memo                string          `json:"memo,omitempty"`
}
