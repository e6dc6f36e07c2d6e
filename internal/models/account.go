package models

// AccountType defines the classification of a ledger account.
type AccountType string

const (
	Asset     AccountType = "ASSET"
	Liability AccountType = "LIABILITY"
	Equity    AccountType = "EQUITY"
	Revenue   AccountType = "REVENUE"
	Expense   AccountType = "EXPENSE"
)

// Account is the persisted form of a ledger account.
type Account struct {
	AccountID   string      `json:"accountID"` // Primary Key (UUID)
	TenantID    string      `json:"tenantID"`
	Name        string      `json:"name"`
	AccountType AccountType `json:"accountType"`
	Role        string      `json:"role"` // Posting role, unique per tenant
	IsActive    bool        `json:"isActive"`
	AuditFields
}
