package domain

// AccountType defines the fundamental accounting type of an account.
type AccountType string

const (
	Asset     AccountType = "ASSET"
	Liability AccountType = "LIABILITY"
	Equity    AccountType = "EQUITY"
	Revenue   AccountType = "REVENUE"
	Expense   AccountType = "EXPENSE"
)

// AccountRole names the well-known posting roles the build engine resolves
// from the chart of accounts. Accounts are located by role, never by
// hardcoded identifier.
type AccountRole string

const (
	RoleRawMaterialAsset   AccountRole = "RAW_MATERIAL_ASSET"
	RoleFinishedGoodsAsset AccountRole = "FINISHED_GOODS_ASSET"
	RoleLaborApplied       AccountRole = "LABOR_APPLIED"
	RoleOverheadApplied    AccountRole = "OVERHEAD_APPLIED"
	RoleExciseReceivable   AccountRole = "EXCISE_RECEIVABLE"
	RoleExcisePayable      AccountRole = "EXCISE_PAYABLE"
)

// Account represents a ledger account resolved from the external chart of
// accounts.
type Account struct {
	AccountID   string      `json:"accountID"` // Primary Key (UUID)
	TenantID    string      `json:"tenantID"`
	Name        string      `json:"name"`
	AccountType AccountType `json:"accountType"`
	Role        AccountRole `json:"role"`
	IsActive    bool        `json:"isActive"`
	AuditFields
}
