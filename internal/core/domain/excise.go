package domain

import "github.com/shopspring/decimal"

// ExciseReportingStatus tracks whether a duty record has been reported to
// the authority. Reporting itself happens outside this engine.
type ExciseReportingStatus string

const (
	ExcisePending  ExciseReportingStatus = "PENDING"
	ExciseReported ExciseReportingStatus = "REPORTED"
)

// ExciseCategory is an excise-regulated product category with its duty rate.
// Category maintenance is external; this engine only reads them.
type ExciseCategory struct {
	CategoryID string          `json:"categoryID"` // Primary Key (UUID)
	TenantID   string          `json:"tenantID"`
	Name       string          `json:"name"`
	Rate       decimal.Decimal `json:"rate"` // Percentage of manufacturing cost
	IsActive   bool            `json:"isActive"`
	AuditFields
}

// ExciseClassification is the result of the excise lookup for a product.
type ExciseClassification struct {
	Regulated  bool            `json:"regulated"`
	CategoryID string          `json:"categoryID,omitempty"`
	Rate       decimal.Decimal `json:"rate"`
}

// ExciseDutyRecord captures the duty liability computed for one assembly of
// an excise-regulated product.
type ExciseDutyRecord struct {
	ExciseRecordID   string                `json:"exciseRecordID"` // Primary Key (UUID)
	TenantID         string                `json:"tenantID"`
	AssemblyID       string                `json:"assemblyID"`
	ProductID        string                `json:"productID"`
	ExciseCategoryID string                `json:"exciseCategoryID"`
	BaseValue        decimal.Decimal       `json:"baseValue"` // Manufacturing cost the rate applies to
	Rate             decimal.Decimal       `json:"rate"`
	DutyAmount       decimal.Decimal       `json:"dutyAmount"`
	ReportingStatus  ExciseReportingStatus `json:"reportingStatus"`
	AuditFields
}
