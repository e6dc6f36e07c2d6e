package models

import "github.com/shopspring/decimal"

// ExciseReportingStatus tracks whether a duty record reached the authority.
type ExciseReportingStatus string

const (
	ExcisePending  ExciseReportingStatus = "PENDING"
	ExciseReported ExciseReportingStatus = "REPORTED"
)

// ExciseCategory is a duty rate bracket configured per tenant.
type ExciseCategory struct {
	CategoryID string          `json:"categoryID"` // Primary Key (UUID)
	TenantID   string          `json:"tenantID"`
	Name       string          `json:"name"`
	Rate       decimal.Decimal `json:"rate"` // Percent of manufacturing cost
	IsActive   bool            `json:"isActive"`
	AuditFields
}

// ExciseDutyRecord is the compliance record of duty accrued by one build.
type ExciseDutyRecord struct {
	ExciseRecordID   string                `json:"exciseRecordID"` // Primary Key (UUID)
	TenantID         string                `json:"tenantID"`
	AssemblyID       string                `json:"assemblyID"`
	ProductID        string                `json:"productID"`
	ExciseCategoryID string                `json:"exciseCategoryID"`
	BaseValue        decimal.Decimal       `json:"baseValue"`
	Rate             decimal.Decimal       `json:"rate"`
	DutyAmount       decimal.Decimal       `json:"dutyAmount"`
	ReportingStatus  ExciseReportingStatus `json:"reportingStatus"`
	AuditFields
}
