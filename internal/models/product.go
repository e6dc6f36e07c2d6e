package models

// ProductKind distinguishes raw materials from finished goods.
type ProductKind string

const (
	RawMaterial  ProductKind = "RAW_MATERIAL"
	FinishedGood ProductKind = "FINISHED_GOOD"
)

// Product is the persisted form of a product master record.
type Product struct {
	ProductID        string      `json:"productID"` // Primary Key (UUID)
	TenantID         string      `json:"tenantID"`
	Name             string      `json:"name"`
	SKU              string      `json:"sku"`
	Kind             ProductKind `json:"kind"`
	IsExciseable     bool        `json:"isExciseable"`
	ExciseCategoryID *string     `json:"exciseCategoryID"` // Nullable, set only for exciseable products
	AuditFields
}
