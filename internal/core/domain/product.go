package domain

// ProductKind classifies a product for manufacturing purposes.
type ProductKind string

const (
	RawMaterial  ProductKind = "RAW_MATERIAL"
	FinishedGood ProductKind = "FINISHED_GOOD"
)

// Product is the manufacturing engine's read-only view of a catalog product.
// Identity is immutable; classification and excise flags are maintained by
// the external catalog service.
type Product struct {
	ProductID        string      `json:"productID"` // Primary Key (UUID)
	TenantID         string      `json:"tenantID"`
	Name             string      `json:"name"`
	SKU              string      `json:"sku"`
	Kind             ProductKind `json:"kind"`
	IsExciseable     bool        `json:"isExciseable"`
	ExciseCategoryID *string     `json:"exciseCategoryID,omitempty"`
	AuditFields
}
