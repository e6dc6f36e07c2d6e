package apperrors

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// ErrNotFound indicates that a requested resource could not be found, or
// does not belong to the requesting tenant.
var ErrNotFound = errors.New("resource not found")

// ErrInvalidRequest indicates that a build or reversal request failed
// precondition checks (non-positive quantity, missing identifiers).
var ErrInvalidRequest = errors.New("invalid request")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrInvalidBOM indicates a bill of material that cannot be resolved:
// zero yield, a non-positive quantity-per, or a non-positive build quantity.
var ErrInvalidBOM = errors.New("invalid bill of material")

// ErrBOMArchived indicates an attempt to build against an archived BOM.
var ErrBOMArchived = errors.New("bill of material is archived")

// ErrInsufficientStock indicates a component did not have enough available
// quantity to cover a build. See InsufficientStockError for the detail.
var ErrInsufficientStock = errors.New("insufficient stock")

// ErrMissingLedgerAccount indicates a required ledger account role could not
// be resolved for the tenant. See MissingLedgerAccountError for the role.
var ErrMissingLedgerAccount = errors.New("required ledger account not configured")

// ErrUnbalancedJournal indicates the constructed journal's debits do not
// equal its credits. This is an internal defect, never a caller error.
var ErrUnbalancedJournal = errors.New("journal entries do not balance")

// ErrAlreadyReversed indicates a reversal was requested for an assembly
// transaction that is already reversed.
var ErrAlreadyReversed = errors.New("assembly transaction already reversed")

// ErrConcurrencyConflict indicates the build lost a row-lock race on an
// inventory item. The caller may retry the whole build.
var ErrConcurrencyConflict = errors.New("concurrent modification detected")

// InsufficientStockError carries the operator-facing shortfall detail for a
// failed component issue.
type InsufficientStockError struct {
	ProductID   string
	ProductName string
	Required    decimal.Decimal
	Available   decimal.Decimal
}

func (e *InsufficientStockError) Error() string {
	name := e.ProductName
	if name == "" {
		name = e.ProductID
	}
	return fmt.Sprintf("insufficient stock for %s: required %s, available %s",
		name, e.Required.String(), e.Available.String())
}

func (e *InsufficientStockError) Unwrap() error {
	return ErrInsufficientStock
}

// MissingLedgerAccountError names the account role that failed to resolve.
type MissingLedgerAccountError struct {
	Role string
}

func (e *MissingLedgerAccountError) Error() string {
	return fmt.Sprintf("no ledger account configured for role %s", e.Role)
}

func (e *MissingLedgerAccountError) Unwrap() error {
	return ErrMissingLedgerAccount
}
