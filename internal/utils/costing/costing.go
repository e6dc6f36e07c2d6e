package costing

import (
	"fmt"

	"github.com/prodbooks/mfg_ledger/internal/apperrors"
	"github.com/prodbooks/mfg_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// ComponentRequirement is the resolved input requirement for one BOM line at
// a given build quantity.
type ComponentRequirement struct {
	ComponentProductID  string
	PlannedQuantity     decimal.Decimal // quantityPer * buildQty, before yield and scrap
	RequiredBeforeScrap decimal.Decimal // planned / yieldFactor
	ScrapQuantity       decimal.Decimal
	ActualQuantity      decimal.Decimal // requiredBeforeScrap + scrap
}

// ExplodeBOM computes the per-component input requirements for producing
// quantity units against the given bill of material. Pure and deterministic.
//
// A yield of zero is a configuration error and fails fast, as does a
// non-positive build quantity or quantityPer.
func ExplodeBOM(bom domain.BillOfMaterial, quantity decimal.Decimal) ([]ComponentRequirement, error) {
	if quantity.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: build quantity must be positive, got %s", apperrors.ErrInvalidBOM, quantity.String())
	}
	if bom.YieldPercent.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: yield percent must be positive, got %s", apperrors.ErrInvalidBOM, bom.YieldPercent.String())
	}
	if len(bom.Lines) == 0 {
		return nil, fmt.Errorf("%w: no lines", apperrors.ErrInvalidBOM)
	}

	yieldFactor := bom.YieldPercent.Div(hundred)

	requirements := make([]ComponentRequirement, len(bom.Lines))
	for i, line := range bom.Lines {
		if line.QuantityPer.LessThanOrEqual(decimal.Zero) {
			return nil, fmt.Errorf("%w: line %d has non-positive quantity per unit", apperrors.ErrInvalidBOM, line.LineNumber)
		}
		if line.ScrapPercent.IsNegative() {
			return nil, fmt.Errorf("%w: line %d has negative scrap percent", apperrors.ErrInvalidBOM, line.LineNumber)
		}

		planned := line.QuantityPer.Mul(quantity)
		requiredBeforeScrap := planned.Div(yieldFactor)
		scrap := requiredBeforeScrap.Mul(line.ScrapPercent.Div(hundred))

		requirements[i] = ComponentRequirement{
			ComponentProductID:  line.ComponentProductID,
			PlannedQuantity:     planned,
			RequiredBeforeScrap: requiredBeforeScrap,
			ScrapQuantity:       scrap,
			ActualQuantity:      requiredBeforeScrap.Add(scrap),
		}
	}
	return requirements, nil
}

// WeightedAverageCost recomputes an item's valuation after a receipt from the
// prior quantity/value and the newly added quantity/value. The returned
// average is zero when the resulting quantity is zero.
func WeightedAverageCost(priorQty, priorValue, addedQty, addedValue decimal.Decimal) (newQty, newValue, newAverage decimal.Decimal) {
	newQty = priorQty.Add(addedQty)
	newValue = priorValue.Add(addedValue)
	if newQty.IsZero() {
		return newQty, newValue, decimal.Zero
	}
	return newQty, newValue, newValue.Div(newQty)
}

// AverageOf returns value/quantity, or zero when quantity is zero.
func AverageOf(value, quantity decimal.Decimal) decimal.Decimal {
	if quantity.IsZero() {
		return decimal.Zero
	}
	return value.Div(quantity)
}

// ExciseAmount computes the duty on a manufacturing cost at a percentage rate.
func ExciseAmount(manufacturingCost, rate decimal.Decimal) decimal.Decimal {
	return manufacturingCost.Mul(rate).Div(hundred)
}

// WastagePercentage expresses a wastage cost as a percentage of the material
// cost it was scrapped from. Zero material cost yields zero.
func WastagePercentage(wastageCost, materialCost decimal.Decimal) decimal.Decimal {
	if materialCost.IsZero() {
		return decimal.Zero
	}
	return wastageCost.Div(materialCost).Mul(hundred)
}
