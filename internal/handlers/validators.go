package handlers

import (
	"fmt"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// posDecimal validates that a decimal field is strictly positive.
func posDecimal(fl validator.FieldLevel) bool {
	d, ok := fl.Field().Interface().(decimal.Decimal)
	if !ok {
		return false
	}
	return d.GreaterThan(decimal.Zero)
}

// RegisterCustomValidators installs the binding validators used by the DTOs.
// Must run once before the router starts serving.
func RegisterCustomValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return fmt.Errorf("unexpected binding validator engine")
	}
	if err := v.RegisterValidation("posdecimal", posDecimal); err != nil {
		return fmt.Errorf("failed to register posdecimal validator: %w", err)
	}
	return nil
}
