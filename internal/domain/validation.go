package domain

import (
	"math"
	"strings"

	"github.com/go-playground/validator/v10"
)

// fieldValidator is safe for concurrent use and caches tag parsing.
var fieldValidator = validator.New()

// validateName trims name and rejects it when nothing is left; msg is the
// message reported on rejection.
func validateName(name, msg string) (string, error) {
	trimmed := strings.TrimSpace(name)
	if err := fieldValidator.Var(trimmed, "required"); err != nil {
		return "", invalidArgument("name", msg)
	}
	return trimmed, nil
}

func validatePrice(price float64) error {
	if math.IsNaN(price) {
		return typeMismatch("price", "price must be numeric")
	}
	if err := fieldValidator.Var(price, "gte=0"); err != nil {
		return invalidArgument("price", "price cannot be negative")
	}
	if math.IsInf(price, 1) {
		return invalidArgument("price", "price must be finite")
	}
	return nil
}

func validateQuantity(quantity int) error {
	if err := fieldValidator.Var(quantity, "gte=0"); err != nil {
		return invalidArgument("quantity", "quantity cannot be negative")
	}
	return nil
}

// validateTotal rejects a product total or inventory sum that overflowed.
// Valid prices and quantities can still multiply or add past MaxFloat64.
func validateTotal(total float64) error {
	if math.IsInf(total, 0) {
		return invalidArgument("total", "total value out of range")
	}
	return nil
}
