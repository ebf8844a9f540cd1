package domain

import (
	"encoding/json"
	"errors"
	"math"
	"strconv"
	"strings"
)

// ParsePrice converts console text to a price. Integer text such as "5" is
// accepted. Text that is not a number is an ErrTypeMismatch; a number beyond
// the float64 range is an ErrInvalidArgument. Sign checks are left to
// NewProduct and SetPrice.
func ParsePrice(text string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if errors.Is(err, strconv.ErrRange) {
		return 0, invalidArgument("price", "price out of range")
	}
	if err != nil || math.IsNaN(v) {
		return 0, typeMismatch("price", "price must be numeric")
	}
	return v, nil
}

// ParseQuantity converts console text to a quantity. Only base-10 integers
// are accepted, so "2.5" and "abc" are both ErrTypeMismatch. An integer that
// does not fit an int is an ErrInvalidArgument.
func ParseQuantity(text string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(text))
	if errors.Is(err, strconv.ErrRange) {
		return 0, invalidArgument("quantity", "quantity out of range")
	}
	if err != nil {
		return 0, typeMismatch("quantity", "quantity must be an integer")
	}
	return v, nil
}

// CoercePrice converts an untyped value, such as a decoded JSON argument, to
// a price. Booleans are rejected even though some encoders treat them as numbers.
func CoercePrice(v any) (float64, error) {
	switch n := v.(type) {
	case float64:
		if math.IsNaN(n) {
			break
		}
		return n, nil
	case float32:
		if math.IsNaN(float64(n)) {
			break
		}
		return float64(n), nil
	case int:
		return float64(n), nil
	case int32:
		return float64(n), nil
	case int64:
		return float64(n), nil
	case json.Number:
		return ParsePrice(n.String())
	case string:
		return ParsePrice(n)
	}
	return 0, typeMismatch("price", "price must be numeric")
}

// CoerceQuantity converts an untyped value to a quantity. Floats are accepted
// only when they carry no fractional part, since JSON decodes every number
// as float64.
func CoerceQuantity(v any) (int, error) {
	switch n := v.(type) {
	case int:
		return n, nil
	case int32:
		return int(n), nil
	case int64:
		if n >= math.MinInt && n <= math.MaxInt {
			return int(n), nil
		}
	case float64:
		if n == math.Trunc(n) && n >= math.MinInt64 && n < math.MaxInt64 {
			return int(n), nil
		}
	case json.Number:
		return ParseQuantity(n.String())
	case string:
		return ParseQuantity(n)
	}
	return 0, typeMismatch("quantity", "quantity must be an integer")
}
