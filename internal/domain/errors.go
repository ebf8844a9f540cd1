package domain

import "errors"

// Error kinds. Every validation failure wraps exactly one of these, so callers
// can branch with errors.Is.
var (
	ErrTypeMismatch    = errors.New("type mismatch")
	ErrInvalidArgument = errors.New("invalid argument")
	ErrDuplicateKey    = errors.New("duplicate key")
)

// ErrProductNotFound is returned by operations that require an existing product.
var ErrProductNotFound = errors.New("product not found")

// FieldError describes a rejected input value.
type FieldError struct {
	Field   string
	Message string
	Kind    error
}

func (e *FieldError) Error() string { return e.Message }

func (e *FieldError) Unwrap() error { return e.Kind }

func typeMismatch(field, msg string) error {
	return &FieldError{Field: field, Message: msg, Kind: ErrTypeMismatch}
}

func invalidArgument(field, msg string) error {
	return &FieldError{Field: field, Message: msg, Kind: ErrInvalidArgument}
}

// KindOf returns the error kind wrapped by err, or nil if err carries none.
func KindOf(err error) error {
	for _, kind := range []error{ErrTypeMismatch, ErrInvalidArgument, ErrDuplicateKey, ErrProductNotFound} {
		if errors.Is(err, kind) {
			return kind
		}
	}
	return nil
}
