package validator

import (
	"github.com/dmitrymomot/guards/pkg/check"
	"github.com/dmitrymomot/guards/pkg/guard"
)

// NotZero fails for numbers equal to zero. Non-numeric values pass.
func NotZero(v any) (any, error) {
	if check.Zero(v) {
		return nil, guard.NewValidationError(guard.ErrRequired, "validation.not_zero", v, "value is zero")
	}
	return v, nil
}

// IsInteger fails unless v has an integer kind.
func IsInteger(v any) (any, error) {
	if !check.Integer(v) {
		return nil, guard.NewValidationError(guard.ErrInvalidType, "validation.integer", v, "value is not an integer")
	}
	return v, nil
}

// IsFloat fails unless v has a floating-point kind and a finite value.
func IsFloat(v any) (any, error) {
	if !check.Float(v) {
		return nil, guard.NewValidationError(guard.ErrInvalidType, "validation.float", v, "value is not a float")
	}
	return v, nil
}

// IsNumber fails unless v is a finite number.
func IsNumber(v any) (any, error) {
	if !check.Number(v) {
		return nil, guard.NewValidationError(guard.ErrInvalidType, "validation.number", v, "value is not a number")
	}
	return v, nil
}
