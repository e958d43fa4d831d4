package validator

import (
	"github.com/dmitrymomot/guards/pkg/check"
	"github.com/dmitrymomot/guards/pkg/guard"
)

// IsList fails unless v is a slice or an array.
func IsList(v any) (any, error) {
	if !check.Array(v) {
		return nil, guard.NewValidationError(guard.ErrInvalidType, "validation.list", v, "value is not a list")
	}
	return v, nil
}

// NotEmptyList fails for slices and arrays of length 0. Other values pass.
func NotEmptyList(v any) (any, error) {
	if check.EmptyArray(v) {
		return nil, guard.NewValidationError(guard.ErrRequired, "validation.not_empty_list", v, "list is empty")
	}
	return v, nil
}
