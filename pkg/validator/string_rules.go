package validator

import (
	"github.com/dmitrymomot/guards/pkg/check"
	"github.com/dmitrymomot/guards/pkg/guard"
)

// NotEmptyString fails for strings of length 0. Other values pass.
func NotEmptyString(v any) (any, error) {
	if check.EmptyString(v) {
		return nil, guard.NewValidationError(guard.ErrRequired, "validation.not_empty_string", v, "string is empty")
	}
	return v, nil
}
