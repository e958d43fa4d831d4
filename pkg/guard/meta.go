package guard

import "github.com/dmitrymomot/guards/pkg/check"

// IsFunction reports whether v is a non-nil function.
func IsFunction(v any) (bool, error) {
	if !check.Function(v) {
		return false, NewValidationError(ErrInvalidType, "validation.function", v, "value is not a function")
	}
	return true, nil
}

// IsListOfFunctions reports whether list is a slice or array of non-nil
// functions.
//
// Unlike a Guard it returns a boolean instead of the validated list. It exists
// for the self-checks done by Compose and should not be placed in a guard list.
func IsListOfFunctions(list any) (bool, error) {
	if !check.Each(list, check.Function) {
		return false, NewValidationError(ErrInvalidType, "validation.functions", list, "list does not contain only functions")
	}
	return true, nil
}
