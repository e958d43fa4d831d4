package guard

import (
	"errors"
	"fmt"
	"maps"
)

// Validation failure kinds.
var (
	// ErrValidationFailed is matched by every *ValidationError.
	ErrValidationFailed = errors.New("validation failed")

	// ErrRequired is the kind of failures for zero numbers and empty strings or lists.
	ErrRequired = errors.New("value is required")

	// ErrInvalidType is the kind of failures where the value has the wrong type.
	ErrInvalidType = errors.New("invalid type")

	// ErrOutOfRange is the kind of failures of threshold and range guards.
	ErrOutOfRange = errors.New("value out of range")

	// ErrIncomparable is the kind of failures where a comparison guard received
	// a non-numeric value, threshold or bound.
	ErrIncomparable = errors.New("value is not comparable")
)

// Composition errors, returned by Compose.
var (
	// ErrInvalidComposition is matched by every error returned by Compose.
	ErrInvalidComposition = errors.New("invalid guard composition")

	// ErrNotFunctions is returned when a guard or the target is not a function.
	ErrNotFunctions = errors.New("validators list not all functions")

	// ErrGuardCountMismatch is returned when the number of guards differs from
	// the target arity plus one.
	ErrGuardCountMismatch = errors.New("guard count mismatch")

	// ErrUnsupportedSignature is returned for variadic targets and targets with
	// results other than (), (R), (error) or (R, error).
	ErrUnsupportedSignature = errors.New("unsupported function signature")
)

// Call errors, returned by a wrapped Func.
var (
	// ErrArgumentCount is returned when a Func is called with the wrong number of arguments.
	ErrArgumentCount = errors.New("wrong number of arguments")

	// ErrArgumentType is returned when an argument that passed its guard cannot
	// be passed to the target function.
	ErrArgumentType = errors.New("argument type mismatch")
)

// ValidationError describes a single guard violation with translation support.
type ValidationError struct {
	// Kind is one of ErrRequired, ErrInvalidType, ErrOutOfRange, ErrIncomparable
	// or a caller-defined sentinel. It may be nil.
	Kind              error
	Message           string
	TranslationKey    string
	TranslationValues map[string]any
	// Value is the offending value.
	Value any
}

// NewValidationError creates a ValidationError for value.
// TranslationValues is seeded with the offending value under "value".
func NewValidationError(kind error, translationKey string, value any, message string) *ValidationError {
	return &ValidationError{
		Kind:           kind,
		Message:        message,
		TranslationKey: translationKey,
		TranslationValues: map[string]any{
			"value": value,
		},
		Value: value,
	}
}

// With returns a copy of the error with an extra translation value.
func (e *ValidationError) With(key string, value any) *ValidationError {
	cp := *e
	cp.TranslationValues = maps.Clone(e.TranslationValues)
	if cp.TranslationValues == nil {
		cp.TranslationValues = make(map[string]any, 1)
	}
	cp.TranslationValues[key] = value
	return &cp
}

func (e *ValidationError) Error() string {
	if e.Message == "" {
		return ErrValidationFailed.Error()
	}
	return e.Message
}

// Unwrap exposes ErrValidationFailed and the error kind to errors.Is.
func (e *ValidationError) Unwrap() []error {
	if e.Kind == nil {
		return []error{ErrValidationFailed}
	}
	return []error{ErrValidationFailed, e.Kind}
}

// AsValidationError extracts a *ValidationError from err.
func AsValidationError(err error) (*ValidationError, bool) {
	if err == nil {
		return nil, false
	}

	var verr *ValidationError
	if errors.As(err, &verr) {
		return verr, true
	}
	return nil, false
}

// IsValidationError reports whether err is or wraps a *ValidationError.
func IsValidationError(err error) bool {
	_, ok := AsValidationError(err)
	return ok
}

func compositionError(kind error, format string, args ...any) error {
	return fmt.Errorf("%w: %w: %s", ErrInvalidComposition, kind, fmt.Sprintf(format, args...))
}
