package validator

import (
	"fmt"

	"github.com/dmitrymomot/guards/pkg/check"
	"github.com/dmitrymomot/guards/pkg/guard"
)

// LessThan returns a guard that fails when v >= x.
func LessThan(x any) guard.Guard {
	return threshold(x, check.Less, "validation.less_than", "value is greater than or equal to %v")
}

// LessOrEqual returns a guard that fails when v > x.
func LessOrEqual(x any) guard.Guard {
	return threshold(x, check.LessOrEqual, "validation.less_or_equal", "value is greater than %v")
}

// GreaterThan returns a guard that fails when v <= x.
func GreaterThan(x any) guard.Guard {
	return threshold(x, check.Greater, "validation.greater_than", "value is less than or equal to %v")
}

// GreaterOrEqual returns a guard that fails when v < x.
func GreaterOrEqual(x any) guard.Guard {
	return threshold(x, check.GreaterOrEqual, "validation.greater_or_equal", "value is less than %v")
}

// InRange returns a guard that fails when v is outside [min, max].
func InRange(min, max any) guard.Guard {
	return bounds(min, max, check.InRange, "validation.in_range", "value is not in range [%v,%v]")
}

// Between returns a guard that fails when v is outside (min, max).
func Between(min, max any) guard.Guard {
	return bounds(min, max, check.Between, "validation.between", "value is not in range (%v,%v)")
}

func threshold(x any, holds func(v, x any) (bool, error), key, format string) guard.Guard {
	return func(v any) (any, error) {
		ok, err := holds(v, x)
		if err != nil {
			return nil, incomparable(v, fmt.Sprint(x)).With("threshold", x)
		}
		if !ok {
			return nil, guard.NewValidationError(guard.ErrOutOfRange, key, v, fmt.Sprintf(format, x)).
				With("threshold", x)
		}
		return v, nil
	}
}

func bounds(min, max any, holds func(v, min, max any) (bool, error), key, format string) guard.Guard {
	return func(v any) (any, error) {
		ok, err := holds(v, min, max)
		if err != nil {
			return nil, incomparable(v, fmt.Sprintf("[%v,%v]", min, max)).With("min", min).With("max", max)
		}
		if !ok {
			return nil, guard.NewValidationError(guard.ErrOutOfRange, key, v, fmt.Sprintf(format, min, max)).
				With("min", min).
				With("max", max)
		}
		return v, nil
	}
}

func incomparable(v any, against string) *guard.ValidationError {
	return guard.NewValidationError(guard.ErrIncomparable, "validation.incomparable", v,
		fmt.Sprintf("value %v is not comparable with %s", v, against)).
		With("against", against)
}
