package guard

import (
	"fmt"
	"reflect"
)

// Guard validates a single value. It returns v unchanged when the value is
// acceptable, or a non-nil error describing the violated constraint.
type Guard func(v any) (any, error)

// Check runs the guard and returns only its error.
func (g Guard) Check(v any) error {
	_, err := g(v)
	return err
}

// And returns a guard that runs g and then next on the same value.
// The first failure wins; next is not evaluated when g fails.
func (g Guard) And(next Guard) Guard {
	return func(v any) (any, error) {
		if _, err := g(v); err != nil {
			return nil, err
		}
		if _, err := next(v); err != nil {
			return nil, err
		}
		return v, nil
	}
}

// All folds guards into one guard that applies them in order.
// All() is equivalent to Pass.
func All(guards ...Guard) Guard {
	g := Guard(Pass)
	for _, next := range guards {
		g = g.And(next)
	}
	return g
}

// Pass accepts every value.
func Pass(v any) (any, error) {
	return v, nil
}

// Of adapts a typed check into a Guard. Values that are not of type T fail
// with a ValidationError of kind ErrInvalidType; errors returned by check are
// propagated unchanged.
func Of[T any](check func(T) error) Guard {
	typ := reflect.TypeFor[T]()
	return func(v any) (any, error) {
		t, ok := v.(T)
		if !ok && v == nil && nillable(typ.Kind()) {
			ok = true
		}
		if !ok {
			return nil, NewValidationError(ErrInvalidType, "validation.type", v,
				fmt.Sprintf("value is not of type %s", typ)).With("type", typ.String())
		}
		if err := check(t); err != nil {
			return nil, err
		}
		return v, nil
	}
}

func nillable(k reflect.Kind) bool {
	switch k {
	case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map, reflect.Pointer, reflect.Slice:
		return true
	default:
		return false
	}
}
