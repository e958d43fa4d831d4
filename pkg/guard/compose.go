package guard

import (
	"fmt"
	"reflect"
	"slices"

	"github.com/dmitrymomot/guards/pkg/check"
)

// Func is a guarded function produced by Compose.
type Func func(args ...any) (any, error)

type resultShape int

const (
	resultNone resultShape = iota
	resultValue
	resultError
	resultValueError
)

var errorType = reflect.TypeFor[error]()

// Compose binds guards to fn. fn must be a non-variadic function of arity N
// returning (), (R), (error) or (R, error), and guards must hold exactly N+1
// non-nil guards: guards[i] validates argument i and guards[N] validates the
// result.
//
// All preconditions are checked here; the returned error matches
// ErrInvalidComposition when they do not hold.
func Compose(guards []Guard, fn any, opts ...Option) (Func, error) {
	if ok, err := IsListOfFunctions(guards); !ok {
		return nil, compositionError(ErrNotFunctions, "guards: %v", err)
	}
	if ok, err := IsFunction(fn); !ok {
		return nil, compositionError(ErrNotFunctions, "target %T: %v", fn, err)
	}

	fv := reflect.ValueOf(fn)
	ft := fv.Type()
	if ft.IsVariadic() {
		return nil, compositionError(ErrUnsupportedSignature, "variadic function %s", ft)
	}
	shape, ok := shapeOf(ft)
	if !ok {
		return nil, compositionError(ErrUnsupportedSignature, "results of %s", ft)
	}

	arity := ft.NumIn()
	if len(guards) != arity+1 {
		return nil, compositionError(ErrGuardCountMismatch,
			"got %d guards for a function of arity %d, want %d", len(guards), arity, arity+1)
	}

	gs := slices.Clone(guards)
	o := newOptions(opts)

	return func(args ...any) (any, error) {
		if len(args) != arity {
			return nil, fmt.Errorf("%w: got %d, want %d", ErrArgumentCount, len(args), arity)
		}

		// Guard i sees argument i as the target will receive it.
		in := make([]reflect.Value, arity)
		for i, arg := range args {
			v, err := convertArg(arg, ft.In(i))
			if err != nil {
				return nil, fmt.Errorf("%w: argument %d: %v", ErrArgumentType, i, err)
			}
			if _, err := gs[i](v.Interface()); err != nil {
				o.logViolation(PositionArgument, i, err)
				return nil, err
			}
			in[i] = v
		}

		result, err := unpack(fv.Call(in), shape)
		if err != nil {
			return nil, err
		}

		if _, err := gs[arity](result); err != nil {
			o.logViolation(PositionResult, arity, err)
			return nil, err
		}
		return result, nil
	}, nil
}

// MustCompose is like Compose but panics if the composition is invalid.
func MustCompose(guards []Guard, fn any, opts ...Option) Func {
	f, err := Compose(guards, fn, opts...)
	if err != nil {
		panic(fmt.Sprintf("failed to compose guarded function: %v", err))
	}
	return f
}

func shapeOf(ft reflect.Type) (resultShape, bool) {
	switch ft.NumOut() {
	case 0:
		return resultNone, true
	case 1:
		if ft.Out(0) == errorType {
			return resultError, true
		}
		return resultValue, true
	case 2:
		if ft.Out(1) == errorType {
			return resultValueError, true
		}
	}
	return 0, false
}

func unpack(out []reflect.Value, shape resultShape) (any, error) {
	switch shape {
	case resultValue:
		return out[0].Interface(), nil
	case resultError:
		return nil, asError(out[0])
	case resultValueError:
		if err := asError(out[1]); err != nil {
			return nil, err
		}
		return out[0].Interface(), nil
	default:
		return nil, nil
	}
}

func asError(v reflect.Value) error {
	if v.IsNil() {
		return nil
	}
	return v.Interface().(error)
}

// convertArg turns arg into a value of type t. Assignable values pass
// through; numbers convert between kinds only when no precision is lost.
func convertArg(arg any, t reflect.Type) (reflect.Value, error) {
	if arg == nil {
		if nillable(t.Kind()) {
			return reflect.Zero(t), nil
		}
		return reflect.Value{}, fmt.Errorf("nil is not assignable to %s", t)
	}

	v := reflect.ValueOf(arg)
	if v.Type().AssignableTo(t) {
		return v, nil
	}
	if numericKind(v.Kind()) && numericKind(t.Kind()) {
		converted := v.Convert(t)
		if c, err := check.Compare(arg, converted.Interface()); err != nil || c != 0 {
			return reflect.Value{}, fmt.Errorf("%v (%s) does not fit in %s", arg, v.Type(), t)
		}
		return converted, nil
	}
	return reflect.Value{}, fmt.Errorf("%s is not assignable to %s", v.Type(), t)
}

func numericKind(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	default:
		return false
	}
}
