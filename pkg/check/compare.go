package check

import (
	"cmp"
	"fmt"
	"math"
	"math/big"
	"reflect"

	"github.com/shopspring/decimal"
)

// number is the normalized form of any numeric value.
// inf is -1 or +1 for infinities, in which case dec is unused.
type number struct {
	inf int
	dec decimal.Decimal
}

func toNumber(v any) (number, bool) {
	switch d := v.(type) {
	case decimal.Decimal:
		return number{dec: d}, true
	case *decimal.Decimal:
		if d == nil {
			return number{}, false
		}
		return number{dec: *d}, true
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return number{dec: decimal.NewFromInt(rv.Int())}, true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return number{dec: decimal.NewFromBigInt(new(big.Int).SetUint64(rv.Uint()), 0)}, true
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		switch {
		case math.IsNaN(f):
			return number{}, false
		case math.IsInf(f, 1):
			return number{inf: 1}, true
		case math.IsInf(f, -1):
			return number{inf: -1}, true
		}
		if rv.Kind() == reflect.Float32 {
			return number{dec: decimal.NewFromFloat32(float32(f))}, true
		}
		return number{dec: decimal.NewFromFloat(f)}, true
	default:
		return number{}, false
	}
}

func (n number) cmp(o number) int {
	if n.inf != 0 || o.inf != 0 {
		return cmp.Compare(n.inf, o.inf)
	}
	return n.dec.Cmp(o.dec)
}

// Compare returns -1, 0 or +1 depending on whether a is less than, equal to or
// greater than b. Both values must be numbers; otherwise the returned error
// wraps ErrNotNumber.
func Compare(a, b any) (int, error) {
	na, ok := toNumber(a)
	if !ok {
		return 0, fmt.Errorf("%w: %v (%T)", ErrNotNumber, a, a)
	}
	nb, ok := toNumber(b)
	if !ok {
		return 0, fmt.Errorf("%w: %v (%T)", ErrNotNumber, b, b)
	}
	return na.cmp(nb), nil
}

// Less reports whether v < x.
func Less(v, x any) (bool, error) {
	c, err := Compare(v, x)
	return err == nil && c < 0, err
}

// LessOrEqual reports whether v <= x.
func LessOrEqual(v, x any) (bool, error) {
	c, err := Compare(v, x)
	return err == nil && c <= 0, err
}

// Greater reports whether v > x.
func Greater(v, x any) (bool, error) {
	c, err := Compare(v, x)
	return err == nil && c > 0, err
}

// GreaterOrEqual reports whether v >= x.
func GreaterOrEqual(v, x any) (bool, error) {
	c, err := Compare(v, x)
	return err == nil && c >= 0, err
}

// InRange reports whether v lies in the closed interval [min, max].
func InRange(v, min, max any) (bool, error) {
	lo, err := Compare(v, min)
	if err != nil {
		return false, err
	}
	hi, err := Compare(v, max)
	if err != nil {
		return false, err
	}
	return lo >= 0 && hi <= 0, nil
}

// Between reports whether v lies in the open interval (min, max).
func Between(v, min, max any) (bool, error) {
	lo, err := Compare(v, min)
	if err != nil {
		return false, err
	}
	hi, err := Compare(v, max)
	if err != nil {
		return false, err
	}
	return lo > 0 && hi < 0, nil
}
