package check

import "reflect"

// Zero reports whether v is a number equal to zero.
// Non-numeric values are never zero.
func Zero(v any) bool {
	n, ok := toNumber(v)
	return ok && n.inf == 0 && n.dec.IsZero()
}

// EmptyString reports whether v is a string of length 0.
func EmptyString(v any) bool {
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.String && rv.Len() == 0
}

// Array reports whether v is an ordered sequence (slice or array).
// Strings are not sequences.
func Array(v any) bool {
	switch reflect.ValueOf(v).Kind() {
	case reflect.Slice, reflect.Array:
		return true
	default:
		return false
	}
}

// EmptyArray reports whether v is a slice or array of length 0.
func EmptyArray(v any) bool {
	return Array(v) && reflect.ValueOf(v).Len() == 0
}

// Integer reports whether v has an integer kind.
func Integer(v any) bool {
	switch reflect.ValueOf(v).Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return true
	default:
		return false
	}
}

// Float reports whether v has a floating-point kind and holds a finite value.
func Float(v any) bool {
	switch reflect.ValueOf(v).Kind() {
	case reflect.Float32, reflect.Float64:
		n, ok := toNumber(v)
		return ok && n.inf == 0
	default:
		return false
	}
}

// Number reports whether v is a finite number: any integer or float kind, or
// a decimal.Decimal. NaN and infinities are not numbers.
func Number(v any) bool {
	n, ok := toNumber(v)
	return ok && n.inf == 0
}

// Function reports whether v is a non-nil function value.
func Function(v any) bool {
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Func && !rv.IsNil()
}

// Each reports whether v is a slice or array and every element satisfies
// pred. An empty sequence satisfies any predicate.
func Each(v any, pred func(any) bool) bool {
	if !Array(v) {
		return false
	}
	rv := reflect.ValueOf(v)
	for i := range rv.Len() {
		if !pred(rv.Index(i).Interface()) {
			return false
		}
	}
	return true
}
