// Package check provides the low-level assertion primitives the guard and
// validator packages are built on.
//
// Every predicate accepts an arbitrary value (any) and answers a single
// question about it: is it a number, is it zero, is it a list, is it a
// function, how does it order against another number. The package never
// returns values and never formats messages; turning a failed check into a
// descriptive error is the job of the callers.
//
// # Numbers
//
// Any Go integer or floating-point kind counts as a number, including named
// types such as time.Duration, as well as decimal.Decimal values. Numbers of
// different kinds are compared exactly: an int64 and a float32 are both
// converted to decimal.Decimal before comparison, so no precision is lost on
// large integers. Positive and negative infinity order at the extremes. NaN
// and non-numeric values are incomparable, and Compare reports ErrNotNumber
// for them.
//
// # Usage
//
//	if check.Zero(v) {
//	    // v is a number equal to zero
//	}
//
//	ok, err := check.Less(v, 10)
//	if err != nil {
//	    // v or 10 is not a number
//	}
package check
