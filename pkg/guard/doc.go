// Package guard wraps functions with per-argument and per-result validators.
//
// A Guard is a unary function that returns its input unchanged when the value
// is acceptable and an error otherwise. Compose binds an ordered list of
// guards to a target function: guard i validates argument i, and the last
// guard validates the function's result. The returned Func checks every
// argument before the target runs and checks the result before handing it
// back to the caller.
//
// # Architecture
//
// Composition is checked eagerly. Compose verifies that every guard is a
// function (IsListOfFunctions), that the target is a function (IsFunction),
// and that the number of guards equals the target's arity plus one. Any
// violation is reported immediately as an error matching
// ErrInvalidComposition; no Func is produced.
//
// Each call of the wrapped Func is fail-fast: guards run left to right in
// argument order, and the first failure is returned as-is. Later guards and
// the target function are not evaluated. The target runs exactly once, only
// after all argument guards have passed. Each argument is converted to its
// parameter type before its guard runs, so the guard sees the value the
// target receives: an int literal passed for a float64 parameter reaches its
// guard as a float64.
//
// A wrapped Func holds a private copy of its guard list and no other state,
// so it is safe for concurrent use.
//
// # Usage
//
//	tenDividedBy, err := guard.Compose(
//	    []guard.Guard{validator.NotZero, validator.GreaterOrEqual(4)},
//	    func(x float64) float64 { return 10 / x },
//	)
//	if err != nil {
//	    // guard list does not fit the function
//	}
//
//	v, err := tenDividedBy(2) // 5, nil
//	_, err = tenDividedBy(0)  // "value is zero"
//	_, err = tenDividedBy(5)  // "value is less than 4" (the result 2 failed)
//
// Statically typed wrappers are available through Compose1, Compose2 and
// Compose3:
//
//	add, err := guard.Compose2(validator.IsInteger, validator.IsInteger, guard.Pass,
//	    func(a, b int) int { return a + b })
//	sum, err := add(1, 2)
//
// # Error Handling
//
// Validation failures are reported as *ValidationError. Every ValidationError
// matches ErrValidationFailed with errors.Is, as well as its specific Kind
// (ErrRequired, ErrInvalidType, ErrOutOfRange, ErrIncomparable). Composition
// failures match ErrInvalidComposition together with one of ErrNotFunctions,
// ErrGuardCountMismatch or ErrUnsupportedSignature.
//
// # Logging
//
// WithLogger attaches a *slog.Logger that records every guard violation at
// debug level. Logging never changes the returned errors.
package guard
