// Package guards wraps Go functions with per-argument and per-result
// validators.
//
// A guard is a func(any) (any, error) that returns its input when it is
// valid. guard.Compose takes one guard for every parameter of a function
// plus one for its result and returns a callable that checks them in order,
// stopping at the first failure:
//
//	div, err := guard.Compose(
//		[]guard.Guard{guard.Pass, validator.NotZero, validator.GreaterOrEqual(4)},
//		func(a, b float64) float64 { return a / b },
//	)
//	if err != nil {
//		return err // guard count or signature mismatch
//	}
//	v, err := div(10, 2) // 5, nil
//	_, err = div(10, 0)  // "value is zero"
//
// Packages:
//
//   - pkg/guard: Guard type, Compose, typed Compose1/2/3, meta-validators and errors
//   - pkg/validator: ready-made guards and a registry that parses expressions like "in-range:0,10"
//   - pkg/check: exact numeric comparison and type predicates
//   - pkg/i18n: translated validation messages
//   - pkg/logger, pkg/config, pkg/environment: logging, env configuration and environment names
//
// The guardcheck command in cmd/guardcheck exposes the validator registry on
// the command line.
package guards
