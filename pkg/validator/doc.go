// Package validator is a library of ready-made guards for use with
// guard.Compose or on their own.
//
// Every validator has the guard.Guard signature, func(any) (any, error), or is
// a factory that returns one. A validator returns its input unchanged when the
// constraint holds and a *guard.ValidationError otherwise. Each error carries
// a human-readable Message, a TranslationKey such as "validation.in_range",
// and TranslationValues holding the offending value and any thresholds, so
// callers can render localized messages.
//
// # Architecture
//
// Each source file groups a family of guards (`numeric_rules.go`,
// `string_rules.go`, `collection_rules.go`, `comparable_rules.go`). The
// predicates themselves come from package check; this package only turns a
// failed predicate into a descriptive error. Guards hold no state and are safe
// for concurrent use.
//
// Parameterized guards are factories: LessThan(5) returns a guard, and
// LessThan(5)(v) validates v immediately.
//
// Comparison guards (LessThan, LessOrEqual, GreaterThan, GreaterOrEqual,
// InRange, Between) accept numbers of any Go numeric kind and
// decimal.Decimal. A non-numeric value, threshold or bound never passes: it
// fails with a ValidationError of kind guard.ErrIncomparable.
//
// # Usage
//
//	div, err := guard.Compose(
//	    []guard.Guard{validator.NotZero, validator.InRange(0, 100)},
//	    func(x float64) float64 { return 100 / x },
//	)
//
//	_, err = validator.InRange(0, 10)(11) // value is not in range [0,10]
//
// Guards can also be built from text with Parse, which is what the guardcheck
// command uses:
//
//	g, err := validator.Parse("in-range:0,10")
//	g, err = validator.Parse("is-number&not-zero")
package validator
