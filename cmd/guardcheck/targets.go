package main

import (
	"errors"
	"slices"
	"strings"
)

var errDivisionByZero = errors.New("division by zero")

type target struct {
	fn          any
	description string
}

// targets are the functions the call command can wrap with guards.
var targets = map[string]target{
	"add": {
		fn:          func(a, b float64) float64 { return a + b },
		description: "a + b",
	},
	"sub": {
		fn:          func(a, b float64) float64 { return a - b },
		description: "a - b",
	},
	"mul": {
		fn:          func(a, b float64) float64 { return a * b },
		description: "a * b",
	},
	"div": {
		fn: func(a, b float64) (float64, error) {
			if b == 0 {
				return 0, errDivisionByZero
			}
			return a / b, nil
		},
		description: "a / b, fails on a zero divisor",
	},
	"neg": {
		fn:          func(a float64) float64 { return -a },
		description: "-a",
	},
	"len": {
		fn:          func(xs []any) int { return len(xs) },
		description: "number of elements in a list",
	},
	"concat": {
		fn:          func(a, b string) string { return a + b },
		description: "a followed by b",
	},
	"upper": {
		fn:          strings.ToUpper,
		description: "s in upper case",
	},
}

func targetNames() []string {
	names := make([]string, 0, len(targets))
	for name := range targets {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
