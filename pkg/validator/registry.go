package validator

import (
	"fmt"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/guards/pkg/guard"
)

type entry struct {
	args        []string
	description string
	build       func(args []any) guard.Guard
}

func plain(g guard.Guard) func([]any) guard.Guard {
	return func([]any) guard.Guard { return g }
}

var registry = map[string]entry{
	"pass":             {description: "accepts every value", build: plain(guard.Pass)},
	"not-zero":         {description: "fails for numbers equal to zero", build: plain(NotZero)},
	"not-empty-string": {description: "fails for empty strings", build: plain(NotEmptyString)},
	"is-list":          {description: "fails unless the value is a list", build: plain(IsList)},
	"not-empty-list":   {description: "fails for empty lists", build: plain(NotEmptyList)},
	"is-integer":       {description: "fails unless the value is an integer", build: plain(IsInteger)},
	"is-float":         {description: "fails unless the value is a float", build: plain(IsFloat)},
	"is-number":        {description: "fails unless the value is a finite number", build: plain(IsNumber)},
	"less-than": {
		args:        []string{"x"},
		description: "fails when value >= x",
		build:       func(a []any) guard.Guard { return LessThan(a[0]) },
	},
	"less-or-equal": {
		args:        []string{"x"},
		description: "fails when value > x",
		build:       func(a []any) guard.Guard { return LessOrEqual(a[0]) },
	},
	"greater-than": {
		args:        []string{"x"},
		description: "fails when value <= x",
		build:       func(a []any) guard.Guard { return GreaterThan(a[0]) },
	},
	"greater-or-equal": {
		args:        []string{"x"},
		description: "fails when value < x",
		build:       func(a []any) guard.Guard { return GreaterOrEqual(a[0]) },
	},
	"in-range": {
		args:        []string{"min", "max"},
		description: "fails when value is outside [min,max]",
		build:       func(a []any) guard.Guard { return InRange(a[0], a[1]) },
	},
	"between": {
		args:        []string{"min", "max"},
		description: "fails when value is outside (min,max)",
		build:       func(a []any) guard.Guard { return Between(a[0], a[1]) },
	},
}

// Names returns the registered guard names in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Describe returns the usage line of a registered guard, e.g.
// "in-range:min,max  fails when value is outside [min,max]".
func Describe(name string) (string, bool) {
	e, ok := registry[name]
	if !ok {
		return "", false
	}
	usage := name
	if len(e.args) > 0 {
		usage += ":" + strings.Join(e.args, ",")
	}
	return fmt.Sprintf("%-24s %s", usage, e.description), true
}

// Parse builds a guard from an expression. An expression is a guard name
// optionally followed by ":" and comma-separated arguments, e.g. "not-zero"
// or "in-range:0,10". Arguments are decoded as YAML scalars, so "4" is an
// int, "2.5" a float64 and "abc" a string. Several expressions joined with
// "&" are applied in order on the same value.
func Parse(expr string) (guard.Guard, error) {
	parts := strings.Split(expr, "&")
	guards := make([]guard.Guard, 0, len(parts))
	for _, part := range parts {
		g, err := parseOne(strings.TrimSpace(part))
		if err != nil {
			return nil, err
		}
		guards = append(guards, g)
	}
	if len(guards) == 1 {
		return guards[0], nil
	}
	return guard.All(guards...), nil
}

// ParseList parses each expression with Parse, keeping the order.
func ParseList(exprs []string) ([]guard.Guard, error) {
	guards := make([]guard.Guard, 0, len(exprs))
	for i, expr := range exprs {
		g, err := Parse(expr)
		if err != nil {
			return nil, fmt.Errorf("guard %d: %w", i, err)
		}
		guards = append(guards, g)
	}
	return guards, nil
}

func parseOne(expr string) (guard.Guard, error) {
	name, rawArgs, hasArgs := strings.Cut(expr, ":")
	name = strings.TrimSpace(name)

	e, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownGuard, name)
	}

	var raw []string
	if hasArgs {
		raw = strings.Split(rawArgs, ",")
	}
	if len(raw) != len(e.args) {
		return nil, fmt.Errorf("%w: %s expects %d argument(s), got %d", ErrInvalidArguments, name, len(e.args), len(raw))
	}

	args := make([]any, len(raw))
	for i, r := range raw {
		v, err := ParseValue(r)
		if err != nil {
			return nil, fmt.Errorf("%s argument %q: %w", name, r, err)
		}
		args[i] = v
	}
	return e.build(args), nil
}

// ParseValue decodes a YAML literal: numbers become int or float64, "[1, 2]"
// becomes []any, and anything else stays a string. Blank input is an error.
func ParseValue(s string) (any, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, fmt.Errorf("%w: empty value", ErrInvalidArguments)
	}
	var v any
	if err := yaml.Unmarshal([]byte(s), &v); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidArguments, err)
	}
	return v, nil
}
