package main

import (
	"fmt"
	"reflect"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/guards/pkg/guard"
	"github.com/dmitrymomot/guards/pkg/validator"
)

func newCallCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "call TARGET -g EXPR... [ARGS...]",
		Short: "Call a built-in function with guarded arguments and result",
		Long: `Wrap TARGET with one guard per argument followed by one guard for the
result, then call it with ARGS. Every ARG is decoded as a YAML literal.
Use "pass" for positions that need no check and "--" before negative numbers.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			t, ok := targets[name]
			if !ok {
				return fmt.Errorf("unknown target %q, available: %s", name, strings.Join(targetNames(), ", "))
			}

			exprs, err := cmd.Flags().GetStringArray("guard")
			if err != nil {
				return fmt.Errorf("failed to get guard flag: %w", err)
			}
			if len(exprs) == 0 {
				exprs = slices.Repeat([]string{"pass"}, reflect.TypeOf(t.fn).NumIn()+1)
			}

			guards, err := validator.ParseList(exprs)
			if err != nil {
				return err
			}

			fn, err := guard.Compose(guards, t.fn,
				guard.WithLogger(a.log),
				guard.WithName(name),
				guard.WithContext(cmd.Context()),
			)
			if err != nil {
				return err
			}

			values := make([]any, 0, len(args)-1)
			for _, raw := range args[1:] {
				v, err := validator.ParseValue(raw)
				if err != nil {
					return err
				}
				values = append(values, v)
			}

			result, err := fn(values...)
			if err != nil {
				return fmt.Errorf("%s: %w", name, a.localize(err))
			}

			fmt.Fprintln(cmd.OutOrStdout(), result)
			return nil
		},
	}

	cmd.Flags().StringArrayP("guard", "g", nil, "Guard expression per argument, then one for the result (repeatable, default pass)")
	return cmd
}
