package main

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/guards/pkg/logger"
	"github.com/dmitrymomot/guards/pkg/validator"
)

func newCheckCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check -g EXPR [-g EXPR...] VALUE",
		Short: "Validate a value against guards, stopping at the first failure",
		Long: `Validate VALUE against each guard in order. VALUE is decoded as a YAML
literal: 5 is an int, 2.5 a float, [1, 2] a list, anything else a string.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			exprs, err := cmd.Flags().GetStringArray("guard")
			if err != nil {
				return fmt.Errorf("failed to get guard flag: %w", err)
			}
			if len(exprs) == 0 {
				return errors.New("at least one guard is required")
			}

			guards, err := validator.ParseList(exprs)
			if err != nil {
				return err
			}
			value, err := validator.ParseValue(args[0])
			if err != nil {
				return err
			}

			for i, g := range guards {
				if err := g.Check(value); err != nil {
					a.log.DebugContext(cmd.Context(), "value rejected",
						logger.Value(value),
						slog.String("expression", exprs[i]),
						slog.Int("index", i),
						logger.Error(err),
					)
					return fmt.Errorf("guard %q: %w", exprs[i], a.localize(err))
				}
			}

			a.log.DebugContext(cmd.Context(), "value accepted", logger.Value(value))
			fmt.Fprintf(cmd.OutOrStdout(), "ok: %v\n", value)
			return nil
		},
	}

	cmd.Flags().StringArrayP("guard", "g", nil, "Guard expression, e.g. not-zero or in-range:0,10 (repeatable)")
	return cmd
}
