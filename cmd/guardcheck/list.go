package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/guards/pkg/validator"
)

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List available guards and targets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()

			fmt.Fprintln(out, "Guards:")
			for _, name := range validator.Names() {
				line, _ := validator.Describe(name)
				fmt.Fprintf(out, "  %s\n", line)
			}

			fmt.Fprintln(out, "Targets:")
			for _, name := range targetNames() {
				fmt.Fprintf(out, "  %-24s %s\n", name, targets[name].description)
			}
			return nil
		},
	}
}
