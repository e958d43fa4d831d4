// Package main is the entry point for the guardcheck binary.
// It validates literal values against guard expressions and runs built-in
// functions through guard.Compose from the command line.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
