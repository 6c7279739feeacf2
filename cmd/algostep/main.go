// Package main provides the algostep CLI.
//
// Usage:
//
//	algostep [flags] <command> [args]
//
// Commands:
//
//	list     - Algorithms and their complexity
//	info     - Details of one algorithm
//	steps    - Generate and dump a step log
//	play     - Replay a step log in the terminal
//	config   - Show the effective configuration
//	version  - Build information
//
// Configuration:
//
//	Settings are read from ~/.algostep/config.yaml; see 'algostep config'.
package main

import (
	"fmt"
	"os"

	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/algostep/cmd/algostep/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		if hint := errors.FlattenHints(err); hint != "" {
			fmt.Fprintf(os.Stderr, "Hint: %s\n", hint)
		}
		os.Exit(1)
	}
}
