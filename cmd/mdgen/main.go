// Command mdgen turns a conceptual entity-relationship model into
// platform models and generated application source files.
//
// Usage:
//
//	mdgen [flags] <command>
//
// Commands:
//   - validate: check a YAML or CUE model
//   - transform: print the PIM, backend or frontend model
//   - generate: write Flask and React sources, optionally recording the run
//   - history: list recorded runs
//   - test: run scenario files against the pipeline
//   - config show: print the effective configuration
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/roach88/mdgen/internal/cli"
)

func main() {
	err := cli.NewRootCommand().Execute()
	if err == nil {
		return
	}

	// Commands report their own failures; anything else is a usage or
	// flag error from cobra.
	var exitErr *cli.ExitError
	if !errors.As(err, &exitErr) {
		fmt.Fprintln(os.Stderr, "Error:", err)
	}
	os.Exit(cli.GetExitCode(err))
}
