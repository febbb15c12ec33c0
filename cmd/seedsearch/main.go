// Command seedsearch runs the SeedSearch mod for Slay the Spire and decodes its transcripts.
package main

import (
	"os"

	"github.com/NielsdaWheelz/seedsearch/internal/cli/cobra"
	"github.com/NielsdaWheelz/seedsearch/internal/errors"
)

func main() {
	err := cobra.Execute(os.Stdout, os.Stderr)
	if err != nil {
		// Use verbose mode if --verbose global flag was set
		opts := errors.PrintOptions{
			Verbose: cobra.GetGlobalOpts().Verbose,
		}
		errors.PrintWithOptions(os.Stderr, err, opts)
		os.Exit(errors.ExitCode(err))
	}
}
