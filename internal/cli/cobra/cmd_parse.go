package cobra

import (
	"github.com/spf13/cobra"

	"github.com/NielsdaWheelz/seedsearch/internal/commands"
)

func newParseCmd() *cobra.Command {
	var opts commands.ParseOpts

	cmd := &cobra.Command{
		Use:   "parse <transcript>...",
		Short: "Decode saved SeedSearch transcripts",
		Long: `Decode saved SeedSearch transcripts.
Reads each transcript file (or standard input when an argument is "-") and
prints their records, in argument order, without launching the game.

Arguments:
  transcript    path to a saved transcript, or - for stdin`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDeps(cmd, func(deps commands.Deps) error {
				o := opts
				o.Overrides = overridesFor(opts.Overrides)
				o.Paths = args
				return commands.Parse(cmd.Context(), deps, o, cmd.InOrStdin(), cmd.OutOrStdout())
			})
		},
	}

	cmd.Flags().StringVar(&opts.Format, "format", "", "output format: json, yaml, text (default: config format)")
	cmd.Flags().StringVar(&opts.Encoding, "encoding", "", "transcript decoding: strict or lossy (default: config encoding)")

	return cmd
}
