package cobra

import (
	"github.com/spf13/cobra"

	"github.com/NielsdaWheelz/seedsearch/internal/commands"
)

func newSearchCmd() *cobra.Command {
	var opts commands.SearchOpts

	cmd := &cobra.Command{
		Use:   "search",
		Short: "Run SeedSearch and print the found seeds",
		Long: `Run SeedSearch and print the found seeds.
Launches ModTheSpire with the SeedSearch mod from the game directory, waits
for the search to finish, and decodes the transcript. The search itself is
configured by searchConfig.json in the game directory.

A transcript that fails to decode is saved and its path is printed, so it
can be inspected or decoded again with "seedsearch parse".`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDeps(cmd, func(deps commands.Deps) error {
				o := opts
				o.Overrides = overridesFor(opts.Overrides)
				return commands.Search(cmd.Context(), deps, o, cmd.OutOrStdout())
			})
		},
	}

	addInstallFlags(cmd, &opts.Overrides)
	cmd.Flags().DurationVar(&opts.Timeout, "timeout", 0, "maximum run time, e.g. 45m (default: config timeout)")
	cmd.Flags().StringVar(&opts.Encoding, "encoding", "", "transcript decoding: strict or lossy (default: config encoding)")
	cmd.Flags().StringVar(&opts.TranscriptDir, "transcript-dir", "", "keep every raw transcript in this directory")
	cmd.Flags().StringVar(&opts.SaveTranscript, "save-transcript", "", "write the raw transcript to this file")

	return cmd
}
