package cobra

import (
	"github.com/spf13/cobra"

	"github.com/NielsdaWheelz/seedsearch/internal/commands"
)

func newDoctorCmd() *cobra.Command {
	var opts commands.DoctorOpts

	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Check the game installation and searchConfig.json",
		Long: `Check the game installation and searchConfig.json.
Verifies the game directory, java runtime, ModTheSpire.jar, and
searchConfig.json, then lists the show* flags that must be enabled for the
transcript to decode.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDeps(cmd, func(deps commands.Deps) error {
				o := opts
				o.Overrides = overridesFor(opts.Overrides)
				return commands.Doctor(cmd.Context(), deps, o, cmd.OutOrStdout())
			})
		},
	}

	addInstallFlags(cmd, &opts.Overrides)

	return cmd
}
