package cobra

import (
	"github.com/spf13/cobra"

	"github.com/NielsdaWheelz/seedsearch/internal/commands"
	"github.com/NielsdaWheelz/seedsearch/internal/errors"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect SeedSearch configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = cmd.Help()
			return errors.New(errors.EUsage, "config requires a subcommand: show")
		},
	}

	cmd.AddCommand(newConfigShowCmd())

	return cmd
}

func newConfigShowCmd() *cobra.Command {
	var opts commands.ConfigShowOpts

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the game directory's searchConfig.json",
		Long: `Print the game directory's searchConfig.json.
Output is JSON by default; --format yaml or text prints YAML.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDeps(cmd, func(deps commands.Deps) error {
				o := opts
				o.Overrides = overridesFor(opts.Overrides)
				return commands.ConfigShow(deps, o, cmd.OutOrStdout())
			})
		},
	}

	cmd.Flags().StringVar(&opts.Home, "home", "", "Slay the Spire install directory (default: config home)")
	cmd.Flags().StringVar(&opts.Format, "format", "", "output format: json, yaml, text (default: config format)")

	return cmd
}
