// Package cobra provides the Cobra-based CLI command tree for seedsearch.
package cobra

import (
	"context"
	"io"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/NielsdaWheelz/seedsearch/internal/commands"
	"github.com/NielsdaWheelz/seedsearch/internal/exec"
	"github.com/NielsdaWheelz/seedsearch/internal/fs"
	"github.com/NielsdaWheelz/seedsearch/internal/logging"
	"github.com/NielsdaWheelz/seedsearch/internal/version"
)

// GlobalOpts holds global options parsed before subcommand dispatch.
type GlobalOpts struct {
	Verbose    bool
	LogLevel   string
	ConfigPath string
}

// globalOpts stores the parsed global options for access by subcommands.
var globalOpts GlobalOpts

// GetGlobalOpts returns the parsed global options.
func GetGlobalOpts() GlobalOpts {
	return globalOpts
}

// NewRootCmd creates the root cobra command for seedsearch.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "seedsearch",
		Short: "Run SeedSearch and decode its transcripts",
		Long: `seedsearch - run the SeedSearch mod for Slay the Spire and decode its output

seedsearch launches SeedSearch through ModTheSpire, captures the console
transcript, and turns each found seed into a structured record (Neow options,
combats, bosses, events, map path, card and potion choices, relic pools).
Saved transcripts can be decoded again with "seedsearch parse".

Settings come from config.yaml, then SEEDSEARCH_* environment variables
(SEEDSEARCH_HOME, SEEDSEARCH_TIMEOUT, ...), then flags.`,
		Version:       version.FullVersion(),
		SilenceErrors: true, // We handle error printing in main.go
		SilenceUsage:  true, // We handle usage printing manually
	}

	// Global flags
	rootCmd.PersistentFlags().BoolVar(&globalOpts.Verbose, "verbose", false, "show detailed error context and debug logs")
	rootCmd.PersistentFlags().StringVar(&globalOpts.LogLevel, "log-level", "", "log level: debug, info, warn, error (default: config log_level)")
	rootCmd.PersistentFlags().StringVar(&globalOpts.ConfigPath, "config", "", "path to config.yaml (default: user config dir)")

	// Disable Cobra's default completion command (we register our own)
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.AddCommand(
		newSearchCmd(),
		newParseCmd(),
		newDoctorCmd(),
		newConfigCmd(),
		newCompletionCmd(),
		newVersionCmd(),
	)

	return rootCmd
}

// Execute runs the root command with the given output writers.
// This is the main entry point from main.go. An interrupt cancels a
// running search.
func Execute(stdout, stderr io.Writer) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	rootCmd := NewRootCmd()
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)
	return rootCmd.ExecuteContext(ctx)
}

// withDeps builds the command collaborators and runs fn with them.
// Logs go to the command's stderr.
func withDeps(cmd *cobra.Command, fn func(deps commands.Deps) error) error {
	fsys := fs.NewRealFS()

	logger, err := logging.New(logLevel(fsys), cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	return fn(commands.Deps{
		Runner: exec.NewRealRunner(),
		FS:     fsys,
		Logger: logger.With(zap.String("cmd", cmd.Name())),
	})
}

// logLevel resolves the log level: --log-level, then --verbose, then config.
// Config errors are left for the command itself to report.
func logLevel(fsys fs.FS) string {
	if globalOpts.LogLevel != "" {
		return globalOpts.LogLevel
	}
	if globalOpts.Verbose {
		return "debug"
	}
	s, err := commands.LoadSettings(fsys, commands.Overrides{ConfigPath: globalOpts.ConfigPath})
	if err != nil {
		return logging.DefaultLevel
	}
	return s.LogLevel
}

// addInstallFlags registers the game installation and output flags shared
// by every command that reads the game directory.
func addInstallFlags(cmd *cobra.Command, o *commands.Overrides) {
	cmd.Flags().StringVar(&o.Home, "home", "", "Slay the Spire install directory (default: config home)")
	cmd.Flags().StringVar(&o.Java, "java", "", "java executable (default: the game's bundled jre)")
	cmd.Flags().StringVar(&o.ModTheSpire, "mod-the-spire", "", "path to ModTheSpire.jar (default: Steam workshop copy)")
	cmd.Flags().StringVar(&o.Format, "format", "", "output format: json, yaml, text (default: config format)")
}

// overridesFor completes o with the global --config flag.
func overridesFor(o commands.Overrides) commands.Overrides {
	o.ConfigPath = globalOpts.ConfigPath
	return o
}
