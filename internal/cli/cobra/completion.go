package cobra

import (
	"bytes"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/NielsdaWheelz/seedsearch/internal/errors"
	"github.com/NielsdaWheelz/seedsearch/internal/fs"
)

func newCompletionCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "completion <shell>",
		Short: "Generate shell completion scripts",
		Long: `Generate shell completion scripts.
By default, prints the script to stdout.
Use --output to write directly to a file.

Arguments:
  shell    target shell: bash, zsh, fish, or powershell

Installation:

  bash (with bash-completion package):
    seedsearch completion bash > ~/.local/share/bash-completion/completions/seedsearch

  zsh (with fpath):
    seedsearch completion zsh > ~/.zsh/completions/_seedsearch
    # ensure ~/.zsh/completions is in fpath before compinit

  fish:
    seedsearch completion fish > ~/.config/fish/completions/seedsearch.fish

  powershell:
    seedsearch completion powershell >> $PROFILE

After installation, restart your shell.`,
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"bash", "zsh", "fish", "powershell"},
		RunE: func(cmd *cobra.Command, args []string) error {
			var buf bytes.Buffer
			if err := genCompletion(cmd.Root(), args[0], &buf); err != nil {
				return err
			}

			if output == "" {
				_, err := cmd.OutOrStdout().Write(buf.Bytes())
				return err
			}

			if err := fs.WriteFileAtomic(output, buf.Bytes(), 0o644); err != nil {
				return errors.WrapWithDetails(errors.EWriteFailed, fmt.Sprintf("failed to write %s", output), err,
					map[string]string{"path": output})
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&output, "output", "", "write completion script to file instead of stdout")

	return cmd
}

func genCompletion(root *cobra.Command, shell string, buf *bytes.Buffer) error {
	var err error
	switch shell {
	case "bash":
		err = root.GenBashCompletionV2(buf, true)
	case "zsh":
		err = root.GenZshCompletion(buf)
	case "fish":
		err = root.GenFishCompletion(buf, true)
	case "powershell":
		err = root.GenPowerShellCompletionWithDesc(buf)
	default:
		return errors.New(errors.EUsage, fmt.Sprintf("unsupported shell: %s (supported: bash, zsh, fish, powershell)", shell))
	}
	if err != nil {
		return errors.Wrap(errors.EInternal, "failed to generate completion script", err)
	}
	return nil
}
