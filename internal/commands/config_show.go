package commands

import (
	"encoding/json"
	"io"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/NielsdaWheelz/seedsearch/internal/config"
	"github.com/NielsdaWheelz/seedsearch/internal/errors"
	"github.com/NielsdaWheelz/seedsearch/internal/gamehome"
)

// ConfigShowOpts holds options for the config show command.
type ConfigShowOpts struct {
	Overrides
}

// ConfigShow implements the `seedsearch config show` command.
// Prints the game directory's searchConfig.json as JSON, or as YAML for
// the yaml and text formats. Java and ModTheSpire are not checked.
func ConfigShow(deps Deps, opts ConfigShowOpts, stdout io.Writer) error {
	s, err := LoadSettings(deps.FS, opts.Overrides)
	if err != nil {
		return err
	}

	cfg, err := config.LoadSearchConfig(deps.FS, filepath.Join(s.Home, gamehome.SearchConfigFile))
	if err != nil {
		return err
	}

	switch s.Format {
	case config.FormatYAML, config.FormatText:
		enc := yaml.NewEncoder(stdout)
		enc.SetIndent(2)
		if err := enc.Encode(cfg); err != nil {
			return errors.Wrap(errors.EWriteFailed, "failed to write config", err)
		}
		return enc.Close()
	default:
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(cfg); err != nil {
			return errors.Wrap(errors.EWriteFailed, "failed to write config", err)
		}
		return nil
	}
}
