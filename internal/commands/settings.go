// Package commands implements seedsearch CLI commands.
package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"github.com/NielsdaWheelz/seedsearch/internal/config"
	"github.com/NielsdaWheelz/seedsearch/internal/errors"
	"github.com/NielsdaWheelz/seedsearch/internal/exec"
	"github.com/NielsdaWheelz/seedsearch/internal/fs"
)

// Deps holds the collaborators shared by all commands.
type Deps struct {
	Runner exec.CommandRunner
	FS     fs.FS
	Logger *zap.Logger

	// Now defaults to time.Now.
	Now func() time.Time

	// TempDir receives transcripts that failed to parse when no
	// transcript_dir is configured. Empty means os.TempDir().
	TempDir string
}

func (d Deps) logger() *zap.Logger {
	if d.Logger == nil {
		return zap.NewNop()
	}
	return d.Logger
}

func (d Deps) now() time.Time {
	if d.Now == nil {
		return time.Now()
	}
	return d.Now()
}

func (d Deps) tempDir() string {
	if d.TempDir == "" {
		return os.TempDir()
	}
	return d.TempDir
}

// Overrides holds CLI flag values. Empty fields keep the user config value.
type Overrides struct {
	// ConfigPath is the --config flag. Empty means the default location,
	// where a missing file is not an error.
	ConfigPath string

	Home          string
	Java          string
	ModTheSpire   string
	Timeout       time.Duration
	Encoding      string
	Format        string
	TranscriptDir string

	// Env supplies SEEDSEARCH_* variables. Nil means the process environment.
	Env map[string]string
}

// Settings is the user config with CLI overrides applied.
type Settings struct {
	config.UserConfig

	// ConfigPath is the config file that was consulted.
	ConfigPath string

	// ConfigFound reports whether ConfigPath existed.
	ConfigFound bool
}

// LoadSettings loads the user config, then SEEDSEARCH_* environment
// variables, then flag overrides. An explicit --config path that does not exist is E_INVALID_USER_CONFIG.
func LoadSettings(fsys fs.FS, o Overrides) (Settings, error) {
	path := o.ConfigPath
	if path == "" {
		dir, err := config.DefaultConfigDir()
		if err == nil {
			path = config.UserConfigPath(dir)
		}
	}

	cfg := config.DefaultUserConfig()
	found := false
	if path != "" {
		var err error
		cfg, found, err = config.LoadUserConfig(fsys, path)
		if err != nil {
			return Settings{}, err
		}
	}
	if o.ConfigPath != "" && !found {
		return Settings{}, errors.NewWithDetails(errors.EInvalidUserConfig, "config file not found: "+o.ConfigPath,
			map[string]string{"path": o.ConfigPath})
	}

	environ := o.Env
	if environ == nil {
		environ = config.ProcessEnv()
	}
	cfg, err := config.ApplyEnv(cfg, environ)
	if err != nil {
		return Settings{}, err
	}

	overlay(&cfg.Home, o.Home)
	overlay(&cfg.Java, o.Java)
	overlay(&cfg.ModTheSpire, o.ModTheSpire)
	overlay(&cfg.Encoding, o.Encoding)
	overlay(&cfg.Format, o.Format)
	overlay(&cfg.TranscriptDir, o.TranscriptDir)
	if o.Timeout != 0 {
		cfg.Timeout = o.Timeout
	}

	if err := config.ValidateUserConfig(cfg); err != nil {
		return Settings{}, errors.WithDetail(err, "hint", "check the command flags and "+displayPath(path))
	}

	return Settings{UserConfig: cfg, ConfigPath: path, ConfigFound: found}, nil
}

func overlay(dst *string, val string) {
	if val != "" {
		*dst = val
	}
}

func displayPath(path string) string {
	if path == "" {
		return "config.yaml"
	}
	return path
}

// transcriptName returns the file name used for a saved transcript.
func transcriptName(t time.Time) string {
	return fmt.Sprintf("seedsearch-%s.txt", t.Format("20060102-150405"))
}

// saveTranscript writes text to path, creating parent directories.
func saveTranscript(fsys fs.FS, path, text string) error {
	if err := fsys.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.WrapWithDetails(errors.EWriteFailed, "failed to create transcript directory", err,
			map[string]string{"path": path})
	}
	if err := fsys.WriteFile(path, []byte(text), 0o644); err != nil {
		return errors.WrapWithDetails(errors.EWriteFailed, "failed to save transcript", err,
			map[string]string{"path": path})
	}
	return nil
}

// annotateParseError attaches the saved transcript path and, when the
// failing section is controlled by a searchConfig.json flag, a hint to
// enable it.
func annotateParseError(err error, transcriptPath string) error {
	if transcriptPath != "" {
		err = errors.WithDetail(err, "transcript", transcriptPath)
	}
	se, ok := errors.AsSearchError(err)
	if !ok || se.Code != errors.ETranscriptStructure || errors.GetHint(err) != "" {
		return err
	}
	if flag := config.FlagForSection(se.Details["section"]); flag != "" {
		err = errors.WithDetail(err, "hint", "set "+flag+" to true in searchConfig.json and rerun the search")
	}
	return err
}
