// Package config loads the SeedSearch searchConfig.json and the seedsearch user config.
// This file handles the user config (config.yaml).
package config

import (
	"bytes"
	stderrors "errors"
	"io"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/NielsdaWheelz/seedsearch/internal/errors"
	"github.com/NielsdaWheelz/seedsearch/internal/fs"
	"github.com/NielsdaWheelz/seedsearch/internal/gamehome"
)

// Transcript encodings accepted by the encoding key.
const (
	EncodingStrict = "strict"
	EncodingLossy  = "lossy"
)

// Output formats accepted by the format key.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
	FormatText = "text"
)

// DefaultTimeout bounds a single SeedSearch run.
const DefaultTimeout = 30 * time.Minute

// UserConfig is the parsed and validated user config.
type UserConfig struct {
	Home          string        `yaml:"home"`
	Java          string        `yaml:"java"`
	ModTheSpire   string        `yaml:"mod_the_spire"`
	Timeout       time.Duration `yaml:"-"`
	Encoding      string        `yaml:"encoding"`
	Format        string        `yaml:"format"`
	LogLevel      string        `yaml:"log_level"`
	TranscriptDir string        `yaml:"transcript_dir"`
}

// rawUserConfig is the on-disk shape; timeout is a Go duration string.
type rawUserConfig struct {
	Home          string `yaml:"home"`
	Java          string `yaml:"java"`
	ModTheSpire   string `yaml:"mod_the_spire"`
	Timeout       string `yaml:"timeout"`
	Encoding      string `yaml:"encoding"`
	Format        string `yaml:"format"`
	LogLevel      string `yaml:"log_level"`
	TranscriptDir string `yaml:"transcript_dir"`
}

// DefaultUserConfig returns built-in defaults used when config.yaml is missing.
func DefaultUserConfig() UserConfig {
	return UserConfig{
		Home:     gamehome.DefaultDir,
		Timeout:  DefaultTimeout,
		Encoding: EncodingLossy,
		Format:   FormatJSON,
		LogLevel: "info",
	}
}

// DefaultConfigDir returns the seedsearch directory under the user config dir.
func DefaultConfigDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, "seedsearch"), nil
}

// UserConfigPath returns the full path to the user config file.
func UserConfigPath(configDir string) string {
	return filepath.Join(configDir, "config.yaml")
}

// LoadUserConfig loads the user config at path, overlaying defaults.
// If the file is missing, returns defaults with found=false.
// If the file exists but is invalid, returns E_INVALID_USER_CONFIG.
func LoadUserConfig(filesystem fs.FS, path string) (UserConfig, bool, error) {
	data, err := filesystem.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultUserConfig(), false, nil
		}
		return UserConfig{}, false, errors.WrapWithDetails(errors.EInvalidUserConfig, "failed to read user config", err,
			map[string]string{"path": path})
	}

	var raw rawUserConfig
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&raw); err != nil && !stderrors.Is(err, io.EOF) {
		return UserConfig{}, false, errors.WrapWithDetails(errors.EInvalidUserConfig, "invalid yaml: "+err.Error(), err,
			map[string]string{"path": path})
	}

	cfg := DefaultUserConfig()
	overlay(&cfg.Home, raw.Home)
	overlay(&cfg.Java, raw.Java)
	overlay(&cfg.ModTheSpire, raw.ModTheSpire)
	overlay(&cfg.Encoding, raw.Encoding)
	overlay(&cfg.Format, raw.Format)
	overlay(&cfg.LogLevel, raw.LogLevel)
	overlay(&cfg.TranscriptDir, raw.TranscriptDir)
	if raw.Timeout != "" {
		d, err := time.ParseDuration(raw.Timeout)
		if err != nil {
			return UserConfig{}, false, errors.NewWithDetails(errors.EInvalidUserConfig, "timeout must be a Go duration (e.g. 30m)",
				map[string]string{"path": path})
		}
		cfg.Timeout = d
	}

	if err := ValidateUserConfig(cfg); err != nil {
		return UserConfig{}, false, errors.WithDetail(err, "path", path)
	}
	return cfg, true, nil
}

func overlay(dst *string, val string) {
	if val != "" {
		*dst = val
	}
}

// ValidateUserConfig returns E_INVALID_USER_CONFIG for out-of-range values.
func ValidateUserConfig(cfg UserConfig) error {
	if cfg.Timeout <= 0 {
		return errors.New(errors.EInvalidUserConfig, "timeout must be positive")
	}
	switch cfg.Encoding {
	case EncodingStrict, EncodingLossy:
	default:
		return errors.New(errors.EInvalidUserConfig, "encoding must be one of: strict, lossy")
	}
	switch cfg.Format {
	case FormatJSON, FormatYAML, FormatText:
	default:
		return errors.New(errors.EInvalidUserConfig, "format must be one of: json, yaml, text")
	}
	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return errors.New(errors.EInvalidUserConfig, "log_level must be one of: debug, info, warn, error")
	}
	return nil
}
