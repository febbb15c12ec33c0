package config

import (
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/NielsdaWheelz/seedsearch/internal/errors"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "SEEDSEARCH_"

// envOverrides is the SEEDSEARCH_* view of UserConfig.
type envOverrides struct {
	Home          string        `env:"HOME"`
	Java          string        `env:"JAVA"`
	ModTheSpire   string        `env:"MOD_THE_SPIRE"`
	Timeout       time.Duration `env:"TIMEOUT"`
	Encoding      string        `env:"ENCODING"`
	Format        string        `env:"FORMAT"`
	LogLevel      string        `env:"LOG_LEVEL"`
	TranscriptDir string        `env:"TRANSCRIPT_DIR"`
}

// ProcessEnv returns the process environment as a map.
func ProcessEnv() map[string]string {
	m := make(map[string]string)
	for _, kv := range os.Environ() {
		k, v, ok := strings.Cut(kv, "=")
		if ok {
			m[k] = v
		}
	}
	return m
}

// ApplyEnv overlays SEEDSEARCH_* variables from environ onto cfg.
// Unset or empty variables keep the existing value. The result is not
// validated.
func ApplyEnv(cfg UserConfig, environ map[string]string) (UserConfig, error) {
	var o envOverrides
	if err := env.ParseWithOptions(&o, env.Options{Prefix: EnvPrefix, Environment: environ}); err != nil {
		return UserConfig{}, errors.Wrap(errors.EInvalidUserConfig, "invalid environment override", err)
	}
	overlay(&cfg.Home, o.Home)
	overlay(&cfg.Java, o.Java)
	overlay(&cfg.ModTheSpire, o.ModTheSpire)
	overlay(&cfg.Encoding, o.Encoding)
	overlay(&cfg.Format, o.Format)
	overlay(&cfg.LogLevel, o.LogLevel)
	overlay(&cfg.TranscriptDir, o.TranscriptDir)
	if o.Timeout != 0 {
		cfg.Timeout = o.Timeout
	}
	return cfg, nil
}
