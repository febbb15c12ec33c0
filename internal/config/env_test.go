package config

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/NielsdaWheelz/seedsearch/internal/errors"
)

func TestApplyEnv_Overlays(t *testing.T) {
	environ := map[string]string{
		"SEEDSEARCH_HOME":           "/games/sts",
		"SEEDSEARCH_TIMEOUT":        "5m",
		"SEEDSEARCH_FORMAT":         "text",
		"SEEDSEARCH_TRANSCRIPT_DIR": "/tmp/runs",
		"HOME":                      "/root",
	}
	got, err := ApplyEnv(DefaultUserConfig(), environ)
	if err != nil {
		t.Fatalf("ApplyEnv() error = %v", err)
	}

	want := DefaultUserConfig()
	want.Home = "/games/sts"
	want.Timeout = 5 * time.Minute
	want.Format = "text"
	want.TranscriptDir = "/tmp/runs"
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ApplyEnv() mismatch (-want +got):\n%s", diff)
	}
}

func TestApplyEnv_EmptyKeepsConfig(t *testing.T) {
	cfg := DefaultUserConfig()
	cfg.Java = "/opt/jdk/bin/java"
	got, err := ApplyEnv(cfg, map[string]string{"SEEDSEARCH_JAVA": ""})
	if err != nil {
		t.Fatalf("ApplyEnv() error = %v", err)
	}
	if got.Java != "/opt/jdk/bin/java" {
		t.Errorf("Java = %q, want config value", got.Java)
	}
}

func TestApplyEnv_BadDuration(t *testing.T) {
	_, err := ApplyEnv(DefaultUserConfig(), map[string]string{"SEEDSEARCH_TIMEOUT": "soon"})
	if err == nil {
		t.Fatal("expected error")
	}
	if got := errors.GetCode(err); got != errors.EInvalidUserConfig {
		t.Errorf("code = %s, want %s", got, errors.EInvalidUserConfig)
	}
}
