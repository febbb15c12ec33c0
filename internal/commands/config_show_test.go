package commands

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/NielsdaWheelz/seedsearch/internal/config"
	"github.com/NielsdaWheelz/seedsearch/internal/errors"
)

func TestConfigShow_JSON(t *testing.T) {
	in := makeInstall(t, allFlagsOn)

	var stdout bytes.Buffer
	if err := ConfigShow(testDeps(t, nil), ConfigShowOpts{Overrides: in.overrides()}, &stdout); err != nil {
		t.Fatalf("ConfigShow() error = %v", err)
	}

	var got config.SearchConfig
	if err := json.Unmarshal(stdout.Bytes(), &got); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if got.PlayerClass != "IRONCLAD" || got.EndSeed != 100 || !got.ShowRawRelicPools {
		t.Errorf("unexpected config: %+v", got)
	}
}

func TestConfigShow_YAML(t *testing.T) {
	in := makeInstall(t, allFlagsOn)
	opts := ConfigShowOpts{Overrides: in.overrides()}
	opts.Format = "yaml"

	var stdout bytes.Buffer
	if err := ConfigShow(testDeps(t, nil), opts, &stdout); err != nil {
		t.Fatalf("ConfigShow() error = %v", err)
	}
	if !strings.Contains(stdout.String(), "playerClass: IRONCLAD\n") {
		t.Errorf("unexpected output:\n%s", stdout.String())
	}
}

func TestConfigShow_DoesNotRequireJava(t *testing.T) {
	in := makeInstall(t, allFlagsOn)
	o := in.overrides()
	o.Java = "/nonexistent/java"

	if err := ConfigShow(testDeps(t, nil), ConfigShowOpts{Overrides: o}, &bytes.Buffer{}); err != nil {
		t.Fatalf("ConfigShow() error = %v", err)
	}
}

func TestConfigShow_Missing(t *testing.T) {
	in := makeInstall(t, "")

	err := ConfigShow(testDeps(t, nil), ConfigShowOpts{Overrides: in.overrides()}, &bytes.Buffer{})
	if code := errors.GetCode(err); code != errors.ENoSearchConfig {
		t.Fatalf("code = %q, want %q", code, errors.ENoSearchConfig)
	}
}
