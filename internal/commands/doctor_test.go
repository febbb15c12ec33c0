package commands

import (
	"bytes"
	"context"
	stderrors "errors"
	"strings"
	"testing"

	"github.com/NielsdaWheelz/seedsearch/internal/errors"
	"github.com/NielsdaWheelz/seedsearch/internal/exec"
	"github.com/NielsdaWheelz/seedsearch/internal/gamehome"
)

var javaVersionResult = exec.CmdResult{
	Stderr: "openjdk version \"1.8.0_252\"\nOpenJDK Runtime Environment (build 1.8.0_252-b09)\n",
}

func TestDoctor_OK(t *testing.T) {
	in := makeInstall(t, allFlagsOn)
	runner := &fakeRunner{result: javaVersionResult}

	var stdout bytes.Buffer
	if err := Doctor(context.Background(), testDeps(t, runner), DoctorOpts{Overrides: in.overrides()}, &stdout); err != nil {
		t.Fatalf("Doctor() error = %v", err)
	}

	if len(runner.calls) != 1 || runner.calls[0].args[0] != "-version" {
		t.Fatalf("calls = %+v, want one java -version", runner.calls)
	}

	out := stdout.String()
	for _, want := range []string{
		"user_config_path: " + in.ConfigPath + "\n",
		"user_config_found: true\n",
		"home: " + in.Home + "\n",
		"java: " + in.Java + "\n",
		"java_version: openjdk version \"1.8.0_252\"\n",
		"mod_the_spire: " + in.ModTheSpire + "\n",
		"player_class: IRONCLAD\n",
		"seed_range: 0..100\n",
		"missing_flags: none\n",
		"status: ok\n",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestDoctor_MissingFlags(t *testing.T) {
	in := makeInstall(t, `{"verbose": true, "showNeowOptions": true}`)
	runner := &fakeRunner{result: javaVersionResult}

	var stdout bytes.Buffer
	if err := Doctor(context.Background(), testDeps(t, runner), DoctorOpts{Overrides: in.overrides()}, &stdout); err != nil {
		t.Fatalf("Doctor() error = %v", err)
	}

	out := stdout.String()
	if !strings.Contains(out, "missing_flags: showCombats, showBosses, showEvents") {
		t.Errorf("unexpected missing_flags:\n%s", out)
	}
	if !strings.Contains(out, "status: warn") {
		t.Errorf("expected warn status:\n%s", out)
	}
}

func TestDoctor_Errors(t *testing.T) {
	tests := []struct {
		name         string
		searchConfig string
		runner       *fakeRunner
		wantCode     errors.Code
	}{
		{
			name:         "java does not start",
			searchConfig: allFlagsOn,
			runner:       &fakeRunner{err: stderrors.New("permission denied")},
			wantCode:     errors.EInvalidJava,
		},
		{
			name:         "java exits non-zero",
			searchConfig: allFlagsOn,
			runner:       &fakeRunner{result: exec.CmdResult{ExitCode: 1}},
			wantCode:     errors.EInvalidJava,
		},
		{
			name:     "no searchConfig.json",
			runner:   &fakeRunner{result: javaVersionResult},
			wantCode: errors.ENoSearchConfig,
		},
		{
			name:         "malformed searchConfig.json",
			searchConfig: `{"verbose": `,
			runner:       &fakeRunner{result: javaVersionResult},
			wantCode:     errors.EInvalidSearchConfig,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := makeInstall(t, tt.searchConfig)
			err := Doctor(context.Background(), testDeps(t, tt.runner), DoctorOpts{Overrides: in.overrides()}, &bytes.Buffer{})
			if code := errors.GetCode(err); code != tt.wantCode {
				t.Errorf("code = %q, want %q (err = %v)", code, tt.wantCode, err)
			}
		})
	}
}

func TestCheckJava_StdoutFallback(t *testing.T) {
	runner := &fakeRunner{result: exec.CmdResult{Stdout: "java 21.0.1 2023-10-17 LTS\nJava(TM) SE Runtime Environment\n"}}
	home := gamehome.Home{Dir: "/games/sts", Java: "/usr/bin/java"}

	got, err := checkJava(context.Background(), runner, home)
	if err != nil {
		t.Fatalf("checkJava() error = %v", err)
	}
	if got != "java 21.0.1 2023-10-17 LTS" {
		t.Errorf("checkJava() = %q", got)
	}
	if runner.calls[0].opts.Dir != home.Dir {
		t.Errorf("Dir = %q, want %q", runner.calls[0].opts.Dir, home.Dir)
	}
}
