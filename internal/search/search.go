// Package search launches SeedSearch through ModTheSpire and captures its
// console transcript.
package search

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/NielsdaWheelz/seedsearch/internal/errors"
	"github.com/NielsdaWheelz/seedsearch/internal/exec"
	"github.com/NielsdaWheelz/seedsearch/internal/gamehome"
)

// ModName is the ModTheSpire mod id of SeedSearch.
const ModName = "SeedSearch"

// maxStderrLen is the maximum stderr length to include in error details.
const maxStderrLen = 4096

// Opts configures a launch.
type Opts struct {
	// Timeout bounds the run. Zero means no timeout beyond ctx.
	Timeout time.Duration

	// Encoding is "strict" or "lossy"; see Decode.
	Encoding string
}

// Capture is the decoded output of one SeedSearch run.
type Capture struct {
	Command    string
	Transcript string
	Stderr     string
	Duration   time.Duration
}

// Args returns the java arguments that start SeedSearch without the launcher UI.
func Args(h gamehome.Home) []string {
	return []string{"-jar", h.ModTheSpire, "--skip-launcher", "--mods", ModName}
}

// Launch runs SeedSearch from the game directory and returns its decoded stdout.
// Start failures, timeouts, and non-zero exits return E_LAUNCH_FAILED.
// Invalid UTF-8 under strict encoding returns E_TRANSCRIPT_ENCODING.
func Launch(ctx context.Context, runner exec.CommandRunner, h gamehome.Home, opts Opts) (Capture, error) {
	args := Args(h)
	cmdLine := exec.CommandLine(h.Java, args)

	result, err := runner.Run(ctx, h.Java, args, exec.RunOpts{Dir: h.Dir, Timeout: opts.Timeout})
	if err != nil {
		return Capture{}, errors.WrapWithDetails(errors.ELaunchFailed, "failed to start java: "+err.Error(), err,
			map[string]string{"command": cmdLine, "dir": h.Dir})
	}

	details := map[string]string{
		"command":      cmdLine,
		"dir":          h.Dir,
		"exit_code":    fmt.Sprintf("%d", result.ExitCode),
		"duration_ms":  fmt.Sprintf("%d", result.Duration.Milliseconds()),
		"stdout_bytes": fmt.Sprintf("%d", len(result.Stdout)),
	}
	if stderr := capStderr(result.Stderr); stderr != "" {
		details["stderr"] = stderr
	}

	if result.TimedOut {
		details["timed_out"] = "true"
		return Capture{}, errors.NewWithDetails(errors.ELaunchFailed,
			fmt.Sprintf("SeedSearch did not finish within %s", opts.Timeout), details)
	}
	if result.ExitCode != 0 {
		return Capture{}, errors.NewWithDetails(errors.ELaunchFailed,
			fmt.Sprintf("java exited with code %d", result.ExitCode), details)
	}

	text, err := Decode(result.Stdout, opts.Encoding)
	if err != nil {
		return Capture{}, err
	}

	return Capture{
		Command:    cmdLine,
		Transcript: text,
		Stderr:     result.Stderr,
		Duration:   result.Duration,
	}, nil
}

func capStderr(stderr string) string {
	trimmed := strings.TrimSpace(stderr)
	if len(trimmed) > maxStderrLen {
		trimmed = trimmed[len(trimmed)-maxStderrLen:]
	}
	return trimmed
}
