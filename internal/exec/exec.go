// Package exec provides the command-execution seam used by seedsearch.
// Production code uses RealRunner; tests substitute a fake CommandRunner.
package exec

import (
	"context"
	stderrors "errors"
	osexec "os/exec"
	"strings"
	"time"
)

// waitDelay bounds how long Run waits for output pipes after the process is killed.
const waitDelay = 2 * time.Second

// RunOpts configures a single command execution.
type RunOpts struct {
	// Dir is the working directory. Empty means the current directory.
	Dir string

	// Env is the full environment. Nil inherits the parent environment.
	Env []string

	// Timeout bounds the run. Zero means no timeout beyond ctx.
	Timeout time.Duration
}

// CmdResult holds the outcome of a command that was started.
type CmdResult struct {
	Stdout   string
	Stderr   string
	ExitCode int
	TimedOut bool
	Duration time.Duration
}

// CommandRunner executes external commands.
//
// err is non-nil only when the command could not be started (binary not
// found, permission denied) or the parent context was canceled. A command
// that ran and exited non-zero, or was killed by Timeout, is reported in
// CmdResult.
type CommandRunner interface {
	Run(ctx context.Context, name string, args []string, opts RunOpts) (CmdResult, error)
}

// RealRunner implements CommandRunner using os/exec.
type RealRunner struct{}

// NewRealRunner creates a new RealRunner.
func NewRealRunner() *RealRunner {
	return &RealRunner{}
}

// Run implements CommandRunner.
func (r *RealRunner) Run(ctx context.Context, name string, args []string, opts RunOpts) (CmdResult, error) {
	runCtx := ctx
	if opts.Timeout > 0 {
		var cancel context.CancelFunc
		runCtx, cancel = context.WithTimeout(ctx, opts.Timeout)
		defer cancel()
	}

	cmd := osexec.CommandContext(runCtx, name, args...)
	cmd.Dir = opts.Dir
	cmd.Env = opts.Env
	cmd.WaitDelay = waitDelay

	var stdoutBuf, stderrBuf strings.Builder
	cmd.Stdout = &stdoutBuf
	cmd.Stderr = &stderrBuf

	start := time.Now()
	runErr := cmd.Run()

	result := CmdResult{
		Stdout:   stdoutBuf.String(),
		Stderr:   stderrBuf.String(),
		Duration: time.Since(start),
	}

	if runErr == nil {
		return result, nil
	}

	if ctx.Err() != nil {
		// Parent canceled (user SIGINT); not a timeout.
		result.ExitCode = -1
		return result, ctx.Err()
	}

	var exitErr *osexec.ExitError
	if stderrors.As(runErr, &exitErr) {
		result.ExitCode = exitErr.ExitCode()
		if runCtx.Err() == context.DeadlineExceeded {
			result.TimedOut = true
		}
		return result, nil
	}

	result.ExitCode = -1
	return result, runErr
}

// CommandLine renders name and args for diagnostics.
func CommandLine(name string, args []string) string {
	parts := make([]string, 0, len(args)+1)
	parts = append(parts, quoteArg(name))
	for _, a := range args {
		parts = append(parts, quoteArg(a))
	}
	return strings.Join(parts, " ")
}

func quoteArg(s string) string {
	if s == "" || strings.ContainsAny(s, " \t\"'") {
		return `"` + strings.ReplaceAll(s, `"`, `\"`) + `"`
	}
	return s
}
