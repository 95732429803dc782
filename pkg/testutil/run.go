package testutil

import (
	"bytes"
	"context"
	stderrors "errors"
	"os/exec"
	"strings"
	"testing"
)

// CommandResult holds the outcome of a CLI invocation
type CommandResult struct {
	ExitCode int
	Stdout   string
	Stderr   string
}

// Run starts cmd, waits for it and captures its output. A process that
// could not be started, or was killed by its context, reports exit code -1.
func Run(tb testing.TB, cmd *exec.Cmd) CommandResult {
	tb.Helper()

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	tb.Logf("running %s in %s", strings.Join(cmd.Args, " "), cmd.Dir)
	err := cmd.Run()

	exitCode := 0
	var exitErr *exec.ExitError
	switch {
	case err == nil:
	case stderrors.As(err, &exitErr):
		exitCode = exitErr.ExitCode()
	case stderrors.Is(err, context.DeadlineExceeded), stderrors.Is(err, context.Canceled):
		tb.Logf("Command cancelled: %v", err)
		exitCode = -1
	default:
		tb.Logf("Command execution error: %v", err)
		exitCode = -1
	}

	return CommandResult{
		ExitCode: exitCode,
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
	}
}
