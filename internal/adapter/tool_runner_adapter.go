package adapter

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"syscall"

	m "github.com/rehagoal/e2ecov/internal/model"
)

// ToolRunnerAdapter runs external tools in the foreground.
type ToolRunnerAdapter interface {
	// Run executes the command and blocks until it exits. A command that ran
	// and exited non-zero is reported through exitCode with a nil error. A
	// command killed by a signal reports 128+signal, as a shell does. err is
	// set only when the command could not be started or ctx ended it.
	Run(ctx context.Context, cmd m.Command) (exitCode int, err error)
}

// signalExitBase is added to the signal number of a tool killed by a signal.
const signalExitBase = 128

// LocalToolRunnerAdapter runs tools with os/exec, streaming their output.
type LocalToolRunnerAdapter struct {
	stdout io.Writer
	stderr io.Writer
}

// NewLocalToolRunnerAdapter constructs a LocalToolRunnerAdapter writing tool
// output to the given writers. Nil writers default to the process streams.
func NewLocalToolRunnerAdapter(stdout, stderr io.Writer) *LocalToolRunnerAdapter {
	if stdout == nil {
		stdout = os.Stdout
	}

	if stderr == nil {
		stderr = os.Stderr
	}

	return &LocalToolRunnerAdapter{stdout: stdout, stderr: stderr}
}

// Run executes cmd and returns its exit code.
func (a *LocalToolRunnerAdapter) Run(ctx context.Context, cmd m.Command) (int, error) {
	// #nosec G204 - tool names and arguments come from the e2ecov config
	exe := exec.CommandContext(ctx, cmd.Name, cmd.Args...)
	exe.Stdin = os.Stdin
	exe.Stdout = a.stdout
	exe.Stderr = a.stderr

	err := exe.Run()
	if err == nil {
		return 0, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) && ctx.Err() == nil {
		if code := exitErr.ExitCode(); code >= 0 {
			return code, nil
		}

		if status, ok := exitErr.Sys().(syscall.WaitStatus); ok && status.Signaled() {
			return signalExitBase + int(status.Signal()), nil
		}
	}

	return -1, fmt.Errorf("run %s: %w", cmd.Name, err)
}
