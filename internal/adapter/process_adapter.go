package adapter

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"sync"

	m "github.com/rehagoal/e2ecov/internal/model"
)

// ProcessHandle is a running background process. Kill terminates it and,
// where the platform supports it, every process in its group.
type ProcessHandle interface {
	Pid() int
	Command() m.Command
	// Kill sends the kill signal. Killing an exited process is not an error.
	Kill() error
	// Done is closed once the process has exited and been reaped.
	Done() <-chan struct{}
}

// ProcessAdapter starts long-lived background processes.
type ProcessAdapter interface {
	Start(ctx context.Context, cmd m.Command) (ProcessHandle, error)
	// SupportsGroupKill reports whether Kill reaches the whole process group.
	SupportsGroupKill() bool
}

// LocalProcessAdapter starts processes in their own process group.
type LocalProcessAdapter struct {
	stdout io.Writer
	stderr io.Writer
}

// NewLocalProcessAdapter constructs a LocalProcessAdapter. Nil writers
// default to the process streams.
func NewLocalProcessAdapter(stdout, stderr io.Writer) *LocalProcessAdapter {
	if stdout == nil {
		stdout = os.Stdout
	}

	if stderr == nil {
		stderr = os.Stderr
	}

	return &LocalProcessAdapter{stdout: stdout, stderr: stderr}
}

// SupportsGroupKill reports whether process groups are available.
func (a *LocalProcessAdapter) SupportsGroupKill() bool {
	return supportsGroupKill
}

// Start launches cmd in the background. The process outlives ctx; only Kill
// stops it.
func (a *LocalProcessAdapter) Start(ctx context.Context, cmd m.Command) (ProcessHandle, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// #nosec G204 - tool names and arguments come from the e2ecov config
	exe := exec.Command(cmd.Name, cmd.Args...)
	exe.Stdout = a.stdout
	exe.Stderr = a.stderr
	setProcessGroup(exe)

	if err := exe.Start(); err != nil {
		return nil, fmt.Errorf("start %s: %w", cmd.Name, err)
	}

	h := &localProcess{
		cmd:  cmd,
		exe:  exe,
		done: make(chan struct{}),
	}

	go func() {
		_ = exe.Wait()
		close(h.done)
	}()

	return h, nil
}

type localProcess struct {
	cmd  m.Command
	exe  *exec.Cmd
	done chan struct{}
	mu   sync.Mutex
}

func (p *localProcess) Pid() int { return p.exe.Process.Pid }

func (p *localProcess) Command() m.Command { return p.cmd }

func (p *localProcess) Done() <-chan struct{} { return p.done }

func (p *localProcess) Kill() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	return killProcess(p.exe.Process, p.done)
}
