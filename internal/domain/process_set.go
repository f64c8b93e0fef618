package domain

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/rehagoal/e2ecov/internal/adapter"
)

// ProcessSet tracks the background processes that must not outlive the
// program. KillAll runs at most once; a process registered after it ran is
// killed on the spot.
type ProcessSet struct {
	mu     sync.Mutex
	procs  []adapter.ProcessHandle
	closed bool
}

// NewProcessSet returns an empty set.
func NewProcessSet() *ProcessSet {
	return &ProcessSet{}
}

// Register adds a started process to the set.
func (s *ProcessSet) Register(proc adapter.ProcessHandle) {
	s.mu.Lock()
	closed := s.closed

	if !closed {
		s.procs = append(s.procs, proc)
	}
	s.mu.Unlock()

	if closed {
		_ = kill(proc)
	}
}

// Len returns the number of registered processes.
func (s *ProcessSet) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.procs)
}

// KillAll kills every registered process. Only the first call does any work.
func (s *ProcessSet) KillAll() error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}

	s.closed = true
	procs := s.procs
	s.procs = nil
	s.mu.Unlock()

	var errs []error

	for _, proc := range procs {
		if err := kill(proc); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

func kill(proc adapter.ProcessHandle) error {
	slog.Info(fmt.Sprintf("Killing [PID %d] %s", proc.Pid(), strings.Join(proc.Command().Argv(), " ")))

	if err := proc.Kill(); err != nil {
		slog.Error("Failed to kill process", "pid", proc.Pid(), "error", err)
		return fmt.Errorf("kill pid %d: %w", proc.Pid(), err)
	}

	return nil
}
