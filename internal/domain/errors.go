package domain

import (
	"errors"
	"fmt"
	"strings"

	m "github.com/rehagoal/e2ecov/internal/model"
)

var (
	// ErrServerUnreachable means the web server never answered within the
	// readiness timeout. It is a setup fault and is not retried.
	ErrServerUnreachable = errors.New("webserver unreachable")
	// ErrServerExited means the web server process exited before it answered.
	ErrServerExited = errors.New("webserver exited before becoming reachable")
	// ErrCoverageNotFound means an input coverage artifact does not exist.
	ErrCoverageNotFound = errors.New("coverage artifact not found")
	// ErrAmbiguousCoverage means a coverage glob matched more than one file.
	ErrAmbiguousCoverage = errors.New("coverage artifact is ambiguous")
)

// ToolError is an external tool invocation that exited non-zero.
type ToolError struct {
	Command  m.Command
	ExitCode int
}

func (e *ToolError) Error() string {
	return fmt.Sprintf("%s exited with status %d", strings.Join(e.Command.Argv(), " "), e.ExitCode)
}
