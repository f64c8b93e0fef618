package cmd

import (
	"errors"
	"fmt"
)

// ExitCodeError carries a non-zero status the process must exit with, such
// as the status of a failed end-to-end suite whose report was still written.
type ExitCodeError struct {
	Code int
}

func (e *ExitCodeError) Error() string {
	return fmt.Sprintf("exit status %d", e.Code)
}

// exitCode maps a command error to the process exit status.
func exitCode(err error) int {
	if err == nil {
		return 0
	}

	var codeErr *ExitCodeError
	if errors.As(err, &codeErr) && codeErr.Code != 0 {
		return codeErr.Code
	}

	return 1
}
