//go:build !unix

package adapter

import (
	"errors"
	"os"
	"os/exec"
)

const supportsGroupKill = false

func setProcessGroup(_ *exec.Cmd) {}

// killProcess kills only the direct child; there is no process group to
// signal on this platform.
func killProcess(proc *os.Process, done <-chan struct{}) error {
	select {
	case <-done:
		return nil
	default:
	}

	err := proc.Kill()
	if errors.Is(err, os.ErrProcessDone) {
		return nil
	}

	return err
}
