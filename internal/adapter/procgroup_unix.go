//go:build unix

package adapter

import (
	"errors"
	"os"
	"os/exec"
	"syscall"

	"golang.org/x/sys/unix"
)

const supportsGroupKill = true

// setProcessGroup starts the child in a new session so that it leads its own
// process group, detached from the terminal's foreground group.
func setProcessGroup(cmd *exec.Cmd) {
	cmd.SysProcAttr = &syscall.SysProcAttr{Setsid: true}
}

// killProcess sends SIGKILL to the whole group led by proc. The group is
// signalled even after the leader exited so detached grandchildren die too.
func killProcess(proc *os.Process, _ <-chan struct{}) error {
	err := unix.Kill(-proc.Pid, unix.SIGKILL)
	if errors.Is(err, unix.ESRCH) {
		return nil
	}

	return err
}
