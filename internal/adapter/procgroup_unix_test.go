//go:build unix

package adapter

import (
	"slices"

	"github.com/shirou/gopsutil/v3/process"
)

// processAlive reports whether pid exists and is not a zombie awaiting
// reaping.
func processAlive(pid int) bool {
	proc, err := process.NewProcess(int32(pid))
	if err != nil {
		return false
	}

	status, err := proc.Status()
	if err != nil {
		return false
	}

	return !slices.Contains(status, process.Zombie)
}
