package cmd

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/shirou/gopsutil/v3/process"
)

var selfName = filepath.Base(os.Args[0])

// exitProcess ends the process once a signal has been handled.
var exitProcess = os.Exit

// installSignalHandler installs a handler for SIGINT and SIGTERM that calls
// callback, terminates any remaining child processes and exits with status 1.
// out is the output stream to write messages to (typically stderr).
func installSignalHandler(out io.Writer, callback func(sig os.Signal)) {
	ch := make(chan os.Signal, 1)

	go func() {
		sig := <-ch
		fmt.Fprintf(out, "\n%s: Caught %v signal; exiting\n", selfName, sig)
		callback(sig)
		terminateChildren(out)
		exitProcess(1)
	}()

	signal.Notify(ch, os.Interrupt, syscall.SIGTERM)
}

// terminateChildren sends SIGTERM to direct children still running, such as
// a tool that was in the foreground when the signal arrived.
func terminateChildren(out io.Writer) {
	procs, err := process.Processes()
	if err != nil {
		fmt.Fprintf(out, "Failed to terminate subprocesses: %v\n", err)
		return
	}

	selfPid := int32(os.Getpid())

	for _, proc := range procs {
		ppid, err := proc.Ppid()
		if err != nil {
			continue
		}

		if ppid == selfPid {
			_ = proc.Terminate()
		}
	}
}
