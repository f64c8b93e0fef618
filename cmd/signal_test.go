package cmd

import (
	"bytes"
	"io"
	"os"
	"os/exec"
	"runtime"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func skipWithoutSignals(t *testing.T) {
	t.Helper()

	if runtime.GOOS == "windows" {
		t.Skip("no SIGTERM on windows")
	}
}

func TestInstallSignalHandler(t *testing.T) {
	skipWithoutSignals(t)

	exited := make(chan int, 1)
	originalExit := exitProcess
	exitProcess = func(code int) { exited <- code }
	t.Cleanup(func() { exitProcess = originalExit })

	called := make(chan os.Signal, 1)
	out := &bytes.Buffer{}

	installSignalHandler(out, func(sig os.Signal) { called <- sig })

	self, err := os.FindProcess(os.Getpid())
	require.NoError(t, err)
	require.NoError(t, self.Signal(syscall.SIGTERM))

	select {
	case sig := <-called:
		assert.Equal(t, syscall.SIGTERM, sig)
	case <-time.After(5 * time.Second):
		t.Fatal("signal callback not called")
	}

	select {
	case code := <-exited:
		assert.Equal(t, 1, code)
	case <-time.After(5 * time.Second):
		t.Fatal("handler did not exit")
	}

	assert.Contains(t, out.String(), "Caught terminated signal; exiting")
}

func TestTerminateChildren(t *testing.T) {
	skipWithoutSignals(t)

	if _, err := exec.LookPath("sleep"); err != nil {
		t.Skip("sleep not available")
	}

	child := exec.Command("sleep", "30")
	require.NoError(t, child.Start())

	done := make(chan error, 1)
	go func() { done <- child.Wait() }()

	terminateChildren(io.Discard)

	select {
	case err := <-done:
		var exitErr *exec.ExitError
		require.ErrorAs(t, err, &exitErr)
		assert.False(t, exitErr.Success())
	case <-time.After(5 * time.Second):
		_ = child.Process.Kill()
		t.Fatal("child still running after terminateChildren")
	}
}
