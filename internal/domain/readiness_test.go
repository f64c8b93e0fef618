package domain_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"code.cloudfoundry.org/clock"
	"code.cloudfoundry.org/clock/fakeclock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/rehagoal/e2ecov/internal/adapter"
	adaptermocks "github.com/rehagoal/e2ecov/internal/adapter/mocks"
	"github.com/rehagoal/e2ecov/internal/domain"
)

const probeURL = "http://127.0.0.1:8000/"

var errRefused = errors.New("connect: connection refused")

type readiness struct {
	ready bool
	err   error
}

func waitAsync(ctx context.Context, clk clock.Clock, probe adapter.HTTPProbeAdapter, args domain.ReadinessArgs) <-chan readiness {
	out := make(chan readiness, 1)

	go func() {
		ready, err := domain.WaitForServer(ctx, clk, probe, args)
		out <- readiness{ready: ready, err: err}
	}()

	return out
}

func TestWaitForServer_ReadyImmediately(t *testing.T) {
	probe := adaptermocks.NewMockHTTPProbeAdapter(t)
	probe.EXPECT().Probe(mock.Anything, probeURL).Return(nil).Once()

	ready, err := domain.WaitForServer(context.Background(), fakeclock.NewFakeClock(time.Unix(0, 0)), probe, domain.ReadinessArgs{
		URL:      probeURL,
		Timeout:  10 * time.Second,
		Interval: 500 * time.Millisecond,
	})

	require.NoError(t, err)
	assert.True(t, ready)
}

func TestWaitForServer_PollsUntilReady(t *testing.T) {
	clk := fakeclock.NewFakeClock(time.Unix(0, 0))

	probe := adaptermocks.NewMockHTTPProbeAdapter(t)
	probe.EXPECT().Probe(mock.Anything, probeURL).Return(errRefused).Times(2)
	probe.EXPECT().Probe(mock.Anything, probeURL).Return(nil).Once()

	result := waitAsync(context.Background(), clk, probe, domain.ReadinessArgs{
		URL:      probeURL,
		Timeout:  10 * time.Second,
		Interval: 500 * time.Millisecond,
	})

	clk.WaitForWatcherAndIncrement(500 * time.Millisecond)
	clk.WaitForWatcherAndIncrement(500 * time.Millisecond)

	select {
	case r := <-result:
		require.NoError(t, r.err)
		assert.True(t, r.ready)
	case <-time.After(5 * time.Second):
		t.Fatal("WaitForServer did not return")
	}
}

func TestWaitForServer_GivesUpAfterTimeout(t *testing.T) {
	clk := fakeclock.NewFakeClock(time.Unix(0, 0))

	probe := adaptermocks.NewMockHTTPProbeAdapter(t)
	probe.EXPECT().Probe(mock.Anything, probeURL).Return(errRefused)

	result := waitAsync(context.Background(), clk, probe, domain.ReadinessArgs{
		URL:      probeURL,
		Timeout:  10 * time.Second,
		Interval: 500 * time.Millisecond,
	})

	// 20 polls at 500ms reach the 10s deadline.
	for range 20 {
		clk.WaitForWatcherAndIncrement(500 * time.Millisecond)
	}

	select {
	case r := <-result:
		require.NoError(t, r.err)
		assert.False(t, r.ready)
	case <-time.After(5 * time.Second):
		t.Fatal("WaitForServer did not return")
	}

	probe.AssertNumberOfCalls(t, "Probe", 21)
}

func TestWaitForServer_ServerExited(t *testing.T) {
	exited := make(chan struct{})
	close(exited)

	probe := adaptermocks.NewMockHTTPProbeAdapter(t)
	probe.EXPECT().Probe(mock.Anything, probeURL).Return(errRefused).Once()

	ready, err := domain.WaitForServer(context.Background(), fakeclock.NewFakeClock(time.Unix(0, 0)), probe, domain.ReadinessArgs{
		URL:      probeURL,
		Timeout:  10 * time.Second,
		Interval: 500 * time.Millisecond,
		Exited:   exited,
	})

	require.ErrorIs(t, err, domain.ErrServerExited)
	assert.False(t, ready)
}

func TestWaitForServer_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	probe := adaptermocks.NewMockHTTPProbeAdapter(t)
	probe.EXPECT().Probe(mock.Anything, probeURL).Return(errRefused).Once()

	ready, err := domain.WaitForServer(ctx, fakeclock.NewFakeClock(time.Unix(0, 0)), probe, domain.ReadinessArgs{
		URL:      probeURL,
		Timeout:  10 * time.Second,
		Interval: 500 * time.Millisecond,
	})

	require.ErrorIs(t, err, context.Canceled)
	assert.False(t, ready)
}

func TestWaitForServer_RealServer(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("<html></html>"))
	}))
	defer server.Close()

	ready, err := domain.WaitForServer(context.Background(), clock.NewClock(), adapter.NewLocalHTTPProbeAdapter(time.Second), domain.ReadinessArgs{
		URL:      server.URL + "/",
		Timeout:  time.Second,
		Interval: 10 * time.Millisecond,
	})

	require.NoError(t, err)
	assert.True(t, ready)
}

func TestWaitForServer_NothingListening(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL + "/"
	server.Close()

	start := time.Now()

	ready, err := domain.WaitForServer(context.Background(), clock.NewClock(), adapter.NewLocalHTTPProbeAdapter(100*time.Millisecond), domain.ReadinessArgs{
		URL:      url,
		Timeout:  200 * time.Millisecond,
		Interval: 20 * time.Millisecond,
	})

	require.NoError(t, err)
	assert.False(t, ready)
	assert.GreaterOrEqual(t, time.Since(start), 200*time.Millisecond)
}
