package domain

import (
	"context"
	"log/slog"
	"time"

	"code.cloudfoundry.org/clock"
	"github.com/rehagoal/e2ecov/internal/adapter"
)

// ReadinessArgs configures WaitForServer.
type ReadinessArgs struct {
	URL      string
	Timeout  time.Duration
	Interval time.Duration
	// Exited, when non-nil, aborts the wait once closed.
	Exited <-chan struct{}
}

// WaitForServer probes args.URL every args.Interval until it answers or
// args.Timeout has elapsed. It returns true once the server answered, false
// on timeout, and an error if ctx was cancelled or the server exited.
func WaitForServer(ctx context.Context, clk clock.Clock, probe adapter.HTTPProbeAdapter, args ReadinessArgs) (bool, error) {
	start := clk.Now()

	for {
		err := probe.Probe(ctx, args.URL)
		if err == nil {
			return true, nil
		}

		slog.Debug("Webserver not ready", "url", args.URL, "error", err)

		if clk.Since(start) >= args.Timeout {
			return false, nil
		}

		timer := clk.NewTimer(args.Interval)

		select {
		case <-ctx.Done():
			timer.Stop()
			return false, ctx.Err()
		case <-args.Exited:
			timer.Stop()
			return false, ErrServerExited
		case <-timer.C():
		}
	}
}
