package domain

import (
	"context"
	"fmt"
	"log/slog"

	"code.cloudfoundry.org/clock"
	"github.com/rehagoal/e2ecov/internal/adapter"
	m "github.com/rehagoal/e2ecov/internal/model"
)

// Runner produces end-to-end coverage: it stages an instrumented copy of
// the application, serves it, runs the end-to-end suite against it and
// writes the coverage report.
type Runner interface {
	Run(ctx context.Context, cfg m.Config) (m.RunResult, error)
}

type runner struct {
	fsAdapter      adapter.SourceFSAdapter
	toolAdapter    adapter.ToolRunnerAdapter
	processAdapter adapter.ProcessAdapter
	probeAdapter   adapter.HTTPProbeAdapter
	coverageStore  adapter.CoverageStore
	stager         Stager
	processes      *ProcessSet
	clk            clock.Clock
}

// NewRunner constructs a Runner. Background processes it starts are
// registered in processes, which the caller may also kill on a signal.
func NewRunner(
	fsAdapter adapter.SourceFSAdapter,
	toolAdapter adapter.ToolRunnerAdapter,
	processAdapter adapter.ProcessAdapter,
	probeAdapter adapter.HTTPProbeAdapter,
	coverageStore adapter.CoverageStore,
	processes *ProcessSet,
	clk clock.Clock,
) Runner {
	return &runner{
		fsAdapter:      fsAdapter,
		toolAdapter:    toolAdapter,
		processAdapter: processAdapter,
		probeAdapter:   probeAdapter,
		coverageStore:  coverageStore,
		stager:         NewStager(fsAdapter),
		processes:      processes,
		clk:            clk,
	}
}

// Run executes the orchestration sequence. The end-to-end suite's exit
// status is returned in RunResult.ExitCode; a failing suite still yields a
// report. Every other failure aborts with an error. Background processes are
// killed before Run returns, on every path.
func (r *runner) Run(ctx context.Context, cfg m.Config) (m.RunResult, error) {
	if err := cfg.Validate(); err != nil {
		return m.RunResult{}, fmt.Errorf("invalid config: %w", err)
	}

	defer r.cleanup()

	if err := r.resetWorkspace(ctx, cfg); err != nil {
		return m.RunResult{}, err
	}

	staging, err := r.stage(ctx, cfg)
	if err != nil {
		return m.RunResult{}, err
	}

	if err := r.startWebserver(ctx, cfg); err != nil {
		return m.RunResult{}, err
	}

	slog.Info("Running protractor...")

	exitCode, err := r.toolAdapter.Run(ctx, E2ECommand(cfg))
	if err != nil {
		slog.Error("Failed to run end-to-end tests", "error", err)
		return m.RunResult{}, fmt.Errorf("run end-to-end tests: %w", err)
	}

	if exitCode != 0 {
		slog.Warn("End-to-end tests failed", "exitCode", exitCode)
	}

	slog.Info("Generating coverage report...")

	if err := r.runTool(ctx, ProtractorReportCommand(cfg)); err != nil {
		return m.RunResult{}, fmt.Errorf("generate coverage report: %w", err)
	}

	coverage, err := r.coverageStore.LoadCoverage(ctx, cfg.Layout().ProtractorCoverageFile())
	if err != nil {
		slog.Error("Failed to load coverage report", "error", err)
		return m.RunResult{}, fmt.Errorf("load coverage report: %w", err)
	}

	slog.Info("Done.")

	return m.RunResult{
		ExitCode: exitCode,
		Staging:  staging,
		Coverage: coverage.Summary(),
	}, nil
}

// resetWorkspace removes output left by a previous run.
func (r *runner) resetWorkspace(ctx context.Context, cfg m.Config) error {
	for _, dir := range []struct {
		label string
		path  m.Path
	}{
		{"coverage", cfg.Paths.Coverage},
		{"instrumented", cfg.Paths.Instrumented},
	} {
		exists, err := r.fsAdapter.Exists(ctx, dir.path)
		if err != nil {
			return fmt.Errorf("stat %s directory: %w", dir.label, err)
		}

		if !exists {
			continue
		}

		slog.Info(fmt.Sprintf("Deleting %s directory...", dir.label), "path", dir.path)

		if err := r.fsAdapter.RemoveAll(ctx, dir.path); err != nil {
			slog.Error("Failed to delete directory", "path", dir.path, "error", err)
			return fmt.Errorf("delete %s directory: %w", dir.label, err)
		}
	}

	return nil
}

// stage copies the source tree and instruments the copy in place.
func (r *runner) stage(ctx context.Context, cfg m.Config) (m.StagingSummary, error) {
	plan, err := r.stager.Plan(ctx, cfg)
	if err != nil {
		return m.StagingSummary{}, fmt.Errorf("plan staging: %w", err)
	}

	slog.Info("Copying files to instrumented directory...", "files", len(plan.Files))

	if err := r.fsAdapter.CopyDir(ctx, cfg.Paths.WWW, cfg.Paths.Instrumented); err != nil {
		slog.Error("Failed to copy source tree", "src", cfg.Paths.WWW, "dst", cfg.Paths.Instrumented, "error", err)
		return m.StagingSummary{}, fmt.Errorf("copy source tree: %w", err)
	}

	slog.Info("Instrumenting files...",
		"instrumentable", plan.Count(m.Instrumentable),
		"excluded", plan.Count(m.Excluded))

	if err := r.runTool(ctx, InstrumentCommand(cfg)); err != nil {
		return m.StagingSummary{}, fmt.Errorf("instrument: %w", err)
	}

	summary, err := r.stager.Verify(ctx, plan, cfg.Paths.Instrumented)
	if err != nil {
		slog.Error("Failed to verify instrumented copy", "error", err)
		return m.StagingSummary{}, err
	}

	return summary, nil
}

// startWebserver launches the server, registers it for cleanup and waits
// until it answers.
func (r *runner) startWebserver(ctx context.Context, cfg m.Config) error {
	slog.Info("Starting webserver...", "addr", cfg.ServerAddr())

	proc, err := r.processAdapter.Start(ctx, ServerCommand(cfg))
	if err != nil {
		slog.Error("Failed to start webserver", "error", err)
		return fmt.Errorf("start webserver: %w", err)
	}

	r.processes.Register(proc)

	if !r.processAdapter.SupportsGroupKill() {
		slog.Warn("Process groups unsupported; only the webserver's direct process will be killed", "pid", proc.Pid())
	}

	ready, err := WaitForServer(ctx, r.clk, r.probeAdapter, ReadinessArgs{
		URL:      cfg.ServerURL(),
		Timeout:  cfg.Server.ReadyTimeout,
		Interval: cfg.Server.PollInterval,
		Exited:   proc.Done(),
	})
	if err != nil {
		slog.Error("Webserver did not start", "url", cfg.ServerURL(), "error", err)
		return fmt.Errorf("wait for webserver: %w", err)
	}

	if !ready {
		slog.Error("Webserver unreachable", "url", cfg.ServerURL(), "timeout", cfg.Server.ReadyTimeout)
		return fmt.Errorf("%w: %s after %s", ErrServerUnreachable, cfg.ServerURL(), cfg.Server.ReadyTimeout)
	}

	slog.Info("Webserver started.")

	return nil
}

// runTool runs a tool whose failure is fatal.
func (r *runner) runTool(ctx context.Context, cmd m.Command) error {
	return runTool(ctx, r.toolAdapter, cmd)
}

func runTool(ctx context.Context, toolAdapter adapter.ToolRunnerAdapter, cmd m.Command) error {
	slog.Debug("Running tool", "argv", cmd.Argv())

	exitCode, err := toolAdapter.Run(ctx, cmd)
	if err != nil {
		slog.Error("Failed to run tool", "tool", cmd.Name, "error", err)
		return err
	}

	if exitCode != 0 {
		toolErr := &ToolError{Command: cmd, ExitCode: exitCode}
		slog.Error("Tool failed", "error", toolErr)

		return toolErr
	}

	return nil
}

// cleanup kills the background processes, logging errors if cleanup fails.
func (r *runner) cleanup() {
	if err := r.processes.KillAll(); err != nil {
		slog.Error("Failed to kill background processes", "error", err)
	}
}
