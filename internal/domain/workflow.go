// Package domain implements the e2ecov workflows: staging and running an
// instrumented end-to-end test run, and combining coverage reports.
package domain

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/rehagoal/e2ecov/internal/adapter"
	"github.com/rehagoal/e2ecov/internal/controller"
	m "github.com/rehagoal/e2ecov/internal/model"
)

// ProtractorArgs contains the arguments for an instrument-and-test run.
type ProtractorArgs struct {
	Config m.Config
}

// CombineArgs contains the arguments for combining coverage reports.
type CombineArgs struct {
	Config m.Config
}

// ListArgs contains the arguments for printing the staging plan.
type ListArgs struct {
	Config m.Config
}

// ViewArgs contains the arguments for viewing a coverage artifact.
type ViewArgs struct {
	Artifact m.Path
}

// Workflow is the entry point used by the commands.
type Workflow interface {
	Protractor(ctx context.Context, args ProtractorArgs) (m.RunResult, error)
	Combine(ctx context.Context, args CombineArgs) (m.CombineResult, error)
	List(ctx context.Context, args ListArgs) error
	View(ctx context.Context, args ViewArgs) error
}

type workflow struct {
	adapter.CoverageStore
	controller.UI
	Runner
	Combiner
	Stager
}

// NewWorkflow creates a new Workflow instance with the provided dependencies.
func NewWorkflow(
	fsAdapter adapter.SourceFSAdapter,
	coverageStore adapter.CoverageStore,
	ui controller.UI,
	runner Runner,
	combiner Combiner,
) Workflow {
	return &workflow{
		CoverageStore: coverageStore,
		UI:            ui,
		Runner:        runner,
		Combiner:      combiner,
		Stager:        NewStager(fsAdapter),
	}
}

// Protractor runs the instrument-and-test sequence and displays its result.
// A failing end-to-end suite is not an error; see RunResult.ExitCode.
func (w *workflow) Protractor(ctx context.Context, args ProtractorArgs) (m.RunResult, error) {
	result, err := w.Run(ctx, args.Config)
	if err != nil {
		return m.RunResult{}, err
	}

	if err := w.DisplayRunResult(ctx, result); err != nil {
		slog.Error("Failed to display run result", "error", err)
		return result, fmt.Errorf("display: %w", err)
	}

	return result, nil
}

// Combine merges the coverage reports and displays the combined summary.
func (w *workflow) Combine(ctx context.Context, args CombineArgs) (m.CombineResult, error) {
	result, err := w.Combiner.Combine(ctx, args.Config)
	if err != nil {
		return m.CombineResult{}, err
	}

	if err := w.DisplayCombineResult(ctx, result); err != nil {
		slog.Error("Failed to display combine result", "error", err)
		return result, fmt.Errorf("display: %w", err)
	}

	return result, nil
}

// List displays how each source file would be staged, without side effects.
func (w *workflow) List(ctx context.Context, args ListArgs) error {
	plan, err := w.Plan(ctx, args.Config)
	if err != nil {
		return fmt.Errorf("plan staging: %w", err)
	}

	if err := w.DisplayStagingPlan(ctx, plan); err != nil {
		return fmt.Errorf("display: %w", err)
	}

	return nil
}

// View displays the summary of a coverage artifact.
func (w *workflow) View(ctx context.Context, args ViewArgs) error {
	coverage, err := w.LoadCoverage(ctx, args.Artifact)
	if err != nil {
		slog.Error("Failed to load coverage", "path", args.Artifact, "error", err)
		return err
	}

	if err := w.DisplayCoverageSummary(ctx, string(args.Artifact), coverage.Summary()); err != nil {
		return fmt.Errorf("display: %w", err)
	}

	return nil
}
