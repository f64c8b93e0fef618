package domain

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/rehagoal/e2ecov/internal/adapter"
	m "github.com/rehagoal/e2ecov/internal/model"
	"golang.org/x/sync/errgroup"
)

// Combiner merges the unit-test and end-to-end coverage artifacts into one
// combined report.
type Combiner interface {
	Combine(ctx context.Context, cfg m.Config) (m.CombineResult, error)
}

type combiner struct {
	fsAdapter     adapter.SourceFSAdapter
	toolAdapter   adapter.ToolRunnerAdapter
	coverageStore adapter.CoverageStore
}

// NewCombiner constructs a Combiner backed by the provided adapters.
func NewCombiner(
	fsAdapter adapter.SourceFSAdapter,
	toolAdapter adapter.ToolRunnerAdapter,
	coverageStore adapter.CoverageStore,
) Combiner {
	return &combiner{
		fsAdapter:     fsAdapter,
		toolAdapter:   toolAdapter,
		coverageStore: coverageStore,
	}
}

// Combine locates both inputs, merges them with the external merge tool and
// renders the combined report. Both inputs are located before any tool runs.
func (c *combiner) Combine(ctx context.Context, cfg m.Config) (m.CombineResult, error) {
	if err := cfg.Validate(); err != nil {
		return m.CombineResult{}, fmt.Errorf("invalid config: %w", err)
	}

	layout := cfg.Layout()

	karmaFile, err := c.locateKarma(ctx, layout)
	if err != nil {
		return m.CombineResult{}, err
	}

	protractorFile := layout.ProtractorCoverageFile()

	exists, err := c.fsAdapter.Exists(ctx, protractorFile)
	if err != nil {
		return m.CombineResult{}, fmt.Errorf("stat %s: %w", protractorFile, err)
	}

	if !exists {
		slog.Error("End-to-end coverage missing", "path", protractorFile)
		return m.CombineResult{}, fmt.Errorf("%w: %s", ErrCoverageNotFound, protractorFile)
	}

	slog.Info("Merging coverage...", "karma", karmaFile, "protractor", protractorFile)

	if err := c.merge(ctx, cfg, karmaFile, protractorFile); err != nil {
		return m.CombineResult{}, err
	}

	slog.Info("Generating combined coverage report...")

	if err := runTool(ctx, c.toolAdapter, CombinedReportCommand(cfg)); err != nil {
		return m.CombineResult{}, fmt.Errorf("generate combined report: %w", err)
	}

	result := m.CombineResult{
		KarmaFile:      karmaFile,
		ProtractorFile: protractorFile,
		CombinedFile:   layout.CombinedCoverageFile(),
	}

	if err := c.check(ctx, &result); err != nil {
		return m.CombineResult{}, err
	}

	slog.Info("Done.", "combined", result.CombinedFile)

	return result, nil
}

// locateKarma finds exactly one unit-test artifact.
func (c *combiner) locateKarma(ctx context.Context, layout m.ReportLayout) (m.Path, error) {
	pattern := layout.KarmaGlob()

	matches, err := c.fsAdapter.Glob(ctx, pattern)
	if err != nil {
		return "", err
	}

	switch len(matches) {
	case 0:
		slog.Error("Unit-test coverage missing", "pattern", pattern)
		return "", fmt.Errorf("%w: no match for %s", ErrCoverageNotFound, pattern)
	case 1:
		return matches[0], nil
	default:
		slog.Error("Unit-test coverage ambiguous", "pattern", pattern, "matches", matches)
		return "", fmt.Errorf("%w: %d matches for %s: %v", ErrAmbiguousCoverage, len(matches), pattern, matches)
	}
}

// merge stages both inputs next to each other under the names the merge
// tool picks up, merges them, and removes the staged copies whatever the
// outcome.
func (c *combiner) merge(ctx context.Context, cfg m.Config, karmaFile, protractorFile m.Path) (err error) {
	layout := cfg.Layout()

	staged := []struct{ src, dst m.Path }{
		{karmaFile, layout.StagedKarmaFile()},
		{protractorFile, layout.StagedProtractorFile()},
	}

	defer func() {
		for _, s := range staged {
			rmErr := c.fsAdapter.Remove(ctx, s.dst)
			if rmErr == nil {
				continue
			}

			slog.Error("Failed to remove staged coverage", "path", s.dst, "error", rmErr)

			if err == nil {
				err = fmt.Errorf("remove %s: %w", s.dst, rmErr)
			}
		}
	}()

	for i, s := range staged {
		if err := c.fsAdapter.CopyFile(ctx, s.src, s.dst); err != nil {
			slog.Error("Failed to stage coverage", "src", s.src, "dst", s.dst, "error", err)
			// Only the copies that were made need removing.
			staged = staged[:i]

			return fmt.Errorf("stage %s: %w", s.src, err)
		}
	}

	if err := c.fsAdapter.MkdirAll(ctx, layout.CombinedDir()); err != nil {
		return fmt.Errorf("create %s: %w", layout.CombinedDir(), err)
	}

	if err := runTool(ctx, c.toolAdapter, MergeCommand(cfg)); err != nil {
		return fmt.Errorf("merge coverage: %w", err)
	}

	return nil
}

// check loads inputs and output concurrently and records which input files
// the combined artifact lacks.
func (c *combiner) check(ctx context.Context, result *m.CombineResult) error {
	paths := []m.Path{result.KarmaFile, result.ProtractorFile, result.CombinedFile}
	maps := make([]m.CoverageMap, len(paths))

	group, groupCtx := errgroup.WithContext(ctx)

	for i, path := range paths {
		group.Go(func() error {
			coverage, err := c.coverageStore.LoadCoverage(groupCtx, path)
			if err != nil {
				return err
			}

			maps[i] = coverage

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		slog.Error("Failed to load coverage", "error", err)
		return fmt.Errorf("load coverage: %w", err)
	}

	combined := maps[2]
	result.MissingFiles = combined.Missing(m.Union(maps[0], maps[1]))
	result.Coverage = combined.Summary()

	for _, file := range result.MissingFiles {
		slog.Warn("Combined coverage lacks input file", "file", file)
	}

	return nil
}
