package domain

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"sync"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rehagoal/e2ecov/internal/adapter"
	m "github.com/rehagoal/e2ecov/internal/model"
	"golang.org/x/sync/errgroup"
)

// Stager plans the instrumented copy of the source tree and checks the
// instrumenter's output against that plan.
type Stager interface {
	// Plan classifies every file of the source tree and records its hash.
	Plan(ctx context.Context, cfg m.Config) (m.StagingPlan, error)
	// Verify compares the staged tree with the plan.
	Verify(ctx context.Context, plan m.StagingPlan, stagedRoot m.Path) (m.StagingSummary, error)
}

type stager struct {
	fsAdapter adapter.SourceFSAdapter
	workers   int
}

// NewStager constructs a Stager backed by the provided filesystem adapter.
func NewStager(fsAdapter adapter.SourceFSAdapter) Stager {
	return &stager{fsAdapter: fsAdapter, workers: runtime.NumCPU()}
}

func (s *stager) Plan(ctx context.Context, cfg m.Config) (m.StagingPlan, error) {
	for _, pattern := range cfg.Instrument.Exclude {
		if !doublestar.ValidatePattern(pattern) {
			return m.StagingPlan{}, fmt.Errorf("invalid exclusion glob %q", pattern)
		}
	}

	root := cfg.Paths.WWW
	plan := m.StagingPlan{Root: root}

	err := s.fsAdapter.Walk(ctx, root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		if info.IsDir() {
			return nil
		}

		rel, err := s.fsAdapter.RelPath(ctx, root, m.Path(path))
		if err != nil {
			return err
		}

		file := m.StagedFile{File: m.File{Path: m.Path(path), Rel: rel, Size: info.Size()}}
		file.Class, file.Pattern = classify(cfg.Instrument, path)
		plan.Files = append(plan.Files, file)

		return nil
	})
	if err != nil {
		slog.Error("Failed to walk source tree", "root", root, "error", err)
		return m.StagingPlan{}, fmt.Errorf("walk %s: %w", root, err)
	}

	sort.Slice(plan.Files, func(i, j int) bool {
		return plan.Files[i].Rel < plan.Files[j].Rel
	})

	if err := s.hashAll(ctx, plan.Files, func(f m.StagedFile) m.Path { return f.Path }, func(i int, hash string) {
		plan.Files[i].Hash = hash
	}); err != nil {
		return m.StagingPlan{}, err
	}

	return plan, nil
}

// classify matches path the way the instrumenter does: exclusion globs are
// relative to the working directory and use forward slashes.
func classify(cfg m.InstrumentConfig, path string) (m.FileClass, string) {
	slashed := filepath.ToSlash(filepath.Clean(path))

	for _, pattern := range cfg.Exclude {
		if ok, _ := doublestar.Match(strings.TrimPrefix(pattern, "./"), slashed); ok {
			return m.Excluded, pattern
		}
	}

	ext := filepath.Ext(path)
	for _, candidate := range cfg.Extensions {
		if strings.EqualFold(ext, candidate) {
			return m.Instrumentable, ""
		}
	}

	return m.Copied, ""
}

func (s *stager) Verify(ctx context.Context, plan m.StagingPlan, stagedRoot m.Path) (m.StagingSummary, error) {
	staged := make([]string, len(plan.Files))

	err := s.hashAll(ctx, plan.Files, func(f m.StagedFile) m.Path {
		return stagedRoot.Join(string(f.Rel))
	}, func(i int, hash string) {
		staged[i] = hash
	})
	if err != nil {
		return m.StagingSummary{}, fmt.Errorf("staged copy of %s is incomplete: %w", plan.Root, err)
	}

	var summary m.StagingSummary

	for i, file := range plan.Files {
		changed := staged[i] != file.Hash

		switch file.Class {
		case m.Instrumentable:
			summary.Instrumented++

			if !changed {
				summary.Untransformed = append(summary.Untransformed, file.Path)
			}
		case m.Excluded:
			summary.Excluded++

			if changed {
				summary.Modified = append(summary.Modified, file.Path)
			}
		case m.Copied:
			summary.Copied++

			if changed {
				summary.Modified = append(summary.Modified, file.Path)
			}
		}
	}

	for _, path := range summary.Untransformed {
		slog.Warn("Instrumenter left file unchanged", "path", path)
	}

	for _, path := range summary.Modified {
		slog.Warn("Non-instrumented file differs from source", "path", path)
	}

	return summary, nil
}

// hashAll hashes the file at locate(f) for every planned file using a
// bounded worker pool, handing each result to store.
func (s *stager) hashAll(
	ctx context.Context,
	files []m.StagedFile,
	locate func(m.StagedFile) m.Path,
	store func(int, string),
) error {
	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(max(s.workers, 1))

	var mu sync.Mutex

	for i, file := range files {
		group.Go(func() error {
			path := locate(file)

			hash, err := s.fsAdapter.HashFile(groupCtx, path)
			if err != nil {
				return fmt.Errorf("hash %s: %w", path, err)
			}

			mu.Lock()
			store(i, hash)
			mu.Unlock()

			return nil
		})
	}

	return group.Wait()
}
