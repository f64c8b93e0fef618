package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	m "github.com/rehagoal/e2ecov/internal/model"
)

// CoverageStore reads istanbul coverage artifacts.
type CoverageStore interface {
	LoadCoverage(ctx context.Context, path m.Path) (m.CoverageMap, error)
}

// LocalCoverageStore reads coverage artifacts from disk.
type LocalCoverageStore struct{}

// NewCoverageStore constructs a LocalCoverageStore.
func NewCoverageStore() *LocalCoverageStore {
	return &LocalCoverageStore{}
}

// LoadCoverage decodes the artifact at path. An empty file is an error: a
// report step that produced nothing did not succeed.
func (s *LocalCoverageStore) LoadCoverage(ctx context.Context, path m.Path) (m.CoverageMap, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(string(path))
	if err != nil {
		return nil, fmt.Errorf("read coverage %s: %w", path, err)
	}

	if len(data) == 0 {
		return nil, fmt.Errorf("coverage artifact %s is empty", path)
	}

	var coverage m.CoverageMap
	if err := json.Unmarshal(data, &coverage); err != nil {
		return nil, fmt.Errorf("decode coverage %s: %w", path, err)
	}

	if coverage == nil {
		coverage = m.CoverageMap{}
	}

	return coverage, nil
}
