package model

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func line(n int) *int { return &n }

func stmt(startLine int) Location {
	return Location{Start: Position{Line: line(startLine), Column: line(0)}, End: Position{Line: line(startLine), Column: line(10)}}
}

func TestCoverageMap_Summary(t *testing.T) {
	coverage := CoverageMap{
		"www/js/b.js": {
			Path: "www/js/b.js",
			StatementMap: map[string]Location{
				"0": stmt(1),
				"1": stmt(1),
				"2": stmt(3),
				"3": stmt(4),
			},
			S: map[string]int{"0": 0, "1": 2, "2": 0, "3": 1},
			F: map[string]int{"0": 1, "1": 0},
			B: map[string][]int{"0": {1, 0}, "1": {0, 0, 3}},
		},
		"www/js/a.js": {
			Path:         "www/js/a.js",
			StatementMap: map[string]Location{"0": stmt(1)},
			S:            map[string]int{"0": 0},
			F:            map[string]int{},
			B:            map[string][]int{},
		},
	}

	want := CoverageSummary{
		Files: []FileSummary{
			{
				Path:       "www/js/a.js",
				Statements: Counter{Covered: 0, Total: 1},
				Functions:  Counter{},
				Branches:   Counter{},
				Lines:      Counter{Covered: 0, Total: 1},
			},
			{
				Path:       "www/js/b.js",
				Statements: Counter{Covered: 2, Total: 4},
				Functions:  Counter{Covered: 1, Total: 2},
				Branches:   Counter{Covered: 2, Total: 5},
				// Line 1 is covered through its second statement.
				Lines: Counter{Covered: 2, Total: 3},
			},
		},
		Total: FileSummary{
			Path:       "All files",
			Statements: Counter{Covered: 2, Total: 5},
			Functions:  Counter{Covered: 1, Total: 2},
			Branches:   Counter{Covered: 2, Total: 5},
			Lines:      Counter{Covered: 2, Total: 4},
		},
	}

	if diff := cmp.Diff(want, coverage.Summary()); diff != "" {
		t.Errorf("Summary() mismatch (-want +got):\n%s", diff)
	}
}

func TestCoverageMap_Summary_Empty(t *testing.T) {
	summary := CoverageMap{}.Summary()

	assert.Empty(t, summary.Files)
	assert.Equal(t, "All files", summary.Total.Path)
	assert.InDelta(t, 100.0, summary.Total.Statements.Pct(), 0.001)
}

func TestCounter_Pct(t *testing.T) {
	tests := []struct {
		counter Counter
		want    float64
	}{
		{Counter{}, 100},
		{Counter{Covered: 0, Total: 4}, 0},
		{Counter{Covered: 1, Total: 4}, 25},
		{Counter{Covered: 2, Total: 3}, 200.0 / 3},
	}

	for _, tt := range tests {
		assert.InDelta(t, tt.want, tt.counter.Pct(), 0.0001, "%+v", tt.counter)
	}
}

func TestUnionAndMissing(t *testing.T) {
	karma := CoverageMap{"www/js/a.js": {}, "www/js/b.js": {}}
	protractor := CoverageMap{"www/js/b.js": {}, "www/js/c.js": {}}
	combined := CoverageMap{"www/js/a.js": {}, "www/js/b.js": {}}

	union := Union(karma, protractor)

	if diff := cmp.Diff([]string{"www/js/a.js", "www/js/b.js", "www/js/c.js"}, union); diff != "" {
		t.Errorf("Union() mismatch (-want +got):\n%s", diff)
	}

	assert.Equal(t, []string{"www/js/c.js"}, combined.Missing(union))
	assert.Empty(t, CoverageMap{"www/js/a.js": {}, "www/js/b.js": {}, "www/js/c.js": {}}.Missing(union))
	assert.Empty(t, Union())
}

func TestCoverageMap_Files_Sorted(t *testing.T) {
	coverage := CoverageMap{"z.js": {}, "a.js": {}, "m.js": {}}

	assert.Equal(t, []string{"a.js", "m.js", "z.js"}, coverage.Files())
}
