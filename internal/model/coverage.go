package model

import (
	"encoding/json"
	"sort"
)

// Position is a line/column pair in an istanbul location.
type Position struct {
	Line   *int `json:"line"`
	Column *int `json:"column"`
}

// Location is a start/end range in an istanbul location map.
type Location struct {
	Start Position `json:"start"`
	End   Position `json:"end"`
}

// FileCoverage is one entry of an istanbul coverage map. Only the fields
// needed for summaries are decoded; function and branch maps are kept raw.
type FileCoverage struct {
	Path         string                     `json:"path"`
	StatementMap map[string]Location        `json:"statementMap"`
	FnMap        map[string]json.RawMessage `json:"fnMap"`
	BranchMap    map[string]json.RawMessage `json:"branchMap"`
	S            map[string]int             `json:"s"`
	F            map[string]int             `json:"f"`
	B            map[string][]int           `json:"b"`
}

// CoverageMap is the decoded form of a coverage-final.json artifact, keyed
// by source path.
type CoverageMap map[string]FileCoverage

// Files returns the source paths of the map in sorted order.
func (c CoverageMap) Files() []string {
	files := make([]string, 0, len(c))
	for file := range c {
		files = append(files, file)
	}

	sort.Strings(files)

	return files
}

// Union returns the sorted set of source paths present in any of the maps.
func Union(maps ...CoverageMap) []string {
	seen := map[string]struct{}{}

	for _, cm := range maps {
		for file := range cm {
			seen[file] = struct{}{}
		}
	}

	files := make([]string, 0, len(seen))
	for file := range seen {
		files = append(files, file)
	}

	sort.Strings(files)

	return files
}

// Missing returns the sorted source paths from want that c does not contain.
func (c CoverageMap) Missing(want []string) []string {
	var missing []string

	for _, file := range want {
		if _, ok := c[file]; !ok {
			missing = append(missing, file)
		}
	}

	sort.Strings(missing)

	return missing
}

// Counter is a covered/total pair.
type Counter struct {
	Covered int
	Total   int
}

// Add accumulates another counter.
func (c *Counter) Add(o Counter) {
	c.Covered += o.Covered
	c.Total += o.Total
}

// Pct returns the covered percentage. An empty counter is fully covered,
// matching istanbul's text reporter.
func (c Counter) Pct() float64 {
	if c.Total == 0 {
		return 100
	}

	return float64(c.Covered) * 100 / float64(c.Total)
}

// FileSummary holds the four coverage metrics of one file.
type FileSummary struct {
	Path       string
	Statements Counter
	Branches   Counter
	Functions  Counter
	Lines      Counter
}

// CoverageSummary holds per-file summaries in path order and their total.
type CoverageSummary struct {
	Files []FileSummary
	Total FileSummary
}

// Summary computes the coverage summary of the map.
func (c CoverageMap) Summary() CoverageSummary {
	summary := CoverageSummary{Total: FileSummary{Path: "All files"}}

	for _, file := range c.Files() {
		fs := c[file].Summary()
		fs.Path = file

		summary.Files = append(summary.Files, fs)
		summary.Total.Statements.Add(fs.Statements)
		summary.Total.Branches.Add(fs.Branches)
		summary.Total.Functions.Add(fs.Functions)
		summary.Total.Lines.Add(fs.Lines)
	}

	return summary
}

// Summary computes the metrics of a single file. Line coverage follows
// istanbul: a line is covered when any statement starting on it was hit.
func (f FileCoverage) Summary() FileSummary {
	summary := FileSummary{Path: f.Path}

	for _, hits := range f.S {
		summary.Statements.Total++

		if hits > 0 {
			summary.Statements.Covered++
		}
	}

	for _, hits := range f.F {
		summary.Functions.Total++

		if hits > 0 {
			summary.Functions.Covered++
		}
	}

	for _, arms := range f.B {
		for _, hits := range arms {
			summary.Branches.Total++

			if hits > 0 {
				summary.Branches.Covered++
			}
		}
	}

	lines := map[int]bool{}

	for id, hits := range f.S {
		loc, ok := f.StatementMap[id]
		if !ok || loc.Start.Line == nil {
			continue
		}

		line := *loc.Start.Line
		lines[line] = lines[line] || hits > 0
	}

	for _, covered := range lines {
		summary.Lines.Total++

		if covered {
			summary.Lines.Covered++
		}
	}

	return summary
}
