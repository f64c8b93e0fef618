package model

// FileClass describes what the instrumenter does with a staged file.
type FileClass int

const (
	// Instrumentable files are rewritten by the instrumenter.
	Instrumentable FileClass = iota
	// Excluded files match an exclusion glob and stay byte-identical.
	Excluded
	// Copied files are not scripts and are left as copied.
	Copied
)

func (c FileClass) String() string {
	switch c {
	case Instrumentable:
		return "instrument"
	case Excluded:
		return "excluded"
	case Copied:
		return "copied"
	default:
		return "unknown"
	}
}

// StagedFile is one planned entry of the instrumented copy.
type StagedFile struct {
	File
	Class FileClass
	// Pattern is the exclusion glob that matched, for Excluded files.
	Pattern string
}

// StagingPlan lists every file of the source tree with its classification.
type StagingPlan struct {
	Root  Path
	Files []StagedFile
}

// Count returns how many planned files have the given class.
func (p StagingPlan) Count(class FileClass) int {
	n := 0

	for _, f := range p.Files {
		if f.Class == class {
			n++
		}
	}

	return n
}

// StagingSummary is the outcome of comparing the staged tree to the plan
// after instrumentation.
type StagingSummary struct {
	Instrumented int
	Excluded     int
	Copied       int
	// Untransformed lists instrumentable files the instrumenter left as is.
	Untransformed []Path
	// Modified lists excluded or copied files that no longer match source.
	Modified []Path
}
