package model

// Command is an external tool invocation: an argv and a display name.
type Command struct {
	Name string
	Args []string
}

// Argv returns the executable followed by its arguments.
func (c Command) Argv() []string {
	return append([]string{c.Name}, c.Args...)
}

// RunResult is the outcome of an instrument-and-test run.
type RunResult struct {
	// ExitCode is the end-to-end test command's exit code.
	ExitCode int
	Staging  StagingSummary
	Coverage CoverageSummary
}

// CombineResult is the outcome of combining unit and end-to-end coverage.
type CombineResult struct {
	KarmaFile      Path
	ProtractorFile Path
	CombinedFile   Path
	Coverage       CoverageSummary
	// MissingFiles lists input entries absent from the combined artifact.
	MissingFiles []string
}
