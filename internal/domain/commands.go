package domain

import (
	"strconv"

	m "github.com/rehagoal/e2ecov/internal/model"
)

// InstrumentCommand instruments the source tree into the staged copy,
// leaving files that match an exclusion glob untouched.
func InstrumentCommand(cfg m.Config) m.Command {
	args := []string{"instrument", "--all"}
	for _, exclude := range cfg.Instrument.Exclude {
		args = append(args, "-x", exclude)
	}

	args = append(args, string(cfg.Paths.WWW), string(cfg.Paths.Instrumented))

	return m.Command{Name: cfg.Tools.NYC, Args: args}
}

// ServerCommand serves the staged copy through the package's start script.
func ServerCommand(cfg m.Config) m.Command {
	return m.Command{
		Name: cfg.Tools.NPM,
		Args: []string{
			"run", cfg.Scripts.Server, "--",
			"--hostname", cfg.Server.Host,
			"--port", strconv.Itoa(cfg.Server.Port),
			"--directory", string(cfg.Paths.Instrumented),
		},
	}
}

// E2ECommand runs the end-to-end suite.
func E2ECommand(cfg m.Config) m.Command {
	return m.Command{Name: cfg.Tools.NPM, Args: []string{"run", cfg.Scripts.E2E}}
}

// ProtractorReportCommand turns the raw per-run coverage into the lcov and
// JSON end-to-end report.
func ProtractorReportCommand(cfg m.Config) m.Command {
	return m.Command{
		Name: cfg.Tools.NYC,
		Args: []string{
			"report",
			"-t", string(cfg.Paths.Coverage),
			"--reporter=lcov",
			"--reporter=json",
			"--report-dir", string(cfg.Layout().ProtractorDir()),
		},
	}
}

// MergeCommand merges every coverage JSON at the top of the report root into
// the combined artifact.
func MergeCommand(cfg m.Config) m.Command {
	layout := cfg.Layout()

	return m.Command{
		Name: cfg.Tools.NYC,
		Args: []string{"merge", string(layout.Root), string(layout.CombinedCoverageFile())},
	}
}

// CombinedReportCommand renders the combined artifact.
func CombinedReportCommand(cfg m.Config) m.Command {
	dir := string(cfg.Layout().CombinedDir())

	return m.Command{
		Name: cfg.Tools.NYC,
		Args: []string{
			"report",
			"-t", dir,
			"--reporter=lcov",
			"--reporter=text",
			"--reporter=text-summary",
			"--report-dir", dir,
		},
	}
}
