package model

import (
	"errors"
	"fmt"
	"net"
	"strconv"
	"time"
)

// Fixed file names of the coverage report layout. The merge tool and the
// unit-test runner agree on these, so they are not configurable.
const (
	CoverageFileName         = "coverage-final.json"
	CombinedCoverageFileName = "coverage-combined.json"
	KarmaStagedFileName      = "coverage-karma.json"
	ProtractorStagedFileName = "coverage-protractor.json"

	karmaDirName      = "karma"
	protractorDirName = "protractor"
	combinedDirName   = "combined"
)

// Config is the complete set of paths, endpoints and tool names used by the
// runner and the combiner.
type Config struct {
	Paths      PathsConfig      `mapstructure:"paths"`
	Server     ServerConfig     `mapstructure:"server"`
	Instrument InstrumentConfig `mapstructure:"instrument"`
	Tools      ToolsConfig      `mapstructure:"tools"`
	Scripts    ScriptsConfig    `mapstructure:"scripts"`
}

// PathsConfig locates the source tree and every working/output directory.
type PathsConfig struct {
	WWW          Path `mapstructure:"www"`
	Instrumented Path `mapstructure:"instrumented"`
	Coverage     Path `mapstructure:"coverage"`
	Reports      Path `mapstructure:"reports"`
}

// ServerConfig describes the static web server serving the staged tree.
type ServerConfig struct {
	Host         string        `mapstructure:"host"`
	Port         int           `mapstructure:"port"`
	ReadyTimeout time.Duration `mapstructure:"ready_timeout"`
	PollInterval time.Duration `mapstructure:"poll_interval"`
}

// InstrumentConfig controls which staged files the instrumenter rewrites.
type InstrumentConfig struct {
	Exclude    []string `mapstructure:"exclude"`
	Extensions []string `mapstructure:"extensions"`
}

// ToolsConfig names the external executables.
type ToolsConfig struct {
	NYC string `mapstructure:"nyc"`
	NPM string `mapstructure:"npm"`
}

// ScriptsConfig names the package scripts run through the package runner.
type ScriptsConfig struct {
	Server string `mapstructure:"server"`
	E2E    string `mapstructure:"e2e"`
}

// DefaultConfig returns the layout the build pipeline was written against.
func DefaultConfig() Config {
	return Config{
		Paths: PathsConfig{
			WWW:          "www/",
			Instrumented: "tmp/",
			Coverage:     "coverage/",
			Reports:      "reports/coverage/",
		},
		Server: ServerConfig{
			Host:         "127.0.0.1",
			Port:         8000,
			ReadyTimeout: 10 * time.Second,
			PollInterval: 500 * time.Millisecond,
		},
		Instrument: InstrumentConfig{
			Exclude: []string{
				"www/bower_components/**",
				"www/components/tts/mespeak/mespeak.{full,min}.js",
			},
			Extensions: []string{".js", ".cjs", ".mjs", ".ts", ".tsx", ".jsx"},
		},
		Tools: ToolsConfig{
			NYC: "nyc",
			NPM: "npm",
		},
		Scripts: ScriptsConfig{
			Server: "_start",
			E2E:    "protractor",
		},
	}
}

// Validate reports the first setting that cannot work.
func (c Config) Validate() error {
	var errs []error

	for name, p := range map[string]Path{
		"paths.www":          c.Paths.WWW,
		"paths.instrumented": c.Paths.Instrumented,
		"paths.coverage":     c.Paths.Coverage,
		"paths.reports":      c.Paths.Reports,
	} {
		if p == "" {
			errs = append(errs, fmt.Errorf("%s must not be empty", name))
		}
	}

	if c.Server.Host == "" {
		errs = append(errs, errors.New("server.host must not be empty"))
	}

	if c.Server.Port < 1 || c.Server.Port > 65535 {
		errs = append(errs, fmt.Errorf("server.port %d out of range 1..65535", c.Server.Port))
	}

	if c.Server.ReadyTimeout <= 0 {
		errs = append(errs, errors.New("server.ready_timeout must be positive"))
	}

	if c.Server.PollInterval <= 0 {
		errs = append(errs, errors.New("server.poll_interval must be positive"))
	}

	if c.Tools.NYC == "" || c.Tools.NPM == "" {
		errs = append(errs, errors.New("tools.nyc and tools.npm must be set"))
	}

	if c.Scripts.Server == "" || c.Scripts.E2E == "" {
		errs = append(errs, errors.New("scripts.server and scripts.e2e must be set"))
	}

	return errors.Join(errs...)
}

// ServerAddr is the host:port the web server listens on.
func (c Config) ServerAddr() string {
	return net.JoinHostPort(c.Server.Host, strconv.Itoa(c.Server.Port))
}

// ServerURL is the root URL probed for readiness.
func (c Config) ServerURL() string {
	return "http://" + c.ServerAddr() + "/"
}

// Layout returns the report directory tree rooted at Paths.Reports.
func (c Config) Layout() ReportLayout {
	return ReportLayout{Root: c.Paths.Reports}
}

// ReportLayout is the fixed three-way report directory tree shared with
// the merge tool.
type ReportLayout struct {
	Root Path
}

// KarmaDir holds one subdirectory per unit-test browser run.
func (l ReportLayout) KarmaDir() Path { return l.Root.Join(karmaDirName) }

// ProtractorDir holds the end-to-end coverage report.
func (l ReportLayout) ProtractorDir() Path { return l.Root.Join(protractorDirName) }

// CombinedDir holds the merged artifact and the combined report.
func (l ReportLayout) CombinedDir() Path { return l.Root.Join(combinedDirName) }

// KarmaGlob matches the unit-test coverage artifact.
func (l ReportLayout) KarmaGlob() string {
	return string(l.KarmaDir().Join("*", CoverageFileName))
}

// ProtractorCoverageFile is the end-to-end coverage artifact.
func (l ReportLayout) ProtractorCoverageFile() Path {
	return l.ProtractorDir().Join(CoverageFileName)
}

// CombinedCoverageFile is the merged artifact.
func (l ReportLayout) CombinedCoverageFile() Path {
	return l.CombinedDir().Join(CombinedCoverageFileName)
}

// StagedKarmaFile is the temporary, merge-visible copy of the karma artifact.
func (l ReportLayout) StagedKarmaFile() Path { return l.Root.Join(KarmaStagedFileName) }

// StagedProtractorFile is the temporary, merge-visible copy of the
// protractor artifact.
func (l ReportLayout) StagedProtractorFile() Path { return l.Root.Join(ProtractorStagedFileName) }
