// Package cmd provides the root command and CLI setup for e2ecov.
package cmd

import (
	"errors"
	"fmt"
	"os"
	"time"

	"code.cloudfoundry.org/clock"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/rehagoal/e2ecov/internal/adapter"
	"github.com/rehagoal/e2ecov/internal/controller"
	"github.com/rehagoal/e2ecov/internal/domain"
)

// defaultProbeTimeout bounds a single readiness request.
const defaultProbeTimeout = 2 * time.Second

var fsAdapter adapter.SourceFSAdapter
var toolAdapter adapter.ToolRunnerAdapter
var processAdapter adapter.ProcessAdapter
var probeAdapter adapter.HTTPProbeAdapter
var coverageStore adapter.CoverageStore
var processes *domain.ProcessSet
var runner domain.Runner
var combiner domain.Combiner
var workflow domain.Workflow
var ui controller.UI

// reportsDirFlag is a root-level flag shared by commands that read/write reports.
var reportsDirFlag string

// verboseFlag switches logging to debug level.
var verboseFlag bool

// logFileFlag overrides the rotated log file location.
var logFileFlag string

func init() {
	configureRootFlags(rootCmd)

	// Initialize shared dependencies.
	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stdout))
	fsAdapter = adapter.NewLocalSourceFSAdapter()
	toolAdapter = adapter.NewLocalToolRunnerAdapter(os.Stdout, os.Stderr)
	processAdapter = adapter.NewLocalProcessAdapter(os.Stdout, os.Stderr)
	probeAdapter = adapter.NewLocalHTTPProbeAdapter(defaultProbeTimeout)
	coverageStore = adapter.NewCoverageStore()
	processes = domain.NewProcessSet()
	runner = domain.NewRunner(
		fsAdapter,
		toolAdapter,
		processAdapter,
		probeAdapter,
		coverageStore,
		processes,
		clock.NewClock(),
	)
	combiner = domain.NewCombiner(fsAdapter, toolAdapter, coverageStore)
	workflow = domain.NewWorkflow(
		fsAdapter,
		coverageStore,
		ui,
		runner,
		combiner,
	)
}

const rootLongDescription = `e2ecov produces a combined code-coverage report for a browser application
whose tests run in two phases: unit tests (karma) and end-to-end tests
(protractor).

  protractor-coverage       instrument the application, serve it, run the
                            end-to-end suite and write its coverage report
  combined-coverage-report  merge the unit-test and end-to-end coverage into
                            one combined report

Paths, the web server endpoint and the external tools are read from
e2ecov.yaml (see "e2ecov init") and E2ECOV_* environment variables.`

// rootCmd represents the base command when called without any subcommands.
var rootCmd = baseRootCmd()

func baseRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:           "e2ecov",
		Short:         "End-to-end and combined coverage for browser applications",
		Long:          rootLongDescription,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			configureLogger(cmd.ErrOrStderr(), viper.GetString(logFilenameKey), viper.GetBool(logVerboseKey))
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
}

// newRootCmd returns a fresh root command with the root-level flags, for
// assembling command trees in isolation.
func newRootCmd() *cobra.Command {
	cmd := baseRootCmd()
	configureRootFlags(cmd)

	return cmd
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().
		StringVarP(
			&reportsDirFlag, reportsFlagName, "r",
			viper.GetString(reportsKey),
			"root directory of the coverage report tree",
		)
	bindFlagToConfig(cmd.PersistentFlags().Lookup(reportsFlagName), reportsKey)

	cmd.PersistentFlags().BoolVarP(&verboseFlag, verboseFlagName, "v", viper.GetBool(logVerboseKey), "log at debug level")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(verboseFlagName), logVerboseKey)

	cmd.PersistentFlags().StringVar(&logFileFlag, logFileFlagName, viper.GetString(logFilenameKey), "rotated log file")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(logFileFlagName), logFilenameKey)
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	installSignalHandler(os.Stderr, func(os.Signal) {
		if err := processes.KillAll(); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to kill background processes: %v\n", err)
		}
	})

	if code := runRoot(rootCmd); code != 0 {
		os.Exit(code)
	}
}

// runRoot executes cmd and returns the process exit status. A failing
// end-to-end suite already reported its own output, so only other errors
// are printed.
func runRoot(cmd *cobra.Command) int {
	err := cmd.Execute()
	if err == nil {
		return 0
	}

	var suiteErr *ExitCodeError
	if !errors.As(err, &suiteErr) {
		cmd.PrintErrln("Error:", err)
	}

	return exitCode(err)
}
