package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/rehagoal/e2ecov/internal/domain"
)

const runLongDescription = `Produce end-to-end coverage:

  1. delete the coverage and instrumented directories
  2. copy the application tree and instrument the copy in place
  3. start the web server on the instrumented copy and wait until it answers
  4. run the end-to-end suite against it
  5. write the lcov and json coverage report

A failing end-to-end suite does not stop the report from being written; the
command then exits with the suite's exit status. The web server is killed on
every exit path.`

var runHostFlag string
var runPortFlag int
var runExcludeFlag []string

// runCmd represents the protractor-coverage command.
var runCmd = newRunCmd()

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "protractor-coverage",
		Aliases: []string{"run"},
		Short:   "Instrument, serve and run the end-to-end suite with coverage",
		Long:    runLongDescription,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			cfg.Instrument.Exclude = append(cfg.Instrument.Exclude, runExcludeFlag...)

			result, err := workflow.Protractor(cmd.Context(), domain.ProtractorArgs{Config: cfg})
			if err != nil {
				return err
			}

			if result.ExitCode != 0 {
				return &ExitCodeError{Code: result.ExitCode}
			}

			return nil
		},
	}

	configureRunFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func configureRunFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&runHostFlag, hostFlagName, viper.GetString(hostKey), "web server host")
	bindFlagToConfig(cmd.Flags().Lookup(hostFlagName), hostKey)

	cmd.Flags().IntVar(&runPortFlag, portFlagName, viper.GetInt(portKey), "web server port")
	bindFlagToConfig(cmd.Flags().Lookup(portFlagName), portKey)

	// Not bound to viper: glob patterns may contain commas ({a,b}).
	cmd.Flags().StringArrayVarP(&runExcludeFlag, excludeFlagName, "x", nil, "additional glob excluded from instrumentation (can be repeated)")
}
