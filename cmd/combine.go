package cmd

import (
	"github.com/spf13/cobra"

	"github.com/rehagoal/e2ecov/internal/domain"
)

const combineLongDescription = `Merge the unit-test coverage (karma/*/coverage-final.json) and the
end-to-end coverage (protractor/coverage-final.json) under the reports
directory into combined/coverage-combined.json, and render the combined
lcov, text and text-summary report.

Both inputs must exist before anything is merged.`

// combineCmd represents the combined-coverage-report command.
var combineCmd = newCombineCmd()

func newCombineCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "combined-coverage-report",
		Aliases: []string{"combine"},
		Short:   "Merge unit-test and end-to-end coverage into one report",
		Long:    combineLongDescription,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			_, err = workflow.Combine(cmd.Context(), domain.CombineArgs{Config: cfg})

			return err
		},
	}
}

func init() {
	rootCmd.AddCommand(combineCmd)
}
