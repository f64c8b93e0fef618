package cmd

import (
	"github.com/spf13/cobra"

	"github.com/rehagoal/e2ecov/internal/domain"
)

var listExcludeFlag []string

// listCmd represents the list command.
var listCmd = newListCmd()

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List source files and how they would be staged",
		Long: `List every file of the application tree and whether protractor-coverage
would instrument it, exclude it from instrumentation, or copy it unchanged.
Nothing is written.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			cfg.Instrument.Exclude = append(cfg.Instrument.Exclude, listExcludeFlag...)

			return workflow.List(cmd.Context(), domain.ListArgs{Config: cfg})
		},
	}

	cmd.Flags().StringArrayVarP(&listExcludeFlag, excludeFlagName, "x", nil, "additional glob excluded from instrumentation (can be repeated)")

	return cmd
}

func init() {
	rootCmd.AddCommand(listCmd)
}
