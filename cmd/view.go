package cmd

import (
	"github.com/spf13/cobra"

	"github.com/rehagoal/e2ecov/internal/domain"
	m "github.com/rehagoal/e2ecov/internal/model"
)

// viewCmd represents the view command.
var viewCmd = newViewCmd()

func newViewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "view [artifact]",
		Short: "View the summary of a coverage artifact",
		Long: `Print the per-file coverage summary of an istanbul coverage JSON file.
Without an argument the combined artifact under the reports directory is shown.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var artifact m.Path

			if len(args) == 1 {
				artifact = m.Path(args[0])
			} else {
				cfg, err := loadConfig()
				if err != nil {
					return err
				}

				artifact = cfg.Layout().CombinedCoverageFile()
			}

			return workflow.View(cmd.Context(), domain.ViewArgs{Artifact: artifact})
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(viewCmd)
}
