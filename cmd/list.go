package cmd

import (
	"github.com/spf13/cobra"

	"salvager.dev/pkg/salvager/internal/domain"
)

// listCmd represents the list command.
var listCmd = newListCmd()

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List structure groups in the world",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runWorkflow(cmd, func(wf domain.Workflow) error {
				return wf.List(cmd.Context(), domain.ListArgs{World: worldPath()})
			})
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(listCmd)
}
