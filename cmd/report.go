package cmd

import (
	"github.com/spf13/cobra"

	"salvager.dev/pkg/salvager/internal/domain"
)

const defaultReportLimit = 20

var reportLimitFlag int

// reportCmd represents the report command.
var reportCmd = newReportCmd()

func newReportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Show recent salvage runs",
		Long:  "Show the most recent salvage runs recorded in the telemetry database.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runWorkflow(cmd, func(wf domain.Workflow) error {
				return wf.Report(cmd.Context(), domain.ReportArgs{Limit: reportLimitFlag})
			})
		},
	}

	cmd.Flags().IntVarP(&reportLimitFlag, limitFlagName, "n", defaultReportLimit, "maximum number of runs to show")

	return cmd
}

func init() {
	rootCmd.AddCommand(reportCmd)
}
