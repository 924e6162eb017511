package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"salvager.dev/pkg/salvager/internal/domain"
)

var checkAllFlag bool
var checkForceFlag bool
var checkParallelFlag int

// checkCmd represents the check command.
var checkCmd = newCheckCmd()

func newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check [grid]",
		Short: "Check whether a structure group may be ground",
		Long: `Run the eligibility checks without changing the world.

With a grid name the group containing that grid is checked. Without one the
player's selection is used. With --all every group in the world is checked
in parallel.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			target := ""
			if len(args) > 0 {
				target = args[0]
			}

			return runWorkflow(cmd, func(wf domain.Workflow) error {
				return wf.Check(cmd.Context(), domain.CheckArgs{
					World:   worldPath(),
					Player:  playerFlag,
					Target:  target,
					All:     checkAllFlag,
					Force:   checkForceFlag,
					Threads: viper.GetInt(checkParallelKey),
				})
			})
		},
	}

	configureCheckFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func configureCheckFlags(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&checkAllFlag, allFlagName, false, "check every structure group in the world")
	cmd.Flags().BoolVarP(&checkForceFlag, forceFlagName, "f", false, "skip the structure and item limits")
	cmd.Flags().IntVar(&checkParallelFlag, parallelFlagName, defaultCheckParallel, "number of groups checked concurrently with --all")
	bindFlagToConfig(cmd.Flags().Lookup(parallelFlagName), checkParallelKey)
}
