// Package cmd provides the root command and CLI setup for salvager.
package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"salvager.dev/pkg/salvager/internal/adapter"
	"salvager.dev/pkg/salvager/internal/controller"
	"salvager.dev/pkg/salvager/internal/domain"
	m "salvager.dev/pkg/salvager/internal/model"
)

// worldFlag is a root-level flag naming the world file commands operate on.
var worldFlag string

// playerFlag selects the acting player; empty means a console invocation.
var playerFlag string

// verboseFlag switches logging to debug level.
var verboseFlag bool

// workflowFactory builds the workflow for a command invocation. The returned
// cleanup releases resources such as the telemetry database.
var workflowFactory = newWorkflow

const rootLongDescription = `Salvager converts structures in a world file into inventory items.

A grind pass checks that the player may salvage the structure group, moves
as many items as fit into the player's inventory and, once the structures
are empty, disassembles them. Re-run the command until the grid is gone.`

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "salvager",
		Short: "Capacity-aware structure salvage",
		Long:  rootLongDescription,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			configureLogger(viper.GetString(logFilenameKey), viper.GetBool(logVerboseKey))
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
		SilenceUsage: true,
	}
}

func init() {
	configureRootFlags(rootCmd)
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().
		StringVarP(
			&worldFlag, worldFlagName, "w",
			viper.GetString(worldConfigKey),
			"world file to operate on (.yaml or .yaml.zst)",
		)
	bindFlagToConfig(cmd.PersistentFlags().Lookup(worldFlagName), worldConfigKey)

	cmd.PersistentFlags().StringVarP(&playerFlag, playerFlagName, "p", "", "acting player id or name (empty for console)")

	cmd.PersistentFlags().BoolVarP(&verboseFlag, verboseFlagName, "v", viper.GetBool(logVerboseKey), "enable debug logging")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(verboseFlagName), logVerboseKey)
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

func newWorkflow(cmd *cobra.Command) (domain.Workflow, func(), error) {
	telemetry := newTelemetry()
	ui := controller.NewUI(cmd, controller.IsTTY(os.Stdout))

	wf := domain.NewWorkflow(
		adapter.NewFileWorldStore(),
		telemetry,
		newRefresher(),
		ui,
		loadSettings(),
	)

	cleanup := func() {
		if err := telemetry.Close(); err != nil {
			slog.Error("Failed to close telemetry", "error", err)
		}
	}

	return wf, cleanup, nil
}

// runWorkflow builds the workflow, runs fn against it and releases it afterwards.
func runWorkflow(cmd *cobra.Command, fn func(wf domain.Workflow) error) error {
	wf, cleanup, err := workflowFactory(cmd)
	if err != nil {
		return err
	}

	defer cleanup()

	return fn(wf)
}

func worldPath() m.Path {
	return m.Path(viper.GetString(worldConfigKey))
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
