package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"salvager.dev/pkg/salvager/internal/controller"
	"salvager.dev/pkg/salvager/internal/domain"
	m "salvager.dev/pkg/salvager/internal/model"
)

var grindForceFlag bool
var grindDiffFlag bool

// grindCmd represents the grind command group.
var grindCmd = newGrindCmd()

func newGrindCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "grind",
		Short: "Salvage a structure group into the player's inventory",
		Long: `Salvage a structure group into the player's inventory.

Each run moves as many items as the inventory can hold. Once every container
is empty and the inventory has room, the structures are disassembled.
Without --player the group is scrapped and nothing is recovered.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().BoolVarP(&grindForceFlag, forceFlagName, "f", false, "grind multiple linked grids and skip the item limit")
	cmd.PersistentFlags().BoolVar(&grindDiffFlag, diffFlagName, false, "show the inventory changes after the pass")

	cmd.AddCommand(newGrindNameCmd(), newGrindThisCmd(), newGrindConfigsCmd(), newGrindCommandsCmd())

	return cmd
}

func init() {
	rootCmd.AddCommand(grindCmd)
}

func newGrindNameCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "name <grid> [force]",
		Short: "Grind the grid with the given name",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			force, err := parseForce(args[1:])
			if err != nil {
				return err
			}

			return grind(cmd, args[0], force)
		},
	}
}

func newGrindThisCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "this [force]",
		Short: "Grind the grid the player has selected",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			force, err := parseForce(args)
			if err != nil {
				return err
			}

			return grind(cmd, "", force)
		},
	}
}

func grind(cmd *cobra.Command, target string, force bool) error {
	return runWorkflow(cmd, func(wf domain.Workflow) error {
		return wf.Grind(cmd.Context(), domain.GrindArgs{
			World:  worldPath(),
			Player: playerFlag,
			Target: target,
			Force:  force || grindForceFlag,
			Diff:   grindDiffFlag,
		})
	})
}

// parseForce reads the optional positional force argument.
func parseForce(args []string) (bool, error) {
	if len(args) == 0 {
		return false, nil
	}

	force, err := strconv.ParseBool(args[0])
	if err != nil {
		return false, fmt.Errorf("invalid force argument %q: expected true or false", args[0])
	}

	return force, nil
}

func newGrindConfigsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "configs [key [value]]",
		Short: "Show or change configuration values",
		Long: `Without arguments, list every configuration value. With a key, show that
value. With a key and a value, update it and write the configuration file.`,
		Args: cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			settings := configSettings()

			switch len(args) {
			case 0:
			case 1:
				if !isKnownConfigKey(args[0]) {
					return fmt.Errorf("unknown config key %q", args[0])
				}

				settings = []m.Setting{{Key: args[0], Value: formatConfigValue(viper.Get(args[0]))}}
			default:
				setting, err := setConfigValue(args[0], args[1])
				if err != nil {
					return err
				}

				settings = []m.Setting{setting}
			}

			return displaySettings(cmd, settings)
		},
	}
}

func setConfigValue(key, raw string) (m.Setting, error) {
	if !isKnownConfigKey(key) {
		return m.Setting{}, fmt.Errorf("unknown config key %q", key)
	}

	value, err := parseConfigValue(key, raw)
	if err != nil {
		return m.Setting{}, fmt.Errorf("invalid value for %s: %w", key, err)
	}

	viper.Set(key, value)

	if err := viper.WriteConfig(); err != nil {
		return m.Setting{}, fmt.Errorf("failed to write config file: %w", err)
	}

	return m.Setting{Key: key, Value: formatConfigValue(viper.Get(key))}, nil
}

func displaySettings(cmd *cobra.Command, settings []m.Setting) error {
	ctx := cmd.Context()
	ui := controller.NewSimpleUI(cmd)

	if err := ui.Start(ctx, controller.WithConfigMode()); err != nil {
		return err
	}

	defer ui.Close(ctx)

	if err := ui.DisplaySettings(ctx, settings); err != nil {
		return err
	}

	ui.Wait(ctx)

	return nil
}

func newGrindCommandsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "commands",
		Short: "List the grind commands",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			for _, sub := range cmd.Parent().Commands() {
				if sub.Hidden || !sub.IsAvailableCommand() {
					continue
				}

				cmd.Printf("%s %s\n  %s\n", cmd.Parent().Name(), sub.Use, sub.Short)
			}
		},
	}
}
