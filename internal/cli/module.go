package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/example/acacia/internal/wire"
)

var moduleCmd = &cobra.Command{
	Use:   "module",
	Short: "Manage generated modules",
	Long:  "List generated modules, switch them on or off and show their history",
}

var moduleListCmd = &cobra.Command{
	Use:   "list",
	Short: "List modules and their status",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := wire.ModuleAdapter().List(context.Background())
		return err
	},
}

var moduleEnableCmd = &cobra.Command{
	Use:   "enable [name]",
	Short: "Enable a module",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return wire.ModuleAdapter().SetActive(context.Background(), args[0], true)
	},
}

var moduleDisableCmd = &cobra.Command{
	Use:   "disable [name]",
	Short: "Disable a module",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return wire.ModuleAdapter().SetActive(context.Background(), args[0], false)
	},
}

var moduleLogLimit int

var moduleLogCmd = &cobra.Command{
	Use:   "log [name]",
	Short: "Show module change history",
	Long: `Show the recorded history of module generation, replacement and
status changes, newest first. Without a name every module is shown.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := ""
		if len(args) == 1 {
			name = args[0]
		}
		_, err := wire.ModuleAdapter().Log(context.Background(), name, moduleLogLimit)
		return err
	},
}

func init() {
	moduleLogCmd.Flags().IntVarP(&moduleLogLimit, "limit", "n", 20, "Maximum number of entries (0 for all)")

	moduleCmd.AddCommand(moduleListCmd)
	moduleCmd.AddCommand(moduleEnableCmd)
	moduleCmd.AddCommand(moduleDisableCmd)
	moduleCmd.AddCommand(moduleLogCmd)
}

// ModuleCmd returns the module command
func ModuleCmd() *cobra.Command {
	return moduleCmd
}
