package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/example/acacia/internal/wire"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Inspect the admin menu",
}

var menuListCmd = &cobra.Command{
	Use:   "list",
	Short: "List admin menu entries",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := wire.MenuAdapter().List(context.Background())
		return err
	},
}

func init() {
	menuCmd.AddCommand(menuListCmd)
}

// MenuCmd returns the menu command
func MenuCmd() *cobra.Command {
	return menuCmd
}
