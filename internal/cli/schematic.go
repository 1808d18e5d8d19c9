package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/example/acacia/internal/wire"
)

var schematicCmd = &cobra.Command{
	Use:   "schematic",
	Short: "Manage stored schematics",
	Long:  "Import, list, and show the field definitions modules are generated from",
}

var schematicImportCmd = &cobra.Command{
	Use:   "import [file]",
	Short: "Import a schematic from a YAML file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return wire.SchematicAdapter().Import(context.Background(), args[0])
	},
}

var schematicShowCmd = &cobra.Command{
	Use:   "show [model]",
	Short: "Show a schematic and its fields",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := wire.SchematicAdapter().Show(context.Background(), args[0])
		return err
	},
}

var schematicListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored schematics",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := wire.SchematicAdapter().List(context.Background())
		return err
	},
}

func init() {
	schematicCmd.AddCommand(schematicImportCmd)
	schematicCmd.AddCommand(schematicShowCmd)
	schematicCmd.AddCommand(schematicListCmd)
}

// SchematicCmd returns the schematic command
func SchematicCmd() *cobra.Command {
	return schematicCmd
}
