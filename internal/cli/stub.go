package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/example/acacia/internal/ports/primary"
	"github.com/example/acacia/internal/wire"
)

var stubCmd = &cobra.Command{
	Use:   "stub",
	Short: "Inspect module stubs",
}

var stubShowCmd = &cobra.Command{
	Use:   "show [stub] [name]",
	Short: "Render a stub for a module name without writing it",
	Long: `Render a stub for a module name without writing it.

Examples:
  acacia stub show js/index invoice
  acacia stub show js/create invoice --fields "number:text,paid:switch"`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		stored, _ := cmd.Flags().GetString("schematic")
		file, _ := cmd.Flags().GetString("schematic-file")
		fields, _ := cmd.Flags().GetString("fields")

		schematic, err := resolveSchematic(ctx, args[1], stored, file, fields)
		if err != nil {
			return err
		}

		return wire.StubAdapter().Show(ctx, primary.PreviewStubRequest{
			StubID:    args[0],
			Name:      args[1],
			Schematic: schematic,
		})
	},
}

var stubListCmd = &cobra.Command{
	Use:   "list",
	Short: "List available stubs",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := wire.StubAdapter().List(context.Background())
		return err
	},
}

func init() {
	stubShowCmd.Flags().StringP("schematic", "s", "", "Stored schematic model class")
	stubShowCmd.Flags().String("schematic-file", "", "Schematic YAML file")
	stubShowCmd.Flags().String("fields", "", "Inline fields")

	stubCmd.AddCommand(stubShowCmd)
	stubCmd.AddCommand(stubListCmd)
}

// StubCmd returns the stub command
func StubCmd() *cobra.Command {
	return stubCmd
}
