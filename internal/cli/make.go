package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/acacia/internal/ports/primary"
	"github.com/example/acacia/internal/scaffold"
	"github.com/example/acacia/internal/wire"
)

// MakeCmd returns the module generation command.
func MakeCmd() *cobra.Command {
	var (
		moduleType    string
		force         bool
		inactive      bool
		dryRun        bool
		noFormat      bool
		schematicName string
		schematicFile string
		fields        string
	)

	cmd := &cobra.Command{
		Use:   "make [name]",
		Short: "Generate a new module",
		Long: `Generate a module from a singular or plural name.

The module is named after the plural of the name (or of the schematic's
model class). Fields can come from a stored schematic, a YAML file, or an
inline list of name:type[:list|form|list+form] entries.

Examples:
  acacia make invoice
  acacia make invoice --fields "number:text,paid:switch:form"
  acacia make invoice --schematic Invoice --force
  acacia make reports --type plain
  acacia make invoice --dry-run`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			name := args[0]

			schematic, err := resolveSchematic(ctx, name, schematicName, schematicFile, fields)
			if err != nil {
				return err
			}

			req := primary.GenerateModuleRequest{
				Name:      name,
				Schematic: schematic,
				Type:      moduleType,
				Force:     force,
				DryRun:    dryRun,
				NoFormat:  noFormat,
			}
			if cmd.Flags().Changed("inactive") {
				active := !inactive
				req.Active = &active
			}

			_, err = wire.ModuleAdapter().Generate(ctx, req)
			return err
		},
	}

	cmd.Flags().StringVarP(&moduleType, "type", "t", "web", "Module type: web, api or plain")
	cmd.Flags().BoolVarP(&force, "force", "f", false, "Replace the module if it already exists")
	cmd.Flags().BoolVar(&inactive, "inactive", false, "Register the module as disabled")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Show what would be generated without writing")
	cmd.Flags().BoolVar(&noFormat, "no-format", false, "Skip the formatter pass")
	cmd.Flags().StringVarP(&schematicName, "schematic", "s", "", "Stored schematic model class")
	cmd.Flags().StringVar(&schematicFile, "schematic-file", "", "Schematic YAML file")
	cmd.Flags().StringVar(&fields, "fields", "", "Inline fields, e.g. \"number:text,paid:switch:form\"")

	return cmd
}

// resolveSchematic picks the schematic source given on the command line.
// At most one source may be used.
func resolveSchematic(ctx context.Context, name, stored, file, fields string) (*scaffold.Schematic, error) {
	sources := 0
	for _, s := range []string{stored, file, fields} {
		if s != "" {
			sources++
		}
	}
	if sources > 1 {
		return nil, fmt.Errorf("use only one of --schematic, --schematic-file and --fields")
	}

	switch {
	case stored != "":
		return wire.SchematicService().GetSchematic(ctx, stored)
	case file != "":
		return scaffold.LoadSchematicFile(file)
	case fields != "":
		return scaffold.BuildSchematic(scaffold.Singular(scaffold.Studly(name)), fields)
	}
	return nil, nil
}
