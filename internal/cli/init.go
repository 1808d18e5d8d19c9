package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/acacia/internal/config"
	"github.com/example/acacia/internal/db"
	"github.com/example/acacia/internal/wire"
)

// InitCmd returns the init command
func InitCmd() *cobra.Command {
	var (
		force bool
		seed  bool
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize acacia in a project",
		Long: `Write .acacia/config.yaml with the default folder plan, file plan and
placeholder tables, then create the module store with its root menu entry.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := wire.ProjectDir()

			_, err := config.Load(dir)
			switch {
			case err == nil && !force:
				fmt.Printf("Config already present at %s (use --force to overwrite)\n", config.Path(dir))
			case err == nil || errors.Is(err, config.ErrNoConfig) || force:
				if err := config.Save(dir, config.Default()); err != nil {
					return err
				}
				fmt.Printf("✓ Config written to %s\n", config.Path(dir))
			default:
				return fmt.Errorf("existing config is invalid (use --force to overwrite): %w", err)
			}

			cfg, err := config.Load(dir)
			if err != nil {
				return err
			}
			dbPath, err := wire.DatabasePath(dir, cfg)
			if err != nil {
				return fmt.Errorf("failed to get database path: %w", err)
			}

			database, err := wire.Database()
			if err != nil {
				return fmt.Errorf("failed to initialize database: %w", err)
			}
			fmt.Printf("✓ Database initialized at %s\n", dbPath)

			if seed {
				if err := db.SeedFixtures(database); err != nil {
					return fmt.Errorf("failed to seed fixtures: %w", err)
				}
				fmt.Println("✓ Example Invoice schematic seeded")
			}

			fmt.Println()
			fmt.Println("Next steps:")
			fmt.Println("  acacia make invoice --fields \"number:text,paid:switch:form\"")
			fmt.Println("  acacia module list")

			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite an existing config")
	cmd.Flags().BoolVar(&seed, "seed", false, "Seed an example Invoice schematic")

	return cmd
}
