package cli

import (
	"errors"

	"github.com/spf13/cobra"

	coremodule "github.com/example/acacia/internal/core/module"
	"github.com/example/acacia/internal/ports/primary"
	"github.com/example/acacia/internal/version"
	"github.com/example/acacia/internal/wire"
)

// RootCmd returns the acacia root command with every subcommand attached.
func RootCmd() *cobra.Command {
	var (
		dir     string
		verbose bool
	)

	rootCmd := &cobra.Command{
		Use:     "acacia",
		Short:   "Acacia - module scaffolder for the Acacia admin panel",
		Version: version.String(),
		Long: `Acacia generates self-contained application modules: folders, manifest,
routes, pages, seeders, providers, factories, models and controllers, then
registers an admin menu entry and activates the module.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if dir != "" {
				wire.SetProjectDir(dir)
			}
			wire.SetVerbose(verbose)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&dir, "dir", "C", "", "Project root (default: working directory)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(InitCmd())
	rootCmd.AddCommand(DoctorCmd())
	rootCmd.AddCommand(MakeCmd())
	rootCmd.AddCommand(ModuleCmd())
	rootCmd.AddCommand(MenuCmd())
	rootCmd.AddCommand(SchematicCmd())
	rootCmd.AddCommand(StubCmd())

	return rootCmd
}

// ExitCode maps a command error to the process exit status.
func ExitCode(err error) int {
	if err == nil {
		return coremodule.ExitSuccess
	}
	if errors.Is(err, primary.ErrModuleExists) {
		return coremodule.ExitAlreadyExists
	}
	return 1
}
