package cli

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/example/acacia/internal/adapters/generators"
	"github.com/example/acacia/internal/config"
	"github.com/example/acacia/internal/db"
	"github.com/example/acacia/internal/scaffold"
	"github.com/example/acacia/internal/wire"
)

// Check statuses.
const (
	checkOK   = "✓"
	checkWarn = "⚠"
	checkFail = "✗"
)

// CheckResult represents the outcome of a single check
type CheckResult struct {
	Name    string
	Status  string // "✓", "⚠", "✗"
	Details string // Only shown if Status != "✓"
}

// DoctorCmd returns the doctor command for environment validation
func DoctorCmd() *cobra.Command {
	var quiet bool

	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Validate the acacia project setup",
		Long: `Health check for an acacia project.

Validates:
- Project config (.acacia/config.yaml)
- Module store (sqlite database and migrations)
- Modules directory
- Stubs referenced by the file plan and generators
- Formatter binary on PATH

Examples:
  acacia doctor              # Run full health check
  acacia doctor --quiet      # Exit code only (0=healthy, 1=issues)`,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := wire.ProjectDir()

			cfgResult, cfg := checkConfig(dir)
			results := []CheckResult{
				cfgResult,
				checkDatabase(dir, cfg),
				checkModulesDir(wire.ResolvePath(dir, cfg.ModulesPath)),
				checkStubs(wire.StubCatalog(dir, cfg), cfg),
				checkFormatter(cfg.Formatter),
			}

			hasErrors := false
			for _, r := range results {
				if r.Status == checkFail {
					hasErrors = true
					break
				}
			}

			if !quiet {
				fmt.Println()
				fmt.Println("Check              Status")
				fmt.Println("─────────────────────────")
				for _, r := range results {
					fmt.Printf("%-18s %s\n", r.Name, colorStatus(r.Status))
				}
				fmt.Println()

				hasDetails := false
				for _, r := range results {
					if r.Status != checkOK && r.Details != "" {
						if !hasDetails {
							fmt.Println("Details:")
							hasDetails = true
						}
						fmt.Printf("\n%s:\n%s\n", r.Name, r.Details)
					}
				}

				if hasErrors {
					fmt.Println("\n⚠ Issues found. Run 'acacia init' to create a default setup.")
				} else {
					fmt.Println("All checks passed.")
				}
			}

			if hasErrors {
				return fmt.Errorf("environment validation failed")
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Quiet mode - exit code only")

	return cmd
}

func colorStatus(status string) string {
	switch status {
	case checkOK:
		return color.New(color.FgGreen).Sprint(status)
	case checkWarn:
		return color.New(color.FgYellow).Sprint(status)
	default:
		return color.New(color.FgRed).Sprint(status)
	}
}

// checkConfig loads the project config. A missing config is a warning and
// the defaults are used for the remaining checks.
func checkConfig(dir string) (CheckResult, *config.Config) {
	cfg, err := config.Load(dir)
	switch {
	case err == nil:
		return CheckResult{Name: "Config", Status: checkOK}, cfg
	case errors.Is(err, config.ErrNoConfig):
		return CheckResult{Name: "Config", Status: checkWarn, Details: "  No .acacia/config.yaml, using defaults"}, config.Default()
	default:
		return CheckResult{Name: "Config", Status: checkFail, Details: "  " + err.Error()}, config.Default()
	}
}

// checkDatabase opens the store, which applies pending migrations.
func checkDatabase(dir string, cfg *config.Config) CheckResult {
	path, err := wire.DatabasePath(dir, cfg)
	if err != nil {
		return CheckResult{Name: "Database", Status: checkFail, Details: "  " + err.Error()}
	}

	conn, err := db.Open(path)
	if err != nil {
		return CheckResult{Name: "Database", Status: checkFail, Details: fmt.Sprintf("  %s: %v", path, err)}
	}
	conn.Close()
	return CheckResult{Name: "Database", Status: checkOK}
}

// checkModulesDir reports whether the modules directory exists.
func checkModulesDir(path string) CheckResult {
	info, err := os.Stat(path)
	switch {
	case os.IsNotExist(err):
		return CheckResult{Name: "Modules dir", Status: checkWarn, Details: fmt.Sprintf("  %s does not exist yet (created on first make)", path)}
	case err != nil:
		return CheckResult{Name: "Modules dir", Status: checkFail, Details: "  " + err.Error()}
	case !info.IsDir():
		return CheckResult{Name: "Modules dir", Status: checkFail, Details: fmt.Sprintf("  %s is not a directory", path)}
	}
	return CheckResult{Name: "Modules dir", Status: checkOK}
}

// checkStubs loads every stub a generation run can render.
func checkStubs(source scaffold.StubSource, cfg *config.Config) CheckResult {
	ids := []string{scaffold.ManifestStub}
	for _, f := range cfg.Stubs.Files {
		if f.Enabled() {
			ids = append(ids, f.Stub)
		}
	}
	ids = append(ids, generators.Stubs...)
	ids = append(ids, scaffold.PartialStubs()...)

	var missing []string
	for _, id := range ids {
		if _, err := source.Load(id); err != nil {
			missing = append(missing, "  "+id)
		}
	}
	if len(missing) > 0 {
		return CheckResult{Name: "Stubs", Status: checkFail, Details: "  Missing:\n" + strings.Join(missing, "\n")}
	}
	return CheckResult{Name: "Stubs", Status: checkOK}
}

// checkFormatter looks up the formatter binary. A missing formatter only
// skips post-processing, so it is a warning.
func checkFormatter(f config.FormatterConfig) CheckResult {
	if !f.Enabled || f.Command == "" {
		return CheckResult{Name: "Formatter", Status: checkOK}
	}
	if _, err := exec.LookPath(f.Command); err != nil {
		return CheckResult{Name: "Formatter", Status: checkWarn, Details: fmt.Sprintf("  %s not found on PATH, generated files will not be formatted", f.Command)}
	}
	return CheckResult{Name: "Formatter", Status: checkOK}
}
