// Package cli provides thin CLI adapters that translate between CLI concerns
// and application services. Adapters handle argument parsing, output formatting,
// but delegate business logic to services.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/fatih/color"

	"github.com/example/acacia/internal/ports/primary"
)

// ModuleAdapter is a thin adapter that translates CLI operations to ModuleService calls.
// It depends only on the ModuleService interface, enabling easy testing with mocks.
type ModuleAdapter struct {
	service primary.ModuleService
	out     io.Writer
}

// NewModuleAdapter creates a new ModuleAdapter with the given service.
func NewModuleAdapter(service primary.ModuleService, out io.Writer) *ModuleAdapter {
	return &ModuleAdapter{
		service: service,
		out:     out,
	}
}

// Generate scaffolds a module and reports every path written.
// The response is returned even on refusal so callers can use its exit code.
func (a *ModuleAdapter) Generate(ctx context.Context, req primary.GenerateModuleRequest) (*primary.GenerateModuleResponse, error) {
	resp, err := a.service.GenerateModule(ctx, req)
	if err != nil {
		if errors.Is(err, primary.ErrModuleExists) && resp != nil {
			fmt.Fprintf(a.out, "%s\n", color.New(color.FgRed).Sprintf("Module [%s] already exists!", resp.Module))
			fmt.Fprintln(a.out, "Use --force to replace it.")
		}
		return resp, err
	}

	if req.DryRun {
		a.printDryRun(resp)
		return resp, nil
	}

	if resp.Replaced {
		fmt.Fprintf(a.out, "Replaced existing module [%s]\n", resp.Module)
	}
	for _, path := range resp.Created {
		fmt.Fprintf(a.out, "Created : %s\n", path)
	}
	for _, w := range resp.Warnings {
		fmt.Fprintf(a.out, "%s %s\n", color.New(color.FgYellow).Sprint("!"), w)
	}
	fmt.Fprintf(a.out, "%s\n", color.New(color.FgGreen).Sprintf("Module [%s] created successfully.", resp.Module))

	return resp, nil
}

func (a *ModuleAdapter) printDryRun(resp *primary.GenerateModuleResponse) {
	fmt.Fprintf(a.out, "Dry run for module [%s] at %s\n\n", resp.Module, resp.Path)

	fmt.Fprintln(a.out, "Steps:")
	for _, step := range resp.Planned {
		fmt.Fprintf(a.out, "  %s\n", step)
	}

	fmt.Fprintln(a.out)
	fmt.Fprintln(a.out, "Files:")
	for _, f := range resp.Files {
		fmt.Fprintf(a.out, "  %s (%s, %d bytes)\n", f.Path, f.StubID, len(f.Content))
	}
}

// List lists modules on disk and in the status store.
func (a *ModuleAdapter) List(ctx context.Context) ([]*primary.Module, error) {
	modules, err := a.service.ListModules(ctx)
	if err != nil {
		return nil, err
	}

	if len(modules) == 0 {
		fmt.Fprintln(a.out, "No modules found.")
		fmt.Fprintln(a.out)
		fmt.Fprintln(a.out, "Generate your first module:")
		fmt.Fprintln(a.out, "  acacia make invoice")
		return modules, nil
	}

	w := tabwriter.NewWriter(a.out, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "NAME\tSTATUS\tON DISK\tPATH")
	fmt.Fprintln(w, "----\t------\t-------\t----")

	for _, m := range modules {
		status := "disabled"
		if m.Active {
			status = "enabled"
		}
		onDisk := "yes"
		if !m.OnDisk {
			onDisk = "missing"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", m.Name, status, onDisk, m.Path)
	}

	w.Flush()
	return modules, nil
}

// SetActive enables or disables a module.
func (a *ModuleAdapter) SetActive(ctx context.Context, name string, active bool) error {
	if err := a.service.SetModuleActive(ctx, name, active); err != nil {
		return err
	}

	verb := "Disabled"
	if active {
		verb = "Enabled"
	}
	fmt.Fprintf(a.out, "✓ %s module %s\n", verb, name)
	return nil
}

// Log prints the change history, newest first.
func (a *ModuleAdapter) Log(ctx context.Context, module string, limit int) ([]*primary.ModuleLog, error) {
	logs, err := a.service.ListModuleLogs(ctx, module, limit)
	if err != nil {
		return nil, err
	}

	if len(logs) == 0 {
		fmt.Fprintln(a.out, "No history recorded.")
		return logs, nil
	}

	w := tabwriter.NewWriter(a.out, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "WHEN\tMODULE\tACTION\tCHANGE")
	fmt.Fprintln(w, "----\t------\t------\t------")

	for _, l := range logs {
		change := "-"
		if l.FieldName != "" {
			change = fmt.Sprintf("%s: %s -> %s", l.FieldName, l.OldValue, l.NewValue)
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", l.CreatedAt, l.Module, l.Action, change)
	}

	w.Flush()
	return logs, nil
}
