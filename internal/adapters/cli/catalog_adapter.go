package cli

import (
	"context"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/example/acacia/internal/ports/primary"
	"github.com/example/acacia/internal/scaffold"
)

// MenuAdapter translates CLI operations to MenuService calls.
type MenuAdapter struct {
	service primary.MenuService
	out     io.Writer
}

// NewMenuAdapter creates a new MenuAdapter with the given service.
func NewMenuAdapter(service primary.MenuService, out io.Writer) *MenuAdapter {
	return &MenuAdapter{service: service, out: out}
}

// List lists admin menu entries.
func (a *MenuAdapter) List(ctx context.Context) ([]*primary.Menu, error) {
	menus, err := a.service.ListMenus(ctx)
	if err != nil {
		return nil, err
	}

	if len(menus) == 0 {
		fmt.Fprintln(a.out, "No menu entries found.")
		return menus, nil
	}

	w := tabwriter.NewWriter(a.out, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "ID\tTITLE\tROUTE\tPARENT\tICON")
	fmt.Fprintln(w, "--\t-----\t-----\t------\t----")
	for _, m := range menus {
		parent := "-"
		if m.ParentID != 0 {
			parent = fmt.Sprintf("%d", m.ParentID)
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n", m.ID, m.Title, m.Route, parent, m.Icon)
	}
	w.Flush()
	return menus, nil
}

// SchematicAdapter translates CLI operations to SchematicService calls.
type SchematicAdapter struct {
	service primary.SchematicService
	out     io.Writer
}

// NewSchematicAdapter creates a new SchematicAdapter with the given service.
func NewSchematicAdapter(service primary.SchematicService, out io.Writer) *SchematicAdapter {
	return &SchematicAdapter{service: service, out: out}
}

// Import stores the schematic read from path.
func (a *SchematicAdapter) Import(ctx context.Context, path string) error {
	s, err := a.service.ImportSchematic(ctx, path)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "✓ Imported schematic %s (%d fields)\n", s.ModelClass, len(s.Fields))
	return nil
}

// Show displays a stored schematic and its fields.
func (a *SchematicAdapter) Show(ctx context.Context, modelClass string) (*scaffold.Schematic, error) {
	s, err := a.service.GetSchematic(ctx, modelClass)
	if err != nil {
		return nil, err
	}

	fmt.Fprintf(a.out, "\nSchematic: %s\n", s.ModelClass)
	if s.ControllerClass != "" {
		fmt.Fprintf(a.out, "Controller: %s\n", s.ControllerClass)
	}
	fmt.Fprintln(a.out)

	w := tabwriter.NewWriter(a.out, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "FIELD\tTITLE\tTYPE\tPLACEMENT")
	fmt.Fprintln(w, "-----\t-----\t----\t---------")
	for _, f := range s.Fields {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", f.Name, f.Title, f.HTMLType, placement(f))
	}
	w.Flush()
	return s, nil
}

// List lists stored schematics.
func (a *SchematicAdapter) List(ctx context.Context) ([]*scaffold.Schematic, error) {
	list, err := a.service.ListSchematics(ctx)
	if err != nil {
		return nil, err
	}

	if len(list) == 0 {
		fmt.Fprintln(a.out, "No schematics found.")
		fmt.Fprintln(a.out)
		fmt.Fprintln(a.out, "Import one from a YAML file:")
		fmt.Fprintln(a.out, "  acacia schematic import invoice.yaml")
		return list, nil
	}

	w := tabwriter.NewWriter(a.out, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "MODEL\tFIELDS\tLIST\tFORM")
	fmt.Fprintln(w, "-----\t------\t----\t----")
	for _, s := range list {
		fmt.Fprintf(w, "%s\t%d\t%d\t%d\n", s.ModelClass, len(s.Fields), len(s.ListFields()), len(s.FormFields()))
	}
	w.Flush()
	return list, nil
}

func placement(f scaffold.Field) string {
	var parts []string
	if f.InList {
		parts = append(parts, "list")
	}
	if f.IsVue {
		parts = append(parts, "form")
	}
	if len(parts) == 0 {
		return "-"
	}
	return strings.Join(parts, "+")
}

// StubAdapter translates CLI operations to StubService calls.
type StubAdapter struct {
	service primary.StubService
	out     io.Writer
}

// NewStubAdapter creates a new StubAdapter with the given service.
func NewStubAdapter(service primary.StubService, out io.Writer) *StubAdapter {
	return &StubAdapter{service: service, out: out}
}

// Show prints a stub rendered for a module.
func (a *StubAdapter) Show(ctx context.Context, req primary.PreviewStubRequest) error {
	resp, err := a.service.PreviewStub(ctx, req)
	if err != nil {
		return err
	}

	fmt.Fprint(a.out, resp.Content)
	if len(resp.Unresolved) > 0 {
		fmt.Fprintf(a.out, "\n! unresolved placeholders: %s\n", strings.Join(resp.Unresolved, ", "))
	}
	return nil
}

// List prints the available stub ids.
func (a *StubAdapter) List(ctx context.Context) ([]string, error) {
	ids, err := a.service.ListStubs(ctx)
	if err != nil {
		return nil, err
	}
	for _, id := range ids {
		fmt.Fprintln(a.out, id)
	}
	return ids, nil
}
