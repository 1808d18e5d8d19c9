package generators

import (
	"context"
	"fmt"
	"strings"

	"github.com/example/acacia/internal/ports/secondary"
	"github.com/example/acacia/internal/scaffold"
)

// MakeController generates a page controller, or a JSON controller when
// args.API is set.
func (g *Generator) MakeController(ctx context.Context, args secondary.ControllerArgs) (string, error) {
	name := args.Name
	if !strings.HasSuffix(name, "Controller") {
		name += "Controller"
	}
	t := g.target(args.Module, "controller", name)

	model := scaffold.Singular(args.Module)
	var fields []scaffold.Field
	if args.Schematic != nil {
		model = scaffold.Studly(args.Schematic.ModelClass)
		fields = args.Schematic.Fields
	}

	stub := "controller"
	if args.API {
		stub = "controller-api"
	}

	return g.write(ctx, t, stub, scaffold.NewReplacements(
		"NAMESPACE", t.Namespace,
		"CLASS", t.Class,
		"MODEL_NAMESPACE", g.namespaceOf(args.Module, "model"),
		"MODEL", model,
		"MODULE", args.Module,
		"LOWER_NAME", strings.ToLower(args.Module),
		"RULES", rules(fields),
		"SEARCHABLE", searchable(fields),
	))
}

// rules renders the validation rules array of the fields.
func rules(fields []scaffold.Field) string {
	pairs := make([]string, 0, len(fields))
	for _, f := range fields {
		pairs = append(pairs, fmt.Sprintf("%s => [%s]", quote(f.Name), quoteAll(phpTypeOf(f.HTMLType).rules)))
	}
	return "[" + strings.Join(pairs, ", ") + "]"
}

// searchable renders the in-list field names as a PHP list.
func searchable(fields []scaffold.Field) string {
	var names []string
	for _, f := range fields {
		if f.InList {
			names = append(names, quote(f.Name))
		}
	}
	return "[" + strings.Join(names, ", ") + "]"
}
