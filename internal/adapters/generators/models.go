package generators

import (
	"context"
	"fmt"
	"strings"

	"github.com/example/acacia/internal/ports/secondary"
	"github.com/example/acacia/internal/scaffold"
)

// MakeModel generates an Eloquent model. Fillable attributes and casts come
// from the schematic fields.
func (g *Generator) MakeModel(ctx context.Context, args secondary.ModelArgs) (string, error) {
	t := g.target(args.Module, "model", scaffold.Studly(args.Name))

	var fields []scaffold.Field
	if args.Schematic != nil {
		fields = args.Schematic.Fields
	}

	return g.write(ctx, t, "model", scaffold.NewReplacements(
		"NAMESPACE", t.Namespace,
		"CLASS", t.Class,
		"TABLE", scaffold.Plural(scaffold.Snake(t.Class)),
		"FILLABLE", fillable(fields),
		"CASTS", casts(fields),
		"FACTORY_NAMESPACE", g.namespaceOf(args.Module, "factory"),
	))
}

// MakeFactory generates a model factory.
func (g *Generator) MakeFactory(ctx context.Context, args secondary.FactoryArgs) (string, error) {
	class := scaffold.Studly(args.Name)
	t := g.target(args.Module, "factory", class+"Factory")

	var fields []scaffold.Field
	if args.Schematic != nil {
		fields = args.Schematic.Fields
	}

	return g.write(ctx, t, "factory", scaffold.NewReplacements(
		"NAMESPACE", t.Namespace,
		"CLASS", class,
		"MODEL_NAMESPACE", g.namespaceOf(args.Module, "model"),
		"DEFINITION", definition(fields),
	))
}

// fillable renders a PHP list of the field names.
func fillable(fields []scaffold.Field) string {
	names := make([]string, 0, len(fields))
	for _, f := range fields {
		names = append(names, quote(f.Name))
	}
	return "[" + strings.Join(names, ", ") + "]"
}

// casts renders a PHP map of the fields that need a cast.
func casts(fields []scaffold.Field) string {
	var pairs []string
	for _, f := range fields {
		if c := phpTypeOf(f.HTMLType).cast; c != "" {
			pairs = append(pairs, fmt.Sprintf("%s => %s", quote(f.Name), quote(c)))
		}
	}
	return "[" + strings.Join(pairs, ", ") + "]"
}

// definition renders one faker line per field.
func definition(fields []scaffold.Field) string {
	var b strings.Builder
	for _, f := range fields {
		fmt.Fprintf(&b, "            %s => $this->faker->%s,\n", quote(f.Name), phpTypeOf(f.HTMLType).faker)
	}
	return b.String()
}
