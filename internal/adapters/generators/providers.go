package generators

import (
	"context"
	"strings"

	"github.com/example/acacia/internal/ports/secondary"
	"github.com/example/acacia/internal/scaffold"
)

// MakeSeeder generates a seeder. The master seeder is named
// <Name>DatabaseSeeder.
func (g *Generator) MakeSeeder(ctx context.Context, args secondary.SeederArgs) (string, error) {
	name := scaffold.Studly(args.Name)
	if args.Master {
		name += "Database"
	}
	if !strings.Contains(strings.ToLower(name), "seeder") {
		name += "Seeder"
	}

	t := g.target(args.Module, "seeder", name)
	return g.write(ctx, t, "seeder", scaffold.NewReplacements(
		"NAMESPACE", t.Namespace,
		"CLASS", t.Class,
	))
}

// MakeProvider generates a service provider. The master provider loads the
// module's migrations and config and registers its route provider.
func (g *Generator) MakeProvider(ctx context.Context, args secondary.ProviderArgs) (string, error) {
	stub := "provider-plain"
	if args.Master {
		stub = "provider"
	}

	t := g.target(args.Module, "provider", scaffold.Studly(args.Name))
	return g.write(ctx, t, stub, scaffold.NewReplacements(
		"NAMESPACE", t.Namespace,
		"CLASS", t.Class,
		"MODULE", args.Module,
		"LOWER_NAME", strings.ToLower(args.Module),
	))
}

// MakeRouteProvider generates the RouteServiceProvider of a module.
func (g *Generator) MakeRouteProvider(ctx context.Context, args secondary.RouteProviderArgs) (string, error) {
	t := g.target(args.Module, "provider", "RouteServiceProvider")
	return g.write(ctx, t, "route-provider", scaffold.NewReplacements(
		"NAMESPACE", t.Namespace,
		"MODULE_NAMESPACE", g.config.Current().Namespace,
		"MODULE", args.Module,
	))
}
