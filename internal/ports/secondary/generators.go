package secondary

import (
	"context"

	"github.com/example/acacia/internal/scaffold"
)

// SeederArgs contains parameters for generating a database seeder.
type SeederArgs struct {
	Name   string // seeder base name, e.g. "Invoices"
	Module string // module plural name
	Master bool   // generate the module's master seeder
}

// ProviderArgs contains parameters for generating a service provider.
type ProviderArgs struct {
	Name   string // class name, e.g. "InvoicesServiceProvider"
	Module string
	Master bool // register config, views and routes of the module
}

// RouteProviderArgs contains parameters for generating the route provider.
type RouteProviderArgs struct {
	Module string
}

// FactoryArgs contains parameters for generating a model factory.
type FactoryArgs struct {
	Name      string // model class the factory builds
	Module    string
	Schematic *scaffold.Schematic // optional; drives the definition
}

// ModelArgs contains parameters for generating a model.
type ModelArgs struct {
	Name      string
	Module    string
	Schematic *scaffold.Schematic // optional; drives fillable and casts
}

// ControllerArgs contains parameters for generating a controller.
type ControllerArgs struct {
	Name      string // class name, may carry a sub-path such as "Api/InvoiceController"
	Module    string
	API       bool // JSON controller instead of page controller
	Schematic *scaffold.Schematic
}

// SeederGenerator generates module seeders.
type SeederGenerator interface {
	MakeSeeder(ctx context.Context, args SeederArgs) (string, error)
}

// ProviderGenerator generates module service and route providers.
type ProviderGenerator interface {
	MakeProvider(ctx context.Context, args ProviderArgs) (string, error)
	MakeRouteProvider(ctx context.Context, args RouteProviderArgs) (string, error)
}

// FactoryGenerator generates model factories.
type FactoryGenerator interface {
	MakeFactory(ctx context.Context, args FactoryArgs) (string, error)
}

// ModelGenerator generates models.
type ModelGenerator interface {
	MakeModel(ctx context.Context, args ModelArgs) (string, error)
}

// ControllerGenerator generates controllers.
type ControllerGenerator interface {
	MakeController(ctx context.Context, args ControllerArgs) (string, error)
}

// PostProcessor runs cosmetic tooling over a generated module.
type PostProcessor interface {
	PostProcess(ctx context.Context, path string) error
}
