package generators_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/example/acacia/internal/adapters/filesystem"
	"github.com/example/acacia/internal/adapters/generators"
	"github.com/example/acacia/internal/config"
	"github.com/example/acacia/internal/plan"
	"github.com/example/acacia/internal/ports/secondary"
	"github.com/example/acacia/internal/scaffold"
	"github.com/example/acacia/internal/templates"
)

func newTestGenerator(t *testing.T) (*generators.Generator, *filesystem.ModuleTree) {
	t.Helper()

	tree, err := filesystem.NewModuleTree(t.TempDir())
	if err != nil {
		t.Fatalf("failed to create module tree: %v", err)
	}
	provider := config.NewStaticProvider(nil)
	gen := generators.New(tree, plan.NewReader(provider), scaffold.NewRenderer(templates.Embedded()), provider)
	return gen, tree
}

func invoiceSchematic() *scaffold.Schematic {
	return &scaffold.Schematic{
		ModelClass: "Invoice",
		Fields: []scaffold.Field{
			{Name: "number", Title: "Number", HTMLType: scaffold.HTMLText, InList: true, IsVue: true},
			{Name: "paid", Title: "Paid", HTMLType: scaffold.HTMLSwitch, InList: false, IsVue: true},
		},
	}
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read %s: %v", path, err)
	}
	return string(data)
}

func TestMakeModel(t *testing.T) {
	gen, tree := newTestGenerator(t)

	path, err := gen.MakeModel(context.Background(), secondary.ModelArgs{
		Name:      "Invoice",
		Module:    "Invoices",
		Schematic: invoiceSchematic(),
	})
	if err != nil {
		t.Fatalf("MakeModel failed: %v", err)
	}

	want := filepath.Join(tree.ModulePath("Invoices"), "Entities", "Invoice.php")
	if path != want {
		t.Errorf("path = %s, want %s", path, want)
	}

	content := readFile(t, path)
	for _, s := range []string{
		`namespace Acacia\Invoices\Entities;`,
		`class Invoice extends Model`,
		`protected $table = 'invoices';`,
		`protected $fillable = ['number', 'paid'];`,
		`protected $casts = ['paid' => 'boolean'];`,
		`\Acacia\Invoices\Database\factories\InvoiceFactory::new()`,
	} {
		if !strings.Contains(content, s) {
			t.Errorf("model missing %q:\n%s", s, content)
		}
	}
}

func TestMakeFactory(t *testing.T) {
	gen, tree := newTestGenerator(t)

	path, err := gen.MakeFactory(context.Background(), secondary.FactoryArgs{
		Name:      "Invoice",
		Module:    "Invoices",
		Schematic: invoiceSchematic(),
	})
	if err != nil {
		t.Fatalf("MakeFactory failed: %v", err)
	}
	if path != filepath.Join(tree.ModulePath("Invoices"), "Database", "factories", "InvoiceFactory.php") {
		t.Errorf("unexpected path %s", path)
	}

	content := readFile(t, path)
	for _, s := range []string{
		`class InvoiceFactory extends Factory`,
		`protected $model = \Acacia\Invoices\Entities\Invoice::class;`,
		`'number' => $this->faker->word(),`,
		`'paid' => $this->faker->boolean(),`,
	} {
		if !strings.Contains(content, s) {
			t.Errorf("factory missing %q:\n%s", s, content)
		}
	}
}

func TestMakeController(t *testing.T) {
	gen, tree := newTestGenerator(t)
	ctx := context.Background()

	path, err := gen.MakeController(ctx, secondary.ControllerArgs{
		Name:      "InvoiceController",
		Module:    "Invoices",
		Schematic: invoiceSchematic(),
	})
	if err != nil {
		t.Fatalf("MakeController failed: %v", err)
	}
	content := readFile(t, path)
	for _, s := range []string{
		`namespace Acacia\Invoices\Http\Controllers;`,
		`use Acacia\Invoices\Entities\Invoice;`,
		`Inertia::render('Invoices::Index'`,
		`route('acacia.backend.invoices.index')`,
		`['number' => ['nullable', 'string', 'max:255'], 'paid' => ['boolean']]`,
	} {
		if !strings.Contains(content, s) {
			t.Errorf("controller missing %q:\n%s", s, content)
		}
	}

	path, err = gen.MakeController(ctx, secondary.ControllerArgs{
		Name:      "Api/InvoiceController",
		Module:    "Invoices",
		API:       true,
		Schematic: invoiceSchematic(),
	})
	if err != nil {
		t.Fatalf("MakeController (api) failed: %v", err)
	}
	if path != filepath.Join(tree.ModulePath("Invoices"), "Http", "Controllers", "Api", "InvoiceController.php") {
		t.Errorf("unexpected api controller path %s", path)
	}
	content = readFile(t, path)
	if !strings.Contains(content, `namespace Acacia\Invoices\Http\Controllers\Api;`) {
		t.Errorf("api controller namespace wrong:\n%s", content)
	}
	if !strings.Contains(content, `foreach (['number'] as $column)`) {
		t.Errorf("api controller searchable columns wrong:\n%s", content)
	}
}

func TestMakeController_WithoutSchematic(t *testing.T) {
	gen, _ := newTestGenerator(t)

	path, err := gen.MakeController(context.Background(), secondary.ControllerArgs{Name: "Invoice", Module: "Invoices"})
	if err != nil {
		t.Fatalf("MakeController failed: %v", err)
	}
	if filepath.Base(path) != "InvoiceController.php" {
		t.Errorf("unexpected file %s", path)
	}
	content := readFile(t, path)
	if !strings.Contains(content, `$request->validate([])`) {
		t.Errorf("expected empty rules:\n%s", content)
	}
}

func TestMakeSeederAndProviders(t *testing.T) {
	gen, tree := newTestGenerator(t)
	ctx := context.Background()
	root := tree.ModulePath("Invoices")

	path, err := gen.MakeSeeder(ctx, secondary.SeederArgs{Name: "Invoices", Module: "Invoices", Master: true})
	if err != nil {
		t.Fatalf("MakeSeeder failed: %v", err)
	}
	if path != filepath.Join(root, "Database", "Seeders", "InvoicesDatabaseSeeder.php") {
		t.Errorf("unexpected seeder path %s", path)
	}
	if !strings.Contains(readFile(t, path), `namespace Acacia\Invoices\Database\Seeders;`) {
		t.Error("seeder namespace wrong")
	}

	path, err = gen.MakeProvider(ctx, secondary.ProviderArgs{Name: "InvoicesServiceProvider", Module: "Invoices", Master: true})
	if err != nil {
		t.Fatalf("MakeProvider failed: %v", err)
	}
	content := readFile(t, path)
	if !strings.Contains(content, "class InvoicesServiceProvider extends ServiceProvider") ||
		!strings.Contains(content, "RouteServiceProvider::class") {
		t.Errorf("provider content wrong:\n%s", content)
	}

	path, err = gen.MakeRouteProvider(ctx, secondary.RouteProviderArgs{Module: "Invoices"})
	if err != nil {
		t.Fatalf("MakeRouteProvider failed: %v", err)
	}
	if path != filepath.Join(root, "Providers", "RouteServiceProvider.php") {
		t.Errorf("unexpected route provider path %s", path)
	}
	if !strings.Contains(readFile(t, path), `'Acacia\Invoices\Http\Controllers'`) {
		t.Error("route provider controller namespace wrong")
	}
}

func TestMakeProvider_NotMaster(t *testing.T) {
	gen, _ := newTestGenerator(t)

	path, err := gen.MakeProvider(context.Background(), secondary.ProviderArgs{Name: "EventServiceProvider", Module: "Invoices"})
	if err != nil {
		t.Fatalf("MakeProvider failed: %v", err)
	}
	if !strings.HasSuffix(path, "EventServiceProvider.php") {
		t.Errorf("unexpected provider path %s", path)
	}
	content := readFile(t, path)
	if !strings.Contains(content, "class EventServiceProvider extends ServiceProvider") {
		t.Errorf("expected plain provider class, got:\n%s", content)
	}
	if strings.Contains(content, "RouteServiceProvider") || strings.Contains(content, "loadMigrationsFrom") {
		t.Error("plain provider should not register routes or migrations")
	}
}

func TestGenerator_RefusesOverwrite(t *testing.T) {
	gen, _ := newTestGenerator(t)
	ctx := context.Background()
	args := secondary.ModelArgs{Name: "Invoice", Module: "Invoices"}

	if _, err := gen.MakeModel(ctx, args); err != nil {
		t.Fatalf("MakeModel failed: %v", err)
	}
	_, err := gen.MakeModel(ctx, args)
	if !errors.Is(err, generators.ErrFileExists) {
		t.Errorf("expected ErrFileExists, got %v", err)
	}
}
