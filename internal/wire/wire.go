// Package wire provides dependency injection for the acacia application.
// It creates singleton services with lazy initialization.
package wire

import (
	"database/sql"
	"io"
	"log"
	"os"
	"path/filepath"
	"sync"

	"go.uber.org/zap"

	cliadapter "github.com/example/acacia/internal/adapters/cli"
	"github.com/example/acacia/internal/adapters/filesystem"
	"github.com/example/acacia/internal/adapters/formatter"
	"github.com/example/acacia/internal/adapters/generators"
	"github.com/example/acacia/internal/adapters/sqlite"
	"github.com/example/acacia/internal/app"
	"github.com/example/acacia/internal/config"
	"github.com/example/acacia/internal/db"
	"github.com/example/acacia/internal/logging"
	"github.com/example/acacia/internal/plan"
	"github.com/example/acacia/internal/ports/primary"
	"github.com/example/acacia/internal/ports/secondary"
	"github.com/example/acacia/internal/scaffold"
	"github.com/example/acacia/internal/templates"
)

var (
	projectDir string
	verbose    bool

	configProvider   config.Provider
	logger           *zap.Logger
	moduleService    primary.ModuleService
	menuService      primary.MenuService
	schematicService primary.SchematicService
	stubService      primary.StubService
	once             sync.Once
)

// SetProjectDir sets the project root holding .acacia/config.yaml.
// Must be called before any service is requested.
func SetProjectDir(dir string) {
	projectDir = dir
}

// SetVerbose forces debug logging regardless of the configured level.
func SetVerbose(v bool) {
	verbose = v
}

// ProjectDir returns the project root, defaulting to the working directory.
func ProjectDir() string {
	if projectDir != "" {
		return projectDir
	}
	wd, err := os.Getwd()
	if err != nil {
		return "."
	}
	return wd
}

// Config returns the live configuration provider.
func Config() config.Provider {
	once.Do(initServices)
	return configProvider
}

// Logger returns the shared logger.
func Logger() *zap.Logger {
	once.Do(initServices)
	return logger
}

// ModuleService returns the singleton ModuleService instance.
func ModuleService() primary.ModuleService {
	once.Do(initServices)
	return moduleService
}

// MenuService returns the singleton MenuService instance.
func MenuService() primary.MenuService {
	once.Do(initServices)
	return menuService
}

// SchematicService returns the singleton SchematicService instance.
func SchematicService() primary.SchematicService {
	once.Do(initServices)
	return schematicService
}

// StubService returns the singleton StubService instance.
func StubService() primary.StubService {
	once.Do(initServices)
	return stubService
}

// initServices initializes all services and their dependencies.
// This is called once via sync.Once.
func initServices() {
	dir := ProjectDir()
	provider := config.NewFileProvider(dir)
	if err := provider.Load(); err != nil {
		log.Fatalf("failed to load config %s: %v", config.Path(dir), err)
	}
	configProvider = provider
	cfg := configProvider.Current()

	level := cfg.Logging.Level
	if verbose {
		level = "debug"
	}
	var err error
	logger, err = logging.New(level)
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}

	// Get database connection
	dbPath, err := DatabasePath(dir, cfg)
	if err != nil {
		log.Fatalf("failed to resolve database path: %v", err)
	}
	db.SetPath(dbPath)
	database, err := db.GetDB()
	if err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}

	// Create repository adapters (secondary ports) - sqlite adapters with injected DB
	menuRepo := sqlite.NewMenuRepository(database)
	statusRepo := sqlite.NewModuleStatusRepository(database)
	schematicRepo := sqlite.NewSchematicRepository(database)
	moduleLogRepo := sqlite.NewModuleLogRepository(database)
	logWriter := sqlite.NewLogWriterAdapter(moduleLogRepo)

	tree, err := filesystem.NewModuleTree(ResolvePath(dir, cfg.ModulesPath))
	if err != nil {
		log.Fatalf("failed to initialize module tree: %v", err)
	}

	catalog := StubCatalog(dir, cfg)
	renderer := scaffold.NewRenderer(catalog)
	reader := plan.NewReader(configProvider)
	gen := generators.New(tree, reader, renderer, configProvider)

	var post secondary.PostProcessor = formatter.Noop{}
	if cfg.Formatter.Enabled && cfg.Formatter.Command != "" {
		post = formatter.NewCommand(dir, cfg.Formatter.Command, cfg.Formatter.Args, logger)
	}

	// Create services (primary ports implementation)
	moduleService = app.NewModuleService(
		configProvider,
		reader,
		renderer,
		tree,
		app.ModuleGenerators{
			Seeder:     gen,
			Provider:   gen,
			Factory:    gen,
			Model:      gen,
			Controller: gen,
		},
		menuRepo,
		statusRepo,
		post,
		moduleLogRepo,
		logWriter,
		logger,
	)
	menuService = app.NewMenuService(menuRepo)
	schematicService = app.NewSchematicService(schematicRepo)
	stubService = app.NewStubService(configProvider, reader, catalog)
}

// StubCatalog returns the embedded stubs, overlaid by the project's stub
// directory when one is configured.
func StubCatalog(dir string, cfg *config.Config) secondary.StubCatalog {
	if cfg.Stubs.Path == "" {
		return templates.Embedded()
	}
	return templates.Overlay(ResolvePath(dir, cfg.Stubs.Path), templates.Embedded())
}

// DatabasePath returns the store location for a project config.
func DatabasePath(dir string, cfg *config.Config) (string, error) {
	if cfg.DatabasePath != "" {
		return ResolvePath(dir, cfg.DatabasePath), nil
	}
	return db.GetDBPath()
}

// Database returns the shared connection, opened at the configured path.
func Database() (*sql.DB, error) {
	once.Do(initServices)
	return db.GetDB()
}

// ResolvePath anchors a relative config path at the project root.
func ResolvePath(dir, path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(dir, path)
}

// ModuleAdapter returns a new ModuleAdapter writing to stdout.
// Each call creates a new adapter (adapters are stateless translators).
func ModuleAdapter() *cliadapter.ModuleAdapter {
	return ModuleAdapterWithOutput(os.Stdout)
}

// ModuleAdapterWithOutput returns a new ModuleAdapter writing to the given output.
// This variant allows testing or alternate output destinations.
func ModuleAdapterWithOutput(out io.Writer) *cliadapter.ModuleAdapter {
	once.Do(initServices)
	return cliadapter.NewModuleAdapter(moduleService, out)
}

// MenuAdapter returns a new MenuAdapter writing to stdout.
func MenuAdapter() *cliadapter.MenuAdapter {
	once.Do(initServices)
	return cliadapter.NewMenuAdapter(menuService, os.Stdout)
}

// SchematicAdapter returns a new SchematicAdapter writing to stdout.
func SchematicAdapter() *cliadapter.SchematicAdapter {
	once.Do(initServices)
	return cliadapter.NewSchematicAdapter(schematicService, os.Stdout)
}

// StubAdapter returns a new StubAdapter writing to stdout.
func StubAdapter() *cliadapter.StubAdapter {
	once.Do(initServices)
	return cliadapter.NewStubAdapter(stubService, os.Stdout)
}
