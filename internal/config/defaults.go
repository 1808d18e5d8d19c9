package config

// Default returns the built-in configuration. Every generated module uses
// this plan unless the project overrides it in .acacia/config.yaml.
func Default() *Config {
	return &Config{
		Version:     "1",
		Namespace:   "Acacia",
		ModulesPath: "acacia",
		Active:      true,
		Composer: ComposerConfig{
			Vendor: "savannabits",
			Author: AuthorConfig{
				Name:  "Savannabits",
				Email: "hello@savannabits.com",
			},
		},
		Paths: PathsConfig{
			Generator: []GeneratorPath{
				{Key: "config", Path: "Config", Generate: true},
				{Key: "command", Path: "Console", Generate: false},
				{Key: "migration", Path: "Database/Migrations", Generate: true},
				{Key: "seeder", Path: "Database/Seeders", Generate: true, Namespace: "Database\\Seeders"},
				{Key: "factory", Path: "Database/factories", Generate: true},
				{Key: "model", Path: "Entities", Generate: true},
				{Key: "routes", Path: "Routes", Generate: true},
				{Key: "controller", Path: "Http/Controllers", Generate: true},
				{Key: "api-controller", Path: "Http/Controllers/Api", Generate: false},
				{Key: "filter", Path: "Http/Middleware", Generate: false},
				{Key: "request", Path: "Http/Requests", Generate: true},
				{Key: "provider", Path: "Providers", Generate: true},
				{Key: "assets", Path: "Resources/assets", Generate: false},
				{Key: "js", Path: "Resources/js/Pages", Generate: true},
				{Key: "lang", Path: "Resources/lang", Generate: false},
				{Key: "views", Path: "Resources/views", Generate: false},
				{Key: "test", Path: "Tests/Unit", Generate: true},
				{Key: "test-feature", Path: "Tests/Feature", Generate: true},
				{Key: "repository", Path: "Repositories", Generate: false},
				{Key: "event", Path: "Events", Generate: false},
				{Key: "listener", Path: "Listeners", Generate: false},
				{Key: "policies", Path: "Policies", Generate: true},
				{Key: "rules", Path: "Rules", Generate: false},
				{Key: "jobs", Path: "Jobs", Generate: false},
				{Key: "emails", Path: "Emails", Generate: false},
				{Key: "notifications", Path: "Notifications", Generate: false},
				{Key: "resource", Path: "Transformers", Generate: false},
			},
		},
		Stubs: StubsConfig{
			Gitkeep: true,
			Files: []StubFile{
				{Stub: "routes/web", Target: "Routes/web.php"},
				{Stub: "routes/api", Target: "Routes/api.php"},
				{Stub: "scaffold/config", Target: "Config/config.php"},
				{Stub: "composer", Target: "composer.json"},
				{Stub: "package", Target: "package.json"},
				{Stub: "js/index", Target: "Resources/js/Pages/Index.vue"},
				{Stub: "js/create", Target: "Resources/js/Pages/Create.vue"},
				{Stub: "js/edit", Target: "Resources/js/Pages/Edit.vue"},
			},
			Replacements: map[string][]string{
				"routes/web":      {"LOWER_NAME", "STUDLY_NAME", "STUDLY_SINGULAR_NAME", "MODULE_NAMESPACE"},
				"routes/api":      {"LOWER_NAME", "STUDLY_NAME", "STUDLY_SINGULAR_NAME", "MODULE_NAMESPACE"},
				"json":            {"LOWER_NAME", "STUDLY_NAME", "MODULE_NAMESPACE", "PROVIDER_NAMESPACE"},
				"scaffold/config": {"STUDLY_NAME"},
				"composer":        {"LOWER_NAME", "STUDLY_NAME", "VENDOR", "AUTHOR_NAME", "AUTHOR_EMAIL", "MODULE_NAMESPACE", "PROVIDER_NAMESPACE"},
				"package":         {"LOWER_NAME"},
				"js/index":        {"LOWER_NAME", "STUDLY_NAME", "JS_INDEX_TITLE", "JS_INDEX_COLUMNS", "JS_INDEX_SEARCHABLE_COLS"},
				"js/create":       {"LOWER_NAME", "STUDLY_NAME", "JS_CREATE_TITLE", "CREATE_COMPONENT_IMPORTS", "CREATE_FORM_FIELDS", "CREATE_FORM_OBJECT"},
				"js/edit":         {"LOWER_NAME", "STUDLY_NAME", "JS_EDIT_TITLE", "CREATE_COMPONENT_IMPORTS", "CREATE_FORM_FIELDS", "CREATE_FORM_OBJECT"},
			},
		},
		Formatter: FormatterConfig{
			Enabled: true,
			Command: "npx",
			Args:    []string{"prettier", "--write"},
		},
		Logging: LoggingConfig{Level: "info"},
	}
}
