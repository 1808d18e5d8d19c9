package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrNoConfig is returned when a project has no .acacia/config.yaml.
var ErrNoConfig = errors.New("no acacia config found")

const (
	dirName  = ".acacia"
	fileName = "config.yaml"
)

// Config represents the project configuration for the module scaffolder.
type Config struct {
	Version      string          `yaml:"version"`
	Namespace    string          `yaml:"namespace"`     // root PHP namespace of generated modules
	ModulesPath  string          `yaml:"modules_path"`  // directory holding generated modules
	DatabasePath string          `yaml:"database_path"` // sqlite store for menus, statuses, schematics
	Active       bool            `yaml:"active"`        // activate modules after generation
	Strict       bool            `yaml:"strict"`        // fail on placeholders with no computation
	Composer     ComposerConfig  `yaml:"composer"`
	Paths        PathsConfig     `yaml:"paths"`
	Stubs        StubsConfig     `yaml:"stubs"`
	Formatter    FormatterConfig `yaml:"formatter"`
	Logging      LoggingConfig   `yaml:"logging"`
}

// ComposerConfig holds package metadata written into composer.json.
type ComposerConfig struct {
	Vendor string       `yaml:"vendor"`
	Author AuthorConfig `yaml:"author"`
}

// AuthorConfig identifies the author of generated packages.
type AuthorConfig struct {
	Name  string `yaml:"name"`
	Email string `yaml:"email"`
}

// PathsConfig holds the folder plan.
type PathsConfig struct {
	Generator []GeneratorPath `yaml:"generator"`
}

// GeneratorPath is one row of the folder plan.
type GeneratorPath struct {
	Key       string `yaml:"key"`
	Path      string `yaml:"path"`
	Generate  bool   `yaml:"generate"`
	Namespace string `yaml:"namespace,omitempty"`
}

// ResolvedNamespace returns the configured namespace, or the path with
// slashes turned into namespace separators.
func (p GeneratorPath) ResolvedNamespace() string {
	if p.Namespace != "" {
		return p.Namespace
	}
	return strings.ReplaceAll(p.Path, "/", "\\")
}

// StubsConfig holds the file plan and per-stub placeholder tables.
type StubsConfig struct {
	Path         string              `yaml:"path,omitempty"` // directory overriding embedded stubs
	Gitkeep      bool                `yaml:"gitkeep"`
	Files        []StubFile          `yaml:"files"`
	Replacements map[string][]string `yaml:"replacements"`
}

// StubFile is one row of the file plan.
type StubFile struct {
	Stub     string `yaml:"stub"`
	Target   string `yaml:"target"`
	Generate *bool  `yaml:"generate,omitempty"`
}

// Enabled reports whether the entry should be materialized.
// Entries without an explicit toggle are enabled.
func (f StubFile) Enabled() bool {
	if f.Target == "" {
		return false
	}
	return f.Generate == nil || *f.Generate
}

// FormatterConfig configures the best-effort formatter run after generation.
type FormatterConfig struct {
	Enabled bool     `yaml:"enabled"`
	Command string   `yaml:"command"`
	Args    []string `yaml:"args"`
}

// LoggingConfig configures logging.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

// Path returns the config file location for a project directory.
func Path(dir string) string {
	return filepath.Join(dir, dirName, fileName)
}

// Load reads .acacia/config.yaml from the specified directory.
// Keys missing from the file keep their built-in defaults.
func Load(dir string) (*Config, error) {
	data, err := os.ReadFile(Path(dir))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w in %s", ErrNoConfig, dir)
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return cfg, nil
}

// LoadOrDefault reads the project config, falling back to defaults when the
// project has none.
func LoadOrDefault(dir string) (*Config, error) {
	cfg, err := Load(dir)
	if errors.Is(err, ErrNoConfig) {
		return Default(), nil
	}
	return cfg, err
}

// Save writes config.yaml to directory
func Save(dir string, cfg *Config) error {
	acaciaDir := filepath.Join(dir, dirName)
	if err := os.MkdirAll(acaciaDir, 0755); err != nil {
		return fmt.Errorf("failed to create %s dir: %w", dirName, err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(Path(dir), data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// ReplacementKeys returns a copy of the placeholder list for a stub.
func (c *Config) ReplacementKeys(stub string) []string {
	keys, ok := c.Stubs.Replacements[stub]
	if !ok {
		return nil
	}
	return append([]string(nil), keys...)
}

// GeneratorPath returns the folder plan row for key.
func (c *Config) GeneratorPath(key string) (GeneratorPath, bool) {
	for _, p := range c.Paths.Generator {
		if p.Key == key {
			return p, true
		}
	}
	return GeneratorPath{}, false
}

// DefaultDatabasePath returns ~/.acacia/acacia.db.
func DefaultDatabasePath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, dirName, "acacia.db"), nil
}
