package app

import (
	"github.com/example/acacia/internal/config"
	"github.com/example/acacia/internal/plan"
	"github.com/example/acacia/internal/scaffold"
)

const defaultProviderNamespace = "Providers"

// scaffolding builds placeholder resolvers from the live configuration.
type scaffolding struct {
	config   config.Provider
	plan     *plan.Reader
	renderer *scaffold.Renderer
}

// snapshot returns the configuration for one run. A provider without a
// readable config yields the built-in defaults.
func (s scaffolding) snapshot() *config.Config {
	if s.config == nil {
		return config.Default()
	}
	if cfg := s.config.Current(); cfg != nil {
		return cfg
	}
	return config.Default()
}

func (s scaffolding) context(cfg *config.Config, name string, schematic *scaffold.Schematic) *scaffold.Context {
	providerNS := s.plan.Folder("provider").Namespace
	if providerNS == "" {
		providerNS = defaultProviderNamespace
	}

	return &scaffold.Context{
		Name:              name,
		Schematic:         schematic,
		Vendor:            cfg.Composer.Vendor,
		Namespace:         cfg.Namespace,
		AuthorName:        cfg.Composer.Author.Name,
		AuthorEmail:       cfg.Composer.Author.Email,
		ProviderNamespace: providerNS,
		Renderer:          s.renderer,
	}
}

func (s scaffolding) resolver(cfg *config.Config, name string, schematic *scaffold.Schematic) *scaffold.Resolver {
	r := scaffold.NewResolver(s.context(cfg, name, schematic), cfg.Stubs.Replacements)
	r.SetStrict(cfg.Strict)
	return r
}
