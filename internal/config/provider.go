package config

import (
	"errors"
	"sync"
)

// Provider hands out the configuration for the current read.
type Provider interface {
	Current() *Config
}

// StaticProvider always returns the same configuration value.
type StaticProvider struct {
	cfg *Config
}

// NewStaticProvider wraps cfg. A nil cfg yields the defaults.
func NewStaticProvider(cfg *Config) *StaticProvider {
	if cfg == nil {
		cfg = Default()
	}
	return &StaticProvider{cfg: cfg}
}

// Current returns the wrapped configuration.
func (p *StaticProvider) Current() *Config {
	return p.cfg
}

// FileProvider re-reads the project config on every call so plan toggles
// can be switched without restarting. A missing file yields the defaults. A
// file that cannot be read or parsed keeps the last good value and is
// reported by Err; callers check Load once before relying on Current.
type FileProvider struct {
	dir string

	mu   sync.Mutex
	last *Config
	err  error
}

// NewFileProvider creates a provider reading from dir/.acacia/config.yaml.
func NewFileProvider(dir string) *FileProvider {
	return &FileProvider{dir: dir, last: Default()}
}

// Load reads the config from disk and returns any error other than a
// missing file.
func (p *FileProvider) Load() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.reload()
}

// Current loads the config from disk.
func (p *FileProvider) Current() *Config {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.reload()
	return p.last
}

// Err returns the error of the most recent read, if any.
func (p *FileProvider) Err() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.err
}

func (p *FileProvider) reload() error {
	cfg, err := Load(p.dir)
	switch {
	case err == nil:
		p.last = cfg
	case errors.Is(err, ErrNoConfig):
		p.last = Default()
		err = nil
	}
	p.err = err
	return err
}

var (
	_ Provider = (*StaticProvider)(nil)
	_ Provider = (*FileProvider)(nil)
)
