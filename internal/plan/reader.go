// Package plan reads the folder and file generation plans.
package plan

import "github.com/example/acacia/internal/config"

// FolderEntry is one folder to create inside a module.
type FolderEntry struct {
	Key       string
	Path      string // module-root-relative
	Generate  bool
	Namespace string // PHP namespace of classes generated into the folder
}

// FileEntry is one stub rendered into a module file.
type FileEntry struct {
	StubID string
	Target string // module-root-relative
}

// Reader exposes the generation plan of the current configuration.
// Every call reads through the provider, so toggles changed on disk take
// effect on the next read.
type Reader struct {
	provider config.Provider
}

// NewReader creates a Reader over provider.
func NewReader(provider config.Provider) *Reader {
	return &Reader{provider: provider}
}

// ListFolders returns the enabled folder entries in configured order.
func (r *Reader) ListFolders() []FolderEntry {
	cfg := r.current()
	if cfg == nil {
		return nil
	}
	var out []FolderEntry
	for _, p := range cfg.Paths.Generator {
		if !p.Generate {
			continue
		}
		out = append(out, toFolder(p))
	}
	return out
}

// ListFiles returns the enabled file entries in configured order.
func (r *Reader) ListFiles() []FileEntry {
	cfg := r.current()
	if cfg == nil {
		return nil
	}
	var out []FileEntry
	for _, f := range cfg.Stubs.Files {
		if !f.Enabled() {
			continue
		}
		out = append(out, FileEntry{StubID: f.Stub, Target: f.Target})
	}
	return out
}

// Folder returns the entry for key. Unknown keys are reported as disabled.
func (r *Reader) Folder(key string) FolderEntry {
	cfg := r.current()
	if cfg == nil {
		return FolderEntry{Key: key}
	}
	p, ok := cfg.GeneratorPath(key)
	if !ok {
		return FolderEntry{Key: key}
	}
	return toFolder(p)
}

// Enabled reports whether the folder entry for key is switched on.
func (r *Reader) Enabled(key string) bool {
	return r.Folder(key).Generate
}

func (r *Reader) current() *config.Config {
	if r.provider == nil {
		return nil
	}
	return r.provider.Current()
}

func toFolder(p config.GeneratorPath) FolderEntry {
	return FolderEntry{
		Key:       p.Key,
		Path:      p.Path,
		Generate:  p.Generate,
		Namespace: p.ResolvedNamespace(),
	}
}
