// Package templates provides the stubs modules are rendered from.
package templates

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/example/acacia/internal/scaffold"
)

//go:embed stubs
var stubFiles embed.FS

const stubExt = ".stub"

// EmbeddedSource serves the stubs compiled into the binary.
type EmbeddedSource struct{}

// Embedded returns the built-in stub source.
func Embedded() EmbeddedSource {
	return EmbeddedSource{}
}

// Load returns the content of stubs/<stubID>.stub.
func (EmbeddedSource) Load(stubID string) (string, error) {
	content, err := stubFiles.ReadFile("stubs/" + strings.TrimPrefix(stubID, "/") + stubExt)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("%w: %s", scaffold.ErrStubNotFound, stubID)
		}
		return "", err
	}
	return string(content), nil
}

// List returns the ids of every embedded stub, sorted.
func (EmbeddedSource) List() ([]string, error) {
	var ids []string
	err := fs.WalkDir(stubFiles, "stubs", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(path, stubExt) {
			return nil
		}
		ids = append(ids, strings.TrimSuffix(strings.TrimPrefix(path, "stubs/"), stubExt))
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(ids)
	return ids, nil
}

// OverlaySource reads stubs from a project directory first and falls back to
// another source for anything the directory does not override.
type OverlaySource struct {
	dir      string
	fallback scaffold.StubSource
}

// Overlay creates an OverlaySource. An empty dir disables the overlay.
func Overlay(dir string, fallback scaffold.StubSource) *OverlaySource {
	return &OverlaySource{dir: dir, fallback: fallback}
}

// Load returns the project stub when present, otherwise the fallback stub.
func (o *OverlaySource) Load(stubID string) (string, error) {
	if o.dir != "" {
		path := filepath.Join(o.dir, filepath.FromSlash(strings.TrimPrefix(stubID, "/"))+stubExt)
		content, err := os.ReadFile(path)
		if err == nil {
			return string(content), nil
		}
		if !os.IsNotExist(err) {
			return "", fmt.Errorf("failed to read stub %s: %w", path, err)
		}
	}
	return o.fallback.Load(stubID)
}

// List returns the ids of the project stubs merged with those of the
// fallback when it can list them, sorted.
func (o *OverlaySource) List() ([]string, error) {
	seen := make(map[string]bool)
	if l, ok := o.fallback.(interface{ List() ([]string, error) }); ok {
		ids, err := l.List()
		if err != nil {
			return nil, err
		}
		for _, id := range ids {
			seen[id] = true
		}
	}

	if o.dir != "" {
		err := filepath.WalkDir(o.dir, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() || !strings.HasSuffix(path, stubExt) {
				return nil
			}
			rel, err := filepath.Rel(o.dir, path)
			if err != nil {
				return err
			}
			seen[strings.TrimSuffix(filepath.ToSlash(rel), stubExt)] = true
			return nil
		})
		if err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to list stubs in %s: %w", o.dir, err)
		}
	}

	ids := make([]string, 0, len(seen))
	for id := range seen {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids, nil
}

var (
	_ scaffold.StubSource = EmbeddedSource{}
	_ scaffold.StubSource = (*OverlaySource)(nil)
)
