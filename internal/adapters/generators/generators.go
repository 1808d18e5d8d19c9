// Package generators renders the PHP classes of a module (seeders,
// providers, factories, models, controllers) from stubs.
package generators

import (
	"context"
	"errors"
	"fmt"
	"path"
	"path/filepath"
	"strings"

	"github.com/example/acacia/internal/config"
	"github.com/example/acacia/internal/plan"
	"github.com/example/acacia/internal/ports/secondary"
	"github.com/example/acacia/internal/scaffold"
)

// ErrFileExists is returned when a generator would overwrite a file.
var ErrFileExists = errors.New("file already exists")

// Generator implements every sub-generator port by rendering stubs into the
// module tree.
type Generator struct {
	fs       secondary.FileSystem
	plan     *plan.Reader
	renderer *scaffold.Renderer
	config   config.Provider
}

// New creates a Generator.
func New(fs secondary.FileSystem, reader *plan.Reader, renderer *scaffold.Renderer, cfg config.Provider) *Generator {
	return &Generator{fs: fs, plan: reader, renderer: renderer, config: cfg}
}

// classTarget locates a class inside a module folder. name may carry a
// sub-path ("Api/InvoiceController").
type classTarget struct {
	Class     string // short class name
	Namespace string // fully qualified namespace, unescaped
	Path      string // absolute file path
}

func (g *Generator) target(module, folderKey, name string) classTarget {
	folder := g.plan.Folder(folderKey)

	name = strings.Trim(strings.ReplaceAll(name, `\`, "/"), "/")
	dir, class := path.Split(name)
	dir = strings.Trim(dir, "/")

	ns := []string{g.config.Current().Namespace, module}
	if folder.Namespace != "" {
		ns = append(ns, folder.Namespace)
	}
	if dir != "" {
		ns = append(ns, strings.ReplaceAll(dir, "/", `\`))
	}

	return classTarget{
		Class:     class,
		Namespace: strings.Join(ns, `\`),
		Path:      filepath.Join(g.fs.ModulePath(module), filepath.FromSlash(folder.Path), filepath.FromSlash(dir), class+".php"),
	}
}

// namespaceOf returns the namespace of classes in a module folder.
func (g *Generator) namespaceOf(module, folderKey string) string {
	return g.target(module, folderKey, "X").Namespace
}

// write renders stubID into t.Path, refusing to overwrite.
func (g *Generator) write(ctx context.Context, t classTarget, stubID string, r scaffold.Replacements) (string, error) {
	if _, err := g.fs.Get(ctx, t.Path); err == nil {
		return "", fmt.Errorf("%w: %s", ErrFileExists, t.Path)
	}

	content, err := g.renderer.Render(stubID, r)
	if err != nil {
		return "", err
	}

	if dir := filepath.Dir(t.Path); !g.fs.IsDirectory(ctx, dir) {
		if err := g.fs.MakeDirectory(ctx, dir, 0775, true); err != nil {
			return "", err
		}
	}

	if err := g.fs.Put(ctx, t.Path, content); err != nil {
		return "", err
	}
	return t.Path, nil
}

// Stubs lists every stub the generators render.
var Stubs = []string{
	"controller",
	"controller-api",
	"factory",
	"model",
	"provider",
	"provider-plain",
	"route-provider",
	"seeder",
}

var (
	_ secondary.SeederGenerator     = (*Generator)(nil)
	_ secondary.ProviderGenerator   = (*Generator)(nil)
	_ secondary.FactoryGenerator    = (*Generator)(nil)
	_ secondary.ModelGenerator      = (*Generator)(nil)
	_ secondary.ControllerGenerator = (*Generator)(nil)
)
