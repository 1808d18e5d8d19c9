// Package filesystem contains filesystem-based adapter implementations.
package filesystem

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/example/acacia/internal/ports/secondary"
)

// ModuleTree implements secondary.FileSystem for modules stored under a
// base directory.
type ModuleTree struct {
	basePath string
}

// NewModuleTree creates a new filesystem adapter rooted at basePath.
// Relative base paths are resolved against the working directory.
func NewModuleTree(basePath string) (*ModuleTree, error) {
	if basePath == "" {
		return nil, fmt.Errorf("modules path cannot be empty")
	}
	abs, err := filepath.Abs(basePath)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve modules path: %w", err)
	}
	return &ModuleTree{basePath: abs}, nil
}

// BasePath returns the directory modules are created in.
func (a *ModuleTree) BasePath() string {
	return a.basePath
}

// ModulePath returns the root directory of a module.
func (a *ModuleTree) ModulePath(module string) string {
	return filepath.Join(a.basePath, module)
}

// MakeDirectory creates a directory. With recursive set, missing parents
// are created and an existing directory is not an error.
func (a *ModuleTree) MakeDirectory(ctx context.Context, path string, mode os.FileMode, recursive bool) error {
	var err error
	if recursive {
		err = os.MkdirAll(path, mode)
	} else {
		err = os.Mkdir(path, mode)
	}
	if err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}
	return nil
}

// IsDirectory checks if a directory exists at path.
func (a *ModuleTree) IsDirectory(ctx context.Context, path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// Put writes content to path, replacing any existing file.
func (a *ModuleTree) Put(ctx context.Context, path, content string) error {
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// Get reads the file at path.
func (a *ModuleTree) Get(ctx context.Context, path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}
	return string(data), nil
}

// ModuleExists checks if the module directory exists.
func (a *ModuleTree) ModuleExists(ctx context.Context, module string) (bool, error) {
	if err := a.checkName(module); err != nil {
		return false, err
	}
	info, err := os.Stat(a.ModulePath(module))
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to check module: %w", err)
	}
	return info.IsDir(), nil
}

// DeleteModule removes a module directory and all contents.
func (a *ModuleTree) DeleteModule(ctx context.Context, module string) error {
	if err := a.checkName(module); err != nil {
		return err
	}
	if err := os.RemoveAll(a.ModulePath(module)); err != nil {
		return fmt.Errorf("failed to remove module %s: %w", module, err)
	}
	return nil
}

// ListModules returns the names of the module directories, sorted.
func (a *ModuleTree) ListModules(ctx context.Context) ([]string, error) {
	entries, err := os.ReadDir(a.basePath)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list modules: %w", err)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() && !strings.HasPrefix(e.Name(), ".") {
			names = append(names, e.Name())
		}
	}
	return names, nil
}

// checkName keeps module operations inside the base directory.
func (a *ModuleTree) checkName(module string) error {
	if module == "" || module == "." || module == ".." || strings.ContainsAny(module, `/\`) {
		return fmt.Errorf("invalid module name %q", module)
	}
	return nil
}

// Ensure ModuleTree implements the interface
var _ secondary.FileSystem = (*ModuleTree)(nil)
