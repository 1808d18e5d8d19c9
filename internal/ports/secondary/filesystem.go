package secondary

import (
	"context"
	"os"
)

// FileSystem defines the secondary port for module tree operations.
// Paths passed to MakeDirectory, Put, Get and IsDirectory are joined from
// ModulePath by the caller.
type FileSystem interface {
	// Directory operations
	MakeDirectory(ctx context.Context, path string, mode os.FileMode, recursive bool) error
	IsDirectory(ctx context.Context, path string) bool

	// File operations
	Put(ctx context.Context, path, content string) error
	Get(ctx context.Context, path string) (string, error)

	// Module operations
	ModulePath(module string) string
	ModuleExists(ctx context.Context, module string) (bool, error)
	DeleteModule(ctx context.Context, module string) error
	ListModules(ctx context.Context) ([]string, error)
}
