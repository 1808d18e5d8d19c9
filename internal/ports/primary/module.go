package primary

import (
	"context"
	"errors"

	"github.com/example/acacia/internal/scaffold"
)

// ErrModuleExists is returned when generating over an existing module
// without force.
var ErrModuleExists = errors.New("module already exists")

// ModuleService defines the primary port for module operations.
type ModuleService interface {
	// GenerateModule scaffolds a module. An existing module without Force
	// yields a response with a non-zero ExitCode alongside the error.
	GenerateModule(ctx context.Context, req GenerateModuleRequest) (*GenerateModuleResponse, error)

	// ListModules retrieves the modules on disk with their activation state.
	ListModules(ctx context.Context) ([]*Module, error)

	// SetModuleActive enables or disables an existing module.
	SetModuleActive(ctx context.Context, name string, active bool) error

	// ListModuleLogs retrieves the change history, newest first. An empty
	// module lists every module; a limit of zero lists everything.
	ListModuleLogs(ctx context.Context, module string, limit int) ([]*ModuleLog, error)
}

// GenerateModuleRequest contains parameters for generating a module.
type GenerateModuleRequest struct {
	Name      string
	Schematic *scaffold.Schematic // optional
	Type      string              // web, api or plain; empty means web
	Force     bool
	Active    *bool // nil uses the configured default
	DryRun    bool
	NoFormat  bool // skip the formatter pass
}

// GenerateModuleResponse contains the result of generating a module.
type GenerateModuleResponse struct {
	Module   string // plural module name
	Path     string
	ExitCode int
	State    string   // last state reached
	Created  []string // paths written, in order
	MenuID   int64
	Replaced bool     // an existing module was deleted first
	Planned  []string // dry run: resource generator calls that would run
	Files    []scaffold.GeneratedFile
	Warnings []string
}

// Module represents a module at the port boundary.
type Module struct {
	Name   string
	Path   string
	Active bool
	OnDisk bool
}

// ModuleLog is one entry of a module's change history.
type ModuleLog struct {
	ID        int64
	Module    string
	Action    string // create, update or delete
	FieldName string
	OldValue  string
	NewValue  string
	CreatedAt string
}
