// Package module contains the pure business logic for module generation.
// Guards are pure functions that evaluate preconditions without side effects.
package module

import (
	"fmt"
	"strings"
)

// Exit codes reported for a generation run.
const (
	ExitSuccess       = 0
	ExitAlreadyExists = 1
)

// GuardResult represents the outcome of a guard evaluation.
type GuardResult struct {
	Allowed bool
	Reason  string
}

// Error converts the guard result to an error if not allowed.
func (r GuardResult) Error() error {
	if r.Allowed {
		return nil
	}
	return fmt.Errorf("%s", r.Reason)
}

// GenerateContext provides context for module generation guards.
type GenerateContext struct {
	Name   string // module plural name
	Type   Type
	Exists bool // true if the module directory already exists
	Force  bool
}

// CanGenerate evaluates whether a module can be generated.
// Rules:
// - Name must not be empty
// - Type must be web, api or plain
// - An existing module requires force
func CanGenerate(ctx GenerateContext) GuardResult {
	if strings.TrimSpace(ctx.Name) == "" {
		return GuardResult{
			Allowed: false,
			Reason:  "module name cannot be empty",
		}
	}

	if !ctx.Type.Valid() {
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("invalid module type %q (valid: web, api, plain)", ctx.Type),
		}
	}

	if ctx.Exists && !ctx.Force {
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("module [%s] already exists", ctx.Name),
		}
	}

	return GuardResult{Allowed: true}
}

// MustReplace reports whether an allowed generation first has to delete the
// existing module and its menu entry.
func MustReplace(ctx GenerateContext) bool {
	return ctx.Exists && ctx.Force
}

// SetActiveContext provides context for activation guards.
type SetActiveContext struct {
	Name   string
	Exists bool
}

// CanSetActive evaluates whether a module can be enabled or disabled.
// Rules:
// - Name must not be empty
// - Module must exist on disk
func CanSetActive(ctx SetActiveContext) GuardResult {
	if strings.TrimSpace(ctx.Name) == "" {
		return GuardResult{
			Allowed: false,
			Reason:  "module name cannot be empty",
		}
	}

	if !ctx.Exists {
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("module [%s] not found", ctx.Name),
		}
	}

	return GuardResult{Allowed: true}
}
