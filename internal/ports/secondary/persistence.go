// Package secondary defines the secondary ports (driven adapters) for the application.
// These are the interfaces through which the application drives external systems.
package secondary

import (
	"context"

	"github.com/example/acacia/internal/scaffold"
)

// MenuRepository defines the secondary port for admin menu persistence.
type MenuRepository interface {
	// Create persists a new menu entry and fills in its ID.
	Create(ctx context.Context, menu *MenuRecord) error

	// DeleteWhereRoute hard-deletes every entry registered for route and
	// returns how many were removed.
	DeleteWhereRoute(ctx context.Context, route string) (int64, error)

	// ListByRoute retrieves the entries registered for route.
	ListByRoute(ctx context.Context, route string) ([]*MenuRecord, error)

	// List retrieves all menu entries ordered by parent, position and id.
	List(ctx context.Context) ([]*MenuRecord, error)
}

// MenuRecord represents a menu entry as stored in persistence.
type MenuRecord struct {
	ID            int64
	Title         string
	Icon          string
	Route         string
	ActivePattern string
	Position      int
	ParentID      int64
	CreatedAt     string
}

// ActivationStore defines the secondary port for module enable/disable state.
type ActivationStore interface {
	// SetActiveByName records whether the named module is active.
	SetActiveByName(ctx context.Context, name string, active bool) error

	// IsActive reports whether the named module is active. Unknown modules
	// are inactive.
	IsActive(ctx context.Context, name string) (bool, error)

	// List returns every known module status ordered by name.
	List(ctx context.Context) ([]*ModuleStatusRecord, error)
}

// ModuleStatusRecord represents a module activation status.
type ModuleStatusRecord struct {
	Name      string
	Active    bool
	UpdatedAt string
}

// SchematicRepository defines the secondary port for stored schematics.
type SchematicRepository interface {
	// Save inserts or replaces the schematic keyed by its model class.
	Save(ctx context.Context, schematic *scaffold.Schematic) error

	// GetByModelClass retrieves a schematic with its fields in declaration order.
	GetByModelClass(ctx context.Context, modelClass string) (*scaffold.Schematic, error)

	// List retrieves every stored schematic ordered by model class.
	List(ctx context.Context) ([]*scaffold.Schematic, error)
}

// ModuleLogRepository defines the secondary port for module history.
type ModuleLogRepository interface {
	// Create persists a new log entry and sets its ID.
	Create(ctx context.Context, log *ModuleLogRecord) error

	// List retrieves entries for a module, or all modules when module is
	// empty, newest first. A limit of zero means no limit.
	List(ctx context.Context, module string, limit int) ([]*ModuleLogRecord, error)
}

// ModuleLogRecord represents one module history entry.
type ModuleLogRecord struct {
	ID        int64
	Module    string
	Action    string // create, update, delete
	FieldName string
	OldValue  string
	NewValue  string
	CreatedAt string
}

// LogWriter records changes to modules. Writers never block a run; callers
// treat failures as warnings.
type LogWriter interface {
	LogCreate(ctx context.Context, module string) error
	LogUpdate(ctx context.Context, module, fieldName, oldValue, newValue string) error
	LogDelete(ctx context.Context, module string) error
}
