package primary

import (
	"context"

	"github.com/example/acacia/internal/scaffold"
)

// SchematicService defines the primary port for stored schematics.
type SchematicService interface {
	// ImportSchematic reads a schematic file and stores it.
	ImportSchematic(ctx context.Context, path string) (*scaffold.Schematic, error)

	// GetSchematic retrieves a stored schematic by model class.
	GetSchematic(ctx context.Context, modelClass string) (*scaffold.Schematic, error)

	// ListSchematics retrieves all stored schematics.
	ListSchematics(ctx context.Context) ([]*scaffold.Schematic, error)
}
