package app

import (
	"context"
	"fmt"

	"github.com/example/acacia/internal/ports/primary"
	"github.com/example/acacia/internal/ports/secondary"
	"github.com/example/acacia/internal/scaffold"
)

// SchematicServiceImpl implements the SchematicService interface.
type SchematicServiceImpl struct {
	schematicRepo secondary.SchematicRepository
}

// NewSchematicService creates a new SchematicService with injected dependencies.
func NewSchematicService(schematicRepo secondary.SchematicRepository) *SchematicServiceImpl {
	return &SchematicServiceImpl{
		schematicRepo: schematicRepo,
	}
}

// ImportSchematic reads a schematic file and stores it, replacing any
// schematic with the same model class.
func (s *SchematicServiceImpl) ImportSchematic(ctx context.Context, path string) (*scaffold.Schematic, error) {
	schematic, err := scaffold.LoadSchematicFile(path)
	if err != nil {
		return nil, err
	}

	if err := s.schematicRepo.Save(ctx, schematic); err != nil {
		return nil, fmt.Errorf("failed to save schematic: %w", err)
	}
	return schematic, nil
}

// GetSchematic retrieves a stored schematic by model class.
func (s *SchematicServiceImpl) GetSchematic(ctx context.Context, modelClass string) (*scaffold.Schematic, error) {
	schematic, err := s.schematicRepo.GetByModelClass(ctx, scaffold.Studly(modelClass))
	if err != nil {
		return nil, fmt.Errorf("schematic not found: %w", err)
	}
	return schematic, nil
}

// ListSchematics retrieves all stored schematics.
func (s *SchematicServiceImpl) ListSchematics(ctx context.Context) ([]*scaffold.Schematic, error) {
	schematics, err := s.schematicRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list schematics: %w", err)
	}
	return schematics, nil
}

// Ensure SchematicServiceImpl implements the interface
var _ primary.SchematicService = (*SchematicServiceImpl)(nil)
