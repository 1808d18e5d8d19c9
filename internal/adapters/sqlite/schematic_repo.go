package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/example/acacia/internal/ports/secondary"
	"github.com/example/acacia/internal/scaffold"
)

// SchematicRepository implements secondary.SchematicRepository with SQLite.
type SchematicRepository struct {
	db *sql.DB
}

// NewSchematicRepository creates a new SQLite schematic repository.
func NewSchematicRepository(db *sql.DB) *SchematicRepository {
	return &SchematicRepository{db: db}
}

// Save replaces the schematic and its fields in one transaction.
func (r *SchematicRepository) Save(ctx context.Context, s *scaffold.Schematic) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO schematics (model_class, controller_class) VALUES (?, ?)
		 ON CONFLICT(model_class) DO UPDATE SET controller_class = excluded.controller_class, updated_at = CURRENT_TIMESTAMP`,
		s.ModelClass, s.ControllerClass,
	)
	if err != nil {
		return fmt.Errorf("failed to save schematic: %w", err)
	}

	if _, err := tx.ExecContext(ctx, "DELETE FROM schematic_fields WHERE model_class = ?", s.ModelClass); err != nil {
		return fmt.Errorf("failed to clear schematic fields: %w", err)
	}

	for i, f := range s.Fields {
		_, err := tx.ExecContext(ctx,
			"INSERT INTO schematic_fields (model_class, position, name, title, html_type, in_list, is_vue) VALUES (?, ?, ?, ?, ?, ?, ?)",
			s.ModelClass, i, f.Name, f.Title, string(f.HTMLType), f.InList, f.IsVue,
		)
		if err != nil {
			return fmt.Errorf("failed to save field %s: %w", f.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit schematic: %w", err)
	}
	return nil
}

// GetByModelClass retrieves a schematic with its fields in declaration order.
func (r *SchematicRepository) GetByModelClass(ctx context.Context, modelClass string) (*scaffold.Schematic, error) {
	var controller sql.NullString
	s := &scaffold.Schematic{}
	err := r.db.QueryRowContext(ctx,
		"SELECT model_class, controller_class FROM schematics WHERE model_class = ?",
		modelClass,
	).Scan(&s.ModelClass, &controller)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("schematic %s not found", modelClass)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get schematic: %w", err)
	}
	s.ControllerClass = controller.String

	fields, err := r.fields(ctx, s.ModelClass)
	if err != nil {
		return nil, err
	}
	s.Fields = fields

	return s, nil
}

// List retrieves every stored schematic ordered by model class.
func (r *SchematicRepository) List(ctx context.Context) ([]*scaffold.Schematic, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT model_class, controller_class FROM schematics ORDER BY model_class")
	if err != nil {
		return nil, fmt.Errorf("failed to list schematics: %w", err)
	}

	var schematics []*scaffold.Schematic
	for rows.Next() {
		var controller sql.NullString
		s := &scaffold.Schematic{}
		if err := rows.Scan(&s.ModelClass, &controller); err != nil {
			rows.Close()
			return nil, fmt.Errorf("failed to scan schematic: %w", err)
		}
		s.ControllerClass = controller.String
		schematics = append(schematics, s)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, err
	}
	rows.Close()

	for _, s := range schematics {
		fields, err := r.fields(ctx, s.ModelClass)
		if err != nil {
			return nil, err
		}
		s.Fields = fields
	}

	return schematics, nil
}

func (r *SchematicRepository) fields(ctx context.Context, modelClass string) ([]scaffold.Field, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT name, title, html_type, in_list, is_vue FROM schematic_fields WHERE model_class = ? ORDER BY position, id",
		modelClass,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list schematic fields: %w", err)
	}
	defer rows.Close()

	var fields []scaffold.Field
	for rows.Next() {
		var (
			f        scaffold.Field
			title    sql.NullString
			htmlType string
		)
		if err := rows.Scan(&f.Name, &title, &htmlType, &f.InList, &f.IsVue); err != nil {
			return nil, fmt.Errorf("failed to scan schematic field: %w", err)
		}
		f.Title = title.String
		f.HTMLType = scaffold.HTMLType(htmlType)
		fields = append(fields, f)
	}

	return fields, rows.Err()
}

// Ensure SchematicRepository implements the interface
var _ secondary.SchematicRepository = (*SchematicRepository)(nil)
