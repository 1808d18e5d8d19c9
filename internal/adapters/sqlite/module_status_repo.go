package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/example/acacia/internal/ports/secondary"
)

// ModuleStatusRepository implements secondary.ActivationStore with SQLite.
type ModuleStatusRepository struct {
	db *sql.DB
}

// NewModuleStatusRepository creates a new SQLite module status repository.
func NewModuleStatusRepository(db *sql.DB) *ModuleStatusRepository {
	return &ModuleStatusRepository{db: db}
}

// SetActiveByName upserts the status of the named module.
func (r *ModuleStatusRepository) SetActiveByName(ctx context.Context, name string, active bool) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO module_statuses (name, active, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(name) DO UPDATE SET active = excluded.active, updated_at = CURRENT_TIMESTAMP`,
		name, active,
	)
	if err != nil {
		return fmt.Errorf("failed to set module status: %w", err)
	}
	return nil
}

// IsActive reports whether the named module is active.
func (r *ModuleStatusRepository) IsActive(ctx context.Context, name string) (bool, error) {
	var active bool
	err := r.db.QueryRowContext(ctx, "SELECT active FROM module_statuses WHERE name = ?", name).Scan(&active)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to get module status: %w", err)
	}
	return active, nil
}

// List returns every module status ordered by name.
func (r *ModuleStatusRepository) List(ctx context.Context) ([]*secondary.ModuleStatusRecord, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT name, active, updated_at FROM module_statuses ORDER BY name")
	if err != nil {
		return nil, fmt.Errorf("failed to list module statuses: %w", err)
	}
	defer rows.Close()

	var statuses []*secondary.ModuleStatusRecord
	for rows.Next() {
		var updatedAt sql.NullTime
		record := &secondary.ModuleStatusRecord{}
		if err := rows.Scan(&record.Name, &record.Active, &updatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan module status: %w", err)
		}
		if updatedAt.Valid {
			record.UpdatedAt = updatedAt.Time.Format(time.RFC3339)
		}
		statuses = append(statuses, record)
	}

	return statuses, rows.Err()
}

// Ensure ModuleStatusRepository implements the interface
var _ secondary.ActivationStore = (*ModuleStatusRepository)(nil)
