// Package sqlite contains SQLite implementations of repository interfaces.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/example/acacia/internal/ports/secondary"
)

// MenuRepository implements secondary.MenuRepository with SQLite.
type MenuRepository struct {
	db *sql.DB
}

// NewMenuRepository creates a new SQLite menu repository.
func NewMenuRepository(db *sql.DB) *MenuRepository {
	return &MenuRepository{db: db}
}

// Create persists a new menu entry.
func (r *MenuRepository) Create(ctx context.Context, menu *secondary.MenuRecord) error {
	var parentID sql.NullInt64
	if menu.ParentID != 0 {
		parentID = sql.NullInt64{Int64: menu.ParentID, Valid: true}
	}

	result, err := r.db.ExecContext(ctx,
		"INSERT INTO menus (title, icon, route, active_pattern, position, parent_id) VALUES (?, ?, ?, ?, ?, ?)",
		menu.Title, menu.Icon, menu.Route, menu.ActivePattern, menu.Position, parentID,
	)
	if err != nil {
		return fmt.Errorf("failed to create menu: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read menu id: %w", err)
	}
	menu.ID = id

	return nil
}

// DeleteWhereRoute hard-deletes the entries registered for route.
func (r *MenuRepository) DeleteWhereRoute(ctx context.Context, route string) (int64, error) {
	result, err := r.db.ExecContext(ctx, "DELETE FROM menus WHERE route = ?", route)
	if err != nil {
		return 0, fmt.Errorf("failed to delete menu: %w", err)
	}

	n, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return n, nil
}

// ListByRoute retrieves the entries registered for route.
func (r *MenuRepository) ListByRoute(ctx context.Context, route string) ([]*secondary.MenuRecord, error) {
	return r.query(ctx, menuSelect+" WHERE route = ? ORDER BY id", route)
}

// List retrieves all menu entries.
func (r *MenuRepository) List(ctx context.Context) ([]*secondary.MenuRecord, error) {
	return r.query(ctx, menuSelect+" ORDER BY COALESCE(parent_id, 0), position, id")
}

const menuSelect = "SELECT id, title, icon, route, active_pattern, position, parent_id, created_at FROM menus"

func (r *MenuRepository) query(ctx context.Context, query string, args ...any) ([]*secondary.MenuRecord, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list menus: %w", err)
	}
	defer rows.Close()

	var menus []*secondary.MenuRecord
	for rows.Next() {
		var (
			icon, route, pattern sql.NullString
			parentID             sql.NullInt64
			createdAt            sql.NullTime
		)

		record := &secondary.MenuRecord{}
		if err := rows.Scan(&record.ID, &record.Title, &icon, &route, &pattern, &record.Position, &parentID, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan menu: %w", err)
		}

		record.Icon = icon.String
		record.Route = route.String
		record.ActivePattern = pattern.String
		record.ParentID = parentID.Int64
		if createdAt.Valid {
			record.CreatedAt = createdAt.Time.Format(time.RFC3339)
		}

		menus = append(menus, record)
	}

	return menus, rows.Err()
}

// Ensure MenuRepository implements the interface
var _ secondary.MenuRepository = (*MenuRepository)(nil)
