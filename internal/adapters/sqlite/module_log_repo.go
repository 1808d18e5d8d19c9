package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/example/acacia/internal/ports/secondary"
)

// ModuleLogRepository implements secondary.ModuleLogRepository with SQLite.
type ModuleLogRepository struct {
	db *sql.DB
}

// NewModuleLogRepository creates a new SQLite module log repository.
func NewModuleLogRepository(db *sql.DB) *ModuleLogRepository {
	return &ModuleLogRepository{db: db}
}

// Create persists a new module log entry.
func (r *ModuleLogRepository) Create(ctx context.Context, log *secondary.ModuleLogRecord) error {
	var fieldName, oldValue, newValue sql.NullString
	if log.FieldName != "" {
		fieldName = sql.NullString{String: log.FieldName, Valid: true}
	}
	if log.OldValue != "" {
		oldValue = sql.NullString{String: log.OldValue, Valid: true}
	}
	if log.NewValue != "" {
		newValue = sql.NullString{String: log.NewValue, Valid: true}
	}

	result, err := r.db.ExecContext(ctx,
		`INSERT INTO module_logs (module, action, field_name, old_value, new_value) VALUES (?, ?, ?, ?, ?)`,
		log.Module,
		log.Action,
		fieldName,
		oldValue,
		newValue,
	)
	if err != nil {
		return fmt.Errorf("failed to create module log: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read module log id: %w", err)
	}
	log.ID = id

	return nil
}

// List retrieves log entries, newest first.
func (r *ModuleLogRepository) List(ctx context.Context, module string, limit int) ([]*secondary.ModuleLogRecord, error) {
	query := `SELECT id, module, action, field_name, old_value, new_value, created_at FROM module_logs WHERE 1=1`
	args := []any{}

	if module != "" {
		query += " AND module = ?"
		args = append(args, module)
	}

	query += " ORDER BY id DESC"

	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list module logs: %w", err)
	}
	defer rows.Close()

	var logs []*secondary.ModuleLogRecord
	for rows.Next() {
		var (
			fieldName sql.NullString
			oldValue  sql.NullString
			newValue  sql.NullString
			createdAt sql.NullTime
		)

		record := &secondary.ModuleLogRecord{}
		if err := rows.Scan(&record.ID, &record.Module, &record.Action, &fieldName, &oldValue, &newValue, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan module log: %w", err)
		}

		record.FieldName = fieldName.String
		record.OldValue = oldValue.String
		record.NewValue = newValue.String
		if createdAt.Valid {
			record.CreatedAt = createdAt.Time.Format(time.RFC3339)
		}

		logs = append(logs, record)
	}

	return logs, rows.Err()
}

// Ensure ModuleLogRepository implements the interface
var _ secondary.ModuleLogRepository = (*ModuleLogRepository)(nil)
