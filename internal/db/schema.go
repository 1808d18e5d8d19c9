package db

import (
	"database/sql"
	"fmt"
)

// SchemaSQL is the complete schema for fresh installs.
// This schema reflects the current state after all migrations.
//
// This is the SINGLE SOURCE OF TRUTH for the database schema. Repository
// tests build their in-memory databases from GetSchemaSQL(), so a column
// referenced by repository code but missing here fails immediately with
// "no such column".
//
// When adding new columns or tables:
//  1. Add a migration in migrations.go
//  2. Update SchemaSQL here
const SchemaSQL = `
-- Admin menu entries registered for generated modules
CREATE TABLE IF NOT EXISTS menus (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	title TEXT NOT NULL,
	icon TEXT,
	route TEXT,
	active_pattern TEXT,
	position INTEGER NOT NULL DEFAULT 0,
	parent_id INTEGER,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
	FOREIGN KEY (parent_id) REFERENCES menus(id) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_menus_route ON menus(route);
CREATE INDEX IF NOT EXISTS idx_menus_parent ON menus(parent_id);

-- Module activation statuses
CREATE TABLE IF NOT EXISTS module_statuses (
	name TEXT PRIMARY KEY,
	active INTEGER NOT NULL DEFAULT 0,
	updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

-- Stored schematics
CREATE TABLE IF NOT EXISTS schematics (
	model_class TEXT PRIMARY KEY,
	controller_class TEXT,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
	updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS schematic_fields (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	model_class TEXT NOT NULL,
	position INTEGER NOT NULL,
	name TEXT NOT NULL,
	title TEXT,
	html_type TEXT NOT NULL DEFAULT 'text',
	in_list INTEGER NOT NULL DEFAULT 0,
	is_vue INTEGER NOT NULL DEFAULT 0,
	FOREIGN KEY (model_class) REFERENCES schematics(model_class) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_schematic_fields_model ON schematic_fields(model_class, position);

-- History of module generations and status changes
CREATE TABLE IF NOT EXISTS module_logs (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	module TEXT NOT NULL,
	action TEXT NOT NULL CHECK (action IN ('create', 'update', 'delete')),
	field_name TEXT,
	old_value TEXT,
	new_value TEXT,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_module_logs_module ON module_logs(module);
`

// RootMenuID is the menu every module entry is attached to.
const RootMenuID = 1

// InitSchema creates the database schema
func InitSchema(db *sql.DB) error {
	// Check if schema_version table exists to determine if this is a fresh install
	var tableCount int
	err := db.QueryRow("SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name='schema_version'").Scan(&tableCount)
	if err != nil {
		return err
	}

	if tableCount > 0 {
		// schema_version table exists - run any pending migrations
		return RunMigrations(db)
	}

	// Fresh install - create the schema directly and mark every
	// migration as applied
	if _, err := db.Exec(SchemaSQL); err != nil {
		return err
	}
	if err := createVersionTable(db); err != nil {
		return err
	}
	for _, m := range migrations {
		if _, err := db.Exec("INSERT INTO schema_version (version) VALUES (?)", m.Version); err != nil {
			return err
		}
	}
	return EnsureRootMenu(db)
}

// EnsureRootMenu creates the root menu entry modules hang under.
func EnsureRootMenu(db *sql.DB) error {
	_, err := db.Exec(
		"INSERT OR IGNORE INTO menus (id, title, icon, position, parent_id) VALUES (?, 'Modules', 'pi pi-th-large', 0, NULL)",
		RootMenuID,
	)
	if err != nil {
		return fmt.Errorf("failed to create root menu: %w", err)
	}
	return nil
}

// GetSchemaSQL returns the authoritative schema SQL for use by tests.
// Tests should use this instead of hardcoding their own schema to prevent drift.
func GetSchemaSQL() string {
	return SchemaSQL
}

func createVersionTable(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_version (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	return err
}
