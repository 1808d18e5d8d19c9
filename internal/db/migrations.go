package db

import (
	"database/sql"
	"fmt"
)

// Migration represents a database migration
type Migration struct {
	Version int
	Name    string
	Up      func(*sql.Tx) error
}

// migrations is the list of all migrations in order
var migrations = []Migration{
	{
		Version: 1,
		Name:    "create_menus_and_module_statuses",
		Up:      migrationV1,
	},
	{
		Version: 2,
		Name:    "create_schematics",
		Up:      migrationV2,
	},
	{
		Version: 3,
		Name:    "add_module_status_updated_at",
		Up:      migrationV3,
	},
	{
		Version: 4,
		Name:    "create_module_logs",
		Up:      migrationV4,
	},
}

// RunMigrations executes all pending migrations
func RunMigrations(db *sql.DB) error {
	if err := createVersionTable(db); err != nil {
		return fmt.Errorf("failed to create schema_version table: %w", err)
	}

	// Get current schema version
	var currentVersion int
	err := db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_version").Scan(&currentVersion)
	if err != nil {
		return fmt.Errorf("failed to get current schema version: %w", err)
	}

	// Run pending migrations
	for _, migration := range migrations {
		if migration.Version <= currentVersion {
			continue
		}

		tx, err := db.Begin()
		if err != nil {
			return fmt.Errorf("failed to begin transaction for migration %d: %w", migration.Version, err)
		}

		if err := migration.Up(tx); err != nil {
			tx.Rollback()
			return fmt.Errorf("migration %d (%s) failed: %w", migration.Version, migration.Name, err)
		}

		// Record migration
		_, err = tx.Exec("INSERT INTO schema_version (version) VALUES (?)", migration.Version)
		if err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to record migration %d: %w", migration.Version, err)
		}

		if err := tx.Commit(); err != nil {
			return fmt.Errorf("failed to commit migration %d: %w", migration.Version, err)
		}
	}

	return EnsureRootMenu(db)
}

// migrationV1 creates the menu and activation tables
func migrationV1(tx *sql.Tx) error {
	_, err := tx.Exec(`
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

		CREATE TABLE IF NOT EXISTS module_statuses (
			name TEXT PRIMARY KEY,
			active INTEGER NOT NULL DEFAULT 0
		);
	`)
	return err
}

// migrationV2 creates the schematic tables
func migrationV2(tx *sql.Tx) error {
	_, err := tx.Exec(`
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
	`)
	return err
}

// migrationV3 tracks when a module status last changed
func migrationV3(tx *sql.Tx) error {
	var count int
	err := tx.QueryRow("SELECT COUNT(*) FROM pragma_table_info('module_statuses') WHERE name = 'updated_at'").Scan(&count)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	// SQLite rejects non-constant defaults in ADD COLUMN
	if _, err := tx.Exec("ALTER TABLE module_statuses ADD COLUMN updated_at DATETIME"); err != nil {
		return err
	}
	_, err = tx.Exec("UPDATE module_statuses SET updated_at = CURRENT_TIMESTAMP")
	return err
}

// migrationV4 records module generations and status changes
func migrationV4(tx *sql.Tx) error {
	_, err := tx.Exec(`
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
	`)
	return err
}
