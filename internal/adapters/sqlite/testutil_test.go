// Package sqlite_test contains integration tests for SQLite repositories.
//
// # Schema Protection
//
// This file is the SINGLE POINT where the database schema is loaded for tests.
// All test setup functions use db.GetSchemaSQL() to ensure tests run against
// the authoritative schema, preventing drift between test and production.
package sqlite_test

import (
	"database/sql"
	"testing"

	_ "github.com/mattn/go-sqlite3"

	"github.com/example/acacia/internal/db"
)

// setupTestDB creates an in-memory database with the authoritative schema
// and the root menu.
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	testDB, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	testDB.SetMaxOpenConns(1)

	// Use the authoritative schema from schema.go
	_, err = testDB.Exec(db.GetSchemaSQL())
	if err != nil {
		t.Fatalf("failed to create schema: %v", err)
	}
	if err := db.EnsureRootMenu(testDB); err != nil {
		t.Fatalf("failed to create root menu: %v", err)
	}

	t.Cleanup(func() {
		testDB.Close()
	})

	return testDB
}

// seedMenu inserts a test menu entry under the root menu and returns its ID.
func seedMenu(t *testing.T, db *sql.DB, title, route string) int64 {
	t.Helper()
	result, err := db.Exec(
		"INSERT INTO menus (title, icon, route, active_pattern, position, parent_id) VALUES (?, 'pi pi-box', ?, ?, 0, 1)",
		title, route, route+".*",
	)
	if err != nil {
		t.Fatalf("failed to seed menu: %v", err)
	}
	id, _ := result.LastInsertId()
	return id
}
