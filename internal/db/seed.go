package db

import (
	"database/sql"
	"fmt"
	"time"
)

// SeedFixtures populates the database with development fixtures: a sample
// schematic, its menu entry and an activation status.
func SeedFixtures(database *sql.DB) error {
	now := time.Now().Format(time.RFC3339)

	if err := EnsureRootMenu(database); err != nil {
		return err
	}

	if _, err := database.Exec(
		"INSERT INTO schematics (model_class, controller_class, created_at, updated_at) VALUES (?, ?, ?, ?)",
		"Invoice", "", now, now,
	); err != nil {
		return fmt.Errorf("seed schematics: %w", err)
	}

	fields := []struct {
		name, title, htmlType string
		inList, isVue         bool
	}{
		{"number", "Number", "text", true, true},
		{"customer", "Customer", "text", true, true},
		{"due_date", "Due Date", "date", true, true},
		{"paid", "Paid", "switch", false, true},
	}
	for i, f := range fields {
		if _, err := database.Exec(
			"INSERT INTO schematic_fields (model_class, position, name, title, html_type, in_list, is_vue) VALUES (?, ?, ?, ?, ?, ?, ?)",
			"Invoice", i, f.name, f.title, f.htmlType, f.inList, f.isVue,
		); err != nil {
			return fmt.Errorf("seed schematic fields: %w", err)
		}
	}

	if _, err := database.Exec(
		"INSERT INTO menus (title, icon, route, active_pattern, position, parent_id, created_at) VALUES (?, ?, ?, ?, ?, ?, ?)",
		"Invoices", "pi pi-box", "acacia.backend.invoices.index", "acacia.backend.invoices.*", 0, RootMenuID, now,
	); err != nil {
		return fmt.Errorf("seed menus: %w", err)
	}

	if _, err := database.Exec(
		"INSERT INTO module_statuses (name, active, updated_at) VALUES (?, ?, ?)",
		"Invoices", true, now,
	); err != nil {
		return fmt.Errorf("seed module statuses: %w", err)
	}

	return nil
}
