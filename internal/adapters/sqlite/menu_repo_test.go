package sqlite_test

import (
	"context"
	"testing"

	"github.com/example/acacia/internal/adapters/sqlite"
	"github.com/example/acacia/internal/ports/secondary"
)

func TestMenuRepository_Create(t *testing.T) {
	db := setupTestDB(t)
	repo := sqlite.NewMenuRepository(db)
	ctx := context.Background()

	menu := &secondary.MenuRecord{
		Title:         "Invoices",
		Icon:          "pi pi-box",
		Route:         "acacia.backend.invoices.index",
		ActivePattern: "acacia.backend.invoices.*",
		Position:      0,
		ParentID:      1,
	}

	if err := repo.Create(ctx, menu); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if menu.ID == 0 {
		t.Error("expected ID to be set")
	}

	got, err := repo.ListByRoute(ctx, "acacia.backend.invoices.index")
	if err != nil {
		t.Fatalf("ListByRoute failed: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 menu, got %d", len(got))
	}
	if got[0].Title != "Invoices" {
		t.Errorf("expected title 'Invoices', got %q", got[0].Title)
	}
	if got[0].ActivePattern != "acacia.backend.invoices.*" {
		t.Errorf("expected active pattern, got %q", got[0].ActivePattern)
	}
	if got[0].ParentID != 1 {
		t.Errorf("expected parent 1, got %d", got[0].ParentID)
	}
	if got[0].CreatedAt == "" {
		t.Error("expected CreatedAt to be set")
	}
}

func TestMenuRepository_Create_UnknownParent(t *testing.T) {
	db := setupTestDB(t)
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		t.Fatalf("failed to enable foreign keys: %v", err)
	}
	repo := sqlite.NewMenuRepository(db)

	err := repo.Create(context.Background(), &secondary.MenuRecord{Title: "Orphan", ParentID: 999})
	if err == nil {
		t.Error("expected error for unknown parent")
	}
}

func TestMenuRepository_DeleteWhereRoute(t *testing.T) {
	db := setupTestDB(t)
	repo := sqlite.NewMenuRepository(db)
	ctx := context.Background()

	seedMenu(t, db, "Invoices", "acacia.backend.invoices.index")
	seedMenu(t, db, "Invoices", "acacia.backend.invoices.index")
	seedMenu(t, db, "Orders", "acacia.backend.orders.index")

	n, err := repo.DeleteWhereRoute(ctx, "acacia.backend.invoices.index")
	if err != nil {
		t.Fatalf("DeleteWhereRoute failed: %v", err)
	}
	if n != 2 {
		t.Errorf("expected 2 deleted, got %d", n)
	}

	remaining, _ := repo.ListByRoute(ctx, "acacia.backend.invoices.index")
	if len(remaining) != 0 {
		t.Errorf("expected no invoices menus, got %d", len(remaining))
	}
	orders, _ := repo.ListByRoute(ctx, "acacia.backend.orders.index")
	if len(orders) != 1 {
		t.Errorf("expected orders menu to survive, got %d", len(orders))
	}

	n, err = repo.DeleteWhereRoute(ctx, "acacia.backend.missing.index")
	if err != nil {
		t.Fatalf("DeleteWhereRoute on missing route failed: %v", err)
	}
	if n != 0 {
		t.Errorf("expected 0 deleted, got %d", n)
	}
}

func TestMenuRepository_List(t *testing.T) {
	db := setupTestDB(t)
	repo := sqlite.NewMenuRepository(db)

	seedMenu(t, db, "Invoices", "acacia.backend.invoices.index")
	seedMenu(t, db, "Orders", "acacia.backend.orders.index")

	menus, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(menus) != 3 {
		t.Fatalf("expected root + 2 menus, got %d", len(menus))
	}
	if menus[0].ID != 1 || menus[0].ParentID != 0 {
		t.Errorf("expected root menu first, got %+v", menus[0])
	}
	if menus[1].Title != "Invoices" || menus[2].Title != "Orders" {
		t.Errorf("unexpected order: %q, %q", menus[1].Title, menus[2].Title)
	}
}
