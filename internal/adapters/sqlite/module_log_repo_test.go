package sqlite_test

import (
	"context"
	"testing"

	"github.com/example/acacia/internal/adapters/sqlite"
	"github.com/example/acacia/internal/ports/secondary"
)

func TestModuleLogRepository_CreateAndList(t *testing.T) {
	db := setupTestDB(t)
	repo := sqlite.NewModuleLogRepository(db)
	ctx := context.Background()

	first := &secondary.ModuleLogRecord{Module: "Invoices", Action: "create"}
	if err := repo.Create(ctx, first); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if first.ID == 0 {
		t.Error("expected ID to be set")
	}
	if err := repo.Create(ctx, &secondary.ModuleLogRecord{Module: "Invoices", Action: "update", FieldName: "active", OldValue: "true", NewValue: "false"}); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if err := repo.Create(ctx, &secondary.ModuleLogRecord{Module: "Customers", Action: "create"}); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	logs, err := repo.List(ctx, "Invoices", 0)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(logs) != 2 {
		t.Fatalf("expected 2 logs, got %d", len(logs))
	}
	if logs[0].Action != "update" || logs[0].OldValue != "true" || logs[0].NewValue != "false" {
		t.Errorf("expected newest entry first, got %+v", logs[0])
	}
	if logs[1].FieldName != "" {
		t.Errorf("expected empty field name, got %q", logs[1].FieldName)
	}
	if logs[1].CreatedAt == "" {
		t.Error("expected created_at to be set")
	}

	all, err := repo.List(ctx, "", 0)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(all) != 3 {
		t.Errorf("expected 3 logs, got %d", len(all))
	}

	limited, err := repo.List(ctx, "", 1)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(limited) != 1 || limited[0].Module != "Customers" {
		t.Errorf("expected newest entry only, got %+v", limited)
	}
}

func TestModuleLogRepository_RejectsUnknownAction(t *testing.T) {
	db := setupTestDB(t)
	repo := sqlite.NewModuleLogRepository(db)

	if err := repo.Create(context.Background(), &secondary.ModuleLogRecord{Module: "Invoices", Action: "rename"}); err == nil {
		t.Error("expected error for unknown action")
	}
}

func TestLogWriterAdapter(t *testing.T) {
	db := setupTestDB(t)
	repo := sqlite.NewModuleLogRepository(db)
	writer := sqlite.NewLogWriterAdapter(repo)
	ctx := context.Background()

	if err := writer.LogCreate(ctx, "Invoices"); err != nil {
		t.Fatalf("LogCreate failed: %v", err)
	}
	if err := writer.LogUpdate(ctx, "Invoices", "active", "true", "false"); err != nil {
		t.Fatalf("LogUpdate failed: %v", err)
	}
	if err := writer.LogDelete(ctx, "Invoices"); err != nil {
		t.Fatalf("LogDelete failed: %v", err)
	}
	if err := writer.LogCreate(ctx, ""); err != nil {
		t.Fatalf("LogCreate without module failed: %v", err)
	}

	logs, err := repo.List(ctx, "", 0)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(logs) != 3 {
		t.Fatalf("expected 3 logs, got %d", len(logs))
	}
	if logs[0].Action != "delete" || logs[1].FieldName != "active" || logs[2].Action != "create" {
		t.Errorf("unexpected log sequence %+v %+v %+v", logs[0], logs[1], logs[2])
	}
}
