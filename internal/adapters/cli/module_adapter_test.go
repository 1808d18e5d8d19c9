package cli

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/example/acacia/internal/ports/primary"
	"github.com/example/acacia/internal/scaffold"
)

// mockModuleService implements primary.ModuleService for testing
type mockModuleService struct {
	generateFn  func(ctx context.Context, req primary.GenerateModuleRequest) (*primary.GenerateModuleResponse, error)
	listFn      func(ctx context.Context) ([]*primary.Module, error)
	setActiveFn func(ctx context.Context, name string, active bool) error
	logsFn      func(ctx context.Context, module string, limit int) ([]*primary.ModuleLog, error)

	// Track calls for verification
	lastGenerateReq primary.GenerateModuleRequest
}

func (m *mockModuleService) GenerateModule(ctx context.Context, req primary.GenerateModuleRequest) (*primary.GenerateModuleResponse, error) {
	m.lastGenerateReq = req
	if m.generateFn != nil {
		return m.generateFn(ctx, req)
	}
	return &primary.GenerateModuleResponse{
		Module:  "Invoices",
		Path:    "/tmp/acacia/Invoices",
		State:   "done",
		Created: []string{"/tmp/acacia/Invoices/module.json", "/tmp/acacia/Invoices/composer.json"},
	}, nil
}

func (m *mockModuleService) ListModules(ctx context.Context) ([]*primary.Module, error) {
	if m.listFn != nil {
		return m.listFn(ctx)
	}
	return []*primary.Module{}, nil
}

func (m *mockModuleService) SetModuleActive(ctx context.Context, name string, active bool) error {
	if m.setActiveFn != nil {
		return m.setActiveFn(ctx, name, active)
	}
	return nil
}

func (m *mockModuleService) ListModuleLogs(ctx context.Context, module string, limit int) ([]*primary.ModuleLog, error) {
	if m.logsFn != nil {
		return m.logsFn(ctx, module, limit)
	}
	return nil, nil
}

func TestModuleAdapter_Generate(t *testing.T) {
	mock := &mockModuleService{}
	var buf bytes.Buffer
	adapter := NewModuleAdapter(mock, &buf)

	resp, err := adapter.Generate(context.Background(), primary.GenerateModuleRequest{Name: "invoice"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Module != "Invoices" {
		t.Errorf("expected Invoices, got %q", resp.Module)
	}

	output := buf.String()
	if !strings.Contains(output, "Created : /tmp/acacia/Invoices/module.json") {
		t.Errorf("expected created line, got: %s", output)
	}
	if !strings.Contains(output, "Module [Invoices] created successfully.") {
		t.Errorf("expected success line, got: %s", output)
	}
	if mock.lastGenerateReq.Name != "invoice" {
		t.Errorf("expected request to be forwarded, got %+v", mock.lastGenerateReq)
	}
}

func TestModuleAdapter_GenerateAlreadyExists(t *testing.T) {
	mock := &mockModuleService{
		generateFn: func(ctx context.Context, req primary.GenerateModuleRequest) (*primary.GenerateModuleResponse, error) {
			return &primary.GenerateModuleResponse{Module: "Invoices", ExitCode: 1},
				fmt.Errorf("%w: module [Invoices] already exists", primary.ErrModuleExists)
		},
	}
	var buf bytes.Buffer
	adapter := NewModuleAdapter(mock, &buf)

	resp, err := adapter.Generate(context.Background(), primary.GenerateModuleRequest{Name: "invoice"})
	if !errors.Is(err, primary.ErrModuleExists) {
		t.Fatalf("expected ErrModuleExists, got %v", err)
	}
	if resp == nil || resp.ExitCode != 1 {
		t.Errorf("expected response with exit code 1, got %+v", resp)
	}
	if !strings.Contains(buf.String(), "Module [Invoices] already exists!") {
		t.Errorf("expected refusal message, got: %s", buf.String())
	}
}

func TestModuleAdapter_GenerateWarnings(t *testing.T) {
	mock := &mockModuleService{
		generateFn: func(ctx context.Context, req primary.GenerateModuleRequest) (*primary.GenerateModuleResponse, error) {
			return &primary.GenerateModuleResponse{Module: "Invoices", Warnings: []string{"post-processing failed: boom"}}, nil
		},
	}
	var buf bytes.Buffer

	if _, err := NewModuleAdapter(mock, &buf).Generate(context.Background(), primary.GenerateModuleRequest{Name: "invoice"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(buf.String(), "post-processing failed: boom") {
		t.Errorf("expected warning, got: %s", buf.String())
	}
}

func TestModuleAdapter_GenerateDryRun(t *testing.T) {
	mock := &mockModuleService{
		generateFn: func(ctx context.Context, req primary.GenerateModuleRequest) (*primary.GenerateModuleResponse, error) {
			return &primary.GenerateModuleResponse{
				Module:  "Invoices",
				Path:    "/tmp/acacia/Invoices",
				Planned: []string{"folder Config", "activate Invoices"},
				Files:   []scaffold.GeneratedFile{{Path: "module.json", StubID: "json", Content: "{}"}},
			}, nil
		},
	}
	var buf bytes.Buffer

	_, err := NewModuleAdapter(mock, &buf).Generate(context.Background(), primary.GenerateModuleRequest{Name: "invoice", DryRun: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	output := buf.String()
	if !strings.Contains(output, "folder Config") || !strings.Contains(output, "module.json (json, 2 bytes)") {
		t.Errorf("expected dry run listing, got: %s", output)
	}
	if strings.Contains(output, "created successfully") {
		t.Error("expected no success line on dry run")
	}
}

func TestModuleAdapter_ListEmpty(t *testing.T) {
	var buf bytes.Buffer
	modules, err := NewModuleAdapter(&mockModuleService{}, &buf).List(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(modules) != 0 {
		t.Errorf("expected no modules, got %d", len(modules))
	}
	if !strings.Contains(buf.String(), "No modules found.") {
		t.Errorf("expected empty message, got: %s", buf.String())
	}
}

func TestModuleAdapter_List(t *testing.T) {
	mock := &mockModuleService{
		listFn: func(ctx context.Context) ([]*primary.Module, error) {
			return []*primary.Module{
				{Name: "Invoices", Path: "/tmp/acacia/Invoices", Active: true, OnDisk: true},
				{Name: "Orphans", Path: "/tmp/acacia/Orphans"},
			}, nil
		},
	}
	var buf bytes.Buffer

	if _, err := NewModuleAdapter(mock, &buf).List(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	output := buf.String()
	if !strings.Contains(output, "NAME") || !strings.Contains(output, "enabled") || !strings.Contains(output, "missing") {
		t.Errorf("unexpected table: %s", output)
	}
}

func TestModuleAdapter_SetActive(t *testing.T) {
	var got bool
	mock := &mockModuleService{
		setActiveFn: func(ctx context.Context, name string, active bool) error {
			got = active
			return nil
		},
	}
	var buf bytes.Buffer

	if err := NewModuleAdapter(mock, &buf).SetActive(context.Background(), "Invoices", true); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got {
		t.Error("expected active=true to be forwarded")
	}
	if !strings.Contains(buf.String(), "Enabled module Invoices") {
		t.Errorf("unexpected output: %s", buf.String())
	}
}

func TestModuleAdapter_SetActiveError(t *testing.T) {
	mock := &mockModuleService{
		setActiveFn: func(ctx context.Context, name string, active bool) error {
			return errors.New("module [Missing] not found")
		},
	}
	var buf bytes.Buffer

	if err := NewModuleAdapter(mock, &buf).SetActive(context.Background(), "Missing", false); err == nil {
		t.Fatal("expected error")
	}
	if buf.Len() != 0 {
		t.Errorf("expected no output on error, got: %s", buf.String())
	}
}

func TestModuleAdapter_Log(t *testing.T) {
	var gotModule string
	var gotLimit int
	mock := &mockModuleService{
		logsFn: func(ctx context.Context, module string, limit int) ([]*primary.ModuleLog, error) {
			gotModule, gotLimit = module, limit
			return []*primary.ModuleLog{
				{ID: 2, Module: "Invoices", Action: "update", FieldName: "active", OldValue: "true", NewValue: "false", CreatedAt: "2026-01-02T10:00:00Z"},
				{ID: 1, Module: "Invoices", Action: "create", CreatedAt: "2026-01-01T10:00:00Z"},
			}, nil
		},
	}
	var buf bytes.Buffer

	logs, err := NewModuleAdapter(mock, &buf).Log(context.Background(), "Invoices", 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(logs) != 2 {
		t.Errorf("expected 2 logs, got %d", len(logs))
	}
	if gotModule != "Invoices" || gotLimit != 5 {
		t.Errorf("expected filter to be passed through, got %q %d", gotModule, gotLimit)
	}

	out := buf.String()
	for _, want := range []string{"WHEN", "active: true -> false", "create"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected output to contain %q, got:\n%s", want, out)
		}
	}
}

func TestModuleAdapter_LogEmpty(t *testing.T) {
	var buf bytes.Buffer

	if _, err := NewModuleAdapter(&mockModuleService{}, &buf).Log(context.Background(), "", 0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(buf.String(), "No history recorded.") {
		t.Errorf("expected empty message, got %q", buf.String())
	}
}
