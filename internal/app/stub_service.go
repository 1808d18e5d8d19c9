package app

import (
	"context"
	"fmt"

	"github.com/example/acacia/internal/config"
	"github.com/example/acacia/internal/plan"
	"github.com/example/acacia/internal/ports/primary"
	"github.com/example/acacia/internal/ports/secondary"
	"github.com/example/acacia/internal/scaffold"
)

// StubServiceImpl implements the StubService interface.
type StubServiceImpl struct {
	scaffolding
	catalog secondary.StubCatalog
}

// NewStubService creates a new StubService with injected dependencies.
func NewStubService(cfg config.Provider, reader *plan.Reader, catalog secondary.StubCatalog) *StubServiceImpl {
	return &StubServiceImpl{
		scaffolding: scaffolding{config: cfg, plan: reader, renderer: scaffold.NewRenderer(catalog)},
		catalog:     catalog,
	}
}

// PreviewStub renders a stub for a module name without writing anything.
// Unknown placeholders are reported rather than rejected, even in strict mode.
func (s *StubServiceImpl) PreviewStub(ctx context.Context, req primary.PreviewStubRequest) (*primary.PreviewStubResponse, error) {
	if req.StubID == "" {
		return nil, fmt.Errorf("stub id cannot be empty")
	}
	if req.Name == "" && req.Schematic == nil {
		return nil, fmt.Errorf("module name cannot be empty")
	}

	resolver := s.resolver(s.snapshot(), req.Name, req.Schematic)
	resolver.SetStrict(false)

	content, err := resolver.RenderStub(req.StubID)
	if err != nil {
		return nil, err
	}

	return &primary.PreviewStubResponse{
		Content:      content,
		Placeholders: resolver.Keys(req.StubID),
		Unresolved:   resolver.Unresolved(req.StubID),
	}, nil
}

// ListStubs returns the available stub identifiers.
func (s *StubServiceImpl) ListStubs(ctx context.Context) ([]string, error) {
	ids, err := s.catalog.List()
	if err != nil {
		return nil, fmt.Errorf("failed to list stubs: %w", err)
	}
	return ids, nil
}

// Ensure StubServiceImpl implements the interface
var _ primary.StubService = (*StubServiceImpl)(nil)
