package primary

import (
	"context"

	"github.com/example/acacia/internal/scaffold"
)

// StubService defines the primary port for inspecting stubs.
type StubService interface {
	// PreviewStub renders a stub for a module without writing anything.
	PreviewStub(ctx context.Context, req PreviewStubRequest) (*PreviewStubResponse, error)

	// ListStubs returns the available stub identifiers.
	ListStubs(ctx context.Context) ([]string, error)
}

// PreviewStubRequest contains parameters for previewing a stub.
type PreviewStubRequest struct {
	StubID    string
	Name      string
	Schematic *scaffold.Schematic
}

// PreviewStubResponse contains a rendered stub.
type PreviewStubResponse struct {
	Content      string
	Placeholders []string // configured placeholder names, in order
	Unresolved   []string // placeholders with no computation
}
