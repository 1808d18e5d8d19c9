package secondary

import "github.com/example/acacia/internal/scaffold"

// StubCatalog is a stub source that can enumerate its stubs.
type StubCatalog interface {
	scaffold.StubSource
	List() ([]string, error)
}
