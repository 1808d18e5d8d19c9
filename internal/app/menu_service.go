package app

import (
	"context"
	"fmt"

	"github.com/example/acacia/internal/ports/primary"
	"github.com/example/acacia/internal/ports/secondary"
)

// MenuServiceImpl implements the MenuService interface.
type MenuServiceImpl struct {
	menuRepo secondary.MenuRepository
}

// NewMenuService creates a new MenuService with injected dependencies.
func NewMenuService(menuRepo secondary.MenuRepository) *MenuServiceImpl {
	return &MenuServiceImpl{
		menuRepo: menuRepo,
	}
}

// ListMenus retrieves all menu entries.
func (s *MenuServiceImpl) ListMenus(ctx context.Context) ([]*primary.Menu, error) {
	records, err := s.menuRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list menus: %w", err)
	}

	menus := make([]*primary.Menu, len(records))
	for i, r := range records {
		menus[i] = recordToMenu(r)
	}
	return menus, nil
}

func recordToMenu(r *secondary.MenuRecord) *primary.Menu {
	return &primary.Menu{
		ID:            r.ID,
		Title:         r.Title,
		Icon:          r.Icon,
		Route:         r.Route,
		ActivePattern: r.ActivePattern,
		Position:      r.Position,
		ParentID:      r.ParentID,
		CreatedAt:     r.CreatedAt,
	}
}

// Ensure MenuServiceImpl implements the interface
var _ primary.MenuService = (*MenuServiceImpl)(nil)
