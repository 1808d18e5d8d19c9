package primary

import "context"

// MenuService defines the primary port for admin menu operations.
type MenuService interface {
	// ListMenus retrieves all menu entries.
	ListMenus(ctx context.Context) ([]*Menu, error)
}

// Menu represents a menu entry at the port boundary.
type Menu struct {
	ID            int64
	Title         string
	Icon          string
	Route         string
	ActivePattern string
	Position      int
	ParentID      int64
	CreatedAt     string
}
