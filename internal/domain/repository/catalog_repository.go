package repository

import (
	"context"

	"github.com/greenpalms/resort-api/internal/domain/entity"
)

// ServiceRepository defines persistence operations for the resort catalog
type ServiceRepository interface {
	Create(ctx context.Context, svc *entity.Service) error
	GetByID(ctx context.Context, id uint) (*entity.Service, error)
	List(ctx context.Context, activeOnly bool) ([]entity.Service, error)
	Update(ctx context.Context, svc *entity.Service) error
	Delete(ctx context.Context, id uint) error
}

// MenuItemRepository defines persistence operations for the kitchen catalog
type MenuItemRepository interface {
	Create(ctx context.Context, item *entity.MenuItem) error
	GetByID(ctx context.Context, id uint) (*entity.MenuItem, error)
	// List filters by menu type when itemType is non-empty
	List(ctx context.Context, itemType string, activeOnly bool) ([]entity.MenuItem, error)
	Update(ctx context.Context, item *entity.MenuItem) error
	Delete(ctx context.Context, id uint) error
}
