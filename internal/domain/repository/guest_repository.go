package repository

import (
	"context"

	"github.com/greenpalms/resort-api/internal/domain/entity"
)

// GuestRepository defines persistence operations for guests
type GuestRepository interface {
	Create(ctx context.Context, guest *entity.Guest) error
	GetByID(ctx context.Context, id uint) (*entity.Guest, error)
	// List returns guests, newest first, optionally filtered by a
	// case-insensitive substring match on name, room number or mobile
	List(ctx context.Context, search string) ([]entity.Guest, error)
	Update(ctx context.Context, guest *entity.Guest) error
	Delete(ctx context.Context, id uint) error
}
