package repository

import (
	"context"
	"errors"

	"github.com/greenpalms/resort-api/internal/domain/entity"
	domainRepo "github.com/greenpalms/resort-api/internal/domain/repository"
	"gorm.io/gorm"
)

type guestRepository struct {
	db *gorm.DB
}

// NewGuestRepository creates a new guest repository
func NewGuestRepository(db *gorm.DB) domainRepo.GuestRepository {
	return &guestRepository{db: db}
}

func (r *guestRepository) Create(ctx context.Context, guest *entity.Guest) error {
	return r.db.WithContext(ctx).Create(guest).Error
}

func (r *guestRepository) GetByID(ctx context.Context, id uint) (*entity.Guest, error) {
	var guest entity.Guest
	err := r.db.WithContext(ctx).First(&guest, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &guest, err
}

func (r *guestRepository) List(ctx context.Context, search string) ([]entity.Guest, error) {
	var guests []entity.Guest

	query := r.db.WithContext(ctx).Model(&entity.Guest{})
	if search != "" {
		pattern := "%" + search + "%"
		query = query.Where("name ILIKE ? OR room_number ILIKE ? OR mobile ILIKE ?", pattern, pattern, pattern)
	}

	err := query.Order("created_at DESC").Find(&guests).Error
	return guests, err
}

func (r *guestRepository) Update(ctx context.Context, guest *entity.Guest) error {
	return r.db.WithContext(ctx).Save(guest).Error
}

func (r *guestRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&entity.Guest{}, "id = ?", id).Error
}
