package repository

import (
	"context"
	"errors"

	"github.com/greenpalms/resort-api/internal/domain/entity"
	"github.com/greenpalms/resort-api/internal/domain/enum"
	domainRepo "github.com/greenpalms/resort-api/internal/domain/repository"
	"gorm.io/gorm"
)

type kitchenOrderRepository struct {
	db *gorm.DB
}

// NewKitchenOrderRepository creates a new kitchen order repository
func NewKitchenOrderRepository(db *gorm.DB) domainRepo.KitchenOrderRepository {
	return &kitchenOrderRepository{db: db}
}

func (r *kitchenOrderRepository) Create(ctx context.Context, order *entity.KitchenOrder) error {
	return r.db.WithContext(ctx).Create(order).Error
}

func (r *kitchenOrderRepository) GetByID(ctx context.Context, id uint) (*entity.KitchenOrder, error) {
	var order entity.KitchenOrder
	err := r.db.WithContext(ctx).First(&order, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &order, err
}

func (r *kitchenOrderRepository) GetWithItems(ctx context.Context, id uint) (*entity.KitchenOrder, error) {
	var order entity.KitchenOrder
	err := r.db.WithContext(ctx).
		Preload("Items").
		First(&order, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &order, err
}

func (r *kitchenOrderRepository) List(ctx context.Context, params *domainRepo.KitchenOrderFilterParams) ([]entity.KitchenOrder, int64, error) {
	var orders []entity.KitchenOrder
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.KitchenOrder{})

	if params.StartDate != nil {
		query = query.Where("order_date >= ?", *params.StartDate)
	}
	if params.EndDate != nil {
		query = query.Where("order_date <= ?", *params.EndDate)
	}
	if params.Status != nil {
		query = query.Where("status = ?", *params.Status)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Pagination.Validate()
	err := query.Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage).
		Preload("Items").
		Order("order_date DESC, id DESC").
		Find(&orders).Error

	return orders, total, err
}

func (r *kitchenOrderRepository) UpdateStatus(ctx context.Context, id uint, status enum.OrderStatus) error {
	return r.db.WithContext(ctx).Model(&entity.KitchenOrder{}).
		Where("id = ?", id).
		Update("status", status).Error
}

func (r *kitchenOrderRepository) SetInvoiceID(ctx context.Context, id uint, invoiceID uint) (bool, error) {
	// Conditional update keeps invoice creation one-shot even when two
	// requests race: only the one that finds invoice_id null wins.
	res := r.db.WithContext(ctx).Model(&entity.KitchenOrder{}).
		Where("id = ? AND invoice_id IS NULL", id).
		Update("invoice_id", invoiceID)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

func (r *kitchenOrderRepository) NextSequence(ctx context.Context) (int64, error) {
	return nextSequence(ctx, r.db, "kitchen_order")
}

func (r *kitchenOrderRepository) ListPending(ctx context.Context, limit int) ([]entity.KitchenOrder, error) {
	var orders []entity.KitchenOrder
	err := r.db.WithContext(ctx).Model(&entity.KitchenOrder{}).
		Where("status IN ?", []enum.OrderStatus{enum.OrderStatusPending, enum.OrderStatusProcessing}).
		Order("order_date ASC").
		Limit(limit).
		Find(&orders).Error
	return orders, err
}
