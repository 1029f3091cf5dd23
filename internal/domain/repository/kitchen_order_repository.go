package repository

import (
	"context"
	"time"

	"github.com/greenpalms/resort-api/internal/domain/entity"
	"github.com/greenpalms/resort-api/internal/domain/enum"
	"github.com/greenpalms/resort-api/pkg/pagination"
)

// KitchenOrderFilterParams narrows kitchen order listings
type KitchenOrderFilterParams struct {
	StartDate  *time.Time
	EndDate    *time.Time
	Status     *enum.OrderStatus
	Pagination *pagination.PaginationParams
}

// KitchenOrderRepository defines persistence operations for kitchen orders
type KitchenOrderRepository interface {
	Create(ctx context.Context, order *entity.KitchenOrder) error
	GetByID(ctx context.Context, id uint) (*entity.KitchenOrder, error)
	GetWithItems(ctx context.Context, id uint) (*entity.KitchenOrder, error)
	List(ctx context.Context, params *KitchenOrderFilterParams) ([]entity.KitchenOrder, int64, error)
	UpdateStatus(ctx context.Context, id uint, status enum.OrderStatus) error
	// SetInvoiceID stamps the generated invoice onto the order. It only
	// succeeds while invoice_id is still null, making invoice creation
	// from an order a one-shot operation even under concurrent requests.
	SetInvoiceID(ctx context.Context, id uint, invoiceID uint) (bool, error)
	// NextSequence returns the next order sequence number
	NextSequence(ctx context.Context) (int64, error)
	// ListPending returns pending and processing orders, oldest first
	ListPending(ctx context.Context, limit int) ([]entity.KitchenOrder, error)
}
