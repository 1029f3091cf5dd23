package repository

import (
	"context"
	"time"

	"github.com/greenpalms/resort-api/internal/domain/entity"
	"github.com/greenpalms/resort-api/internal/domain/enum"
	"github.com/greenpalms/resort-api/pkg/pagination"
)

// InvoiceFilterParams narrows invoice listings
type InvoiceFilterParams struct {
	StartDate  *time.Time
	EndDate    *time.Time
	Type       *enum.InvoiceType
	Pagination *pagination.PaginationParams
}

// AggregateFilterParams selects the invoices feeding an aggregated statement.
// GuestName is matched as a case-insensitive substring; the date range is
// inclusive of both endpoints.
type AggregateFilterParams struct {
	GuestName string
	FromDate  time.Time
	ToDate    time.Time
	Type      enum.InvoiceType
}

// InvoiceRepository defines persistence operations for invoices
type InvoiceRepository interface {
	Create(ctx context.Context, invoice *entity.Invoice) error
	GetByID(ctx context.Context, id uint) (*entity.Invoice, error)
	GetWithItems(ctx context.Context, id uint) (*entity.Invoice, error)
	List(ctx context.Context, params *InvoiceFilterParams) ([]entity.Invoice, int64, error)
	// ListForAggregate returns matching invoices with items preloaded,
	// sorted ascending by invoice date then id
	ListForAggregate(ctx context.Context, params *AggregateFilterParams) ([]entity.Invoice, error)
	Update(ctx context.Context, invoice *entity.Invoice) error
	Delete(ctx context.Context, id uint) error
	// NextSequence returns the next per-type invoice sequence number
	NextSequence(ctx context.Context, invoiceType enum.InvoiceType) (int64, error)
}
