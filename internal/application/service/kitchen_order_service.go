package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/greenpalms/resort-api/internal/domain/billing"
	"github.com/greenpalms/resort-api/internal/domain/entity"
	"github.com/greenpalms/resort-api/internal/domain/enum"
	"github.com/greenpalms/resort-api/internal/domain/repository"
	"github.com/greenpalms/resort-api/pkg/apperror"
	"github.com/greenpalms/resort-api/pkg/pagination"
	"github.com/greenpalms/resort-api/pkg/utils"
)

// kitchenOrderNumberPrefix prefixes sequential order numbers (ORD-00042)
const kitchenOrderNumberPrefix = "ORD"

// KitchenOrderService handles the kitchen order lifecycle
type KitchenOrderService struct {
	orderRepo    repository.KitchenOrderRepository
	menuItemRepo repository.MenuItemRepository
	guestRepo    repository.GuestRepository
	invoiceSvc   *InvoiceService
}

// NewKitchenOrderService creates a new kitchen order service
func NewKitchenOrderService(
	orderRepo repository.KitchenOrderRepository,
	menuItemRepo repository.MenuItemRepository,
	guestRepo repository.GuestRepository,
	invoiceSvc *InvoiceService,
) *KitchenOrderService {
	return &KitchenOrderService{
		orderRepo:    orderRepo,
		menuItemRepo: menuItemRepo,
		guestRepo:    guestRepo,
		invoiceSvc:   invoiceSvc,
	}
}

// OrderItemInput is one requested line of a kitchen order
type OrderItemInput struct {
	ItemID   uint
	Quantity int
}

// CreateOrderInput represents the create kitchen order input
type CreateOrderInput struct {
	GuestID    *uint
	GuestName  string
	RoomNumber string
	OrderType  enum.OrderType
	Items      []OrderItemInput
	CreatedBy  uuid.UUID
}

// CreateOrder creates a kitchen order. Rates and GST percentages are
// snapshotted from the menu at creation time and all monetary fields are
// recomputed server-side.
func (s *KitchenOrderService) CreateOrder(ctx context.Context, input *CreateOrderInput) (*entity.KitchenOrder, error) {
	if len(input.Items) == 0 {
		return nil, apperror.NewBadRequestError("Order must contain at least one item")
	}
	if !input.OrderType.Valid() {
		return nil, apperror.NewBadRequestError("Invalid order type")
	}

	guestName := input.GuestName
	roomNumber := input.RoomNumber
	if input.GuestID != nil {
		guest, err := s.guestRepo.GetByID(ctx, *input.GuestID)
		if err != nil {
			return nil, err
		}
		if guest == nil {
			return nil, apperror.NewNotFoundError("Guest")
		}
		if guestName == "" {
			guestName = guest.Name
		}
		if roomNumber == "" {
			roomNumber = guest.RoomNumber
		}
	}
	if guestName == "" {
		return nil, apperror.NewBadRequestError("Guest name is required")
	}

	items := make([]entity.KitchenOrderItem, 0, len(input.Items))
	lines := make([]billing.Line, 0, len(input.Items))
	for _, in := range input.Items {
		menuItem, err := s.menuItemRepo.GetByID(ctx, in.ItemID)
		if err != nil {
			return nil, err
		}
		if menuItem == nil {
			return nil, apperror.NewNotFoundError("Menu item")
		}
		if !menuItem.IsActive {
			return nil, apperror.NewBadRequestError("Menu item " + menuItem.Name + " is not available")
		}

		line, err := billing.ComputeLine(in.Quantity, menuItem.Price, menuItem.GSTPercentage)
		if err != nil {
			return nil, err
		}

		itemID := menuItem.ID
		items = append(items, entity.KitchenOrderItem{
			ItemID:        &itemID,
			ItemName:      menuItem.Name,
			Quantity:      in.Quantity,
			Rate:          menuItem.Price,
			GSTPercentage: menuItem.GSTPercentage,
			GSTAmount:     billing.Round2(line.GSTAmount),
			Total:         billing.Round2(line.LineTotal),
		})
		lines = append(lines, line)
	}

	totals := billing.Aggregate(lines)

	seq, err := s.orderRepo.NextSequence(ctx)
	if err != nil {
		return nil, err
	}

	order := &entity.KitchenOrder{
		OrderNumber: utils.FormatDocumentNumber(kitchenOrderNumberPrefix, seq),
		GuestID:     input.GuestID,
		GuestName:   guestName,
		RoomNumber:  roomNumber,
		OrderType:   input.OrderType,
		Status:      enum.OrderStatusPending,
		OrderDate:   time.Now(),
		Subtotal:    billing.Round2(totals.Subtotal),
		TaxAmount:   billing.Round2(totals.TaxAmount),
		TotalAmount: billing.Round2(totals.TotalAmount),
		CreatedBy:   input.CreatedBy,
		Items:       items,
	}

	if err := s.orderRepo.Create(ctx, order); err != nil {
		return nil, err
	}

	return order, nil
}

// GetOrder retrieves a kitchen order with its items
func (s *KitchenOrderService) GetOrder(ctx context.Context, id uint) (*entity.KitchenOrder, error) {
	order, err := s.orderRepo.GetWithItems(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, apperror.NewNotFoundError("Kitchen order")
	}
	return order, nil
}

// ListOrdersInput narrows the kitchen order listing
type ListOrdersInput struct {
	StartDate *time.Time
	EndDate   *time.Time
	Status    *enum.OrderStatus
	Page      int
	PerPage   int
}

// ListOrders returns kitchen orders, newest first
func (s *KitchenOrderService) ListOrders(ctx context.Context, input *ListOrdersInput) (*pagination.PaginatedResult[entity.KitchenOrder], error) {
	params := &repository.KitchenOrderFilterParams{
		StartDate: input.StartDate,
		EndDate:   input.EndDate,
		Status:    input.Status,
		Pagination: &pagination.PaginationParams{
			Page:    input.Page,
			PerPage: input.PerPage,
		},
	}
	params.Pagination.Validate()

	orders, total, err := s.orderRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	return pagination.NewPaginatedResult(
		orders,
		pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total),
	), nil
}

// UpdateStatus advances a kitchen order along its fulfilment machine. Any
// disallowed move, including every move out of a terminal state, is rejected
// naming both states.
func (s *KitchenOrderService) UpdateStatus(ctx context.Context, id uint, next enum.OrderStatus) (*entity.KitchenOrder, error) {
	if !next.Valid() {
		return nil, apperror.NewBadRequestError("Invalid order status")
	}

	order, err := s.orderRepo.GetWithItems(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, apperror.NewNotFoundError("Kitchen order")
	}

	if !order.Status.CanTransitionTo(next) {
		return nil, apperror.NewForbiddenTransition(order.Status.String(), next.String())
	}

	if err := s.orderRepo.UpdateStatus(ctx, id, next); err != nil {
		return nil, err
	}

	order.Status = next
	return order, nil
}

// CreateInvoiceFromOrder snapshots a completed order's items into a new
// kitchen invoice and stamps the invoice onto the order. An order spawns at
// most one invoice in its lifetime.
func (s *KitchenOrderService) CreateInvoiceFromOrder(ctx context.Context, id uint, createdBy uuid.UUID) (*entity.Invoice, error) {
	order, err := s.orderRepo.GetWithItems(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, apperror.NewNotFoundError("Kitchen order")
	}

	if order.InvoiceID != nil {
		return nil, apperror.ErrAlreadyInvoiced
	}
	if order.Status != enum.OrderStatusCompleted {
		return nil, apperror.NewConflictError("Only completed orders can be invoiced")
	}

	items := make([]InvoiceItemInput, 0, len(order.Items))
	for _, it := range order.Items {
		items = append(items, InvoiceItemInput{
			ItemID:        it.ItemID,
			ItemName:      it.ItemName,
			Quantity:      it.Quantity,
			Rate:          it.Rate,
			GSTPercentage: it.GSTPercentage,
		})
	}

	invoice, err := s.invoiceSvc.CreateInvoice(ctx, &CreateInvoiceInput{
		Type:       enum.InvoiceTypeKitchen,
		GuestID:    order.GuestID,
		GuestName:  order.GuestName,
		RoomNumber: order.RoomNumber,
		Items:      items,
		CreatedBy:  createdBy,
	})
	if err != nil {
		return nil, err
	}

	claimed, err := s.orderRepo.SetInvoiceID(ctx, order.ID, invoice.ID)
	if err != nil {
		return nil, err
	}
	if !claimed {
		// A concurrent request won the race; discard the duplicate invoice.
		if delErr := s.invoiceSvc.DeleteInvoice(ctx, invoice.ID); delErr != nil {
			return nil, delErr
		}
		return nil, apperror.ErrAlreadyInvoiced
	}

	return invoice, nil
}

// ListPendingOrders returns orders still in the kitchen queue, oldest first
func (s *KitchenOrderService) ListPendingOrders(ctx context.Context, limit int) ([]entity.KitchenOrder, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	return s.orderRepo.ListPending(ctx, limit)
}
