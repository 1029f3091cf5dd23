package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/greenpalms/resort-api/internal/application/service"
	"github.com/greenpalms/resort-api/internal/domain/enum"
	"github.com/greenpalms/resort-api/internal/presentation/http/dto/request"
	"github.com/greenpalms/resort-api/internal/presentation/http/dto/response"
)

// KitchenOrderHandler handles kitchen order HTTP requests
type KitchenOrderHandler struct {
	orderService *service.KitchenOrderService
}

// NewKitchenOrderHandler creates a new kitchen order handler
func NewKitchenOrderHandler(orderService *service.KitchenOrderService) *KitchenOrderHandler {
	return &KitchenOrderHandler{orderService: orderService}
}

// Create handles kitchen order creation
func (h *KitchenOrderHandler) Create(c *gin.Context) {
	var req request.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	items := make([]service.OrderItemInput, 0, len(req.Items))
	for _, it := range req.Items {
		items = append(items, service.OrderItemInput{
			ItemID:   it.ItemID,
			Quantity: it.Quantity,
		})
	}

	input := &service.CreateOrderInput{
		GuestID:    req.GuestID,
		GuestName:  req.GuestName,
		RoomNumber: req.RoomNumber,
		OrderType:  enum.OrderType(req.OrderType),
		Items:      items,
	}
	if id := GetUserID(c); id != nil {
		input.CreatedBy = *id
	}

	order, err := h.orderService.CreateOrder(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Order created", order)
}

// List returns kitchen orders filtered by ?start_date&end_date&status
func (h *KitchenOrderHandler) List(c *gin.Context) {
	startDate, err := ParseDateQuery(c, "start_date")
	if err != nil {
		response.Error(c, err)
		return
	}
	endDate, err := ParseDateQuery(c, "end_date")
	if err != nil {
		response.Error(c, err)
		return
	}
	if endDate != nil {
		e := endDate.AddDate(0, 0, 1).Add(-time.Nanosecond)
		endDate = &e
	}

	var status *enum.OrderStatus
	if raw := c.Query("status"); raw != "" {
		s := enum.OrderStatus(raw)
		if !s.Valid() {
			response.BadRequest(c, "Invalid order status")
			return
		}
		status = &s
	}

	page, perPage := ParsePaginationQuery(c)

	result, err := h.orderService.ListOrders(c.Request.Context(), &service.ListOrdersInput{
		StartDate: startDate,
		EndDate:   endDate,
		Status:    status,
		Page:      page,
		PerPage:   perPage,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Orders retrieved", result)
}

// Get returns one kitchen order with its items
func (h *KitchenOrderHandler) Get(c *gin.Context) {
	id, err := ParseUintParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	order, err := h.orderService.GetOrder(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Order retrieved", order)
}

// UpdateStatus advances a kitchen order's fulfilment state
func (h *KitchenOrderHandler) UpdateStatus(c *gin.Context) {
	id, err := ParseUintParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	var req request.UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	order, err := h.orderService.UpdateStatus(c.Request.Context(), id, enum.OrderStatus(req.Status))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Order status updated", order)
}

// CreateInvoice creates the one invoice a completed order may spawn
func (h *KitchenOrderHandler) CreateInvoice(c *gin.Context) {
	id, err := ParseUintParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "Not authenticated")
		return
	}

	invoice, err := h.orderService.CreateInvoiceFromOrder(c.Request.Context(), id, *userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Invoice created from order", invoice)
}
