package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/greenpalms/resort-api/internal/application/service"
	"github.com/greenpalms/resort-api/internal/domain/enum"
	"github.com/greenpalms/resort-api/internal/presentation/http/dto/request"
	"github.com/greenpalms/resort-api/internal/presentation/http/dto/response"
	"github.com/greenpalms/resort-api/pkg/apperror"
)

// InvoiceHandler handles invoice HTTP requests
type InvoiceHandler struct {
	invoiceService   *service.InvoiceService
	aggregateService *service.AggregateService
}

// NewInvoiceHandler creates a new invoice handler
func NewInvoiceHandler(invoiceService *service.InvoiceService, aggregateService *service.AggregateService) *InvoiceHandler {
	return &InvoiceHandler{
		invoiceService:   invoiceService,
		aggregateService: aggregateService,
	}
}

// Create handles invoice creation
// @Summary Create invoice
// @Description Create an invoice; totals are recomputed server-side
// @Tags invoices
// @Accept json
// @Produce json
// @Param request body request.CreateInvoiceRequest true "Invoice"
// @Success 201 {object} response.APIResponse
// @Router /invoices [post]
func (h *InvoiceHandler) Create(c *gin.Context) {
	var req request.CreateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	input, err := createInvoiceInputFromRequest(&req)
	if err != nil {
		response.Error(c, err)
		return
	}
	if id := GetUserID(c); id != nil {
		input.CreatedBy = *id
	}

	invoice, err := h.invoiceService.CreateInvoice(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Invoice created", invoice)
}

func createInvoiceInputFromRequest(req *request.CreateInvoiceRequest) (*service.CreateInvoiceInput, error) {
	items := make([]service.InvoiceItemInput, 0, len(req.Items))
	for _, it := range req.Items {
		items = append(items, service.InvoiceItemInput{
			ServiceID:     it.ServiceID,
			ItemID:        it.ItemID,
			ItemName:      it.ItemName,
			Quantity:      it.Quantity,
			Rate:          it.Rate.Float(),
			GSTPercentage: it.GSTPercentage.Float(),
		})
	}

	input := &service.CreateInvoiceInput{
		Type:          enum.InvoiceType(req.Type),
		GuestID:       req.GuestID,
		GuestName:     req.GuestName,
		GuestMobile:   req.GuestMobile,
		RoomNumber:    req.RoomNumber,
		CompanyName:   req.CompanyName,
		GSTNumber:     req.GSTNumber,
		Items:         items,
		PaymentStatus: enum.PaymentStatus(req.PaymentStatus),
		PaymentMethod: enum.PaymentMethod(req.PaymentMethod),
		Notes:         req.Notes,
		BookingDate:   req.BookingDate,
		CheckInTime:   req.CheckInTime,
		CheckOutTime:  req.CheckOutTime,
	}

	if req.InvoiceDate != nil && *req.InvoiceDate != "" {
		t, err := time.Parse(time.RFC3339, *req.InvoiceDate)
		if err != nil {
			t, err = time.Parse("2006-01-02", *req.InvoiceDate)
			if err != nil {
				return nil, apperror.NewBadRequestError("invoice_date must be ISO-8601")
			}
		}
		input.InvoiceDate = &t
	}

	return input, nil
}

// List returns invoices filtered by ?start_date&end_date&type with pagination
func (h *InvoiceHandler) List(c *gin.Context) {
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

	var invoiceType *enum.InvoiceType
	if raw := c.Query("type"); raw != "" {
		t := enum.InvoiceType(raw)
		if !t.Valid() {
			response.BadRequest(c, "Invalid invoice type")
			return
		}
		invoiceType = &t
	}

	page, perPage := ParsePaginationQuery(c)

	result, err := h.invoiceService.ListInvoices(c.Request.Context(), &service.ListInvoicesInput{
		StartDate: startDate,
		EndDate:   endDate,
		Type:      invoiceType,
		Page:      page,
		PerPage:   perPage,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Invoices retrieved", result)
}

// Get returns one invoice with its items
func (h *InvoiceHandler) Get(c *gin.Context) {
	id, err := ParseUintParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	invoice, err := h.invoiceService.GetInvoice(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Invoice retrieved", invoice)
}

// UpdatePayment corrects the payment status and method
func (h *InvoiceHandler) UpdatePayment(c *gin.Context) {
	id, err := ParseUintParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	var req request.UpdatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	input := &service.UpdatePaymentInput{}
	if req.PaymentStatus != nil {
		s := enum.PaymentStatus(*req.PaymentStatus)
		input.PaymentStatus = &s
	}
	if req.PaymentMethod != nil {
		m := enum.PaymentMethod(*req.PaymentMethod)
		input.PaymentMethod = &m
	}

	invoice, err := h.invoiceService.UpdatePayment(c.Request.Context(), id, input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Payment updated", invoice)
}

// UpdateCheckout updates the booking/check-in/check-out time strings
func (h *InvoiceHandler) UpdateCheckout(c *gin.Context) {
	id, err := ParseUintParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	var req request.UpdateCheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	invoice, err := h.invoiceService.UpdateCheckout(c.Request.Context(), id, &service.UpdateCheckoutInput{
		BookingDate:  req.BookingDate,
		CheckInTime:  req.CheckInTime,
		CheckOutTime: req.CheckOutTime,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Invoice updated", invoice)
}

// Delete permanently removes an invoice
func (h *InvoiceHandler) Delete(c *gin.Context) {
	id, err := ParseUintParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.invoiceService.DeleteInvoice(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

// Email sends the invoice to an address
func (h *InvoiceHandler) Email(c *gin.Context) {
	id, err := ParseUintParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	var req request.EmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	if err := h.invoiceService.EmailInvoice(c.Request.Context(), id, req.Email); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Invoice emailed", nil)
}

// Aggregated returns a consolidated statement over
// ?guest_name&from_date&to_date for the :type in the path
func (h *InvoiceHandler) Aggregated(c *gin.Context) {
	input, err := aggregateInputFromQuery(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	report, err := h.aggregateService.Compose(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Aggregated report", report)
}

// EmailAggregated sends a consolidated statement to an address
func (h *InvoiceHandler) EmailAggregated(c *gin.Context) {
	input, err := aggregateInputFromQuery(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	var req request.EmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	if err := h.aggregateService.EmailStatement(c.Request.Context(), input, req.Email); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Statement emailed", nil)
}

func aggregateInputFromQuery(c *gin.Context) (*service.AggregateInput, error) {
	invoiceType := enum.InvoiceType(c.Param("type"))
	if !invoiceType.Valid() {
		return nil, apperror.NewBadRequestError("Invalid invoice type")
	}

	start, end, err := ParseDateRangeQuery(c, "from_date", "to_date")
	if err != nil {
		return nil, err
	}

	return &service.AggregateInput{
		Type:      invoiceType,
		GuestName: c.Query("guest_name"),
		FromDate:  start,
		ToDate:    end,
	}, nil
}
