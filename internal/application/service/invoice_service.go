package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/greenpalms/resort-api/internal/domain/billing"
	"github.com/greenpalms/resort-api/internal/domain/entity"
	"github.com/greenpalms/resort-api/internal/domain/enum"
	"github.com/greenpalms/resort-api/internal/domain/repository"
	"github.com/greenpalms/resort-api/pkg/apperror"
	"github.com/greenpalms/resort-api/pkg/email"
	"github.com/greenpalms/resort-api/pkg/pagination"
	"github.com/greenpalms/resort-api/pkg/utils"
)

// InvoiceService handles invoice creation and lifecycle
type InvoiceService struct {
	invoiceRepo  repository.InvoiceRepository
	serviceRepo  repository.ServiceRepository
	menuItemRepo repository.MenuItemRepository
	guestRepo    repository.GuestRepository
	settingsRepo repository.SettingsRepository
	emailService *email.EmailService
}

// NewInvoiceService creates a new invoice service
func NewInvoiceService(
	invoiceRepo repository.InvoiceRepository,
	serviceRepo repository.ServiceRepository,
	menuItemRepo repository.MenuItemRepository,
	guestRepo repository.GuestRepository,
	settingsRepo repository.SettingsRepository,
	emailService *email.EmailService,
) *InvoiceService {
	return &InvoiceService{
		invoiceRepo:  invoiceRepo,
		serviceRepo:  serviceRepo,
		menuItemRepo: menuItemRepo,
		guestRepo:    guestRepo,
		settingsRepo: settingsRepo,
		emailService: emailService,
	}
}

// InvoiceItemInput is one requested invoice line. When ServiceID or ItemID
// is set, the rate and GST percentage are resolved from the catalog and any
// client-supplied values are ignored. A manual line carries its own name,
// rate and GST percentage.
type InvoiceItemInput struct {
	ServiceID     *uint
	ItemID        *uint
	ItemName      string
	Quantity      int
	Rate          float64
	GSTPercentage float64
}

// CreateInvoiceInput represents the create invoice input. Client-side
// totals are never accepted; all monetary fields derive from the items.
type CreateInvoiceInput struct {
	Type          enum.InvoiceType
	InvoiceDate   *time.Time
	GuestID       *uint
	GuestName     string
	GuestMobile   string
	RoomNumber    string
	CompanyName   *string
	GSTNumber     *string
	Items         []InvoiceItemInput
	PaymentStatus enum.PaymentStatus
	PaymentMethod enum.PaymentMethod
	Notes         *string
	BookingDate   *string
	CheckInTime   *string
	CheckOutTime  *string
	CreatedBy     uuid.UUID
}

// CreateInvoice creates an invoice with server-side computed totals and a
// sequential per-type invoice number
func (s *InvoiceService) CreateInvoice(ctx context.Context, input *CreateInvoiceInput) (*entity.Invoice, error) {
	if !input.Type.Valid() {
		return nil, apperror.NewBadRequestError("Invalid invoice type")
	}
	if len(input.Items) == 0 {
		return nil, apperror.NewBadRequestError("Invoice must contain at least one item")
	}

	guestName := input.GuestName
	guestMobile := input.GuestMobile
	roomNumber := input.RoomNumber
	companyName := input.CompanyName
	gstNumber := input.GSTNumber
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
		if guestMobile == "" {
			guestMobile = guest.Mobile
		}
		if roomNumber == "" {
			roomNumber = guest.RoomNumber
		}
		if companyName == nil {
			companyName = guest.CompanyName
		}
		if gstNumber == nil {
			gstNumber = guest.GSTNumber
		}
	}
	if guestName == "" {
		return nil, apperror.NewBadRequestError("Guest name is required")
	}

	items, totals, err := s.buildItems(ctx, input.Items)
	if err != nil {
		return nil, err
	}

	paymentStatus := input.PaymentStatus
	if paymentStatus == "" {
		paymentStatus = enum.PaymentStatusPending
	}
	if !paymentStatus.Valid() {
		return nil, apperror.NewBadRequestError("Invalid payment status")
	}
	paymentMethod := input.PaymentMethod
	if paymentMethod == "" {
		paymentMethod = enum.PaymentMethodCash
	}
	if !paymentMethod.Valid() {
		return nil, apperror.NewBadRequestError("Invalid payment method")
	}

	invoiceDate := time.Now()
	if input.InvoiceDate != nil {
		invoiceDate = *input.InvoiceDate
	}

	seq, err := s.invoiceRepo.NextSequence(ctx, input.Type)
	if err != nil {
		return nil, err
	}

	invoice := &entity.Invoice{
		InvoiceNumber: utils.FormatDocumentNumber(input.Type.NumberPrefix(), seq),
		InvoiceDate:   invoiceDate,
		Type:          input.Type,
		GuestID:       input.GuestID,
		GuestName:     guestName,
		GuestMobile:   guestMobile,
		RoomNumber:    roomNumber,
		CompanyName:   companyName,
		GSTNumber:     gstNumber,
		Subtotal:      billing.Round2(totals.Subtotal),
		TaxAmount:     billing.Round2(totals.TaxAmount),
		TotalAmount:   billing.Round2(totals.TotalAmount),
		PaymentStatus: paymentStatus,
		PaymentMethod: paymentMethod,
		Notes:         input.Notes,
		BookingDate:   input.BookingDate,
		CheckInTime:   input.CheckInTime,
		CheckOutTime:  input.CheckOutTime,
		CreatedBy:     input.CreatedBy,
		Items:         items,
	}

	if err := s.invoiceRepo.Create(ctx, invoice); err != nil {
		return nil, err
	}

	return invoice, nil
}

// buildItems resolves catalog references, snapshots rates and computes all
// derived monetary fields
func (s *InvoiceService) buildItems(ctx context.Context, inputs []InvoiceItemInput) ([]entity.InvoiceItem, billing.Totals, error) {
	items := make([]entity.InvoiceItem, 0, len(inputs))
	lines := make([]billing.Line, 0, len(inputs))

	for _, in := range inputs {
		name := in.ItemName
		rate := in.Rate
		gstPct := in.GSTPercentage

		switch {
		case in.ServiceID != nil:
			svc, err := s.serviceRepo.GetByID(ctx, *in.ServiceID)
			if err != nil {
				return nil, billing.Totals{}, err
			}
			if svc == nil {
				return nil, billing.Totals{}, apperror.NewNotFoundError("Service")
			}
			name = svc.Name
			rate = svc.Price
			gstPct = svc.GSTPercentage
		case in.ItemID != nil:
			menuItem, err := s.menuItemRepo.GetByID(ctx, *in.ItemID)
			if err != nil {
				return nil, billing.Totals{}, err
			}
			if menuItem == nil {
				return nil, billing.Totals{}, apperror.NewNotFoundError("Menu item")
			}
			name = menuItem.Name
			rate = menuItem.Price
			gstPct = menuItem.GSTPercentage
		}

		if name == "" {
			return nil, billing.Totals{}, apperror.NewBadRequestError("Item name is required")
		}

		line, err := billing.ComputeLine(in.Quantity, rate, gstPct)
		if err != nil {
			return nil, billing.Totals{}, err
		}

		items = append(items, entity.InvoiceItem{
			ServiceID:     in.ServiceID,
			ItemID:        in.ItemID,
			ItemName:      name,
			Quantity:      in.Quantity,
			Rate:          rate,
			GSTPercentage: gstPct,
			GSTAmount:     billing.Round2(line.GSTAmount),
			Total:         billing.Round2(line.LineTotal),
		})
		lines = append(lines, line)
	}

	return items, billing.Aggregate(lines), nil
}

// GetInvoice retrieves an invoice with its items
func (s *InvoiceService) GetInvoice(ctx context.Context, id uint) (*entity.Invoice, error) {
	invoice, err := s.invoiceRepo.GetWithItems(ctx, id)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, apperror.NewNotFoundError("Invoice")
	}
	return invoice, nil
}

// ListInvoicesInput narrows the invoice listing
type ListInvoicesInput struct {
	StartDate *time.Time
	EndDate   *time.Time
	Type      *enum.InvoiceType
	Page      int
	PerPage   int
}

// ListInvoices returns invoices, newest first
func (s *InvoiceService) ListInvoices(ctx context.Context, input *ListInvoicesInput) (*pagination.PaginatedResult[entity.Invoice], error) {
	params := &repository.InvoiceFilterParams{
		StartDate: input.StartDate,
		EndDate:   input.EndDate,
		Type:      input.Type,
		Pagination: &pagination.PaginationParams{
			Page:    input.Page,
			PerPage: input.PerPage,
		},
	}
	params.Pagination.Validate()

	invoices, total, err := s.invoiceRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	return pagination.NewPaginatedResult(
		invoices,
		pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total),
	), nil
}

// UpdatePaymentInput represents a payment status/method correction
type UpdatePaymentInput struct {
	PaymentStatus *enum.PaymentStatus
	PaymentMethod *enum.PaymentMethod
}

// UpdatePayment corrects the payment status and method. Payment status is
// not a forward-only machine; authorized staff may move it either way.
func (s *InvoiceService) UpdatePayment(ctx context.Context, id uint, input *UpdatePaymentInput) (*entity.Invoice, error) {
	invoice, err := s.invoiceRepo.GetWithItems(ctx, id)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, apperror.NewNotFoundError("Invoice")
	}

	if input.PaymentStatus != nil {
		if !input.PaymentStatus.Valid() {
			return nil, apperror.NewBadRequestError("Invalid payment status")
		}
		invoice.PaymentStatus = *input.PaymentStatus
	}
	if input.PaymentMethod != nil {
		if !input.PaymentMethod.Valid() {
			return nil, apperror.NewBadRequestError("Invalid payment method")
		}
		invoice.PaymentMethod = *input.PaymentMethod
	}

	if err := s.invoiceRepo.Update(ctx, invoice); err != nil {
		return nil, err
	}

	return invoice, nil
}

// UpdateCheckoutInput carries the editable stay-time strings
type UpdateCheckoutInput struct {
	BookingDate  *string
	CheckInTime  *string
	CheckOutTime *string
}

// UpdateCheckout updates the booking and check-in/check-out time strings.
// Items and totals stay untouched.
func (s *InvoiceService) UpdateCheckout(ctx context.Context, id uint, input *UpdateCheckoutInput) (*entity.Invoice, error) {
	invoice, err := s.invoiceRepo.GetWithItems(ctx, id)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, apperror.NewNotFoundError("Invoice")
	}

	if input.BookingDate != nil {
		invoice.BookingDate = input.BookingDate
	}
	if input.CheckInTime != nil {
		invoice.CheckInTime = input.CheckInTime
	}
	if input.CheckOutTime != nil {
		invoice.CheckOutTime = input.CheckOutTime
	}

	if err := s.invoiceRepo.Update(ctx, invoice); err != nil {
		return nil, err
	}

	return invoice, nil
}

// DeleteInvoice permanently removes an invoice and its items
func (s *InvoiceService) DeleteInvoice(ctx context.Context, id uint) error {
	invoice, err := s.invoiceRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if invoice == nil {
		return apperror.NewNotFoundError("Invoice")
	}

	return s.invoiceRepo.Delete(ctx, id)
}

// EmailInvoice sends the invoice to the given address using the resort
// identity from settings
func (s *InvoiceService) EmailInvoice(ctx context.Context, id uint, toEmail string) error {
	if toEmail == "" {
		return apperror.NewBadRequestError("Recipient email is required")
	}
	if !s.emailService.IsConfigured() {
		return apperror.NewBadRequestError("Email is not configured")
	}

	invoice, err := s.invoiceRepo.GetWithItems(ctx, id)
	if err != nil {
		return err
	}
	if invoice == nil {
		return apperror.NewNotFoundError("Invoice")
	}

	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return err
	}

	resortName := "Resort"
	gstin := ""
	if settings != nil {
		resortName = settings.ResortName
		gstin = settings.ResortGSTIN
		if invoice.Type == enum.InvoiceTypeKitchen {
			gstin = settings.KitchenGSTIN
		}
	}

	lines := make([]email.InvoiceLine, 0, len(invoice.Items))
	for _, it := range invoice.Items {
		lines = append(lines, email.InvoiceLine{
			Name:      it.ItemName,
			Quantity:  it.Quantity,
			Rate:      formatMoney(it.Rate),
			GSTAmount: formatMoney(it.GSTAmount),
			Total:     formatMoney(it.Total),
		})
	}

	cgst, sgst := billing.SplitGST(invoice.TaxAmount)
	data := email.InvoiceEmailData{
		ResortName:    resortName,
		GSTIN:         gstin,
		InvoiceNumber: invoice.InvoiceNumber,
		InvoiceDate:   invoice.InvoiceDate.Format("02 Jan 2006"),
		GuestName:     invoice.GuestName,
		RoomNumber:    invoice.RoomNumber,
		Lines:         lines,
		Subtotal:      formatMoney(invoice.Subtotal),
		CGST:          formatMoney(cgst),
		SGST:          formatMoney(sgst),
		TotalAmount:   formatMoney(invoice.TotalAmount),
		PaymentStatus: invoice.PaymentStatus.String(),
	}

	return s.emailService.SendInvoiceEmail(toEmail, data)
}

func formatMoney(v float64) string {
	return fmt.Sprintf("%.2f", billing.Round2(v))
}
