package service

import (
	"context"
	"fmt"
	"time"

	"github.com/greenpalms/resort-api/internal/domain/billing"
	"github.com/greenpalms/resort-api/internal/domain/entity"
	"github.com/greenpalms/resort-api/internal/domain/enum"
	"github.com/greenpalms/resort-api/internal/domain/repository"
	"github.com/greenpalms/resort-api/pkg/apperror"
	"github.com/greenpalms/resort-api/pkg/email"
)

// AggregateService composes consolidated statements over a guest's invoices
type AggregateService struct {
	invoiceRepo  repository.InvoiceRepository
	settingsRepo repository.SettingsRepository
	emailService *email.EmailService
}

// NewAggregateService creates a new aggregate service
func NewAggregateService(
	invoiceRepo repository.InvoiceRepository,
	settingsRepo repository.SettingsRepository,
	emailService *email.EmailService,
) *AggregateService {
	return &AggregateService{
		invoiceRepo:  invoiceRepo,
		settingsRepo: settingsRepo,
		emailService: emailService,
	}
}

// AggregateInput selects the invoices feeding an aggregated report
type AggregateInput struct {
	Type      enum.InvoiceType
	GuestName string
	FromDate  time.Time
	ToDate    time.Time
}

// BusinessInfo is the issuing identity block of an aggregated report
type BusinessInfo struct {
	Name    string `json:"name"`
	GSTIN   string `json:"gstin"`
	Address string `json:"address"`
	Contact string `json:"contact"`
	Email   string `json:"email"`
}

// AggregateSummary is the totals block of an aggregated report
type AggregateSummary struct {
	TotalInvoices        int            `json:"total_invoices"`
	TotalSubtotal        float64        `json:"total_subtotal"`
	TotalTax             float64        `json:"total_tax"`
	TotalCGST            float64        `json:"total_cgst"`
	TotalSGST            float64        `json:"total_sgst"`
	TotalAmount          float64        `json:"total_amount"`
	PaymentStatusSummary map[string]int `json:"payment_status_summary"`
	PaymentMethodSummary map[string]int `json:"payment_method_summary"`
	OrderTypeSummary     map[string]int `json:"order_type_summary,omitempty"`
}

// AggregatedReport is the computed, never-persisted consolidated statement
type AggregatedReport struct {
	Type         enum.InvoiceType  `json:"type"`
	BusinessInfo *BusinessInfo     `json:"business_info"`
	GuestFilter  string            `json:"guest_filter"`
	FromDate     string            `json:"from_date"`
	ToDate       string            `json:"to_date"`
	Invoices     []entity.Invoice  `json:"invoices"`
	Summary      *AggregateSummary `json:"summary"`
}

// Compose builds an aggregated report. An empty filtered set yields a
// well-formed report with zero sums and an empty invoice list.
func (s *AggregateService) Compose(ctx context.Context, input *AggregateInput) (*AggregatedReport, error) {
	if !input.Type.Valid() {
		return nil, apperror.NewBadRequestError("Invalid invoice type")
	}
	if input.ToDate.Before(input.FromDate) {
		return nil, apperror.NewBadRequestError("to_date must not precede from_date")
	}

	invoices, err := s.invoiceRepo.ListForAggregate(ctx, &repository.AggregateFilterParams{
		GuestName: input.GuestName,
		FromDate:  input.FromDate,
		ToDate:    input.ToDate,
		Type:      input.Type,
	})
	if err != nil {
		return nil, err
	}

	summary := &AggregateSummary{
		PaymentStatusSummary: map[string]int{},
		PaymentMethodSummary: map[string]int{},
	}
	if input.Type == enum.InvoiceTypeKitchen {
		summary.OrderTypeSummary = map[string]int{}
	}

	for _, inv := range invoices {
		summary.TotalInvoices++
		summary.TotalSubtotal += inv.Subtotal
		summary.TotalTax += inv.TaxAmount
		summary.TotalAmount += inv.TotalAmount

		summary.PaymentStatusSummary[bucketPaymentStatus(inv.PaymentStatus)]++
		summary.PaymentMethodSummary[bucketPaymentMethod(inv.PaymentMethod)]++

		if summary.OrderTypeSummary != nil {
			// Kitchen invoices carry no order type of their own; a room
			// number present on the invoice marks a room-service sale.
			if inv.RoomNumber != "" {
				summary.OrderTypeSummary[enum.OrderTypeRoom.String()]++
			} else {
				summary.OrderTypeSummary[enum.OrderTypeWalkIn.String()]++
			}
		}
	}

	cgst, sgst := billing.SplitGST(summary.TotalTax)
	summary.TotalSubtotal = billing.Round2(summary.TotalSubtotal)
	summary.TotalTax = billing.Round2(summary.TotalTax)
	summary.TotalCGST = billing.Round2(cgst)
	summary.TotalSGST = billing.Round2(sgst)
	summary.TotalAmount = billing.Round2(summary.TotalAmount)

	info, err := s.businessInfo(ctx, input.Type)
	if err != nil {
		return nil, err
	}

	return &AggregatedReport{
		Type:         input.Type,
		BusinessInfo: info,
		GuestFilter:  input.GuestName,
		FromDate:     input.FromDate.Format("2006-01-02"),
		ToDate:       input.ToDate.Format("2006-01-02"),
		Invoices:     invoices,
		Summary:      summary,
	}, nil
}

// EmailStatement sends an aggregated report as a consolidated statement
func (s *AggregateService) EmailStatement(ctx context.Context, input *AggregateInput, toEmail string) error {
	if toEmail == "" {
		return apperror.NewBadRequestError("Recipient email is required")
	}
	if !s.emailService.IsConfigured() {
		return apperror.NewBadRequestError("Email is not configured")
	}

	report, err := s.Compose(ctx, input)
	if err != nil {
		return err
	}

	rows := make([]email.StatementRow, 0, len(report.Invoices))
	for _, inv := range report.Invoices {
		rows = append(rows, email.StatementRow{
			InvoiceNumber: inv.InvoiceNumber,
			InvoiceDate:   inv.InvoiceDate.Format("02 Jan 2006"),
			Subtotal:      formatMoney(inv.Subtotal),
			TaxAmount:     formatMoney(inv.TaxAmount),
			TotalAmount:   formatMoney(inv.TotalAmount),
		})
	}

	title := "Resort Statement"
	if input.Type == enum.InvoiceTypeKitchen {
		title = "Kitchen Statement"
	}

	guestName := input.GuestName
	if guestName == "" {
		guestName = "All guests"
	}

	data := email.StatementEmailData{
		ResortName:  report.BusinessInfo.Name,
		GSTIN:       report.BusinessInfo.GSTIN,
		Title:       title,
		GuestName:   guestName,
		Period:      fmt.Sprintf("%s to %s", report.FromDate, report.ToDate),
		Rows:        rows,
		Subtotal:    formatMoney(report.Summary.TotalSubtotal),
		CGST:        formatMoney(report.Summary.TotalCGST),
		SGST:        formatMoney(report.Summary.TotalSGST),
		TotalAmount: formatMoney(report.Summary.TotalAmount),
	}

	return s.emailService.SendStatementEmail(toEmail, data)
}

func (s *AggregateService) businessInfo(ctx context.Context, invoiceType enum.InvoiceType) (*BusinessInfo, error) {
	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return nil, err
	}
	if settings == nil {
		return &BusinessInfo{Name: "Resort"}, nil
	}

	gstin := settings.ResortGSTIN
	if invoiceType == enum.InvoiceTypeKitchen {
		gstin = settings.KitchenGSTIN
	}

	return &BusinessInfo{
		Name:    settings.ResortName,
		GSTIN:   gstin,
		Address: settings.ResortAddress,
		Contact: settings.ResortContact,
		Email:   settings.ResortEmail,
	}, nil
}

func bucketPaymentStatus(s enum.PaymentStatus) string {
	if s.Valid() {
		return s.String()
	}
	return "other"
}

func bucketPaymentMethod(m enum.PaymentMethod) string {
	if m.Valid() {
		return m.String()
	}
	return "other"
}
