package service

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/greenpalms/resort-api/internal/domain/entity"
	"github.com/greenpalms/resort-api/internal/domain/enum"
	"github.com/greenpalms/resort-api/pkg/apperror"
	"github.com/greenpalms/resort-api/pkg/email"
)

func newAggregateFixture(invoices ...entity.Invoice) *AggregateService {
	invoiceRepo := &fakeInvoiceRepo{invoices: invoices}
	settingsRepo := &fakeSettingsRepo{settings: &entity.ResortSettings{
		ResortName:   "Green Palms Resort",
		ResortGSTIN:  "29AAAAA0000A1Z5",
		KitchenGSTIN: "29BBBBB0000B1Z5",
	}}
	return NewAggregateService(invoiceRepo, settingsRepo, email.NewEmailService(email.EmailConfig{}))
}

func TestComposeEmptyRange(t *testing.T) {
	svc := newAggregateFixture()

	report, err := svc.Compose(context.Background(), &AggregateInput{
		Type:     enum.InvoiceTypeResort,
		FromDate: day(2026, time.March, 1),
		ToDate:   day(2026, time.March, 31),
	})
	if err != nil {
		t.Fatalf("Compose: %v", err)
	}

	if report.Summary.TotalInvoices != 0 {
		t.Errorf("total invoices = %d, want 0", report.Summary.TotalInvoices)
	}
	if report.Summary.TotalAmount != 0 {
		t.Errorf("total amount = %v, want 0", report.Summary.TotalAmount)
	}
	if len(report.Invoices) != 0 {
		t.Errorf("invoices = %d, want 0", len(report.Invoices))
	}
	if report.BusinessInfo.Name != "Green Palms Resort" {
		t.Errorf("business name = %q", report.BusinessInfo.Name)
	}
}

func TestComposeSumsAndBuckets(t *testing.T) {
	svc := newAggregateFixture(
		entity.Invoice{
			ID: 1, Type: enum.InvoiceTypeResort, GuestName: "Vikram Shetty",
			InvoiceDate: day(2026, time.March, 3),
			Subtotal:    350, TaxAmount: 42, TotalAmount: 392,
			PaymentStatus: enum.PaymentStatusPaid, PaymentMethod: enum.PaymentMethodCard,
		},
		entity.Invoice{
			ID: 2, Type: enum.InvoiceTypeResort, GuestName: "Vikram Shetty",
			InvoiceDate: day(2026, time.March, 10),
			Subtotal:    1000, TaxAmount: 120, TotalAmount: 1120,
			PaymentStatus: enum.PaymentStatusPending, PaymentMethod: enum.PaymentMethodCash,
		},
		// Legacy row with an unrecognized method falls into the catch-all.
		entity.Invoice{
			ID: 3, Type: enum.InvoiceTypeResort, GuestName: "Vikram Shetty",
			InvoiceDate: day(2026, time.March, 20),
			Subtotal:    100, TaxAmount: 5, TotalAmount: 105,
			PaymentStatus: enum.PaymentStatusPaid, PaymentMethod: "cheque",
		},
		// Outside the range, must not be counted.
		entity.Invoice{
			ID: 4, Type: enum.InvoiceTypeResort, GuestName: "Vikram Shetty",
			InvoiceDate: day(2026, time.April, 2),
			Subtotal:    9999, TaxAmount: 999, TotalAmount: 10998,
			PaymentStatus: enum.PaymentStatusPaid, PaymentMethod: enum.PaymentMethodCash,
		},
	)

	report, err := svc.Compose(context.Background(), &AggregateInput{
		Type:      enum.InvoiceTypeResort,
		GuestName: "vikram",
		FromDate:  day(2026, time.March, 1),
		ToDate:    day(2026, time.March, 31),
	})
	if err != nil {
		t.Fatalf("Compose: %v", err)
	}

	s := report.Summary
	if s.TotalInvoices != 3 {
		t.Errorf("total invoices = %d, want 3", s.TotalInvoices)
	}
	if s.TotalSubtotal != 1450 || s.TotalTax != 167 || s.TotalAmount != 1617 {
		t.Errorf("totals = %v/%v/%v, want 1450/167/1617", s.TotalSubtotal, s.TotalTax, s.TotalAmount)
	}
	if s.TotalCGST != 83.5 || s.TotalSGST != 83.5 {
		t.Errorf("cgst/sgst = %v/%v, want equal halves 83.5", s.TotalCGST, s.TotalSGST)
	}
	if s.PaymentStatusSummary["paid"] != 2 || s.PaymentStatusSummary["pending"] != 1 {
		t.Errorf("status summary = %v", s.PaymentStatusSummary)
	}
	if s.PaymentMethodSummary["card"] != 1 || s.PaymentMethodSummary["cash"] != 1 || s.PaymentMethodSummary["other"] != 1 {
		t.Errorf("method summary = %v", s.PaymentMethodSummary)
	}
	// Resort reports carry no order type breakdown.
	if s.OrderTypeSummary != nil {
		t.Errorf("order type summary present on resort report: %v", s.OrderTypeSummary)
	}
}

func TestComposeKitchenOrderTypes(t *testing.T) {
	svc := newAggregateFixture(
		entity.Invoice{
			ID: 1, Type: enum.InvoiceTypeKitchen, GuestName: "Anita Rao", RoomNumber: "104",
			InvoiceDate:   day(2026, time.March, 3),
			PaymentStatus: enum.PaymentStatusPaid, PaymentMethod: enum.PaymentMethodCash,
		},
		entity.Invoice{
			ID: 2, Type: enum.InvoiceTypeKitchen, GuestName: "Walk-in",
			InvoiceDate:   day(2026, time.March, 4),
			PaymentStatus: enum.PaymentStatusPaid, PaymentMethod: enum.PaymentMethodCash,
		},
	)

	report, err := svc.Compose(context.Background(), &AggregateInput{
		Type:     enum.InvoiceTypeKitchen,
		FromDate: day(2026, time.March, 1),
		ToDate:   day(2026, time.March, 31),
	})
	if err != nil {
		t.Fatalf("Compose: %v", err)
	}

	if report.BusinessInfo.GSTIN != "29BBBBB0000B1Z5" {
		t.Errorf("gstin = %q, want kitchen GSTIN", report.BusinessInfo.GSTIN)
	}
	got := report.Summary.OrderTypeSummary
	if got["room"] != 1 || got["walk_in"] != 1 {
		t.Errorf("order type summary = %v, want room:1 walk_in:1", got)
	}
}

func TestComposeRejectsInvertedRange(t *testing.T) {
	svc := newAggregateFixture()

	_, err := svc.Compose(context.Background(), &AggregateInput{
		Type:     enum.InvoiceTypeResort,
		FromDate: day(2026, time.March, 31),
		ToDate:   day(2026, time.March, 1),
	})
	var appErr *apperror.AppError
	if !errors.As(err, &appErr) || appErr.Code != http.StatusBadRequest {
		t.Fatalf("err = %v, want 400 AppError", err)
	}
}

func TestComposeRejectsInvalidType(t *testing.T) {
	svc := newAggregateFixture()

	_, err := svc.Compose(context.Background(), &AggregateInput{
		Type:     "spa",
		FromDate: day(2026, time.March, 1),
		ToDate:   day(2026, time.March, 31),
	})
	var appErr *apperror.AppError
	if !errors.As(err, &appErr) || appErr.Code != http.StatusBadRequest {
		t.Fatalf("err = %v, want 400 AppError", err)
	}
}

func TestEmailStatementRequiresConfiguredEmail(t *testing.T) {
	svc := newAggregateFixture()

	err := svc.EmailStatement(context.Background(), &AggregateInput{
		Type:     enum.InvoiceTypeResort,
		FromDate: day(2026, time.March, 1),
		ToDate:   day(2026, time.March, 31),
	}, "guest@example.com")
	var appErr *apperror.AppError
	if !errors.As(err, &appErr) || appErr.Code != http.StatusBadRequest {
		t.Fatalf("err = %v, want 400 AppError", err)
	}
}
