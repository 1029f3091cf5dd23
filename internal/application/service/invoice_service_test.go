package service

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/greenpalms/resort-api/internal/domain/entity"
	"github.com/greenpalms/resort-api/internal/domain/enum"
	"github.com/greenpalms/resort-api/pkg/apperror"
	"github.com/greenpalms/resort-api/pkg/email"
)

func newInvoiceFixture() (*InvoiceService, *fakeInvoiceRepo) {
	serviceRepo := &fakeServiceRepo{services: []entity.Service{
		{ID: 1, Name: "Deluxe Room", Price: 2500, GSTPercentage: 12, Category: "accommodation", IsActive: true},
		{ID: 2, Name: "Ayurvedic Massage", Price: 1200, GSTPercentage: 18, Category: "spa", IsActive: true},
	}}
	menuRepo := &fakeMenuItemRepo{items: []entity.MenuItem{
		{ID: 1, Name: "Masala Dosa", Price: 120, GSTPercentage: 5, Type: "kitchen", IsActive: true},
	}}
	guestRepo := &fakeGuestRepo{guests: []entity.Guest{
		{ID: 3, Name: "Vikram Shetty", Mobile: "9877700011", RoomNumber: "201"},
	}}
	invoiceRepo := &fakeInvoiceRepo{}
	return NewInvoiceService(invoiceRepo, serviceRepo, menuRepo, guestRepo, &fakeSettingsRepo{}, email.NewEmailService(email.EmailConfig{})), invoiceRepo
}

func TestCreateInvoiceComputesTotals(t *testing.T) {
	svc, _ := newInvoiceFixture()

	// 2x100 @ 18%, 1x50 @ 12%, 5x20 @ 0%: net 350, GST 42, total 392
	invoice, err := svc.CreateInvoice(context.Background(), &CreateInvoiceInput{
		Type:      enum.InvoiceTypeResort,
		GuestName: "Vikram Shetty",
		Items: []InvoiceItemInput{
			{ItemName: "Late checkout", Quantity: 2, Rate: 100, GSTPercentage: 18},
			{ItemName: "Laundry", Quantity: 1, Rate: 50, GSTPercentage: 12},
			{ItemName: "Bottled water", Quantity: 5, Rate: 20, GSTPercentage: 0},
		},
		CreatedBy: uuid.New(),
	})
	if err != nil {
		t.Fatalf("CreateInvoice: %v", err)
	}

	if invoice.Subtotal != 350 {
		t.Errorf("subtotal = %v, want 350", invoice.Subtotal)
	}
	if invoice.TaxAmount != 42 {
		t.Errorf("tax = %v, want 42", invoice.TaxAmount)
	}
	if invoice.TotalAmount != 392 {
		t.Errorf("total = %v, want 392", invoice.TotalAmount)
	}
	if invoice.PaymentStatus != enum.PaymentStatusPending {
		t.Errorf("payment status = %v, want default pending", invoice.PaymentStatus)
	}
	if invoice.PaymentMethod != enum.PaymentMethodCash {
		t.Errorf("payment method = %v, want default cash", invoice.PaymentMethod)
	}
}

func TestCreateInvoiceNumbersPerType(t *testing.T) {
	svc, _ := newInvoiceFixture()
	ctx := context.Background()

	mk := func(invoiceType enum.InvoiceType) *entity.Invoice {
		inv, err := svc.CreateInvoice(ctx, &CreateInvoiceInput{
			Type:      invoiceType,
			GuestName: "Guest",
			Items:     []InvoiceItemInput{{ItemName: "Line", Quantity: 1, Rate: 10}},
		})
		if err != nil {
			t.Fatalf("CreateInvoice(%v): %v", invoiceType, err)
		}
		return inv
	}

	if got := mk(enum.InvoiceTypeResort).InvoiceNumber; got != "RES-00001" {
		t.Errorf("first resort number = %q, want RES-00001", got)
	}
	if got := mk(enum.InvoiceTypeKitchen).InvoiceNumber; got != "KIT-00001" {
		t.Errorf("first kitchen number = %q, want KIT-00001", got)
	}
	// The two sequences are independent.
	if got := mk(enum.InvoiceTypeResort).InvoiceNumber; got != "RES-00002" {
		t.Errorf("second resort number = %q, want RES-00002", got)
	}
}

func TestInvoiceNumbersNeverReusedAfterDelete(t *testing.T) {
	svc, _ := newInvoiceFixture()
	ctx := context.Background()

	mk := func() *entity.Invoice {
		inv, err := svc.CreateInvoice(ctx, &CreateInvoiceInput{
			Type:      enum.InvoiceTypeResort,
			GuestName: "Guest",
			Items:     []InvoiceItemInput{{ItemName: "Line", Quantity: 1, Rate: 10}},
		})
		if err != nil {
			t.Fatalf("CreateInvoice: %v", err)
		}
		return inv
	}

	first := mk()
	second := mk()
	if err := svc.DeleteInvoice(ctx, first.ID); err != nil {
		t.Fatalf("DeleteInvoice: %v", err)
	}

	// The sequence must keep advancing past deleted invoices; falling back
	// would collide with the surviving RES-00002.
	third := mk()
	if third.InvoiceNumber != "RES-00003" {
		t.Errorf("number after delete = %q, want RES-00003", third.InvoiceNumber)
	}
	if third.InvoiceNumber == second.InvoiceNumber {
		t.Errorf("number %q reissued while still in use", second.InvoiceNumber)
	}
}

func TestCreateInvoiceSnapshotsCatalogRates(t *testing.T) {
	svc, _ := newInvoiceFixture()

	serviceID := uint(2)
	invoice, err := svc.CreateInvoice(context.Background(), &CreateInvoiceInput{
		Type:      enum.InvoiceTypeResort,
		GuestName: "Vikram Shetty",
		Items: []InvoiceItemInput{
			// Client-supplied rate and GST are ignored for catalog lines.
			{ServiceID: &serviceID, ItemName: "made up", Quantity: 2, Rate: 1, GSTPercentage: 0},
		},
	})
	if err != nil {
		t.Fatalf("CreateInvoice: %v", err)
	}

	item := invoice.Items[0]
	if item.ItemName != "Ayurvedic Massage" {
		t.Errorf("item name = %q, want catalog name", item.ItemName)
	}
	if item.Rate != 1200 || item.GSTPercentage != 18 {
		t.Errorf("rate/gst = %v/%v, want 1200/18", item.Rate, item.GSTPercentage)
	}
	// 2x1200 = 2400 net, 18% GST = 432
	if invoice.TotalAmount != 2832 {
		t.Errorf("total = %v, want 2832", invoice.TotalAmount)
	}
}

func TestCreateInvoiceFillsGuestSnapshot(t *testing.T) {
	svc, _ := newInvoiceFixture()

	guestID := uint(3)
	invoice, err := svc.CreateInvoice(context.Background(), &CreateInvoiceInput{
		Type:    enum.InvoiceTypeResort,
		GuestID: &guestID,
		Items:   []InvoiceItemInput{{ItemName: "Line", Quantity: 1, Rate: 10}},
	})
	if err != nil {
		t.Fatalf("CreateInvoice: %v", err)
	}
	if invoice.GuestName != "Vikram Shetty" || invoice.GuestMobile != "9877700011" || invoice.RoomNumber != "201" {
		t.Errorf("guest snapshot = %q/%q/%q", invoice.GuestName, invoice.GuestMobile, invoice.RoomNumber)
	}
}

func TestCreateInvoiceRejections(t *testing.T) {
	svc, _ := newInvoiceFixture()
	ctx := context.Background()

	tests := []struct {
		name     string
		input    *CreateInvoiceInput
		wantCode int
	}{
		{
			name:     "invalid type",
			input:    &CreateInvoiceInput{Type: "bar", GuestName: "G", Items: []InvoiceItemInput{{ItemName: "L", Quantity: 1, Rate: 1}}},
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "no items",
			input:    &CreateInvoiceInput{Type: enum.InvoiceTypeResort, GuestName: "G"},
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "manual line without name",
			input:    &CreateInvoiceInput{Type: enum.InvoiceTypeResort, GuestName: "G", Items: []InvoiceItemInput{{Quantity: 1, Rate: 1}}},
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "unknown guest",
			input:    &CreateInvoiceInput{Type: enum.InvoiceTypeResort, GuestID: ptrUint(99), Items: []InvoiceItemInput{{ItemName: "L", Quantity: 1, Rate: 1}}},
			wantCode: http.StatusNotFound,
		},
		{
			name:     "unknown service",
			input:    &CreateInvoiceInput{Type: enum.InvoiceTypeResort, GuestName: "G", Items: []InvoiceItemInput{{ServiceID: ptrUint(42), Quantity: 1}}},
			wantCode: http.StatusNotFound,
		},
		{
			name:     "invalid payment status",
			input:    &CreateInvoiceInput{Type: enum.InvoiceTypeResort, GuestName: "G", PaymentStatus: "maybe", Items: []InvoiceItemInput{{ItemName: "L", Quantity: 1, Rate: 1}}},
			wantCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateInvoice(ctx, tt.input)
			var appErr *apperror.AppError
			if !errors.As(err, &appErr) {
				t.Fatalf("err = %v, want AppError", err)
			}
			if appErr.Code != tt.wantCode {
				t.Errorf("code = %d, want %d", appErr.Code, tt.wantCode)
			}
		})
	}
}

func TestUpdatePaymentMovesFreely(t *testing.T) {
	svc, repo := newInvoiceFixture()
	repo.invoices = []entity.Invoice{{
		ID: 1, InvoiceNumber: "RES-00001",
		PaymentStatus: enum.PaymentStatusPaid,
		PaymentMethod: enum.PaymentMethodCard,
	}}

	// Payment status is a correction field, not a one-way machine; paid
	// may go back to pending.
	status := enum.PaymentStatusPending
	method := enum.PaymentMethodUPI
	invoice, err := svc.UpdatePayment(context.Background(), 1, &UpdatePaymentInput{
		PaymentStatus: &status,
		PaymentMethod: &method,
	})
	if err != nil {
		t.Fatalf("UpdatePayment: %v", err)
	}
	if invoice.PaymentStatus != enum.PaymentStatusPending || invoice.PaymentMethod != enum.PaymentMethodUPI {
		t.Errorf("payment = %v/%v, want pending/upi", invoice.PaymentStatus, invoice.PaymentMethod)
	}
}

func TestUpdateCheckoutLeavesTotalsUntouched(t *testing.T) {
	svc, repo := newInvoiceFixture()
	repo.invoices = []entity.Invoice{{
		ID: 1, Subtotal: 350, TaxAmount: 42, TotalAmount: 392,
	}}

	checkout := "2026-03-02 11:00"
	invoice, err := svc.UpdateCheckout(context.Background(), 1, &UpdateCheckoutInput{
		CheckOutTime: &checkout,
	})
	if err != nil {
		t.Fatalf("UpdateCheckout: %v", err)
	}
	if invoice.CheckOutTime == nil || *invoice.CheckOutTime != checkout {
		t.Errorf("check_out_time = %v, want %q", invoice.CheckOutTime, checkout)
	}
	if invoice.TotalAmount != 392 {
		t.Errorf("total = %v, want unchanged 392", invoice.TotalAmount)
	}
}

func TestDeleteInvoiceNotFound(t *testing.T) {
	svc, _ := newInvoiceFixture()

	err := svc.DeleteInvoice(context.Background(), 99)
	var appErr *apperror.AppError
	if !errors.As(err, &appErr) || appErr.Code != http.StatusNotFound {
		t.Fatalf("err = %v, want 404 AppError", err)
	}
}

func ptrUint(v uint) *uint {
	return &v
}
