package service

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/greenpalms/resort-api/internal/domain/entity"
	"github.com/greenpalms/resort-api/internal/domain/enum"
	"github.com/greenpalms/resort-api/pkg/apperror"
	"github.com/greenpalms/resort-api/pkg/email"
)

func newOrderFixture() (*KitchenOrderService, *fakeKitchenOrderRepo, *fakeInvoiceRepo) {
	menuRepo := &fakeMenuItemRepo{items: []entity.MenuItem{
		{ID: 1, Name: "Masala Dosa", Price: 120, GSTPercentage: 5, Type: "kitchen", IsActive: true},
		{ID: 2, Name: "Filter Coffee", Price: 40, GSTPercentage: 5, Type: "beverage", IsActive: true},
		{ID: 3, Name: "Seasonal Special", Price: 250, GSTPercentage: 18, Type: "kitchen", IsActive: false},
	}}
	guestRepo := &fakeGuestRepo{guests: []entity.Guest{
		{ID: 7, Name: "Anita Rao", Mobile: "9800011122", RoomNumber: "104"},
	}}
	orderRepo := &fakeKitchenOrderRepo{}
	invoiceRepo := &fakeInvoiceRepo{}
	settingsRepo := &fakeSettingsRepo{}
	invoiceSvc := NewInvoiceService(invoiceRepo, &fakeServiceRepo{}, menuRepo, guestRepo, settingsRepo, email.NewEmailService(email.EmailConfig{}))
	return NewKitchenOrderService(orderRepo, menuRepo, guestRepo, invoiceSvc), orderRepo, invoiceRepo
}

func TestCreateOrderComputesTotals(t *testing.T) {
	svc, _, _ := newOrderFixture()

	order, err := svc.CreateOrder(context.Background(), &CreateOrderInput{
		GuestName: "Walk-in",
		OrderType: enum.OrderTypeWalkIn,
		Items: []OrderItemInput{
			{ItemID: 1, Quantity: 2},
			{ItemID: 2, Quantity: 1},
		},
		CreatedBy: uuid.New(),
	})
	if err != nil {
		t.Fatalf("CreateOrder: %v", err)
	}

	if order.OrderNumber != "ORD-00001" {
		t.Errorf("order number = %q, want ORD-00001", order.OrderNumber)
	}
	if order.Status != enum.OrderStatusPending {
		t.Errorf("status = %v, want pending", order.Status)
	}
	// 2x120 + 1x40 = 280 net, 5% GST = 14
	if order.Subtotal != 280 {
		t.Errorf("subtotal = %v, want 280", order.Subtotal)
	}
	if order.TaxAmount != 14 {
		t.Errorf("tax = %v, want 14", order.TaxAmount)
	}
	if order.TotalAmount != 294 {
		t.Errorf("total = %v, want 294", order.TotalAmount)
	}
}

func TestCreateOrderNumbersAdvanceMonotonically(t *testing.T) {
	svc, _, _ := newOrderFixture()
	ctx := context.Background()

	mk := func() *entity.KitchenOrder {
		order, err := svc.CreateOrder(ctx, &CreateOrderInput{
			GuestName: "Walk-in",
			OrderType: enum.OrderTypeWalkIn,
			Items:     []OrderItemInput{{ItemID: 1, Quantity: 1}},
		})
		if err != nil {
			t.Fatalf("CreateOrder: %v", err)
		}
		return order
	}

	// Numbers come from a forward-only counter, never from row counts.
	want := []string{"ORD-00001", "ORD-00002", "ORD-00003"}
	for _, w := range want {
		if got := mk().OrderNumber; got != w {
			t.Errorf("order number = %q, want %q", got, w)
		}
	}
}

func TestCreateOrderFillsGuestFromProfile(t *testing.T) {
	svc, _, _ := newOrderFixture()

	guestID := uint(7)
	order, err := svc.CreateOrder(context.Background(), &CreateOrderInput{
		GuestID:   &guestID,
		OrderType: enum.OrderTypeRoom,
		Items:     []OrderItemInput{{ItemID: 1, Quantity: 1}},
	})
	if err != nil {
		t.Fatalf("CreateOrder: %v", err)
	}
	if order.GuestName != "Anita Rao" || order.RoomNumber != "104" {
		t.Errorf("guest snapshot = %q/%q, want Anita Rao/104", order.GuestName, order.RoomNumber)
	}
}

func TestCreateOrderRejections(t *testing.T) {
	svc, _, _ := newOrderFixture()
	ctx := context.Background()

	tests := []struct {
		name     string
		input    *CreateOrderInput
		wantCode int
	}{
		{
			name:     "no items",
			input:    &CreateOrderInput{GuestName: "X", OrderType: enum.OrderTypeWalkIn},
			wantCode: http.StatusBadRequest,
		},
		{
			name: "invalid order type",
			input: &CreateOrderInput{
				GuestName: "X", OrderType: "delivery",
				Items: []OrderItemInput{{ItemID: 1, Quantity: 1}},
			},
			wantCode: http.StatusBadRequest,
		},
		{
			name: "missing guest name",
			input: &CreateOrderInput{
				OrderType: enum.OrderTypeWalkIn,
				Items:     []OrderItemInput{{ItemID: 1, Quantity: 1}},
			},
			wantCode: http.StatusBadRequest,
		},
		{
			name: "unknown menu item",
			input: &CreateOrderInput{
				GuestName: "X", OrderType: enum.OrderTypeWalkIn,
				Items: []OrderItemInput{{ItemID: 99, Quantity: 1}},
			},
			wantCode: http.StatusNotFound,
		},
		{
			name: "inactive menu item",
			input: &CreateOrderInput{
				GuestName: "X", OrderType: enum.OrderTypeWalkIn,
				Items: []OrderItemInput{{ItemID: 3, Quantity: 1}},
			},
			wantCode: http.StatusBadRequest,
		},
		{
			name: "zero quantity",
			input: &CreateOrderInput{
				GuestName: "X", OrderType: enum.OrderTypeWalkIn,
				Items: []OrderItemInput{{ItemID: 1, Quantity: 0}},
			},
			wantCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateOrder(ctx, tt.input)
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

func TestUpdateStatusTransitions(t *testing.T) {
	tests := []struct {
		name    string
		from    enum.OrderStatus
		to      enum.OrderStatus
		allowed bool
	}{
		{"pending to processing", enum.OrderStatusPending, enum.OrderStatusProcessing, true},
		{"pending to cancelled", enum.OrderStatusPending, enum.OrderStatusCancelled, true},
		{"processing to completed", enum.OrderStatusProcessing, enum.OrderStatusCompleted, true},
		{"pending skips to completed", enum.OrderStatusPending, enum.OrderStatusCompleted, false},
		{"processing to cancelled", enum.OrderStatusProcessing, enum.OrderStatusCancelled, false},
		{"completed is terminal", enum.OrderStatusCompleted, enum.OrderStatusProcessing, false},
		{"cancelled is terminal", enum.OrderStatusCancelled, enum.OrderStatusPending, false},
		{"no self loop", enum.OrderStatusProcessing, enum.OrderStatusProcessing, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, orderRepo, _ := newOrderFixture()
			orderRepo.orders = []entity.KitchenOrder{{ID: 1, OrderNumber: "ORD-00001", Status: tt.from}}

			order, err := svc.UpdateStatus(context.Background(), 1, tt.to)
			if tt.allowed {
				if err != nil {
					t.Fatalf("UpdateStatus: %v", err)
				}
				if order.Status != tt.to {
					t.Errorf("status = %v, want %v", order.Status, tt.to)
				}
				return
			}

			var appErr *apperror.AppError
			if !errors.As(err, &appErr) {
				t.Fatalf("err = %v, want AppError", err)
			}
			if appErr.Code != http.StatusConflict {
				t.Errorf("code = %d, want 409", appErr.Code)
			}
			// The rejection names both states so the operator sees what
			// was attempted.
			if !strings.Contains(appErr.Message, tt.from.String()) || !strings.Contains(appErr.Message, tt.to.String()) {
				t.Errorf("message %q does not name both states", appErr.Message)
			}
		})
	}
}

func TestUpdateStatusInvalidValue(t *testing.T) {
	svc, orderRepo, _ := newOrderFixture()
	orderRepo.orders = []entity.KitchenOrder{{ID: 1, Status: enum.OrderStatusPending}}

	_, err := svc.UpdateStatus(context.Background(), 1, "shipped")
	var appErr *apperror.AppError
	if !errors.As(err, &appErr) || appErr.Code != http.StatusBadRequest {
		t.Fatalf("err = %v, want 400 AppError", err)
	}
}

func completedOrder() entity.KitchenOrder {
	itemID := uint(1)
	return entity.KitchenOrder{
		ID:          1,
		OrderNumber: "ORD-00001",
		GuestName:   "Anita Rao",
		RoomNumber:  "104",
		OrderType:   enum.OrderTypeRoom,
		Status:      enum.OrderStatusCompleted,
		Subtotal:    240,
		TaxAmount:   12,
		TotalAmount: 252,
		Items: []entity.KitchenOrderItem{
			{OrderID: 1, ItemID: &itemID, ItemName: "Masala Dosa", Quantity: 2, Rate: 120, GSTPercentage: 5, GSTAmount: 12, Total: 252},
		},
	}
}

func TestCreateInvoiceFromOrder(t *testing.T) {
	svc, orderRepo, invoiceRepo := newOrderFixture()
	orderRepo.orders = []entity.KitchenOrder{completedOrder()}

	invoice, err := svc.CreateInvoiceFromOrder(context.Background(), 1, uuid.New())
	if err != nil {
		t.Fatalf("CreateInvoiceFromOrder: %v", err)
	}

	if invoice.Type != enum.InvoiceTypeKitchen {
		t.Errorf("type = %v, want kitchen", invoice.Type)
	}
	if invoice.InvoiceNumber != "KIT-00001" {
		t.Errorf("invoice number = %q, want KIT-00001", invoice.InvoiceNumber)
	}
	if invoice.TotalAmount != 252 {
		t.Errorf("total = %v, want 252", invoice.TotalAmount)
	}
	if invoice.GuestName != "Anita Rao" || invoice.RoomNumber != "104" {
		t.Errorf("guest snapshot = %q/%q", invoice.GuestName, invoice.RoomNumber)
	}

	stored, _ := orderRepo.GetByID(context.Background(), 1)
	if stored.InvoiceID == nil || *stored.InvoiceID != invoice.ID {
		t.Errorf("order invoice_id = %v, want %d", stored.InvoiceID, invoice.ID)
	}
	if len(invoiceRepo.invoices) != 1 {
		t.Errorf("stored invoices = %d, want 1", len(invoiceRepo.invoices))
	}

	// A second attempt must fail without creating another invoice.
	_, err = svc.CreateInvoiceFromOrder(context.Background(), 1, uuid.New())
	if !errors.Is(err, apperror.ErrAlreadyInvoiced) {
		t.Fatalf("second attempt err = %v, want ErrAlreadyInvoiced", err)
	}
	if len(invoiceRepo.invoices) != 1 {
		t.Errorf("stored invoices after retry = %d, want 1", len(invoiceRepo.invoices))
	}
}

func TestCreateInvoiceFromOrderRequiresCompleted(t *testing.T) {
	for _, status := range []enum.OrderStatus{enum.OrderStatusPending, enum.OrderStatusProcessing, enum.OrderStatusCancelled} {
		t.Run(status.String(), func(t *testing.T) {
			svc, orderRepo, _ := newOrderFixture()
			order := completedOrder()
			order.Status = status
			orderRepo.orders = []entity.KitchenOrder{order}

			_, err := svc.CreateInvoiceFromOrder(context.Background(), 1, uuid.New())
			var appErr *apperror.AppError
			if !errors.As(err, &appErr) || appErr.Code != http.StatusConflict {
				t.Fatalf("err = %v, want 409 AppError", err)
			}
		})
	}
}

func TestCreateInvoiceFromOrderLostRace(t *testing.T) {
	svc, orderRepo, invoiceRepo := newOrderFixture()
	orderRepo.orders = []entity.KitchenOrder{completedOrder()}
	orderRepo.claimRejected = true

	_, err := svc.CreateInvoiceFromOrder(context.Background(), 1, uuid.New())
	if !errors.Is(err, apperror.ErrAlreadyInvoiced) {
		t.Fatalf("err = %v, want ErrAlreadyInvoiced", err)
	}
	// The duplicate invoice created before losing the claim is discarded.
	if len(invoiceRepo.invoices) != 0 {
		t.Errorf("stored invoices = %d, want 0", len(invoiceRepo.invoices))
	}
}

func TestListPendingOrdersClampsLimit(t *testing.T) {
	svc, orderRepo, _ := newOrderFixture()
	for i := 0; i < 30; i++ {
		orderRepo.orders = append(orderRepo.orders, entity.KitchenOrder{ID: uint(i + 1), Status: enum.OrderStatusPending})
	}

	orders, err := svc.ListPendingOrders(context.Background(), 0)
	if err != nil {
		t.Fatalf("ListPendingOrders: %v", err)
	}
	if len(orders) != 20 {
		t.Errorf("len = %d, want default 20", len(orders))
	}
}
