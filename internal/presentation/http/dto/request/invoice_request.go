package request

import "github.com/greenpalms/resort-api/internal/domain/billing"

// InvoiceItemRequest is one line of a create invoice request. When a catalog
// reference is present, client-supplied rate and GST values are ignored in
// favor of the catalog snapshot; manual lines require name and rate.
type InvoiceItemRequest struct {
	ServiceID     *uint          `json:"service_id"`
	ItemID        *uint          `json:"item_id"`
	ItemName      string         `json:"item_name"`
	Quantity      int            `json:"quantity" binding:"required,gt=0"`
	Rate          billing.Amount `json:"rate"`
	GSTPercentage billing.Amount `json:"gst_percentage"`
}

// CreateInvoiceRequest represents a create invoice request. Totals are
// never read from the request; the server recomputes them from the items.
type CreateInvoiceRequest struct {
	Type          string               `json:"type" binding:"required,oneof=resort kitchen"`
	InvoiceDate   *string              `json:"invoice_date"`
	GuestID       *uint                `json:"guest_id"`
	GuestName     string               `json:"guest_name"`
	GuestMobile   string               `json:"guest_mobile"`
	RoomNumber    string               `json:"room_number"`
	CompanyName   *string              `json:"company_name"`
	GSTNumber     *string              `json:"gst_number"`
	Items         []InvoiceItemRequest `json:"items" binding:"required,min=1,dive"`
	PaymentStatus string               `json:"payment_status"`
	PaymentMethod string               `json:"payment_method"`
	Notes         *string              `json:"notes"`
	BookingDate   *string              `json:"booking_date"`
	CheckInTime   *string              `json:"check_in_time"`
	CheckOutTime  *string              `json:"check_out_time"`
}

// UpdatePaymentRequest represents a payment status/method correction
type UpdatePaymentRequest struct {
	PaymentStatus *string `json:"payment_status"`
	PaymentMethod *string `json:"payment_method"`
}

// UpdateCheckoutRequest represents a stay-time correction
type UpdateCheckoutRequest struct {
	BookingDate  *string `json:"booking_date"`
	CheckInTime  *string `json:"check_in_time"`
	CheckOutTime *string `json:"check_out_time"`
}

// EmailRequest represents a send-by-email request
type EmailRequest struct {
	Email string `json:"email" binding:"required,email"`
}
