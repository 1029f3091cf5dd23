package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/greenpalms/resort-api/internal/domain/billing"
	"github.com/greenpalms/resort-api/internal/domain/enum"
)

// Invoice is a finalized billing document for resort or kitchen services.
// Monetary invariants: Subtotal = Σ qty*rate, TaxAmount = Σ gst_amount,
// TotalAmount = Subtotal + TaxAmount. Totals are always recomputed
// server-side from the items; client-supplied totals are ignored.
type Invoice struct {
	ID            uint               `gorm:"primary_key" json:"id"`
	InvoiceNumber string             `gorm:"size:30;uniqueIndex;not null" json:"invoice_number"`
	InvoiceDate   time.Time          `gorm:"not null;index" json:"invoice_date"`
	Type          enum.InvoiceType   `gorm:"size:10;not null;index" json:"type"`
	GuestID       *uint              `gorm:"index" json:"guest_id"`
	GuestName     string             `gorm:"size:255;not null" json:"guest_name"`
	GuestMobile   string             `gorm:"size:20" json:"guest_mobile"`
	RoomNumber    string             `gorm:"size:20" json:"room_number"`
	CompanyName   *string            `gorm:"size:255" json:"company_name"`
	GSTNumber     *string            `gorm:"size:30;column:gst_number" json:"gst_number"`
	Subtotal      float64            `gorm:"type:decimal(10,2);not null" json:"-"`
	TaxAmount     float64            `gorm:"type:decimal(10,2);not null" json:"-"`
	TotalAmount   float64            `gorm:"type:decimal(10,2);not null" json:"-"`
	PaymentStatus enum.PaymentStatus `gorm:"size:20;not null;default:'pending'" json:"payment_status"`
	PaymentMethod enum.PaymentMethod `gorm:"size:20;not null;default:'cash'" json:"payment_method"`
	Notes         *string            `gorm:"type:text" json:"notes"`
	BookingDate   *string            `gorm:"size:30" json:"booking_date"`
	CheckInTime   *string            `gorm:"size:30" json:"check_in_time"`
	CheckOutTime  *string            `gorm:"size:30" json:"check_out_time"`
	CreatedBy     uuid.UUID          `gorm:"type:uuid;index" json:"created_by"`
	CreatedAt     time.Time          `json:"created_at"`
	UpdatedAt     time.Time          `json:"updated_at"`

	Items []InvoiceItem `gorm:"foreignKey:InvoiceID;constraint:OnDelete:CASCADE" json:"items,omitempty"`
}

// MarshalJSON emits monetary fields as decimals rounded for display
func (i Invoice) MarshalJSON() ([]byte, error) {
	type Alias Invoice
	cgst, sgst := billing.SplitGST(i.TaxAmount)
	return json.Marshal(&struct {
		Alias
		Subtotal    float64 `json:"subtotal"`
		TaxAmount   float64 `json:"tax_amount"`
		TotalAmount float64 `json:"total_amount"`
		CGST        float64 `json:"cgst"`
		SGST        float64 `json:"sgst"`
	}{
		Alias:       Alias(i),
		Subtotal:    billing.Round2(i.Subtotal),
		TaxAmount:   billing.Round2(i.TaxAmount),
		TotalAmount: billing.Round2(i.TotalAmount),
		CGST:        billing.Round2(cgst),
		SGST:        billing.Round2(sgst),
	})
}

// TableName returns the table name for the Invoice model
func (Invoice) TableName() string {
	return "invoices"
}

// InvoiceItem is one line on an invoice. Rate and GST percentage are copied
// from the catalog at add time; GSTAmount and Total are derived:
// GSTAmount = qty*rate*gst/100, Total = qty*rate + GSTAmount.
type InvoiceItem struct {
	ID            uint    `gorm:"primary_key" json:"id"`
	InvoiceID     uint    `gorm:"not null;index" json:"invoice_id"`
	ServiceID     *uint   `gorm:"index" json:"service_id"`
	ItemID        *uint   `gorm:"index" json:"item_id"`
	ItemName      string  `gorm:"size:255;not null" json:"item_name"`
	Quantity      int     `gorm:"not null" json:"quantity"`
	Rate          float64 `gorm:"type:decimal(10,2);not null" json:"-"`
	GSTPercentage float64 `gorm:"type:decimal(5,2);not null;column:gst_percentage" json:"-"`
	GSTAmount     float64 `gorm:"type:decimal(10,2);not null;column:gst_amount" json:"-"`
	Total         float64 `gorm:"type:decimal(10,2);not null" json:"-"`
}

// MarshalJSON emits monetary fields as rounded decimals
func (it InvoiceItem) MarshalJSON() ([]byte, error) {
	type Alias InvoiceItem
	return json.Marshal(&struct {
		Alias
		Rate          float64 `json:"rate"`
		GSTPercentage float64 `json:"gst_percentage"`
		GSTAmount     float64 `json:"gst_amount"`
		Total         float64 `json:"total"`
	}{
		Alias:         Alias(it),
		Rate:          billing.Round2(it.Rate),
		GSTPercentage: it.GSTPercentage,
		GSTAmount:     billing.Round2(it.GSTAmount),
		Total:         billing.Round2(it.Total),
	})
}

// TableName returns the table name for the InvoiceItem model
func (InvoiceItem) TableName() string {
	return "invoice_items"
}
