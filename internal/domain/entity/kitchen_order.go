package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/greenpalms/resort-api/internal/domain/billing"
	"github.com/greenpalms/resort-api/internal/domain/enum"
)

// KitchenOrder is a pre-invoice record of food and beverage items. It moves
// through the fulfilment machine on enum.OrderStatus; once completed it may
// spawn exactly one invoice, recorded by InvoiceID being set thereafter.
type KitchenOrder struct {
	ID          uint             `gorm:"primary_key" json:"id"`
	OrderNumber string           `gorm:"size:30;uniqueIndex;not null" json:"order_number"`
	GuestID     *uint            `gorm:"index" json:"guest_id"`
	GuestName   string           `gorm:"size:255;not null" json:"guest_name"`
	RoomNumber  string           `gorm:"size:20" json:"room_number"`
	OrderType   enum.OrderType   `gorm:"size:20;not null;default:'room'" json:"order_type"`
	Status      enum.OrderStatus `gorm:"size:20;not null;default:'pending';index" json:"status"`
	OrderDate   time.Time        `gorm:"not null;index" json:"order_date"`
	Subtotal    float64          `gorm:"type:decimal(10,2);not null" json:"-"`
	TaxAmount   float64          `gorm:"type:decimal(10,2);not null" json:"-"`
	TotalAmount float64          `gorm:"type:decimal(10,2);not null" json:"-"`
	InvoiceID   *uint            `gorm:"index" json:"invoice_id"`
	CreatedBy   uuid.UUID        `gorm:"type:uuid;index" json:"created_by"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`

	Items []KitchenOrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items,omitempty"`
}

// MarshalJSON emits monetary fields as rounded decimals
func (o KitchenOrder) MarshalJSON() ([]byte, error) {
	type Alias KitchenOrder
	return json.Marshal(&struct {
		Alias
		Subtotal    float64 `json:"subtotal"`
		TaxAmount   float64 `json:"tax_amount"`
		TotalAmount float64 `json:"total_amount"`
	}{
		Alias:       Alias(o),
		Subtotal:    billing.Round2(o.Subtotal),
		TaxAmount:   billing.Round2(o.TaxAmount),
		TotalAmount: billing.Round2(o.TotalAmount),
	})
}

// TableName returns the table name for the KitchenOrder model
func (KitchenOrder) TableName() string {
	return "kitchen_orders"
}

// KitchenOrderItem is one line on a kitchen order, snapshotted from the menu
// at add time with the same derivation rules as InvoiceItem
type KitchenOrderItem struct {
	ID            uint    `gorm:"primary_key" json:"id"`
	OrderID       uint    `gorm:"not null;index" json:"order_id"`
	ItemID        *uint   `gorm:"index" json:"item_id"`
	ItemName      string  `gorm:"size:255;not null" json:"name"`
	Quantity      int     `gorm:"not null" json:"quantity"`
	Rate          float64 `gorm:"type:decimal(10,2);not null" json:"-"`
	GSTPercentage float64 `gorm:"type:decimal(5,2);not null;column:gst_percentage" json:"-"`
	GSTAmount     float64 `gorm:"type:decimal(10,2);not null;column:gst_amount" json:"-"`
	Total         float64 `gorm:"type:decimal(10,2);not null" json:"-"`
}

// MarshalJSON emits monetary fields as rounded decimals
func (it KitchenOrderItem) MarshalJSON() ([]byte, error) {
	type Alias KitchenOrderItem
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

// TableName returns the table name for the KitchenOrderItem model
func (KitchenOrderItem) TableName() string {
	return "kitchen_order_items"
}
