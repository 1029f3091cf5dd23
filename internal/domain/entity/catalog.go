package entity

import (
	"encoding/json"
	"time"

	"github.com/greenpalms/resort-api/internal/domain/billing"
)

// Service is a priced resort catalog entry (room charges, spa, laundry...).
// Invoices snapshot the rate and GST percentage at add time, so later catalog
// edits never rewrite historical invoices.
type Service struct {
	ID            uint      `gorm:"primary_key" json:"id"`
	Name          string    `gorm:"size:255;not null" json:"name"`
	Description   string    `gorm:"type:text" json:"description"`
	Price         float64   `gorm:"type:decimal(10,2);not null" json:"-"`
	GSTPercentage float64   `gorm:"type:decimal(5,2);not null;default:0;column:gst_percentage" json:"-"`
	Category      string    `gorm:"size:100;default:'resort'" json:"category"`
	IsActive      bool      `gorm:"default:true" json:"is_active"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// MarshalJSON emits price and GST as rounded decimals
func (s Service) MarshalJSON() ([]byte, error) {
	type Alias Service
	return json.Marshal(&struct {
		Alias
		Price         float64 `json:"price"`
		GSTPercentage float64 `json:"gst_percentage"`
	}{
		Alias:         Alias(s),
		Price:         billing.Round2(s.Price),
		GSTPercentage: s.GSTPercentage,
	})
}

// TableName returns the table name for the Service model
func (Service) TableName() string {
	return "services"
}

// MenuItem is a priced kitchen catalog entry (food and beverages)
type MenuItem struct {
	ID            uint      `gorm:"primary_key" json:"id"`
	Name          string    `gorm:"size:255;not null" json:"name"`
	Description   string    `gorm:"type:text" json:"description"`
	Price         float64   `gorm:"type:decimal(10,2);not null" json:"-"`
	GSTPercentage float64   `gorm:"type:decimal(5,2);not null;default:0;column:gst_percentage" json:"-"`
	Type          string    `gorm:"size:50;default:'kitchen'" json:"type"`
	IsActive      bool      `gorm:"default:true" json:"is_active"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// MarshalJSON emits price and GST as rounded decimals
func (m MenuItem) MarshalJSON() ([]byte, error) {
	type Alias MenuItem
	return json.Marshal(&struct {
		Alias
		Price         float64 `json:"price"`
		GSTPercentage float64 `json:"gst_percentage"`
	}{
		Alias:         Alias(m),
		Price:         billing.Round2(m.Price),
		GSTPercentage: m.GSTPercentage,
	})
}

// TableName returns the table name for the MenuItem model
func (MenuItem) TableName() string {
	return "menu_items"
}
