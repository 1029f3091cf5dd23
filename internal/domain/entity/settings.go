package entity

import "time"

// ResortSettings is the singleton row holding resort identity used on
// invoices, aggregated statements and reports
type ResortSettings struct {
	ID            uint      `gorm:"primary_key" json:"id"`
	ResortName    string    `gorm:"size:255;not null" json:"resort_name"`
	ResortGSTIN   string    `gorm:"size:30;column:resort_gstin" json:"resort_gstin"`
	KitchenGSTIN  string    `gorm:"size:30;column:kitchen_gstin" json:"kitchen_gstin"`
	ResortAddress string    `gorm:"type:text" json:"resort_address"`
	ResortContact string    `gorm:"size:50" json:"resort_contact"`
	ResortEmail   string    `gorm:"size:255" json:"resort_email"`
	TaxRate       float64   `gorm:"type:decimal(5,2);default:0" json:"tax_rate"`
	LogoPath      string    `gorm:"size:255" json:"logo_path"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// TableName returns the table name for the ResortSettings model
func (ResortSettings) TableName() string {
	return "resort_settings"
}
