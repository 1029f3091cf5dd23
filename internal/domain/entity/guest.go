package entity

import (
	"time"

	"github.com/google/uuid"
)

// Guest represents a registered guest. Invoices and kitchen orders reference
// guests but never own them; walk-in invoices carry a nil guest reference and
// snapshot the details inline instead.
type Guest struct {
	ID           uint       `gorm:"primary_key" json:"id"`
	Name         string     `gorm:"size:255;not null;index" json:"name"`
	Mobile       string     `gorm:"size:20;not null" json:"mobile"`
	RoomNumber   string     `gorm:"size:20;not null" json:"room_number"`
	CompanyName  *string    `gorm:"size:255" json:"company_name"`
	GSTNumber    *string    `gorm:"size:30;column:gst_number" json:"gst_number"`
	CheckInDate  time.Time  `json:"check_in_date"`
	CheckOutDate *time.Time `json:"check_out_date"`
	CreatedBy    uuid.UUID  `gorm:"type:uuid;index" json:"created_by"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// TableName returns the table name for the Guest model
func (Guest) TableName() string {
	return "guests"
}
