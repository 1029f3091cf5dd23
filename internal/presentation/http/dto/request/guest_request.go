package request

import "time"

// GuestRequest represents a create or update guest request
type GuestRequest struct {
	Name         string     `json:"name" binding:"required,min=2,max=255"`
	Mobile       string     `json:"mobile" binding:"required,max=20"`
	RoomNumber   string     `json:"room_number" binding:"required,max=20"`
	CompanyName  *string    `json:"company_name"`
	GSTNumber    *string    `json:"gst_number"`
	CheckInDate  *time.Time `json:"check_in_date"`
	CheckOutDate *time.Time `json:"check_out_date"`
}
