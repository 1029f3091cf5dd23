package request

import "github.com/greenpalms/resort-api/internal/domain/billing"

// ServiceRequest represents a create or update resort service request
type ServiceRequest struct {
	Name          string         `json:"name" binding:"required,min=2,max=255"`
	Description   string         `json:"description"`
	Price         billing.Amount `json:"price" binding:"required"`
	GSTPercentage billing.Amount `json:"gst_percentage"`
	Category      string         `json:"category"`
	IsActive      *bool          `json:"is_active"`
}

// MenuItemRequest represents a create or update menu item request
type MenuItemRequest struct {
	Name          string         `json:"name" binding:"required,min=2,max=255"`
	Description   string         `json:"description"`
	Price         billing.Amount `json:"price" binding:"required"`
	GSTPercentage billing.Amount `json:"gst_percentage"`
	Type          string         `json:"type"`
	IsActive      *bool          `json:"is_active"`
}
