package request

// OrderItemRequest is one line of a create kitchen order request
type OrderItemRequest struct {
	ItemID   uint `json:"item_id" binding:"required"`
	Quantity int  `json:"quantity" binding:"required,gt=0"`
}

// CreateOrderRequest represents a create kitchen order request
type CreateOrderRequest struct {
	GuestID    *uint              `json:"guest_id"`
	GuestName  string             `json:"guest_name"`
	RoomNumber string             `json:"room_number"`
	OrderType  string             `json:"order_type" binding:"required,oneof=room walk_in"`
	Items      []OrderItemRequest `json:"items" binding:"required,min=1,dive"`
}

// UpdateOrderStatusRequest represents a status transition request
type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
