package enum

// OrderType distinguishes room-service orders from walk-in orders
type OrderType string

const (
	OrderTypeRoom   OrderType = "room"
	OrderTypeWalkIn OrderType = "walk_in"
)

// Valid reports whether t is a known order type
func (t OrderType) Valid() bool {
	return t == OrderTypeRoom || t == OrderTypeWalkIn
}

func (t OrderType) String() string {
	return string(t)
}
