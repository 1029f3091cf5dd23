package enum

// Role is the staff role assigned to a user account
type Role string

const (
	RoleAdmin     Role = "admin"
	RoleReception Role = "reception"
	RoleKitchen   Role = "kitchen"
)

// Valid reports whether r is a known role
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleReception, RoleKitchen:
		return true
	}
	return false
}

func (r Role) String() string {
	return string(r)
}

// Permission names. Role checks are resolved once at login into a permission
// set carried in the JWT; handlers and middleware only ever consult
// permissions, never raw role strings.
const (
	PermManageUsers         = "manage-users"
	PermManageSettings      = "manage-settings"
	PermManageGuests        = "manage-guests"
	PermManageServices      = "manage-services"
	PermManageMenuItems     = "manage-menu-items"
	PermManageInvoices      = "manage-invoices"
	PermCreateKitchenOrder  = "create-kitchen-order"
	PermUpdateKitchenStatus = "update-kitchen-status"
	PermViewKitchenOrders   = "view-kitchen-orders"
	PermViewReports         = "view-reports"
	PermViewDashboard       = "view-dashboard"
)

// Permissions resolves the capability set for a role
func (r Role) Permissions() []string {
	switch r {
	case RoleAdmin:
		return []string{
			PermManageUsers,
			PermManageSettings,
			PermManageGuests,
			PermManageServices,
			PermManageMenuItems,
			PermManageInvoices,
			PermCreateKitchenOrder,
			PermUpdateKitchenStatus,
			PermViewKitchenOrders,
			PermViewReports,
			PermViewDashboard,
		}
	case RoleReception:
		return []string{
			PermManageGuests,
			PermManageInvoices,
			PermViewKitchenOrders,
			PermViewDashboard,
		}
	case RoleKitchen:
		return []string{
			PermManageMenuItems,
			PermCreateKitchenOrder,
			PermUpdateKitchenStatus,
			PermViewKitchenOrders,
			PermViewDashboard,
		}
	}
	return nil
}
