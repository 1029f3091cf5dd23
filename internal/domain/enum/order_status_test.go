package enum

import "testing"

func TestOrderStatusTransitions(t *testing.T) {
	tests := []struct {
		from    OrderStatus
		to      OrderStatus
		allowed bool
	}{
		{OrderStatusPending, OrderStatusProcessing, true},
		{OrderStatusPending, OrderStatusCancelled, true},
		{OrderStatusPending, OrderStatusCompleted, false},
		{OrderStatusPending, OrderStatusPending, false},
		{OrderStatusProcessing, OrderStatusCompleted, true},
		{OrderStatusProcessing, OrderStatusCancelled, false},
		{OrderStatusProcessing, OrderStatusPending, false},
		{OrderStatusCompleted, OrderStatusPending, false},
		{OrderStatusCompleted, OrderStatusProcessing, false},
		{OrderStatusCompleted, OrderStatusCancelled, false},
		{OrderStatusCancelled, OrderStatusPending, false},
		{OrderStatusCancelled, OrderStatusProcessing, false},
		{OrderStatusCancelled, OrderStatusCompleted, false},
	}

	for _, tt := range tests {
		if got := tt.from.CanTransitionTo(tt.to); got != tt.allowed {
			t.Errorf("%s -> %s: CanTransitionTo = %v, want %v", tt.from, tt.to, got, tt.allowed)
		}
	}
}

func TestOrderStatusTerminal(t *testing.T) {
	if OrderStatusPending.Terminal() || OrderStatusProcessing.Terminal() {
		t.Error("pending/processing must not be terminal")
	}
	if !OrderStatusCompleted.Terminal() || !OrderStatusCancelled.Terminal() {
		t.Error("completed/cancelled must be terminal")
	}
}

func TestRolePermissions(t *testing.T) {
	for _, role := range []Role{RoleAdmin, RoleReception, RoleKitchen} {
		perms := role.Permissions()
		if len(perms) == 0 {
			t.Errorf("role %s resolved to an empty permission set", role)
		}
	}

	// Reception can raise invoices but never drive the kitchen board
	recPerms := RoleReception.Permissions()
	for _, p := range recPerms {
		if p == PermUpdateKitchenStatus {
			t.Error("reception must not hold update-kitchen-status")
		}
	}

	// Kitchen staff cannot raise invoices
	for _, p := range RoleKitchen.Permissions() {
		if p == PermManageInvoices {
			t.Error("kitchen must not hold manage-invoices")
		}
	}
}
