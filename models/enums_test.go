package models

import (
	"encoding/json"
	"testing"
)

func TestOrderStatusUnmarshalRejectsUnknown(t *testing.T) {
	var s OrderStatus
	if err := json.Unmarshal([]byte(`"delivered"`), &s); err != nil {
		t.Fatalf("valid status rejected: %v", err)
	}
	if s != OrderStatusDelivered {
		t.Errorf("got %q", s)
	}
	if err := json.Unmarshal([]byte(`"teleported"`), &s); err == nil {
		t.Error("unknown status accepted")
	}
	if err := json.Unmarshal([]byte(`42`), &s); err == nil {
		t.Error("non-string status accepted")
	}
}

func TestOrderStatusTerminal(t *testing.T) {
	terminal := map[OrderStatus]bool{
		OrderStatusPending:    false,
		OrderStatusProcessing: false,
		OrderStatusShipped:    false,
		OrderStatusDelivered:  true,
		OrderStatusCancelled:  true,
	}
	for status, want := range terminal {
		if status.IsTerminal() != want {
			t.Errorf("%s.IsTerminal() = %v, want %v", status, !want, want)
		}
	}
}

func TestExpenseCategoryUnmarshal(t *testing.T) {
	var c ExpenseCategory
	if err := json.Unmarshal([]byte(`"raw_materials"`), &c); err != nil {
		t.Fatalf("valid category rejected: %v", err)
	}
	if err := json.Unmarshal([]byte(`"snacks"`), &c); err == nil {
		t.Error("unknown category accepted")
	}
}

func TestUserRoleCapabilities(t *testing.T) {
	cases := []struct {
		role      UserRole
		orders    bool
		inventory bool
		finance   bool
	}{
		{UserRoleAdmin, true, true, true},
		{UserRoleStaff, true, true, false},
		{UserRoleAccountant, false, false, true},
	}
	for _, c := range cases {
		if c.role.CanManageOrders() != c.orders {
			t.Errorf("%s.CanManageOrders() = %v", c.role, !c.orders)
		}
		if c.role.CanManageInventory() != c.inventory {
			t.Errorf("%s.CanManageInventory() = %v", c.role, !c.inventory)
		}
		if c.role.CanManageFinance() != c.finance {
			t.Errorf("%s.CanManageFinance() = %v", c.role, !c.finance)
		}
	}
}
