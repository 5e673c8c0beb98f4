package models

import (
	"encoding/json"
	"errors"
	"fmt"
)

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

// Terminal states never transition again; cancelled is reachable from any
// non-terminal state and no stock is reversed on the way in.
func (s OrderStatus) IsTerminal() bool {
	return s == OrderStatusDelivered || s == OrderStatusCancelled
}

func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusProcessing, OrderStatusShipped,
		OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

func (s *OrderStatus) UnmarshalJSON(b []byte) error {
	var str string
	if err := json.Unmarshal(b, &str); err != nil {
		return errors.New("order status must be string")
	}
	if !OrderStatus(str).Valid() {
		return fmt.Errorf("invalid order status %q", str)
	}
	*s = OrderStatus(str)
	return nil
}

type PaymentMethod string

const (
	PaymentMethodUpi          PaymentMethod = "upi"
	PaymentMethodCash         PaymentMethod = "cash"
	PaymentMethodCard         PaymentMethod = "card"
	PaymentMethodBankTransfer PaymentMethod = "bank_transfer"
)

func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentMethodUpi, PaymentMethodCash, PaymentMethodCard, PaymentMethodBankTransfer:
		return true
	}
	return false
}

func (m *PaymentMethod) UnmarshalJSON(b []byte) error {
	var str string
	if err := json.Unmarshal(b, &str); err != nil {
		return errors.New("payment method must be string")
	}
	if !PaymentMethod(str).Valid() {
		return fmt.Errorf("invalid payment method %q", str)
	}
	*m = PaymentMethod(str)
	return nil
}

type ExpenseCategory string

const (
	ExpenseCategoryRawMaterials ExpenseCategory = "raw_materials"
	ExpenseCategoryPackaging    ExpenseCategory = "packaging"
	ExpenseCategoryDelivery     ExpenseCategory = "delivery"
	ExpenseCategoryUtilities    ExpenseCategory = "utilities"
	ExpenseCategoryLabor        ExpenseCategory = "labor"
	ExpenseCategoryMarketing    ExpenseCategory = "marketing"
	ExpenseCategoryMaintenance  ExpenseCategory = "maintenance"
	ExpenseCategoryOther        ExpenseCategory = "other"
)

func (c ExpenseCategory) Valid() bool {
	switch c {
	case ExpenseCategoryRawMaterials, ExpenseCategoryPackaging, ExpenseCategoryDelivery,
		ExpenseCategoryUtilities, ExpenseCategoryLabor, ExpenseCategoryMarketing,
		ExpenseCategoryMaintenance, ExpenseCategoryOther:
		return true
	}
	return false
}

func (c *ExpenseCategory) UnmarshalJSON(b []byte) error {
	var str string
	if err := json.Unmarshal(b, &str); err != nil {
		return errors.New("expense category must be string")
	}
	if !ExpenseCategory(str).Valid() {
		return fmt.Errorf("invalid expense category %q", str)
	}
	*c = ExpenseCategory(str)
	return nil
}

type InvoicePaymentStatus string

const (
	InvoicePaymentStatusUnpaid  InvoicePaymentStatus = "unpaid"
	InvoicePaymentStatusPartial InvoicePaymentStatus = "partial"
	InvoicePaymentStatusPaid    InvoicePaymentStatus = "paid"
)

func (s InvoicePaymentStatus) Valid() bool {
	switch s {
	case InvoicePaymentStatusUnpaid, InvoicePaymentStatusPartial, InvoicePaymentStatusPaid:
		return true
	}
	return false
}

func (s *InvoicePaymentStatus) UnmarshalJSON(b []byte) error {
	var str string
	if err := json.Unmarshal(b, &str); err != nil {
		return errors.New("invoice payment status must be string")
	}
	if !InvoicePaymentStatus(str).Valid() {
		return fmt.Errorf("invalid invoice payment status %q", str)
	}
	*s = InvoicePaymentStatus(str)
	return nil
}

// UserRole gates which screens render their mutation controls. It is a UI
// affordance carried per session, not an authorization boundary.
type UserRole string

const (
	UserRoleAdmin      UserRole = "admin"
	UserRoleStaff      UserRole = "staff"
	UserRoleAccountant UserRole = "accountant"
)

func (r UserRole) Valid() bool {
	switch r {
	case UserRoleAdmin, UserRoleStaff, UserRoleAccountant:
		return true
	}
	return false
}

// CanManageOrders reports whether the order intake / tracker controls render.
func (r UserRole) CanManageOrders() bool {
	return r == UserRoleAdmin || r == UserRoleStaff
}

// CanManageInventory reports whether inventory adjustment controls render.
func (r UserRole) CanManageInventory() bool {
	return r == UserRoleAdmin || r == UserRoleStaff
}

// CanManageFinance reports whether billing, expense and P&L controls render.
func (r UserRole) CanManageFinance() bool {
	return r == UserRoleAdmin || r == UserRoleAccountant
}

type ReportPeriod string

const (
	ReportPeriodDaily   ReportPeriod = "daily"
	ReportPeriodWeekly  ReportPeriod = "weekly"
	ReportPeriodMonthly ReportPeriod = "monthly"
)

func (p ReportPeriod) Valid() bool {
	switch p {
	case ReportPeriodDaily, ReportPeriodWeekly, ReportPeriodMonthly:
		return true
	}
	return false
}
