package models

import (
	"errors"
	"time"

	"bitbucket.org/khakhrafoods/operations_backend/utils"
	"github.com/shopspring/decimal"
)

type OrderItem struct {
	ProductID string          `json:"product_id"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"` // snapshot of Product.SalePrice at order time
	CostPrice decimal.Decimal `json:"cost_price"` // snapshot of Product.CostPrice at order time
}

// Order totals (GstAmount, TotalAmount) are computed once at creation and
// frozen; status transitions and later product price changes never recompute
// them. The invoice due date, by contrast, is derived fresh from its issue
// date. That asymmetry is deliberate.
type Order struct {
	ID               string          `json:"id"`
	OrderNumber      string          `json:"order_number"`
	CustomerID       string          `json:"customer_id"`
	Items            []OrderItem     `json:"items"`
	Status           OrderStatus     `json:"status"`
	PaymentMethod    PaymentMethod   `json:"payment_method"`
	Note             string          `json:"note,omitempty"`
	CreatedAt        time.Time       `json:"created_at"`
	ExpectedShipDate *time.Time      `json:"expected_ship_date,omitempty"`
	DeliveredAt      *time.Time      `json:"delivered_at,omitempty"`
	CancelledAt      *time.Time      `json:"cancelled_at,omitempty"`
	DiscountAmount   decimal.Decimal `json:"discount_amount"`
	ShippingCost     decimal.Decimal `json:"shipping_cost"`
	GstAmount        decimal.Decimal `json:"gst_amount"`
	TotalAmount      decimal.Decimal `json:"total_amount"`
	InvoiceNumber    string          `json:"invoice_number,omitempty"`
}

// Revenue is the sum of unitPrice*qty over the order's items, GST excluded.
func (o Order) Revenue() decimal.Decimal {
	total := decimal.Zero
	for _, item := range o.Items {
		total = total.Add(item.UnitPrice.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	return total
}

// Cost is the sum of costPrice*qty over the order's items.
func (o Order) Cost() decimal.Decimal {
	total := decimal.Zero
	for _, item := range o.Items {
		total = total.Add(item.CostPrice.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	return total
}

func (o Order) GrossProfit() decimal.Decimal {
	return o.Revenue().Sub(o.Cost())
}

func (o Order) NetProfit(allocatedExpenses decimal.Decimal) decimal.Decimal {
	return o.GrossProfit().Sub(allocatedExpenses)
}

type NewOrderItem struct {
	ProductID string `json:"product_id" validate:"required"`
	Quantity  int    `json:"quantity" validate:"gt=0"`
}

type NewOrder struct {
	CustomerID       string          `json:"customer_id" validate:"required"`
	Items            []NewOrderItem  `json:"items" validate:"min=1,dive"`
	PaymentMethod    PaymentMethod   `json:"payment_method" validate:"required"`
	Status           OrderStatus     `json:"status,omitempty"`
	DiscountAmount   decimal.Decimal `json:"discount_amount"`
	ShippingCost     decimal.Decimal `json:"shipping_cost"`
	Note             string          `json:"note,omitempty"`
	ExpectedShipDate *time.Time      `json:"expected_ship_date,omitempty"`
}

// validate input for create. Field presence runs through the shared
// validator; enum and money checks the tags cannot express follow.
func (input *NewOrder) Validate() error {
	if err := utils.GetValidator().Struct(input); err != nil {
		return err
	}
	if !input.PaymentMethod.Valid() {
		return errors.New("invalid payment method")
	}
	if input.Status != "" && !input.Status.Valid() {
		return errors.New("invalid order status")
	}
	if input.DiscountAmount.IsNegative() {
		return errors.New("discount amount must not be negative")
	}
	if input.ShippingCost.IsNegative() {
		return errors.New("shipping cost must not be negative")
	}
	return nil
}
