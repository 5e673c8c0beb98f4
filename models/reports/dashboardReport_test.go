package reports

import (
	"testing"
	"time"

	"bitbucket.org/khakhrafoods/operations_backend/models"
	"github.com/shopspring/decimal"
)

func TestCalculateRepeatRate(t *testing.T) {
	orderFor := func(customer string) models.Order {
		return models.Order{ID: "o-" + customer, CustomerID: customer}
	}

	cases := []struct {
		name   string
		orders []models.Order
		want   float64
	}{
		{"no orders", nil, 0},
		{
			// counts [3,1,2,1]: 2 repeaters of 4 customers
			"half repeaters",
			[]models.Order{
				orderFor("a"), orderFor("a"), orderFor("a"),
				orderFor("b"),
				orderFor("c"), orderFor("c"),
				orderFor("d"),
			},
			50,
		},
		{"all one-timers", []models.Order{orderFor("a"), orderFor("b")}, 0},
		{"single repeater", []models.Order{orderFor("a"), orderFor("a")}, 100},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := CalculateRepeatRate(c.orders); got != c.want {
				t.Errorf("repeat rate = %v, want %v", got, c.want)
			}
		})
	}
}

func TestSummarizeOrders(t *testing.T) {
	now := time.Now()
	orders := []models.Order{
		{
			CustomerID: "a", CreatedAt: now, Status: models.OrderStatusDelivered,
			Items:     []models.OrderItem{{ProductID: "p", Quantity: 2, UnitPrice: decimal.NewFromInt(40), CostPrice: decimal.NewFromInt(20)}},
			GstAmount: decimal.NewFromInt(4),
		},
		{
			CustomerID: "b", CreatedAt: now, Status: models.OrderStatusCancelled,
			Items:     []models.OrderItem{{ProductID: "p", Quantity: 1, UnitPrice: decimal.NewFromInt(35), CostPrice: decimal.NewFromInt(18)}},
			GstAmount: decimal.RequireFromString("1.75"),
		},
		{
			CustomerID: "c", CreatedAt: now, Status: models.OrderStatusPending,
			Items:     []models.OrderItem{{ProductID: "p", Quantity: 1, UnitPrice: decimal.NewFromInt(45), CostPrice: decimal.NewFromInt(24)}},
			GstAmount: decimal.RequireFromString("2.25"),
		},
	}

	summary := SummarizeOrders(orders)
	if summary.Revenue.StringFixed(2) != "160.00" {
		t.Errorf("revenue = %s", summary.Revenue)
	}
	if summary.Cost.StringFixed(2) != "82.00" {
		t.Errorf("cost = %s", summary.Cost)
	}
	if summary.GrossProfit.StringFixed(2) != "78.00" {
		t.Errorf("grossProfit = %s", summary.GrossProfit)
	}
	if summary.Gst.StringFixed(2) != "8.00" {
		t.Errorf("gst = %s", summary.Gst)
	}
	if summary.Delivered != 1 || summary.Cancelled != 1 {
		t.Errorf("delivered=%d cancelled=%d", summary.Delivered, summary.Cancelled)
	}
}
