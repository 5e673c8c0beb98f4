package reports

import (
	"bitbucket.org/khakhrafoods/operations_backend/models"
	"github.com/shopspring/decimal"
)

// OrderSummary feeds the dashboard KPI tiles.
type OrderSummary struct {
	Revenue     decimal.Decimal `json:"revenue"`
	Cost        decimal.Decimal `json:"cost"`
	Gst         decimal.Decimal `json:"gst"`
	GrossProfit decimal.Decimal `json:"gross_profit"`
	Delivered   int             `json:"delivered"`
	Cancelled   int             `json:"cancelled"`
}

func SummarizeOrders(orders []models.Order) OrderSummary {
	summary := OrderSummary{
		Revenue:     decimal.Zero,
		Cost:        decimal.Zero,
		Gst:         decimal.Zero,
		GrossProfit: decimal.Zero,
	}
	for _, order := range orders {
		summary.Revenue = summary.Revenue.Add(order.Revenue())
		summary.Cost = summary.Cost.Add(order.Cost())
		summary.Gst = summary.Gst.Add(order.GstAmount)
		switch order.Status {
		case models.OrderStatusDelivered:
			summary.Delivered++
		case models.OrderStatusCancelled:
			summary.Cancelled++
		}
	}
	summary.GrossProfit = summary.Revenue.Sub(summary.Cost)
	return summary
}

// CalculateRepeatRate is (customers with more than one order) over (distinct
// customers with at least one) as a percentage, 0 with no ordering
// customers at all.
func CalculateRepeatRate(orders []models.Order) float64 {
	counts := make(map[string]int)
	for _, order := range orders {
		counts[order.CustomerID]++
	}
	if len(counts) == 0 {
		return 0
	}
	repeaters := 0
	for _, count := range counts {
		if count > 1 {
			repeaters++
		}
	}
	return float64(repeaters) / float64(len(counts)) * 100
}
