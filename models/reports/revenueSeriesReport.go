package reports

import (
	"sort"
	"time"

	"bitbucket.org/khakhrafoods/operations_backend/models"
	"bitbucket.org/khakhrafoods/operations_backend/utils"
	"github.com/shopspring/decimal"
)

type RevenuePoint struct {
	Date    string          `json:"date"` // sortable calendar-day key
	Label   string          `json:"label"`
	Revenue decimal.Decimal `json:"revenue"`
	Orders  int             `json:"orders"`
}

// BuildRevenueSeries sums revenue and order count per calendar day,
// ascending by day.
func BuildRevenueSeries(orders []models.Order) []RevenuePoint {
	type agg struct {
		revenue decimal.Decimal
		orders  int
		sample  time.Time
	}
	grouped := make(map[string]*agg)
	for _, o := range orders {
		key := utils.DailyKey(o.CreatedAt)
		entry, ok := grouped[key]
		if !ok {
			entry = &agg{revenue: decimal.Zero, sample: o.CreatedAt}
			grouped[key] = entry
		}
		entry.revenue = entry.revenue.Add(o.Revenue())
		entry.orders++
	}

	keys := make([]string, 0, len(grouped))
	for key := range grouped {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	points := make([]RevenuePoint, 0, len(keys))
	for _, key := range keys {
		entry := grouped[key]
		points = append(points, RevenuePoint{
			Date:    key,
			Label:   utils.DailyLabel(entry.sample),
			Revenue: utils.Round2(entry.revenue),
			Orders:  entry.orders,
		})
	}
	return points
}

// FilterOrdersByDate keeps orders created within the inclusive calendar-day
// range [from, to].
func FilterOrdersByDate(orders []models.Order, from, to time.Time) []models.Order {
	start := utils.StartOfDay(from)
	end := utils.EndOfDay(to)
	filtered := make([]models.Order, 0, len(orders))
	for _, o := range orders {
		if o.CreatedAt.Before(start) || o.CreatedAt.After(end) {
			continue
		}
		filtered = append(filtered, o)
	}
	return filtered
}
