package reports

import (
	"sort"

	"bitbucket.org/khakhrafoods/operations_backend/models"
	"bitbucket.org/khakhrafoods/operations_backend/utils"
	"github.com/shopspring/decimal"
)

const (
	topProductsLimit    = 5
	seasonalDemandLimit = 6
)

type ProductSales struct {
	Name     string          `json:"name"`
	Quantity int             `json:"quantity"`
	Revenue  decimal.Decimal `json:"revenue"`
	Profit   decimal.Decimal `json:"profit"`
}

// BuildTopProducts groups order lines by product name and returns the top 5
// by revenue, descending. Lines referencing products missing from reference
// data are skipped.
func BuildTopProducts(orders []models.Order, products []models.Product) []ProductSales {
	type stats struct {
		quantity int
		revenue  decimal.Decimal
		cost     decimal.Decimal
	}
	names := make(map[string]string, len(products))
	for _, p := range products {
		names[p.ID] = p.Name
	}

	grouped := make(map[string]*stats)
	order := []string{}
	for _, o := range orders {
		for _, item := range o.Items {
			name, ok := names[item.ProductID]
			if !ok {
				continue
			}
			entry, ok := grouped[name]
			if !ok {
				entry = &stats{revenue: decimal.Zero, cost: decimal.Zero}
				grouped[name] = entry
				order = append(order, name)
			}
			qty := decimal.NewFromInt(int64(item.Quantity))
			entry.quantity += item.Quantity
			entry.revenue = entry.revenue.Add(item.UnitPrice.Mul(qty))
			entry.cost = entry.cost.Add(item.CostPrice.Mul(qty))
		}
	}

	rows := make([]ProductSales, 0, len(grouped))
	for _, name := range order {
		entry := grouped[name]
		rows = append(rows, ProductSales{
			Name:     name,
			Quantity: entry.quantity,
			Revenue:  utils.Round2(entry.revenue),
			Profit:   utils.Round2(entry.revenue.Sub(entry.cost)),
		})
	}
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Revenue.GreaterThan(rows[j].Revenue)
	})
	if len(rows) > topProductsLimit {
		rows = rows[:topProductsLimit]
	}
	return rows
}

type SeasonalDemand struct {
	Name    string          `json:"name"`
	Revenue decimal.Decimal `json:"revenue"`
}

// CalculateSeasonalDemand sums revenue per calendar month and returns the
// busiest 6 months, descending by revenue.
func CalculateSeasonalDemand(orders []models.Order) []SeasonalDemand {
	grouped := make(map[string]decimal.Decimal)
	order := []string{}
	for _, o := range orders {
		month := utils.MonthlyLabel(o.CreatedAt)
		if _, ok := grouped[month]; !ok {
			grouped[month] = decimal.Zero
			order = append(order, month)
		}
		grouped[month] = grouped[month].Add(o.Revenue())
	}

	rows := make([]SeasonalDemand, 0, len(grouped))
	for _, month := range order {
		rows = append(rows, SeasonalDemand{Name: month, Revenue: utils.Round2(grouped[month])})
	}
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Revenue.GreaterThan(rows[j].Revenue)
	})
	if len(rows) > seasonalDemandLimit {
		rows = rows[:seasonalDemandLimit]
	}
	return rows
}
