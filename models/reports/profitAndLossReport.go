package reports

import (
	"sort"
	"time"

	"bitbucket.org/khakhrafoods/operations_backend/models"
	"bitbucket.org/khakhrafoods/operations_backend/utils"
	"github.com/shopspring/decimal"
)

type ProfitLossRow struct {
	PeriodKey       string          `json:"period_key"`
	Label           string          `json:"label"`
	Revenue         decimal.Decimal `json:"revenue"`
	CostOfGoodsSold decimal.Decimal `json:"cost_of_goods_sold"`
	GrossProfit     decimal.Decimal `json:"gross_profit"`
	Expenses        decimal.Decimal `json:"expenses"`
	NetProfit       decimal.Decimal `json:"net_profit"`
}

type plAggregate struct {
	revenue  decimal.Decimal
	cogs     decimal.Decimal
	expenses decimal.Decimal
	sample   time.Time
}

// BuildProfitAndLoss buckets orders (by creation date) and expenses (by
// expense date) into periods and emits one row per period present in either
// input, ascending by period key. Figures are rounded to 2 decimals per row
// independently, so a sum over displayed rows can drift from a global total
// by rounding - accepted, not a bug.
func BuildProfitAndLoss(orders []models.Order, expenses []models.Expense, period models.ReportPeriod) []ProfitLossRow {
	buckets := make(map[string]*plAggregate)

	bucket := func(t time.Time) *plAggregate {
		key := periodKey(t, period)
		agg, ok := buckets[key]
		if !ok {
			agg = &plAggregate{
				revenue:  decimal.Zero,
				cogs:     decimal.Zero,
				expenses: decimal.Zero,
				sample:   t,
			}
			buckets[key] = agg
		}
		return agg
	}

	for _, order := range orders {
		agg := bucket(order.CreatedAt)
		agg.revenue = agg.revenue.Add(order.Revenue())
		agg.cogs = agg.cogs.Add(order.Cost())
	}
	for _, expense := range expenses {
		agg := bucket(expense.Date)
		agg.expenses = agg.expenses.Add(expense.Amount)
	}

	keys := make([]string, 0, len(buckets))
	for key := range buckets {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	rows := make([]ProfitLossRow, 0, len(keys))
	for _, key := range keys {
		agg := buckets[key]
		rows = append(rows, ProfitLossRow{
			PeriodKey:       key,
			Label:           periodLabel(agg.sample, period),
			Revenue:         utils.Round2(agg.revenue),
			CostOfGoodsSold: utils.Round2(agg.cogs),
			GrossProfit:     utils.Round2(agg.revenue.Sub(agg.cogs)),
			Expenses:        utils.Round2(agg.expenses),
			NetProfit:       utils.Round2(agg.revenue.Sub(agg.cogs).Sub(agg.expenses)),
		})
	}
	return rows
}

func periodKey(t time.Time, period models.ReportPeriod) string {
	switch period {
	case models.ReportPeriodDaily:
		return utils.DailyKey(t)
	case models.ReportPeriodWeekly:
		return utils.WeeklyKey(t)
	default:
		return utils.MonthlyKey(t)
	}
}

func periodLabel(t time.Time, period models.ReportPeriod) string {
	switch period {
	case models.ReportPeriodDaily:
		return utils.DailyLabel(t)
	case models.ReportPeriodWeekly:
		return utils.WeeklyLabel(t)
	default:
		return utils.MonthlyLabel(t)
	}
}
