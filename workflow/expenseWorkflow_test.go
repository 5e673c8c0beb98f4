package workflow

import (
	"testing"
	"time"

	"bitbucket.org/khakhrafoods/operations_backend/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestRecordExpenseDefaultsDateToNow(t *testing.T) {
	now := time.Date(2024, time.October, 7, 9, 0, 0, 0, time.UTC)

	next, expense, err := RecordExpense(models.AppState{}, models.NewExpense{
		Category:    models.ExpenseCategoryDelivery,
		Description: "Courier charges",
		Amount:      decimal.NewFromInt(4200),
		PaidTo:      "BlueDart Logistics",
		PaymentMode: models.PaymentMethodUpi,
	}, now)
	require.NoError(t, err)
	require.NotNil(t, expense)
	require.True(t, expense.Date.Equal(now))
	require.Len(t, next.Expenses, 1)
	require.Equal(t, expense.ID, next.Expenses[0].ID)
}

func TestRecordExpenseRejectsInvalidInput(t *testing.T) {
	cases := []struct {
		name  string
		input models.NewExpense
	}{
		{"empty description", models.NewExpense{Category: models.ExpenseCategoryOther, Amount: decimal.NewFromInt(10), PaymentMode: models.PaymentMethodCash}},
		{"zero amount", models.NewExpense{Category: models.ExpenseCategoryOther, Description: "x", PaymentMode: models.PaymentMethodCash}},
		{"negative amount", models.NewExpense{Category: models.ExpenseCategoryOther, Description: "x", Amount: decimal.NewFromInt(-5), PaymentMode: models.PaymentMethodCash}},
		{"bad category", models.NewExpense{Category: "snacks", Description: "x", Amount: decimal.NewFromInt(5), PaymentMode: models.PaymentMethodCash}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			next, expense, err := RecordExpense(models.AppState{}, c.input, time.Now())
			require.Error(t, err)
			require.Nil(t, expense)
			require.Len(t, next.Expenses, 0)
		})
	}
}

func TestRemoveExpense(t *testing.T) {
	now := time.Now()
	state, first, err := RecordExpense(models.AppState{}, models.NewExpense{
		Category:    models.ExpenseCategoryLabor,
		Description: "Weekly wages",
		Amount:      decimal.NewFromInt(18500),
		PaymentMode: models.PaymentMethodBankTransfer,
	}, now)
	require.NoError(t, err)
	state, second, err := RecordExpense(state, models.NewExpense{
		Category:    models.ExpenseCategoryUtilities,
		Description: "Electricity bill",
		Amount:      decimal.NewFromInt(7200),
		PaymentMode: models.PaymentMethodBankTransfer,
	}, now)
	require.NoError(t, err)

	next, ok := RemoveExpense(state, first.ID)
	require.True(t, ok)
	require.Len(t, next.Expenses, 1)
	require.Equal(t, second.ID, next.Expenses[0].ID)

	next, ok = RemoveExpense(next, "exp-missing")
	require.False(t, ok)
	require.Len(t, next.Expenses, 1)
}
