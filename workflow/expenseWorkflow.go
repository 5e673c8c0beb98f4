package workflow

import (
	"time"

	"bitbucket.org/khakhrafoods/operations_backend/models"
	"github.com/google/uuid"
)

// RecordExpense validates and prepends a new expense. The expense date
// defaults to now when the input leaves it zero.
func RecordExpense(state models.AppState, input models.NewExpense, now time.Time) (models.AppState, *models.Expense, error) {
	if err := input.Validate(); err != nil {
		return state, nil, err
	}

	date := input.Date
	if date.IsZero() {
		date = now
	}

	expense := models.Expense{
		ID:          "exp-" + uuid.NewString(),
		Category:    input.Category,
		Description: input.Description,
		Amount:      input.Amount,
		PaidTo:      input.PaidTo,
		Date:        date,
		PaymentMode: input.PaymentMode,
		Recurring:   input.Recurring,
	}

	next := state.Clone()
	next.Expenses = append([]models.Expense{expense}, next.Expenses...)
	return next, &expense, nil
}

// RemoveExpense drops the expense with the given id. The boolean is false
// when nothing matched.
func RemoveExpense(state models.AppState, id string) (models.AppState, bool) {
	for i := range state.Expenses {
		if state.Expenses[i].ID != id {
			continue
		}
		next := state.Clone()
		next.Expenses = append(next.Expenses[:i], next.Expenses[i+1:]...)
		return next, true
	}
	return state, false
}
