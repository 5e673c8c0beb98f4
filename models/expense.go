package models

import (
	"errors"
	"time"

	"bitbucket.org/khakhrafoods/operations_backend/utils"
	"github.com/shopspring/decimal"
)

type Expense struct {
	ID          string          `json:"id"`
	Category    ExpenseCategory `json:"category"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	PaidTo      string          `json:"paid_to"`
	Date        time.Time       `json:"date"`
	PaymentMode PaymentMethod   `json:"payment_mode"`
	Recurring   bool            `json:"recurring,omitempty"`
}

type NewExpense struct {
	Category    ExpenseCategory `json:"category" validate:"required"`
	Description string          `json:"description" validate:"required"`
	Amount      decimal.Decimal `json:"amount"`
	PaidTo      string          `json:"paid_to"`
	Date        time.Time       `json:"date"`
	PaymentMode PaymentMethod   `json:"payment_mode" validate:"required"`
	Recurring   bool            `json:"recurring"`
}

// validate input for create.
func (input *NewExpense) Validate() error {
	if err := utils.GetValidator().Struct(input); err != nil {
		return err
	}
	if !input.Category.Valid() {
		return errors.New("invalid expense category")
	}
	if !input.Amount.IsPositive() {
		return errors.New("amount must be positive")
	}
	if !input.PaymentMode.Valid() {
		return errors.New("invalid payment mode")
	}
	return nil
}
