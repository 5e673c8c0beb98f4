package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Invoice amounts are copied from the order at generation time. Nothing
// prevents generating a second invoice for the same order; callers filter
// orders that already carry an invoice number.
type Invoice struct {
	ID            string               `json:"id"`
	OrderID       string               `json:"order_id"`
	InvoiceNumber string               `json:"invoice_number"`
	IssuedOn      time.Time            `json:"issued_on"`
	DueDate       time.Time            `json:"due_date"`
	Amount        decimal.Decimal      `json:"amount"`
	GstAmount     decimal.Decimal      `json:"gst_amount"`
	PaymentStatus InvoicePaymentStatus `json:"payment_status"`
	Notes         string               `json:"notes,omitempty"`
}
