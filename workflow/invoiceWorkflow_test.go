package workflow

import (
	"testing"
	"time"

	"bitbucket.org/khakhrafoods/operations_backend/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func stateWithOrder(t *testing.T) (models.AppState, *models.Order) {
	t.Helper()
	state, order, err := CreateOrder(fixtureState(), models.NewOrder{
		CustomerID:    "cust-1",
		Items:         []models.NewOrderItem{{ProductID: "masala", Quantity: 2}},
		PaymentMethod: models.PaymentMethodUpi,
		ShippingCost:  decimal.NewFromInt(60),
	}, "KH-24001", time.Now())
	require.NoError(t, err)
	return state, order
}

func TestCreateInvoiceCopiesOrderAmounts(t *testing.T) {
	state, order := stateWithOrder(t)
	now := time.Date(2024, time.October, 7, 9, 0, 0, 0, time.UTC)

	next, invoice := CreateInvoice(state, order.ID, "INV-24001", nil, now)
	require.NotNil(t, invoice)
	require.Equal(t, "INV-24001", invoice.InvoiceNumber)
	require.Equal(t, order.ID, invoice.OrderID)
	require.True(t, invoice.Amount.Equal(order.TotalAmount))
	require.True(t, invoice.GstAmount.Equal(order.GstAmount))
	require.Equal(t, models.InvoicePaymentStatusUnpaid, invoice.PaymentStatus)
	require.True(t, invoice.IssuedOn.Equal(now))
	require.True(t, invoice.DueDate.Equal(now.AddDate(0, 0, 7)))

	require.Len(t, next.Invoices, 1)
	require.Equal(t, invoice.ID, next.Invoices[0].ID)

	// the order carries the invoice number back-reference
	require.Equal(t, "INV-24001", next.Orders[0].InvoiceNumber)
	// the input state stays untouched
	require.Empty(t, state.Orders[0].InvoiceNumber)
}

func TestCreateInvoiceExplicitIssueDate(t *testing.T) {
	state, order := stateWithOrder(t)
	issued := time.Date(2024, time.September, 1, 0, 0, 0, 0, time.UTC)

	_, invoice := CreateInvoice(state, order.ID, "INV-24001", &issued, time.Now())
	require.NotNil(t, invoice)
	require.True(t, invoice.IssuedOn.Equal(issued))
	require.True(t, invoice.DueDate.Equal(issued.AddDate(0, 0, 7)))
}

func TestCreateInvoiceUnknownOrder(t *testing.T) {
	state, _ := stateWithOrder(t)

	next, invoice := CreateInvoice(state, "ord-missing", "INV-24001", nil, time.Now())
	require.Nil(t, invoice)
	require.Len(t, next.Invoices, 0)
}
