package workflow

import (
	"time"

	"bitbucket.org/khakhrafoods/operations_backend/models"
	"github.com/google/uuid"
)

const invoiceDueDays = 7

// CreateInvoice binds a new invoice to an order, copying the order's frozen
// totalAmount and gstAmount as of now. An unknown order id yields a nil
// invoice and the unchanged state, with no error. Duplicate invoices for the
// same order are not prevented here; callers filter orders that already
// carry one.
func CreateInvoice(state models.AppState, orderID string, invoiceNumber string, issuedOn *time.Time, now time.Time) (models.AppState, *models.Invoice) {
	order, ok := state.FindOrder(orderID)
	if !ok {
		return state, nil
	}

	issued := now
	if issuedOn != nil {
		issued = *issuedOn
	}

	invoice := models.Invoice{
		ID:            "inv-" + uuid.NewString(),
		OrderID:       orderID,
		InvoiceNumber: invoiceNumber,
		IssuedOn:      issued,
		DueDate:       issued.AddDate(0, 0, invoiceDueDays),
		Amount:        order.TotalAmount,
		GstAmount:     order.GstAmount,
		PaymentStatus: models.InvoicePaymentStatusUnpaid,
	}

	next := state.Clone()
	next.Invoices = append([]models.Invoice{invoice}, next.Invoices...)
	for i := range next.Orders {
		if next.Orders[i].ID == orderID {
			next.Orders[i].InvoiceNumber = invoice.InvoiceNumber
			break
		}
	}
	return next, &invoice
}
