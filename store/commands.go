package store

import (
	"fmt"
	"time"

	"bitbucket.org/khakhrafoods/operations_backend/models"
	"bitbucket.org/khakhrafoods/operations_backend/workflow"
)

// CreateOrder creates an order with the next KH- number and decrements one
// finished-goods batch per ordered product, all as one committed transition.
// On error nothing commits: no order, no stock change, no sequence bump.
func (s *Store) CreateOrder(input models.NewOrder) (*models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	orderNumber := fmt.Sprintf("%s%d", orderNumberPrefix, s.orderSeq+1)
	next, order, err := workflow.CreateOrder(s.state, input, orderNumber, time.Now())
	if err != nil {
		return nil, err
	}
	s.orderSeq++
	s.commitLocked(next)
	return order, nil
}

// UpdateOrderStatus moves an order to any of the five statuses. Entering
// delivered or cancelled stamps the matching timestamp; there are no other
// side effects. False means the order id or status was unknown.
func (s *Store) UpdateOrderStatus(id string, status models.OrderStatus) bool {
	if !status.Valid() {
		return false
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	next, ok := workflow.UpdateOrderStatus(s.state, id, status, time.Now())
	if !ok {
		return false
	}
	s.commitLocked(next)
	return true
}

func (s *Store) RecordExpense(input models.NewExpense) (*models.Expense, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, expense, err := workflow.RecordExpense(s.state, input, time.Now())
	if err != nil {
		return nil, err
	}
	s.commitLocked(next)
	return expense, nil
}

func (s *Store) RemoveExpense(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, ok := workflow.RemoveExpense(s.state, id)
	if !ok {
		return false
	}
	s.commitLocked(next)
	return true
}

// CreateInvoiceForOrder generates the next INV- numbered invoice for an
// order. A nil issuedOn defaults to now; the due date is always issued + 7
// days. Unknown order ids return nil with the collections untouched.
func (s *Store) CreateInvoiceForOrder(orderID string, issuedOn *time.Time) *models.Invoice {
	s.mu.Lock()
	defer s.mu.Unlock()

	invoiceNumber := fmt.Sprintf("%s%d", invoiceNumberPrefix, s.invoiceSeq+1)
	next, invoice := workflow.CreateInvoice(s.state, orderID, invoiceNumber, issuedOn, time.Now())
	if invoice == nil {
		return nil
	}
	s.invoiceSeq++
	s.commitLocked(next)
	return invoice
}

// ReplenishRawMaterial adds stock. Non-positive quantities are rejected the
// quiet way form input is: nothing happens.
func (s *Store) ReplenishRawMaterial(id string, qty int) {
	if qty <= 0 {
		return
	}
	s.adjustRawMaterial(id, qty, nil)
}

// ConsumeRawMaterial removes stock, floored at zero.
func (s *Store) ConsumeRawMaterial(id string, qty int) {
	if qty <= 0 {
		return
	}
	s.adjustRawMaterial(id, -qty, nil)
}

// AdjustRawMaterialAt applies a signed delta with an explicit last-updated
// timestamp, for backdated corrections.
func (s *Store) AdjustRawMaterialAt(id string, delta int, at time.Time) {
	s.adjustRawMaterial(id, delta, &at)
}

func (s *Store) adjustRawMaterial(id string, delta int, at *time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.commitLocked(workflow.AdjustRawMaterial(s.state, id, delta, at, time.Now()))
}

// AdjustFinishedGood applies a signed delta to one batch, floored at zero.
func (s *Store) AdjustFinishedGood(id string, delta int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.commitLocked(workflow.AdjustFinishedGood(s.state, id, delta))
}

// ProduceFinishedBatch records a production event as a new batch.
func (s *Store) ProduceFinishedBatch(input models.NewFinishedGood) (*models.FinishedGood, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, batch, err := workflow.ProduceFinishedBatch(s.state, input)
	if err != nil {
		return nil, err
	}
	s.commitLocked(next)
	return batch, nil
}

// ConsumeFinishedGoods reduces stock for a product on its first matching
// batch in collection order.
func (s *Store) ConsumeFinishedGoods(productID string, qty int) {
	if qty <= 0 {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.commitLocked(workflow.ConsumeFinishedGoods(s.state, productID, qty))
}
