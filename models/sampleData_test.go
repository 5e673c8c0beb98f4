package models

import (
	"testing"
	"time"
)

func TestDefaultStateDerivedFieldsConsistent(t *testing.T) {
	state := DefaultState(time.Now())

	for _, order := range state.Orders {
		gross := order.Revenue()
		want := gross.Add(order.ShippingCost).Sub(order.DiscountAmount).Add(order.GstAmount).Round(2)
		if !order.TotalAmount.Equal(want) {
			t.Errorf("%s total = %s, want %s", order.OrderNumber, order.TotalAmount, want)
		}
	}
}

func TestDefaultStateInvoicesMatchOrders(t *testing.T) {
	state := DefaultState(time.Now())

	for _, invoice := range state.Invoices {
		order, ok := state.FindOrder(invoice.OrderID)
		if !ok {
			t.Fatalf("invoice %s references unknown order %s", invoice.InvoiceNumber, invoice.OrderID)
		}
		if !invoice.Amount.Equal(order.TotalAmount) || !invoice.GstAmount.Equal(order.GstAmount) {
			t.Errorf("invoice %s amounts drifted from order %s", invoice.InvoiceNumber, order.OrderNumber)
		}
		if order.InvoiceNumber != invoice.InvoiceNumber {
			t.Errorf("order %s back-reference = %q, want %q", order.OrderNumber, order.InvoiceNumber, invoice.InvoiceNumber)
		}
	}
}

func TestDefaultStateReferences(t *testing.T) {
	state := DefaultState(time.Now())

	for _, order := range state.Orders {
		if _, ok := state.FindCustomer(order.CustomerID); !ok {
			t.Errorf("order %s references unknown customer %s", order.OrderNumber, order.CustomerID)
		}
		for _, item := range order.Items {
			if _, ok := state.FindProduct(item.ProductID); !ok {
				t.Errorf("order %s references unknown product %s", order.OrderNumber, item.ProductID)
			}
		}
	}
	for _, fg := range state.Inventory.FinishedGoods {
		if _, ok := state.FindProduct(fg.ProductID); !ok {
			t.Errorf("batch %s references unknown product %s", fg.BatchCode, fg.ProductID)
		}
	}
}

func TestCloneIsDeep(t *testing.T) {
	state := DefaultState(time.Now())
	clone := state.Clone()

	clone.Orders[0].Items[0].Quantity = 999
	clone.Inventory.FinishedGoods[0].Quantity = 0

	if state.Orders[0].Items[0].Quantity == 999 {
		t.Error("clone shares order item memory with the original")
	}
	if state.Inventory.FinishedGoods[0].Quantity == 0 {
		t.Error("clone shares inventory memory with the original")
	}

	// pointer-typed timestamps are copied, not shared
	if clone.Orders[0].DeliveredAt == nil {
		t.Fatal("sample order ord-001 should carry DeliveredAt")
	}
	*clone.Orders[0].DeliveredAt = time.Date(1999, time.January, 1, 0, 0, 0, 0, time.UTC)
	if state.Orders[0].DeliveredAt.Year() == 1999 {
		t.Error("clone shares DeliveredAt memory with the original")
	}
}
