package models

import "time"

type InventoryState struct {
	RawMaterials  []RawMaterial  `json:"raw_materials"`
	FinishedGoods []FinishedGood `json:"finished_goods"`
}

// AppState is the whole domain state: one value, serialized wholesale after
// every committed command. Commands are pure functions from one AppState to
// the next; nothing outside the store mutates a state in place.
type AppState struct {
	Customers []Customer     `json:"customers"`
	Products  []Product      `json:"products"`
	Inventory InventoryState `json:"inventory"`
	Orders    []Order        `json:"orders"`
	Expenses  []Expense      `json:"expenses"`
	Invoices  []Invoice      `json:"invoices"`
}

// Clone deep-copies the state. Commands clone before touching anything so a
// failed command leaves the input state untouched, and readers get snapshots
// that cannot alias store-owned memory.
func (s AppState) Clone() AppState {
	out := AppState{
		Customers: make([]Customer, len(s.Customers)),
		Products:  make([]Product, len(s.Products)),
		Inventory: InventoryState{
			RawMaterials:  make([]RawMaterial, len(s.Inventory.RawMaterials)),
			FinishedGoods: make([]FinishedGood, len(s.Inventory.FinishedGoods)),
		},
		Orders:   make([]Order, len(s.Orders)),
		Expenses: make([]Expense, len(s.Expenses)),
		Invoices: make([]Invoice, len(s.Invoices)),
	}
	copy(out.Products, s.Products)
	copy(out.Inventory.RawMaterials, s.Inventory.RawMaterials)
	copy(out.Inventory.FinishedGoods, s.Inventory.FinishedGoods)
	copy(out.Expenses, s.Expenses)
	copy(out.Invoices, s.Invoices)
	for i, c := range s.Customers {
		c.LastOrderDate = cloneTimePtr(c.LastOrderDate)
		out.Customers[i] = c
	}
	for i, o := range s.Orders {
		items := make([]OrderItem, len(o.Items))
		copy(items, o.Items)
		o.Items = items
		o.ExpectedShipDate = cloneTimePtr(o.ExpectedShipDate)
		o.DeliveredAt = cloneTimePtr(o.DeliveredAt)
		o.CancelledAt = cloneTimePtr(o.CancelledAt)
		out.Orders[i] = o
	}
	return out
}

func cloneTimePtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	c := *t
	return &c
}

func (s AppState) FindProduct(id string) (Product, bool) {
	for _, p := range s.Products {
		if p.ID == id {
			return p, true
		}
	}
	return Product{}, false
}

func (s AppState) FindCustomer(id string) (Customer, bool) {
	for _, c := range s.Customers {
		if c.ID == id {
			return c, true
		}
	}
	return Customer{}, false
}

func (s AppState) FindOrder(id string) (Order, bool) {
	for _, o := range s.Orders {
		if o.ID == id {
			return o, true
		}
	}
	return Order{}, false
}
