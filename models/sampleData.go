package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// DefaultState seeds a fresh data directory with a small working dataset so
// every screen has something to show on first run. Dates are relative to
// now so the dashboard's recent-activity views stay populated.
func DefaultState(now time.Time) AppState {
	gst5 := decimal.RequireFromString("0.05")
	gst12 := decimal.RequireFromString("0.12")

	products := []Product{
		{
			ID:               "plain",
			Name:             "Plain Khakhra",
			Variety:          "Classic",
			Description:      "Traditional plain khakhra perfect for tea time.",
			SalePrice:        decimal.NewFromInt(35),
			CostPrice:        decimal.NewFromInt(18),
			GstRate:          gst5,
			Unit:             "packet",
			DefaultBatchSize: 200,
		},
		{
			ID:               "masala",
			Name:             "Masala Khakhra",
			Variety:          "Spicy",
			Description:      "Signature blend of spices with authentic crunch.",
			SalePrice:        decimal.NewFromInt(40),
			CostPrice:        decimal.NewFromInt(20),
			GstRate:          gst5,
			Unit:             "packet",
			DefaultBatchSize: 250,
		},
		{
			ID:               "jeera",
			Name:             "Jeera Khakhra",
			Variety:          "Savory",
			Description:      "Roasted cumin infused khakhra loved by all.",
			SalePrice:        decimal.NewFromInt(38),
			CostPrice:        decimal.NewFromInt(19),
			GstRate:          gst5,
			Unit:             "packet",
			DefaultBatchSize: 200,
		},
		{
			ID:               "methi",
			Name:             "Methi Khakhra",
			Variety:          "Herbal",
			Description:      "Fenugreek enriched healthy khakhra.",
			SalePrice:        decimal.NewFromInt(42),
			CostPrice:        decimal.NewFromInt(21),
			GstRate:          gst5,
			Unit:             "packet",
			DefaultBatchSize: 180,
		},
		{
			ID:               "garlic",
			Name:             "Garlic Khakhra",
			Variety:          "Premium",
			Description:      "Garlic flavoured khakhra with premium spices.",
			SalePrice:        decimal.NewFromInt(44),
			CostPrice:        decimal.NewFromInt(23),
			GstRate:          gst12,
			Unit:             "packet",
			DefaultBatchSize: 160,
		},
		{
			ID:               "diet",
			Name:             "Diet Khakhra",
			Variety:          "Health",
			Description:      "Low-oil khakhra for health-conscious customers.",
			SalePrice:        decimal.NewFromInt(45),
			CostPrice:        decimal.NewFromInt(24),
			GstRate:          gst5,
			Unit:             "packet",
			DefaultBatchSize: 220,
		},
	}

	rawMaterials := []RawMaterial{
		{ID: "rm-wheat", Name: "Whole Wheat Flour", Unit: "kg", Quantity: 280, ReorderLevel: 150, LastUpdated: now.AddDate(0, 0, -2)},
		{ID: "rm-oil", Name: "Cold Pressed Oil", Unit: "litre", Quantity: 95, ReorderLevel: 60, LastUpdated: now.AddDate(0, 0, -1)},
		{ID: "rm-spice", Name: "Masala Mix", Unit: "kg", Quantity: 70, ReorderLevel: 40, LastUpdated: now.AddDate(0, 0, -3)},
		{ID: "rm-pack", Name: "Vacuum Packaging Sleeves", Unit: "pack", Quantity: 450, ReorderLevel: 180, LastUpdated: now},
	}

	finishedGoods := []FinishedGood{
		{ID: "fg-101", ProductID: "masala", BatchCode: "MS2410-A", Quantity: 220, ReorderLevel: 120, MfgDate: now.AddDate(0, 0, -4), ExpiryDate: now.AddDate(0, 0, 120)},
		{ID: "fg-102", ProductID: "plain", BatchCode: "PL2410-B", Quantity: 180, ReorderLevel: 100, MfgDate: now.AddDate(0, 0, -6), ExpiryDate: now.AddDate(0, 0, 150)},
		{ID: "fg-103", ProductID: "jeera", BatchCode: "JR2410-C", Quantity: 140, ReorderLevel: 90, MfgDate: now.AddDate(0, 0, -3), ExpiryDate: now.AddDate(0, 0, 130)},
		{ID: "fg-104", ProductID: "diet", BatchCode: "DT2410-A", Quantity: 110, ReorderLevel: 80, MfgDate: now.AddDate(0, 0, -2), ExpiryDate: now.AddDate(0, 0, 90)},
	}

	customers := []Customer{
		{ID: "cust-001", Name: "Kavya Patel", Email: "kavya.patel@example.com", Phone: "+91-98981-22334", Address: "Ahmedabad, Gujarat", GstNumber: "24ABCDE1234F1Z5", RepeatCount: 6},
		{ID: "cust-002", Name: "Delight Stores", Email: "orders@delightstores.in", Phone: "+91-97238-11223", Address: "Vadodara, Gujarat", GstNumber: "24ASDFG4587H1Z2", IsWholesale: true, RepeatCount: 10},
		{ID: "cust-003", Name: "Healthy Bite Mart", Email: "buyer@healthybite.in", Phone: "+91-98765-10101", Address: "Surat, Gujarat", GstNumber: "24GHJKL9988T1Z1", IsWholesale: true, RepeatCount: 3},
		{ID: "cust-004", Name: "Priya Shah", Email: "priya.shah@example.com", Phone: "+91-90909-55665", Address: "Mumbai, Maharashtra", RepeatCount: 4},
	}

	orders := []Order{
		sampleOrder(Order{
			ID:          "ord-001",
			OrderNumber: "KH-24001",
			CustomerID:  "cust-001",
			Items: []OrderItem{
				{ProductID: "masala", Quantity: 12, UnitPrice: decimal.NewFromInt(40), CostPrice: decimal.NewFromInt(20)},
				{ProductID: "plain", Quantity: 8, UnitPrice: decimal.NewFromInt(35), CostPrice: decimal.NewFromInt(18)},
			},
			Status:           OrderStatusDelivered,
			PaymentMethod:    PaymentMethodUpi,
			CreatedAt:        now.AddDate(0, 0, -6),
			DeliveredAt:      timePtr(now.AddDate(0, 0, -4)),
			DiscountAmount:   decimal.NewFromInt(50),
			ShippingCost:     decimal.NewFromInt(60),
			ExpectedShipDate: timePtr(now.AddDate(0, 0, -5)),
			InvoiceNumber:    "INV-24001",
		}, products),
		sampleOrder(Order{
			ID:          "ord-002",
			OrderNumber: "KH-24002",
			CustomerID:  "cust-002",
			Items: []OrderItem{
				{ProductID: "masala", Quantity: 80, UnitPrice: decimal.NewFromInt(38), CostPrice: decimal.NewFromInt(20)},
				{ProductID: "jeera", Quantity: 60, UnitPrice: decimal.NewFromInt(36), CostPrice: decimal.NewFromInt(19)},
			},
			Status:           OrderStatusProcessing,
			PaymentMethod:    PaymentMethodBankTransfer,
			CreatedAt:        now.AddDate(0, 0, -2),
			ExpectedShipDate: timePtr(now.AddDate(0, 0, 1)),
			DiscountAmount:   decimal.NewFromInt(200),
			ShippingCost:     decimal.NewFromInt(350),
			InvoiceNumber:    "INV-24002",
		}, products),
		sampleOrder(Order{
			ID:          "ord-003",
			OrderNumber: "KH-24003",
			CustomerID:  "cust-003",
			Items: []OrderItem{
				{ProductID: "diet", Quantity: 45, UnitPrice: decimal.NewFromInt(45), CostPrice: decimal.NewFromInt(24)},
				{ProductID: "garlic", Quantity: 30, UnitPrice: decimal.NewFromInt(44), CostPrice: decimal.NewFromInt(23)},
			},
			Status:           OrderStatusShipped,
			PaymentMethod:    PaymentMethodBankTransfer,
			CreatedAt:        now.AddDate(0, 0, -1),
			ExpectedShipDate: timePtr(now.AddDate(0, 0, 1)),
			ShippingCost:     decimal.NewFromInt(280),
		}, products),
		sampleOrder(Order{
			ID:          "ord-004",
			OrderNumber: "KH-24004",
			CustomerID:  "cust-004",
			Items: []OrderItem{
				{ProductID: "methi", Quantity: 15, UnitPrice: decimal.NewFromInt(42), CostPrice: decimal.NewFromInt(21)},
				{ProductID: "plain", Quantity: 10, UnitPrice: decimal.NewFromInt(35), CostPrice: decimal.NewFromInt(18)},
			},
			Status:        OrderStatusPending,
			PaymentMethod: PaymentMethodCard,
			CreatedAt:     now,
			ShippingCost:  decimal.NewFromInt(80),
		}, products),
		sampleOrder(Order{
			ID:          "ord-005",
			OrderNumber: "KH-24005",
			CustomerID:  "cust-001",
			Items: []OrderItem{
				{ProductID: "diet", Quantity: 12, UnitPrice: decimal.NewFromInt(45), CostPrice: decimal.NewFromInt(24)},
			},
			Status:         OrderStatusDelivered,
			PaymentMethod:  PaymentMethodUpi,
			CreatedAt:      now.AddDate(0, 0, -12),
			DeliveredAt:    timePtr(now.AddDate(0, 0, -10)),
			DiscountAmount: decimal.NewFromInt(20),
		}, products),
	}

	expenses := []Expense{
		{ID: "exp-001", Category: ExpenseCategoryRawMaterials, Description: "Bulk purchase of wheat flour", Amount: decimal.NewFromInt(32000), PaidTo: "Shree Traders", Date: now.AddDate(0, 0, -5), PaymentMode: PaymentMethodBankTransfer},
		{ID: "exp-002", Category: ExpenseCategoryDelivery, Description: "Courier charges for western region", Amount: decimal.NewFromInt(4200), PaidTo: "BlueDart Logistics", Date: now.AddDate(0, 0, -2), PaymentMode: PaymentMethodUpi},
		{ID: "exp-003", Category: ExpenseCategoryLabor, Description: "Weekly wages for packaging staff", Amount: decimal.NewFromInt(18500), PaidTo: "Staff Payroll", Date: now.AddDate(0, 0, -3), PaymentMode: PaymentMethodBankTransfer, Recurring: true},
		{ID: "exp-004", Category: ExpenseCategoryUtilities, Description: "Electricity bill for unit", Amount: decimal.NewFromInt(7200), PaidTo: "Torrent Power", Date: now.AddDate(0, 0, -7), PaymentMode: PaymentMethodBankTransfer},
	}

	invoices := []Invoice{
		{
			ID:            "inv-001",
			OrderID:       "ord-001",
			InvoiceNumber: "INV-24001",
			IssuedOn:      now.AddDate(0, 0, -6),
			DueDate:       now.AddDate(0, 0, -1),
			Amount:        orders[0].TotalAmount,
			GstAmount:     orders[0].GstAmount,
			PaymentStatus: InvoicePaymentStatusPaid,
		},
		{
			ID:            "inv-002",
			OrderID:       "ord-002",
			InvoiceNumber: "INV-24002",
			IssuedOn:      now.AddDate(0, 0, -2),
			DueDate:       now.AddDate(0, 0, 5),
			Amount:        orders[1].TotalAmount,
			GstAmount:     orders[1].GstAmount,
			PaymentStatus: InvoicePaymentStatusUnpaid,
		},
	}

	return AppState{
		Customers: customers,
		Products:  products,
		Inventory: InventoryState{
			RawMaterials:  rawMaterials,
			FinishedGoods: finishedGoods,
		},
		Orders:   orders,
		Expenses: expenses,
		Invoices: invoices,
	}
}

// sampleOrder fills in the frozen derived fields the same way order creation
// does: per-item GST from the product's rate, then the rounded grand total.
func sampleOrder(order Order, products []Product) Order {
	gst := decimal.Zero
	gross := decimal.Zero
	for _, item := range order.Items {
		qty := decimal.NewFromInt(int64(item.Quantity))
		lineAmount := item.UnitPrice.Mul(qty)
		gross = gross.Add(lineAmount)
		for _, p := range products {
			if p.ID == item.ProductID {
				gst = gst.Add(lineAmount.Mul(p.GstRate))
				break
			}
		}
	}
	order.GstAmount = gst
	order.TotalAmount = gross.Add(order.ShippingCost).Sub(order.DiscountAmount).Add(gst).Round(2)
	return order
}

func timePtr(t time.Time) *time.Time {
	return &t
}
