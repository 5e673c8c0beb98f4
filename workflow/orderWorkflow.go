package workflow

import (
	"fmt"
	"time"

	"bitbucket.org/khakhrafoods/operations_backend/models"
	"bitbucket.org/khakhrafoods/operations_backend/utils"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateOrder builds a new order from current product reference data and
// applies it together with its finished-goods decrements as a single state
// transition. On any error the input state is returned unchanged: line items
// are validated and priced before anything is written, so there is no
// partial commit to undo.
func CreateOrder(state models.AppState, input models.NewOrder, orderNumber string, now time.Time) (models.AppState, *models.Order, error) {
	if err := input.Validate(); err != nil {
		return state, nil, err
	}

	items, err := buildOrderItems(state, input.Items)
	if err != nil {
		return state, nil, err
	}

	gross := decimal.Zero
	gst := decimal.Zero
	for _, item := range items {
		lineAmount := utils.CalculateLineAmount(item.UnitPrice, item.Quantity)
		gross = gross.Add(lineAmount)
		product, _ := state.FindProduct(item.ProductID)
		gst = gst.Add(utils.CalculateGstAmount(lineAmount, product.GstRate))
	}

	status := input.Status
	if status == "" {
		status = models.OrderStatusPending
	}

	order := models.Order{
		ID:               "ord-" + uuid.NewString(),
		OrderNumber:      orderNumber,
		CustomerID:       input.CustomerID,
		Items:            items,
		Status:           status,
		PaymentMethod:    input.PaymentMethod,
		Note:             input.Note,
		CreatedAt:        now,
		ExpectedShipDate: input.ExpectedShipDate,
		DiscountAmount:   input.DiscountAmount,
		ShippingCost:     input.ShippingCost,
		GstAmount:        gst,
		TotalAmount:      utils.CalculateGrandTotal(gross, input.ShippingCost, input.DiscountAmount, gst),
	}

	next := state.Clone()
	next.Orders = append([]models.Order{order}, next.Orders...)
	next = adjustStockForOrder(next, order)
	return next, &order, nil
}

// buildOrderItems snapshots unit and cost prices from current reference
// data. An unknown product id fails the whole order.
func buildOrderItems(state models.AppState, inputs []models.NewOrderItem) ([]models.OrderItem, error) {
	items := make([]models.OrderItem, 0, len(inputs))
	for _, entry := range inputs {
		product, ok := state.FindProduct(entry.ProductID)
		if !ok {
			return nil, fmt.Errorf("product not found for %s", entry.ProductID)
		}
		items = append(items, models.OrderItem{
			ProductID: product.ID,
			Quantity:  entry.Quantity,
			UnitPrice: product.SalePrice,
			CostPrice: product.CostPrice,
		})
	}
	return items, nil
}

// UpdateOrderStatus sets the order's status and stamps the matching
// timestamp on every entry into delivered or cancelled, including re-entry:
// setting delivered twice moves DeliveredAt forward to the later call.
// Cancellation does not reverse stock. The boolean is false when the order
// id is unknown, in which case the state comes back unchanged.
func UpdateOrderStatus(state models.AppState, id string, status models.OrderStatus, now time.Time) (models.AppState, bool) {
	for i := range state.Orders {
		if state.Orders[i].ID != id {
			continue
		}
		next := state.Clone()
		order := &next.Orders[i]
		order.Status = status
		if status == models.OrderStatusDelivered {
			at := now
			order.DeliveredAt = &at
		}
		if status == models.OrderStatusCancelled {
			at := now
			order.CancelledAt = &at
		}
		return next, true
	}
	return state, false
}
