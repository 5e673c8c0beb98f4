package workflow

import (
	"time"

	"bitbucket.org/khakhrafoods/operations_backend/models"
	"github.com/google/uuid"
)

// Stock primitives. Every quantity change clamps at zero: driving a batch or
// a raw material below zero leaves it at zero with no error and no backorder.

// AdjustRawMaterial applies a signed delta to one raw material and stamps
// LastUpdated. A caller-supplied timestamp wins over now. Unknown ids leave
// the state unchanged.
func AdjustRawMaterial(state models.AppState, id string, delta int, at *time.Time, now time.Time) models.AppState {
	for i := range state.Inventory.RawMaterials {
		if state.Inventory.RawMaterials[i].ID != id {
			continue
		}
		next := state.Clone()
		rm := &next.Inventory.RawMaterials[i]
		rm.Quantity = clampQty(rm.Quantity + delta)
		if at != nil {
			rm.LastUpdated = *at
		} else {
			rm.LastUpdated = now
		}
		return next
	}
	return state
}

// AdjustFinishedGood applies a signed delta to one batch, floored at zero.
func AdjustFinishedGood(state models.AppState, id string, delta int) models.AppState {
	for i := range state.Inventory.FinishedGoods {
		if state.Inventory.FinishedGoods[i].ID != id {
			continue
		}
		next := state.Clone()
		fg := &next.Inventory.FinishedGoods[i]
		fg.Quantity = clampQty(fg.Quantity + delta)
		return next
	}
	return state
}

// ProduceFinishedBatch records a production event as a brand-new batch,
// prepended so the freshest batch lists first.
func ProduceFinishedBatch(state models.AppState, input models.NewFinishedGood) (models.AppState, *models.FinishedGood, error) {
	if err := input.Validate(); err != nil {
		return state, nil, err
	}
	batch := models.FinishedGood{
		ID:           "fg-" + uuid.NewString(),
		ProductID:    input.ProductID,
		BatchCode:    input.BatchCode,
		Quantity:     input.Quantity,
		ReorderLevel: input.ReorderLevel,
		MfgDate:      input.MfgDate,
		ExpiryDate:   input.ExpiryDate,
	}
	next := state.Clone()
	next.Inventory.FinishedGoods = append([]models.FinishedGood{batch}, next.Inventory.FinishedGoods...)
	return next, &batch, nil
}

// ConsumeFinishedGoods reduces stock for a product by taking the first batch
// whose ProductID matches, in collection order. It does not pick the oldest
// batch and does not spill the remainder into other batches; a shortfall
// just floors that one batch at zero. Products with no batch at all are
// skipped silently.
func ConsumeFinishedGoods(state models.AppState, productID string, qty int) models.AppState {
	for _, fg := range state.Inventory.FinishedGoods {
		if fg.ProductID == productID {
			return AdjustFinishedGood(state, fg.ID, -qty)
		}
	}
	return state
}

// adjustStockForOrder runs the per-product decrement for every line of a
// freshly created order, inside the same transition that appends the order.
func adjustStockForOrder(state models.AppState, order models.Order) models.AppState {
	for _, item := range order.Items {
		state = ConsumeFinishedGoods(state, item.ProductID, item.Quantity)
	}
	return state
}

func clampQty(q int) int {
	if q < 0 {
		return 0
	}
	return q
}
