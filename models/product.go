package models

import (
	"github.com/shopspring/decimal"
)

// Product is immutable reference data: sale/cost prices and the GST rate are
// read at order creation and snapshotted onto the order line, never joined
// back afterwards.
type Product struct {
	ID               string          `json:"id"`
	Name             string          `json:"name"`
	Variety          string          `json:"variety"`
	Description      string          `json:"description"`
	SalePrice        decimal.Decimal `json:"sale_price"`
	CostPrice        decimal.Decimal `json:"cost_price"`
	GstRate          decimal.Decimal `json:"gst_rate"` // fraction, e.g. 0.05
	Unit             string          `json:"unit"`
	DefaultBatchSize int             `json:"default_batch_size"`
}
