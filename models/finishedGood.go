package models

import (
	"time"

	"bitbucket.org/khakhrafoods/operations_backend/utils"
)

// FinishedGood is a dated production lot of a single product. Several
// batches may exist per product; consumption targets the first batch found
// in collection order, not the oldest (see the consumption commands).
type FinishedGood struct {
	ID           string    `json:"id"`
	ProductID    string    `json:"product_id"`
	BatchCode    string    `json:"batch_code"`
	Quantity     int       `json:"quantity"`
	ReorderLevel int       `json:"reorder_level"`
	MfgDate      time.Time `json:"mfg_date"`
	ExpiryDate   time.Time `json:"expiry_date"`
}

func (fg FinishedGood) IsLowStock() bool {
	return fg.Quantity <= fg.ReorderLevel
}

// NewFinishedGood is the production-event input that creates a batch.
type NewFinishedGood struct {
	ProductID    string    `json:"product_id" validate:"required"`
	BatchCode    string    `json:"batch_code" validate:"required"`
	Quantity     int       `json:"quantity" validate:"gt=0"`
	ReorderLevel int       `json:"reorder_level" validate:"gte=0"`
	MfgDate      time.Time `json:"mfg_date"`
	ExpiryDate   time.Time `json:"expiry_date"`
}

func (input *NewFinishedGood) Validate() error {
	return utils.GetValidator().Struct(input)
}
