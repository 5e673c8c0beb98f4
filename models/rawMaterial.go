package models

import "time"

// RawMaterial quantity is mutated only through the replenish/consume
// primitives, which clamp it at zero.
type RawMaterial struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Unit         string    `json:"unit"` // kg, litre, g, pack
	Quantity     int       `json:"quantity"`
	ReorderLevel int       `json:"reorder_level"`
	LastUpdated  time.Time `json:"last_updated"`
}

func (rm RawMaterial) IsLowStock() bool {
	return rm.Quantity <= rm.ReorderLevel
}
