package reports

import (
	"bitbucket.org/khakhrafoods/operations_backend/models"
)

// Low-stock views: anything at or below its reorder level is flagged.

func LowStockRawMaterials(rawMaterials []models.RawMaterial) []models.RawMaterial {
	low := make([]models.RawMaterial, 0)
	for _, rm := range rawMaterials {
		if rm.IsLowStock() {
			low = append(low, rm)
		}
	}
	return low
}

func LowStockFinishedGoods(finishedGoods []models.FinishedGood) []models.FinishedGood {
	low := make([]models.FinishedGood, 0)
	for _, fg := range finishedGoods {
		if fg.IsLowStock() {
			low = append(low, fg)
		}
	}
	return low
}
