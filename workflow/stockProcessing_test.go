package workflow

import (
	"testing"
	"time"

	"bitbucket.org/khakhrafoods/operations_backend/models"
	"github.com/stretchr/testify/require"
)

func TestAdjustRawMaterialClampsAtZero(t *testing.T) {
	state := fixtureState()
	now := time.Now()

	cases := []struct {
		name  string
		delta int
		want  int
	}{
		{"replenish", 40, 140},
		{"consume", -30, 70},
		{"overdraw floors at zero", -500, 0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			next := AdjustRawMaterial(state, "rm-wheat", c.delta, nil, now)
			require.Equal(t, c.want, next.Inventory.RawMaterials[0].Quantity)
			require.True(t, next.Inventory.RawMaterials[0].LastUpdated.Equal(now))
		})
	}
}

func TestAdjustRawMaterialExplicitTimestampWins(t *testing.T) {
	state := fixtureState()
	now := time.Now()
	backdated := now.AddDate(0, 0, -3)

	next := AdjustRawMaterial(state, "rm-wheat", 10, &backdated, now)
	require.True(t, next.Inventory.RawMaterials[0].LastUpdated.Equal(backdated))
}

func TestAdjustRawMaterialUnknownIDNoChange(t *testing.T) {
	state := fixtureState()
	next := AdjustRawMaterial(state, "rm-missing", 10, nil, time.Now())
	require.Equal(t, state.Inventory.RawMaterials[0].Quantity, next.Inventory.RawMaterials[0].Quantity)
}

func TestReplenishThenConsumeRoundTrips(t *testing.T) {
	state := fixtureState()
	now := time.Now()
	original := state.Inventory.RawMaterials[0].Quantity

	next := AdjustRawMaterial(state, "rm-wheat", 25, nil, now)
	next = AdjustRawMaterial(next, "rm-wheat", -25, nil, now)
	require.Equal(t, original, next.Inventory.RawMaterials[0].Quantity)
}

func TestAdjustFinishedGoodClampsAtZero(t *testing.T) {
	state := fixtureState()
	next := AdjustFinishedGood(state, "fg-1", -25)
	require.Equal(t, 0, next.Inventory.FinishedGoods[0].Quantity)
}

func TestConsumeFinishedGoodsFirstMatchingBatchOnly(t *testing.T) {
	state := fixtureState()

	// fg-1 holds 10; asking for 15 floors it at zero and does not touch fg-2
	next := ConsumeFinishedGoods(state, "masala", 15)
	require.Equal(t, 0, next.Inventory.FinishedGoods[0].Quantity)
	require.Equal(t, 50, next.Inventory.FinishedGoods[1].Quantity)
}

func TestConsumeFinishedGoodsNoBatchIsNoop(t *testing.T) {
	state := fixtureState()
	next := ConsumeFinishedGoods(state, "garlic", 5)
	require.Equal(t, state.Inventory.FinishedGoods, next.Inventory.FinishedGoods)
}

func TestProduceFinishedBatchPrepends(t *testing.T) {
	state := fixtureState()
	mfg := time.Now().AddDate(0, 0, -1)

	next, batch, err := ProduceFinishedBatch(state, models.NewFinishedGood{
		ProductID:    "garlic",
		BatchCode:    "GL-NEW",
		Quantity:     160,
		ReorderLevel: 80,
		MfgDate:      mfg,
		ExpiryDate:   mfg.AddDate(0, 0, 120),
	})
	require.NoError(t, err)
	require.NotNil(t, batch)
	require.Len(t, next.Inventory.FinishedGoods, 3)
	require.Equal(t, "GL-NEW", next.Inventory.FinishedGoods[0].BatchCode)
	require.Equal(t, batch.ID, next.Inventory.FinishedGoods[0].ID)
}

func TestProduceFinishedBatchValidates(t *testing.T) {
	state := fixtureState()

	_, batch, err := ProduceFinishedBatch(state, models.NewFinishedGood{
		ProductID: "garlic",
		BatchCode: "GL-NEW",
		Quantity:  0,
	})
	require.Error(t, err)
	require.Nil(t, batch)
}
