package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInventoryAddRespectsCapacity(t *testing.T) {
	inv := NewInventory()

	assert.Equal(t, 150, inv.Add(SupplyLemons, 150, 1, 200))
	assert.Equal(t, 50, inv.Add(SupplyCups, 75, 1, 200))
	assert.Equal(t, 0, inv.Add(SupplySugar, 15, 1, 200))
	assert.Equal(t, 200, inv.Units())
	require.NoError(t, inv.validate(200))
}

func TestInventoryDrainIsFIFO(t *testing.T) {
	inv := NewInventory()
	inv.Add(SupplyLemons, 10, 1, 200)
	inv.Add(SupplyLemons, 10, 2, 200)
	inv.Add(SupplyLemons, 10, 3, 200)

	assert.Equal(t, 15, inv.Drain(SupplyLemons, 15))
	assert.Equal(t, []Batch{{Amount: 5, AcquiredDay: 2}, {Amount: 10, AcquiredDay: 3}}, inv.Batches[SupplyLemons])

	assert.Equal(t, 15, inv.Drain(SupplyLemons, 40))
	assert.Empty(t, inv.Batches[SupplyLemons])
	assert.Equal(t, 0, inv.Drain(SupplyLemons, 1))
}

func TestInventoryExpireMeltsIceAndSpoilsOldBatches(t *testing.T) {
	inv := NewInventory()
	inv.Add(SupplyLemons, 30, 1, 200)
	inv.Add(SupplyLemons, 30, 3, 200)
	inv.Add(SupplySugar, 15, 1, 200)
	inv.Add(SupplyIce, 20, 4, 200)
	inv.Add(SupplyCups, 25, 1, 200)

	loss := inv.Expire(4, ResolvedEffects{})

	assert.Equal(t, 20, loss.Melted)
	assert.Equal(t, 30, loss.Spoiled[SupplyLemons])
	assert.Equal(t, 0, loss.Spoiled[SupplySugar])
	assert.Equal(t, 30, inv.Total(SupplyLemons))
	assert.Equal(t, 15, inv.Total(SupplySugar))
	assert.Equal(t, 0, inv.Total(SupplyIce))
	assert.Equal(t, 25, inv.Total(SupplyCups))
}

func TestInventoryExpireIceKeptWithShelfBonus(t *testing.T) {
	inv := NewInventory()
	inv.Add(SupplyIce, 20, 1, 200)

	fx := ResolvedEffects{IceShelfBonus: 1}
	loss := inv.Expire(1, fx)
	assert.Equal(t, 0, loss.Melted)
	assert.Equal(t, 20, inv.Total(SupplyIce))

	loss = inv.Expire(3, fx)
	assert.Equal(t, 20, loss.Spoiled[SupplyIce])
	assert.Equal(t, 0, inv.Total(SupplyIce))
}

func TestInventoryCupsNeverExpire(t *testing.T) {
	inv := NewInventory()
	inv.Add(SupplyCups, 25, 1, 200)

	inv.Expire(500, ResolvedEffects{})
	assert.Equal(t, 25, inv.Total(SupplyCups))
}

func TestInventoryCloneIsIndependent(t *testing.T) {
	inv := NewInventory()
	inv.Add(SupplySugar, 15, 1, 200)

	cp := inv.Clone()
	cp.Drain(SupplySugar, 15)
	cp.Add(SupplyLemons, 30, 2, 200)

	assert.Equal(t, 15, inv.Total(SupplySugar))
	assert.Equal(t, 0, inv.Total(SupplyLemons))
}

func TestInventoryValidateRejectsBrokenLedgers(t *testing.T) {
	cases := map[string]Inventory{
		"unknown kind":    {Batches: map[SupplyKind][]Batch{"mint": {{Amount: 1, AcquiredDay: 1}}}},
		"empty batch":     {Batches: map[SupplyKind][]Batch{SupplyLemons: {{Amount: 0, AcquiredDay: 1}}}},
		"out of order":    {Batches: map[SupplyKind][]Batch{SupplyLemons: {{Amount: 1, AcquiredDay: 3}, {Amount: 1, AcquiredDay: 2}}}},
		"over capacity":   {Batches: map[SupplyKind][]Batch{SupplyCups: {{Amount: 201, AcquiredDay: 1}}}},
		"negative amount": {Batches: map[SupplyKind][]Batch{SupplyIce: {{Amount: -4, AcquiredDay: 1}}}},
	}
	for name, inv := range cases {
		assert.Error(t, inv.validate(200), name)
	}
	assert.NoError(t, NewInventory().validate(200))
}

func TestStockHelpers(t *testing.T) {
	assert.True(t, Stock{}.IsEmpty())
	assert.True(t, Stock{SupplyLemons: 0}.IsEmpty())

	s := Stock{SupplyLemons: 3, SupplyCups: 2}
	assert.False(t, s.IsEmpty())
	assert.Equal(t, 5, s.Total())
}
