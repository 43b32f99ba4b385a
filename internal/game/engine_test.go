package game

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quietBalance() Balance {
	b := DefaultBalance()
	b.SurpriseChance = 0
	return b
}

func newScriptedEngine(t *testing.T, b Balance) *Engine {
	t.Helper()
	e, err := NewEngineWithRand(b, &scriptedRand{})
	require.NoError(t, err)
	return e
}

func buyStarterStock(t *testing.T, e *Engine) {
	t.Helper()
	for kind, packs := range map[SupplyKind]int{SupplyLemons: 2, SupplySugar: 2, SupplyIce: 2, SupplyCups: 1} {
		require.True(t, e.PurchaseSupply(kind, packs), "buy %s", kind)
	}
}

func TestNewEngineStartsOnDayOne(t *testing.T) {
	e := newScriptedEngine(t, DefaultBalance())
	s := e.State()

	assert.Equal(t, 1, s.Day)
	assert.Equal(t, 20.0, s.Cash)
	assert.Equal(t, 50, s.Reputation)
	assert.Equal(t, WeatherSunny, s.Weather)
	assert.Equal(t, WeatherWarm, s.Forecast)
	assert.Equal(t, []WeatherKind{WeatherHot, WeatherHot}, s.ExtendedForecast)
	assert.Equal(t, PhasePlanning, s.Phase)
	require.NotNil(t, s.PlannedEvent)
	assert.Equal(t, EventHeatWave, s.PlannedEvent.ID)
	assert.True(t, s.Inventory.Stock().IsEmpty())
}

func TestNewEngineRejectsBadBalance(t *testing.T) {
	b := DefaultBalance()
	b.MinPrice = 10
	_, err := NewEngineWithRand(b, &scriptedRand{})
	assert.Error(t, err)

	_, err = NewEngineWithRand(DefaultBalance(), nil)
	assert.Error(t, err)

	_, err = NewEngine(RunConfig{Seed: 1, Balance: b})
	assert.Error(t, err)
}

func TestTradingDayAccounting(t *testing.T) {
	e := newScriptedEngine(t, quietBalance())
	buyStarterStock(t, e)
	assert.InDelta(t, 11.0, e.State().Cash, 1e-9)
	assert.Equal(t, 10, e.Makeable())

	result, ok := e.BeginDay()
	require.True(t, ok)

	assert.Equal(t, 33, result.Demand)
	assert.Equal(t, 10, result.Makeable)
	assert.Equal(t, 10, result.UnitsSold)
	assert.InDelta(t, 10.0, result.Revenue, 1e-9)
	assert.InDelta(t, 6.82, result.CostOfGoods, 1e-9)
	assert.InDelta(t, 3.18, result.Profit, 1e-9)
	assert.InDelta(t, result.Revenue-result.CostOfGoods-result.Rent+result.PassiveIncome, result.Profit, 1e-9)
	assert.InDelta(t, 14.18, result.Cash, 1e-9)
	assert.Equal(t, 95, result.Satisfaction)
	assert.Equal(t, 3, result.ReputationDelta)
	assert.Equal(t, 53, result.Reputation)
	assert.Equal(t, 10, result.IceMelted)
	assert.Contains(t, result.MilestonesUnlocked, MilestoneFirstSale)

	s := e.State()
	assert.Equal(t, PhaseResults, s.Phase)
	assert.Equal(t, 20, s.Inventory.Total(SupplyLemons))
	assert.Equal(t, 0, s.Inventory.Total(SupplySugar))
	assert.Equal(t, 0, s.Inventory.Total(SupplyIce))
	assert.Equal(t, 15, s.Inventory.Total(SupplyCups))
	assert.Equal(t, 10, s.Stats.LifetimeUnits)
	assert.InDelta(t, 10.0, s.Stats.LifetimeRevenue, 1e-9)
	require.Len(t, s.Stats.History, 1)
	assert.True(t, s.Milestones[MilestoneFirstSale])

	require.True(t, e.AdvanceDay())
	s = e.State()
	assert.Equal(t, 2, s.Day)
	assert.Equal(t, PhasePlanning, s.Phase)
	assert.Equal(t, WeatherWarm, s.Weather)
	assert.Equal(t, WeatherHot, s.Forecast)
	assert.Len(t, s.ExtendedForecast, 2)
	assert.Zero(t, s.SpentToday)
	assert.Empty(t, s.SurpriseEvents)
}

func TestMissingIceTriggersComplaint(t *testing.T) {
	e := newScriptedEngine(t, quietBalance())
	e.state.Weather = WeatherHot
	noIce := 0
	require.True(t, e.SetRecipe(RecipePatch{Ice: &noIce}))
	for _, kind := range []SupplyKind{SupplyLemons, SupplySugar, SupplyCups} {
		require.True(t, e.PurchaseSupply(kind, 1))
	}

	result, ok := e.BeginDay()
	require.True(t, ok)

	require.True(t, result.HasEvent(EventNoIceComplaint))
	assert.Equal(t, 21, result.Demand)
	assert.Equal(t, 5, result.UnitsSold)
	assert.Equal(t, 67, result.Satisfaction)
	assert.Equal(t, -3, result.ReputationDelta)
}

func TestWarmDrinkTrendSilencesIceComplaint(t *testing.T) {
	e := newScriptedEngine(t, quietBalance())
	trend := ResolveEvent(&scriptedRand{}, EventWarmDrinkTrend)
	e.state.PlannedEvent = &trend
	noIce := 0
	require.True(t, e.SetRecipe(RecipePatch{Ice: &noIce}))
	for _, kind := range []SupplyKind{SupplyLemons, SupplySugar, SupplyCups} {
		require.True(t, e.PurchaseSupply(kind, 1))
	}

	result, ok := e.BeginDay()
	require.True(t, ok)
	assert.False(t, result.HasEvent(EventNoIceComplaint))
	assert.Empty(t, result.SurpriseEvents)
}

func TestRentWithoutStockEndsInGameOver(t *testing.T) {
	e := newScriptedEngine(t, quietBalance())
	require.True(t, e.PurchaseUpgrade(UpgradeWoodenStand))
	assert.InDelta(t, 2.0, e.State().Cash, 1e-9)

	for day := 1; day <= 3; day++ {
		result, ok := e.BeginDay()
		require.True(t, ok, "day %d", day)
		assert.InDelta(t, -1.0, result.Profit, 1e-9)
		if day < 3 {
			require.Equal(t, PhaseResults, e.Phase(), "day %d", day)
			require.True(t, e.AdvanceDay())
		}
	}

	assert.Equal(t, PhaseGameOver, e.Phase())
	assert.InDelta(t, -1.0, e.State().Cash, 1e-9)
	assert.False(t, e.AdvanceDay())
	assert.False(t, e.ClaimBailout())
	_, ok := e.BeginDay()
	assert.False(t, ok)
}

func TestBailoutIsOfferedOnce(t *testing.T) {
	b := quietBalance()
	b.BailoutAmount = 5
	e := newScriptedEngine(t, b)
	require.True(t, e.PurchaseUpgrade(UpgradeWoodenStand))

	runUntilStopped := func() {
		for i := 0; i < 20; i++ {
			_, ok := e.BeginDay()
			require.True(t, ok)
			if e.Phase() != PhaseResults {
				return
			}
			require.True(t, e.AdvanceDay())
		}
		t.Fatalf("run never stopped")
	}

	runUntilStopped()
	require.Equal(t, PhaseBailout, e.Phase())
	assert.Equal(t, 3, e.State().Day)

	require.True(t, e.ClaimBailout())
	s := e.State()
	assert.True(t, s.BailoutUsed)
	assert.Equal(t, 4, s.Day)
	assert.Equal(t, PhasePlanning, s.Phase)
	assert.InDelta(t, 4.0, s.Cash, 1e-9)

	runUntilStopped()
	assert.Equal(t, PhaseGameOver, e.Phase())
	assert.Equal(t, 8, e.State().Day)
}

func TestVictoryAndFreePlay(t *testing.T) {
	b := quietBalance()
	b.VictoryRevenue = 1
	e := newScriptedEngine(t, b)
	buyStarterStock(t, e)

	_, ok := e.BeginDay()
	require.True(t, ok)
	require.Equal(t, PhaseVictory, e.Phase())
	assert.False(t, e.AdvanceDay())

	require.True(t, e.ContinueAfterVictory())
	assert.True(t, e.State().FreePlay)
	assert.Equal(t, PhaseResults, e.Phase())
	assert.False(t, e.ContinueAfterVictory())

	require.True(t, e.AdvanceDay())
	_, ok = e.BeginDay()
	require.True(t, ok)
	assert.Equal(t, PhaseResults, e.Phase())
}

func TestFailureOverridesVictory(t *testing.T) {
	b := quietBalance()
	b.BankruptcyThreshold = 0.5
	s := NewGameState(b, &scriptedRand{})
	s.Cash = 0
	s.Stats.LifetimeRevenue = 1000

	next, result := simulateDay(s, b, &scriptedRand{})
	assert.Equal(t, 0, result.UnitsSold)
	assert.Equal(t, PhaseGameOver, next.Phase)
}

func TestRejectedActionsLeaveStateUntouched(t *testing.T) {
	e := newScriptedEngine(t, quietBalance())
	before := e.State()

	assert.False(t, e.PurchaseSupply(SupplyLemons, 11))
	assert.False(t, e.PurchaseSupply(SupplyLemons, 0))
	assert.False(t, e.PurchaseSupply("mint", 1))
	assert.False(t, e.DiscardSupply(SupplySugar, 5))
	assert.False(t, e.PurchaseUpgrade(UpgradeLemonGarden))
	assert.False(t, e.PurchaseUpgrade("jetpack"))
	assert.False(t, e.AdvanceDay())
	assert.False(t, e.ClaimBailout())
	assert.False(t, e.ContinueAfterVictory())

	assert.Equal(t, before, e.State())

	_, ok := e.BeginDay()
	require.True(t, ok)
	during := e.State()
	assert.False(t, e.PurchaseSupply(SupplyCups, 1))
	assert.False(t, e.SetPrice(2))
	assert.False(t, e.SetRecipe(RecipePatch{}))
	assert.False(t, e.PurchaseUpgrade(UpgradeCardboardSign))
	_, ok = e.BeginDay()
	assert.False(t, ok)
	assert.Equal(t, during, e.State())
}

func TestPurchaseSupplyOverCapacityStillCharges(t *testing.T) {
	e := newScriptedEngine(t, quietBalance())

	require.True(t, e.PurchaseSupply(SupplyCups, 9))
	s := e.State()
	assert.Equal(t, 200, s.Inventory.Total(SupplyCups))
	assert.InDelta(t, 11.0, s.Cash, 1e-9)
	assert.InDelta(t, 9.0, s.SpentToday, 1e-9)
	assert.Equal(t, CapacityView{Capacity: 200, Used: 200, Free: 0}, e.Capacity())
}

func TestDiscardSupplyDrainsOldestFirst(t *testing.T) {
	e := newScriptedEngine(t, quietBalance())
	require.True(t, e.PurchaseSupply(SupplyLemons, 1))

	require.True(t, e.DiscardSupply(SupplyLemons, 12))
	assert.Equal(t, 18, e.State().Inventory.Total(SupplyLemons))
	assert.InDelta(t, 18.0, e.State().Cash, 1e-9)
}

func TestSetRecipeAndPriceClamp(t *testing.T) {
	e := newScriptedEngine(t, quietBalance())

	lemons, sugar := 9, -1
	require.True(t, e.SetRecipe(RecipePatch{Lemons: &lemons, Sugar: &sugar}))
	assert.Equal(t, Recipe{Lemons: 6, Sugar: 0, Ice: 3}, e.State().Recipe)

	require.True(t, e.SetPrice(1.13))
	assert.Equal(t, 1.25, e.State().Price)
	require.True(t, e.SetPrice(99))
	assert.Equal(t, 5.0, e.State().Price)
	require.True(t, e.SetPrice(0))
	assert.Equal(t, 0.25, e.State().Price)
}

func TestPurchaseUpgradeAppliesEffects(t *testing.T) {
	e := newScriptedEngine(t, quietBalance())

	require.True(t, e.PurchaseUpgrade(UpgradeExtraCrate))
	assert.False(t, e.PurchaseUpgrade(UpgradeExtraCrate))
	assert.Equal(t, 250, e.Capacity().Capacity)

	_, ok := e.Forecast()
	assert.False(t, ok)
	require.True(t, e.PurchaseUpgrade(UpgradeWeatherRadio))
	forecast, ok := e.Forecast()
	require.True(t, ok)
	assert.Equal(t, WeatherWarm, forecast)

	assert.InDelta(t, 9.0, e.State().Cash, 1e-9)
	assert.InDelta(t, 11.0, e.State().SpentToday, 1e-9)
}

func TestLoadStateValidates(t *testing.T) {
	e := newScriptedEngine(t, quietBalance())
	buyStarterStock(t, e)
	saved := e.State()

	bad := saved.Clone()
	bad.Reputation = 150
	err := e.LoadState(bad)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidState))
	assert.Equal(t, saved, e.State())

	bad = saved.Clone()
	bad.Inventory.Batches[SupplyCups] = []Batch{{Amount: 500, AcquiredDay: 1}}
	assert.ErrorIs(t, e.LoadState(bad), ErrInvalidState)

	e.Reset()
	assert.InDelta(t, 20.0, e.State().Cash, 1e-9)

	require.NoError(t, e.LoadState(saved))
	loaded := e.State()
	assert.Equal(t, saved.Inventory, loaded.Inventory)
	assert.Equal(t, saved.Cash, loaded.Cash)
	assert.Zero(t, loaded.SpentToday)
}

func TestSeededRunsAreReproducible(t *testing.T) {
	play := func() GameState {
		e, err := NewEngine(RunConfig{Seed: 99, Balance: DefaultBalance()})
		require.NoError(t, err)
		for i := 0; i < 15; i++ {
			playOneDay(t, e)
			if !e.AdvanceDay() {
				break
			}
		}
		return e.State()
	}
	assert.Equal(t, play(), play())
}

func playOneDay(t *testing.T, e *Engine) DayResult {
	t.Helper()
	for _, kind := range AllSupplyKinds() {
		e.PurchaseSupply(kind, 1)
	}
	result, ok := e.BeginDay()
	require.True(t, ok)
	if e.Phase() == PhaseVictory {
		require.True(t, e.ContinueAfterVictory())
	}
	return result
}

func TestLongRunKeepsInvariants(t *testing.T) {
	for seed := int64(1); seed <= 10; seed++ {
		e, err := NewEngine(RunConfig{Seed: seed, Balance: DefaultBalance()})
		require.NoError(t, err)

		achieved := map[MilestoneID]bool{}
		for day := 1; day <= 60; day++ {
			require.Equal(t, day, e.State().Day)
			r := playOneDay(t, e)

			assert.LessOrEqual(t, r.UnitsSold, r.Demand)
			assert.LessOrEqual(t, r.UnitsSold, r.Makeable)
			assert.GreaterOrEqual(t, r.Reputation, 0)
			assert.LessOrEqual(t, r.Reputation, 100)
			assert.GreaterOrEqual(t, r.Satisfaction, 0)
			assert.LessOrEqual(t, r.Satisfaction, 100)
			assert.InDelta(t, r.Revenue-r.CostOfGoods-r.Rent+r.PassiveIncome, r.Profit, 0.011)

			s := e.State()
			for id := range achieved {
				assert.True(t, s.Milestones[id], "milestone %s lost", id)
			}
			for _, id := range r.MilestonesUnlocked {
				assert.False(t, achieved[id], "milestone %s unlocked twice", id)
				achieved[id] = true
			}
			if !e.AdvanceDay() {
				break
			}
		}
	}
}
