package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEstimateDemandBaseline(t *testing.T) {
	in := DemandInput{
		Day:        1,
		Weather:    WeatherSunny,
		Price:      1,
		Recipe:     Recipe{Lemons: 4, Sugar: 3, Ice: 4},
		Reputation: 50,
		Events:     NeutralEventEffect(),
	}
	assert.Equal(t, 23, EstimateDemand(DefaultBalance(), in))

	sat := Satisfaction(DefaultBalance(), in.Recipe, in.Weather, in.Price, in.Events, ResolvedEffects{})
	assert.Equal(t, 95, sat)
}

func TestEstimateDemandFallsWithPrice(t *testing.T) {
	b := DefaultBalance()
	in := DemandInput{
		Day:        5,
		Weather:    WeatherWarm,
		Recipe:     b.DefaultRecipe,
		Reputation: 50,
		Events:     NeutralEventEffect(),
	}
	prev := -1
	for price := 5.0; price >= 0.25; price -= 0.25 {
		in.Price = price
		got := EstimateDemand(b, in)
		assert.GreaterOrEqual(t, got, 0)
		if prev >= 0 {
			assert.GreaterOrEqual(t, got, prev, "price %.2f", price)
		}
		prev = got
	}
}

func TestEstimateDemandNeverNegative(t *testing.T) {
	b := DefaultBalance()
	for _, w := range AllWeatherKinds() {
		got := EstimateDemand(b, DemandInput{
			Day:     1,
			Weather: w,
			Price:   b.MaxPrice,
			Events:  CombinedEventEffect{DemandMultiplier: 0.01},
		})
		assert.GreaterOrEqual(t, got, 0, w)
	}
}

func TestIngredientScore(t *testing.T) {
	band := IdealRange{Lo: 3, Hi: 5}

	assert.Equal(t, 1.0, IngredientScore(4, band, false))
	assert.Equal(t, 0.0, IngredientScore(0, band, false))
	assert.Equal(t, 1.2, IngredientScore(0, band, true))
	assert.InDelta(t, 0.6, IngredientScore(1, band, false), 1e-9)
	assert.InDelta(t, 0.8, IngredientScore(6, band, false), 1e-9)
	assert.Equal(t, 0.3, IngredientScore(12, band, false))
}

func TestQualityIsClamped(t *testing.T) {
	neutral := NeutralEventEffect()
	assert.Equal(t, 0.3, Quality(Recipe{}, WeatherWarm, neutral, ResolvedEffects{}))

	allOK := neutral
	allOK.ZeroLemonsOK, allOK.ZeroSugarOK, allOK.ZeroIceOK = true, true, true
	assert.Equal(t, 1.3, Quality(Recipe{}, WeatherWarm, allOK, ResolvedEffects{}))

	boosted := Quality(Recipe{Lemons: 4, Sugar: 4, Ice: 3}, WeatherWarm, neutral, ResolvedEffects{QualityBonus: 0.1})
	assert.InDelta(t, 1.43, boosted, 1e-9)
}

func TestIdealRangesForClampsSugarShift(t *testing.T) {
	up := IdealRangesFor(WeatherStormy, 2)
	assert.Equal(t, IdealRange{Lo: 6, Hi: 6}, up.Sugar)

	down := IdealRangesFor(WeatherHot, -2)
	assert.Equal(t, IdealRange{Lo: 1, Hi: 2}, down.Sugar)
	assert.Equal(t, IdealRange{Lo: 4, Hi: 6}, down.Ice)
}

func TestUpgradeDemandFactorOffsetsWeatherPenalty(t *testing.T) {
	assert.InDelta(t, 1.1, upgradeDemandFactor(WeatherSunny, ResolvedEffects{Awareness: 0.1, RainReduction: 0.5}), 1e-9)
	assert.InDelta(t, 1.2, upgradeDemandFactor(WeatherRainy, ResolvedEffects{RainReduction: 0.5}), 1e-9)
	assert.InDelta(t, 1.175, upgradeDemandFactor(WeatherCloudy, ResolvedEffects{Awareness: 0.1, ColdReduction: 0.5}), 1e-9)
	assert.InDelta(t, 1.0, upgradeDemandFactor(WeatherCloudy, ResolvedEffects{RainReduction: 0.5}), 1e-9)
}

func TestEventDemandFactor(t *testing.T) {
	assert.InDelta(t, 1.52, eventDemandFactor(1.4, ResolvedEffects{EventAmplify: 0.3}), 1e-9)
	assert.InDelta(t, 0.775, eventDemandFactor(0.7, ResolvedEffects{EventMitigation: 0.25}), 1e-9)
	assert.Equal(t, 1.0, eventDemandFactor(1, ResolvedEffects{EventAmplify: 1, EventMitigation: 0.5}))
}

func TestUnitsMakeable(t *testing.T) {
	stock := Stock{SupplyLemons: 30, SupplySugar: 15, SupplyIce: 20, SupplyCups: 25}

	assert.Equal(t, 5, UnitsMakeable(stock, Recipe{Lemons: 4, Sugar: 3, Ice: 3}))
	assert.Equal(t, 25, UnitsMakeable(stock, Recipe{}))
	assert.Equal(t, 7, UnitsMakeable(stock, Recipe{Lemons: 4}))
	assert.Equal(t, 0, UnitsMakeable(Stock{SupplyLemons: 30}, Recipe{Lemons: 1}))
}

func TestCostPerCup(t *testing.T) {
	r := Recipe{Lemons: 4, Sugar: 3, Ice: 3}
	full := CostPerCup(r, ResolvedEffects{})
	assert.InDelta(t, 4*2.0/30+3*1.5/15+3*0.5/20+1.0/25, full, 1e-9)
	assert.InDelta(t, full*0.6, CostPerCup(r, ResolvedEffects{CostReduction: 0.4}), 1e-9)
	assert.InDelta(t, 0.04, CostPerCup(Recipe{}, ResolvedEffects{}), 1e-9)
}

func TestRecipePatchOnlyTouchesSetFields(t *testing.T) {
	ice := 0
	got := RecipePatch{Ice: &ice}.apply(Recipe{Lemons: 4, Sugar: 3, Ice: 3})
	assert.Equal(t, Recipe{Lemons: 4, Sugar: 3, Ice: 0}, got)
}
