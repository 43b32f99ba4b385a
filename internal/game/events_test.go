package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventCatalogShape(t *testing.T) {
	assert.Len(t, PlannedPool(), 25)
	assert.Len(t, SurprisePool(), 17)
	assert.Len(t, eventPool(TimingComplaint), 3)

	rng := seededRNG(42)
	for _, def := range EventCatalog() {
		for i := 0; i < 20; i++ {
			ev := ResolveEvent(rng, def.ID)
			require.NotEmpty(t, ev.Description, def.ID)
			assert.Equal(t, def.Name, ev.Name)
			for field := range ev.Effects {
				_, _, ok := RuleFor(field)
				assert.True(t, ok, "%s sets %s with no combination rule", def.ID, field)
			}
			for _, m := range def.Randoms {
				v := ev.Effects[m.Field]
				assert.GreaterOrEqual(t, v, m.Lo, "%s %s", def.ID, m.Field)
				assert.LessOrEqual(t, v, m.Hi, "%s %s", def.ID, m.Field)
			}
		}
	}
}

func TestResolveEventFreezesMagnitudeIntoDescription(t *testing.T) {
	ev := ResolveEvent(&scriptedRand{floats: []float64{0.5}}, EventLemonShortage)

	assert.Equal(t, 1.75, ev.Effects[EffectLemonCost])
	assert.Equal(t, "Supply chain trouble! Lemons cost 75% more today.", ev.Description)
	assert.True(t, ev.IsNegative())

	combined := CombineEvents([]ResolvedEvent{ev})
	assert.Equal(t, 1.75, combined.SupplyCostMultiplier(SupplyLemons))
	assert.Equal(t, 1.0, combined.SupplyCostMultiplier(SupplySugar))
}

func TestEventRandomRanges(t *testing.T) {
	def, ok := GetEvent(EventLemonShortage)
	require.True(t, ok)
	assert.Equal(t, []string{"lemon_cost 1.50-2.00"}, def.RandomRanges())

	def, ok = GetEvent(EventCompetingStand)
	require.True(t, ok)
	assert.Empty(t, def.RandomRanges())
}

func TestResolveEventDoesNotShareTemplateMaps(t *testing.T) {
	ev := ResolveEvent(seededRNG(1), EventHeatWave)
	ev.Effects[EffectDemandMultiplier] = 9

	again := ResolveEvent(seededRNG(1), EventHeatWave)
	assert.Equal(t, 1.4, again.Effects[EffectDemandMultiplier])
}

func TestCombineEventsEmptyIsNeutral(t *testing.T) {
	want := CombinedEventEffect{
		DemandMultiplier: 1,
		CostMultiplier:   1,
		LemonCost:        1,
		SugarCost:        1,
		IceCost:          1,
		CupCost:          1,
	}
	assert.Equal(t, want, CombineEvents(nil))
	assert.Equal(t, want, NeutralEventEffect())
}

func TestCombineEventsIsOrderIndependent(t *testing.T) {
	rng := seededRNG(2024)
	var events []ResolvedEvent
	for _, def := range EventCatalog() {
		events = append(events, ResolveEvent(rng, def.ID))
	}

	for _, a := range events {
		for _, b := range events {
			ab := CombineEvents([]ResolvedEvent{a, b})
			ba := CombineEvents([]ResolvedEvent{b, a})
			require.Equal(t, ab, ba, "%s + %s", a.ID, b.ID)
		}
	}
}

func TestCombineEventsGroupingDoesNotMatter(t *testing.T) {
	rng := seededRNG(77)
	a := ResolveEvent(rng, EventLocalSportsGame)
	b := ResolveEvent(rng, EventGymClassOuting)
	c := ResolveEvent(rng, EventHeatBurst)

	orders := [][]ResolvedEvent{{a, b, c}, {c, b, a}, {b, c, a}, {a, c, b}}
	first := CombineEvents(orders[0])
	for _, order := range orders[1:] {
		got := CombineEvents(order)
		assert.InDelta(t, first.DemandMultiplier, got.DemandMultiplier, 1e-12)
		assert.Equal(t, first.ReputationDelta, got.ReputationDelta)
		assert.Equal(t, first.SugarShift, got.SugarShift)
		assert.Equal(t, first.DestroysIce, got.DestroysIce)
	}
	assert.True(t, first.DestroysIce)
	assert.Equal(t, int(b.Effects[EffectSugarShift]), first.SugarShift)
	assert.Less(t, first.SugarShift, 0)
}

func TestRollSurpriseEventsNeverRepeatsOrDrawsComplaints(t *testing.T) {
	pool := len(SurprisePool())
	for seed := int64(1); seed <= 50; seed++ {
		rolled := RollSurpriseEvents(seededRNG(seed), pool+3, 1)
		require.Len(t, rolled, pool)
		seen := map[EventID]bool{}
		for _, ev := range rolled {
			assert.False(t, seen[ev.ID], "duplicate %s", ev.ID)
			assert.Equal(t, TimingSurprise, ev.Timing)
			seen[ev.ID] = true
		}
	}
}

func TestRollSurpriseEventsRespectsChance(t *testing.T) {
	assert.Empty(t, RollSurpriseEvents(seededRNG(5), 2, 0))

	rolled := RollSurpriseEvents(&scriptedRand{floats: []float64{0.2, 0.9}}, 2, 0.5)
	require.Len(t, rolled, 1)
	assert.Equal(t, EventHealthInspector, rolled[0].ID)
}

func TestRollPlannedEventPicksFromPlannedPool(t *testing.T) {
	assert.Equal(t, EventHeatWave, RollPlannedEvent(&scriptedRand{}).ID)

	for seed := int64(1); seed <= 30; seed++ {
		ev := RollPlannedEvent(seededRNG(seed))
		assert.Equal(t, TimingPlanned, ev.Timing)
	}
}

func TestRecipeComplaints(t *testing.T) {
	rng := seededRNG(9)
	neutral := NeutralEventEffect()

	got := RecipeComplaints(rng, Recipe{Lemons: 4, Sugar: 3, Ice: 0}, neutral)
	require.Len(t, got, 1)
	assert.Equal(t, EventNoIceComplaint, got[0].ID)
	assert.Less(t, got[0].Effects.Get(EffectDemandMultiplier), 1.0)
	assert.Less(t, got[0].Effects.Get(EffectReputationDelta), 0.0)

	got = RecipeComplaints(rng, Recipe{}, neutral)
	assert.Len(t, got, 3)

	assert.Empty(t, RecipeComplaints(rng, Recipe{Lemons: 1, Sugar: 1, Ice: 1}, neutral))
}

func TestRecipeComplaintsSuppressedByDesirableAbsence(t *testing.T) {
	rng := seededRNG(11)
	trend := CombineEvents([]ResolvedEvent{ResolveEvent(rng, EventWarmDrinkTrend)})

	assert.Empty(t, RecipeComplaints(rng, Recipe{Lemons: 4, Sugar: 3, Ice: 0}, trend))

	got := RecipeComplaints(rng, Recipe{Lemons: 4, Sugar: 0, Ice: 0}, trend)
	require.Len(t, got, 1)
	assert.Equal(t, EventNoSugarComplaint, got[0].ID)
}
