package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stateWithHistory(results ...DayResult) GameState {
	s := NewGameState(DefaultBalance(), &scriptedRand{})
	s.Stats.History = append(s.Stats.History, results...)
	if len(results) > 0 {
		s.Day = results[len(results)-1].Day
	}
	return s
}

func profitDay(day int, profit float64) DayResult {
	return DayResult{Day: day, Weather: WeatherWarm, UnitsSold: 10, Demand: 12, Profit: profit}
}

func unlocked(s GameState, spent float64) map[MilestoneID]bool {
	last, _ := s.LastResult()
	out := map[MilestoneID]bool{}
	for _, id := range EvaluateMilestones(s, last, spent) {
		out[id] = true
	}
	return out
}

func TestMilestoneCatalogShape(t *testing.T) {
	catalog := MilestoneCatalog()
	require.Len(t, catalog, 40)
	for _, def := range catalog {
		assert.NotEmpty(t, def.Name, def.ID)
		assert.NotEmpty(t, def.Description, def.ID)
		assert.NotNil(t, def.Check, def.ID)
		got, ok := GetMilestone(def.ID)
		require.True(t, ok)
		assert.Equal(t, def.ID, got.ID)
	}
	_, ok := GetMilestone("moon_landing")
	assert.False(t, ok)
}

func TestEvaluateMilestonesOnQuietDayIsEmpty(t *testing.T) {
	s := stateWithHistory(DayResult{Day: 1, Weather: WeatherWarm})
	got := EvaluateMilestones(s, s.Stats.History[0], 0)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestEvaluateMilestonesSkipsAchievedAndKeepsCatalogOrder(t *testing.T) {
	r := DayResult{Day: 1, Weather: WeatherStormy, Recipe: Recipe{Lemons: 4, Sugar: 3, Ice: 3}, UnitsSold: 120, Demand: 120, Revenue: 150, Profit: 60}
	s := stateWithHistory(r)
	s.Stats.LifetimeUnits = 120
	s.Stats.LifetimeRevenue = 150

	got := EvaluateMilestones(s, r, 0)
	assert.Equal(t, []MilestoneID{
		MilestoneFirstSale,
		MilestoneCenturion,
		MilestoneEntrepreneur,
		MilestoneWeatherproof,
		MilestoneFullHouse,
		MilestoneRushHour,
		MilestoneBigDay,
		MilestoneCleanSweep,
	}, got)

	s.Milestones[MilestoneFirstSale] = true
	s.Milestones[MilestoneWeatherproof] = true
	got = EvaluateMilestones(s, r, 0)
	assert.NotContains(t, got, MilestoneFirstSale)
	assert.NotContains(t, got, MilestoneWeatherproof)
	assert.Contains(t, got, MilestoneCenturion)
}

func TestStreakMilestones(t *testing.T) {
	var days []DayResult
	for d := 1; d <= 6; d++ {
		days = append(days, profitDay(d, 5))
	}
	s := stateWithHistory(days...)
	assert.True(t, unlocked(s, 0)[MilestoneHotStreak])
	assert.False(t, unlocked(s, 0)[MilestonePennyPincher])

	s = stateWithHistory(append(days, profitDay(7, 5))...)
	assert.True(t, unlocked(s, 0)[MilestonePennyPincher])

	broken := append([]DayResult{}, days...)
	broken[3].Profit = -1
	s = stateWithHistory(append(broken, profitDay(7, 5))...)
	assert.False(t, unlocked(s, 0)[MilestonePennyPincher])
	assert.True(t, unlocked(s, 0)[MilestoneHotStreak])
}

func TestComebackKid(t *testing.T) {
	s := stateWithHistory(profitDay(1, -2), profitDay(2, 3))
	assert.True(t, unlocked(s, 0)[MilestoneComebackKid])

	s = stateWithHistory(profitDay(1, 3))
	assert.False(t, unlocked(s, 0)[MilestoneComebackKid])
}

func TestRecipeMilestones(t *testing.T) {
	r := DayResult{Day: 1, Weather: WeatherWarm, UnitsSold: 10, Demand: 30, Recipe: Recipe{Lemons: 4, Sugar: 0, Ice: 3}}
	got := unlocked(stateWithHistory(r), 0)
	assert.True(t, got[MilestoneSugarFree])
	assert.False(t, got[MilestoneRoomTemp])
	assert.False(t, got[MilestoneBalancedBlend])

	r.Recipe = Recipe{Lemons: 4, Sugar: 4, Ice: 3}
	got = unlocked(stateWithHistory(r), 0)
	assert.False(t, got[MilestoneSugarFree])
	assert.True(t, got[MilestoneBalancedBlend])

	// A sweet-tooth event moves the sugar band out from under the recipe.
	trip := ResolveEvent(&scriptedRand{}, EventSchoolFieldTrip)
	r.PlannedEvent = &trip
	r.Recipe = Recipe{Lemons: 4, Sugar: 3, Ice: 3}
	got = unlocked(stateWithHistory(r), 0)
	assert.False(t, got[MilestoneBalancedBlend])
}

func TestEventMilestones(t *testing.T) {
	shortage := ResolveEvent(&scriptedRand{}, EventLemonShortage)
	review := ResolveEvent(&scriptedRand{}, EventBadOnlineReview)
	r := DayResult{Day: 1, Weather: WeatherRainy, UnitsSold: 12, Demand: 20, Profit: 4, Satisfaction: 70, PlannedEvent: &shortage}

	got := unlocked(stateWithHistory(r), 0)
	assert.True(t, got[MilestoneEventSurvivor])
	assert.False(t, got[MilestoneDoubleTrouble])

	r.SurpriseEvents = []ResolvedEvent{review, ResolveEvent(&scriptedRand{}, EventSurpriseRain)}
	got = unlocked(stateWithHistory(r), 0)
	assert.True(t, got[MilestoneDoubleTrouble])
	assert.True(t, got[MilestonePerfectStorm])

	r.SurpriseEvents = []ResolvedEvent{ResolveEvent(&scriptedRand{}, EventHealthInspector)}
	got = unlocked(stateWithHistory(r), 0)
	assert.True(t, got[MilestoneCleanBill])
}

func TestStateMilestones(t *testing.T) {
	s := stateWithHistory(DayResult{Day: 1, Weather: WeatherWarm})
	s.Upgrades[UpgradeCardboardSign] = true
	s.Upgrades[UpgradePoncho] = false
	s.Reputation = 100
	s.Cash = 120

	got := unlocked(s, 55)
	assert.True(t, got[MilestoneFirstUpgrade])
	assert.True(t, got[MilestoneLocalLegend])
	assert.True(t, got[MilestoneRainyDayFund])
	assert.True(t, got[MilestoneBigSpender])
	assert.False(t, got[MilestoneSuperstore])
	assert.False(t, got[MilestoneUpgradeCollector])

	s.Upgrades = map[UpgradeID]bool{UpgradePoncho: false}
	assert.False(t, unlocked(s, 0)[MilestoneFirstUpgrade])
}

func TestAchievedMilestonesFollowCatalogOrder(t *testing.T) {
	s := stateWithHistory()
	s.Milestones[MilestoneLocalLegend] = true
	s.Milestones[MilestoneFirstSale] = true
	s.Milestones[MilestoneTycoon] = true

	assert.Equal(t, []MilestoneID{MilestoneFirstSale, MilestoneTycoon, MilestoneLocalLegend}, s.AchievedMilestones())
}

func TestPremiumPourNeedsVolumeAndPrice(t *testing.T) {
	r := DayResult{Day: 1, Weather: WeatherHot, Recipe: Recipe{Lemons: 4, Sugar: 3, Ice: 5}, UnitsSold: 20, Demand: 25, Price: 3}
	assert.True(t, unlocked(stateWithHistory(r), 0)[MilestonePremiumPour])

	r.Price = 2.75
	assert.False(t, unlocked(stateWithHistory(r), 0)[MilestonePremiumPour])
}
