package game

import "math"

// simulateDay runs one trading day on a copy of s and returns the new state
// with the day's result already appended to history.
func simulateDay(s GameState, b Balance, rng Rand) (GameState, DayResult) {
	next := s.Clone()
	fx := next.Effects()

	surprises := RollSurpriseEvents(rng, b.SurpriseSlots, b.SurpriseChance)
	events := make([]ResolvedEvent, 0, len(surprises)+len(Ingredients())+1)
	if next.PlannedEvent != nil {
		events = append(events, *next.PlannedEvent)
	}
	events = append(events, surprises...)
	combined := CombineEvents(events)
	if complaints := RecipeComplaints(rng, next.Recipe, combined); len(complaints) > 0 {
		surprises = append(surprises, complaints...)
		events = append(events, complaints...)
		combined = CombineEvents(events)
	}
	next.SurpriseEvents = surprises

	iceDestroyed := 0
	if combined.DestroysIce {
		iceDestroyed = next.Inventory.Clear(SupplyIce)
	}

	demand := EstimateDemand(b, DemandInput{
		Day:        next.Day,
		Weather:    next.Weather,
		Price:      next.Price,
		Recipe:     next.Recipe,
		Reputation: next.Reputation,
		Effects:    fx,
		Events:     combined,
	})
	makeable := UnitsMakeable(next.Inventory.Stock(), next.Recipe)
	sold := min(demand, makeable)

	revenue := roundMoney(float64(sold) * next.Price * (1 + fx.RevenueBonus))
	cogs := roundMoney(float64(sold) * CostPerCup(next.Recipe, fx))
	rent := roundMoney(fx.RentPerDay)
	passive := roundMoney(fx.PassiveIncome)
	profit := roundMoney(revenue - cogs - rent + passive)

	for _, kind := range AllSupplyKinds() {
		next.Inventory.Drain(kind, sold*next.Recipe.Quantity(kind))
	}
	loss := next.Inventory.Expire(next.Day, fx)

	satisfaction := 0
	if sold > 0 {
		satisfaction = Satisfaction(b, next.Recipe, next.Weather, next.Price, combined, fx)
	}

	inspector := false
	for _, ev := range events {
		if ev.ID == EventHealthInspector {
			inspector = true
		}
	}
	delta := reputationDelta(b, fx, reputationInput{
		Reputation:   next.Reputation,
		Satisfaction: satisfaction,
		Sold:         sold,
		Demand:       demand,
		Makeable:     makeable,
		Inspector:    inspector,
		EventDelta:   combined.ReputationDelta,
	})
	next.Reputation = clamp(next.Reputation+delta, 0, 100)
	next.Cash = addMoney(next.Cash, profit)
	next.Stats.LifetimeRevenue = addMoney(next.Stats.LifetimeRevenue, revenue)
	next.Stats.LifetimeUnits += sold

	next.Phase = PhaseResults
	if !next.FreePlay && next.Stats.LifetimeRevenue >= b.VictoryRevenue {
		next.Phase = PhaseVictory
	}
	if next.Cash < b.BankruptcyThreshold && next.Inventory.Stock().IsEmpty() {
		next.Phase = PhaseGameOver
		if b.BailoutAmount > 0 && !next.BailoutUsed {
			next.Phase = PhaseBailout
		}
	}

	result := DayResult{
		Day:             next.Day,
		Weather:         next.Weather,
		Recipe:          next.Recipe,
		Price:           next.Price,
		Demand:          demand,
		Makeable:        makeable,
		UnitsSold:       sold,
		Revenue:         revenue,
		CostOfGoods:     cogs,
		Rent:            rent,
		PassiveIncome:   passive,
		Profit:          profit,
		Satisfaction:    satisfaction,
		ReputationDelta: delta,
		Reputation:      next.Reputation,
		Cash:            next.Cash,
		IceMelted:       loss.Melted,
		IceDestroyed:    iceDestroyed,
		Spoiled:         loss.Spoiled,
		SurpriseEvents:  cloneEvents(surprises),
	}
	if next.PlannedEvent != nil {
		planned := next.PlannedEvent.Clone()
		result.PlannedEvent = &planned
	}
	if result.SurpriseEvents == nil {
		result.SurpriseEvents = []ResolvedEvent{}
	}

	next.Stats.History = append(next.Stats.History, result)
	unlocked := EvaluateMilestones(next, result, s.SpentToday)
	for _, id := range unlocked {
		next.Milestones[id] = true
	}
	result.MilestonesUnlocked = unlocked
	next.Stats.History[len(next.Stats.History)-1] = result
	return next, result
}

// advanceDay rolls the next planning day on a copy of s.
func advanceDay(s GameState, b Balance, rng Rand) GameState {
	next := s.Clone()
	fx := next.Effects()

	accuracy := math.Max(b.BaseForecastAccuracy, fx.ForecastAccuracy)
	next.Weather = rollDayWeather(rng, next.Forecast, accuracy)
	if len(next.ExtendedForecast) > 0 {
		next.Forecast = next.ExtendedForecast[0]
		next.ExtendedForecast = append(next.ExtendedForecast[1:], rollWeather(rng))
	} else {
		next.Forecast = rollWeather(rng)
	}
	planned := RollPlannedEvent(rng)
	next.PlannedEvent = &planned
	next.SurpriseEvents = []ResolvedEvent{}

	next.Day++
	next.Phase = PhasePlanning
	next.SpentToday = 0

	if free := int(fx.FreeLemons); free > 0 {
		next.Inventory.Add(SupplyLemons, free, next.Day, EffectiveCapacity(b, fx))
	}
	return next
}

func rollExtendedForecast(rng Rand, days int) []WeatherKind {
	out := make([]WeatherKind, 0, days)
	for i := 0; i < days; i++ {
		out = append(out, rollWeather(rng))
	}
	return out
}

type reputationInput struct {
	Reputation   int
	Satisfaction int
	Sold         int
	Demand       int
	Makeable     int
	Inspector    bool
	EventDelta   int
}

// reputationDelta is the change applied to reputation at the end of a day,
// before clamping.
func reputationDelta(b Balance, fx ResolvedEffects, in reputationInput) int {
	delta := 0
	if in.Sold > 0 {
		switch {
		case in.Satisfaction >= 70:
			delta = int(math.Ceil(float64(in.Satisfaction-60) / 10))
		case in.Satisfaction < 40:
			delta = -int(math.Ceil(float64(40-in.Satisfaction) / 8))
		}
		if in.Demand > in.Makeable && in.Makeable > 0 {
			delta--
		}
	} else {
		gap := b.ReputationAnchor - in.Reputation
		switch {
		case gap > 0:
			delta = min(b.ReputationDrift, gap)
		case gap < 0:
			delta = -min(b.ReputationDrift, -gap)
		}
	}

	if delta > 0 && fx.ReputationGain > 0 {
		delta = int(math.Ceil(float64(delta) * (1 + fx.ReputationGain)))
	}

	if in.Inspector {
		if in.Satisfaction >= 60 {
			delta += 5
		} else {
			delta -= 10
		}
	}
	return delta + in.EventDelta
}

func clamp(number, min, max int) int {
	if number < min {
		return min
	}

	if number > max {
		return max
	}

	return number
}
