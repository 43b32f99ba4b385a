package game

// Read-only views used by the command line and the reference docs. None of
// them change state.

func (e *Engine) LastResult() (DayResult, bool) {
	return e.state.LastResult()
}

func (e *Engine) Effects() ResolvedEffects {
	return e.state.Effects()
}

// SupplyQuote is what buying packs of kind would cost right now.
func (e *Engine) SupplyQuote(kind SupplyKind, packs int) float64 {
	def, ok := GetSupply(kind)
	if !ok || packs < 1 {
		return 0
	}
	mult := e.state.PlannedEffect().SupplyCostMultiplier(kind)
	reduction := 1 - e.state.Effects().CostReduction
	return roundMoney(def.PackCost * float64(packs) * mult * reduction)
}

// ProjectedDemand estimates today's customers from the current plan and the
// planned event. Surprises are unknown until the day starts.
func (e *Engine) ProjectedDemand() int {
	s := e.state
	return EstimateDemand(e.balance, DemandInput{
		Day:        s.Day,
		Weather:    s.Weather,
		Price:      s.Price,
		Recipe:     s.Recipe,
		Reputation: s.Reputation,
		Effects:    s.Effects(),
		Events:     s.PlannedEffect(),
	})
}

func (e *Engine) Makeable() int {
	return UnitsMakeable(e.state.Inventory.Stock(), e.state.Recipe)
}

func (e *Engine) CostPerCup() float64 {
	return roundMoney(CostPerCup(e.state.Recipe, e.state.Effects()))
}

type CapacityView struct {
	Capacity int `json:"capacity"`
	Used     int `json:"used"`
	Free     int `json:"free"`
}

func (e *Engine) Capacity() CapacityView {
	capacity := EffectiveCapacity(e.balance, e.state.Effects())
	used := e.state.Inventory.Units()
	return CapacityView{Capacity: capacity, Used: used, Free: max(0, capacity-used)}
}

type UpgradeOffer struct {
	Upgrade UpgradeDef
	Status  UpgradeStatus
	Missing []UpgradeID
}

// UpgradeOffers lists every upgrade in catalog order with its status for
// the current cash and owned set.
func (e *Engine) UpgradeOffers() []UpgradeOffer {
	out := make([]UpgradeOffer, 0, len(upgradeCatalog))
	for _, def := range upgradeCatalog {
		out = append(out, UpgradeOffer{
			Upgrade: def,
			Status:  upgradeStatus(def, e.state.Upgrades, e.state.Cash),
			Missing: MissingPrerequisites(def.ID, e.state.Upgrades),
		})
	}
	return out
}

type TierSummary struct {
	Tier  int    `json:"tier"`
	Name  string `json:"name"`
	Owned int    `json:"owned"`
	Total int    `json:"total"`
}

func (t TierSummary) Complete() bool {
	return t.Total > 0 && t.Owned == t.Total
}

func TierProgress(owned map[UpgradeID]bool) []TierSummary {
	out := make([]TierSummary, TierCount)
	for i := range out {
		out[i] = TierSummary{Tier: i + 1, Name: TierName(i + 1)}
	}
	for _, def := range upgradeCatalog {
		if def.Tier < 1 || def.Tier > TierCount {
			continue
		}
		out[def.Tier-1].Total++
		if owned[def.ID] {
			out[def.Tier-1].Owned++
		}
	}
	return out
}

func (e *Engine) TierProgress() []TierSummary {
	return TierProgress(e.state.Upgrades)
}

// RecipeHints returns today's ideal ranges once the hint upgrade is owned.
func (e *Engine) RecipeHints() (IdealRanges, bool) {
	if !e.state.Effects().ShowRecipeHints {
		return IdealRanges{}, false
	}
	return IdealRangesFor(e.state.Weather, e.state.PlannedEffect().SugarShift), true
}

// ProfitPerCup is the margin on one cup at the current price and recipe.
func (e *Engine) ProfitPerCup() (float64, bool) {
	fx := e.state.Effects()
	if !fx.ShowProfitPerCup {
		return 0, false
	}
	return roundMoney(e.state.Price*(1+fx.RevenueBonus) - CostPerCup(e.state.Recipe, fx)), true
}

func (e *Engine) Forecast() (WeatherKind, bool) {
	if !e.state.Effects().ShowForecast {
		return "", false
	}
	return e.state.Forecast, true
}

// ExtendedForecast returns the days after tomorrow.
func (e *Engine) ExtendedForecast() ([]WeatherKind, bool) {
	if !e.state.Effects().ShowExtendedForecast {
		return nil, false
	}
	return append([]WeatherKind(nil), e.state.ExtendedForecast...), true
}
