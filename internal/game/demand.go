package game

import "math"

// Recipe is the per-cup portion of each ingredient. Zero is a legal value.
type Recipe struct {
	Lemons int `json:"lemons" yaml:"lemons"`
	Sugar  int `json:"sugar" yaml:"sugar"`
	Ice    int `json:"ice" yaml:"ice"`
}

func (r Recipe) Quantity(kind SupplyKind) int {
	switch kind {
	case SupplyLemons:
		return r.Lemons
	case SupplySugar:
		return r.Sugar
	case SupplyIce:
		return r.Ice
	case SupplyCups:
		return 1
	default:
		return 0
	}
}

// RecipePatch carries optional recipe edits. Nil fields keep their value.
type RecipePatch struct {
	Lemons *int
	Sugar  *int
	Ice    *int
}

func (p RecipePatch) apply(r Recipe) Recipe {
	if p.Lemons != nil {
		r.Lemons = *p.Lemons
	}
	if p.Sugar != nil {
		r.Sugar = *p.Sugar
	}
	if p.Ice != nil {
		r.Ice = *p.Ice
	}
	return r
}

func clampFloat(v, lo, hi float64) float64 {
	return math.Min(math.Max(v, lo), hi)
}

// IdealRanges are the ingredient bands customers enjoy for one weather kind
// after the day's sweetness shift.
type IdealRanges struct {
	Lemons IdealRange `json:"lemons"`
	Sugar  IdealRange `json:"sugar"`
	Ice    IdealRange `json:"ice"`
}

func (r IdealRanges) For(kind SupplyKind) IdealRange {
	switch kind {
	case SupplyLemons:
		return r.Lemons
	case SupplySugar:
		return r.Sugar
	default:
		return r.Ice
	}
}

func IdealRangesFor(weather WeatherKind, sugarShift int) IdealRanges {
	def := mustWeather(weather)
	sugar := def.IdealSugar
	if sugarShift != 0 {
		sugar = IdealRange{
			Lo: clamp(sugar.Lo+sugarShift, 1, 6),
			Hi: clamp(sugar.Hi+sugarShift, 1, 6),
		}
	}
	return IdealRanges{Lemons: def.IdealLemons, Sugar: sugar, Ice: def.IdealIce}
}

// IngredientScore rates one recipe quantity against its ideal band.
func IngredientScore(qty int, ideal IdealRange, zeroDesirable bool) float64 {
	if qty == 0 {
		if zeroDesirable {
			return 1.2
		}
		return 0
	}
	if ideal.Contains(qty) {
		return 1
	}
	distance := ideal.Lo - qty
	if qty > ideal.Hi {
		distance = qty - ideal.Hi
	}
	return math.Max(0.3, 1-0.2*float64(distance))
}

func ingredientWeights(weather WeatherKind) (lemons, sugar, ice float64) {
	ice, sugar = 0.25, 0.25
	if weather.favorsIce() {
		ice = 0.4
	}
	if weather.isWet() {
		sugar = 0.4
	}
	return 1 - ice - sugar, sugar, ice
}

// Quality scores a recipe for the weather, in [0.3, 1.3] before the upgrade
// quality bonus is applied.
func Quality(recipe Recipe, weather WeatherKind, events CombinedEventEffect, fx ResolvedEffects) float64 {
	ideal := IdealRangesFor(weather, events.SugarShift)
	wl, ws, wi := ingredientWeights(weather)

	weighted := IngredientScore(recipe.Lemons, ideal.Lemons, events.ZeroLemonsOK)*wl +
		IngredientScore(recipe.Sugar, ideal.Sugar, events.ZeroSugarOK)*ws +
		IngredientScore(recipe.Ice, ideal.Ice, events.ZeroIceOK)*wi

	return clampFloat(weighted*1.3, 0.3, 1.3) * (1 + fx.QualityBonus)
}

func priceAttractiveness(price float64) float64 {
	return clampFloat(1.5-0.5*price, 0.2, 1.5)
}

func priceFairness(price float64) float64 {
	return clampFloat(1.5-0.4*price, 0.3, 1.2)
}

func reputationFactor(reputation int) float64 {
	return 0.5 + float64(reputation)/200
}

// upgradeDemandFactor adds awareness and buys back part of the weather
// penalty on wet or cold days.
func upgradeDemandFactor(weather WeatherKind, fx ResolvedEffects) float64 {
	factor := 1 + fx.Awareness
	mult := mustWeather(weather).DemandMultiplier
	if mult >= 1 {
		return factor
	}
	penalty := 1 - mult
	switch {
	case weather.isWet():
		factor += penalty * fx.RainReduction
	case weather == WeatherCloudy:
		factor += penalty * fx.ColdReduction
	}
	return factor
}

func eventDemandFactor(multiplier float64, fx ResolvedEffects) float64 {
	switch {
	case multiplier > 1:
		return 1 + (multiplier-1)*(1+fx.EventAmplify)
	case multiplier < 1:
		return 1 - (1-multiplier)*(1-fx.EventMitigation)
	default:
		return 1
	}
}

// DemandInput gathers everything the demand model reads for one day.
type DemandInput struct {
	Day        int
	Weather    WeatherKind
	Price      float64
	Recipe     Recipe
	Reputation int
	Effects    ResolvedEffects
	Events     CombinedEventEffect
}

// EstimateDemand returns the number of customers willing to buy, before
// capping to what the inventory can make.
func EstimateDemand(b Balance, in DemandInput) int {
	base := b.BaseDemand + float64(in.Day)*b.DemandGrowth
	raw := base *
		mustWeather(in.Weather).DemandMultiplier *
		priceAttractiveness(in.Price) *
		Quality(in.Recipe, in.Weather, in.Events, in.Effects) *
		reputationFactor(in.Reputation) *
		upgradeDemandFactor(in.Weather, in.Effects) *
		eventDemandFactor(in.Events.DemandMultiplier, in.Effects) *
		(1 + in.Effects.ServedBonus)
	if raw <= 0 {
		return 0
	}
	return int(math.Floor(raw))
}

// Satisfaction blends quality and price fairness into a 0 to 100 score.
func Satisfaction(b Balance, recipe Recipe, weather WeatherKind, price float64, events CombinedEventEffect, fx ResolvedEffects) int {
	q := Quality(recipe, weather, events, fx)
	blend := (q*0.7 + priceFairness(price)*0.3) * (1 + fx.SatisfactionBonus)
	return int(math.Round(clampFloat(blend*b.SatisfactionScale, 0, 100)))
}

// UnitsMakeable is how many cups the stock supports. An ingredient the recipe
// leaves out places no limit.
func UnitsMakeable(stock Stock, recipe Recipe) int {
	units := stock[SupplyCups]
	for _, kind := range Ingredients() {
		per := recipe.Quantity(kind)
		if per <= 0 {
			continue
		}
		if n := stock[kind] / per; n < units {
			units = n
		}
	}
	if units < 0 {
		return 0
	}
	return units
}

// CostPerCup is the ingredient and cup cost of one serving after the supply
// cost reduction.
func CostPerCup(recipe Recipe, fx ResolvedEffects) float64 {
	total := 0.0
	for _, kind := range AllSupplyKinds() {
		total += float64(recipe.Quantity(kind)) * supplyCatalog[kind].UnitCost()
	}
	return total * (1 - fx.CostReduction)
}
