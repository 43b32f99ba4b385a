package game

import "math"

// EffectField names one modifier that an upgrade or an event can carry.
// Upgrade fields and event fields share the one combination table below, so
// the aggregator and the event combiner fold values the same way.
type EffectField string

const (
	// Upgrade fields.
	EffectAwareness            EffectField = "awareness"
	EffectServedBonus          EffectField = "served_bonus"
	EffectQualityBonus         EffectField = "quality_bonus"
	EffectSatisfactionBonus    EffectField = "satisfaction_bonus"
	EffectReputationGain       EffectField = "reputation_gain"
	EffectRainReduction        EffectField = "rain_reduction"
	EffectColdReduction        EffectField = "cold_reduction"
	EffectForecastAccuracy     EffectField = "forecast_accuracy"
	EffectIceShelfBonus        EffectField = "ice_shelf_bonus"
	EffectLemonShelfBonus      EffectField = "lemon_shelf_bonus"
	EffectSugarShelfBonus      EffectField = "sugar_shelf_bonus"
	EffectCostReduction        EffectField = "cost_reduction"
	EffectCapacityBonus        EffectField = "capacity_bonus"
	EffectRentPerDay           EffectField = "rent_per_day"
	EffectRevenueBonus         EffectField = "revenue_bonus"
	EffectPassiveIncome        EffectField = "passive_income"
	EffectFreeLemons           EffectField = "free_lemons"
	EffectEventAmplify         EffectField = "event_amplify"
	EffectEventMitigation      EffectField = "event_mitigation"
	EffectShowRecipeHints      EffectField = "show_recipe_hints"
	EffectShowProfitPerCup     EffectField = "show_profit_per_cup"
	EffectShowForecast         EffectField = "show_forecast"
	EffectShowExtendedForecast EffectField = "show_extended_forecast"

	// Event fields.
	EffectDemandMultiplier EffectField = "demand_multiplier"
	EffectCostMultiplier   EffectField = "cost_multiplier"
	EffectLemonCost        EffectField = "lemon_cost"
	EffectSugarCost        EffectField = "sugar_cost"
	EffectIceCost          EffectField = "ice_cost"
	EffectCupCost          EffectField = "cup_cost"
	EffectReputationDelta  EffectField = "reputation_delta"
	EffectDestroysIce      EffectField = "destroys_ice"
	EffectSugarShift       EffectField = "sugar_shift"
	EffectZeroLemonsOK     EffectField = "zero_lemons_ok"
	EffectZeroSugarOK      EffectField = "zero_sugar_ok"
	EffectZeroIceOK        EffectField = "zero_ice_ok"
)

type CombineRule int

const (
	RuleAdditive CombineRule = iota
	RuleMaxWins
	RuleOr
	RuleCappedSum
	RuleProduct
)

func (r CombineRule) String() string {
	switch r {
	case RuleAdditive:
		return "additive"
	case RuleMaxWins:
		return "max"
	case RuleOr:
		return "or"
	case RuleCappedSum:
		return "capped"
	case RuleProduct:
		return "product"
	default:
		return "unknown"
	}
}

type fieldRule struct {
	Rule CombineRule
	Cap  float64
}

var effectRules = map[EffectField]fieldRule{
	EffectAwareness:            {Rule: RuleAdditive},
	EffectServedBonus:          {Rule: RuleAdditive},
	EffectQualityBonus:         {Rule: RuleAdditive},
	EffectSatisfactionBonus:    {Rule: RuleAdditive},
	EffectReputationGain:       {Rule: RuleAdditive},
	EffectRainReduction:        {Rule: RuleCappedSum, Cap: 0.85},
	EffectColdReduction:        {Rule: RuleCappedSum, Cap: 0.85},
	EffectForecastAccuracy:     {Rule: RuleMaxWins},
	EffectIceShelfBonus:        {Rule: RuleAdditive},
	EffectLemonShelfBonus:      {Rule: RuleAdditive},
	EffectSugarShelfBonus:      {Rule: RuleAdditive},
	EffectCostReduction:        {Rule: RuleCappedSum, Cap: 0.40},
	EffectCapacityBonus:        {Rule: RuleAdditive},
	EffectRentPerDay:           {Rule: RuleMaxWins},
	EffectRevenueBonus:         {Rule: RuleAdditive},
	EffectPassiveIncome:        {Rule: RuleAdditive},
	EffectFreeLemons:           {Rule: RuleAdditive},
	EffectEventAmplify:         {Rule: RuleAdditive},
	EffectEventMitigation:      {Rule: RuleCappedSum, Cap: 0.75},
	EffectShowRecipeHints:      {Rule: RuleOr},
	EffectShowProfitPerCup:     {Rule: RuleOr},
	EffectShowForecast:         {Rule: RuleOr},
	EffectShowExtendedForecast: {Rule: RuleOr},

	EffectDemandMultiplier: {Rule: RuleProduct},
	EffectCostMultiplier:   {Rule: RuleProduct},
	EffectLemonCost:        {Rule: RuleProduct},
	EffectSugarCost:        {Rule: RuleProduct},
	EffectIceCost:          {Rule: RuleProduct},
	EffectCupCost:          {Rule: RuleProduct},
	EffectReputationDelta:  {Rule: RuleAdditive},
	EffectDestroysIce:      {Rule: RuleOr},
	EffectSugarShift:       {Rule: RuleAdditive},
	EffectZeroLemonsOK:     {Rule: RuleOr},
	EffectZeroSugarOK:      {Rule: RuleOr},
	EffectZeroIceOK:        {Rule: RuleOr},
}

// RuleFor reports how a field combines across several sources.
func RuleFor(field EffectField) (CombineRule, float64, bool) {
	r, ok := effectRules[field]
	return r.Rule, r.Cap, ok
}

func (r fieldRule) identity() float64 {
	if r.Rule == RuleProduct {
		return 1
	}
	return 0
}

func (r fieldRule) fold(acc, v float64) float64 {
	switch r.Rule {
	case RuleMaxWins:
		return math.Max(acc, v)
	case RuleOr:
		if acc != 0 || v != 0 {
			return 1
		}
		return 0
	case RuleProduct:
		return acc * v
	default:
		return acc + v
	}
}

func (r fieldRule) finish(v float64) float64 {
	if r.Rule == RuleCappedSum && v > r.Cap {
		return r.Cap
	}
	return v
}

// EffectBundle is a sparse set of modifier values. Flags are stored as 1.
type EffectBundle map[EffectField]float64

func (b EffectBundle) Get(field EffectField) float64 {
	if v, ok := b[field]; ok {
		return v
	}
	return effectRules[field].identity()
}

func (b EffectBundle) Flag(field EffectField) bool {
	return b[field] != 0
}

func (b EffectBundle) Clone() EffectBundle {
	if b == nil {
		return nil
	}
	out := make(EffectBundle, len(b))
	for k, v := range b {
		out[k] = v
	}
	return out
}

// foldBundles combines bundles field by field using effectRules and applies
// caps once after every bundle has been folded. The result is dense: every
// field of the table is present, at its identity when no bundle set it.
func foldBundles(bundles []EffectBundle) EffectBundle {
	acc := make(EffectBundle, len(effectRules))
	for field, rule := range effectRules {
		acc[field] = rule.identity()
	}
	for _, b := range bundles {
		for field, v := range b {
			rule, ok := effectRules[field]
			if !ok {
				continue
			}
			acc[field] = rule.fold(acc[field], v)
		}
	}
	for field, rule := range effectRules {
		acc[field] = rule.finish(acc[field])
	}
	return acc
}
