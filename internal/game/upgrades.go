package game

import "fmt"

type UpgradeID string

type UpgradeCategory string

const (
	CategoryStand      UpgradeCategory = "stand"
	CategorySignage    UpgradeCategory = "signage"
	CategoryCooling    UpgradeCategory = "cooling"
	CategoryStorage    UpgradeCategory = "storage"
	CategoryRecipe     UpgradeCategory = "recipe"
	CategoryWeather    UpgradeCategory = "weather"
	CategoryMarketing  UpgradeCategory = "marketing"
	CategoryExperience UpgradeCategory = "experience"
	CategorySupply     UpgradeCategory = "supply"
	CategorySpeed      UpgradeCategory = "speed"
	CategoryStaff      UpgradeCategory = "staff"
	CategoryTechnology UpgradeCategory = "technology"
	CategoryDecor      UpgradeCategory = "decor"
	CategorySpecial    UpgradeCategory = "special"
)

func AllUpgradeCategories() []UpgradeCategory {
	return []UpgradeCategory{
		CategoryStand,
		CategorySignage,
		CategoryCooling,
		CategoryStorage,
		CategoryRecipe,
		CategoryWeather,
		CategoryMarketing,
		CategoryExperience,
		CategorySupply,
		CategorySpeed,
		CategoryStaff,
		CategoryTechnology,
		CategoryDecor,
		CategorySpecial,
	}
}

const TierCount = 7

var tierNames = [TierCount + 1]string{
	"",
	"Sidewalk",
	"Wooden Stand",
	"Market Cart",
	"Garden Booth",
	"Corner Shop",
	"Downtown Store",
	"Supercell Superstore",
}

func TierName(tier int) string {
	if tier < 1 || tier > TierCount {
		return fmt.Sprintf("Tier %d", tier)
	}
	return tierNames[tier]
}

type UpgradeDef struct {
	ID          UpgradeID
	Name        string
	Description string
	Cost        float64
	Tier        int
	Category    UpgradeCategory
	Requires    []UpgradeID
	Effects     EffectBundle
}

var upgradeIndex = func() map[UpgradeID]int {
	idx := make(map[UpgradeID]int, len(upgradeCatalog))
	for i, def := range upgradeCatalog {
		if _, dup := idx[def.ID]; dup {
			panic("game: duplicate upgrade id " + string(def.ID))
		}
		idx[def.ID] = i
	}
	return idx
}()

// UpgradeCatalog returns every upgrade in tier order.
func UpgradeCatalog() []UpgradeDef {
	out := make([]UpgradeDef, len(upgradeCatalog))
	copy(out, upgradeCatalog)
	return out
}

func GetUpgrade(id UpgradeID) (UpgradeDef, bool) {
	i, ok := upgradeIndex[id]
	if !ok {
		return UpgradeDef{}, false
	}
	return upgradeCatalog[i], true
}

// ResolvedEffects is the aggregate of every owned upgrade for one day.
type ResolvedEffects struct {
	Awareness         float64 `json:"awareness"`
	ServedBonus       float64 `json:"served_bonus"`
	QualityBonus      float64 `json:"quality_bonus"`
	SatisfactionBonus float64 `json:"satisfaction_bonus"`
	ReputationGain    float64 `json:"reputation_gain"`
	RainReduction     float64 `json:"rain_reduction"`
	ColdReduction     float64 `json:"cold_reduction"`
	ForecastAccuracy  float64 `json:"forecast_accuracy"`
	IceShelfBonus     float64 `json:"ice_shelf_bonus"`
	LemonShelfBonus   float64 `json:"lemon_shelf_bonus"`
	SugarShelfBonus   float64 `json:"sugar_shelf_bonus"`
	CostReduction     float64 `json:"cost_reduction"`
	CapacityBonus     float64 `json:"capacity_bonus"`
	RentPerDay        float64 `json:"rent_per_day"`
	RevenueBonus      float64 `json:"revenue_bonus"`
	PassiveIncome     float64 `json:"passive_income"`
	FreeLemons        float64 `json:"free_lemons"`
	EventAmplify      float64 `json:"event_amplify"`
	EventMitigation   float64 `json:"event_mitigation"`

	ShowRecipeHints      bool `json:"show_recipe_hints"`
	ShowProfitPerCup     bool `json:"show_profit_per_cup"`
	ShowForecast         bool `json:"show_forecast"`
	ShowExtendedForecast bool `json:"show_extended_forecast"`
}

// AggregateEffects folds the effect bundles of the owned upgrades. Unknown
// ids are ignored. Upgrades are visited in catalog order so repeated calls
// with the same set produce identical floats.
func AggregateEffects(owned map[UpgradeID]bool) ResolvedEffects {
	bundles := make([]EffectBundle, 0, len(owned))
	for _, def := range upgradeCatalog {
		if owned[def.ID] {
			bundles = append(bundles, def.Effects)
		}
	}
	return resolveEffects(foldBundles(bundles))
}

func resolveEffects(f EffectBundle) ResolvedEffects {
	return ResolvedEffects{
		Awareness:         f[EffectAwareness],
		ServedBonus:       f[EffectServedBonus],
		QualityBonus:      f[EffectQualityBonus],
		SatisfactionBonus: f[EffectSatisfactionBonus],
		ReputationGain:    f[EffectReputationGain],
		RainReduction:     f[EffectRainReduction],
		ColdReduction:     f[EffectColdReduction],
		ForecastAccuracy:  f[EffectForecastAccuracy],
		IceShelfBonus:     f[EffectIceShelfBonus],
		LemonShelfBonus:   f[EffectLemonShelfBonus],
		SugarShelfBonus:   f[EffectSugarShelfBonus],
		CostReduction:     f[EffectCostReduction],
		CapacityBonus:     f[EffectCapacityBonus],
		RentPerDay:        f[EffectRentPerDay],
		RevenueBonus:      f[EffectRevenueBonus],
		PassiveIncome:     f[EffectPassiveIncome],
		FreeLemons:        f[EffectFreeLemons],
		EventAmplify:      f[EffectEventAmplify],
		EventMitigation:   f[EffectEventMitigation],

		ShowRecipeHints:      f.Flag(EffectShowRecipeHints),
		ShowProfitPerCup:     f.Flag(EffectShowProfitPerCup),
		ShowForecast:         f.Flag(EffectShowForecast),
		ShowExtendedForecast: f.Flag(EffectShowExtendedForecast),
	}
}

// ShelfBonus returns the extra days of shelf life the effects grant a supply.
func (e ResolvedEffects) ShelfBonus(kind SupplyKind) int {
	switch kind {
	case SupplyLemons:
		return int(e.LemonShelfBonus)
	case SupplySugar:
		return int(e.SugarShelfBonus)
	case SupplyIce:
		return int(e.IceShelfBonus)
	default:
		return 0
	}
}

type UpgradeStatus string

const (
	UpgradeOwned      UpgradeStatus = "owned"
	UpgradeLocked     UpgradeStatus = "locked"
	UpgradeAffordable UpgradeStatus = "affordable"
	UpgradeTooCostly  UpgradeStatus = "too_costly"
)

// MissingPrerequisites lists the prerequisites of id that are not owned.
func MissingPrerequisites(id UpgradeID, owned map[UpgradeID]bool) []UpgradeID {
	def, ok := GetUpgrade(id)
	if !ok {
		return nil
	}
	missing := make([]UpgradeID, 0, len(def.Requires))
	for _, req := range def.Requires {
		if !owned[req] {
			missing = append(missing, req)
		}
	}
	return missing
}

func upgradeStatus(def UpgradeDef, owned map[UpgradeID]bool, cash float64) UpgradeStatus {
	switch {
	case owned[def.ID]:
		return UpgradeOwned
	case len(MissingPrerequisites(def.ID, owned)) > 0:
		return UpgradeLocked
	case def.Cost > cash:
		return UpgradeTooCostly
	default:
		return UpgradeAffordable
	}
}
