package game

import (
	"fmt"
	"math"
)

// Balance holds every tunable constant of the simulation.
type Balance struct {
	StartingCash         float64     `yaml:"starting_cash" json:"starting_cash"`
	StartingReputation   int         `yaml:"starting_reputation" json:"starting_reputation"`
	BaseDemand           float64     `yaml:"base_demand" json:"base_demand"`
	DemandGrowth         float64     `yaml:"demand_growth" json:"demand_growth"`
	BaseForecastAccuracy float64     `yaml:"base_forecast_accuracy" json:"base_forecast_accuracy"`
	BaseCapacity         int         `yaml:"base_capacity" json:"base_capacity"`
	ReputationDrift      int         `yaml:"reputation_drift" json:"reputation_drift"`
	ReputationAnchor     int         `yaml:"reputation_anchor" json:"reputation_anchor"`
	VictoryRevenue       float64     `yaml:"victory_revenue" json:"victory_revenue"`
	BankruptcyThreshold  float64     `yaml:"bankruptcy_threshold" json:"bankruptcy_threshold"`
	SurpriseSlots        int         `yaml:"surprise_slots" json:"surprise_slots"`
	SurpriseChance       float64     `yaml:"surprise_chance" json:"surprise_chance"`
	SatisfactionScale    float64     `yaml:"satisfaction_scale" json:"satisfaction_scale"`
	MinPrice             float64     `yaml:"min_price" json:"min_price"`
	MaxPrice             float64     `yaml:"max_price" json:"max_price"`
	PriceStep            float64     `yaml:"price_step" json:"price_step"`
	MaxRecipeQuantity    int         `yaml:"max_recipe_quantity" json:"max_recipe_quantity"`
	DefaultRecipe        Recipe      `yaml:"default_recipe" json:"default_recipe"`
	DefaultPrice         float64     `yaml:"default_price" json:"default_price"`
	StartingWeather      WeatherKind `yaml:"starting_weather" json:"starting_weather"`
	StartingForecast     WeatherKind `yaml:"starting_forecast" json:"starting_forecast"`
	ExtendedForecastDays int         `yaml:"extended_forecast_days" json:"extended_forecast_days"`
	BailoutAmount        float64     `yaml:"bailout_amount" json:"bailout_amount"`
}

func DefaultBalance() Balance {
	return Balance{
		StartingCash:         20,
		StartingReputation:   50,
		BaseDemand:           20,
		DemandGrowth:         0.5,
		BaseForecastAccuracy: 0.8,
		BaseCapacity:         200,
		ReputationDrift:      2,
		ReputationAnchor:     50,
		VictoryRevenue:       500,
		BankruptcyThreshold:  0,
		SurpriseSlots:        2,
		SurpriseChance:       1,
		SatisfactionScale:    77,
		MinPrice:             0.25,
		MaxPrice:             5,
		PriceStep:            0.25,
		MaxRecipeQuantity:    6,
		DefaultRecipe:        Recipe{Lemons: 4, Sugar: 3, Ice: 3},
		DefaultPrice:         1,
		StartingWeather:      WeatherSunny,
		StartingForecast:     WeatherWarm,
		ExtendedForecastDays: 2,
	}
}

func (b Balance) Validate() error {
	if b.StartingCash < 0 {
		return fmt.Errorf("starting cash must not be negative, got %.2f", b.StartingCash)
	}
	if b.StartingReputation < 0 || b.StartingReputation > 100 {
		return fmt.Errorf("starting reputation must be between 0 and 100, got %d", b.StartingReputation)
	}
	if b.ReputationAnchor < 0 || b.ReputationAnchor > 100 {
		return fmt.Errorf("reputation anchor must be between 0 and 100, got %d", b.ReputationAnchor)
	}
	if b.ReputationDrift < 0 {
		return fmt.Errorf("reputation drift must not be negative, got %d", b.ReputationDrift)
	}
	if b.BaseDemand < 0 || b.DemandGrowth < 0 {
		return fmt.Errorf("demand base and growth must not be negative")
	}
	if b.BaseForecastAccuracy < 0 || b.BaseForecastAccuracy > 1 {
		return fmt.Errorf("forecast accuracy must be between 0 and 1, got %.2f", b.BaseForecastAccuracy)
	}
	if b.BaseCapacity < 0 {
		return fmt.Errorf("base capacity must not be negative, got %d", b.BaseCapacity)
	}
	if b.VictoryRevenue <= 0 {
		return fmt.Errorf("victory revenue must be positive, got %.2f", b.VictoryRevenue)
	}
	if b.SurpriseSlots < 0 {
		return fmt.Errorf("surprise slots must not be negative, got %d", b.SurpriseSlots)
	}
	if b.SurpriseChance < 0 || b.SurpriseChance > 1 {
		return fmt.Errorf("surprise chance must be between 0 and 1, got %.2f", b.SurpriseChance)
	}
	if b.SatisfactionScale <= 0 {
		return fmt.Errorf("satisfaction scale must be positive, got %.2f", b.SatisfactionScale)
	}
	if b.MinPrice <= 0 || b.MinPrice > b.MaxPrice {
		return fmt.Errorf("price range %.2f-%.2f is invalid", b.MinPrice, b.MaxPrice)
	}
	if b.PriceStep < 0 {
		return fmt.Errorf("price step must not be negative, got %.2f", b.PriceStep)
	}
	if b.MaxRecipeQuantity < 1 {
		return fmt.Errorf("max recipe quantity must be at least 1, got %d", b.MaxRecipeQuantity)
	}
	if !b.recipeInRange(b.DefaultRecipe) {
		return fmt.Errorf("default recipe %+v is outside 0-%d", b.DefaultRecipe, b.MaxRecipeQuantity)
	}
	if !b.priceInRange(b.DefaultPrice) {
		return fmt.Errorf("default price %.2f is outside %.2f-%.2f", b.DefaultPrice, b.MinPrice, b.MaxPrice)
	}
	if _, ok := GetWeather(b.StartingWeather); !ok {
		return fmt.Errorf("invalid starting weather: %s", b.StartingWeather)
	}
	if _, ok := GetWeather(b.StartingForecast); !ok {
		return fmt.Errorf("invalid starting forecast: %s", b.StartingForecast)
	}
	if b.ExtendedForecastDays < 0 {
		return fmt.Errorf("extended forecast days must not be negative, got %d", b.ExtendedForecastDays)
	}
	if b.BailoutAmount < 0 {
		return fmt.Errorf("bailout amount must not be negative, got %.2f", b.BailoutAmount)
	}
	return nil
}

func (b Balance) recipeInRange(r Recipe) bool {
	for _, q := range []int{r.Lemons, r.Sugar, r.Ice} {
		if q < 0 || q > b.MaxRecipeQuantity {
			return false
		}
	}
	return true
}

func (b Balance) priceInRange(price float64) bool {
	return price >= b.MinPrice && price <= b.MaxPrice
}

// SnapPrice clamps price into range and rounds it to the nearest step.
func (b Balance) SnapPrice(price float64) float64 {
	if b.PriceStep > 0 {
		price = math.Round(price/b.PriceStep) * b.PriceStep
	}
	return roundMoney(clampFloat(price, b.MinPrice, b.MaxPrice))
}

type RunConfig struct {
	Seed    int64
	Balance Balance
}

func (c RunConfig) Validate() error {
	if err := c.Balance.Validate(); err != nil {
		return fmt.Errorf("invalid balance: %w", err)
	}
	return nil
}
