package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultBalanceIsValid(t *testing.T) {
	assert.NoError(t, DefaultBalance().Validate())
	assert.NoError(t, RunConfig{Seed: 3, Balance: DefaultBalance()}.Validate())
}

func TestBalanceValidateRejects(t *testing.T) {
	cases := map[string]func(*Balance){
		"negative cash":        func(b *Balance) { b.StartingCash = -1 },
		"reputation too high":  func(b *Balance) { b.StartingReputation = 101 },
		"anchor below zero":    func(b *Balance) { b.ReputationAnchor = -1 },
		"zero victory":         func(b *Balance) { b.VictoryRevenue = 0 },
		"chance above one":     func(b *Balance) { b.SurpriseChance = 1.5 },
		"inverted prices":      func(b *Balance) { b.MinPrice, b.MaxPrice = 3, 2 },
		"no recipe room":       func(b *Balance) { b.MaxRecipeQuantity = 0 },
		"default recipe":       func(b *Balance) { b.DefaultRecipe.Ice = 9 },
		"default price":        func(b *Balance) { b.DefaultPrice = 8 },
		"unknown weather":      func(b *Balance) { b.StartingWeather = "hail" },
		"unknown forecast":     func(b *Balance) { b.StartingForecast = "" },
		"negative bailout":     func(b *Balance) { b.BailoutAmount = -5 },
		"accuracy above one":   func(b *Balance) { b.BaseForecastAccuracy = 1.2 },
		"negative outlook":     func(b *Balance) { b.ExtendedForecastDays = -1 },
		"non positive scaling": func(b *Balance) { b.SatisfactionScale = 0 },
	}
	for name, mutate := range cases {
		b := DefaultBalance()
		mutate(&b)
		assert.Error(t, b.Validate(), name)
		assert.Error(t, RunConfig{Balance: b}.Validate(), name)
	}
}

func TestSnapPrice(t *testing.T) {
	b := DefaultBalance()
	cases := []struct {
		in   float64
		want float64
	}{
		{1, 1},
		{1.13, 1.25},
		{1.12, 1},
		{0, 0.25},
		{-3, 0.25},
		{4.9, 5},
		{12, 5},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, b.SnapPrice(tc.in), "price %.2f", tc.in)
	}

	b.PriceStep = 0
	assert.Equal(t, 1.13, b.SnapPrice(1.13))
}
