package game

import "testing"

func TestWeatherCatalogWeightsCoverAllKinds(t *testing.T) {
	total := 0
	for _, kind := range AllWeatherKinds() {
		def, ok := GetWeather(kind)
		if !ok {
			t.Fatalf("missing weather definition for %s", kind)
		}
		if def.IdealIce.Lo > def.IdealIce.Hi || def.IdealLemons.Lo > def.IdealLemons.Hi || def.IdealSugar.Lo > def.IdealSugar.Hi {
			t.Fatalf("inverted ideal range for %s", kind)
		}
		total += def.RollWeight
	}
	if total != 100 {
		t.Fatalf("expected roll weights to sum to 100, got %d", total)
	}
}

func TestRollWeatherFollowsCumulativeWeights(t *testing.T) {
	cases := []struct {
		roll float64
		want WeatherKind
	}{
		{0, WeatherHot},
		{0.09, WeatherHot},
		{0.11, WeatherSunny},
		{0.50, WeatherWarm},
		{0.70, WeatherCloudy},
		{0.90, WeatherRainy},
		{0.99, WeatherStormy},
	}
	for _, tc := range cases {
		got := rollWeather(&scriptedRand{floats: []float64{tc.roll}})
		if got != tc.want {
			t.Fatalf("roll %.2f: expected %s, got %s", tc.roll, tc.want, got)
		}
	}
}

func TestRollDayWeatherHonoursForecast(t *testing.T) {
	got := rollDayWeather(&scriptedRand{floats: []float64{0.79}}, WeatherCloudy, 0.8)
	if got != WeatherCloudy {
		t.Fatalf("expected forecast to hold, got %s", got)
	}

	got = rollDayWeather(&scriptedRand{floats: []float64{0.81, 0.5}}, WeatherCloudy, 0.8)
	if got != WeatherWarm {
		t.Fatalf("expected fresh roll to pick warm, got %s", got)
	}
}

func TestWeatherKindGroups(t *testing.T) {
	for _, kind := range AllWeatherKinds() {
		if kind.favorsIce() && kind.isWet() {
			t.Fatalf("%s cannot be both ice favouring and wet", kind)
		}
	}
	if !WeatherHot.favorsIce() || !WeatherSunny.favorsIce() {
		t.Fatalf("expected hot and sunny to favour ice")
	}
	if !WeatherRainy.isWet() || !WeatherStormy.isWet() {
		t.Fatalf("expected rainy and stormy to be wet")
	}
}
