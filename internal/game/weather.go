package game

type WeatherKind string

const (
	WeatherHot    WeatherKind = "hot"
	WeatherSunny  WeatherKind = "sunny"
	WeatherWarm   WeatherKind = "warm"
	WeatherCloudy WeatherKind = "cloudy"
	WeatherRainy  WeatherKind = "rainy"
	WeatherStormy WeatherKind = "stormy"
)

// IdealRange is an inclusive band of per-cup units customers enjoy.
type IdealRange struct {
	Lo int `json:"lo"`
	Hi int `json:"hi"`
}

func (r IdealRange) Contains(v int) bool {
	return v >= r.Lo && v <= r.Hi
}

type WeatherDef struct {
	Kind             WeatherKind
	Label            string
	DemandMultiplier float64
	RollWeight       int
	IdealIce         IdealRange
	IdealLemons      IdealRange
	IdealSugar       IdealRange
}

var weatherCatalog = map[WeatherKind]WeatherDef{
	WeatherHot:    {Kind: WeatherHot, Label: "Hot", DemandMultiplier: 1.4, RollWeight: 10, IdealIce: IdealRange{4, 6}, IdealLemons: IdealRange{3, 5}, IdealSugar: IdealRange{2, 4}},
	WeatherSunny:  {Kind: WeatherSunny, Label: "Sunny", DemandMultiplier: 1.2, RollWeight: 25, IdealIce: IdealRange{3, 5}, IdealLemons: IdealRange{3, 5}, IdealSugar: IdealRange{2, 4}},
	WeatherWarm:   {Kind: WeatherWarm, Label: "Warm", DemandMultiplier: 1.0, RollWeight: 30, IdealIce: IdealRange{2, 4}, IdealLemons: IdealRange{3, 5}, IdealSugar: IdealRange{3, 5}},
	WeatherCloudy: {Kind: WeatherCloudy, Label: "Cloudy", DemandMultiplier: 0.85, RollWeight: 20, IdealIce: IdealRange{1, 3}, IdealLemons: IdealRange{3, 5}, IdealSugar: IdealRange{3, 5}},
	WeatherRainy:  {Kind: WeatherRainy, Label: "Rainy", DemandMultiplier: 0.6, RollWeight: 10, IdealIce: IdealRange{1, 2}, IdealLemons: IdealRange{2, 4}, IdealSugar: IdealRange{3, 6}},
	WeatherStormy: {Kind: WeatherStormy, Label: "Stormy", DemandMultiplier: 0.3, RollWeight: 5, IdealIce: IdealRange{1, 2}, IdealLemons: IdealRange{2, 4}, IdealSugar: IdealRange{4, 6}},
}

func AllWeatherKinds() []WeatherKind {
	return []WeatherKind{
		WeatherHot,
		WeatherSunny,
		WeatherWarm,
		WeatherCloudy,
		WeatherRainy,
		WeatherStormy,
	}
}

func WeatherCatalog() []WeatherDef {
	out := make([]WeatherDef, 0, len(weatherCatalog))
	for _, kind := range AllWeatherKinds() {
		out = append(out, weatherCatalog[kind])
	}
	return out
}

func GetWeather(kind WeatherKind) (WeatherDef, bool) {
	def, ok := weatherCatalog[kind]
	return def, ok
}

func mustWeather(kind WeatherKind) WeatherDef {
	def, ok := weatherCatalog[kind]
	if !ok {
		panic("game: unknown weather kind " + string(kind))
	}
	return def
}

func (w WeatherKind) favorsIce() bool {
	return w == WeatherHot || w == WeatherSunny
}

func (w WeatherKind) isWet() bool {
	return w == WeatherRainy || w == WeatherStormy
}

// rollWeather picks a weather kind by the catalog roll weights.
func rollWeather(rng Rand) WeatherKind {
	total := 0
	for _, kind := range AllWeatherKinds() {
		total += weatherCatalog[kind].RollWeight
	}
	roll := rng.Float64() * float64(total)
	for _, kind := range AllWeatherKinds() {
		roll -= float64(weatherCatalog[kind].RollWeight)
		if roll <= 0 {
			return kind
		}
	}
	kinds := AllWeatherKinds()
	return kinds[len(kinds)-1]
}

// rollDayWeather resolves today's weather from yesterday's forecast. The
// forecast holds with the given accuracy, otherwise a fresh weighted roll
// decides.
func rollDayWeather(rng Rand, forecast WeatherKind, accuracy float64) WeatherKind {
	if forecast != "" && rng.Float64() < accuracy {
		return forecast
	}
	return rollWeather(rng)
}
