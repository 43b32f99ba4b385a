package game

import (
	"errors"
	"fmt"
	"maps"
	"slices"
)

type Phase string

const (
	PhasePlanning Phase = "planning"
	PhaseResults  Phase = "results"
	PhaseBailout  Phase = "bailout"
	PhaseGameOver Phase = "gameover"
	PhaseVictory  Phase = "victory"
)

func AllPhases() []Phase {
	return []Phase{
		PhasePlanning,
		PhaseResults,
		PhaseBailout,
		PhaseGameOver,
		PhaseVictory,
	}
}

// ErrInvalidState is returned when a loaded state breaks a ledger or range
// invariant.
var ErrInvalidState = errors.New("invalid game state")

// DayResult is the record of one simulated day. It is never changed after
// it is appended to the history.
type DayResult struct {
	Day                int             `json:"day"`
	Weather            WeatherKind     `json:"weather"`
	Recipe             Recipe          `json:"recipe"`
	Price              float64         `json:"price"`
	Demand             int             `json:"demand"`
	Makeable           int             `json:"makeable"`
	UnitsSold          int             `json:"units_sold"`
	Revenue            float64         `json:"revenue"`
	CostOfGoods        float64         `json:"cost_of_goods"`
	Rent               float64         `json:"rent"`
	PassiveIncome      float64         `json:"passive_income"`
	Profit             float64         `json:"profit"`
	Satisfaction       int             `json:"satisfaction"`
	ReputationDelta    int             `json:"reputation_delta"`
	Reputation         int             `json:"reputation"`
	Cash               float64         `json:"cash"`
	IceMelted          int             `json:"ice_melted"`
	IceDestroyed       int             `json:"ice_destroyed"`
	Spoiled            Stock           `json:"spoiled"`
	PlannedEvent       *ResolvedEvent  `json:"planned_event,omitempty"`
	SurpriseEvents     []ResolvedEvent `json:"surprise_events"`
	MilestonesUnlocked []MilestoneID   `json:"milestones_unlocked"`
}

// Events lists the planned event, if any, followed by the surprises.
func (r DayResult) Events() []ResolvedEvent {
	out := make([]ResolvedEvent, 0, len(r.SurpriseEvents)+1)
	if r.PlannedEvent != nil {
		out = append(out, *r.PlannedEvent)
	}
	return append(out, r.SurpriseEvents...)
}

func (r DayResult) HasEvent(id EventID) bool {
	for _, e := range r.Events() {
		if e.ID == id {
			return true
		}
	}
	return false
}

func (r DayResult) clone() DayResult {
	out := r
	out.Spoiled = maps.Clone(r.Spoiled)
	if r.PlannedEvent != nil {
		e := r.PlannedEvent.Clone()
		out.PlannedEvent = &e
	}
	out.SurpriseEvents = cloneEvents(r.SurpriseEvents)
	out.MilestonesUnlocked = slices.Clone(r.MilestonesUnlocked)
	return out
}

func cloneEvents(events []ResolvedEvent) []ResolvedEvent {
	if events == nil {
		return nil
	}
	out := make([]ResolvedEvent, len(events))
	for i, e := range events {
		out[i] = e.Clone()
	}
	return out
}

type Stats struct {
	LifetimeRevenue float64     `json:"lifetime_revenue"`
	LifetimeUnits   int         `json:"lifetime_units"`
	History         []DayResult `json:"history"`
}

// GameState is the aggregate root of one run. It holds only plain data so
// it can be written and read verbatim.
type GameState struct {
	Day              int                  `json:"day"`
	Cash             float64              `json:"cash"`
	Inventory        Inventory            `json:"inventory"`
	Recipe           Recipe               `json:"recipe"`
	Price            float64              `json:"price"`
	Weather          WeatherKind          `json:"weather"`
	Forecast         WeatherKind          `json:"forecast"`
	ExtendedForecast []WeatherKind        `json:"extended_forecast"`
	Reputation       int                  `json:"reputation"`
	Upgrades         map[UpgradeID]bool   `json:"upgrades"`
	PlannedEvent     *ResolvedEvent       `json:"planned_event,omitempty"`
	SurpriseEvents   []ResolvedEvent      `json:"surprise_events"`
	Milestones       map[MilestoneID]bool `json:"milestones"`
	Stats            Stats                `json:"stats"`
	Phase            Phase                `json:"phase"`
	FreePlay         bool                 `json:"free_play"`
	BailoutUsed      bool                 `json:"bailout_used"`
	SpentToday       float64              `json:"spent_today"`
}

// NewGameState builds day one from the balance. The planned event and the
// extended forecast are rolled from rng.
func NewGameState(b Balance, rng Rand) GameState {
	planned := RollPlannedEvent(rng)
	return GameState{
		Day:              1,
		Cash:             roundMoney(b.StartingCash),
		Inventory:        NewInventory(),
		Recipe:           b.DefaultRecipe,
		Price:            b.DefaultPrice,
		Weather:          b.StartingWeather,
		Forecast:         b.StartingForecast,
		ExtendedForecast: rollExtendedForecast(rng, b.ExtendedForecastDays),
		Reputation:       b.StartingReputation,
		Upgrades:         map[UpgradeID]bool{},
		PlannedEvent:     &planned,
		SurpriseEvents:   []ResolvedEvent{},
		Milestones:       map[MilestoneID]bool{},
		Stats:            Stats{History: []DayResult{}},
		Phase:            PhasePlanning,
	}
}

// Clone returns a deep copy. Transitions work on a clone and replace the
// state only when they succeed.
func (s GameState) Clone() GameState {
	out := s
	out.Inventory = s.Inventory.Clone()
	out.ExtendedForecast = slices.Clone(s.ExtendedForecast)
	out.Upgrades = maps.Clone(s.Upgrades)
	if out.Upgrades == nil {
		out.Upgrades = map[UpgradeID]bool{}
	}
	if s.PlannedEvent != nil {
		e := s.PlannedEvent.Clone()
		out.PlannedEvent = &e
	}
	out.SurpriseEvents = cloneEvents(s.SurpriseEvents)
	out.Milestones = maps.Clone(s.Milestones)
	if out.Milestones == nil {
		out.Milestones = map[MilestoneID]bool{}
	}
	out.Stats.History = make([]DayResult, len(s.Stats.History))
	for i, r := range s.Stats.History {
		out.Stats.History[i] = r.clone()
	}
	return out
}

func (s GameState) Effects() ResolvedEffects {
	return AggregateEffects(s.Upgrades)
}

// PlannedEffect is the combined effect of the planned event alone, the one
// that prices supplies during planning.
func (s GameState) PlannedEffect() CombinedEventEffect {
	if s.PlannedEvent == nil {
		return NeutralEventEffect()
	}
	return CombineEvents([]ResolvedEvent{*s.PlannedEvent})
}

// ActiveEvents lists the planned event followed by the surprises.
func (s GameState) ActiveEvents() []ResolvedEvent {
	out := make([]ResolvedEvent, 0, len(s.SurpriseEvents)+1)
	if s.PlannedEvent != nil {
		out = append(out, *s.PlannedEvent)
	}
	return append(out, s.SurpriseEvents...)
}

func (s GameState) LastResult() (DayResult, bool) {
	if len(s.Stats.History) == 0 {
		return DayResult{}, false
	}
	return s.Stats.History[len(s.Stats.History)-1].clone(), true
}

// AchievedMilestones lists achieved milestones in catalog order.
func (s GameState) AchievedMilestones() []MilestoneID {
	out := make([]MilestoneID, 0, len(s.Milestones))
	for _, m := range milestoneCatalog {
		if s.Milestones[m.ID] {
			out = append(out, m.ID)
		}
	}
	return out
}

func (s GameState) validate(b Balance) error {
	if !slices.Contains(AllPhases(), s.Phase) {
		return fmt.Errorf("unknown phase %q", s.Phase)
	}
	if s.Day < 1 {
		return fmt.Errorf("day must be at least 1, got %d", s.Day)
	}
	if s.Reputation < 0 || s.Reputation > 100 {
		return fmt.Errorf("reputation %d is outside 0-100", s.Reputation)
	}
	if _, ok := GetWeather(s.Weather); !ok {
		return fmt.Errorf("unknown weather %q", s.Weather)
	}
	if _, ok := GetWeather(s.Forecast); !ok {
		return fmt.Errorf("unknown forecast %q", s.Forecast)
	}
	for _, w := range s.ExtendedForecast {
		if _, ok := GetWeather(w); !ok {
			return fmt.Errorf("unknown extended forecast %q", w)
		}
	}
	if s.Recipe.Lemons < 0 || s.Recipe.Sugar < 0 || s.Recipe.Ice < 0 {
		return fmt.Errorf("recipe %+v has a negative quantity", s.Recipe)
	}
	if s.Price <= 0 {
		return fmt.Errorf("price must be positive, got %.2f", s.Price)
	}
	if err := s.Inventory.validate(EffectiveCapacity(b, s.Effects())); err != nil {
		return err
	}
	for _, e := range s.ActiveEvents() {
		if _, ok := GetEvent(e.ID); !ok {
			return fmt.Errorf("unknown event %q", e.ID)
		}
	}
	return nil
}

// checkInvariants panics when a transition produced a state that cannot be
// reached through the public actions.
func (s GameState) checkInvariants(b Balance) {
	if s.Reputation < 0 || s.Reputation > 100 {
		panic(fmt.Sprintf("game: reputation %d outside 0-100", s.Reputation))
	}
	s.Inventory.mustValid(EffectiveCapacity(b, s.Effects()))
}
