package game

import (
	"fmt"
	"math"
)

type EventID string

type EventTiming string

const (
	// TimingPlanned events are drawn once per day and shown before trading.
	TimingPlanned EventTiming = "planned"
	// TimingSurprise events are drawn when the day is simulated.
	TimingSurprise EventTiming = "surprise"
	// TimingComplaint events are only synthesized from the recipe.
	TimingComplaint EventTiming = "complaint"
)

// magnitude declares a field whose value is drawn at roll time.
type magnitude struct {
	Field   EffectField
	Lo, Hi  float64
	Integer bool
}

type EventDef struct {
	ID       EventID
	Name     string
	Timing   EventTiming
	Base     EffectBundle
	Randoms  []magnitude
	describe func(EffectBundle) string
}

// ResolvedEvent is an event with every randomized magnitude frozen.
type ResolvedEvent struct {
	ID          EventID      `json:"id"`
	Name        string       `json:"name"`
	Description string       `json:"description"`
	Timing      EventTiming  `json:"timing"`
	Effects     EffectBundle `json:"effects"`
}

func (e ResolvedEvent) Clone() ResolvedEvent {
	e.Effects = e.Effects.Clone()
	return e
}

// IsNegative reports whether the event hurts the day: fewer customers, dearer
// supplies, lost reputation or lost ice.
func (e ResolvedEvent) IsNegative() bool {
	fx := e.Effects
	if fx.Get(EffectDemandMultiplier) < 1 || fx.Get(EffectReputationDelta) < 0 || fx.Flag(EffectDestroysIce) {
		return true
	}
	for _, f := range []EffectField{EffectCostMultiplier, EffectLemonCost, EffectSugarCost, EffectIceCost, EffectCupCost} {
		if fx.Get(f) > 1 {
			return true
		}
	}
	return false
}

var eventIndex = func() map[EventID]int {
	idx := make(map[EventID]int, len(eventCatalog))
	for i, def := range eventCatalog {
		if _, dup := idx[def.ID]; dup {
			panic("game: duplicate event id " + string(def.ID))
		}
		idx[def.ID] = i
	}
	return idx
}()

func EventCatalog() []EventDef {
	out := make([]EventDef, len(eventCatalog))
	copy(out, eventCatalog)
	return out
}

func GetEvent(id EventID) (EventDef, bool) {
	i, ok := eventIndex[id]
	if !ok {
		return EventDef{}, false
	}
	return eventCatalog[i], true
}

func eventPool(timing EventTiming) []EventID {
	out := make([]EventID, 0, len(eventCatalog))
	for _, def := range eventCatalog {
		if def.Timing == timing {
			out = append(out, def.ID)
		}
	}
	return out
}

var (
	plannedPool  = eventPool(TimingPlanned)
	surprisePool = eventPool(TimingSurprise)
)

func PlannedPool() []EventID  { return append([]EventID(nil), plannedPool...) }
func SurprisePool() []EventID { return append([]EventID(nil), surprisePool...) }

// RandomRanges describes the magnitudes drawn at roll time as
// "field lo-hi" strings in declaration order.
func (d EventDef) RandomRanges() []string {
	out := make([]string, 0, len(d.Randoms))
	for _, m := range d.Randoms {
		if m.Integer {
			out = append(out, fmt.Sprintf("%s %d..%d", m.Field, int(m.Lo), int(m.Hi)))
			continue
		}
		out = append(out, fmt.Sprintf("%s %.2f-%.2f", m.Field, m.Lo, m.Hi))
	}
	return out
}

// ResolveEvent draws the randomized magnitudes of id and freezes them.
func ResolveEvent(rng Rand, id EventID) ResolvedEvent {
	def, ok := GetEvent(id)
	if !ok {
		panic("game: unknown event " + string(id))
	}
	fx := def.Base.Clone()
	if fx == nil {
		fx = EffectBundle{}
	}
	for _, m := range def.Randoms {
		if m.Integer {
			fx[m.Field] = float64(randInt(rng, int(m.Lo), int(m.Hi)))
			continue
		}
		fx[m.Field] = randBetween(rng, m.Lo, m.Hi)
	}
	desc := ""
	if def.describe != nil {
		desc = def.describe(fx)
	}
	return ResolvedEvent{
		ID:          def.ID,
		Name:        def.Name,
		Description: desc,
		Timing:      def.Timing,
		Effects:     fx,
	}
}

// RollPlannedEvent draws exactly one event uniformly from the planned pool.
func RollPlannedEvent(rng Rand) ResolvedEvent {
	return ResolveEvent(rng, plannedPool[rng.IntN(len(plannedPool))])
}

// RollSurpriseEvents fills up to slots independent slots. Each fires with
// the given chance and draws from the surprise pool without repeating an
// event already drawn this roll.
func RollSurpriseEvents(rng Rand, slots int, chance float64) []ResolvedEvent {
	out := make([]ResolvedEvent, 0, slots)
	used := map[EventID]bool{}
	for slot := 0; slot < slots; slot++ {
		if rng.Float64() >= chance {
			continue
		}
		available := make([]EventID, 0, len(surprisePool))
		for _, id := range surprisePool {
			if !used[id] {
				available = append(available, id)
			}
		}
		if len(available) == 0 {
			break
		}
		id := available[rng.IntN(len(available))]
		used[id] = true
		out = append(out, ResolveEvent(rng, id))
	}
	return out
}

// CombinedEventEffect is the fold of every event active on one day.
type CombinedEventEffect struct {
	DemandMultiplier float64 `json:"demand_multiplier"`
	CostMultiplier   float64 `json:"cost_multiplier"`
	LemonCost        float64 `json:"lemon_cost"`
	SugarCost        float64 `json:"sugar_cost"`
	IceCost          float64 `json:"ice_cost"`
	CupCost          float64 `json:"cup_cost"`
	ReputationDelta  int     `json:"reputation_delta"`
	DestroysIce      bool    `json:"destroys_ice"`
	SugarShift       int     `json:"sugar_shift"`
	ZeroLemonsOK     bool    `json:"zero_lemons_ok"`
	ZeroSugarOK      bool    `json:"zero_sugar_ok"`
	ZeroIceOK        bool    `json:"zero_ice_ok"`
}

// NeutralEventEffect is the identity of CombineEvents.
func NeutralEventEffect() CombinedEventEffect {
	return CombineEvents(nil)
}

// CombineEvents folds events with the shared effect table: multipliers
// multiply, deltas and shifts add, flags OR. The result does not depend on
// the order of events.
func CombineEvents(events []ResolvedEvent) CombinedEventEffect {
	bundles := make([]EffectBundle, 0, len(events))
	for _, e := range events {
		bundles = append(bundles, e.Effects)
	}
	f := foldBundles(bundles)
	return CombinedEventEffect{
		DemandMultiplier: f[EffectDemandMultiplier],
		CostMultiplier:   f[EffectCostMultiplier],
		LemonCost:        f[EffectLemonCost],
		SugarCost:        f[EffectSugarCost],
		IceCost:          f[EffectIceCost],
		CupCost:          f[EffectCupCost],
		ReputationDelta:  int(math.Round(f[EffectReputationDelta])),
		DestroysIce:      f.Flag(EffectDestroysIce),
		SugarShift:       int(math.Round(f[EffectSugarShift])),
		ZeroLemonsOK:     f.Flag(EffectZeroLemonsOK),
		ZeroSugarOK:      f.Flag(EffectZeroSugarOK),
		ZeroIceOK:        f.Flag(EffectZeroIceOK),
	}
}

// SupplyCostMultiplier is the default cost multiplier times the per-kind one.
func (c CombinedEventEffect) SupplyCostMultiplier(kind SupplyKind) float64 {
	switch kind {
	case SupplyLemons:
		return c.CostMultiplier * c.LemonCost
	case SupplySugar:
		return c.CostMultiplier * c.SugarCost
	case SupplyIce:
		return c.CostMultiplier * c.IceCost
	case SupplyCups:
		return c.CostMultiplier * c.CupCost
	default:
		return c.CostMultiplier
	}
}

// ZeroDesirable reports whether leaving kind out of the recipe is wanted today.
func (c CombinedEventEffect) ZeroDesirable(kind SupplyKind) bool {
	switch kind {
	case SupplyLemons:
		return c.ZeroLemonsOK
	case SupplySugar:
		return c.ZeroSugarOK
	case SupplyIce:
		return c.ZeroIceOK
	default:
		return false
	}
}

var complaintFor = map[SupplyKind]EventID{
	SupplyLemons: EventNoLemonComplaint,
	SupplySugar:  EventNoSugarComplaint,
	SupplyIce:    EventNoIceComplaint,
}

// RecipeComplaints synthesizes a complaint for every ingredient the recipe
// leaves out, unless an active event makes that absence desirable.
func RecipeComplaints(rng Rand, recipe Recipe, combined CombinedEventEffect) []ResolvedEvent {
	var out []ResolvedEvent
	for _, kind := range Ingredients() {
		if recipe.Quantity(kind) != 0 || combined.ZeroDesirable(kind) {
			continue
		}
		out = append(out, ResolveEvent(rng, complaintFor[kind]))
	}
	return out
}

func pctUp(mult float64) int {
	return int(math.Round((mult - 1) * 100))
}

func pctDown(mult float64) int {
	return int(math.Round((1 - mult) * 100))
}

func staticText(s string) func(EffectBundle) string {
	return func(EffectBundle) string { return s }
}

func demandUpText(format string) func(EffectBundle) string {
	return func(fx EffectBundle) string {
		return fmt.Sprintf(format, pctUp(fx.Get(EffectDemandMultiplier)))
	}
}

func demandDownText(format string) func(EffectBundle) string {
	return func(fx EffectBundle) string {
		return fmt.Sprintf(format, pctDown(fx.Get(EffectDemandMultiplier)))
	}
}

func costUpText(format string, field EffectField) func(EffectBundle) string {
	return func(fx EffectBundle) string {
		return fmt.Sprintf(format, pctUp(fx.Get(field)))
	}
}

func costDownText(format string, field EffectField) func(EffectBundle) string {
	return func(fx EffectBundle) string {
		return fmt.Sprintf(format, pctDown(fx.Get(field)))
	}
}
