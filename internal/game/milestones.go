package game

type MilestoneID string

type MilestoneCategory string

const (
	MilestoneCumulative MilestoneCategory = "cumulative"
	MilestoneSingleDay  MilestoneCategory = "single_day"
	MilestoneStreak     MilestoneCategory = "streak"
	MilestoneRecipe     MilestoneCategory = "recipe"
	MilestoneEvents     MilestoneCategory = "events"
	MilestoneInventory  MilestoneCategory = "inventory"
	MilestoneUpgrades   MilestoneCategory = "upgrades"
	MilestoneReputation MilestoneCategory = "reputation"
)

// MilestoneContext is what a predicate may look at: the state after the day
// was simulated (its history already ends with Result), the result itself and
// what the player spent while planning.
type MilestoneContext struct {
	State      GameState
	Result     DayResult
	SpentToday float64
}

// recent returns the last n results, or nil when history is shorter.
func (c MilestoneContext) recent(n int) []DayResult {
	h := c.State.Stats.History
	if n <= 0 || len(h) < n {
		return nil
	}
	return h[len(h)-n:]
}

func (c MilestoneContext) previous() (DayResult, bool) {
	h := c.State.Stats.History
	if len(h) < 2 {
		return DayResult{}, false
	}
	return h[len(h)-2], true
}

type MilestoneDef struct {
	ID          MilestoneID
	Name        string
	Description string
	Category    MilestoneCategory
	Check       func(MilestoneContext) bool
}

var milestoneIndex = func() map[MilestoneID]int {
	idx := make(map[MilestoneID]int, len(milestoneCatalog))
	for i, def := range milestoneCatalog {
		if _, dup := idx[def.ID]; dup {
			panic("game: duplicate milestone id " + string(def.ID))
		}
		idx[def.ID] = i
	}
	return idx
}()

func MilestoneCatalog() []MilestoneDef {
	out := make([]MilestoneDef, len(milestoneCatalog))
	copy(out, milestoneCatalog)
	return out
}

func GetMilestone(id MilestoneID) (MilestoneDef, bool) {
	i, ok := milestoneIndex[id]
	if !ok {
		return MilestoneDef{}, false
	}
	return milestoneCatalog[i], true
}

// EvaluateMilestones returns, in catalog order, every milestone whose
// predicate holds and that the state has not already achieved. Predicates are
// independent of one another.
func EvaluateMilestones(s GameState, r DayResult, spentToday float64) []MilestoneID {
	ctx := MilestoneContext{State: s, Result: r, SpentToday: spentToday}
	out := []MilestoneID{}
	for _, def := range milestoneCatalog {
		if s.Milestones[def.ID] {
			continue
		}
		if def.Check(ctx) {
			out = append(out, def.ID)
		}
	}
	return out
}

func streak(days int, pred func(DayResult) bool) func(MilestoneContext) bool {
	return func(c MilestoneContext) bool {
		window := c.recent(days)
		if window == nil {
			return false
		}
		for _, r := range window {
			if !pred(r) {
				return false
			}
		}
		return true
	}
}

func profitable(r DayResult) bool { return r.Profit > 0 }

func negativeEvents(r DayResult) int {
	n := 0
	for _, e := range r.Events() {
		if e.IsNegative() {
			n++
		}
	}
	return n
}

func soldWithout(kind SupplyKind) func(MilestoneContext) bool {
	return func(c MilestoneContext) bool {
		return c.Result.UnitsSold >= 10 && c.Result.Recipe.Quantity(kind) == 0
	}
}

func recipeOnTarget(r DayResult) bool {
	shift := CombineEvents(r.Events()).SugarShift
	ideal := IdealRangesFor(r.Weather, shift)
	for _, kind := range Ingredients() {
		if !ideal.For(kind).Contains(r.Recipe.Quantity(kind)) {
			return false
		}
	}
	return true
}

func ownsTier(owned map[UpgradeID]bool, tier int) bool {
	for _, p := range TierProgress(owned) {
		if p.Tier == tier {
			return p.Owned > 0
		}
	}
	return false
}

func ownedCount(owned map[UpgradeID]bool) int {
	n := 0
	for _, has := range owned {
		if has {
			n++
		}
	}
	return n
}
