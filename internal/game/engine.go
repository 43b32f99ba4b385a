package game

import (
	"fmt"
)

// Engine owns one run: the current state, the balance it was built with and
// the random source every roll draws from. It is not safe for concurrent use.
type Engine struct {
	balance Balance
	rng     Rand
	state   GameState
}

func NewEngine(config RunConfig) (*Engine, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return newEngine(config.Balance, NewRand(config.Seed)), nil
}

// NewEngineWithRand builds an engine around a caller-supplied random source.
func NewEngineWithRand(b Balance, rng Rand) (*Engine, error) {
	if err := b.Validate(); err != nil {
		return nil, fmt.Errorf("invalid balance: %w", err)
	}
	if rng == nil {
		return nil, fmt.Errorf("random source is required")
	}
	return newEngine(b, rng), nil
}

func newEngine(b Balance, rng Rand) *Engine {
	return &Engine{balance: b, rng: rng, state: NewGameState(b, rng)}
}

func (e *Engine) Balance() Balance {
	return e.balance
}

// State returns a deep copy of the current state.
func (e *Engine) State() GameState {
	return e.state.Clone()
}

func (e *Engine) Phase() Phase {
	return e.state.Phase
}

// commit swaps in a finished transition after checking it.
func (e *Engine) commit(next GameState) {
	next.checkInvariants(e.balance)
	e.state = next
}

// PurchaseSupply buys packs of kind at today's price. Units that do not fit
// under capacity are lost but still paid for.
func (e *Engine) PurchaseSupply(kind SupplyKind, packs int) bool {
	if e.state.Phase != PhasePlanning || packs < 1 {
		return false
	}
	def, ok := GetSupply(kind)
	if !ok {
		return false
	}
	cost := e.SupplyQuote(kind, packs)
	if cost > e.state.Cash {
		return false
	}

	next := e.state.Clone()
	capacity := EffectiveCapacity(e.balance, next.Effects())
	next.Inventory.Add(kind, def.PackSize*packs, next.Day, capacity)
	next.Cash = addMoney(next.Cash, -cost)
	next.SpentToday = addMoney(next.SpentToday, cost)
	e.commit(next)
	return true
}

// DiscardSupply throws away up to units of kind, oldest first.
func (e *Engine) DiscardSupply(kind SupplyKind, units int) bool {
	if e.state.Phase != PhasePlanning || units < 1 {
		return false
	}
	if _, ok := GetSupply(kind); !ok || e.state.Inventory.Total(kind) == 0 {
		return false
	}
	next := e.state.Clone()
	next.Inventory.Drain(kind, units)
	e.commit(next)
	return true
}

// SetRecipe applies a partial recipe edit. Quantities are clamped into the
// balance range.
func (e *Engine) SetRecipe(patch RecipePatch) bool {
	if e.state.Phase != PhasePlanning {
		return false
	}
	r := patch.apply(e.state.Recipe)
	limit := e.balance.MaxRecipeQuantity
	e.state.Recipe = Recipe{
		Lemons: clamp(r.Lemons, 0, limit),
		Sugar:  clamp(r.Sugar, 0, limit),
		Ice:    clamp(r.Ice, 0, limit),
	}
	return true
}

// SetPrice snaps the price to the balance step and range.
func (e *Engine) SetPrice(price float64) bool {
	if e.state.Phase != PhasePlanning {
		return false
	}
	e.state.Price = e.balance.SnapPrice(price)
	return true
}

func (e *Engine) PurchaseUpgrade(id UpgradeID) bool {
	if e.state.Phase != PhasePlanning {
		return false
	}
	def, ok := GetUpgrade(id)
	if !ok || upgradeStatus(def, e.state.Upgrades, e.state.Cash) != UpgradeAffordable {
		return false
	}
	next := e.state.Clone()
	next.Upgrades[id] = true
	next.Cash = addMoney(next.Cash, -def.Cost)
	next.SpentToday = addMoney(next.SpentToday, def.Cost)
	e.commit(next)
	return true
}

// BeginDay simulates the current planning day. It reports false and changes
// nothing when the run is not in planning.
func (e *Engine) BeginDay() (DayResult, bool) {
	if e.state.Phase != PhasePlanning {
		return DayResult{}, false
	}
	next, result := simulateDay(e.state, e.balance, e.rng)
	e.commit(next)
	return result.clone(), true
}

// AdvanceDay moves from the results screen to the next planning day.
func (e *Engine) AdvanceDay() bool {
	if e.state.Phase != PhaseResults {
		return false
	}
	e.commit(advanceDay(e.state, e.balance, e.rng))
	return true
}

// ClaimBailout takes the one-time bailout and starts the next day.
func (e *Engine) ClaimBailout() bool {
	if e.state.Phase != PhaseBailout {
		return false
	}
	next := e.state.Clone()
	next.Cash = addMoney(next.Cash, e.balance.BailoutAmount)
	next.BailoutUsed = true
	e.commit(advanceDay(next, e.balance, e.rng))
	return true
}

// ContinueAfterVictory keeps playing past the revenue goal.
func (e *Engine) ContinueAfterVictory() bool {
	if e.state.Phase != PhaseVictory {
		return false
	}
	e.state.FreePlay = true
	e.state.Phase = PhaseResults
	return true
}

func (e *Engine) Reset() {
	e.state = NewGameState(e.balance, e.rng)
}

// LoadState replaces the current state after validating it.
func (e *Engine) LoadState(s GameState) error {
	next := s.Clone()
	if next.Inventory.Batches == nil {
		next.Inventory = NewInventory()
	}
	if err := next.validate(e.balance); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidState, err)
	}
	next.SpentToday = 0
	e.state = next
	return nil
}
