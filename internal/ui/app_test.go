package ui

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/appengine-ltd/lemonade-stand/internal/game"
	"github.com/appengine-ltd/lemonade-stand/internal/store"
	"github.com/google/uuid"
)

type memorySaves struct {
	states map[string]game.GameState
	order  []string
}

func newMemorySaves() *memorySaves {
	return &memorySaves{states: map[string]game.GameState{}}
}

func (m *memorySaves) Save(_ context.Context, id string, state game.GameState) (string, error) {
	if id == "" {
		id = uuid.NewString()
	}
	if _, ok := m.states[id]; !ok {
		m.order = append(m.order, id)
	}
	m.states[id] = state.Clone()
	return id, nil
}

func (m *memorySaves) Load(_ context.Context, id string) (game.GameState, error) {
	s, ok := m.states[id]
	if !ok {
		return game.GameState{}, store.ErrNotFound
	}
	return s.Clone(), nil
}

func (m *memorySaves) List(_ context.Context) ([]store.Slot, error) {
	out := make([]store.Slot, 0, len(m.order))
	for _, id := range m.order {
		s := m.states[id]
		out = append(out, store.Slot{ID: id, Day: s.Day, Cash: s.Cash, Phase: s.Phase, UpdatedAt: time.Unix(0, 0)})
	}
	return out, nil
}

func quietRun() game.RunConfig {
	b := game.DefaultBalance()
	b.SurpriseChance = 0
	return game.RunConfig{Seed: 21, Balance: b}
}

func newTestApp(t *testing.T, saves SaveStore) *App {
	t.Helper()
	app, err := NewApp(context.Background(), AppConfig{Version: "test", Run: quietRun(), Saves: saves})
	if err != nil {
		t.Fatalf("NewApp error: %v", err)
	}
	return app
}

func exec(t *testing.T, app *App, line string) CommandResult {
	t.Helper()
	return app.Execute(context.Background(), line)
}

func TestHelpListsCommands(t *testing.T) {
	app := newTestApp(t, nil)
	res := exec(t, app, "help")
	if !res.Handled {
		t.Fatalf("expected help to be handled")
	}
	for _, verb := range []string{"buy", "recipe", "price", "upgrade", "start", "next", "bailout", "saves"} {
		if !strings.Contains(res.Message, verb) {
			t.Fatalf("expected help to mention %s", verb)
		}
	}
}

func TestBuyChargesTheQuote(t *testing.T) {
	app := newTestApp(t, nil)
	quote := app.Engine().SupplyQuote(game.SupplyLemons, 2)
	cash := app.Engine().State().Cash

	res := exec(t, app, "buy 2 packs of lemons")
	if !res.Handled || !strings.Contains(res.Message, "Bought 2 pack(s) of lemons") {
		t.Fatalf("unexpected buy result: %+v", res)
	}
	state := app.Engine().State()
	if state.Inventory.Total(game.SupplyLemons) != 60 {
		t.Fatalf("expected 60 lemons, got %d", state.Inventory.Total(game.SupplyLemons))
	}
	if got, want := state.Cash, cash-quote; fmt.Sprintf("%.2f", got) != fmt.Sprintf("%.2f", want) {
		t.Fatalf("expected cash %.2f, got %.2f", want, got)
	}

	res = exec(t, app, "purchse cup")
	if !res.Handled || state.Inventory.Total(game.SupplyCups) != 0 || app.Engine().State().Inventory.Total(game.SupplyCups) != 25 {
		t.Fatalf("expected typo'd buy to add one pack of cups: %+v", res)
	}

	res = exec(t, app, "buy 999 sugar")
	if res.Handled || !strings.Contains(res.Message, "Not enough cash") {
		t.Fatalf("expected cash rejection, got %+v", res)
	}
}

func TestDiscardDefaultsToOnePack(t *testing.T) {
	app := newTestApp(t, nil)
	exec(t, app, "buy sugar 2")

	res := exec(t, app, "discard sugar")
	if !res.Handled || app.Engine().State().Inventory.Total(game.SupplySugar) != 15 {
		t.Fatalf("expected one pack discarded: %+v", res)
	}
	res = exec(t, app, "toss all sugar")
	if !res.Handled || app.Engine().State().Inventory.Total(game.SupplySugar) != 0 {
		t.Fatalf("expected all sugar discarded: %+v", res)
	}
	res = exec(t, app, "discard sugar")
	if res.Handled || !strings.Contains(res.Message, "no sugar") {
		t.Fatalf("expected empty-stock rejection, got %+v", res)
	}
}

func TestRecipePositionalAndNamed(t *testing.T) {
	app := newTestApp(t, nil)

	res := exec(t, app, "recipe 5 2 1")
	if !res.Handled {
		t.Fatalf("recipe rejected: %+v", res)
	}
	if got := app.Engine().State().Recipe; got != (game.Recipe{Lemons: 5, Sugar: 2, Ice: 1}) {
		t.Fatalf("unexpected recipe %+v", got)
	}

	exec(t, app, "recipe ice 0")
	if got := app.Engine().State().Recipe; got != (game.Recipe{Lemons: 5, Sugar: 2, Ice: 0}) {
		t.Fatalf("expected only ice to change, got %+v", got)
	}

	exec(t, app, "recipe 99 0 0")
	if got := app.Engine().State().Recipe.Lemons; got != 6 {
		t.Fatalf("expected lemons clamped to 6, got %d", got)
	}

	res = exec(t, app, "recipe banana 2")
	if res.Handled {
		t.Fatalf("expected bad recipe token to be rejected")
	}
}

func TestPriceSnapsToStep(t *testing.T) {
	app := newTestApp(t, nil)
	res := exec(t, app, "price 1.13")
	if !res.Handled || app.Engine().State().Price != 1.25 {
		t.Fatalf("expected price 1.25, got %.2f (%+v)", app.Engine().State().Price, res)
	}
	res = exec(t, app, "price")
	if res.Handled {
		t.Fatalf("expected missing amount to ask again")
	}
}

func TestUpgradePurchaseAndRejections(t *testing.T) {
	app := newTestApp(t, nil)
	cash := app.Engine().State().Cash

	var target game.UpgradeDef
	for _, def := range game.UpgradeCatalog() {
		if len(def.Requires) == 0 && def.Cost <= cash {
			target = def
			break
		}
	}
	if target.ID == "" {
		t.Fatalf("expected an affordable starter upgrade")
	}

	res := exec(t, app, "upgrade "+strings.ToLower(target.Name))
	if !res.Handled || !app.Engine().State().Upgrades[target.ID] {
		t.Fatalf("expected %s installed: %+v", target.Name, res)
	}
	res = exec(t, app, "upgrade "+strings.ToLower(target.Name))
	if res.Handled || !strings.Contains(res.Message, "already own") {
		t.Fatalf("expected already-owned rejection, got %+v", res)
	}
}

func TestClarifyOptionCanBePicked(t *testing.T) {
	app := newTestApp(t, nil)
	res := exec(t, app, "buy")
	if res.Handled || !strings.Contains(res.Message, "1) buy lemons") {
		t.Fatalf("expected numbered options, got %+v", res)
	}
	res = exec(t, app, "2")
	if !res.Handled || !strings.Contains(res.Message, "sugar") {
		t.Fatalf("expected option 2 to buy sugar, got %+v", res)
	}
	if app.Engine().State().Inventory.Total(game.SupplySugar) != 15 {
		t.Fatalf("expected one pack of sugar")
	}
}

func TestDayCycle(t *testing.T) {
	app := newTestApp(t, nil)
	exec(t, app, "buy lemons")
	exec(t, app, "buy sugar")
	exec(t, app, "buy ice")
	exec(t, app, "buy cups")

	res := exec(t, app, "start")
	if !res.Handled || !strings.Contains(res.Message, "Customers") {
		t.Fatalf("expected a day report, got %+v", res)
	}
	if app.Engine().Phase() != game.PhaseResults {
		t.Fatalf("expected results phase, got %s", app.Engine().Phase())
	}
	if res := exec(t, app, "buy lemons"); res.Handled {
		t.Fatalf("expected buying outside planning to be rejected")
	}
	if res := exec(t, app, "start"); res.Handled {
		t.Fatalf("expected a second start to be rejected")
	}

	res = exec(t, app, "next")
	if !res.Handled || app.Engine().State().Day != 2 {
		t.Fatalf("expected day 2, got %+v", res)
	}
	res = exec(t, app, "history")
	if !strings.Contains(res.Message, "Sold/Demand") || strings.Count(res.Message, "\n") != 1 {
		t.Fatalf("expected one history row, got %q", res.Message)
	}
}

func TestEndPhases(t *testing.T) {
	run := quietRun()
	run.Balance.BailoutAmount = 5
	app, err := NewApp(context.Background(), AppConfig{Run: run})
	if err != nil {
		t.Fatalf("NewApp error: %v", err)
	}

	s := app.Engine().State()
	s.Phase = game.PhaseVictory
	if err := app.Engine().LoadState(s); err != nil {
		t.Fatalf("LoadState error: %v", err)
	}
	if res := exec(t, app, "next"); res.Handled || !strings.Contains(res.Message, "continue") {
		t.Fatalf("expected victory hint, got %+v", res)
	}
	if res := exec(t, app, "continue"); !res.Handled || !app.Engine().State().FreePlay {
		t.Fatalf("expected free play, got %+v", res)
	}

	s = app.Engine().State()
	s.Phase = game.PhaseBailout
	s.Cash = -1
	if err := app.Engine().LoadState(s); err != nil {
		t.Fatalf("LoadState error: %v", err)
	}
	res := exec(t, app, "take bailout")
	if !res.Handled || app.Engine().State().Cash != 4 || app.Engine().Phase() != game.PhasePlanning {
		t.Fatalf("expected bailout to pay out and start a new day, got %+v cash=%.2f", res, app.Engine().State().Cash)
	}
	if res := exec(t, app, "bailout"); res.Handled {
		t.Fatalf("expected a second bailout to be refused")
	}
}

func TestSaveLoadAndList(t *testing.T) {
	saves := newMemorySaves()
	app := newTestApp(t, saves)
	exec(t, app, "buy lemons")

	res := exec(t, app, "save")
	if !res.Handled {
		t.Fatalf("save failed: %+v", res)
	}
	id := strings.TrimPrefix(res.Message, "Saved to slot ")
	if _, err := uuid.Parse(id); err != nil {
		t.Fatalf("expected uuid slot in %q", res.Message)
	}

	exec(t, app, "new")
	if app.Engine().State().Inventory.Total(game.SupplyLemons) != 0 {
		t.Fatalf("expected fresh inventory after new")
	}

	res = exec(t, app, "load "+id[:8])
	if !res.Handled || app.Engine().State().Inventory.Total(game.SupplyLemons) != 30 {
		t.Fatalf("expected saved lemons after load, got %+v", res)
	}

	res = exec(t, app, "saves")
	if !strings.Contains(res.Message, "* "+id) {
		t.Fatalf("expected current slot marked, got %q", res.Message)
	}

	res = exec(t, app, "load "+uuid.NewString())
	if res.Handled || app.Engine().State().Inventory.Total(game.SupplyLemons) != 30 {
		t.Fatalf("expected unknown slot to be refused, got %+v", res)
	}
}

func TestSavesDisabledWithoutStore(t *testing.T) {
	app := newTestApp(t, nil)
	if res := exec(t, app, "save"); res.Handled || !strings.Contains(res.Message, "not configured") {
		t.Fatalf("expected save to be disabled, got %+v", res)
	}
}

func TestNewAppWithMissingSlot(t *testing.T) {
	_, err := NewApp(context.Background(), AppConfig{Run: quietRun(), Saves: newMemorySaves(), Slot: uuid.NewString()})
	if !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestRunScript(t *testing.T) {
	app := newTestApp(t, nil)
	in := strings.NewReader("# comment\nstatus\nbuy cups\nquit\nstatus\n")
	var out bytes.Buffer

	if err := app.Run(context.Background(), in, &out); err != nil {
		t.Fatalf("Run error: %v", err)
	}
	text := out.String()
	if !strings.Contains(text, "Bought 1 pack(s) of cups") || !strings.Contains(text, "Closing the stand") {
		t.Fatalf("unexpected transcript:\n%s", text)
	}
	if strings.Count(text, "Cups you can make") != 2 {
		t.Fatalf("expected the banner status and one status command before quit:\n%s", text)
	}
}
