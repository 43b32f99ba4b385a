package ui

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/appengine-ltd/lemonade-stand/internal/game"
	"github.com/appengine-ltd/lemonade-stand/internal/parser"
	"github.com/appengine-ltd/lemonade-stand/internal/store"
)

const defaultHistoryDays = 7

func (a *App) dispatch(ctx context.Context, intent parser.Intent) CommandResult {
	switch intent.Verb {
	case "help":
		return handled(helpText())
	case "status":
		return handled(statusText(a.engine))
	case "buy":
		return a.executeBuy(intent)
	case "discard":
		return a.executeDiscard(intent)
	case "recipe":
		return a.executeRecipe(intent)
	case "price":
		return a.executePrice(intent)
	case "upgrade":
		return a.executeUpgrade(intent)
	case "shop":
		return handled(shopText(a.engine))
	case "start":
		return a.executeStart()
	case "next":
		return a.executeNext()
	case "continue":
		if !a.engine.ContinueAfterVictory() {
			return rejected("There is nothing to continue: the goal has not been reached.")
		}
		return handled("Free play! The stand stays open with no end goal.")
	case "bailout":
		return a.executeBailout()
	case "history":
		return a.executeHistory(intent)
	case "milestones":
		return handled(milestonesText(a.engine.State()))
	case "save":
		return a.executeSave(ctx)
	case "load":
		return a.executeLoad(ctx, intent)
	case "saves":
		return a.executeSaves(ctx)
	case "new":
		a.engine.Reset()
		a.slot = ""
		return handled("New game.\n" + statusText(a.engine))
	case "quit":
		return CommandResult{Handled: true, Message: "Closing the stand. Bye!", Quit: true}
	default:
		return rejected("Unknown command. Type help for the list.")
	}
}

func handled(msg string) CommandResult {
	return CommandResult{Handled: true, Message: msg}
}

func rejected(msg string) CommandResult {
	return CommandResult{Handled: false, Message: msg}
}

func (a *App) requirePlanning(action string) (CommandResult, bool) {
	if a.engine.Phase() == game.PhasePlanning {
		return CommandResult{}, true
	}
	return rejected(fmt.Sprintf("You can only %s while planning (the day is in %s).", action, a.engine.Phase())), false
}

func (a *App) supplyArg(intent parser.Intent) (game.SupplyKind, bool) {
	if len(intent.Args) == 0 {
		return "", false
	}
	kind, ok := a.supplyByName[intent.Args[0]]
	if ok {
		a.lastEntity = string(kind)
	}
	return kind, ok
}

func (a *App) executeBuy(intent parser.Intent) CommandResult {
	kind, ok := a.supplyArg(intent)
	if !ok {
		return rejected("Buy what? Try lemons, sugar, ice or cups.")
	}
	if res, ok := a.requirePlanning("buy supplies"); !ok {
		return res
	}
	packs := 1
	if intent.Quantity != nil {
		packs = intent.Quantity.N
	}
	if packs < 1 {
		return rejected("Say how many packs to buy, e.g. buy lemons 2.")
	}
	cost := a.engine.SupplyQuote(kind, packs)
	before := a.engine.State().Inventory.Total(kind)
	if !a.engine.PurchaseSupply(kind, packs) {
		return rejected(fmt.Sprintf("Not enough cash: %d pack(s) of %s cost $%.2f and you have $%.2f.",
			packs, kind, cost, a.engine.State().Cash))
	}
	state := a.engine.State()
	added := state.Inventory.Total(kind) - before
	def, _ := game.GetSupply(kind)
	msg := fmt.Sprintf("Bought %d pack(s) of %s for $%.2f. Cash $%.2f.", packs, kind, cost, state.Cash)
	if lost := def.PackSize*packs - added; lost > 0 {
		msg += fmt.Sprintf(" %d %s did not fit and were lost.", lost, kind)
	}
	return handled(msg)
}

func (a *App) executeDiscard(intent parser.Intent) CommandResult {
	kind, ok := a.supplyArg(intent)
	if !ok {
		return rejected("Discard what? Try lemons, sugar, ice or cups.")
	}
	if res, ok := a.requirePlanning("discard supplies"); !ok {
		return res
	}
	have := a.engine.State().Inventory.Total(kind)
	def, _ := game.GetSupply(kind)
	units := def.PackSize
	if intent.Quantity != nil {
		units = intent.Quantity.N
		if units < 0 {
			units = have
		}
	}
	if !a.engine.DiscardSupply(kind, units) {
		if have == 0 {
			return rejected(fmt.Sprintf("You have no %s to discard.", kind))
		}
		return rejected("Say how many units to discard.")
	}
	left := a.engine.State().Inventory.Total(kind)
	return handled(fmt.Sprintf("Discarded %d %s, %d left.", have-left, kind, left))
}

// executeRecipe accepts positional quantities ("recipe 4 3 2") or named
// ones ("recipe ice 0 lemons 5").
func (a *App) executeRecipe(intent parser.Intent) CommandResult {
	if res, ok := a.requirePlanning("change the recipe"); !ok {
		return res
	}
	patch, complaint := a.recipePatch(intent.Args)
	if complaint != "" {
		return rejected(complaint)
	}
	a.engine.SetRecipe(patch)
	r := a.engine.State().Recipe
	return handled(fmt.Sprintf("Recipe: %d lemons, %d sugar, %d ice per cup. Cost per cup $%.2f.",
		r.Lemons, r.Sugar, r.Ice, a.engine.CostPerCup()))
}

func (a *App) recipePatch(args []string) (game.RecipePatch, string) {
	var patch game.RecipePatch
	slots := []**int{&patch.Lemons, &patch.Sugar, &patch.Ice}
	positional := 0
	var named **int
	for _, arg := range args {
		if kind, ok := a.recipeIngredient(arg); ok {
			switch kind {
			case game.SupplyLemons:
				named = &patch.Lemons
			case game.SupplySugar:
				named = &patch.Sugar
			default:
				named = &patch.Ice
			}
			continue
		}
		n, err := strconv.Atoi(arg)
		if err != nil {
			return game.RecipePatch{}, fmt.Sprintf("I don't understand %q in the recipe. Try recipe 4 3 3.", arg)
		}
		v := n
		if named != nil {
			*named = &v
			named = nil
			continue
		}
		if positional >= len(slots) {
			return game.RecipePatch{}, "A recipe has three quantities: lemons, sugar and ice."
		}
		*slots[positional] = &v
		positional++
	}
	if patch.Lemons == nil && patch.Sugar == nil && patch.Ice == nil {
		return game.RecipePatch{}, "Give the recipe as lemons sugar ice, e.g. recipe 4 3 3."
	}
	return patch, ""
}

func (a *App) recipeIngredient(token string) (game.SupplyKind, bool) {
	for _, def := range game.SupplyCatalog() {
		if def.Kind == game.SupplyCups {
			continue
		}
		if token == string(def.Kind) || token == def.Unit || token == def.Unit+"s" {
			return def.Kind, true
		}
	}
	return "", false
}

func (a *App) executePrice(intent parser.Intent) CommandResult {
	if res, ok := a.requirePlanning("change the price"); !ok {
		return res
	}
	if intent.Quantity == nil || intent.Quantity.N < 0 {
		return rejected("Say a price, e.g. price 1.25.")
	}
	a.engine.SetPrice(intent.Quantity.Amount.InexactFloat64())
	return handled(fmt.Sprintf("Price set to $%.2f per cup.", a.engine.State().Price))
}

func (a *App) executeUpgrade(intent parser.Intent) CommandResult {
	if len(intent.Args) == 0 {
		return rejected("Upgrade what? Type shop to see what is on offer.")
	}
	id, ok := a.upgradeByName[intent.Args[0]]
	if !ok {
		return rejected(fmt.Sprintf("There is no upgrade called %q.", intent.Args[0]))
	}
	def, _ := game.GetUpgrade(id)
	if res, ok := a.requirePlanning("buy upgrades"); !ok {
		return res
	}
	if a.engine.PurchaseUpgrade(id) {
		return handled(fmt.Sprintf("Installed %s for $%.2f. Cash $%.2f.", def.Name, def.Cost, a.engine.State().Cash))
	}
	state := a.engine.State()
	switch {
	case state.Upgrades[id]:
		return rejected(fmt.Sprintf("You already own %s.", def.Name))
	case len(game.MissingPrerequisites(id, state.Upgrades)) > 0:
		return rejected(fmt.Sprintf("%s needs %s first.", def.Name, upgradeNames(game.MissingPrerequisites(id, state.Upgrades))))
	default:
		return rejected(fmt.Sprintf("%s costs $%.2f and you have $%.2f.", def.Name, def.Cost, state.Cash))
	}
}

func (a *App) executeStart() CommandResult {
	if res, ok := a.requirePlanning("open the stand"); !ok {
		return res
	}
	result, _ := a.engine.BeginDay()
	a.log.Info("day simulated",
		"day", result.Day,
		"weather", result.Weather,
		"demand", result.Demand,
		"sold", result.UnitsSold,
		"profit", result.Profit,
		"phase", a.engine.Phase(),
	)
	return handled(resultText(result) + phaseNotice(a.engine))
}

func (a *App) executeNext() CommandResult {
	switch a.engine.Phase() {
	case game.PhaseBailout:
		return rejected("You are out of money. Type bailout to take the one-time rescue, or new to start over.")
	case game.PhaseVictory:
		return rejected("You reached the goal! Type continue for free play or new to start over.")
	case game.PhaseGameOver:
		return rejected("The stand is closed for good. Type new to start over.")
	}
	if !a.engine.AdvanceDay() {
		return rejected("Open the stand with start before moving to the next day.")
	}
	return handled(statusText(a.engine))
}

func (a *App) executeBailout() CommandResult {
	if !a.engine.ClaimBailout() {
		return rejected("No bailout is on offer right now.")
	}
	a.log.Info("bailout claimed", "day", a.engine.State().Day, "amount", a.engine.Balance().BailoutAmount)
	return handled(fmt.Sprintf("A kind neighbour lends you $%.2f.\n%s", a.engine.Balance().BailoutAmount, statusText(a.engine)))
}

func (a *App) executeHistory(intent parser.Intent) CommandResult {
	days := defaultHistoryDays
	if len(intent.Args) > 0 {
		n, err := strconv.Atoi(intent.Args[0])
		if err != nil || n < 1 {
			return rejected("Say how many days, e.g. history 5.")
		}
		days = n
	}
	return handled(historyText(a.engine.State().Stats.History, days))
}

func (a *App) executeSave(ctx context.Context) CommandResult {
	if a.cfg.Saves == nil {
		return rejected("Saving is not configured.")
	}
	id, err := a.cfg.Saves.Save(ctx, a.slot, a.engine.State())
	if err != nil {
		a.log.Error("save failed", "slot", a.slot, "err", err)
		return rejected("Save failed: " + err.Error())
	}
	a.slot = id
	a.rememberSlot(id)
	a.log.Info("game saved", "slot", id, "day", a.engine.State().Day)
	return handled("Saved to slot " + id)
}

func (a *App) executeLoad(ctx context.Context, intent parser.Intent) CommandResult {
	if a.cfg.Saves == nil {
		return rejected("Loading is not configured.")
	}
	if len(intent.Args) == 0 {
		return rejected("Load which slot? Type saves to list them.")
	}
	if err := a.loadSlot(ctx, intent.Args[0]); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return rejected("No save slot " + intent.Args[0] + ".")
		}
		return rejected("Load failed: " + err.Error())
	}
	return handled("Loaded slot " + a.slot + ".\n" + statusText(a.engine))
}

func (a *App) loadSlot(ctx context.Context, id string) error {
	if a.cfg.Saves == nil {
		return errors.New("no save store configured")
	}
	state, err := a.cfg.Saves.Load(ctx, id)
	if err != nil {
		return fmt.Errorf("load slot %s: %w", id, err)
	}
	if err := a.engine.LoadState(state); err != nil {
		return fmt.Errorf("load slot %s: %w", id, err)
	}
	a.slot = id
	a.rememberSlot(id)
	a.log.Info("game loaded", "slot", id, "day", state.Day)
	return nil
}

func (a *App) executeSaves(ctx context.Context) CommandResult {
	if a.cfg.Saves == nil {
		return rejected("Saving is not configured.")
	}
	slots, err := a.cfg.Saves.List(ctx)
	if err != nil {
		return rejected("Listing saves failed: " + err.Error())
	}
	a.knownSlots = a.knownSlots[:0]
	for _, s := range slots {
		a.knownSlots = append(a.knownSlots, s.ID)
	}
	return handled(savesText(slots, a.slot))
}

func (a *App) rememberSlot(id string) {
	for _, known := range a.knownSlots {
		if known == id {
			return
		}
	}
	a.knownSlots = append(a.knownSlots, id)
}

func upgradeNames(ids []game.UpgradeID) string {
	names := make([]string, 0, len(ids))
	for _, id := range ids {
		if def, ok := game.GetUpgrade(id); ok {
			names = append(names, def.Name)
			continue
		}
		names = append(names, string(id))
	}
	return strings.Join(names, ", ")
}
