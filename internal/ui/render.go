package ui

import (
	"fmt"
	"strings"

	"github.com/appengine-ltd/lemonade-stand/internal/game"
	"github.com/appengine-ltd/lemonade-stand/internal/store"
)

func helpText() string {
	lines := []string{
		"Commands:",
		"  status                      cash, stock, weather and today's plan",
		"  buy <supply> [packs]        lemons, sugar, ice or cups",
		"  discard <supply> [units]    throw stock away, oldest first",
		"  recipe <lemons> <sugar> <ice>  or recipe ice 2",
		"  price <amount>              e.g. price 1.25",
		"  upgrade <name>              buy an upgrade",
		"  shop                        upgrades you can buy now",
		"  start                       open the stand for the day",
		"  next                        move on to the next morning",
		"  continue                    keep playing after reaching the goal",
		"  bailout                     take the one-time rescue loan",
		"  history [days]              recent days",
		"  milestones                  achievements so far",
		"  save | load <slot> | saves  save slots",
		"  new                         start over",
		"  quit",
	}
	return strings.Join(lines, "\n")
}

func statusText(e *game.Engine) string {
	s := e.State()
	b := e.Balance()
	var out strings.Builder

	fmt.Fprintf(&out, "Day %d (%s) | Cash $%.2f | Reputation %d | Revenue $%.2f of $%.2f\n",
		s.Day, s.Phase, s.Cash, s.Reputation, s.Stats.LifetimeRevenue, b.VictoryRevenue)
	fmt.Fprintf(&out, "Weather: %s", weatherLabel(s.Weather))
	if forecast, ok := e.Forecast(); ok {
		fmt.Fprintf(&out, " | Tomorrow: %s", weatherLabel(forecast))
	}
	if outlook, ok := e.ExtendedForecast(); ok && len(outlook) > 0 {
		labels := make([]string, 0, len(outlook))
		for _, w := range outlook {
			labels = append(labels, weatherLabel(w))
		}
		fmt.Fprintf(&out, " | Then: %s", strings.Join(labels, ", "))
	}
	out.WriteString("\n")
	if s.PlannedEvent != nil {
		fmt.Fprintf(&out, "Today: %s. %s\n", s.PlannedEvent.Name, s.PlannedEvent.Description)
	}

	fmt.Fprintf(&out, "Recipe: %d lemons, %d sugar, %d ice | Price $%.2f | Cost per cup $%.2f",
		s.Recipe.Lemons, s.Recipe.Sugar, s.Recipe.Ice, s.Price, e.CostPerCup())
	if margin, ok := e.ProfitPerCup(); ok {
		fmt.Fprintf(&out, " | Margin $%.2f", margin)
	}
	out.WriteString("\n")
	if hints, ok := e.RecipeHints(); ok {
		fmt.Fprintf(&out, "Customers today like: lemons %s, sugar %s, ice %s\n",
			rangeText(hints.Lemons), rangeText(hints.Sugar), rangeText(hints.Ice))
	}

	stock := s.Inventory.Stock()
	capacity := e.Capacity()
	parts := make([]string, 0, len(game.AllSupplyKinds()))
	prices := make([]string, 0, len(game.AllSupplyKinds()))
	for _, def := range game.SupplyCatalog() {
		parts = append(parts, fmt.Sprintf("%s %d", def.Kind, stock[def.Kind]))
		prices = append(prices, fmt.Sprintf("%s $%.2f/%d", def.Kind, e.SupplyQuote(def.Kind, 1), def.PackSize))
	}
	fmt.Fprintf(&out, "Stock: %s | Storage %d/%d\n", strings.Join(parts, ", "), capacity.Used, capacity.Capacity)
	fmt.Fprintf(&out, "Packs: %s\n", strings.Join(prices, ", "))
	fmt.Fprintf(&out, "Cups you can make: %d | Expected customers: %d", e.Makeable(), e.ProjectedDemand())
	return out.String()
}

func resultText(r game.DayResult) string {
	var out strings.Builder
	fmt.Fprintf(&out, "Day %d, %s\n", r.Day, weatherLabel(r.Weather))
	for _, ev := range r.Events() {
		fmt.Fprintf(&out, "  * %s: %s\n", ev.Name, ev.Description)
	}
	fmt.Fprintf(&out, "Customers %d | Cups made %d | Sold %d at $%.2f\n", r.Demand, r.Makeable, r.UnitsSold, r.Price)
	fmt.Fprintf(&out, "Revenue $%.2f | Supplies used $%.2f", r.Revenue, r.CostOfGoods)
	if r.Rent > 0 {
		fmt.Fprintf(&out, " | Rent $%.2f", r.Rent)
	}
	if r.PassiveIncome > 0 {
		fmt.Fprintf(&out, " | Side income $%.2f", r.PassiveIncome)
	}
	fmt.Fprintf(&out, " | Profit $%.2f\n", r.Profit)
	fmt.Fprintf(&out, "Satisfaction %d%% | Reputation %d (%+d) | Cash $%.2f", r.Satisfaction, r.Reputation, r.ReputationDelta, r.Cash)

	losses := make([]string, 0, 4)
	if r.IceMelted > 0 {
		losses = append(losses, fmt.Sprintf("%d ice melted", r.IceMelted))
	}
	if r.IceDestroyed > 0 {
		losses = append(losses, fmt.Sprintf("%d ice destroyed", r.IceDestroyed))
	}
	for _, kind := range game.AllSupplyKinds() {
		if n := r.Spoiled[kind]; n > 0 {
			losses = append(losses, fmt.Sprintf("%d %s spoiled", n, kind))
		}
	}
	if len(losses) > 0 {
		fmt.Fprintf(&out, "\nOvernight: %s", strings.Join(losses, ", "))
	}
	for _, id := range r.MilestonesUnlocked {
		if def, ok := game.GetMilestone(id); ok {
			fmt.Fprintf(&out, "\nMilestone unlocked: %s! %s", def.Name, def.Description)
		}
	}
	return out.String()
}

func phaseNotice(e *game.Engine) string {
	switch e.Phase() {
	case game.PhaseVictory:
		return "\nYou reached the revenue goal! Type continue for free play or new to start over."
	case game.PhaseBailout:
		return fmt.Sprintf("\nYou are broke. Type bailout to borrow $%.2f once.", e.Balance().BailoutAmount)
	case game.PhaseGameOver:
		return "\nGame over: the stand is out of money. Type new to start over."
	default:
		return ""
	}
}

func shopText(e *game.Engine) string {
	var out strings.Builder
	out.WriteString("Tiers:")
	for _, t := range e.TierProgress() {
		fmt.Fprintf(&out, " %s %d/%d", t.Name, t.Owned, t.Total)
		if t.Complete() {
			out.WriteString(" (complete)")
		}
		out.WriteString(";")
	}
	out.WriteString("\n")

	shown := 0
	for _, offer := range e.UpgradeOffers() {
		if offer.Status != game.UpgradeAffordable && offer.Status != game.UpgradeTooCostly {
			continue
		}
		mark := " "
		if offer.Status == game.UpgradeAffordable {
			mark = "*"
		}
		fmt.Fprintf(&out, "%s %-28s $%8.2f  %s\n", mark, offer.Upgrade.Name, offer.Upgrade.Cost, offer.Upgrade.Description)
		shown++
	}
	if shown == 0 {
		out.WriteString("Nothing new on offer.\n")
	} else {
		out.WriteString("* = affordable now")
	}
	return strings.TrimRight(out.String(), "\n")
}

func historyText(history []game.DayResult, days int) string {
	if len(history) == 0 {
		return "No days played yet."
	}
	start := max(0, len(history)-days)
	var out strings.Builder
	out.WriteString("Day  Weather  Price  Sold/Demand  Revenue   Profit  Rep")
	for _, r := range history[start:] {
		fmt.Fprintf(&out, "\n%3d  %-7s  %5.2f  %4d/%-6d  %7.2f  %7.2f  %3d",
			r.Day, r.Weather, r.Price, r.UnitsSold, r.Demand, r.Revenue, r.Profit, r.Reputation)
	}
	return out.String()
}

func milestonesText(s game.GameState) string {
	achieved := s.AchievedMilestones()
	total := len(game.MilestoneCatalog())
	if len(achieved) == 0 {
		return fmt.Sprintf("No milestones yet (0/%d).", total)
	}
	var out strings.Builder
	fmt.Fprintf(&out, "Milestones %d/%d:", len(achieved), total)
	for _, id := range achieved {
		def, _ := game.GetMilestone(id)
		fmt.Fprintf(&out, "\n  %s: %s", def.Name, def.Description)
	}
	return out.String()
}

func savesText(slots []store.Slot, current string) string {
	if len(slots) == 0 {
		return "No saves yet. Type save to create one."
	}
	var out strings.Builder
	out.WriteString("Saves:")
	for _, s := range slots {
		mark := " "
		if s.ID == current {
			mark = "*"
		}
		fmt.Fprintf(&out, "\n%s %s  day %d  %s  cash $%.2f  rep %d  revenue $%.2f  %s",
			mark, s.ID, s.Day, s.Phase, s.Cash, s.Reputation, s.LifetimeRevenue, s.UpdatedAt.Format("2006-01-02 15:04"))
	}
	return out.String()
}

func weatherLabel(kind game.WeatherKind) string {
	if def, ok := game.GetWeather(kind); ok {
		return def.Label
	}
	return string(kind)
}

func rangeText(r game.IdealRange) string {
	if r.Lo == r.Hi {
		return fmt.Sprint(r.Lo)
	}
	return fmt.Sprintf("%d-%d", r.Lo, r.Hi)
}
