package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/appengine-ltd/lemonade-stand/internal/game"
)

type docFile struct {
	Name    string
	Title   string
	Content string
}

func main() {
	root := filepath.Join("docs", "reference", "catalogs")
	if err := os.MkdirAll(root, 0o755); err != nil {
		fatal(err)
	}

	files := []docFile{
		generateSuppliesDoc(),
		generateWeatherDoc(),
		generateUpgradesDoc(),
		generateEventsDoc(),
		generateMilestonesDoc(),
	}
	for _, f := range files {
		path := filepath.Join(root, f.Name)
		if err := os.WriteFile(path, []byte(f.Content), 0o644); err != nil {
			fatal(err)
		}
		fmt.Printf("wrote %s\n", path)
	}

	index := generateCatalogIndex(files)
	indexPath := filepath.Join(root, "README.md")
	if err := os.WriteFile(indexPath, []byte(index), 0o644); err != nil {
		fatal(err)
	}
	fmt.Printf("wrote %s\n", indexPath)
}

func generateCatalogIndex(files []docFile) string {
	var b strings.Builder
	b.WriteString("# Data Catalogs\n\n")
	b.WriteString("Generated from the current Go source using `go run ./cmd/docsgen`.\n\n")
	for _, f := range files {
		b.WriteString(fmt.Sprintf("- [%s](./%s)\n", f.Title, f.Name))
	}
	return b.String()
}

func generateSuppliesDoc() docFile {
	items := game.SupplyCatalog()

	var b strings.Builder
	b.WriteString("# Supplies\n\n")
	b.WriteString("Source: `internal/game/supplies.go` (`SupplyCatalog`).\n\n")
	b.WriteString("| Kind | Name | Unit | Pack Size | Pack Cost | Unit Cost | Shelf Life | Melts Overnight |\n")
	b.WriteString("| --- | --- | --- | --- | --- | --- | --- | --- |\n")
	for _, s := range items {
		shelf := "never"
		if s.ShelfLife > 0 {
			shelf = fmt.Sprintf("%d days", s.ShelfLife)
		}
		b.WriteString("| ")
		b.WriteString(escape(string(s.Kind)))
		b.WriteString(" | ")
		b.WriteString(escape(s.Name))
		b.WriteString(" | ")
		b.WriteString(escape(s.Unit))
		b.WriteString(" | ")
		b.WriteString(strconv.Itoa(s.PackSize))
		b.WriteString(" | ")
		b.WriteString(fmt.Sprintf("$%.2f", s.PackCost))
		b.WriteString(" | ")
		b.WriteString(fmt.Sprintf("$%.3f", s.UnitCost()))
		b.WriteString(" | ")
		b.WriteString(shelf)
		b.WriteString(" | ")
		b.WriteString(yesNo(s.MeltsOvernight))
		b.WriteString(" |\n")
	}

	return docFile{Name: "supplies.md", Title: "Supplies", Content: b.String()}
}

func generateWeatherDoc() docFile {
	items := game.WeatherCatalog()
	totalWeight := 0
	for _, w := range items {
		totalWeight += w.RollWeight
	}

	var b strings.Builder
	b.WriteString("# Weather\n\n")
	b.WriteString("Source: `internal/game/weather.go` (`WeatherCatalog`).\n\n")
	b.WriteString("| Kind | Label | Demand | Roll Chance | Ideal Lemons | Ideal Sugar | Ideal Ice |\n")
	b.WriteString("| --- | --- | --- | --- | --- | --- | --- |\n")
	for _, w := range items {
		chance := 0.0
		if totalWeight > 0 {
			chance = float64(w.RollWeight) * 100 / float64(totalWeight)
		}
		b.WriteString("| ")
		b.WriteString(escape(string(w.Kind)))
		b.WriteString(" | ")
		b.WriteString(escape(w.Label))
		b.WriteString(" | ")
		b.WriteString("x" + formatFloat(w.DemandMultiplier))
		b.WriteString(" | ")
		b.WriteString(fmt.Sprintf("%.0f%%", chance))
		b.WriteString(" | ")
		b.WriteString(formatRange(w.IdealLemons))
		b.WriteString(" | ")
		b.WriteString(formatRange(w.IdealSugar))
		b.WriteString(" | ")
		b.WriteString(formatRange(w.IdealIce))
		b.WriteString(" |\n")
	}

	return docFile{Name: "weather.md", Title: "Weather", Content: b.String()}
}

func generateUpgradesDoc() docFile {
	items := game.UpgradeCatalog()

	var b strings.Builder
	b.WriteString("# Upgrades\n\n")
	b.WriteString("Source: `internal/game/upgrades_catalog.go` (`UpgradeCatalog`).\n\n")
	b.WriteString(fmt.Sprintf("Total upgrades: **%d** across %d tiers.\n\n", len(items), game.TierCount))
	for tier := 1; tier <= game.TierCount; tier++ {
		b.WriteString(fmt.Sprintf("## Tier %d: %s\n\n", tier, game.TierName(tier)))
		b.WriteString("| ID | Name | Category | Cost | Requires | Effects |\n")
		b.WriteString("| --- | --- | --- | --- | --- | --- |\n")
		for _, u := range items {
			if u.Tier != tier {
				continue
			}
			b.WriteString("| ")
			b.WriteString(escape(string(u.ID)))
			b.WriteString(" | ")
			b.WriteString(escape(u.Name))
			b.WriteString(" | ")
			b.WriteString(escape(string(u.Category)))
			b.WriteString(" | ")
			b.WriteString(fmt.Sprintf("$%.2f", u.Cost))
			b.WriteString(" | ")
			b.WriteString(escape(formatUpgradeIDs(u.Requires)))
			b.WriteString(" | ")
			b.WriteString(escape(formatBundle(u.Effects)))
			b.WriteString(" |\n")
		}
		b.WriteString("\n")
	}

	return docFile{Name: "upgrades.md", Title: "Upgrades", Content: b.String()}
}

func generateEventsDoc() docFile {
	items := game.EventCatalog()
	timingRank := map[game.EventTiming]int{
		game.TimingPlanned:   0,
		game.TimingSurprise:  1,
		game.TimingComplaint: 2,
	}
	sort.SliceStable(items, func(i, j int) bool {
		return timingRank[items[i].Timing] < timingRank[items[j].Timing]
	})

	var b strings.Builder
	b.WriteString("# Events\n\n")
	b.WriteString("Source: `internal/game/events_catalog.go` (`EventCatalog`).\n\n")
	b.WriteString(fmt.Sprintf("Planned: **%d**, surprise: **%d**.\n\n", len(game.PlannedPool()), len(game.SurprisePool())))
	b.WriteString("| ID | Name | Timing | Fixed Effects | Rolled Ranges |\n")
	b.WriteString("| --- | --- | --- | --- | --- |\n")
	for _, e := range items {
		b.WriteString("| ")
		b.WriteString(escape(string(e.ID)))
		b.WriteString(" | ")
		b.WriteString(escape(e.Name))
		b.WriteString(" | ")
		b.WriteString(escape(string(e.Timing)))
		b.WriteString(" | ")
		b.WriteString(escape(formatBundle(e.Base)))
		b.WriteString(" | ")
		b.WriteString(escape(strings.Join(e.RandomRanges(), "; ")))
		b.WriteString(" |\n")
	}

	return docFile{Name: "events.md", Title: "Events", Content: b.String()}
}

func generateMilestonesDoc() docFile {
	items := game.MilestoneCatalog()

	var b strings.Builder
	b.WriteString("# Milestones\n\n")
	b.WriteString("Source: `internal/game/milestones_catalog.go` (`MilestoneCatalog`).\n\n")
	b.WriteString(fmt.Sprintf("Total milestones: **%d**.\n\n", len(items)))
	b.WriteString("| ID | Name | Category | Description |\n")
	b.WriteString("| --- | --- | --- | --- |\n")
	for _, m := range items {
		b.WriteString("| ")
		b.WriteString(escape(string(m.ID)))
		b.WriteString(" | ")
		b.WriteString(escape(m.Name))
		b.WriteString(" | ")
		b.WriteString(escape(string(m.Category)))
		b.WriteString(" | ")
		b.WriteString(escape(m.Description))
		b.WriteString(" |\n")
	}

	return docFile{Name: "milestones.md", Title: "Milestones", Content: b.String()}
}

func formatRange(r game.IdealRange) string {
	if r.Lo == r.Hi {
		return strconv.Itoa(r.Lo)
	}
	return fmt.Sprintf("%d-%d", r.Lo, r.Hi)
}

func formatUpgradeIDs(ids []game.UpgradeID) string {
	parts := make([]string, 0, len(ids))
	for _, id := range ids {
		parts = append(parts, string(id))
	}
	return strings.Join(parts, ", ")
}

// formatBundle lists the fields of fx in name order.
func formatBundle(fx game.EffectBundle) string {
	keys := make([]string, 0, len(fx))
	for field := range fx {
		keys = append(keys, string(field))
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+"="+formatFloat(fx[game.EffectField(k)]))
	}
	return strings.Join(parts, ", ")
}

func formatFloat(v float64) string {
	if v == 0 {
		return "0"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func escape(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return ""
	}
	v = strings.ReplaceAll(v, "|", "\\|")
	v = strings.ReplaceAll(v, "\n", "<br>")
	return v
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "error: %v\n", err)
	os.Exit(1)
}
