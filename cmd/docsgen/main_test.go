package main

import (
	"strings"
	"testing"

	"github.com/appengine-ltd/lemonade-stand/internal/game"
)

func TestSuppliesDocListsEveryKind(t *testing.T) {
	doc := generateSuppliesDoc()
	for _, kind := range game.AllSupplyKinds() {
		if !strings.Contains(doc.Content, "| "+string(kind)+" |") {
			t.Fatalf("expected supplies doc to contain %s", kind)
		}
	}
	if !strings.Contains(doc.Content, "| cups | Cups | cup | 25 | $1.00 | $0.040 | never | no |") {
		t.Fatalf("unexpected cups row:\n%s", doc.Content)
	}
}

func TestWeatherDocChances(t *testing.T) {
	doc := generateWeatherDoc()
	if !strings.Contains(doc.Content, "| warm | Warm | x1 | 30% |") {
		t.Fatalf("expected warm row with 30%% chance:\n%s", doc.Content)
	}
}

func TestUpgradesDocHasEveryTier(t *testing.T) {
	doc := generateUpgradesDoc()
	for tier := 1; tier <= game.TierCount; tier++ {
		if !strings.Contains(doc.Content, "## Tier "+string(rune('0'+tier))+": "+game.TierName(tier)) {
			t.Fatalf("missing tier %d heading", tier)
		}
	}
	rows := strings.Count(doc.Content, "\n| ") - 2*game.TierCount
	if rows != len(game.UpgradeCatalog()) {
		t.Fatalf("expected %d upgrade rows, got %d", len(game.UpgradeCatalog()), rows)
	}
}

func TestEventsDocOrdersByTiming(t *testing.T) {
	doc := generateEventsDoc()
	planned := strings.Index(doc.Content, "| planned |")
	surprise := strings.Index(doc.Content, "| surprise |")
	complaint := strings.Index(doc.Content, "| complaint |")
	if planned < 0 || surprise < planned || complaint < surprise {
		t.Fatalf("expected planned, surprise, complaint order (%d, %d, %d)", planned, surprise, complaint)
	}
	if !strings.Contains(doc.Content, "lemon_cost 1.50-2.00") {
		t.Fatalf("expected rolled range for the lemon shortage")
	}
}

func TestFormatBundleSortsFields(t *testing.T) {
	got := formatBundle(game.EffectBundle{game.EffectRentPerDay: 2, game.EffectAwareness: 0.05})
	if got != "awareness=0.05, rent_per_day=2" {
		t.Fatalf("unexpected bundle format %q", got)
	}
	if formatBundle(nil) != "" {
		t.Fatalf("expected empty format for nil bundle")
	}
}

func TestCatalogIndexLinksFiles(t *testing.T) {
	index := generateCatalogIndex([]docFile{generateMilestonesDoc()})
	if !strings.Contains(index, "- [Milestones](./milestones.md)") {
		t.Fatalf("unexpected index:\n%s", index)
	}
}
