package game

import (
	"math"

	"github.com/shopspring/decimal"
)

type SupplyKind string

const (
	SupplyLemons SupplyKind = "lemons"
	SupplySugar  SupplyKind = "sugar"
	SupplyIce    SupplyKind = "ice"
	SupplyCups   SupplyKind = "cups"
)

type SupplyDef struct {
	Kind     SupplyKind
	Name     string
	Unit     string
	PackSize int
	PackCost float64
	// ShelfLife is in days; zero means the supply never spoils.
	ShelfLife      int
	MeltsOvernight bool
}

var supplyCatalog = map[SupplyKind]SupplyDef{
	SupplyLemons: {Kind: SupplyLemons, Name: "Lemons", Unit: "lemon", PackSize: 30, PackCost: 2.0, ShelfLife: 3},
	SupplySugar:  {Kind: SupplySugar, Name: "Sugar", Unit: "scoop", PackSize: 15, PackCost: 1.5, ShelfLife: 5},
	SupplyIce:    {Kind: SupplyIce, Name: "Ice", Unit: "cube", PackSize: 20, PackCost: 0.5, ShelfLife: 1, MeltsOvernight: true},
	SupplyCups:   {Kind: SupplyCups, Name: "Cups", Unit: "cup", PackSize: 25, PackCost: 1.0},
}

func AllSupplyKinds() []SupplyKind {
	return []SupplyKind{
		SupplyLemons,
		SupplySugar,
		SupplyIce,
		SupplyCups,
	}
}

func SupplyCatalog() []SupplyDef {
	out := make([]SupplyDef, 0, len(supplyCatalog))
	for _, kind := range AllSupplyKinds() {
		out = append(out, supplyCatalog[kind])
	}
	return out
}

func GetSupply(kind SupplyKind) (SupplyDef, bool) {
	def, ok := supplyCatalog[kind]
	return def, ok
}

func (d SupplyDef) UnitCost() float64 {
	if d.PackSize <= 0 {
		return 0
	}
	return d.PackCost / float64(d.PackSize)
}

// Ingredients are the supplies a recipe portions per cup. Cups are always
// one per serving.
func Ingredients() []SupplyKind {
	return []SupplyKind{SupplyLemons, SupplySugar, SupplyIce}
}

func roundMoney(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		panic("game: non-finite money value")
	}
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}

func addMoney(a, b float64) float64 {
	return decimal.NewFromFloat(a).Add(decimal.NewFromFloat(b)).Round(2).InexactFloat64()
}
