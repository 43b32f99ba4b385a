package game

import "fmt"

// Discovery summary:
// - Every supply kind keeps its own batch list ordered oldest first, so FIFO is a front drain.
// - Capacity is one shared pool across kinds: base capacity plus the upgrade capacity bonus.
// - Ice either melts wholesale overnight or, with a cooling bonus, ages like everything else.
type Batch struct {
	Amount      int `json:"amount"`
	AcquiredDay int `json:"acquired_day"`
}

// Stock is a per-kind unit count.
type Stock map[SupplyKind]int

func (s Stock) Total() int {
	total := 0
	for _, n := range s {
		total += n
	}
	return total
}

func (s Stock) IsEmpty() bool {
	for _, n := range s {
		if n > 0 {
			return false
		}
	}
	return true
}

// Inventory is the batch ledger. Totals are always derived from batches.
type Inventory struct {
	Batches map[SupplyKind][]Batch `json:"batches"`
}

func NewInventory() Inventory {
	inv := Inventory{Batches: make(map[SupplyKind][]Batch, len(supplyCatalog))}
	for _, kind := range AllSupplyKinds() {
		inv.Batches[kind] = []Batch{}
	}
	return inv
}

func (inv Inventory) Clone() Inventory {
	out := Inventory{Batches: make(map[SupplyKind][]Batch, len(inv.Batches))}
	for kind, batches := range inv.Batches {
		out.Batches[kind] = append([]Batch{}, batches...)
	}
	return out
}

func (inv *Inventory) ensure() {
	if inv.Batches == nil {
		inv.Batches = make(map[SupplyKind][]Batch, len(supplyCatalog))
	}
}

func (inv Inventory) Total(kind SupplyKind) int {
	total := 0
	for _, b := range inv.Batches[kind] {
		total += b.Amount
	}
	return total
}

func (inv Inventory) Stock() Stock {
	out := make(Stock, len(supplyCatalog))
	for _, kind := range AllSupplyKinds() {
		out[kind] = inv.Total(kind)
	}
	return out
}

// Units is the total across every kind, the figure capacity is checked against.
func (inv Inventory) Units() int {
	return inv.Stock().Total()
}

func EffectiveCapacity(b Balance, fx ResolvedEffects) int {
	return b.BaseCapacity + int(fx.CapacityBonus)
}

// Add stores up to units of kind as a new batch dated day and returns how
// many fit under capacity. Units that do not fit are dropped.
func (inv *Inventory) Add(kind SupplyKind, units, day, capacity int) int {
	if units <= 0 {
		return 0
	}
	kept := min(units, capacity-inv.Units())
	if kept <= 0 {
		return 0
	}
	inv.ensure()
	inv.Batches[kind] = append(inv.Batches[kind], Batch{Amount: kept, AcquiredDay: day})
	return kept
}

// Drain removes up to units of kind from the oldest batches first and
// returns how many were removed.
func (inv *Inventory) Drain(kind SupplyKind, units int) int {
	if units <= 0 {
		return 0
	}
	inv.ensure()
	remaining := units
	batches := inv.Batches[kind]
	filtered := make([]Batch, 0, len(batches))
	for _, b := range batches {
		if remaining > 0 {
			take := min(b.Amount, remaining)
			b.Amount -= take
			remaining -= take
		}
		if b.Amount <= 0 {
			continue
		}
		filtered = append(filtered, b)
	}
	inv.Batches[kind] = filtered
	return units - remaining
}

// Clear empties one kind and returns the units removed.
func (inv *Inventory) Clear(kind SupplyKind) int {
	inv.ensure()
	n := inv.Total(kind)
	inv.Batches[kind] = []Batch{}
	return n
}

// OvernightLoss reports what the ledger lost between two days.
type OvernightLoss struct {
	Melted  int   `json:"melted"`
	Spoiled Stock `json:"spoiled"`
}

// Expire runs the overnight pass for day. Ice melts entirely unless a shelf
// bonus keeps it. Other batches are removed once day - acquired reaches their
// effective shelf life.
func (inv *Inventory) Expire(day int, fx ResolvedEffects) OvernightLoss {
	loss := OvernightLoss{Spoiled: Stock{}}
	for _, kind := range AllSupplyKinds() {
		def := supplyCatalog[kind]
		loss.Spoiled[kind] = 0
		bonus := fx.ShelfBonus(kind)
		if def.MeltsOvernight && bonus <= 0 {
			loss.Melted = inv.Clear(kind)
			continue
		}
		if def.ShelfLife <= 0 {
			continue
		}
		life := def.ShelfLife + bonus
		kept := make([]Batch, 0, len(inv.Batches[kind]))
		for _, b := range inv.Batches[kind] {
			if day-b.AcquiredDay >= life {
				loss.Spoiled[kind] += b.Amount
				continue
			}
			kept = append(kept, b)
		}
		inv.Batches[kind] = kept
	}
	return loss
}

// validate reports the first broken ledger invariant.
func (inv Inventory) validate(capacity int) error {
	for kind, batches := range inv.Batches {
		if _, ok := supplyCatalog[kind]; !ok {
			return fmt.Errorf("unknown supply kind %q", kind)
		}
		prev := 0
		for i, b := range batches {
			if b.Amount <= 0 {
				return fmt.Errorf("%s batch %d has non-positive amount %d", kind, i, b.Amount)
			}
			if b.AcquiredDay < prev {
				return fmt.Errorf("%s batches out of order at %d", kind, i)
			}
			prev = b.AcquiredDay
		}
	}
	if units := inv.Units(); units > capacity {
		return fmt.Errorf("inventory holds %d units over capacity %d", units, capacity)
	}
	return nil
}

func (inv Inventory) mustValid(capacity int) {
	if err := inv.validate(capacity); err != nil {
		panic("game: inventory invariant: " + err.Error())
	}
}
