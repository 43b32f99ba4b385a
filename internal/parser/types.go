package parser

import "github.com/shopspring/decimal"

type IntentKind int

const (
	Command IntentKind = iota
	Query
	Help
	Unknown
)

// Quantity is the first numeric token of a command. Counts also carry their
// value in Amount so "price 2" and "price 2.00" read the same.
type Quantity struct {
	Raw    string
	N      int
	Amount decimal.Decimal
	Unit   string
}

type Intent struct {
	Raw        string
	Normalised string
	Kind       IntentKind
	Verb       string
	Args       []string
	Quantity   *Quantity
	Confidence float64
	Clarify    *ClarifyQuestion
}

type ClarifyQuestion struct {
	Prompt  string
	Options []Intent
}

// ParseContext is the vocabulary the current run can act on. Synonyms map an
// alternative spelling (a unit name, an upgrade id) to its canonical entry.
type ParseContext struct {
	Supplies   []string
	Upgrades   []string
	Saves      []string
	Synonyms   map[string]string
	LastEntity string
}

type CommandDef struct {
	Canonical  string
	Aliases    []string
	MinArgs    int
	MaxArgs    int
	HandlerKey string
	// NeedsAmount rejects the command when no number was given.
	NeedsAmount bool
	// KeepNumbers leaves numeric tokens in Args instead of lifting the first
	// one into Quantity.
	KeepNumbers bool
}
