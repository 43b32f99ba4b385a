package parser

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

var multiSpaceRE = regexp.MustCompile(`\s+`)

func isWordRune(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

// normaliseInput lower-cases raw and reduces it to words separated by single
// spaces. A dot survives in front of a digit ("1.25") and a hyphen survives
// between two word characters (save ids).
func normaliseInput(raw string) string {
	runes := []rune(strings.TrimSpace(strings.ToLower(raw)))
	if len(runes) == 0 {
		return ""
	}
	var b strings.Builder
	lastSpace := false
	for i, r := range runes {
		next := rune(0)
		if i+1 < len(runes) {
			next = runes[i+1]
		}
		prev := rune(0)
		if i > 0 {
			prev = runes[i-1]
		}
		switch {
		case isWordRune(r):
			b.WriteRune(r)
			lastSpace = false
		case r == '.' && isDigit(next):
			b.WriteRune(r)
			lastSpace = false
		case r == '-' && isWordRune(prev) && isWordRune(next):
			b.WriteRune(r)
			lastSpace = false
		case r == ' ' || r == '\t' || r == '\n' || r == '\r' || r == '_' || r == '/' || r == ',' || r == '-':
			if !lastSpace {
				b.WriteByte(' ')
			}
			lastSpace = true
		}
	}
	return strings.TrimSpace(multiSpaceRE.ReplaceAllString(b.String(), " "))
}

// Normalise is the form entity names take in parsed intents.
func Normalise(raw string) string {
	return normaliseInput(raw)
}

func tokenise(normalised string) []string {
	if strings.TrimSpace(normalised) == "" {
		return nil
	}
	return strings.Fields(normalised)
}

// fillerWords are dropped from argument lists: "buy 3 packs of lemons".
var fillerWords = map[string]bool{
	"a": true, "an": true, "the": true, "of": true, "to": true, "some": true, "more": true,
	"pack": true, "packs": true, "box": true, "boxes": true, "bag": true, "bags": true, "units": true,
}

func dropFiller(tokens []string) []string {
	out := make([]string, 0, len(tokens))
	for _, token := range tokens {
		if fillerWords[token] {
			continue
		}
		out = append(out, token)
	}
	return out
}

func parseQuantityToken(token string) *Quantity {
	token = strings.TrimSpace(strings.ToLower(token))
	if token == "" {
		return nil
	}
	if token == "all" {
		return &Quantity{Raw: token, N: -1, Unit: "all"}
	}
	if n, err := strconv.Atoi(token); err == nil && n >= 0 {
		return &Quantity{Raw: token, N: n, Amount: decimal.NewFromInt(int64(n)), Unit: "count"}
	}
	for _, suffix := range []string{"packs", "pack", "x"} {
		if !strings.HasSuffix(token, suffix) {
			continue
		}
		if v, err := strconv.Atoi(strings.TrimSuffix(token, suffix)); err == nil && v >= 0 {
			return &Quantity{Raw: token, N: v, Amount: decimal.NewFromInt(int64(v)), Unit: "count"}
		}
	}
	if strings.Contains(token, ".") {
		if d, err := decimal.NewFromString(token); err == nil && !d.IsNegative() {
			return &Quantity{Raw: token, N: int(d.IntPart()), Amount: d, Unit: "money"}
		}
	}
	return nil
}

func isPronoun(token string) bool {
	switch strings.ToLower(strings.TrimSpace(token)) {
	case "it", "that", "them", "this", "those":
		return true
	default:
		return false
	}
}
