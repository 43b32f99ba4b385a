package parser

import (
	"fmt"
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
)

type Parser struct {
	registry *Registry
}

func New() *Parser {
	return &Parser{registry: DefaultRegistry()}
}

func (p *Parser) RegisterCommand(c CommandDef) {
	p.registry.RegisterCommand(c)
}

func (p *Parser) Parse(ctx ParseContext, raw string) Intent {
	intent := Intent{
		Raw:        raw,
		Normalised: normaliseInput(raw),
		Kind:       Unknown,
		Confidence: 0,
	}
	if intent.Normalised == "" {
		intent.Clarify = &ClarifyQuestion{Prompt: "Enter a command. Type help for the list."}
		return intent
	}

	tokens := tokenise(intent.Normalised)
	cmdMatch, alternates := p.registry.matchCommand(tokens)
	if cmdMatch.Canonical == "" || cmdMatch.Score < 0.5 {
		if inferred := inferFreeTextIntent(ctx, intent.Raw, intent.Normalised); inferred != nil {
			return *inferred
		}
		intent.Clarify = &ClarifyQuestion{
			Prompt: "I couldn't map that to a command. Try status, buy, recipe, price, upgrade, start, next or help.",
		}
		return intent
	}

	if len(alternates) > 0 && (cmdMatch.Score-alternates[0].Score) < 0.05 && alternates[0].Score > 0.65 {
		intent.Clarify = &ClarifyQuestion{
			Prompt: "Did you mean:",
			Options: []Intent{
				verbOption(raw, cmdMatch),
				verbOption(raw, alternates[0]),
			},
		}
		return intent
	}

	intent.Verb = cmdMatch.Canonical
	intent.Kind = commandKind(intent.Verb)
	intent.Confidence = clampScore(cmdMatch.Score)

	def, _ := p.registry.command(intent.Verb)
	argsTokens := tokens
	if cmdMatch.Consumed > 0 && len(tokens) >= cmdMatch.Consumed {
		argsTokens = tokens[cmdMatch.Consumed:]
	}
	argsTokens = dropFiller(argsTokens)
	if !def.KeepNumbers {
		argsTokens, intent.Quantity = splitQuantity(argsTokens)
	}

	if def.NeedsAmount && intent.Quantity == nil {
		intent.Clarify = &ClarifyQuestion{Prompt: fmt.Sprintf("%s needs an amount, e.g. %s 1.25", def.Canonical, def.Canonical)}
		intent.Confidence = 0.42
		return intent
	}

	resolvedArgs, clarify, argScore := p.resolveArgs(ctx, def, argsTokens)
	if clarify != nil {
		intent.Clarify = clarify
		intent.Confidence = 0.45
		return intent
	}
	intent.Args = resolvedArgs
	intent.Confidence = clampScore((intent.Confidence * 0.75) + (argScore * 0.25))

	if len(intent.Args) < def.MinArgs {
		if options := buildEntityOptions(ctx, def.Canonical, 5); len(options) > 0 {
			intent.Clarify = &ClarifyQuestion{
				Prompt:  fmt.Sprintf("What should I %s?", def.Canonical),
				Options: options,
			}
			intent.Confidence = 0.46
			return intent
		}
		intent.Clarify = &ClarifyQuestion{Prompt: fmt.Sprintf("%s needs at least %d argument(s).", def.Canonical, def.MinArgs)}
		intent.Confidence = 0.42
		return intent
	}

	if def.MaxArgs > 0 && len(intent.Args) > def.MaxArgs {
		intent.Args = append([]string(nil), intent.Args[:def.MaxArgs]...)
		intent.Confidence = clampScore(intent.Confidence - 0.05)
	}

	if intent.Confidence < 0.52 && intent.Clarify == nil {
		intent.Clarify = &ClarifyQuestion{Prompt: "I have low confidence in that parse. Please rephrase or pick a clearer command."}
	}
	return intent
}

func verbOption(raw string, c commandCandidate) Intent {
	return Intent{
		Raw:        raw,
		Normalised: c.Canonical,
		Kind:       commandKind(c.Canonical),
		Verb:       c.Canonical,
		Confidence: c.Score,
	}
}

func commandKind(verb string) IntentKind {
	switch verb {
	case "help":
		return Help
	case "status", "shop", "history", "milestones", "saves":
		return Query
	default:
		return Command
	}
}

func splitQuantity(tokens []string) ([]string, *Quantity) {
	if len(tokens) == 0 {
		return nil, nil
	}
	out := make([]string, 0, len(tokens))
	var q *Quantity
	for _, token := range tokens {
		if q == nil {
			if candidate := parseQuantityToken(token); candidate != nil {
				q = candidate
				continue
			}
		}
		out = append(out, token)
	}
	return out, q
}

// entityPool is the vocabulary the first argument of verb is resolved
// against, or nil when the verb takes free arguments.
func entityPool(ctx ParseContext, verb string) []string {
	switch verb {
	case "buy", "discard":
		return ctx.Supplies
	case "upgrade":
		return ctx.Upgrades
	case "load":
		return ctx.Saves
	default:
		return nil
	}
}

func (p *Parser) resolveArgs(ctx ParseContext, def CommandDef, args []string) ([]string, *ClarifyQuestion, float64) {
	if len(args) == 0 {
		return nil, nil, 0.9
	}
	pool := entityPool(ctx, def.Canonical)
	if len(pool) == 0 {
		return append([]string(nil), args...), nil, 0.9
	}

	if len(args) == 1 && isPronoun(args[0]) {
		if strings.TrimSpace(ctx.LastEntity) == "" {
			return nil, &ClarifyQuestion{Prompt: "What does that refer to?"}, 0.4
		}
		return []string{normaliseInput(ctx.LastEntity)}, nil, 0.82
	}

	// Entity names can span several words ("cardboard sign"), so the whole
	// argument list is one name.
	joined := strings.Join(args, " ")
	entity, confidence, tie := resolveEntity(joined, ctx, pool)
	if tie && len(entity) >= 2 {
		options := make([]Intent, 0, 2)
		for idx := 0; idx < 2; idx++ {
			options = append(options, Intent{
				Kind:       commandKind(def.Canonical),
				Verb:       def.Canonical,
				Args:       []string{entity[idx]},
				Confidence: confidence - float64(idx)*0.01,
			})
		}
		return nil, &ClarifyQuestion{
			Prompt:  fmt.Sprintf("Did you mean %s?", def.Canonical),
			Options: options,
		}, 0.52
	}
	if len(entity) == 1 {
		return []string{entity[0]}, nil, clampScore(confidence)
	}
	return nil, &ClarifyQuestion{
		Prompt:  fmt.Sprintf("I don't know %q. Options: %s.", joined, strings.Join(normaliseAll(pool), ", ")),
		Options: buildEntityOptions(ctx, def.Canonical, 5),
	}, 0.4
}

// resolveEntity matches token against pool and the synonyms pointing into
// it. Matches are reported by their canonical pool entry.
func resolveEntity(token string, ctx ParseContext, pool []string) ([]string, float64, bool) {
	n := normaliseInput(token)
	if n == "" {
		return nil, 0, false
	}
	canonical := make(map[string]string, len(pool)+len(ctx.Synonyms))
	for _, item := range pool {
		if v := normaliseInput(item); v != "" {
			canonical[v] = v
		}
	}
	for alias, target := range ctx.Synonyms {
		a, t := normaliseInput(alias), normaliseInput(target)
		if _, ok := canonical[t]; ok && a != "" {
			if _, taken := canonical[a]; !taken {
				canonical[a] = t
			}
		}
	}
	names := make([]string, 0, len(canonical))
	for name := range canonical {
		names = append(names, name)
	}
	sort.Strings(names)

	matches, score, tie := bestMatches(n, names)
	if len(matches) == 0 {
		return nil, 0, false
	}
	out := make([]string, 0, len(matches))
	seen := map[string]bool{}
	for _, m := range matches {
		c := canonical[m]
		if seen[c] {
			continue
		}
		seen[c] = true
		out = append(out, c)
	}
	return out, score, tie && len(out) > 1
}

func bestMatches(token string, all []string) ([]string, float64, bool) {
	if len(all) == 0 {
		return nil, 0, false
	}
	type scored struct {
		val   string
		score float64
	}

	results := make([]scored, 0, len(all))
	for _, cand := range all {
		score := 0.0
		switch {
		case token == cand:
			score = 1.0
		case strings.HasPrefix(cand, token) && len(token) >= 2:
			score = 0.9
		default:
			dist := levenshtein.ComputeDistance(token, cand)
			if dist > levenshteinLimit(len(cand)) {
				continue
			}
			score = 0.72 - (0.08 * float64(dist))
		}
		results = append(results, scored{val: cand, score: clampScore(score)})
	}
	if len(results) == 0 {
		return nil, 0, false
	}
	sort.SliceStable(results, func(i, j int) bool {
		if results[i].score == results[j].score {
			return results[i].val < results[j].val
		}
		return results[i].score > results[j].score
	})

	best := results[0]
	tie := len(results) > 1 && (best.score-results[1].score) < 0.05 && results[1].score > 0.6
	if tie {
		return []string{best.val, results[1].val}, best.score, true
	}
	return []string{best.val}, best.score, false
}

func buildEntityOptions(ctx ParseContext, verb string, maxOptions int) []Intent {
	seen := map[string]bool{}
	options := make([]Intent, 0, maxOptions)
	for _, entity := range entityPool(ctx, verb) {
		n := normaliseInput(entity)
		if n == "" || seen[n] {
			continue
		}
		seen[n] = true
		options = append(options, Intent{
			Kind:       commandKind(verb),
			Verb:       verb,
			Args:       []string{n},
			Confidence: 0.88,
		})
		if len(options) >= maxOptions {
			break
		}
	}
	return options
}

func inferFreeTextIntent(ctx ParseContext, raw string, normalised string) *Intent {
	n := normalised
	makeIntent := func(kind IntentKind, verb string, args []string, confidence float64) *Intent {
		return &Intent{
			Raw:        raw,
			Normalised: normalised,
			Kind:       kind,
			Verb:       verb,
			Args:       args,
			Confidence: clampScore(confidence),
		}
	}

	if containsAnyPhrase(n, "how much money", "how much cash", "what do i have", "whats in stock", "how is business") {
		return makeIntent(Query, "status", nil, 0.9)
	}
	if containsAnyPhrase(n, "what can i buy", "what upgrades", "show upgrades") {
		return makeIntent(Query, "shop", nil, 0.88)
	}
	if containsAnyPhrase(n, "open up", "lets sell", "start selling", "open for business") {
		return makeIntent(Command, "start", nil, 0.86)
	}
	if containsAnyPhrase(n, "go to bed", "call it a day", "end the day", "sleep") {
		return makeIntent(Command, "next", nil, 0.84)
	}
	if containsAnyPhrase(n, "i give up", "goodbye", "good bye") {
		return makeIntent(Command, "quit", nil, 0.8)
	}

	// "need lemons", "running low on cups": a restock request for one supply.
	if containsAnyPhrase(n, "need", "low on", "out of", "run out", "ran out") {
		for _, token := range tokenise(n) {
			m, confidence, tie := resolveEntity(token, ctx, ctx.Supplies)
			if len(m) == 1 && !tie && confidence >= 0.9 {
				return makeIntent(Command, "buy", []string{m[0]}, confidence*0.85)
			}
		}
	}
	return nil
}

func containsAnyPhrase(value string, phrases ...string) bool {
	for _, phrase := range phrases {
		if containsPhrase(value, phrase) {
			return true
		}
	}
	return false
}

func containsPhrase(value, phrase string) bool {
	p := normaliseInput(phrase)
	if p == "" {
		return false
	}
	return strings.Contains(" "+value+" ", " "+p+" ")
}

func normaliseAll(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if n := normaliseInput(v); n != "" {
			out = append(out, n)
		}
	}
	return out
}

func clampScore(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func IntentToCommandString(intent Intent) string {
	verb := normaliseInput(intent.Verb)
	if verb == "" {
		return ""
	}
	args := make([]string, 0, len(intent.Args)+1)
	for _, arg := range intent.Args {
		n := normaliseInput(arg)
		if n != "" {
			args = append(args, n)
		}
	}
	if intent.Quantity != nil && intent.Quantity.Raw != "" {
		args = append(args, normaliseInput(intent.Quantity.Raw))
	}
	if len(args) == 0 {
		return verb
	}
	return verb + " " + strings.Join(args, " ")
}
