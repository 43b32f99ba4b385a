package ui

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/appengine-ltd/lemonade-stand/internal/game"
	"github.com/appengine-ltd/lemonade-stand/internal/parser"
	"github.com/appengine-ltd/lemonade-stand/internal/store"
)

// SaveStore is the slice of the save repository the console uses.
type SaveStore interface {
	Save(ctx context.Context, id string, state game.GameState) (string, error)
	Load(ctx context.Context, id string) (game.GameState, error)
	List(ctx context.Context) ([]store.Slot, error)
}

type AppConfig struct {
	Version   string
	Commit    string
	BuildDate string
	Run       game.RunConfig
	// Saves may be nil, which disables save, load and saves.
	Saves SaveStore
	// Slot is loaded on start when set.
	Slot   string
	Logger *slog.Logger
}

// App is a line-oriented console around one engine.
type App struct {
	cfg    AppConfig
	engine *game.Engine
	parser *parser.Parser
	log    *slog.Logger

	slot           string
	knownSlots     []string
	lastEntity     string
	pendingClarify *parser.ClarifyQuestion

	supplyByName  map[string]game.SupplyKind
	upgradeByName map[string]game.UpgradeID
}

// CommandResult is the outcome of one input line.
type CommandResult struct {
	Handled bool
	Message string
	Quit    bool
}

func NewApp(ctx context.Context, cfg AppConfig) (*App, error) {
	engine, err := game.NewEngine(cfg.Run)
	if err != nil {
		return nil, fmt.Errorf("start engine: %w", err)
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	a := &App{
		cfg:           cfg,
		engine:        engine,
		parser:        parser.New(),
		log:           logger,
		supplyByName:  map[string]game.SupplyKind{},
		upgradeByName: map[string]game.UpgradeID{},
	}
	for _, def := range game.SupplyCatalog() {
		a.supplyByName[parser.Normalise(string(def.Kind))] = def.Kind
	}
	for _, def := range game.UpgradeCatalog() {
		a.upgradeByName[parser.Normalise(def.Name)] = def.ID
	}
	if cfg.Saves != nil {
		if slots, err := cfg.Saves.List(ctx); err != nil {
			logger.Warn("list saves failed", "err", err)
		} else {
			for _, slot := range slots {
				a.knownSlots = append(a.knownSlots, slot.ID)
			}
		}
	}
	if cfg.Slot != "" {
		if err := a.loadSlot(ctx, cfg.Slot); err != nil {
			return nil, err
		}
	}
	return a, nil
}

func (a *App) Engine() *game.Engine {
	return a.engine
}

// Run reads commands from in until quit or end of input.
func (a *App) Run(ctx context.Context, in io.Reader, out io.Writer) error {
	fmt.Fprintf(out, "Lemonade Stand %s\n", a.cfg.Version)
	fmt.Fprintln(out, statusText(a.engine))

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, "> ")
		if !scanner.Scan() {
			break
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		res := a.Execute(ctx, scanner.Text())
		if res.Message != "" {
			fmt.Fprintln(out, res.Message)
		}
		if res.Quit {
			return nil
		}
	}
	fmt.Fprintln(out)
	if err := scanner.Err(); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("read commands: %w", err)
	}
	return nil
}

// Execute parses and runs one line.
func (a *App) Execute(ctx context.Context, line string) CommandResult {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return CommandResult{Handled: true}
	}

	if a.pendingClarify != nil {
		if choice, ok := pickOption(a.pendingClarify, line); ok {
			a.pendingClarify = nil
			return a.dispatch(ctx, choice)
		}
		a.pendingClarify = nil
	}

	intent := a.parser.Parse(a.parseContext(), line)
	if intent.Verb == "load" && len(intent.Args) == 0 && intent.Quantity != nil {
		// Save ids that start with digits are lifted into Quantity.
		if id, ok := a.matchSlot(intent.Quantity.Raw); ok {
			intent.Args = []string{id}
			intent.Clarify = nil
		}
	}
	if intent.Clarify != nil {
		if len(intent.Clarify.Options) > 0 {
			a.pendingClarify = intent.Clarify
		}
		return CommandResult{Handled: false, Message: clarifyText(intent.Clarify)}
	}
	a.log.Debug("command", "verb", intent.Verb, "args", intent.Args, "confidence", intent.Confidence)
	return a.dispatch(ctx, intent)
}

func (a *App) parseContext() parser.ParseContext {
	pc := parser.ParseContext{
		Synonyms:   map[string]string{},
		Saves:      append([]string(nil), a.knownSlots...),
		LastEntity: a.lastEntity,
	}
	for _, def := range game.SupplyCatalog() {
		pc.Supplies = append(pc.Supplies, string(def.Kind))
		pc.Synonyms[def.Unit] = string(def.Kind)
		pc.Synonyms[def.Name] = string(def.Kind)
	}
	for _, def := range game.UpgradeCatalog() {
		pc.Upgrades = append(pc.Upgrades, def.Name)
		pc.Synonyms[string(def.ID)] = def.Name
	}
	return pc
}

func (a *App) matchSlot(prefix string) (string, bool) {
	found := ""
	for _, id := range a.knownSlots {
		if strings.HasPrefix(id, prefix) {
			if found != "" {
				return "", false
			}
			found = id
		}
	}
	return found, found != ""
}

func pickOption(q *parser.ClarifyQuestion, line string) (parser.Intent, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil || n < 1 || n > len(q.Options) {
		return parser.Intent{}, false
	}
	return q.Options[n-1], true
}

func clarifyText(q *parser.ClarifyQuestion) string {
	var b strings.Builder
	b.WriteString(q.Prompt)
	for i, opt := range q.Options {
		fmt.Fprintf(&b, "\n  %d) %s", i+1, parser.IntentToCommandString(opt))
	}
	return b.String()
}
