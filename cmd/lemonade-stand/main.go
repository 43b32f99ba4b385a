package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/appengine-ltd/lemonade-stand/internal/config"
	"github.com/appengine-ltd/lemonade-stand/internal/store"
	"github.com/appengine-ltd/lemonade-stand/internal/ui"
)

// version, commit, date are injected at build time with -ldflags -X.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	var (
		showVersion bool
		seed        int64
		configPath  string
		slot        string
		scriptPath  string
		verbose     bool
	)

	flag.BoolVar(&showVersion, "version", false, "print version and exit")
	flag.Int64Var(&seed, "seed", 0, "random seed (0 picks one from the clock)")
	flag.StringVar(&configPath, "config", "lemonade-stand.yaml", "balance and storage config file")
	flag.StringVar(&slot, "slot", "", "save slot to load on start")
	flag.StringVar(&scriptPath, "script", "", "read commands from this file instead of stdin")
	flag.BoolVar(&verbose, "v", false, "verbose logging")
	flag.Parse()

	if showVersion {
		fmt.Printf("Lemonade Stand %s (%s) %s\n", version, commit, date)
		return
	}

	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, logger, options{
		seed:       seed,
		seedSet:    flagWasSet("seed"),
		configPath: configPath,
		slot:       slot,
		scriptPath: scriptPath,
	}); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type options struct {
	seed       int64
	seedSet    bool
	configPath string
	slot       string
	scriptPath string
}

func run(ctx context.Context, logger *slog.Logger, opts options) error {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return err
	}
	if opts.seedSet {
		cfg.Seed = opts.seed
	}

	var saves ui.SaveStore
	repo, err := store.Open(ctx, cfg.Storage)
	switch {
	case err != nil && opts.slot != "":
		return fmt.Errorf("open save store: %w", err)
	case err != nil:
		logger.Warn("saves disabled", "err", err)
	default:
		defer repo.Close()
		saves = repo
	}

	app, err := ui.NewApp(ctx, ui.AppConfig{
		Version:   version,
		Commit:    commit,
		BuildDate: date,
		Run:       cfg.RunConfig(),
		Saves:     saves,
		Slot:      opts.slot,
		Logger:    logger,
	})
	if err != nil {
		return err
	}

	var in io.Reader = os.Stdin
	if opts.scriptPath != "" {
		f, err := os.Open(opts.scriptPath)
		if err != nil {
			return fmt.Errorf("open script: %w", err)
		}
		defer f.Close()
		in = f
	}
	return app.Run(ctx, in, os.Stdout)
}

func flagWasSet(name string) bool {
	set := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == name {
			set = true
		}
	})
	return set
}
