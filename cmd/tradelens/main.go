package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"tradelens/internal/export"
	"tradelens/internal/journal"
	"tradelens/internal/logger"
	"tradelens/internal/render"
	"tradelens/internal/stats"
	"tradelens/internal/store"
	"tradelens/internal/tablescan"
	"tradelens/internal/view"
	"tradelens/internal/watch"
)

func must(err error) {
	if err != nil {
		log.Fatal(err)
	}
}

func main() {
	_ = godotenv.Load()

	configPath := flag.String("config", "config.yaml", "path to config file")
	once := flag.Bool("once", false, "run the pipeline once and exit")
	viewMode := flag.String("view", "", "view mode override: all, asset or day")
	symbol := flag.String("symbol", "", "selected symbol for asset view")
	day := flag.String("day", "", "selected weekday label for day view (e.g. Mon)")
	flag.Parse()

	must(logger.Init())
	cfg, err := store.LoadConfig(*configPath)
	must(err)

	applyOverrides(cfg, *viewMode, *symbol, *day)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	defer func() { _ = logger.Shutdown(context.Background()) }()

	variant := journal.Variant(cfg.Variant)
	src := buildSource(cfg)

	handler := func(ctx context.Context, rows []journal.Row) {
		runPipeline(ctx, cfg, variant, rows)
	}
	w := watch.New(src,
		time.Duration(cfg.Watch.PollMillis)*time.Millisecond,
		time.Duration(cfg.Watch.DebounceMillis)*time.Millisecond,
		handler)

	if *once {
		must(w.RunOnce(ctx))
		return
	}

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, syscall.SIGINT, syscall.SIGTERM)

	errc := make(chan error, 1)
	go func() { errc <- w.Run(ctx) }()

	// Poll interval doubles as the page-mutation signal in CLI mode: every
	// tick nudges the watcher, and the debounce window coalesces the burst.
	tick := time.NewTicker(time.Duration(cfg.Watch.PollMillis) * time.Millisecond)
	defer tick.Stop()

	logger.Info(ctx, "Watcher started", "source", cfg.Source.Kind, "variant", cfg.Variant)
	for {
		select {
		case <-tick.C:
			w.Notify()
		case <-sigc:
			logger.Info(ctx, "Shutting down")
			cancel()
			<-errc
			return
		case err := <-errc:
			if err != nil && ctx.Err() == nil {
				logger.ErrorWithErr(ctx, "Watcher stopped", err)
			}
			return
		}
	}
}

func applyOverrides(cfg *store.Config, mode, symbol, day string) {
	if mode != "" {
		cfg.View.Mode = mode
	}
	if symbol != "" {
		cfg.View.Symbol = symbol
	}
	if day != "" {
		cfg.View.Day = day
	}
}

func buildSource(cfg *store.Config) watch.Source {
	selectors := tablescan.Selectors{
		Table:  cfg.Table.Selector,
		Header: cfg.Table.HeaderSelector,
		Row:    cfg.Table.RowSelector,
		Cell:   cfg.Table.CellSelector,
		Badge:  cfg.Table.BadgeSelector,
	}
	if cfg.Source.Kind == "URL" {
		return watch.NewURLSource(cfg.Source.URL, selectors,
			time.Duration(cfg.Watch.TimeoutSeconds)*time.Second)
	}
	return watch.NewFileSource(cfg.Source.Path, selectors)
}

func runPipeline(ctx context.Context, cfg *store.Config, variant journal.Variant, rows []journal.Row) {
	op := logger.StartOperation(ctx, "pipeline_run", "rows", len(rows))

	records := journal.NormalizeRows(rows, variant)
	selection := view.Selection{Symbol: cfg.View.Symbol, Day: cfg.View.Day}.
		WithMode(records, view.Mode(cfg.View.Mode))
	subset := selection.Apply(records)

	var netPnl float64
	var panel string
	if variant == journal.VariantDay {
		summary := stats.ComputeDay(subset)
		panel = render.DayPanel(panelTitle(selection), summary)
		netPnl = summary.NetPnL
	} else {
		summary := stats.ComputeTrade(subset)
		panel = render.TradePanel(panelTitle(selection), summary)
		netPnl = summary.NetPnL
	}

	fmt.Print(panel)
	if selection.Mode == view.ModeAsset {
		fmt.Printf("Symbols: %s\n", strings.Join(journal.Symbols(records), ", "))
	}
	if selection.Mode == view.ModeDay {
		fmt.Printf("Weekdays: %s\n", strings.Join(journal.WeekdayLabels[:], ", "))
	}

	if cfg.Export.Enabled {
		paths, err := export.WriteBreakdown(cfg.Export.Dir, records, variant)
		if err != nil {
			logger.ErrorWithErr(ctx, "CSV export failed", err, "dir", cfg.Export.Dir)
		} else {
			logger.Info(ctx, "CSV breakdown written", "paths", strings.Join(paths, ", "))
		}
	}

	logger.Pipeline(ctx, string(selection.Mode), len(rows), len(records), netPnl)
	op.End("records", len(records))
}

func panelTitle(s view.Selection) string {
	switch s.Mode {
	case view.ModeAsset:
		return "Symbol: " + s.Symbol
	case view.ModeDay:
		return "Weekday: " + s.Day
	default:
		return "All Trades"
	}
}
