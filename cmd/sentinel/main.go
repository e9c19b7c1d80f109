package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"ListingSentinel/internal/collector"
	"ListingSentinel/internal/config"
	"ListingSentinel/internal/notifier"
	"ListingSentinel/internal/recorder"
	"ListingSentinel/internal/scheduler"
	"ListingSentinel/internal/watch"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("[INFO] ListingSentinel starting...")

	// Load config
	cfgPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("[FATAL] load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("[FATAL] config validation: %v", err)
	}

	// Init fetcher
	var fetcher collector.Fetcher
	var catalogASINs []string
	if cfg.Source.Mode == config.ModeCatalog {
		cf, err := collector.NewCatalogFetcher(cfg.Source.CatalogPath)
		if err != nil {
			log.Fatalf("[FATAL] load catalog: %v", err)
		}
		fetcher = cf
		catalogASINs = cf.ASINs()
	} else {
		fetcher = collector.NewDemoFetcher()
	}
	log.Printf("[INFO] data source: %s", fetcher.Name())

	col := collector.NewCollector(fetcher, cfg.Synthesis.Months, cfg.Synthesis.Deterministic)
	rec := newRecorder(cfg)
	defer rec.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	out := notifier.NewWriterNotifier(os.Stdout)

	// One-shot mode: analyze the given products and exit.
	if asins := os.Args[1:]; len(asins) > 0 {
		reports := col.AnalyzeMany(ctx, asins, cfg.Watch.Concurrency)
		for _, r := range reports {
			if err := rec.RecordSnapshot(recorder.NewSnapshot(r)); err != nil {
				log.Printf("[ERROR] record snapshot %s: %v", r.Product.ASIN, err)
			}
			if err := out.Send(ctx, notifier.FormatReport(r)); err != nil {
				log.Printf("[ERROR] print report: %v", err)
			}
		}
		if len(reports) < len(asins) {
			log.Printf("[WARN] %d of %d products could not be analyzed", len(asins)-len(reports), len(asins))
			rec.Close()
			os.Exit(1)
		}
		return
	}

	// Init watchlist
	watched := cfg.Watch.ASINs
	if len(watched) == 0 {
		watched = catalogASINs
	}
	wm, err := watch.NewManager(cfg.Watch.StateFile, watched)
	if err != nil {
		log.Fatalf("[FATAL] init watch manager: %v", err)
	}

	// Init scheduler
	sched := scheduler.NewScheduler(ctx, col, wm, out, rec, cfg.Watch.Concurrency)
	if err := sched.RegisterAll(cfg.Schedule.RefreshCron, cfg.Schedule.DigestCron); err != nil {
		log.Fatalf("[FATAL] register cron tasks: %v", err)
	}
	sched.Start()
	defer sched.Stop()

	// Commands from stdin
	go func() {
		if err := notifier.ReadCommands(ctx, os.Stdin, sched.HandleCommand, out); err != nil {
			log.Printf("[WARN] command reader: %v", err)
		}
	}()

	// Optional: run immediately on start
	if os.Getenv("RUN_ON_START") == "true" {
		log.Println("[INFO] RUN_ON_START enabled, refreshing watchlist now")
		go sched.RunRefreshNow()
	}

	log.Printf("[INFO] ListingSentinel is watching %d products. Press Ctrl+C to stop.", len(wm.ASINs()))

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Println("[INFO] shutdown signal received, stopping...")
	cancel()
	log.Println("[INFO] ListingSentinel stopped")
}

func newRecorder(cfg *config.Config) recorder.Recorder {
	switch cfg.Database.Driver {
	case config.DriverSQLite:
		r, err := recorder.NewSQLiteRecorder(cfg.Database.SQLitePath)
		if err != nil {
			log.Printf("[WARN] init sqlite recorder failed, using noop: %v", err)
			return recorder.NewNoopRecorder()
		}
		return r
	case config.DriverPostgres:
		r, err := recorder.NewPostgresRecorder(cfg.Database.PostgresDSN)
		if err != nil {
			log.Printf("[WARN] init postgres recorder failed, using noop: %v", err)
			return recorder.NewNoopRecorder()
		}
		return r
	default:
		return recorder.NewNoopRecorder()
	}
}
