package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prathickshaselvaraj/FinancialRiskRadar/internal/analyzer"
	"github.com/prathickshaselvaraj/FinancialRiskRadar/internal/catalog"
	"github.com/prathickshaselvaraj/FinancialRiskRadar/internal/config"
	"github.com/prathickshaselvaraj/FinancialRiskRadar/internal/ingest"
	"github.com/prathickshaselvaraj/FinancialRiskRadar/internal/logger"
	"github.com/prathickshaselvaraj/FinancialRiskRadar/internal/notifier"
	"github.com/prathickshaselvaraj/FinancialRiskRadar/internal/recorder"
	"github.com/prathickshaselvaraj/FinancialRiskRadar/internal/scheduler"
	"github.com/prathickshaselvaraj/FinancialRiskRadar/internal/watchlist"
)

func main() {
	analyzeOne := flag.String("analyze", "", "analyze a single configured source, print the result JSON, and exit")
	showStatus := flag.Bool("status", false, "print the watchlist run history and exit")
	flag.Parse()

	// Load config
	cfgPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "config validation: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Log.Level, cfg.Log.File); err != nil {
		fmt.Fprintf(os.Stderr, "init logger: %v\n", err)
		os.Exit(1)
	}
	logger.Log.Info("FinancialRiskRadar starting...")

	// Load catalog
	cat := catalog.Default()
	if cfg.Catalog.Path != "" {
		loaded, err := catalog.Load(cfg.Catalog.Path)
		if err != nil {
			logger.Log.Fatalf("load catalog: %v", err)
		}
		cat = loaded
	}
	if err := cat.Validate(); err != nil {
		logger.Log.Fatalf("catalog validation: %v", err)
	}

	an := analyzer.New(cat)

	// Init fetchers
	fileFetcher := ingest.NewFileFetcher()
	httpFetcher := ingest.NewHTTPFetcher(
		time.Duration(cfg.Fetch.TimeoutSeconds)*time.Second,
		cfg.Fetch.RequestsPerMinute,
		cfg.Fetch.UserAgent,
		cfg.Proxy,
	)

	// Init watchlist manager
	wl, err := watchlist.NewManager(cfg.Watchlist.StateFile, cfg.Sources)
	if err != nil {
		logger.Log.Fatalf("init watchlist: %v", err)
	}
	logger.Log.Infof("watchlist loaded: %d sources", len(wl.Sources()))

	if *showStatus {
		fmt.Print(notifier.FormatWatchlistStatus(wl.Sources()))
		return
	}

	// Init recorder
	var rec recorder.Recorder
	if cfg.Database.SQLitePath != "" {
		sr, err := recorder.NewSQLiteRecorder(cfg.Database.SQLitePath)
		if err != nil {
			logger.Log.Warnf("init sqlite recorder failed, using noop: %v", err)
			rec = recorder.NewNoopRecorder()
		} else {
			rec = sr
			defer sr.Close()
		}
	} else {
		rec = recorder.NewNoopRecorder()
	}

	// Init notifier
	var n notifier.Notifier = notifier.NoopNotifier{}
	if cfg.Webhook.URL != "" {
		n = notifier.NewWebhookNotifier(cfg.Webhook.URL, cfg.Proxy)
	}

	// Context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Init scheduler
	sched := scheduler.NewScheduler(ctx, an, wl, fileFetcher, httpFetcher, n, rec)

	// One-shot mode: run one source through the full pipeline, print JSON, exit.
	if *analyzeOne != "" {
		result, err := sched.AnalyzeSourceByName(*analyzeOne)
		if err != nil {
			logger.Log.Fatalf("analyze %s: %v", *analyzeOne, err)
		}
		out, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			logger.Log.Fatalf("encode result: %v", err)
		}
		fmt.Println(string(out))
		return
	}

	if err := sched.RegisterAll(cfg.Schedule.SweepCron); err != nil {
		logger.Log.Fatalf("register cron tasks: %v", err)
	}
	sched.Start()
	defer sched.Stop()

	// Optional: run immediately on start
	if os.Getenv("RUN_ON_START") == "true" {
		logger.Log.Info("RUN_ON_START enabled, executing sweep now")
		go sched.RunSweepNow()
	}

	logger.Log.Info("FinancialRiskRadar is running. Press Ctrl+C to stop.")

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	logger.Log.Info("shutdown signal received, stopping...")
	cancel()
	logger.Log.Info("FinancialRiskRadar stopped")
}
