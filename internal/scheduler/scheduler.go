package scheduler

import (
	"context"
	"fmt"

	"github.com/robfig/cron/v3"

	"github.com/prathickshaselvaraj/FinancialRiskRadar/internal/analyzer"
	"github.com/prathickshaselvaraj/FinancialRiskRadar/internal/ingest"
	"github.com/prathickshaselvaraj/FinancialRiskRadar/internal/logger"
	"github.com/prathickshaselvaraj/FinancialRiskRadar/internal/model"
	"github.com/prathickshaselvaraj/FinancialRiskRadar/internal/notifier"
	"github.com/prathickshaselvaraj/FinancialRiskRadar/internal/recorder"
	"github.com/prathickshaselvaraj/FinancialRiskRadar/internal/watchlist"
)

// Scheduler runs watchlist sweeps on a cron schedule.
type Scheduler struct {
	Cron      *cron.Cron
	Analyzer  *analyzer.Analyzer
	Watchlist *watchlist.Manager
	File      ingest.Fetcher
	HTTP      ingest.Fetcher
	Notifier  notifier.Notifier
	Recorder  recorder.Recorder
	Ctx       context.Context
}

// NewScheduler creates a new Scheduler.
func NewScheduler(ctx context.Context, an *analyzer.Analyzer, wl *watchlist.Manager,
	file, http ingest.Fetcher, n notifier.Notifier, rec recorder.Recorder) *Scheduler {
	return &Scheduler{
		Cron:      cron.New(cron.WithSeconds()),
		Analyzer:  an,
		Watchlist: wl,
		File:      file,
		HTTP:      http,
		Notifier:  n,
		Recorder:  rec,
		Ctx:       ctx,
	}
}

// RegisterAll registers the sweep task.
func (s *Scheduler) RegisterAll(sweepCron string) error {
	if _, err := s.Cron.AddFunc(sweepCron, s.sweepTask); err != nil {
		return fmt.Errorf("register sweep task: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	logger.Log.Info("scheduler started")
}

// Stop stops the cron scheduler gracefully.
func (s *Scheduler) Stop() {
	s.Cron.Stop()
	logger.Log.Info("scheduler stopped")
}

// RunSweepNow executes the sweep immediately (manual trigger / RUN_ON_START).
func (s *Scheduler) RunSweepNow() {
	s.sweepTask()
}

func (s *Scheduler) sweepTask() {
	sources := s.Watchlist.Sources()
	logger.Log.Infof("running sweep over %d sources", len(sources))

	for _, src := range sources {
		if _, err := s.analyzeSource(src); err != nil {
			logger.Log.Errorf("sweep %s: %v", src.Name, err)
			s.trySend(fmt.Sprintf("❌ Risk sweep failed for %s: %v", src.Name, err))
		}
	}
}

// AnalyzeSourceByName runs one source immediately, outside the sweep, and
// returns the analysis result.
func (s *Scheduler) AnalyzeSourceByName(name string) (*model.AnalysisResult, error) {
	src, ok := s.Watchlist.Get(name)
	if !ok {
		return nil, fmt.Errorf("unknown source %q", name)
	}
	return s.analyzeSource(src)
}

func (s *Scheduler) analyzeSource(src watchlist.Source) (*model.AnalysisResult, error) {
	fetcher, target := s.HTTP, src.URL
	if src.Path != "" {
		fetcher, target = s.File, src.Path
	}

	doc, err := fetcher.Fetch(s.Ctx, target)
	if err != nil {
		return nil, fmt.Errorf("fetch: %w", err)
	}
	logger.Log.Infof("fetched %s: %d words", src.Name, doc.WordCount)

	result, err := s.Analyzer.Analyze(doc.Text, src.Entities, analyzer.Options{})
	if err != nil {
		return nil, fmt.Errorf("analyze: %w", err)
	}

	s.trySend(notifier.FormatAnalysisReport(src.Name, result))

	id, err := s.Recorder.RecordAnalysis(src.Name, result)
	if err != nil {
		logger.Log.Errorf("record analysis for %s: %v", src.Name, err)
	} else {
		logger.Log.Infof("recorded analysis %s for %s (score %.1f, %s)",
			id, src.Name, result.Scores.OverallScore, result.Scores.Summary.RiskLevel)
	}

	if err := s.Watchlist.RecordRun(src.Name, result.Scores.OverallScore, result.Scores.Summary.RiskLevel); err != nil {
		logger.Log.Errorf("record run for %s: %v", src.Name, err)
	}
	return result, nil
}

func (s *Scheduler) trySend(text string) {
	if err := s.Notifier.SendWithRetry(s.Ctx, text, 3); err != nil {
		logger.Log.Errorf("send notification: %v", err)
	}
}
