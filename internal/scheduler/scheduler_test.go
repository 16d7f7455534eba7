package scheduler

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prathickshaselvaraj/FinancialRiskRadar/internal/analyzer"
	"github.com/prathickshaselvaraj/FinancialRiskRadar/internal/catalog"
	"github.com/prathickshaselvaraj/FinancialRiskRadar/internal/config"
	"github.com/prathickshaselvaraj/FinancialRiskRadar/internal/ingest"
	"github.com/prathickshaselvaraj/FinancialRiskRadar/internal/model"
	"github.com/prathickshaselvaraj/FinancialRiskRadar/internal/notifier"
	"github.com/prathickshaselvaraj/FinancialRiskRadar/internal/recorder"
	"github.com/prathickshaselvaraj/FinancialRiskRadar/internal/watchlist"
)

func newTestScheduler(t *testing.T, mock *ingest.MockFetcher) (*Scheduler, *watchlist.Manager) {
	t.Helper()
	wl, err := watchlist.NewManager(filepath.Join(t.TempDir(), "watchlist.json"), []config.SourceConfig{
		{
			Name: "acme-news",
			Path: "acme.txt",
			Entities: model.Entities{
				Companies:        []string{"Acme"},
				RegulatoryBodies: []string{"SEC"},
			},
		},
	})
	require.NoError(t, err)

	an := analyzer.New(catalog.Default())
	s := NewScheduler(context.Background(), an, wl, mock, mock, notifier.NoopNotifier{}, recorder.NewNoopRecorder())
	return s, wl
}

func TestRunSweepNow_RecordsRun(t *testing.T) {
	mock := &ingest.MockFetcher{
		Text: "Acme faces a federal investigation and may default on $500 million of debt.",
	}
	s, wl := newTestScheduler(t, mock)

	s.RunSweepNow()

	src, ok := wl.Get("acme-news")
	require.True(t, ok)
	assert.Equal(t, 1, src.RunCount)
	assert.Greater(t, src.LastScore, 0.0)
	assert.NotEmpty(t, src.LastRiskLevel)
}

func TestAnalyzeSourceByName_ReturnsResultAndRecordsRun(t *testing.T) {
	mock := &ingest.MockFetcher{
		Text: "The SEC opened an investigation into Acme over default concerns.",
	}
	s, wl := newTestScheduler(t, mock)

	result, err := s.AnalyzeSourceByName("acme-news")
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.NotEmpty(t, result.Detections)

	src, _ := wl.Get("acme-news")
	assert.Equal(t, 1, src.RunCount)
	assert.Equal(t, result.Scores.OverallScore, src.LastScore)
}

func TestAnalyzeSourceByName_Unknown(t *testing.T) {
	s, _ := newTestScheduler(t, &ingest.MockFetcher{Text: "irrelevant."})
	_, err := s.AnalyzeSourceByName("ghost")
	assert.Error(t, err)
}

func TestAnalyzeSourceByName_FetchFailureDoesNotRecordRun(t *testing.T) {
	mock := &ingest.MockFetcher{Err: assert.AnError}
	s, wl := newTestScheduler(t, mock)

	_, err := s.AnalyzeSourceByName("acme-news")
	require.Error(t, err)

	src, _ := wl.Get("acme-news")
	assert.Zero(t, src.RunCount)
}

func TestRegisterAll_BadCron(t *testing.T) {
	s, _ := newTestScheduler(t, &ingest.MockFetcher{Text: "x."})
	assert.Error(t, s.RegisterAll("not a cron expression"))
	assert.NoError(t, s.RegisterAll("0 0 7 * * 1-5"))
}
