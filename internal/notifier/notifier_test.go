package notifier

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prathickshaselvaraj/FinancialRiskRadar/internal/model"
	"github.com/prathickshaselvaraj/FinancialRiskRadar/internal/watchlist"
)

func sampleResult() *model.AnalysisResult {
	return &model.AnalysisResult{
		Document: model.DocumentInfo{DocType: "sec_filing", WordCount: 12000},
		Detections: []model.RiskDetection{
			{Category: model.CategoryCredit, Score: 60, SentenceCount: 4},
		},
		Scores: model.ScoreBreakdown{
			OverallScore: 72.4,
			CategoryScores: map[model.CategoryID]float64{
				model.CategoryCredit: 78.1,
			},
			Temporal: model.TemporalUrgency{
				OverallUrgency:   75,
				PrimaryTimeframe: model.TimeframeShortTerm,
			},
			Financial: model.FinancialImpact{TotalMillions: 2500, ImpactLevel: "Severe"},
			Summary: model.RiskSummary{
				RiskLevel:       "High",
				Recommendation:  "Urgent review needed. Potential for material impacts.",
				PrimaryCategory: model.CategoryCredit,
			},
		},
		Trend: model.TrendSummary{
			Trend:            "increasing",
			EvolutionPattern: "escalating",
			Hotspots:         []model.Hotspot{{SegmentIndex: 7, Score: 81.2}},
		},
		Network: model.NetworkSummary{
			Regulators: []model.RegulatorProfile{
				{Regulator: "SEC", PrimaryAction: model.RelationInvestigation, CompaniesAffected: 2},
			},
		},
	}
}

func TestFormatAnalysisReport(t *testing.T) {
	report := FormatAnalysisReport("acme-10k", sampleResult())

	assert.Contains(t, report, "acme-10k")
	assert.Contains(t, report, "sec_filing")
	assert.Contains(t, report, "12,000")
	assert.Contains(t, report, "72.4 (High)")
	assert.Contains(t, report, "credit_risk")
	assert.Contains(t, report, "$2,500 million")
	assert.Contains(t, report, "increasing")
	assert.Contains(t, report, "SEC: investigation")
	assert.Contains(t, report, "Urgent review needed")
}

func TestFormatAnalysisReport_MinimalResult(t *testing.T) {
	result := &model.AnalysisResult{
		Document: model.DocumentInfo{DocType: "unknown"},
		Scores: model.ScoreBreakdown{
			Temporal: model.TemporalUrgency{PrimaryTimeframe: model.TimeframeUnknown},
			Summary:  model.RiskSummary{RiskLevel: "Minimal", Recommendation: "Routine oversight."},
		},
		Trend: model.TrendSummary{Trend: "insufficient_data", EvolutionPattern: "insufficient_data"},
	}
	report := FormatAnalysisReport("empty-doc", result)

	assert.Contains(t, report, "Minimal")
	assert.NotContains(t, report, "Financial exposure")
	assert.NotContains(t, report, "Urgency")
}

func TestFormatWatchlistStatus(t *testing.T) {
	report := FormatWatchlistStatus([]watchlist.Source{
		{Name: "fresh"},
		{Name: "acme-10k", LastScore: 72.4, LastRiskLevel: "High", RunCount: 3, LastRunAt: time.Now().Add(-time.Hour)},
	})
	assert.Contains(t, report, "fresh: never analyzed")
	assert.Contains(t, report, "acme-10k: 72.4 (High), 3 runs")
}

func TestFormatWatchlistStatus_Empty(t *testing.T) {
	assert.Contains(t, FormatWatchlistStatus(nil), "no sources configured")
}

func TestWebhookNotifier_Send(t *testing.T) {
	var received string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		received = string(body)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	n := NewWebhookNotifier(srv.URL, "")
	require.NoError(t, n.Send("hello"))
	assert.Contains(t, received, `"text":"hello"`)
}

func TestWebhookNotifier_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	err := NewWebhookNotifier(srv.URL, "").Send("hello")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 500")
}

func TestWebhookNotifier_RetryEventuallySucceeds(t *testing.T) {
	attempts := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		if attempts < 2 {
			http.Error(w, "unavailable", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	n := NewWebhookNotifier(srv.URL, "")
	require.NoError(t, n.SendWithRetry(context.Background(), "msg", 3))
	assert.Equal(t, 2, attempts)
}

func TestNoopNotifier(t *testing.T) {
	var n Notifier = NoopNotifier{}
	assert.NoError(t, n.Send("ignored"))
	assert.NoError(t, n.SendWithRetry(context.Background(), "ignored", 3))
}
