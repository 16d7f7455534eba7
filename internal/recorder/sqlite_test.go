package recorder

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prathickshaselvaraj/FinancialRiskRadar/internal/model"
)

func sampleResult() *model.AnalysisResult {
	return &model.AnalysisResult{
		Document: model.DocumentInfo{DocType: "news_article", WordCount: 800},
		Detections: []model.RiskDetection{
			{Category: model.CategoryCredit, Score: 55, SentenceCount: 3, KeywordsFound: []string{"default", "debt"}},
		},
		Scores: model.ScoreBreakdown{
			OverallScore:   61.2,
			CategoryScores: map[model.CategoryID]float64{model.CategoryCredit: 67.3},
			Temporal:       model.TemporalUrgency{OverallUrgency: 50, PrimaryTimeframe: model.TimeframeMediumTerm},
			Financial:      model.FinancialImpact{TotalMillions: 120, ImpactLevel: "High"},
			Summary:        model.RiskSummary{RiskLevel: "High", PrimaryCategory: model.CategoryCredit},
		},
		Trend: model.TrendSummary{Trend: "increasing", EvolutionPattern: "escalating"},
		Network: model.NetworkSummary{
			Density: 0.25,
			Edges: []model.RelationshipEdge{
				{Source: "Acme", Target: "credit_risk", Type: model.EdgeCompanyRisk, Weight: 2},
			},
		},
	}
}

func TestSQLiteRecorder_RecordAnalysis(t *testing.T) {
	rec, err := NewSQLiteRecorder(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	defer rec.Close()

	id, err := rec.RecordAnalysis("acme-news", sampleResult())
	require.NoError(t, err)
	require.NotEmpty(t, id)

	var count int
	require.NoError(t, rec.db.QueryRow(
		"SELECT COUNT(*) FROM analyses WHERE id = ? AND source = ?", id, "acme-news").Scan(&count))
	assert.Equal(t, 1, count)

	var keywords string
	require.NoError(t, rec.db.QueryRow(
		"SELECT keywords FROM detections WHERE analysis_id = ?", id).Scan(&keywords))
	assert.Equal(t, "default,debt", keywords)

	var weight int
	require.NoError(t, rec.db.QueryRow(
		"SELECT weight FROM network_edges WHERE analysis_id = ?", id).Scan(&weight))
	assert.Equal(t, 2, weight)
}

func TestSQLiteRecorder_DistinctIDsPerRecord(t *testing.T) {
	rec, err := NewSQLiteRecorder(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	defer rec.Close()

	first, err := rec.RecordAnalysis("src", sampleResult())
	require.NoError(t, err)
	second, err := rec.RecordAnalysis("src", sampleResult())
	require.NoError(t, err)
	assert.NotEqual(t, first, second)
}

func TestStmtLabel(t *testing.T) {
	assert.Equal(t, "PRAGMA foo", stmtLabel("PRAGMA foo"))
	long := "CREATE TABLE IF NOT EXISTS analyses (id TEXT PRIMARY KEY)"
	assert.Len(t, stmtLabel(long), 40)
}

func TestNoopRecorder(t *testing.T) {
	rec := NewNoopRecorder()
	id, err := rec.RecordAnalysis("src", sampleResult())
	assert.NoError(t, err)
	assert.Empty(t, id)
	assert.NoError(t, rec.Close())
}
