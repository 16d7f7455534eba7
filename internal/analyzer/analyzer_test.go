package analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prathickshaselvaraj/FinancialRiskRadar/internal/catalog"
	"github.com/prathickshaselvaraj/FinancialRiskRadar/internal/model"
)

func newAnalyzer() *Analyzer {
	return New(catalog.Default())
}

func TestAnalyze_EmptyText(t *testing.T) {
	result, err := newAnalyzer().Analyze("", model.Entities{}, Options{})
	require.NoError(t, err)

	assert.Empty(t, result.Detections)
	assert.Zero(t, result.Scores.OverallScore)
	assert.Equal(t, "Minimal", result.Scores.Summary.RiskLevel)
	assert.Equal(t, "insufficient_data", result.Trend.Trend)
	assert.Empty(t, result.Network.Nodes)
	assert.Zero(t, result.Document.WordCount)
}

func TestAnalyze_InvalidUTF8(t *testing.T) {
	_, err := newAnalyzer().Analyze(string([]byte{0xff, 0xfe, 0xfd}), model.Entities{}, Options{})
	assert.Error(t, err)
}

func TestAnalyze_FullPipeline(t *testing.T) {
	text := "Acme Corp faces a federal investigation over compliance failures. " +
		"The SEC may impose fines of $500 million. " +
		"Analysts fear Acme Corp could default on its debt if penalties mount."
	entities := model.Entities{
		Companies:        []string{"Acme Corp"},
		RegulatoryBodies: []string{"SEC"},
	}

	result, err := newAnalyzer().Analyze(text, entities, Options{})
	require.NoError(t, err)

	assert.NotEmpty(t, result.Detections)
	assert.Greater(t, result.Scores.OverallScore, 0.0)
	assert.NotEmpty(t, result.Scores.CategoryScores)
	assert.Greater(t, result.Scores.Financial.TotalMillions, 0.0)

	// Entity nodes appear in the network alongside risk nodes.
	var sawCompany, sawRegulator bool
	for _, n := range result.Network.Nodes {
		switch {
		case n.Type == model.NodeCompany && n.ID == "Acme Corp":
			sawCompany = true
		case n.Type == model.NodeRegulator && n.ID == "SEC":
			sawRegulator = true
		}
	}
	assert.True(t, sawCompany)
	assert.True(t, sawRegulator)
}

func TestAnalyze_Deterministic(t *testing.T) {
	text := "Regulators opened an investigation into Acme after a data breach. " +
		"Acme faces fines of $50 million and rising default concerns."
	entities := model.Entities{
		Companies:        []string{"Acme"},
		RegulatoryBodies: []string{"FCA"},
	}

	a := newAnalyzer()
	first, err := a.Analyze(text, entities, Options{})
	require.NoError(t, err)
	second, err := a.Analyze(text, entities, Options{})
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestAnalyze_EnrichmentChangesScoreOnly(t *testing.T) {
	text := "Acme faces default risk on its debt."
	vol := 90.0

	a := newAnalyzer()
	plain, err := a.Analyze(text, model.Entities{}, Options{})
	require.NoError(t, err)
	enriched, err := a.Analyze(text, model.Entities{}, Options{Enrichment: &model.Enrichment{MarketVolatility: &vol}})
	require.NoError(t, err)

	assert.Greater(t, enriched.Scores.OverallScore, plain.Scores.OverallScore)
	assert.Equal(t, plain.Detections, enriched.Detections)
	assert.Equal(t, plain.Trend, enriched.Trend)
}
