package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prathickshaselvaraj/FinancialRiskRadar/internal/model"
)

func TestDefault_Valid(t *testing.T) {
	cat := Default()
	require.NoError(t, cat.Validate())
	assert.Len(t, cat.Categories, 4)
}

func TestDefault_WeightsSumToOne(t *testing.T) {
	sum := 0.0
	for _, c := range Default().Categories {
		sum += c.Weight
	}
	assert.InDelta(t, 1.0, sum, 1e-6)
}

func TestGet(t *testing.T) {
	cat := Default()

	credit, ok := cat.Get(model.CategoryCredit)
	require.True(t, ok)
	assert.Equal(t, model.CategoryCredit, credit.ID)
	assert.NotEmpty(t, credit.Keywords)

	_, ok = cat.Get("liquidity_risk")
	assert.False(t, ok)
}

func TestWeight_FallbackForUnknownCategory(t *testing.T) {
	cat := Default()
	assert.Equal(t, 0.35, cat.Weight(model.CategoryCredit))
	assert.Equal(t, 0.25, cat.Weight("unknown_risk"))
}

func TestValidate_Errors(t *testing.T) {
	cases := []struct {
		name string
		cat  Catalog
	}{
		{"no categories", Catalog{}},
		{"empty id", Catalog{Categories: []model.RiskCategory{
			{Keywords: []string{"a"}, Weight: 1.0},
		}}},
		{"no keywords", Catalog{Categories: []model.RiskCategory{
			{ID: "x", Weight: 1.0},
		}}},
		{"bad weight sum", Catalog{Categories: []model.RiskCategory{
			{ID: "x", Keywords: []string{"a"}, Weight: 0.5},
		}}},
		{"duplicate id", Catalog{Categories: []model.RiskCategory{
			{ID: "x", Keywords: []string{"a"}, Weight: 0.5},
			{ID: "x", Keywords: []string{"b"}, Weight: 0.5},
		}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Error(t, tc.cat.Validate())
		})
	}
}

func TestLoad_EmptyPathReturnsDefault(t *testing.T) {
	cat, err := Load("")
	require.NoError(t, err)
	assert.Len(t, cat.Categories, 4)
}

func TestLoad_FromYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	yaml := `categories:
  - id: credit_risk
    keywords: [default, bankruptcy]
    weight: 0.6
    color: "#FF6B6B"
  - id: market_risk
    keywords: [volatility]
    weight: 0.4
    color: "#4ECDC4"
`
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0644))

	cat, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, cat.Categories, 2)
	assert.Equal(t, 0.6, cat.Weight(model.CategoryCredit))
}

func TestLoad_InvalidWeightsRejected(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	yaml := `categories:
  - id: credit_risk
    keywords: [default]
    weight: 0.3
`
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0644))

	_, err := Load(path)
	assert.Error(t, err)
}
