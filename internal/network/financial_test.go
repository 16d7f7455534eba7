package network

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prathickshaselvaraj/FinancialRiskRadar/internal/model"
)

func TestCompanyFinancials(t *testing.T) {
	sentences := []string{
		"Acme was fined $2 billion by the regulator",
		"Acme reported strong results",
	}
	results := companyFinancials(sentences, []string{"Acme"}, []string{"$2 billion"})

	require.Len(t, results, 1)
	fin := results[0]
	assert.Equal(t, "Acme", fin.Company)
	assert.Equal(t, 2000.0, fin.TotalMillions)
	assert.Equal(t, "regulatory_penalty", fin.PrimaryContext)

	require.Len(t, fin.Impacts, 1)
	assert.Equal(t, "$2 billion", fin.Impacts[0].Amount)
	assert.Equal(t, "regulatory_penalty", fin.Impacts[0].Context)
	assert.Equal(t, 1, fin.Impacts[0].Occurrences)
}

func TestCompanyFinancials_NoMatches(t *testing.T) {
	assert.Nil(t, companyFinancials([]string{"text"}, nil, []string{"$5 million"}))
	assert.Nil(t, companyFinancials([]string{"text"}, []string{"Acme"}, nil))

	// Amount never co-occurs with the company in a sentence.
	results := companyFinancials(
		[]string{"Acme had a fine quarter", "Losses hit $5 million elsewhere"},
		[]string{"Acme"}, []string{"$5 million"})
	assert.Empty(t, results)
}

func TestClassifyContext(t *testing.T) {
	assert.Equal(t, "regulatory_penalty", classifyContext("a settlement was reached"))
	assert.Equal(t, "financial_loss", classifyContext("an impairment charge"))
	assert.Equal(t, "debt_obligation", classifyContext("loan covenants tightened"))
	assert.Equal(t, "revenue_impact", classifyContext("quarterly sales dipped"))
	assert.Equal(t, "", classifyContext("nothing monetary here"))
}

func TestAmountMillions(t *testing.T) {
	assert.Equal(t, 2000.0, amountMillions("$2 billion"))
	assert.Equal(t, 5.0, amountMillions("$5 million"))
	assert.InDelta(t, 100.0/1e6, amountMillions("$100"), 1e-12)
	assert.Zero(t, amountMillions("no digits"))
}

func TestPrimaryContext_MostFrequentWins(t *testing.T) {
	impacts := []model.FinancialLink{
		{Context: "debt_obligation"},
		{Context: "regulatory_penalty"},
		{Context: "regulatory_penalty"},
	}
	assert.Equal(t, "regulatory_penalty", primaryContext(impacts))
}
