package detector

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prathickshaselvaraj/FinancialRiskRadar/internal/catalog"
	"github.com/prathickshaselvaraj/FinancialRiskRadar/internal/model"
)

func newDetector() *Detector {
	return New(catalog.Default())
}

func findDetection(detections []model.RiskDetection, id model.CategoryID) *model.RiskDetection {
	for i := range detections {
		if detections[i].Category == id {
			return &detections[i]
		}
	}
	return nil
}

func TestDetect_EmptyText(t *testing.T) {
	assert.Empty(t, newDetector().Detect(""))
	assert.Empty(t, newDetector().Detect("   "))
}

func TestDetect_NoRiskLanguage(t *testing.T) {
	detections := newDetector().Detect("The weather was pleasant. Everyone enjoyed the picnic.")
	assert.Empty(t, detections)
}

func TestDetect_CreditKeywords(t *testing.T) {
	detections := newDetector().Detect("The company faces bankruptcy and default.")

	credit := findDetection(detections, model.CategoryCredit)
	require.NotNil(t, credit)
	assert.Equal(t, 20.0, credit.Score)
	assert.Equal(t, 1, credit.SentenceCount)
	// Keyword union follows catalog declaration order.
	assert.Equal(t, []string{"default", "bankruptcy"}, credit.KeywordsFound)
}

func TestDetect_IntensityCappedAt100(t *testing.T) {
	text := "A severe credit crisis means imminent default and bankruptcy with " +
		"insolvency, debt, leverage, collateral and liquidity strains, unable to pay."
	detections := newDetector().Detect(text)

	credit := findDetection(detections, model.CategoryCredit)
	require.NotNil(t, credit)
	require.Len(t, credit.Instances, 1)
	assert.Equal(t, 100.0, credit.Instances[0].Intensity)
	// Category score saturates at 95 even when every instance maxes out.
	assert.Equal(t, 95.0, credit.Score)
}

func TestDetect_AmountsRaiseIntensity(t *testing.T) {
	detections := newDetector().Detect("Acme may default on a $2 billion loan.")

	credit := findDetection(detections, model.CategoryCredit)
	require.NotNil(t, credit)
	require.Len(t, credit.Instances, 1)
	assert.Equal(t, []string{"$2 billion"}, credit.Instances[0].Amounts)
	assert.Equal(t, 20.0, credit.Instances[0].Intensity)
}

func TestDetect_KeywordIndicatorAndAmountStack(t *testing.T) {
	detections := newDetector().Detect("The company faces a severe default risk of $2 billion.")

	credit := findDetection(detections, model.CategoryCredit)
	require.NotNil(t, credit)
	require.Len(t, credit.Instances, 1)
	// One keyword, one intensity indicator, one amount: 10 + 20 + 10.
	assert.Equal(t, 40.0, credit.Instances[0].Intensity)
}

func TestDetect_MoreKeywordsNeverLowerTheScore(t *testing.T) {
	d := newDetector()
	sparse := findDetection(d.Detect("We may default."), model.CategoryCredit)
	dense := findDetection(d.Detect("We may default amid bankruptcy."), model.CategoryCredit)

	require.NotNil(t, sparse)
	require.NotNil(t, dense)
	assert.GreaterOrEqual(t, dense.Score, sparse.Score)
}

func TestDetect_ScoreIsMeanOfInstances(t *testing.T) {
	detections := newDetector().Detect("We risk default. Bankruptcy is possible.")

	credit := findDetection(detections, model.CategoryCredit)
	require.NotNil(t, credit)
	assert.Equal(t, 2, credit.SentenceCount)
	assert.Equal(t, 10.0, credit.Score)
}

func TestDetect_MultipleCategories(t *testing.T) {
	text := "Market volatility hurt earnings. A data breach exposed customer records. " +
		"Regulators launched an investigation."
	detections := newDetector().Detect(text)

	assert.NotNil(t, findDetection(detections, model.CategoryMarket))
	assert.NotNil(t, findDetection(detections, model.CategoryOperational))
	assert.NotNil(t, findDetection(detections, model.CategoryRegulatory))
	assert.Nil(t, findDetection(detections, model.CategoryCredit))
}

func TestDescribeDocument_SECFiling(t *testing.T) {
	info := DescribeDocument("Item 1A. Risk Factors. As filed with the SEC.")
	assert.Equal(t, "sec_filing", info.DocType)
	assert.Equal(t, "SEC EDGAR", info.Source)
}

func TestDescribeDocument_PressRelease(t *testing.T) {
	info := DescribeDocument("The company is pleased to announce record results.")
	assert.Equal(t, "press_release", info.DocType)
}

func TestDescribeDocument_Unknown(t *testing.T) {
	info := DescribeDocument("hello world")
	assert.Equal(t, "unknown", info.DocType)
	assert.Equal(t, 2, info.WordCount)
	assert.Zero(t, info.RiskDensity)
}

func TestDescribeDocument_RiskDensity(t *testing.T) {
	info := DescribeDocument("risk risk risk")
	assert.Equal(t, 3, info.WordCount)
	assert.InDelta(t, 33.3, info.RiskDensity, 0.1)
}
