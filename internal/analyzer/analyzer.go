package analyzer

import (
	"fmt"
	"sync"
	"unicode/utf8"

	"github.com/prathickshaselvaraj/FinancialRiskRadar/internal/catalog"
	"github.com/prathickshaselvaraj/FinancialRiskRadar/internal/detector"
	"github.com/prathickshaselvaraj/FinancialRiskRadar/internal/model"
	"github.com/prathickshaselvaraj/FinancialRiskRadar/internal/network"
	"github.com/prathickshaselvaraj/FinancialRiskRadar/internal/scorer"
	"github.com/prathickshaselvaraj/FinancialRiskRadar/internal/trend"
)

// Analyzer runs the full risk pipeline: detection first, then scoring, trend
// analysis, and network construction over the same detections. All state is
// scoped to one Analyze call.
type Analyzer struct {
	cat      *catalog.Catalog
	detector *detector.Detector
	scorer   *scorer.Scorer
}

// New creates an Analyzer over the given catalog.
func New(cat *catalog.Catalog) *Analyzer {
	return &Analyzer{
		cat:      cat,
		detector: detector.New(cat),
		scorer:   scorer.New(cat),
	}
}

// Options carries optional per-call inputs.
type Options struct {
	// Enrichment holds externally sourced figures; nil means none.
	Enrichment *model.Enrichment
}

// Analyze produces the combined risk profile for one document. Empty or
// low-signal text degrades to a neutral result; only a genuine contract
// violation (invalid UTF-8) returns an error.
func (a *Analyzer) Analyze(text string, entities model.Entities, opts Options) (*model.AnalysisResult, error) {
	if !utf8.ValidString(text) {
		return nil, fmt.Errorf("analyze: text is not valid UTF-8")
	}

	detections := a.detector.Detect(text)

	// The three consumers derive independent outputs from the same immutable
	// detection set, so they run concurrently.
	var (
		wg      sync.WaitGroup
		scores  model.ScoreBreakdown
		trends  model.TrendSummary
		netwk   model.NetworkSummary
	)
	wg.Add(3)
	go func() {
		defer wg.Done()
		scores = a.scorer.Score(detections, text, opts.Enrichment)
	}()
	go func() {
		defer wg.Done()
		trends = trend.Analyze(text, detections)
	}()
	go func() {
		defer wg.Done()
		netwk = network.Build(text, entities, detections)
	}()
	wg.Wait()

	return &model.AnalysisResult{
		Document:   detector.DescribeDocument(text),
		Detections: detections,
		Scores:     scores,
		Trend:      trends,
		Network:    netwk,
	}, nil
}
