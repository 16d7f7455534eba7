package recorder

import "github.com/prathickshaselvaraj/FinancialRiskRadar/internal/model"

// Recorder persists analysis results for later review.
type Recorder interface {
	RecordAnalysis(source string, result *model.AnalysisResult) (id string, err error)
	Close() error
}

// NoopRecorder is a no-op implementation used when SQLite is not configured.
type NoopRecorder struct{}

func NewNoopRecorder() *NoopRecorder { return &NoopRecorder{} }

func (n *NoopRecorder) RecordAnalysis(_ string, _ *model.AnalysisResult) (string, error) {
	return "", nil
}
func (n *NoopRecorder) Close() error { return nil }
