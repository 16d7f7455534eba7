package model

// SegmentKind records how a document segment was produced.
type SegmentKind string

const (
	SegmentParagraph     SegmentKind = "paragraph"
	SegmentSentenceGroup SegmentKind = "sentence_group"
)

// DocumentSegment is a contiguous slice of the document with its risk metrics.
// Segments are produced once per analysis and never merged or split afterward.
type DocumentSegment struct {
	Index       int          `json:"segment_number"`
	Text        string       `json:"-"`
	Kind        SegmentKind  `json:"type"`
	WordCount   int          `json:"word_count"`
	RiskDensity float64      `json:"risk_density"`
	Categories  []CategoryID `json:"risk_categories"`
}

// Hotspot marks a segment whose composite risk indicators exceed the threshold.
type Hotspot struct {
	SegmentIndex    int          `json:"segment_number"`
	Score           float64      `json:"hotspot_score"`
	RiskDensity     float64      `json:"risk_density"`
	Categories      []CategoryID `json:"risk_categories"`
	FinancialImpact bool         `json:"financial_impact"`
	Preview         string       `json:"segment_preview"`
}

// EvolutionPhase is one third of the document (introduction/development/conclusion).
type EvolutionPhase struct {
	Name           string  `json:"phase"`
	RiskDensity    float64 `json:"risk_density"`
	IntensityScore int     `json:"intensity_score"`
	SegmentCount   int     `json:"segment_count"`
	PrimaryFocus   string  `json:"primary_focus"`
}

// TrendSummary is the full output of the document trend analyzer.
type TrendSummary struct {
	Segments         []DocumentSegment `json:"segment_analysis"`
	SegmentCount     int               `json:"segment_count"`
	Densities        []float64         `json:"densities"`
	Slope            float64           `json:"slope"`
	Trend            string            `json:"trend"`
	AverageDensity   float64           `json:"average_density"`
	MaxDensity       float64           `json:"max_density"`
	DensityStdDev    float64           `json:"density_std_dev"`
	Distribution     string            `json:"distribution_type"`
	Hotspots         []Hotspot         `json:"risk_hotspots"`
	EvolutionPattern string            `json:"evolution_pattern"`
	Phases           []EvolutionPhase  `json:"phases"`
	MostRiskyPhase   string            `json:"most_risky_phase"`
	Interpretation   string            `json:"trend_interpretation"`
}
