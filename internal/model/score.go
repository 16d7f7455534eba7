package model

// ModifierFamily names one of the four document-level intensity vocabularies.
type ModifierFamily string

const (
	ModifierFinancialMagnitude ModifierFamily = "financial_magnitude"
	ModifierTemporalUrgency    ModifierFamily = "temporal_urgency"
	ModifierRegulatorySeverity ModifierFamily = "regulatory_severity"
	ModifierImpactScale        ModifierFamily = "impact_scale"
)

// Timeframe classifies temporal references found in the document.
type Timeframe string

const (
	TimeframeImmediate  Timeframe = "immediate"
	TimeframeShortTerm  Timeframe = "short_term"
	TimeframeMediumTerm Timeframe = "medium_term"
	TimeframeLongTerm   Timeframe = "long_term"
	TimeframeUnknown    Timeframe = "unknown"
)

// TemporalUrgency summarizes time-horizon language in the document.
type TemporalUrgency struct {
	OverallUrgency   float64           `json:"overall_urgency"`
	TimeReferences   map[Timeframe]int `json:"time_references"`
	PrimaryTimeframe Timeframe         `json:"primary_timeframe"`
}

// AmountMention is one extracted dollar amount, normalized to millions.
type AmountMention struct {
	Original      string  `json:"original"`
	ValueMillions float64 `json:"value_millions"`
}

// FinancialImpact summarizes dollar amounts mentioned in the document.
type FinancialImpact struct {
	TotalMillions float64         `json:"total_impact_millions"`
	Amounts       []AmountMention `json:"amounts_found"`
	ImpactScore   float64         `json:"impact_score"`
	ImpactLevel   string          `json:"impact_level"`
}

// RiskSummary is the human-facing rollup of a score breakdown.
type RiskSummary struct {
	RiskLevel       string     `json:"risk_level"`
	Recommendation  string     `json:"recommendation"`
	TotalInstances  int        `json:"total_risk_instances"`
	PrimaryCategory CategoryID `json:"primary_risk_category"`
	Confidence      float64    `json:"confidence_score"`
}

// ScoreBreakdown is the full output of the score aggregator.
// Recomputed fresh per analysis; never mutated incrementally.
type ScoreBreakdown struct {
	OverallScore       float64                    `json:"overall_risk_score"`
	CategoryScores     map[CategoryID]float64     `json:"category_scores"`
	BaseScores         map[CategoryID]float64     `json:"base_scores"`
	IntensityModifiers map[ModifierFamily]float64 `json:"intensity_modifiers"`
	Temporal           TemporalUrgency            `json:"temporal_factors"`
	Financial          FinancialImpact            `json:"financial_impact"`
	Summary            RiskSummary                `json:"risk_summary"`
}
