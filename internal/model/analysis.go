package model

// Entities holds pre-extracted entity lists supplied by the caller.
// The engine consumes these; it never extracts entities itself.
type Entities struct {
	Companies        []string `json:"companies" yaml:"companies"`
	RegulatoryBodies []string `json:"regulatory_bodies" yaml:"regulatory_bodies"`
	FinancialAmounts []string `json:"financial_amounts,omitempty" yaml:"financial_amounts,omitempty"`
}

// Enrichment carries optional externally sourced figures. Nil fields are
// ignored; their absence never changes default behavior.
type Enrichment struct {
	MarketVolatility *float64 `json:"market_volatility,omitempty"`
	DebtToEquity     *float64 `json:"debt_to_equity,omitempty"`
}

// DocumentInfo describes the analyzed document.
type DocumentInfo struct {
	DocType     string  `json:"document_type"`
	Source      string  `json:"estimated_source"`
	WordCount   int     `json:"word_count"`
	RiskDensity float64 `json:"risk_density"`
}

// AnalysisResult bundles the outputs of one analysis call. It is a pure
// function of the inputs: identical text and entities yield an identical
// result. Record identity (id, timestamp) is assigned at persistence time.
type AnalysisResult struct {
	Document   DocumentInfo    `json:"document_info"`
	Detections []RiskDetection `json:"detected_risks"`
	Scores     ScoreBreakdown  `json:"risk_scores"`
	Trend      TrendSummary    `json:"trend_analysis"`
	Network    NetworkSummary  `json:"relationship_network"`
}
