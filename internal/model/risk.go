package model

// CategoryID identifies one of the four fixed risk domains.
type CategoryID string

const (
	CategoryCredit      CategoryID = "credit_risk"
	CategoryMarket      CategoryID = "market_risk"
	CategoryOperational CategoryID = "operational_risk"
	CategoryRegulatory  CategoryID = "regulatory_risk"
)

// RiskCategory is one entry of the category catalog. Loaded once, never mutated.
type RiskCategory struct {
	ID                  CategoryID `yaml:"id" json:"id"`
	Keywords            []string   `yaml:"keywords" json:"keywords"`
	IntensityIndicators []string   `yaml:"intensity_indicators" json:"intensity_indicators"`
	ContextPhrases      []string   `yaml:"context_phrases" json:"context_phrases"`
	Weight              float64    `yaml:"weight" json:"weight"`
	Color               string     `yaml:"color" json:"color"`
}

// RiskInstance is a single sentence match for one category.
type RiskInstance struct {
	Sentence  string   `json:"sentence"`
	Keywords  []string `json:"keywords"`
	Intensity float64  `json:"intensity"`
	Amounts   []string `json:"financial_impact,omitempty"`
}

// RiskDetection aggregates all instances of one category across a document.
type RiskDetection struct {
	Category      CategoryID     `json:"type"`
	Score         float64        `json:"score"`
	Instances     []RiskInstance `json:"instances"`
	KeywordsFound []string       `json:"keywords_found"`
	Color         string         `json:"color"`
	SentenceCount int            `json:"sentence_count"`
}
