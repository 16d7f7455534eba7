package catalog

import (
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/prathickshaselvaraj/FinancialRiskRadar/internal/model"
)

// Catalog holds the immutable risk category configuration. Construct once at
// startup and pass by reference into every analysis call. Category order is
// significant: it breaks ties when picking a primary category.
type Catalog struct {
	Categories []model.RiskCategory `yaml:"categories"`
}

// Default returns the built-in four-category catalog.
func Default() *Catalog {
	return &Catalog{Categories: []model.RiskCategory{
		{
			ID: model.CategoryCredit,
			Keywords: []string{"default", "bankruptcy", "liquidity", "debt", "leverage", "collateral",
				"loan loss", "borrowing risk", "insolvency", "credit crisis"},
			IntensityIndicators: []string{"crisis", "severe", "imminent", "unable to pay"},
			ContextPhrases:      []string{"unable to meet", "facing default", "credit deterioration"},
			Weight:              0.35,
			Color:               "#FF6B6B",
		},
		{
			ID: model.CategoryMarket,
			Keywords: []string{"volatility", "market crash", "recession", "inflation", "interest rates",
				"economic downturn", "trading loss", "currency risk", "commodity prices"},
			IntensityIndicators: []string{"crash", "collapse", "plunge", "sharp decline"},
			ContextPhrases:      []string{"impacted by market", "due to economic", "affected by volatility"},
			Weight:              0.25,
			Color:               "#4ECDC4",
		},
		{
			ID: model.CategoryOperational,
			Keywords: []string{"fraud", "cybersecurity", "data breach", "system outage", "compliance",
				"internal controls", "operational failure", "process breakdown"},
			IntensityIndicators: []string{"breach", "outage", "failure", "breakdown"},
			ContextPhrases:      []string{"system failure", "security incident", "control weakness"},
			Weight:              0.20,
			Color:               "#45B7D1",
		},
		{
			ID: model.CategoryRegulatory,
			Keywords: []string{"sec", "investigation", "fines", "regulation", "lawsuit", "enforcement",
				"legal action", "compliance failure", "penalties", "subpoena"},
			IntensityIndicators: []string{"investigation", "lawsuit", "subpoena", "enforcement"},
			ContextPhrases:      []string{"under investigation", "facing lawsuit", "regulatory action"},
			Weight:              0.20,
			Color:               "#96CEB4",
		},
	}}
}

// Load reads a catalog from a YAML file. An empty path returns the default catalog.
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	cat := &Catalog{}
	if err := yaml.Unmarshal(data, cat); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	if err := cat.Validate(); err != nil {
		return nil, err
	}
	return cat, nil
}

// Validate checks the catalog invariants: at least one category, every
// category has keywords, and weights sum to 1.0 within 1e-6.
func (c *Catalog) Validate() error {
	if len(c.Categories) == 0 {
		return fmt.Errorf("catalog has no categories")
	}
	sum := 0.0
	seen := make(map[model.CategoryID]bool, len(c.Categories))
	for _, cat := range c.Categories {
		if cat.ID == "" {
			return fmt.Errorf("category with empty id")
		}
		if seen[cat.ID] {
			return fmt.Errorf("duplicate category %q", cat.ID)
		}
		seen[cat.ID] = true
		if len(cat.Keywords) == 0 {
			return fmt.Errorf("category %q has no keywords", cat.ID)
		}
		if cat.Weight <= 0 {
			return fmt.Errorf("category %q has non-positive weight", cat.ID)
		}
		sum += cat.Weight
	}
	if math.Abs(sum-1.0) > 1e-6 {
		return fmt.Errorf("category weights sum to %.6f, want 1.0", sum)
	}
	return nil
}

// Get returns the category with the given id, or false if absent.
func (c *Catalog) Get(id model.CategoryID) (model.RiskCategory, bool) {
	for _, cat := range c.Categories {
		if cat.ID == id {
			return cat, true
		}
	}
	return model.RiskCategory{}, false
}

// Weight returns the configured weight for a category, or the fallback for
// ids outside the catalog.
func (c *Catalog) Weight(id model.CategoryID) float64 {
	if cat, ok := c.Get(id); ok {
		return cat.Weight
	}
	return 0.25
}
