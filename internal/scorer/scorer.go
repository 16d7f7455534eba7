package scorer

import (
	"sort"

	"github.com/prathickshaselvaraj/FinancialRiskRadar/internal/catalog"
	"github.com/prathickshaselvaraj/FinancialRiskRadar/internal/model"
)

// Bonus cap fractions for the final combination. Each document-level modifier
// is normalized to [0,1] and scaled by its cap, so the combined multiplier
// stays within [1, 1+intensityCap+temporalCap+financialCap+enrichmentCap]
// and is monotone in every modifier.
const (
	intensityCap  = 0.20
	temporalCap   = 0.15
	financialCap  = 0.25
	enrichmentCap = 0.10
)

// Category-specific base multipliers. Credit and regulatory findings carry
// more immediate consequences than the detection score alone reflects.
var baseMultipliers = map[model.CategoryID]float64{
	model.CategoryCredit:     1.10,
	model.CategoryRegulatory: 1.05,
}

// Scorer combines per-category detections with document-level modifiers
// into final category scores and one weighted overall score.
type Scorer struct {
	cat *catalog.Catalog
}

// New creates a Scorer over the given catalog.
func New(cat *catalog.Catalog) *Scorer {
	return &Scorer{cat: cat}
}

// Score produces the full breakdown for one document. No detections yield an
// all-zero breakdown with a Minimal summary, never an error. The enrichment
// argument may be nil; absent figures change nothing.
func (s *Scorer) Score(detections []model.RiskDetection, text string, enr *model.Enrichment) model.ScoreBreakdown {
	if len(detections) == 0 {
		return emptyBreakdown()
	}

	base := baseScores(detections)
	modifiers := intensityModifiers(text)
	temporal := analyzeTemporalUrgency(text)
	financial := analyzeFinancialImpact(text)

	final := s.combine(base, modifiers, temporal, financial, enr)

	return model.ScoreBreakdown{
		OverallScore:       final.overall,
		CategoryScores:     final.categories,
		BaseScores:         base,
		IntensityModifiers: modifiers,
		Temporal:           temporal,
		Financial:          financial,
		Summary:            s.summarize(final, detections),
	}
}

func baseScores(detections []model.RiskDetection) map[model.CategoryID]float64 {
	base := make(map[model.CategoryID]float64, len(detections))
	for _, det := range detections {
		score := det.Score
		if mult, ok := baseMultipliers[det.Category]; ok {
			score *= mult
		}
		if score > 100 {
			score = 100
		}
		base[det.Category] = score
	}
	return base
}

type finalScores struct {
	overall    float64
	categories map[model.CategoryID]float64
}

func (s *Scorer) combine(base map[model.CategoryID]float64, modifiers map[model.ModifierFamily]float64,
	temporal model.TemporalUrgency, financial model.FinancialImpact, enr *model.Enrichment) finalScores {

	// Sum in declaration order: float addition order must be stable.
	avgModifier, families := 0.0, 0
	for _, family := range modifierOrder {
		if v, ok := modifiers[family]; ok {
			avgModifier += v
			families++
		}
	}
	if families > 0 {
		avgModifier /= float64(families)
	}

	intensityBonus := avgModifier / 100 * intensityCap
	temporalBonus := temporal.OverallUrgency / 100 * temporalCap
	financialBonus := financial.ImpactScore / 100 * financialCap
	multiplier := 1 + intensityBonus + temporalBonus + financialBonus + enrichmentBonus(enr)

	categories := make(map[model.CategoryID]float64, len(base))
	for id, score := range base {
		final := score * multiplier
		if final > 100 {
			final = 100
		}
		categories[id] = final
	}

	// Weight-averaged overall, normalized over the detected categories only.
	// Summed in a fixed order for the same reason as the modifier average.
	overall, totalWeight := 0.0, 0.0
	for _, id := range s.orderedCategories(categories) {
		w := s.cat.Weight(id)
		overall += categories[id] * w
		totalWeight += w
	}
	if totalWeight > 0 {
		overall /= totalWeight
	}

	return finalScores{overall: overall, categories: categories}
}

// orderedCategories returns the scored category ids in catalog order, with
// any ids outside the catalog appended in sorted order.
func (s *Scorer) orderedCategories(scores map[model.CategoryID]float64) []model.CategoryID {
	ids := make([]model.CategoryID, 0, len(scores))
	inCatalog := make(map[model.CategoryID]bool, len(s.cat.Categories))
	for _, cat := range s.cat.Categories {
		inCatalog[cat.ID] = true
		if _, ok := scores[cat.ID]; ok {
			ids = append(ids, cat.ID)
		}
	}
	var extras []model.CategoryID
	for id := range scores {
		if !inCatalog[id] {
			extras = append(extras, id)
		}
	}
	sort.Slice(extras, func(i, j int) bool { return extras[i] < extras[j] })
	return append(ids, extras...)
}

// enrichmentBonus maps optional external figures to a small bounded bonus.
// Volatility is read as an annualized percentage, debt-to-equity as a ratio
// where 2.0 or above is treated as fully stretched.
func enrichmentBonus(enr *model.Enrichment) float64 {
	if enr == nil {
		return 0
	}
	bonus := 0.0
	if enr.MarketVolatility != nil {
		v := *enr.MarketVolatility / 100
		if v < 0 {
			v = 0
		}
		if v > 1 {
			v = 1
		}
		bonus += v * enrichmentCap / 2
	}
	if enr.DebtToEquity != nil {
		r := *enr.DebtToEquity / 2
		if r < 0 {
			r = 0
		}
		if r > 1 {
			r = 1
		}
		bonus += r * enrichmentCap / 2
	}
	return bonus
}

func (s *Scorer) summarize(final finalScores, detections []model.RiskDetection) model.RiskSummary {
	level, recommendation := riskLevel(final.overall)

	totalInstances := 0
	for _, det := range detections {
		totalInstances += det.SentenceCount
	}

	// Primary category: highest final score, catalog order breaking ties.
	primary := model.CategoryID("")
	best := -1.0
	for _, cat := range s.cat.Categories {
		if score, ok := final.categories[cat.ID]; ok && score > best {
			best = score
			primary = cat.ID
		}
	}

	confidence := final.overall * 1.1
	if confidence > 95 {
		confidence = 95
	}

	return model.RiskSummary{
		RiskLevel:       level,
		Recommendation:  recommendation,
		TotalInstances:  totalInstances,
		PrimaryCategory: primary,
		Confidence:      confidence,
	}
}

func riskLevel(overall float64) (level, recommendation string) {
	switch {
	case overall >= 80:
		return "Critical", "Immediate attention required. Significant financial and operational impacts likely."
	case overall >= 60:
		return "High", "Urgent review needed. Potential for material impacts."
	case overall >= 40:
		return "Moderate", "Monitor closely. Some potential for negative impacts."
	case overall >= 20:
		return "Low", "Standard monitoring. Limited immediate concerns."
	default:
		return "Minimal", "Routine oversight. No significant risks identified."
	}
}

func emptyBreakdown() model.ScoreBreakdown {
	return model.ScoreBreakdown{
		CategoryScores:     map[model.CategoryID]float64{},
		BaseScores:         map[model.CategoryID]float64{},
		IntensityModifiers: map[model.ModifierFamily]float64{},
		Temporal: model.TemporalUrgency{
			TimeReferences:   map[model.Timeframe]int{},
			PrimaryTimeframe: model.TimeframeUnknown,
		},
		Financial: model.FinancialImpact{ImpactLevel: "Minimal"},
		Summary: model.RiskSummary{
			RiskLevel:      "Minimal",
			Recommendation: "No significant risks identified in the analyzed content.",
		},
	}
}
