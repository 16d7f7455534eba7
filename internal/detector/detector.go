package detector

import (
	"regexp"
	"strings"

	"github.com/prathickshaselvaraj/FinancialRiskRadar/internal/catalog"
	"github.com/prathickshaselvaraj/FinancialRiskRadar/internal/model"
	"github.com/prathickshaselvaraj/FinancialRiskRadar/internal/textutil"
)

// amountRe matches in-sentence dollar mentions like "$2 billion" or "$500".
var amountRe = regexp.MustCompile(`\$\d+(?:\.\d+)?(?:\s+[mb]illion)?`)

// Detector finds per-sentence risk language for every catalog category.
// It is a pure function of text and catalog; Detect never fails.
type Detector struct {
	cat *catalog.Catalog
}

// New creates a Detector over the given catalog.
func New(cat *catalog.Catalog) *Detector {
	return &Detector{cat: cat}
}

// Detect splits text into sentences and scores each against every category.
// Categories with no matching sentence produce no detection. Empty input
// yields an empty detection set.
func (d *Detector) Detect(text string) []model.RiskDetection {
	sentences := textutil.SplitSentences(text)
	if len(sentences) == 0 {
		return nil
	}

	detections := make([]model.RiskDetection, 0, len(d.cat.Categories))
	for _, cat := range d.cat.Categories {
		det := d.detectCategory(cat, sentences)
		if det != nil {
			detections = append(detections, *det)
		}
	}
	return detections
}

func (d *Detector) detectCategory(cat model.RiskCategory, sentences []string) *model.RiskDetection {
	var instances []model.RiskInstance
	seen := make(map[string]bool)

	for _, sentence := range sentences {
		lower := strings.ToLower(sentence)

		var found []string
		for _, kw := range cat.Keywords {
			if strings.Contains(lower, strings.ToLower(kw)) {
				found = append(found, kw)
			}
		}
		if len(found) == 0 {
			continue
		}

		intensity := float64(10 * len(found))
		for _, ind := range cat.IntensityIndicators {
			if strings.Contains(lower, strings.ToLower(ind)) {
				intensity += 20
			}
		}
		for _, phrase := range cat.ContextPhrases {
			if strings.Contains(lower, strings.ToLower(phrase)) {
				intensity += 15
			}
		}
		amounts := amountRe.FindAllString(sentence, -1)
		intensity += float64(10 * len(amounts))
		if intensity > 100 {
			intensity = 100
		}

		instances = append(instances, model.RiskInstance{
			Sentence:  sentence,
			Keywords:  found,
			Intensity: intensity,
			Amounts:   amounts,
		})
		for _, kw := range found {
			seen[kw] = true
		}
	}

	if len(instances) == 0 {
		return nil
	}

	total := 0.0
	for _, inst := range instances {
		total += inst.Intensity
	}
	score := total / float64(len(instances))
	if score > 95 {
		score = 95
	}

	// Keyword union in catalog order, for stable output.
	union := make([]string, 0, len(seen))
	for _, kw := range cat.Keywords {
		if seen[kw] {
			union = append(union, kw)
		}
	}

	return &model.RiskDetection{
		Category:      cat.ID,
		Score:         score,
		Instances:     instances,
		KeywordsFound: union,
		Color:         cat.Color,
		SentenceCount: len(instances),
	}
}
