package trend

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/prathickshaselvaraj/FinancialRiskRadar/internal/model"
	"github.com/prathickshaselvaraj/FinancialRiskRadar/internal/textutil"
)

const (
	targetSegments   = 10
	hotspotThreshold = 30
	maxHotspots      = 5
)

// riskVocabulary is the coarse term list used for segment risk density.
var riskVocabulary = []string{
	"risk", "uncertainty", "volatility", "default", "investigation",
	"compliance", "breach", "failure", "lawsuit", "fines",
}

// intensityIndicators are counted per evolution phase.
var intensityIndicators = []string{"crisis", "urgent", "severe", "critical", "immediate"}

// financialTerms mark segments carrying monetary impact.
var financialTerms = []string{"$", "million", "billion", "fines", "loss", "cost"}

// phaseFocusVocab maps a phase focus label to its cue terms.
var phaseFocusVocab = []struct {
	focus string
	terms []string
}{
	{"regulatory", []string{"sec", "investigation", "compliance", "regulation"}},
	{"financial", []string{"revenue", "profit", "loss", "earnings", "debt"}},
	{"operational", []string{"system", "process", "cyber", "breach", "outage"}},
	{"market", []string{"volatility", "economic", "recession", "inflation"}},
}

// Analyze segments the document, fits a density trend, ranks hotspots, and
// classifies the three-phase risk evolution. Degenerate input (empty text,
// fewer than 3 segments) degrades to a well-defined summary, never an error.
func Analyze(text string, detections []model.RiskDetection) model.TrendSummary {
	segments := segmentDocument(text)
	if len(segments) == 0 {
		return emptySummary()
	}

	densities := make([]float64, len(segments))
	for i := range segments {
		segments[i].RiskDensity = riskDensity(segments[i].Text)
		segments[i].Categories = categoriesPresent(segments[i].Text, detections)
		segments[i].WordCount = textutil.WordCount(segments[i].Text)
		densities[i] = segments[i].RiskDensity
	}

	slope := olsSlope(densities)
	avg, max, stddev := densityStats(densities)
	hotspots := findHotspots(segments)
	pattern, phases, riskiest := analyzeEvolution(segments)

	summary := model.TrendSummary{
		Segments:         segments,
		SegmentCount:     len(segments),
		Densities:        densities,
		Slope:            slope,
		Trend:            classifyTrend(slope),
		AverageDensity:   avg,
		MaxDensity:       max,
		DensityStdDev:    stddev,
		Distribution:     classifyDistribution(stddev),
		Hotspots:         hotspots,
		EvolutionPattern: pattern,
		Phases:           phases,
		MostRiskyPhase:   riskiest,
	}
	summary.Interpretation = interpret(summary)
	return summary
}

// segmentDocument prefers paragraph boundaries; when the document has fewer
// paragraphs than the target it groups sentences evenly instead. At most
// targetSegments segments are returned.
func segmentDocument(text string) []model.DocumentSegment {
	paragraphs := textutil.SplitParagraphs(text)

	var segments []model.DocumentSegment
	if len(paragraphs) >= targetSegments {
		for i, p := range paragraphs {
			segments = append(segments, model.DocumentSegment{Index: i + 1, Text: p, Kind: model.SegmentParagraph})
		}
	} else {
		sentences := textutil.SplitSentences(text)
		perSegment := len(sentences) / targetSegments
		if perSegment < 1 {
			perSegment = 1
		}
		for i := 0; i < len(sentences); i += perSegment {
			end := i + perSegment
			if end > len(sentences) {
				end = len(sentences)
			}
			segments = append(segments, model.DocumentSegment{
				Index: len(segments) + 1,
				Text:  strings.Join(sentences[i:end], " "),
				Kind:  model.SegmentSentenceGroup,
			})
		}
	}

	if len(segments) > targetSegments {
		segments = segments[:targetSegments]
	}
	return segments
}

// riskDensity is the share of words containing any risk vocabulary term,
// as a percentage clamped to [0, 100].
func riskDensity(text string) float64 {
	total := textutil.WordCount(text)
	if total == 0 {
		return 0
	}
	matching := textutil.CountMatchingWords(text, riskVocabulary)
	return textutil.Clamp(float64(matching)/float64(total)*100, 0, 100)
}

func categoriesPresent(text string, detections []model.RiskDetection) []model.CategoryID {
	lower := strings.ToLower(text)
	var present []model.CategoryID
	for _, det := range detections {
		for _, kw := range det.KeywordsFound {
			if strings.Contains(lower, kw) {
				present = append(present, det.Category)
				break
			}
		}
	}
	return present
}

// olsSlope fits an ordinary least squares line over the sequence and returns
// its slope. Fewer than two points yield 0.
func olsSlope(ys []float64) float64 {
	n := float64(len(ys))
	if n < 2 {
		return 0
	}
	var sumX, sumY, sumXY, sumXX float64
	for i, y := range ys {
		x := float64(i)
		sumX += x
		sumY += y
		sumXY += x * y
		sumXX += x * x
	}
	denom := n*sumXX - sumX*sumX
	if denom == 0 {
		return 0
	}
	return (n*sumXY - sumX*sumY) / denom
}

func classifyTrend(slope float64) string {
	switch {
	case slope > 0.5:
		return "increasing"
	case slope < -0.5:
		return "decreasing"
	default:
		return "stable"
	}
}

func densityStats(densities []float64) (avg, max, stddev float64) {
	if len(densities) == 0 {
		return 0, 0, 0
	}
	sum := 0.0
	for _, d := range densities {
		sum += d
		if d > max {
			max = d
		}
	}
	avg = sum / float64(len(densities))
	if len(densities) > 1 {
		varSum := 0.0
		for _, d := range densities {
			varSum += (d - avg) * (d - avg)
		}
		stddev = math.Sqrt(varSum / float64(len(densities)))
	}
	return avg, max, stddev
}

func classifyDistribution(stddev float64) string {
	switch {
	case stddev < 5:
		return "uniform"
	case stddev < 15:
		return "clustered"
	default:
		return "concentrated"
	}
}

func findHotspots(segments []model.DocumentSegment) []model.Hotspot {
	var hotspots []model.Hotspot
	for _, seg := range segments {
		financial := textutil.ContainsAny(seg.Text, financialTerms)
		score := seg.RiskDensity*0.6 + float64(len(seg.Categories))*20
		if financial {
			score += 50
		}
		if score <= hotspotThreshold {
			continue
		}
		hotspots = append(hotspots, model.Hotspot{
			SegmentIndex:    seg.Index,
			Score:           score,
			RiskDensity:     seg.RiskDensity,
			Categories:      seg.Categories,
			FinancialImpact: financial,
			Preview:         preview(seg.Text),
		})
	}
	sort.SliceStable(hotspots, func(i, j int) bool { return hotspots[i].Score > hotspots[j].Score })
	if len(hotspots) > maxHotspots {
		hotspots = hotspots[:maxHotspots]
	}
	return hotspots
}

func preview(text string) string {
	if len(text) > 100 {
		return text[:100] + "..."
	}
	return text
}

// analyzeEvolution splits the segments into three equal thirds and
// classifies the density ordering across them.
func analyzeEvolution(segments []model.DocumentSegment) (pattern string, phases []model.EvolutionPhase, riskiest string) {
	if len(segments) < 3 {
		return "insufficient_data", nil, "unknown"
	}

	third := len(segments) / 3
	parts := []struct {
		name     string
		segments []model.DocumentSegment
	}{
		{"Introduction", segments[:third]},
		{"Development", segments[third : 2*third]},
		{"Conclusion", segments[2*third:]},
	}

	bestDensity := -1.0
	for _, part := range parts {
		var texts []string
		for _, seg := range part.segments {
			texts = append(texts, seg.Text)
		}
		phaseText := strings.Join(texts, " ")

		intensity := 0
		lower := strings.ToLower(phaseText)
		for _, ind := range intensityIndicators {
			if strings.Contains(lower, ind) {
				intensity++
			}
		}

		phase := model.EvolutionPhase{
			Name:           part.name,
			RiskDensity:    riskDensity(phaseText),
			IntensityScore: intensity,
			SegmentCount:   len(part.segments),
			PrimaryFocus:   phaseFocus(lower),
		}
		phases = append(phases, phase)
		if phase.RiskDensity > bestDensity {
			bestDensity = phase.RiskDensity
			riskiest = phase.Name
		}
	}

	return classifyEvolution(phases), phases, riskiest
}

func phaseFocus(lower string) string {
	best, bestScore := "general", 0
	for _, f := range phaseFocusVocab {
		score := 0
		for _, term := range f.terms {
			if strings.Contains(lower, term) {
				score++
			}
		}
		if score > bestScore {
			bestScore = score
			best = f.focus
		}
	}
	return best
}

func classifyEvolution(phases []model.EvolutionPhase) string {
	d := []float64{phases[0].RiskDensity, phases[1].RiskDensity, phases[2].RiskDensity}
	maxD := math.Max(d[0], math.Max(d[1], d[2]))
	switch {
	case d[0] < d[1] && d[1] < d[2]:
		return "escalating"
	case d[0] > d[1] && d[1] > d[2]:
		return "de-escalating"
	case d[1] > d[0] && d[1] > d[2]:
		return "peak_middle"
	case maxD == d[0]:
		return "front_loaded"
	case maxD == d[2]:
		return "back_loaded"
	default:
		return "variable"
	}
}

func interpret(s model.TrendSummary) string {
	var parts []string
	switch s.Trend {
	case "increasing":
		parts = append(parts, "Risk discussion intensifies towards the end of the document.")
	case "decreasing":
		parts = append(parts, "Risk discussion is most prominent in the early sections.")
	default:
		parts = append(parts, "Risk discussion is relatively consistent throughout.")
	}
	switch s.Distribution {
	case "concentrated":
		parts = append(parts, "Risks are concentrated in specific sections rather than spread evenly.")
	case "uniform":
		parts = append(parts, "Risks are evenly distributed across the document.")
	}
	if len(s.Hotspots) > 0 {
		parts = append(parts, fmt.Sprintf("Found %d sections with particularly high risk concentration.", len(s.Hotspots)))
	}
	return strings.Join(parts, " ")
}

func emptySummary() model.TrendSummary {
	return model.TrendSummary{
		Trend:            "insufficient_data",
		Distribution:     "uniform",
		EvolutionPattern: "insufficient_data",
		MostRiskyPhase:   "unknown",
		Interpretation:   "Insufficient data for trend analysis.",
	}
}
