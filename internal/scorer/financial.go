package scorer

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/prathickshaselvaraj/FinancialRiskRadar/internal/model"
)

var (
	unitAmountRe = regexp.MustCompile(`(?i)\$(\d+(?:\.\d+)?)\s*(billion|million|thousand)`)
	wordAmountRe = regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)\s*(billion|million|thousand)\s+dollars`)
	bareAmountRe = regexp.MustCompile(`\$(\d+(?:,\d{3})*(?:\.\d{2})?)`)
	unitSuffixRe = regexp.MustCompile(`(?i)^(?:\.\d+)?\s*(billion|million|thousand)`)
)

// analyzeFinancialImpact extracts dollar amounts from the document,
// normalizes them to millions, and maps the total to an impact score.
func analyzeFinancialImpact(text string) model.FinancialImpact {
	var amounts []model.AmountMention
	total := 0.0

	add := func(original string, millions float64) {
		amounts = append(amounts, model.AmountMention{Original: original, ValueMillions: millions})
		total += millions
	}

	for _, m := range unitAmountRe.FindAllStringSubmatch(text, -1) {
		add(fmt.Sprintf("$%s %s", m[1], strings.ToLower(m[2])), toMillions(m[1], m[2]))
	}
	for _, m := range wordAmountRe.FindAllStringSubmatch(text, -1) {
		add(fmt.Sprintf("$%s %s", m[1], strings.ToLower(m[2])), toMillions(m[1], m[2]))
	}

	// Bare dollar amounts; skip those already captured with a unit suffix.
	for _, loc := range bareAmountRe.FindAllStringSubmatchIndex(text, -1) {
		rest := text[loc[1]:]
		if unitSuffixRe.MatchString(rest) {
			continue
		}
		value := text[loc[2]:loc[3]]
		add("$"+value, parseNumber(value)/1e6)
	}

	score := impactScore(total)
	return model.FinancialImpact{
		TotalMillions: total,
		Amounts:       amounts,
		ImpactScore:   score,
		ImpactLevel:   impactLevel(score),
	}
}

func toMillions(value, unit string) float64 {
	n := parseNumber(value)
	switch strings.ToLower(unit) {
	case "billion":
		return n * 1000
	case "thousand":
		return n / 1000
	default:
		return n
	}
}

func parseNumber(s string) float64 {
	n, err := strconv.ParseFloat(strings.ReplaceAll(s, ",", ""), 64)
	if err != nil {
		return 0
	}
	return n
}

func impactScore(totalMillions float64) float64 {
	switch {
	case totalMillions <= 0:
		return 0
	case totalMillions > 1000:
		return 90
	case totalMillions > 100:
		return 70
	case totalMillions > 10:
		return 50
	case totalMillions > 1:
		return 30
	default:
		return 15
	}
}

func impactLevel(score float64) string {
	switch {
	case score >= 80:
		return "Severe"
	case score >= 60:
		return "High"
	case score >= 40:
		return "Moderate"
	case score >= 20:
		return "Low"
	default:
		return "Minimal"
	}
}
