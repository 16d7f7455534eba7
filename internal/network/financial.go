package network

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/prathickshaselvaraj/FinancialRiskRadar/internal/model"
	"github.com/prathickshaselvaraj/FinancialRiskRadar/internal/textutil"
)

var (
	amountRe  = regexp.MustCompile(`\$\d+(?:\.\d+)?(?:\s+[mb]illion)?`)
	numericRe = regexp.MustCompile(`\$?(\d+(?:\.\d+)?)`)
)

// financialContexts classify the sentence surrounding an amount mention,
// checked in priority order.
var financialContexts = []struct {
	context string
	terms   []string
}{
	{"regulatory_penalty", []string{"fine", "penalty", "settlement"}},
	{"financial_loss", []string{"loss", "write-off", "impairment"}},
	{"debt_obligation", []string{"debt", "loan", "borrowing"}},
	{"revenue_impact", []string{"revenue", "sales", "income"}},
}

// companyFinancials ties each company to the supplied amount strings that
// co-occur with it in a sentence, classifying the surrounding context and
// summing a rough exposure in millions.
func companyFinancials(sentences, companies, amounts []string) []model.CompanyFinancials {
	if len(companies) == 0 || len(amounts) == 0 {
		return nil
	}

	var results []model.CompanyFinancials
	for _, company := range companies {
		var impacts []model.FinancialLink
		total := 0.0

		for _, amount := range amounts {
			var evidence []string
			for _, sentence := range sentences {
				if strings.Contains(sentence, company) && strings.Contains(sentence, amount) {
					evidence = append(evidence, sentence)
				}
			}
			if len(evidence) == 0 {
				continue
			}

			context := "general"
			for _, sentence := range evidence {
				if c := classifyContext(sentence); c != "" {
					context = c
				}
			}

			impacts = append(impacts, model.FinancialLink{
				Amount:      amount,
				Context:     context,
				Occurrences: len(evidence),
				Evidence:    trimEvidence(evidence),
			})
			total += amountMillions(amount)
		}

		if len(impacts) == 0 {
			continue
		}
		results = append(results, model.CompanyFinancials{
			Company:        company,
			Impacts:        impacts,
			TotalMillions:  total,
			PrimaryContext: primaryContext(impacts),
		})
	}
	return results
}

func classifyContext(sentence string) string {
	lower := strings.ToLower(sentence)
	for _, fc := range financialContexts {
		if textutil.ContainsAny(lower, fc.terms) {
			return fc.context
		}
	}
	return ""
}

// amountMillions parses a raw amount string to millions of dollars. Unitless
// values are read as plain dollars.
func amountMillions(amount string) float64 {
	m := numericRe.FindStringSubmatch(amount)
	if m == nil {
		return 0
	}
	value, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0
	}
	lower := strings.ToLower(amount)
	switch {
	case strings.Contains(lower, "billion"):
		return value * 1000
	case strings.Contains(lower, "million"):
		return value
	default:
		return value / 1e6
	}
}

func primaryContext(impacts []model.FinancialLink) string {
	counts := make(map[string]int)
	for _, impact := range impacts {
		counts[impact.Context]++
	}
	primary, best := "general", 0
	for _, impact := range impacts {
		if counts[impact.Context] > best {
			best = counts[impact.Context]
			primary = impact.Context
		}
	}
	return primary
}
