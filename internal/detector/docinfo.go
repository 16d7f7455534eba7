package detector

import (
	"strings"

	"github.com/prathickshaselvaraj/FinancialRiskRadar/internal/model"
	"github.com/prathickshaselvaraj/FinancialRiskRadar/internal/textutil"
)

// quickRiskTerms is the coarse vocabulary for the document-level density probe.
var quickRiskTerms = []string{"risk", "uncertain", "volatility", "default", "investigation"}

// DescribeDocument classifies the document type from surface cues and
// computes a coarse risk density. Unknown documents are not an error.
func DescribeDocument(text string) model.DocumentInfo {
	lower := strings.ToLower(text)

	info := model.DocumentInfo{
		DocType: "unknown",
		Source:  "unknown",
	}

	switch {
	case strings.Contains(lower, "item 1a") && strings.Contains(lower, "sec"):
		info.DocType = "sec_filing"
		info.Source = "SEC EDGAR"
	case strings.Contains(lower, "earnings call") || strings.Contains(lower, "q&a"):
		info.DocType = "earnings_transcript"
		info.Source = "Earnings Call"
	case strings.Contains(lower, "press release") || strings.Contains(lower, "announce"):
		info.DocType = "press_release"
		info.Source = "Company PR"
	case strings.Contains(lower, "reuters") || strings.Contains(lower, "bloomberg") ||
		strings.Contains(lower, "financial times"):
		info.DocType = "news_article"
		info.Source = "Financial News"
	}

	info.WordCount = textutil.WordCount(text)
	if info.WordCount > 0 {
		mentions := 0
		for _, term := range quickRiskTerms {
			if strings.Contains(lower, term) {
				mentions++
			}
		}
		info.RiskDensity = float64(mentions) / float64(info.WordCount) * 100
	}
	return info
}
