package notifier

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/prathickshaselvaraj/FinancialRiskRadar/internal/model"
	"github.com/prathickshaselvaraj/FinancialRiskRadar/internal/watchlist"
)

// FormatAnalysisReport formats one analysis result into a webhook message.
func FormatAnalysisReport(source string, result *model.AnalysisResult) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("📊 Risk Radar | %s\n\n", source))
	b.WriteString(fmt.Sprintf("Document: %s (%s words)\n",
		result.Document.DocType, humanize.Comma(int64(result.Document.WordCount))))
	b.WriteString(fmt.Sprintf("Overall risk: %.1f (%s)\n\n",
		result.Scores.OverallScore, result.Scores.Summary.RiskLevel))

	// Category breakdown
	if len(result.Detections) > 0 {
		b.WriteString("📈 Category scores:\n")
		for _, det := range result.Detections {
			final := result.Scores.CategoryScores[det.Category]
			b.WriteString(fmt.Sprintf("  %s: %.1f (%d instances)\n",
				det.Category, final, det.SentenceCount))
		}
		b.WriteString("  ─────────────────\n")
		b.WriteString(fmt.Sprintf("  primary: %s\n\n", result.Scores.Summary.PrimaryCategory))
	}

	// Financial exposure
	fin := result.Scores.Financial
	if fin.TotalMillions > 0 {
		b.WriteString(fmt.Sprintf("💰 Financial exposure: $%s million (%s)\n",
			humanize.CommafWithDigits(fin.TotalMillions, 1), fin.ImpactLevel))
	}
	if result.Scores.Temporal.PrimaryTimeframe != model.TimeframeUnknown {
		b.WriteString(fmt.Sprintf("⏱ Urgency: %.0f (%s)\n",
			result.Scores.Temporal.OverallUrgency, result.Scores.Temporal.PrimaryTimeframe))
	}

	// Structural signals
	b.WriteString(fmt.Sprintf("\nTrend: %s | Pattern: %s\n",
		result.Trend.Trend, result.Trend.EvolutionPattern))
	if len(result.Trend.Hotspots) > 0 {
		b.WriteString(fmt.Sprintf("Hotspots: %d (max score %.1f)\n",
			len(result.Trend.Hotspots), result.Trend.Hotspots[0].Score))
	}
	if len(result.Network.Regulators) > 0 {
		b.WriteString("\n⚖️ Regulatory activity:\n")
		for _, reg := range result.Network.Regulators {
			b.WriteString(fmt.Sprintf("  %s: %s (%d companies)\n",
				reg.Regulator, reg.PrimaryAction, reg.CompaniesAffected))
		}
	}

	b.WriteString(fmt.Sprintf("\n%s", result.Scores.Summary.Recommendation))
	return b.String()
}

// FormatWatchlistStatus formats the per-source run history for display.
func FormatWatchlistStatus(sources []watchlist.Source) string {
	var b strings.Builder
	b.WriteString("📦 Watchlist status\n\n")
	if len(sources) == 0 {
		b.WriteString("no sources configured\n")
		return b.String()
	}
	for _, s := range sources {
		b.WriteString(fmt.Sprintf("%s: ", s.Name))
		if s.RunCount == 0 {
			b.WriteString("never analyzed\n")
			continue
		}
		b.WriteString(fmt.Sprintf("%.1f (%s), %d runs, last %s\n",
			s.LastScore, s.LastRiskLevel, s.RunCount, humanize.Time(s.LastRunAt)))
	}
	return b.String()
}
