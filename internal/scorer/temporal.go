package scorer

import (
	"regexp"
	"strings"

	"github.com/prathickshaselvaraj/FinancialRiskRadar/internal/model"
)

// timeHorizons are scanned in declaration order; ties in the primary
// timeframe resolve to the earlier (more urgent) group.
var timeHorizons = []struct {
	timeframe model.Timeframe
	pattern   *regexp.Regexp
	weight    float64
}{
	{model.TimeframeImmediate, regexp.MustCompile(`\b(immediately|now|urgent|asap)\b`), 100},
	{model.TimeframeShortTerm, regexp.MustCompile(`\b(soon|shortly|coming weeks|next month)\b`), 75},
	{model.TimeframeMediumTerm, regexp.MustCompile(`\b(q[1-4]\s*\d{4}|next quarter|this year)\b`), 50},
	{model.TimeframeLongTerm, regexp.MustCompile(`\b(long.?term|future|beyond|subsequent)\b`), 25},
}

func analyzeTemporalUrgency(text string) model.TemporalUrgency {
	lower := strings.ToLower(text)

	references := make(map[model.Timeframe]int, len(timeHorizons))
	totalRefs := 0
	totalWeighted := 0.0
	primary := model.TimeframeUnknown
	primaryCount := 0

	for _, h := range timeHorizons {
		count := len(h.pattern.FindAllString(lower, -1))
		references[h.timeframe] = count
		totalRefs += count
		totalWeighted += float64(count) * h.weight
		if count > primaryCount {
			primaryCount = count
			primary = h.timeframe
		}
	}

	urgency := 0.0
	if totalRefs > 0 {
		urgency = totalWeighted / (float64(totalRefs) * 100) * 100
	}

	return model.TemporalUrgency{
		OverallUrgency:   urgency,
		TimeReferences:   references,
		PrimaryTimeframe: primary,
	}
}
