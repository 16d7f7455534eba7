package ingest

import (
	"regexp"
	"strings"
)

var (
	spaceRe     = regexp.MustCompile(`[ \t]+`)
	blankLineRe = regexp.MustCompile(`\n{3,}`)
)

// boilerplateMarkers flag lines that carry no document content.
var boilerplateMarkers = []string{
	"all rights reserved", "terms of service", "privacy policy",
	"cookie", "subscribe to", "sign up for",
}

// CleanText normalizes whitespace and drops obvious boilerplate lines while
// preserving paragraph breaks, which the trend analyzer segments on.
func CleanText(text string) string {
	lines := strings.Split(text, "\n")
	kept := make([]string, 0, len(lines))
	for _, line := range lines {
		trimmed := strings.TrimSpace(spaceRe.ReplaceAllString(line, " "))
		lower := strings.ToLower(trimmed)
		skip := false
		for _, marker := range boilerplateMarkers {
			if strings.Contains(lower, marker) {
				skip = true
				break
			}
		}
		if !skip {
			kept = append(kept, trimmed)
		}
	}
	cleaned := strings.Join(kept, "\n")
	cleaned = blankLineRe.ReplaceAllString(cleaned, "\n\n")
	return strings.TrimSpace(cleaned)
}

func wordCount(text string) int {
	return len(strings.Fields(text))
}
