package textutil

import (
	"regexp"
	"strings"
)

var (
	sentenceRe  = regexp.MustCompile(`[.!?]+`)
	paragraphRe = regexp.MustCompile(`\n\s*\n`)
)

// SplitSentences splits text on terminal punctuation. Empty and
// whitespace-only sentences are dropped; the rest are trimmed.
func SplitSentences(text string) []string {
	parts := sentenceRe.Split(text, -1)
	sentences := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			sentences = append(sentences, p)
		}
	}
	return sentences
}

// SplitParagraphs splits text on blank lines, dropping empty paragraphs.
func SplitParagraphs(text string) []string {
	parts := paragraphRe.Split(text, -1)
	paragraphs := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			paragraphs = append(paragraphs, p)
		}
	}
	return paragraphs
}

// WordCount returns the number of whitespace-separated words.
func WordCount(text string) int {
	return len(strings.Fields(text))
}

// CountMatchingWords counts words that contain any of the given lowercase
// terms as a substring. The text is lowercased before matching.
func CountMatchingWords(text string, terms []string) int {
	count := 0
	for _, word := range strings.Fields(strings.ToLower(text)) {
		for _, term := range terms {
			if strings.Contains(word, term) {
				count++
				break
			}
		}
	}
	return count
}

// ContainsAny reports whether the lowercased text contains any of the given
// lowercase terms as a substring.
func ContainsAny(text string, terms []string) bool {
	lower := strings.ToLower(text)
	for _, term := range terms {
		if strings.Contains(lower, term) {
			return true
		}
	}
	return false
}

// Clamp bounds v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
