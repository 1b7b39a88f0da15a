package mentor

import (
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// Keyword sets fed into memory pattern detection after each exchange.
// Distress in the user's message lands in the stickingPoints bucket;
// breakthrough language in either side of the exchange becomes an insight.
var distressKeywords = []string{
	"stuck", "confused", "overwhelmed", "frustrated", "struggling", "lost",
	"give up", "no idea", "too hard",
}

var breakthroughKeywords = []string{
	"aha", "realized", "breakthrough", "clicked",
	"finally understand", "now i see", "makes sense now",
}

// DetectDistress returns the first distress keyword found in the text.
func DetectDistress(text string) (string, bool) {
	return matchAny(text, distressKeywords)
}

// DetectBreakthrough returns the first breakthrough keyword found in the text.
func DetectBreakthrough(text string) (string, bool) {
	return matchAny(text, breakthroughKeywords)
}

func matchAny(text string, keywords []string) (string, bool) {
	lowered := strings.ToLower(text)
	words := cleanWords(lowered)
	for _, keyword := range keywords {
		if matchKeyword(keyword, lowered, words) {
			return keyword, true
		}
	}
	return "", false
}

// matchKeyword checks phrases by substring and single words with a one-edit
// typo tolerance, so "frustated" still counts as "frustrated". Short keywords
// match exactly only; one edit on a four-letter word is a different word.
func matchKeyword(keyword, lowered string, words []string) bool {
	if strings.Contains(keyword, " ") {
		return strings.Contains(lowered, keyword)
	}
	for _, word := range words {
		if word == keyword {
			return true
		}
		if len(keyword) > 4 && fuzzy.LevenshteinDistance(word, keyword) <= 1 {
			return true
		}
	}
	return false
}

func cleanWords(lowered string) []string {
	return strings.FieldsFunc(lowered, func(r rune) bool {
		return !('a' <= r && r <= 'z') && !('0' <= r && r <= '9') && r != '\''
	})
}
