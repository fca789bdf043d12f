package xai

import (
	"regexp"
	"strings"

	"insight-srv/pkg/random"
)

var (
	negativeWords = []string{
		"terrible", "awful", "bad", "poor", "disappointing", "broken", "issue",
		"problem", "complaint", "negative", "worst", "hate", "angry", "frustrated",
	}
	positiveWords = []string{
		"excellent", "great", "amazing", "good", "love", "best", "fantastic",
		"wonderful", "perfect", "outstanding", "brilliant", "superb",
	}

	nonWord = regexp.MustCompile(`\W`)
)

// SHAPValues scores each whitespace-separated token of text.
// Negative keywords land in [-1, -0.5], positive in [0.5, 1], everything else in [-0.15, 0.15].
func (g *implGenerator) SHAPValues(text string) []WordScore {
	tokens := strings.Fields(text)
	scores := make([]WordScore, len(tokens))

	for i, tok := range tokens {
		clean := nonWord.ReplaceAllString(strings.ToLower(tok), "")

		var value float64
		switch {
		case containsAny(clean, negativeWords):
			value = -random.Float(g.src, 0.5, 1.0)
		case containsAny(clean, positiveWords):
			value = random.Float(g.src, 0.5, 1.0)
		default:
			value = (g.src.Float64() - 0.5) * 0.3
		}
		scores[i] = WordScore{Word: tok, Value: value, Index: i}
	}
	return scores
}

func containsAny(s string, subs []string) bool {
	if s == "" {
		return false
	}
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
