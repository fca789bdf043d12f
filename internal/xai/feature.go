package xai

import (
	"math"
	"sort"

	"insight-srv/pkg/random"
)

// FeatureContributions returns the six scored features sorted by contribution, highest first.
func (g *implGenerator) FeatureContributions(fc FeatureContext) []Feature {
	features := []Feature{
		{
			Feature:      "negative_keywords",
			Contribution: fc.NegativeRatio * 100,
			Explanation:  `Frequency of crisis-related words like "broken", "terrible", "issue"`,
		},
		{
			Feature:      "sentiment_score",
			Contribution: sentimentContribution(fc.Sentiment),
			Explanation:  "Overall sentiment polarity from -1 (very negative) to +1 (very positive)",
		},
		{
			Feature:      "mention_velocity",
			Contribution: math.Min(40, float64(fc.MentionCount)/100*40),
			Explanation:  "Rate of mention increase compared to baseline",
		},
		{
			Feature:      "source_credibility",
			Contribution: random.Float(g.src, 15, 25),
			Explanation:  "Trustworthiness and reach of sources mentioning the brand",
		},
		{
			Feature:      "engagement_rate",
			Contribution: random.Float(g.src, 10, 25),
			Explanation:  "How viral the mentions are (likes, shares, comments)",
		},
		{
			Feature:      "temporal_pattern",
			Contribution: random.Float(g.src, 5, 15),
			Explanation:  "Time-based patterns indicating coordinated activity or organic growth",
		},
	}

	sort.SliceStable(features, func(i, j int) bool {
		return features[i].Contribution > features[j].Contribution
	})
	return features
}

func sentimentContribution(sentiment string) float64 {
	switch sentiment {
	case "negative":
		return 45
	case "positive":
		return -30
	default:
		return 20
	}
}
