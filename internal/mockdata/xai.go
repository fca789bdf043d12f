package mockdata

import (
	"insight-srv/internal/model"
	"insight-srv/pkg/random"
)

const xaiReasoning = "This alert was triggered due to a significant increase in negative sentiment mentions containing crisis-related keywords. The model detected a pattern of customer complaints about product quality and service issues."

// XAIExplanation returns a canned explanation with a randomized confidence in [0.8, 1.0).
func (g *implGenerator) XAIExplanation(alertID string) model.XAIExplanation {
	return model.XAIExplanation{
		AlertID:    alertID,
		Confidence: random.Float(g.src, 0.8, 1.0),
		TopFeatures: []model.FeatureImportance{
			{Feature: "negative_keywords", Contribution: 0.45, Explanation: `High frequency of negative keywords like "disappointed", "broken", "terrible"`},
			{Feature: "sentiment_score", Contribution: 0.35, Explanation: "Overall sentiment score is -0.72 (highly negative)"},
			{Feature: "mention_velocity", Contribution: 0.15, Explanation: "Mention rate increased 3.2x in last 24 hours"},
			{Feature: "source_credibility", Contribution: 0.05, Explanation: "Mentions from high-credibility news sources"},
		},
		SHAPValues: []model.WordImportance{
			{Word: "disappointed", Value: 0.89},
			{Word: "broken", Value: 0.76},
			{Word: "terrible", Value: 0.82},
			{Word: "issue", Value: 0.45},
			{Word: "problem", Value: 0.52},
		},
		Reasoning: xaiReasoning,
	}
}
