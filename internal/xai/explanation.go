package xai

import (
	"strings"

	"insight-srv/internal/model"
)

const explanationFeatureCount = 5

var explanationWords = []model.WordImportance{
	{Word: "terrible", Value: -0.85},
	{Word: "broken", Value: -0.72},
	{Word: "disappointed", Value: -0.68},
	{Word: "issue", Value: -0.55},
	{Word: "excellent", Value: 0.45},
}

// Explanation composes features, confidence and reasoning into one record.
// Percentages are rescaled to the [0, 1] range of the public type.
func (g *implGenerator) Explanation(alertID string) model.XAIExplanation {
	fc := DefaultFeatureContext()
	fc.NegativeRatio = 0.65
	features := g.FeatureContributions(fc)

	confidence := g.ConfidenceScore(ConfidenceContext{DataPoints: 75, Consistency: 0.85})
	reasoning := g.Reasoning(ReasoningContext{Kind: KindAlert, Severity: "high", Features: features})

	top := features
	if len(top) > explanationFeatureCount {
		top = top[:explanationFeatureCount]
	}
	topFeatures := make([]model.FeatureImportance, len(top))
	for i, f := range top {
		topFeatures[i] = model.FeatureImportance{
			Feature:      f.Feature,
			Contribution: f.Contribution / 100,
			Explanation:  f.Explanation,
		}
	}

	return model.XAIExplanation{
		AlertID:     alertID,
		Confidence:  confidence.Score / 100,
		TopFeatures: topFeatures,
		SHAPValues:  append([]model.WordImportance(nil), explanationWords...),
		Reasoning:   strings.Join(reasoning.Why, " ") + " " + strings.Join(reasoning.Actions, " "),
	}
}
