package usecase

import (
	"context"

	"insight-srv/internal/dashboard"
	"insight-srv/internal/model"
	"insight-srv/internal/xai"
)

func (uc *implUseCase) Insights(ctx context.Context) dashboard.InsightsPage {
	features := uc.xai.FeatureContributions(xai.FeatureContext{
		Sentiment:     string(model.SentimentNegative),
		MentionCount:  75,
		NegativeRatio: 0.65,
	})
	return dashboard.InsightsPage{
		Features:   features,
		Confidence: uc.xai.ConfidenceScore(xai.ConfidenceContext{DataPoints: 85, Consistency: 0.88}),
		Reasoning: uc.xai.Reasoning(xai.ReasoningContext{
			Kind:     xai.KindAlert,
			Severity: string(model.SeverityHigh),
			Features: features,
		}),
	}
}
