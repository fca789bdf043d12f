package analytics

import (
	"context"

	"insight-srv/internal/model"
)

// UseCase is the analytics data facade. It serves backend data when available and generated
// data otherwise. Backend failures are logged and never returned to the caller; only invalid
// input produces an error.
//
//go:generate mockery --name UseCase
type UseCase interface {
	ListCompanies(ctx context.Context) ([]model.Company, error)
	GetRiskSummary(ctx context.Context, companyID string) (model.RiskSummary, error)
	GetSentimentSeries(ctx context.Context, companyID string) ([]model.SentimentData, error)
	ListAlerts(ctx context.Context, companyID string) ([]model.Alert, error)
	ListInfluencers(ctx context.Context, companyID string) ([]model.Influencer, error)
	ListMentions(ctx context.Context, companyID string, query MentionQuery) ([]model.Mention, error)
	ListKeywordTrends(ctx context.Context, companyID string) ([]model.KeywordTrend, error)
	ListThemes(ctx context.Context, companyID string) ([]string, error)
	ListSpikeDetections(ctx context.Context, companyID string) ([]model.SpikeDetection, error)
	GetXAIExplanation(ctx context.Context, alertID string) (model.XAIExplanation, error)
	CheckHealth(ctx context.Context) bool
}

// AlertPublisher forwards alerts derived from backend mentions.
type AlertPublisher interface {
	PublishDerivedAlerts(ctx context.Context, companyID string, alerts []model.Alert) error
}
