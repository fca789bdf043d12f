package dashboard

import (
	"insight-srv/internal/filter"
	"insight-srv/internal/model"
	"insight-srv/internal/xai"
	"insight-srv/pkg/paginator"
)

// DefaultSpikeMetric is the metric charted when none is requested.
const DefaultSpikeMetric = "mention_volume"

// PageMeta identifies the load a page came from.
type PageMeta struct {
	Brand     string `json:"brand"`
	CompanyID string `json:"companyId"`
	// Stale is set when a newer load for the same company started before this one finished.
	Stale bool `json:"stale"`
}

type OverviewPage struct {
	PageMeta
	Risk         *model.RiskSummary    `json:"risk"`
	Sentiment    []model.SentimentData `json:"sentiment"`
	Alerts       []model.Alert         `json:"alerts"`
	Influencers  []model.Influencer    `json:"influencers"`
	UnreadAlerts int                   `json:"unreadAlerts"`
}

// AlertsQuery is the alerts page filter plus the spike metric to chart.
type AlertsQuery struct {
	Filter      filter.AlertFilter
	SpikeMetric string
}

type AlertsPage struct {
	PageMeta
	Alerts           []model.Alert          `json:"alerts"`
	TotalAlerts      int                    `json:"totalAlerts"`
	Spikes           []model.SpikeDetection `json:"spikes"`
	SpikeMetric      string                 `json:"spikeMetric"`
	AverageThreshold float64                `json:"averageThreshold"`
	CrisisKeywords   []model.KeywordTrend   `json:"crisisKeywords"`
}

// MentionsQuery filters the mention feed and selects one page of it.
type MentionsQuery struct {
	Filter filter.MentionFilter
	Page   paginator.PaginateQuery
}

// MentionsPage carries one page of the filtered feed. Stats cover every filtered mention.
type MentionsPage struct {
	PageMeta
	Mentions  []model.Mention             `json:"mentions"`
	Stats     filter.MentionStats         `json:"stats"`
	Paginator paginator.PaginatorResponse `json:"paginator"`
}

type InfluencersPage struct {
	PageMeta
	Influencers      []model.Influencer `json:"influencers"`
	Total            int                `json:"total"`
	HasActiveFilters bool               `json:"hasActiveFilters"`
	Comparison       []model.Influencer `json:"comparison"`
}

type InsightsPage struct {
	Features   []xai.Feature  `json:"features"`
	Confidence xai.Confidence `json:"confidence"`
	Reasoning  xai.Reasoning  `json:"reasoning"`
}
