package mockdata

import (
	"time"

	"insight-srv/internal/model"
	"insight-srv/pkg/random"
)

// Generator produces randomized but schema-valid analytics records.
// Every call returns fresh values; nothing is memoized between calls.
type Generator interface {
	Companies() []model.Company
	RiskSummary() model.RiskSummary
	SentimentSeries(days int) []model.SentimentData
	Alerts(count int) []model.Alert
	Influencers(count int) []model.Influencer
	Mentions(count int) []model.Mention
	KeywordTrends() []model.KeywordTrend
	Themes() []string
	SpikeDetections() []model.SpikeDetection
	XAIExplanation(alertID string) model.XAIExplanation
}

// New creates a Generator. clock may be nil, in which case time.Now is used.
func New(src random.Source, clock func() time.Time) Generator {
	if clock == nil {
		clock = time.Now
	}
	return &implGenerator{src: src, now: clock}
}

type implGenerator struct {
	src random.Source
	now func() time.Time
}

func (g *implGenerator) randomDate(daysAgoMax int) time.Time {
	return random.Date(g.src, g.now(), daysAgoMax)
}
