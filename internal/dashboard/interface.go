package dashboard

import (
	"context"

	"insight-srv/internal/filter"
)

// UseCase assembles the data for each dashboard page. Loads never fail: a page whose fetches
// could not be joined is returned empty and the failure is logged.
// An empty brand selects the brand held in the application state.
//
//go:generate mockery --name UseCase
type UseCase interface {
	Overview(ctx context.Context, brand string) OverviewPage
	Alerts(ctx context.Context, brand string, q AlertsQuery) AlertsPage
	Mentions(ctx context.Context, brand string, q MentionsQuery) MentionsPage
	Influencers(ctx context.Context, brand string, f filter.InfluencerFilter) InfluencersPage
	Insights(ctx context.Context) InsightsPage
}
