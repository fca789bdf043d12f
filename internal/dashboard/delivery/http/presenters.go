package http

import (
	"insight-srv/internal/dashboard"
	"insight-srv/internal/filter"
	"insight-srv/internal/model"
	"insight-srv/pkg/paginator"
)

// =====================================================
// Request DTOs
// =====================================================

type alertsReq struct {
	Brand     string `form:"brand"`
	Severity  string `form:"severity"`
	Source    string `form:"source"`
	Sentiment string `form:"sentiment"`
	Range     string `form:"range"`
	Search    string `form:"search"`
	Metric    string `form:"metric"`
}

func (r alertsReq) toQuery() (dashboard.AlertsQuery, error) {
	f := filter.DefaultAlertFilter()
	f.Search = r.Search

	if r.Severity != "" {
		sev, ok := model.ParseSeverity(r.Severity)
		if !ok {
			return dashboard.AlertsQuery{}, errInvalidSeverity
		}
		f.Severity = sev
	}
	if r.Source != "" {
		p, ok := model.ParsePlatform(r.Source)
		if !ok {
			return dashboard.AlertsQuery{}, errInvalidSource
		}
		f.Source = p
	}
	if r.Sentiment != "" {
		s, ok := model.ParseSentiment(r.Sentiment)
		if !ok {
			return dashboard.AlertsQuery{}, errInvalidSentiment
		}
		f.Sentiment = s
	}

	dr, err := filter.ParseDateRange(r.Range, filter.Range30d)
	if err != nil {
		return dashboard.AlertsQuery{}, errInvalidRange
	}
	f.DateRange = dr

	return dashboard.AlertsQuery{Filter: f, SpikeMetric: r.Metric}, nil
}

type mentionsReq struct {
	Brand     string `form:"brand"`
	Source    string `form:"source"`
	Sentiment string `form:"sentiment"`
	Range     string `form:"range"`
	Search    string `form:"search"`
	Page      int    `form:"page" binding:"min=0"`
	Limit     int    `form:"limit" binding:"min=0"`
}

func (r mentionsReq) toQuery() (dashboard.MentionsQuery, error) {
	f, err := r.toFilter()
	if err != nil {
		return dashboard.MentionsQuery{}, err
	}
	return dashboard.MentionsQuery{
		Filter: f,
		Page:   paginator.PaginateQuery{Page: r.Page, Limit: r.Limit},
	}, nil
}

func (r mentionsReq) toFilter() (filter.MentionFilter, error) {
	f := filter.DefaultMentionFilter()
	f.Source = r.Source
	f.Search = r.Search

	if r.Sentiment != "" {
		s, ok := model.ParseSentiment(r.Sentiment)
		if !ok {
			return f, errInvalidSentiment
		}
		f.Sentiment = s
	}

	dr, err := filter.ParseDateRange(r.Range, filter.RangeAll)
	if err != nil {
		return f, errInvalidRange
	}
	f.DateRange = dr
	return f, nil
}

type influencersReq struct {
	Brand         string   `form:"brand"`
	Platform      string   `form:"platform"`
	MinReach      int      `form:"min_reach" binding:"min=0"`
	MaxReach      *int     `form:"max_reach"`
	MinEngagement float64  `form:"min_engagement" binding:"min=0"`
	MaxEngagement *float64 `form:"max_engagement"`
	MinMatchScore int      `form:"min_match_score" binding:"min=0,max=100"`
	MaxToxicity   *int     `form:"max_toxicity"`
	SortBy        string   `form:"sort_by"`
}

func (r influencersReq) toFilter() (filter.InfluencerFilter, error) {
	f := filter.DefaultInfluencerFilter()
	f.MinReach = r.MinReach
	f.MinEngagement = r.MinEngagement
	f.MinMatchScore = r.MinMatchScore
	if r.MaxReach != nil {
		f.MaxReach = *r.MaxReach
	}
	if r.MaxEngagement != nil {
		f.MaxEngagement = *r.MaxEngagement
	}
	if r.MaxToxicity != nil {
		f.MaxToxicity = *r.MaxToxicity
	}

	if r.Platform != "" {
		p, ok := model.ParsePlatform(r.Platform)
		if !ok {
			return f, errInvalidSource
		}
		f.Platform = p
	}

	sortBy, err := filter.ParseSortKey(r.SortBy)
	if err != nil {
		return f, errInvalidSortKey
	}
	f.SortBy = sortBy
	return f, nil
}
