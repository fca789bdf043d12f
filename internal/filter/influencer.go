package filter

import (
	"fmt"
	"sort"

	"insight-srv/internal/model"
)

// SortKey orders the influencer list.
type SortKey string

const (
	SortByMatchScore SortKey = "matchScore"
	SortByReach      SortKey = "reach"
	SortByEngagement SortKey = "engagement"
	// SortByToxicity puts the safest influencers first.
	SortByToxicity SortKey = "toxicity"
)

func ParseSortKey(s string) (SortKey, error) {
	if s == "" {
		return SortByMatchScore, nil
	}
	k := SortKey(s)
	switch k {
	case SortByMatchScore, SortByReach, SortByEngagement, SortByToxicity:
		return k, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidSortKey, s)
}

const (
	DefaultMaxReach      = 1_000_000
	DefaultMaxEngagement = 10.0
	DefaultMaxToxicity   = 100
)

// InfluencerFilter narrows and orders the influencers page. Bounds are inclusive.
type InfluencerFilter struct {
	Platform      model.Platform
	MinReach      int
	MaxReach      int
	MinEngagement float64
	MaxEngagement float64
	MinMatchScore int
	MaxToxicity   int
	SortBy        SortKey
}

func DefaultInfluencerFilter() InfluencerFilter {
	return InfluencerFilter{
		MaxReach:      DefaultMaxReach,
		MaxEngagement: DefaultMaxEngagement,
		MaxToxicity:   DefaultMaxToxicity,
		SortBy:        SortByMatchScore,
	}
}

func (f InfluencerFilter) Match(inf model.Influencer) bool {
	if f.Platform != "" && inf.Platform != f.Platform {
		return false
	}
	if inf.Reach < f.MinReach || inf.Reach > f.MaxReach {
		return false
	}
	if inf.EngagementRate < f.MinEngagement || inf.EngagementRate > f.MaxEngagement {
		return false
	}
	if inf.MatchScore < f.MinMatchScore {
		return false
	}
	return inf.ToxicityScore <= f.MaxToxicity
}

// Apply filters then sorts. Ties keep their input order.
func (f InfluencerFilter) Apply(influencers []model.Influencer) []model.Influencer {
	out := make([]model.Influencer, 0, len(influencers))
	for _, inf := range influencers {
		if f.Match(inf) {
			out = append(out, inf)
		}
	}

	less := f.less()
	sort.SliceStable(out, func(i, j int) bool { return less(out[i], out[j]) })
	return out
}

func (f InfluencerFilter) less() func(a, b model.Influencer) bool {
	switch f.SortBy {
	case SortByReach:
		return func(a, b model.Influencer) bool { return a.Reach > b.Reach }
	case SortByEngagement:
		return func(a, b model.Influencer) bool { return a.EngagementRate > b.EngagementRate }
	case SortByToxicity:
		return func(a, b model.Influencer) bool { return a.ToxicityScore < b.ToxicityScore }
	default:
		return func(a, b model.Influencer) bool { return a.MatchScore > b.MatchScore }
	}
}

// HasActiveFilters reports whether any bound differs from DefaultInfluencerFilter. Sorting is not a filter.
func (f InfluencerFilter) HasActiveFilters() bool {
	return f.Platform != "" ||
		f.MinReach > 0 ||
		f.MaxReach < DefaultMaxReach ||
		f.MinEngagement > 0 ||
		f.MaxEngagement < DefaultMaxEngagement ||
		f.MinMatchScore > 0 ||
		f.MaxToxicity < DefaultMaxToxicity
}
