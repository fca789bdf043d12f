package filter

import (
	"strings"
	"time"

	"insight-srv/internal/model"
)

// MentionFilter narrows the mentions page. Empty fields match everything.
type MentionFilter struct {
	Source    string
	Sentiment model.Sentiment
	DateRange DateRange
	Search    string
}

// DefaultMentionFilter shows every mention.
func DefaultMentionFilter() MentionFilter {
	return MentionFilter{DateRange: RangeAll}
}

func (f MentionFilter) Match(m model.Mention, now time.Time) bool {
	if f.Source != "" && !strings.EqualFold(m.Source, f.Source) && !strings.EqualFold(string(m.Platform), f.Source) {
		return false
	}
	if f.Sentiment != "" && !f.Sentiment.EqualFold(string(m.Sentiment)) {
		return false
	}
	if f.Search != "" && !mentionContains(m, strings.ToLower(f.Search)) {
		return false
	}
	if m.Timestamp.IsZero() {
		return true
	}
	return f.DateRange.Allows(m.Timestamp, now)
}

func mentionContains(m model.Mention, q string) bool {
	for _, field := range []string{m.Title, m.Content, m.Text, m.Author} {
		if strings.Contains(strings.ToLower(field), q) {
			return true
		}
	}
	return false
}

// Apply returns the matching mentions in their original order.
func (f MentionFilter) Apply(mentions []model.Mention, now time.Time) []model.Mention {
	out := make([]model.Mention, 0, len(mentions))
	for _, m := range mentions {
		if f.Match(m, now) {
			out = append(out, m)
		}
	}
	return out
}

// MentionStats counts mentions by sentiment.
type MentionStats struct {
	Total    int `json:"total"`
	Positive int `json:"positive"`
	Neutral  int `json:"neutral"`
	Negative int `json:"negative"`
}

func NewMentionStats(mentions []model.Mention) MentionStats {
	stats := MentionStats{Total: len(mentions)}
	for _, m := range mentions {
		switch {
		case model.SentimentPositive.EqualFold(string(m.Sentiment)):
			stats.Positive++
		case model.SentimentNeutral.EqualFold(string(m.Sentiment)):
			stats.Neutral++
		case model.SentimentNegative.EqualFold(string(m.Sentiment)):
			stats.Negative++
		}
	}
	return stats
}
