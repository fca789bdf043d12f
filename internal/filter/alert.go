package filter

import (
	"strings"
	"time"

	"insight-srv/internal/model"
)

// AlertFilter narrows the alerts page. Empty fields match everything.
type AlertFilter struct {
	Severity  model.Severity
	Source    model.Platform
	Sentiment model.Sentiment
	DateRange DateRange
	Search    string
}

// DefaultAlertFilter shows the last 30 days.
func DefaultAlertFilter() AlertFilter {
	return AlertFilter{DateRange: Range30d}
}

func (f AlertFilter) Match(a model.Alert, now time.Time) bool {
	if f.Severity != "" && a.Severity != f.Severity {
		return false
	}
	if f.Source != "" && a.Source != f.Source {
		return false
	}
	if f.Sentiment != "" && a.Sentiment != f.Sentiment {
		return false
	}
	if f.Search != "" {
		q := strings.ToLower(f.Search)
		if !strings.Contains(strings.ToLower(a.Title), q) && !strings.Contains(strings.ToLower(a.Description), q) {
			return false
		}
	}
	return f.DateRange.Allows(a.Timestamp, now)
}

// Apply returns the matching alerts in their original order.
func (f AlertFilter) Apply(alerts []model.Alert, now time.Time) []model.Alert {
	out := make([]model.Alert, 0, len(alerts))
	for _, a := range alerts {
		if f.Match(a, now) {
			out = append(out, a)
		}
	}
	return out
}

// UnreadCount counts alerts not yet read.
func UnreadCount(alerts []model.Alert) int {
	n := 0
	for _, a := range alerts {
		if !a.IsRead {
			n++
		}
	}
	return n
}
