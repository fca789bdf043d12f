package model

import "time"

// Alert is a brand-monitoring alert.
type Alert struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	Severity        Severity  `json:"severity"`
	Timestamp       time.Time `json:"timestamp"`
	Source          Platform  `json:"source"`
	RelatedMentions int       `json:"relatedMentions"`
	Keywords        []string  `json:"keywords"`
	Sentiment       Sentiment `json:"sentiment"`
	IsRead          bool      `json:"isRead"`
}

// SeverityForMentions maps a related-mention count to a severity.
// The mapping is monotone and any count >= 150 is at least medium.
func SeverityForMentions(count int) Severity {
	switch {
	case count >= 450:
		return SeverityCritical
	case count >= 300:
		return SeverityHigh
	case count >= 150:
		return SeverityMedium
	default:
		return SeverityLow
	}
}
