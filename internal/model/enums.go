package model

import "strings"

// Severity is the ordered alert severity: low < medium < high < critical.
type Severity string

const (
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

// Severities lists every severity in ascending order.
var Severities = []Severity{SeverityLow, SeverityMedium, SeverityHigh, SeverityCritical}

// Rank returns the position of s in the severity order, or -1 when s is unknown.
func (s Severity) Rank() int {
	for i, v := range Severities {
		if v == s {
			return i
		}
	}
	return -1
}

// IsValid reports whether s is a known severity.
func (s Severity) IsValid() bool { return s.Rank() >= 0 }

// ParseSeverity parses a severity case-insensitively.
func ParseSeverity(s string) (Severity, bool) {
	v := Severity(strings.ToLower(strings.TrimSpace(s)))
	return v, v.IsValid()
}

// Sentiment is the polarity of a mention, alert or keyword.
type Sentiment string

const (
	SentimentPositive Sentiment = "positive"
	SentimentNeutral  Sentiment = "neutral"
	SentimentNegative Sentiment = "negative"
)

var Sentiments = []Sentiment{SentimentPositive, SentimentNeutral, SentimentNegative}

// ParseSentiment parses a sentiment case-insensitively.
func ParseSentiment(s string) (Sentiment, bool) {
	v := Sentiment(strings.ToLower(strings.TrimSpace(s)))
	switch v {
	case SentimentPositive, SentimentNeutral, SentimentNegative:
		return v, true
	}
	return "", false
}

// EqualFold compares sentiments ignoring case.
func (s Sentiment) EqualFold(other string) bool {
	return strings.EqualFold(string(s), other)
}

// Platform is the originating network of a record.
type Platform string

const (
	PlatformTwitter   Platform = "twitter"
	PlatformReddit    Platform = "reddit"
	PlatformNews      Platform = "news"
	PlatformWikipedia Platform = "wikipedia"
)

var (
	Platforms       = []Platform{PlatformTwitter, PlatformReddit, PlatformNews, PlatformWikipedia}
	MentionSources  = []Platform{PlatformNews, PlatformReddit, PlatformTwitter}
	SocialPlatforms = []Platform{PlatformTwitter, PlatformReddit}
)

// ParsePlatform parses a platform case-insensitively.
func ParsePlatform(s string) (Platform, bool) {
	v := Platform(strings.ToLower(strings.TrimSpace(s)))
	for _, p := range Platforms {
		if p == v {
			return v, true
		}
	}
	return "", false
}

// RiskLevel is the ordered traffic-light risk level: green < amber < red.
type RiskLevel string

const (
	RiskGreen RiskLevel = "green"
	RiskAmber RiskLevel = "amber"
	RiskRed   RiskLevel = "red"
)

var RiskLevels = []RiskLevel{RiskGreen, RiskAmber, RiskRed}

// Rank returns the position of r in the risk order, or -1 when r is unknown.
func (r RiskLevel) Rank() int {
	for i, v := range RiskLevels {
		if v == r {
			return i
		}
	}
	return -1
}

// Trend is the 24h direction of a risk summary.
type Trend string

const (
	TrendIncreasing Trend = "increasing"
	TrendStable     Trend = "stable"
	TrendDecreasing Trend = "decreasing"
)

var Trends = []Trend{TrendIncreasing, TrendStable, TrendDecreasing}

// TrendDirection is the direction of a keyword trend.
type TrendDirection string

const (
	TrendRising  TrendDirection = "rising"
	TrendSteady  TrendDirection = "stable"
	TrendFalling TrendDirection = "falling"
)

var TrendDirections = []TrendDirection{TrendRising, TrendSteady, TrendFalling}
