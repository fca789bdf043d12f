package model

import "time"

// RiskSummary is the executive risk snapshot for a brand.
type RiskSummary struct {
	CurrentLevel   RiskLevel `json:"currentLevel"`
	Score          int       `json:"score"`
	Trend          Trend     `json:"trend"`
	LastUpdated    time.Time `json:"lastUpdated"`
	TopThreats     []string  `json:"topThreats"`
	Recommendation string    `json:"recommendation"`
}
