package kafka

import "time"

// AlertMessage is the payload published for every alert derived from backend mentions.
type AlertMessage struct {
	EventType       string    `json:"event_type"`
	CompanyID       string    `json:"company_id"`
	AlertID         string    `json:"alert_id"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	Severity        string    `json:"severity"`
	Source          string    `json:"source"`
	Sentiment       string    `json:"sentiment"`
	RelatedMentions int       `json:"related_mentions"`
	Keywords        []string  `json:"keywords"`
	DetectedAt      time.Time `json:"detected_at"`
}
