package model

import "time"

// SentimentData is one point of a sentiment series. Positive, Neutral and Negative are percentages.
type SentimentData struct {
	Timestamp time.Time `json:"timestamp"`
	Positive  int       `json:"positive"`
	Neutral   int       `json:"neutral"`
	Negative  int       `json:"negative"`
	Overall   float64   `json:"overall"`
}

// KeywordTrend tracks a keyword's volume and direction.
type KeywordTrend struct {
	Keyword   string         `json:"keyword"`
	Count     int            `json:"count"`
	Sentiment Sentiment      `json:"sentiment"`
	Trend     TrendDirection `json:"trend"`
	Intensity int            `json:"intensity"`
}

// SpikeDetection is an anomalous metric observation.
type SpikeDetection struct {
	Timestamp     time.Time `json:"timestamp"`
	Metric        string    `json:"metric"`
	Value         float64   `json:"value"`
	Threshold     float64   `json:"threshold"`
	AnomalyScore  float64   `json:"anomalyScore"`
	RelatedAlerts []string  `json:"relatedAlerts"`
}
