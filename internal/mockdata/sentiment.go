package mockdata

import (
	"time"

	"insight-srv/internal/model"
	"insight-srv/pkg/random"
)

// SentimentSeries returns days+1 daily points ending now, oldest first.
func (g *implGenerator) SentimentSeries(days int) []model.SentimentData {
	if days < 0 {
		days = DefaultSentimentDays
	}
	now := g.now()
	data := make([]model.SentimentData, 0, days+1)

	for i := days; i >= 0; i-- {
		positive := random.Int(g.src, 30, 70)
		negative := random.Int(g.src, 10, 40)
		data = append(data, model.SentimentData{
			Timestamp: now.Add(-time.Duration(i) * 24 * time.Hour),
			Positive:  positive,
			Neutral:   100 - positive - negative,
			Negative:  negative,
			Overall:   float64(positive-negative) / 100,
		})
	}
	return data
}

func (g *implGenerator) KeywordTrends() []model.KeywordTrend {
	trends := make([]model.KeywordTrend, len(keywords))
	for i, kw := range keywords {
		trends[i] = model.KeywordTrend{
			Keyword:   kw,
			Count:     random.Int(g.src, 50, 550),
			Sentiment: random.Item(g.src, model.Sentiments),
			Trend:     random.Item(g.src, model.TrendDirections),
			Intensity: random.Int(g.src, 0, 100),
		}
	}
	return trends
}

func (g *implGenerator) SpikeDetections() []model.SpikeDetection {
	spikes := make([]model.SpikeDetection, SpikeCount)
	for i := range spikes {
		spikes[i] = model.SpikeDetection{
			Timestamp:     g.randomDate(3),
			Metric:        random.Item(g.src, SpikeMetrics),
			Value:         random.Float(g.src, 500, 1500),
			Threshold:     random.Float(g.src, 200, 700),
			AnomalyScore:  random.Float(g.src, 0.5, 1.0),
			RelatedAlerts: []string{alertID(i + 1), alertID(i + 2)},
		}
	}
	return spikes
}

// Themes returns ThemeCount distinct keywords in random order.
func (g *implGenerator) Themes() []string {
	pool := append([]string(nil), keywords...)
	for i := len(pool) - 1; i > 0; i-- {
		j := g.src.IntN(i + 1)
		pool[i], pool[j] = pool[j], pool[i]
	}
	return pool[:ThemeCount]
}
