package filter

import (
	"sort"

	"insight-srv/internal/model"
)

const MaxCrisisKeywords = 20

// CrisisKeywords returns the negative keywords, most frequent first.
func CrisisKeywords(keywords []model.KeywordTrend) []model.KeywordTrend {
	out := make([]model.KeywordTrend, 0, len(keywords))
	for _, k := range keywords {
		if k.Sentiment == model.SentimentNegative {
			out = append(out, k)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Count > out[j].Count })
	if len(out) > MaxCrisisKeywords {
		out = out[:MaxCrisisKeywords]
	}
	return out
}

// SpikesByMetric keeps the spikes for metric.
func SpikesByMetric(spikes []model.SpikeDetection, metric string) []model.SpikeDetection {
	out := make([]model.SpikeDetection, 0, len(spikes))
	for _, s := range spikes {
		if s.Metric == metric {
			out = append(out, s)
		}
	}
	return out
}

// AverageThreshold is 0 for an empty slice.
func AverageThreshold(spikes []model.SpikeDetection) float64 {
	if len(spikes) == 0 {
		return 0
	}
	var sum float64
	for _, s := range spikes {
		sum += s.Threshold
	}
	return sum / float64(len(spikes))
}
