package mockdata

import (
	"fmt"

	"insight-srv/internal/model"
	"insight-srv/pkg/random"
)

func alertID(n int) string {
	return fmt.Sprintf("alert-%d", n)
}

// Alerts generates count alerts. Severity is derived from the related-mention count.
func (g *implGenerator) Alerts(count int) []model.Alert {
	if count < 0 {
		count = 0
	}
	alerts := make([]model.Alert, count)
	for i := range alerts {
		related := random.Int(g.src, 50, 550)
		alerts[i] = model.Alert{
			ID:              alertID(i + 1),
			Title:           random.Item(g.src, alertTitles),
			Description:     random.Item(g.src, alertDescriptions),
			Severity:        model.SeverityForMentions(related),
			Timestamp:       g.randomDate(7),
			Source:          random.Item(g.src, model.Platforms),
			RelatedMentions: related,
			Keywords:        g.pickKeywords(3),
			Sentiment:       random.Item(g.src, model.Sentiments),
			IsRead:          g.src.Float64() > 0.5,
		}
	}
	return alerts
}

func (g *implGenerator) pickKeywords(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = random.Item(g.src, keywords)
	}
	return out
}
