package usecase

import (
	"context"
	"fmt"

	"insight-srv/internal/mockdata"
	"insight-srv/internal/model"
	"insight-srv/pkg/backend"
)

const (
	negativeSpikeAlertID = "alert-negative-spike"
	volumeSpikeAlertID   = "alert-volume-spike"

	// quietAlertCount is the number of generated alerts served when mentions exist but
	// nothing crossed a threshold.
	quietAlertCount = 3
)

func (uc *implUseCase) ListAlerts(ctx context.Context, companyID string) ([]model.Alert, error) {
	id, err := normalizeCompany(companyID)
	if err != nil {
		return nil, err
	}
	if uc.cfg.UseMock {
		return uc.mock.Alerts(mockdata.DefaultAlertCount), nil
	}

	mentions, err := uc.fetchMentions(ctx, id, backend.Sources)
	if err != nil {
		uc.fallback(ctx, "ListAlerts", err)
		return uc.mock.Alerts(mockdata.DefaultAlertCount), nil
	}
	if len(mentions) == 0 {
		return []model.Alert{}, nil
	}

	alerts := uc.deriveAlerts(mentions)
	if len(alerts) == 0 {
		return uc.mock.Alerts(quietAlertCount), nil
	}

	if uc.publisher != nil {
		if err := uc.publisher.PublishDerivedAlerts(ctx, id, alerts); err != nil {
			uc.l.Errorf(ctx, "analytics.usecase.ListAlerts: Failed to publish derived alerts: %v", err)
		}
	}
	return alerts, nil
}

func (uc *implUseCase) deriveAlerts(mentions []sourcedMention) []model.Alert {
	now := uc.now()

	negatives := 0
	for _, m := range mentions {
		if model.SentimentNegative.EqualFold(m.raw.String("sentiment")) {
			negatives++
		}
	}

	var alerts []model.Alert
	if negatives > uc.cfg.NegativeSpikeThreshold {
		alerts = append(alerts, model.Alert{
			ID:              negativeSpikeAlertID,
			Title:           "Negative Sentiment Spike Detected",
			Description:     fmt.Sprintf("%d negative mentions found across platforms", negatives),
			Severity:        negativeSpikeSeverity(negatives),
			Timestamp:       now,
			Source:          model.PlatformNews,
			RelatedMentions: negatives,
			Keywords:        []string{"negative", "sentiment", "spike"},
			Sentiment:       model.SentimentNegative,
		})
	}

	if len(mentions) > uc.cfg.VolumeThreshold {
		alerts = append(alerts, model.Alert{
			ID:              volumeSpikeAlertID,
			Title:           "High Mention Volume Detected",
			Description:     fmt.Sprintf("%d total mentions found - significantly above baseline", len(mentions)),
			Severity:        model.SeverityMedium,
			Timestamp:       now,
			Source:          model.PlatformTwitter,
			RelatedMentions: len(mentions),
			Keywords:        []string{"volume", "mentions", "trending"},
			Sentiment:       model.SentimentNeutral,
		})
	}
	return alerts
}

func negativeSpikeSeverity(negatives int) model.Severity {
	switch {
	case negatives > 20:
		return model.SeverityCritical
	case negatives > 10:
		return model.SeverityHigh
	default:
		return model.SeverityMedium
	}
}
