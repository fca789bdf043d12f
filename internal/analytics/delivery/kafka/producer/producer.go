package producer

import (
	"context"
	"encoding/json"
	"fmt"

	kafkaDelivery "insight-srv/internal/analytics/delivery/kafka"
	"insight-srv/internal/model"
	pkgKafka "insight-srv/pkg/kafka"
)

// PublishDerivedAlerts publishes the alerts as one batch, one record per alert keyed by company
// so a company's alerts land on the same partition.
func (p *implProducer) PublishDerivedAlerts(ctx context.Context, companyID string, alerts []model.Alert) error {
	if len(alerts) == 0 {
		return nil
	}

	key := []byte(companyID)
	headers := map[string]string{kafkaDelivery.HeaderEventType: kafkaDelivery.EventTypeAlertDerived}

	batch := make([]pkgKafka.Message, 0, len(alerts))
	for _, a := range alerts {
		body, err := json.Marshal(toAlertMessage(companyID, a))
		if err != nil {
			return fmt.Errorf("failed to marshal alert %s: %w", a.ID, err)
		}
		batch = append(batch, pkgKafka.Message{Key: key, Value: body, Headers: headers})
	}

	if err := p.producer.PublishBatch(batch); err != nil {
		return fmt.Errorf("failed to publish %d alerts for %s: %w", len(alerts), companyID, err)
	}

	p.l.Infof(ctx, "analytics.delivery.kafka.producer: Published %d derived alerts for %s", len(alerts), companyID)
	return nil
}

func toAlertMessage(companyID string, a model.Alert) kafkaDelivery.AlertMessage {
	return kafkaDelivery.AlertMessage{
		EventType:       kafkaDelivery.EventTypeAlertDerived,
		CompanyID:       companyID,
		AlertID:         a.ID,
		Title:           a.Title,
		Description:     a.Description,
		Severity:        string(a.Severity),
		Source:          string(a.Source),
		Sentiment:       string(a.Sentiment),
		RelatedMentions: a.RelatedMentions,
		Keywords:        a.Keywords,
		DetectedAt:      a.Timestamp,
	}
}
