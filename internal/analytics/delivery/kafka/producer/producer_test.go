package producer

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	kafkaDelivery "insight-srv/internal/analytics/delivery/kafka"
	"insight-srv/internal/model"
	pkgKafka "insight-srv/pkg/kafka"
	"insight-srv/pkg/log"

	"github.com/m-mizutani/gt"
)

type fakeProducer struct {
	keys    [][]byte
	bodies  [][]byte
	headers []map[string]string
	batches int
	err     error
}

func (f *fakeProducer) Publish(key, value []byte) error {
	return f.PublishBatch([]pkgKafka.Message{{Key: key, Value: value}})
}

func (f *fakeProducer) PublishBatch(msgs []pkgKafka.Message) error {
	if f.err != nil {
		return f.err
	}
	f.batches++
	for _, m := range msgs {
		f.keys = append(f.keys, m.Key)
		f.bodies = append(f.bodies, m.Value)
		f.headers = append(f.headers, m.Headers)
	}
	return nil
}

func (f *fakeProducer) Close() error       { return nil }
func (f *fakeProducer) HealthCheck() error { return nil }

func TestPublishDerivedAlerts(t *testing.T) {
	ctx := context.Background()
	detected := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	alerts := []model.Alert{
		{ID: "alert-negative-spike", Severity: model.SeverityHigh, Source: model.PlatformNews, RelatedMentions: 12, Timestamp: detected},
		{ID: "alert-volume-spike", Severity: model.SeverityMedium, Source: model.PlatformTwitter, RelatedMentions: 60, Timestamp: detected},
	}

	t.Run("one message per alert", func(t *testing.T) {
		fp := &fakeProducer{}
		p := New(log.NewNop(), fp)

		gt.NoError(t, p.PublishDerivedAlerts(ctx, "acme_corporation", alerts))
		gt.Equal(t, fp.batches, 1)
		gt.Equal(t, len(fp.bodies), 2)
		gt.Equal(t, string(fp.keys[0]), "acme_corporation")
		gt.Equal(t, fp.headers[1][kafkaDelivery.HeaderEventType], kafkaDelivery.EventTypeAlertDerived)

		var msg kafkaDelivery.AlertMessage
		gt.NoError(t, json.Unmarshal(fp.bodies[0], &msg))
		gt.Equal(t, msg.EventType, kafkaDelivery.EventTypeAlertDerived)
		gt.Equal(t, msg.AlertID, "alert-negative-spike")
		gt.Equal(t, msg.Severity, "high")
		gt.Equal(t, msg.RelatedMentions, 12)
		gt.True(t, msg.DetectedAt.Equal(detected))
	})

	t.Run("nothing to publish", func(t *testing.T) {
		fp := &fakeProducer{}
		gt.NoError(t, New(log.NewNop(), fp).PublishDerivedAlerts(ctx, "acme_corporation", nil))
		gt.Equal(t, fp.batches, 0)
	})

	t.Run("broker failure", func(t *testing.T) {
		p := New(log.NewNop(), &fakeProducer{err: errors.New("kafka: client has run out of available brokers")})
		err := p.PublishDerivedAlerts(ctx, "acme_corporation", alerts)
		gt.Error(t, err)
		gt.S(t, err.Error()).Contains("acme_corporation")
	})
}
