package kafka

import (
	"fmt"

	"insight-srv/config"
	"insight-srv/pkg/kafka"
)

// ConnectProducer opens the derived-alert producer described by cfg.
func ConnectProducer(cfg config.KafkaConfig) (kafka.IProducer, error) {
	if !cfg.Enabled {
		return nil, fmt.Errorf("kafka is disabled")
	}

	producer, err := kafka.NewProducer(kafka.Config{
		Brokers:  cfg.Brokers,
		Topic:    cfg.Topic,
		ClientID: kafka.DefaultClientID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Kafka producer: %w", err)
	}

	if err := producer.HealthCheck(); err != nil {
		_ = producer.Close()
		return nil, fmt.Errorf("kafka producer unhealthy: %w", err)
	}

	return producer, nil
}

// DisconnectProducer flushes and closes producer. A nil producer is a no-op.
func DisconnectProducer(producer kafka.IProducer) error {
	if producer == nil {
		return nil
	}
	return producer.Close()
}
