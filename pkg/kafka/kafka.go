package kafka

import (
	"errors"
	"fmt"

	"github.com/IBM/sarama"
)

func validateProducerConfig(cfg Config) error {
	if len(cfg.Brokers) == 0 {
		return fmt.Errorf("kafka: at least one broker is required")
	}
	if cfg.Topic == "" {
		return fmt.Errorf("kafka: topic is required")
	}
	return nil
}

func newSaramaConfig(clientID string) *sarama.Config {
	sc := sarama.NewConfig()
	sc.ClientID = clientID
	sc.Version = KafkaVersion

	sc.Producer.RequiredAcks = sarama.WaitForLocal
	sc.Producer.Compression = sarama.CompressionSnappy
	sc.Producer.Partitioner = sarama.NewHashPartitioner
	sc.Producer.Return.Successes = true
	sc.Producer.Retry.Max = ProducerRetryMax
	sc.Producer.Timeout = ProducerTimeout
	return sc
}

func newProducerImpl(cfg Config) (*producerImpl, error) {
	clientID := cfg.ClientID
	if clientID == "" {
		clientID = DefaultClientID
	}

	producer, err := sarama.NewSyncProducer(cfg.Brokers, newSaramaConfig(clientID))
	if err != nil {
		return nil, fmt.Errorf("failed to create Kafka producer: %w", err)
	}
	return &producerImpl{producer: producer, topic: cfg.Topic}, nil
}

func (p *producerImpl) toSarama(m Message) *sarama.ProducerMessage {
	pm := &sarama.ProducerMessage{
		Topic: p.topic,
		Value: sarama.ByteEncoder(m.Value),
	}
	if m.Key != nil {
		pm.Key = sarama.ByteEncoder(m.Key)
	}
	for k, v := range m.Headers {
		pm.Headers = append(pm.Headers, sarama.RecordHeader{Key: []byte(k), Value: []byte(v)})
	}
	return pm
}

// Publish sends a single record.
func (p *producerImpl) Publish(key, value []byte) error {
	if _, _, err := p.producer.SendMessage(p.toSarama(Message{Key: key, Value: value})); err != nil {
		return fmt.Errorf("failed to publish message to Kafka: %w", err)
	}
	return nil
}

func (p *producerImpl) PublishBatch(msgs []Message) error {
	if len(msgs) == 0 {
		return nil
	}

	batch := make([]*sarama.ProducerMessage, 0, len(msgs))
	for _, m := range msgs {
		batch = append(batch, p.toSarama(m))
	}

	err := p.producer.SendMessages(batch)
	if err == nil {
		return nil
	}

	var perrs sarama.ProducerErrors
	if errors.As(err, &perrs) {
		joined := make([]error, 0, len(perrs))
		for _, pe := range perrs {
			joined = append(joined, pe.Err)
		}
		return fmt.Errorf("failed to publish %d of %d messages to Kafka: %w", len(perrs), len(msgs), errors.Join(joined...))
	}
	return fmt.Errorf("failed to publish batch to Kafka: %w", err)
}

func (p *producerImpl) Close() error {
	if p.producer != nil {
		return p.producer.Close()
	}
	return nil
}

// HealthCheck verifies the producer is initialized.
func (p *producerImpl) HealthCheck() error {
	if p.producer == nil {
		return fmt.Errorf("producer is not initialized")
	}
	return nil
}
