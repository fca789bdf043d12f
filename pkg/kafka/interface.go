package kafka

import "github.com/IBM/sarama"

// IProducer publishes to a single topic.
// Implementations are safe for concurrent use.
type IProducer interface {
	Publish(key, value []byte) error
	// PublishBatch sends msgs in one request. On partial failure the error joins every failed record.
	PublishBatch(msgs []Message) error
	Close() error
	HealthCheck() error
}

// NewProducer creates a new Kafka producer. Returns the interface.
func NewProducer(cfg Config) (IProducer, error) {
	if err := validateProducerConfig(cfg); err != nil {
		return nil, err
	}
	return newProducerImpl(cfg)
}

// NewProducerFromSync wraps an existing sarama.SyncProducer.
func NewProducerFromSync(producer sarama.SyncProducer, topic string) IProducer {
	return &producerImpl{producer: producer, topic: topic}
}
