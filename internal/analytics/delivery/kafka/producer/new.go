package producer

import (
	"insight-srv/internal/analytics"
	pkgKafka "insight-srv/pkg/kafka"
	"insight-srv/pkg/log"
)

// Producer publishes analytics events.
type Producer interface {
	analytics.AlertPublisher
}

type implProducer struct {
	l        log.Logger
	producer pkgKafka.IProducer
}

// New creates a new analytics producer
func New(l log.Logger, producer pkgKafka.IProducer) Producer {
	return &implProducer{
		l:        l,
		producer: producer,
	}
}
