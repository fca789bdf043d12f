package kafka

const (
	EventTypeAlertDerived = "alert.derived"
)

const (
	// HeaderEventType carries the event type so consumers can route without decoding the value.
	HeaderEventType = "event_type"
)
