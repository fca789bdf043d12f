package http

import (
	"net/http"
	"time"
)

// ClientConfig configures timeouts and retries. Zero values take the package defaults,
// except Retries where zero means a single attempt.
type ClientConfig struct {
	Timeout   time.Duration
	Retries   int
	RetryWait time.Duration
	UserAgent string
}

type clientImpl struct {
	client *http.Client
	config ClientConfig
}
