package backend

import "context"

// IBackend is the client for the remote analytics backend.
// Implementations are safe for concurrent use.
type IBackend interface {
	GetCompanies(ctx context.Context) ([]Company, error)
	GetSentiment(ctx context.Context, companyID string) (Sentiment, error)
	GetKeywords(ctx context.Context, companyID string) ([]Keyword, error)
	GetThemes(ctx context.Context, companyID string) ([]string, error)
	GetMentions(ctx context.Context, source, companyID string) ([]RawMention, error)
	Health(ctx context.Context) error
}

// New creates a backend client. Returns the interface.
func New(cfg Config) IBackend {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = defaultHTTPClient()
	}
	return &backendImpl{
		baseURL:    cfg.BaseURL,
		httpClient: cfg.HTTPClient,
	}
}
