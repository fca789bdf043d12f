package usecase

import (
	"time"

	"insight-srv/internal/analytics"
	"insight-srv/internal/analytics/repository"
	"insight-srv/internal/mockdata"
	"insight-srv/internal/xai"
	"insight-srv/pkg/backend"
	"insight-srv/pkg/log"
	"insight-srv/pkg/random"
)

// Config - UseCase configuration
type Config struct {
	UseMock bool

	// Alerts are derived from backend mentions when the negative count exceeds
	// NegativeSpikeThreshold or the total count exceeds VolumeThreshold.
	NegativeSpikeThreshold int
	VolumeThreshold        int

	CacheTTL time.Duration
}

// DefaultConfig - default configuration
func DefaultConfig() Config {
	return Config{
		NegativeSpikeThreshold: 5,
		VolumeThreshold:        50,
		CacheTTL:               time.Minute,
	}
}

type implUseCase struct {
	backend   backend.IBackend
	mock      mockdata.Generator
	cacheRepo repository.CacheRepository
	publisher analytics.AlertPublisher
	explainer xai.Generator
	rnd       random.Source
	now       func() time.Time
	l         log.Logger
	cfg       Config
}

// Option customizes the use case.
type Option func(*implUseCase)

// WithCache caches backend responses.
func WithCache(repo repository.CacheRepository) Option {
	return func(uc *implUseCase) { uc.cacheRepo = repo }
}

// WithPublisher forwards derived alerts.
func WithPublisher(p analytics.AlertPublisher) Option {
	return func(uc *implUseCase) { uc.publisher = p }
}

// WithExplainer composes alert explanations from gen instead of the canned record.
func WithExplainer(gen xai.Generator) Option {
	return func(uc *implUseCase) { uc.explainer = gen }
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(uc *implUseCase) { uc.now = now }
}

// New - Factory function
func New(
	be backend.IBackend,
	mock mockdata.Generator,
	rnd random.Source,
	l log.Logger,
	cfg Config,
	opts ...Option,
) analytics.UseCase {
	uc := &implUseCase{
		backend: be,
		mock:    mock,
		rnd:     rnd,
		now:     time.Now,
		l:       l,
		cfg:     cfg,
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}
