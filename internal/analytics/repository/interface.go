package repository

import (
	"context"
	"time"
)

// CacheRepository stores serialized backend responses.
//
//go:generate mockery --name CacheRepository
type CacheRepository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, data []byte, ttl time.Duration) error
}
