package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"insight-srv/internal/analytics/repository"
	pkgRedis "insight-srv/pkg/redis"
)

func (r *implCacheRepository) Get(ctx context.Context, key string) ([]byte, error) {
	data, err := r.redis.Get(ctx, keyPrefix+key)
	if errors.Is(err, pkgRedis.ErrKeyNotFound) {
		return nil, repository.ErrCacheMiss
	}
	if err != nil {
		r.l.Errorf(ctx, "analytics.repository.redis.Get: Failed to read %s: %v", key, err)
		return nil, err
	}
	return data, nil
}

func (r *implCacheRepository) Save(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	if err := r.redis.Set(ctx, keyPrefix+key, data, ttl); err != nil {
		r.l.Errorf(ctx, "analytics.repository.redis.Save: Failed to save %s: %v", key, err)
		return fmt.Errorf("%w: %v", repository.ErrCacheSetFailed, err)
	}
	return nil
}
