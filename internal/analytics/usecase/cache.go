package usecase

import (
	"context"
	"encoding/json"
	"errors"

	"insight-srv/internal/analytics/repository"
)

// cached serves key from the cache when possible and stores fresh fetch results.
// Cache failures only cost a backend round trip.
func cached[T any](ctx context.Context, uc *implUseCase, key string, fetch func(context.Context) (T, error)) (T, error) {
	if uc.cacheRepo != nil {
		data, err := uc.cacheRepo.Get(ctx, key)
		switch {
		case err == nil:
			var v T
			if err := json.Unmarshal(data, &v); err == nil {
				return v, nil
			}
			uc.l.Warnf(ctx, "analytics.usecase.cached: Corrupt cache entry %s", key)
		case !errors.Is(err, repository.ErrCacheMiss):
			uc.l.Warnf(ctx, "analytics.usecase.cached: Cache read failed for %s: %v", key, err)
		}
	}

	v, err := fetch(ctx)
	if err != nil {
		return v, err
	}

	if uc.cacheRepo != nil {
		if data, err := json.Marshal(v); err == nil {
			_ = uc.cacheRepo.Save(ctx, key, data, uc.cfg.CacheTTL)
		}
	}
	return v, nil
}

func cacheKey(resource, companyID string) string {
	return resource + ":" + companyID
}
