package redis

import (
	"insight-srv/internal/analytics/repository"
	"insight-srv/pkg/log"
	pkgRedis "insight-srv/pkg/redis"
)

const keyPrefix = "insight:backend:"

type implCacheRepository struct {
	redis pkgRedis.IRedis
	l     log.Logger
}

// New - Factory
func New(redis pkgRedis.IRedis, l log.Logger) repository.CacheRepository {
	return &implCacheRepository{
		redis: redis,
		l:     l,
	}
}
