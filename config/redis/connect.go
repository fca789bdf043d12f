package redis

import (
	"context"
	"fmt"

	"insight-srv/config"
	"insight-srv/pkg/redis"
)

// Connect opens the response-cache client described by cfg and pings it once more under ctx.
func Connect(ctx context.Context, cfg config.RedisConfig) (redis.IRedis, error) {
	if !cfg.Enabled {
		return nil, fmt.Errorf("redis is disabled")
	}

	client, err := redis.NewRedis(redis.RedisConfig{
		Host:     cfg.Host,
		Port:     cfg.Port,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Redis client: %w", err)
	}

	if err := client.Ping(ctx); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to ping Redis: %w", err)
	}

	return client, nil
}

// Disconnect closes client. A nil client is a no-op.
func Disconnect(client redis.IRedis) error {
	if client == nil {
		return nil
	}
	return client.Close()
}
