package main

import (
	"context"
	"fmt"

	"insight-srv/config"
	configKafka "insight-srv/config/kafka"
	configRedis "insight-srv/config/redis"
	"insight-srv/internal/httpserver"
	pkgKafka "insight-srv/pkg/kafka"
	"insight-srv/pkg/log"
	pkgRedis "insight-srv/pkg/redis"
)

// @title       Insight Service API
// @description Brand reputation dashboard API.
// @version     1
// @BasePath    /
func main() {
	// 1. Load configuration
	// Reads config from YAML file and environment variables
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Initialize logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
		FilePath:     cfg.Logger.FilePath,
		MaxSizeMB:    cfg.Logger.MaxSizeMB,
		MaxBackups:   cfg.Logger.MaxBackups,
		MaxAgeDays:   cfg.Logger.MaxAgeDays,
	})

	ctx := context.Background()

	// 3. Initialize Redis (optional)
	var redisClient pkgRedis.IRedis
	if cfg.Redis.Enabled {
		redisClient, err = configRedis.Connect(ctx, cfg.Redis)
		if err != nil {
			logger.Error(ctx, "Failed to connect to Redis: ", err)
			return
		}
		defer func() {
			if err := configRedis.Disconnect(redisClient); err != nil {
				logger.Warnf(ctx, "Redis disconnect: %v", err)
			}
		}()
		logger.Infof(ctx, "Redis connected successfully to %s:%d (DB %d)", cfg.Redis.Host, cfg.Redis.Port, cfg.Redis.DB)
	}

	// 4. Initialize Kafka producer (optional)
	var kafkaProducer pkgKafka.IProducer
	if cfg.Kafka.Enabled {
		kafkaProducer, err = configKafka.ConnectProducer(cfg.Kafka)
		if err != nil {
			logger.Error(ctx, "Failed to connect Kafka producer: ", err)
			return
		}
		defer func() {
			if err := configKafka.DisconnectProducer(kafkaProducer); err != nil {
				logger.Warnf(ctx, "Kafka producer disconnect: %v", err)
			}
		}()
		logger.Infof(ctx, "Kafka producer connected to %v (topic %s)", cfg.Kafka.Brokers, cfg.Kafka.Topic)
	}

	if cfg.Backend.UseMock {
		logger.Infof(ctx, "Backend disabled, serving generated data")
	}

	// 5. Initialize HTTP server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:      logger,
		Host:        cfg.HTTPServer.Host,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		CORSOrigins: cfg.HTTPServer.CORSOrigins,

		Config: cfg,

		RedisClient:   redisClient,
		KafkaProducer: kafkaProducer,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// Run blocks until SIGINT/SIGTERM and then drains in-flight requests.
	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}
}
