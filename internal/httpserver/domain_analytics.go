package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	analyticsHTTP "insight-srv/internal/analytics/delivery/http"
	analyticsProducer "insight-srv/internal/analytics/delivery/kafka/producer"
	analyticsRedis "insight-srv/internal/analytics/repository/redis"
	analyticsUsecase "insight-srv/internal/analytics/usecase"
	"insight-srv/internal/middleware"
)

func (srv *HTTPServer) setupAnalyticsDomain(ctx context.Context, r *gin.RouterGroup, mw middleware.Middleware) error {
	cfg := analyticsUsecase.DefaultConfig()
	cfg.UseMock = srv.config.Backend.UseMock
	cfg.NegativeSpikeThreshold = srv.config.Alerts.NegativeSpikeThreshold
	cfg.VolumeThreshold = srv.config.Alerts.VolumeThreshold
	if srv.config.Redis.CacheTTL > 0 {
		cfg.CacheTTL = srv.config.Redis.CacheTTL
	}

	opts := []analyticsUsecase.Option{analyticsUsecase.WithExplainer(srv.xai)}
	if srv.redisClient != nil {
		opts = append(opts, analyticsUsecase.WithCache(analyticsRedis.New(srv.redisClient, srv.l)))
		srv.l.Infof(ctx, "Analytics cache enabled (ttl %s)", cfg.CacheTTL)
	}
	if srv.kafkaProducer != nil {
		opts = append(opts, analyticsUsecase.WithPublisher(analyticsProducer.New(srv.l, srv.kafkaProducer)))
		srv.l.Infof(ctx, "Derived alert publishing enabled")
	}

	uc := analyticsUsecase.New(srv.backend, srv.mock, srv.rnd, srv.l, cfg, opts...)
	srv.analyticsUC = uc

	handler := analyticsHTTP.New(srv.l, uc, srv.xai)
	handler.RegisterRoutes(r, mw)

	if cfg.UseMock {
		srv.l.Infof(ctx, "Analytics domain registered (generated data)")
	} else {
		srv.l.Infof(ctx, "Analytics domain registered (backend %s)", srv.config.Backend.BaseURL)
	}
	return nil
}
