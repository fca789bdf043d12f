package httpserver

import (
	"context"
	"fmt"

	"insight-srv/internal/middleware"
)

func (srv *HTTPServer) mapHandlers() error {
	ctx := context.Background()
	mw := middleware.New(srv.l)

	srv.registerMiddlewares(mw)
	srv.registerSystemRoutes()

	r := srv.gin.Group("")

	// Analytics first: the dashboard reads through its usecase.
	if err := srv.setupAnalyticsDomain(ctx, r, mw); err != nil {
		return fmt.Errorf("analytics domain: %w", err)
	}
	if err := srv.setupStateDomain(ctx, r, mw); err != nil {
		return fmt.Errorf("state domain: %w", err)
	}
	if err := srv.setupDashboardDomain(ctx, r, mw); err != nil {
		return fmt.Errorf("dashboard domain: %w", err)
	}

	return nil
}

func (srv *HTTPServer) registerMiddlewares(mw middleware.Middleware) {
	srv.gin.Use(middleware.Recovery(srv.l, srv.environment))
	srv.gin.Use(mw.RequestID())

	corsConfig := middleware.DefaultCORSConfig(srv.environment, srv.corsOrigins)
	srv.gin.Use(middleware.CORS(corsConfig))

	ctx := context.Background()
	if corsConfig.AllowPrivate {
		srv.l.Infof(ctx, "CORS mode: %s (permissive - allows localhost and private subnets)", srv.environment)
	} else {
		srv.l.Infof(ctx, "CORS mode: production (%d configured origins)", len(srv.corsOrigins))
	}
}

func (srv *HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)
}
