package httpserver

import (
	"context"
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	dashboardHTTP "insight-srv/internal/dashboard/delivery/http"
	dashboardUsecase "insight-srv/internal/dashboard/usecase"
	"insight-srv/internal/middleware"
)

func (srv *HTTPServer) setupDashboardDomain(ctx context.Context, r *gin.RouterGroup, mw middleware.Middleware) error {
	if srv.analyticsUC == nil {
		return errors.New("analytics usecase is not initialized")
	}

	uc := dashboardUsecase.New(srv.l, srv.analyticsUC, srv.xai, srv.state, time.Now)

	handler := dashboardHTTP.New(srv.l, uc, srv.state, dashboardHTTP.Config{
		StreamInterval: srv.config.Realtime.Interval,
	})
	handler.RegisterRoutes(r, mw)

	srv.l.Infof(ctx, "Dashboard domain registered (stream every %s)", srv.config.Realtime.Interval)
	return nil
}
