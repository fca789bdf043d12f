package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	stateHTTP "insight-srv/internal/appstate/delivery/http"
	"insight-srv/internal/middleware"
)

func (srv *HTTPServer) setupStateDomain(ctx context.Context, r *gin.RouterGroup, mw middleware.Middleware) error {
	handler := stateHTTP.New(srv.l, srv.state)
	handler.RegisterRoutes(r, mw)

	srv.l.Infof(ctx, "App state domain registered (brand %q)", srv.state.Snapshot().SelectedBrand)
	return nil
}
