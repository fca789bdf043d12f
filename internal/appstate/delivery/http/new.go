package http

import (
	"insight-srv/internal/appstate"
	"insight-srv/internal/middleware"
	"insight-srv/pkg/log"

	"github.com/gin-gonic/gin"
)

// Handler - Interface for the application state HTTP handler
type Handler interface {
	RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware)
}

type handler struct {
	l     log.Logger
	store appstate.Store
}

// New - Factory
func New(l log.Logger, store appstate.Store) Handler {
	return &handler{l: l, store: store}
}
