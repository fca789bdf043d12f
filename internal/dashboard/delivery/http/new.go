package http

import (
	"net/http"
	"time"

	"insight-srv/internal/appstate"
	"insight-srv/internal/dashboard"
	"insight-srv/internal/middleware"
	"insight-srv/pkg/log"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// Handler - Interface for the dashboard pages HTTP handler
type Handler interface {
	RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware)
}

// Config - stream configuration
type Config struct {
	// StreamInterval is the push period of the alerts stream.
	StreamInterval time.Duration
}

type handler struct {
	l        log.Logger
	uc       dashboard.UseCase
	state    appstate.Store
	cfg      Config
	upgrader websocket.Upgrader
}

// New - Factory
func New(l log.Logger, uc dashboard.UseCase, state appstate.Store, cfg Config) Handler {
	if cfg.StreamInterval <= 0 {
		cfg.StreamInterval = 30 * time.Second
	}
	return &handler{
		l:     l,
		uc:    uc,
		state: state,
		cfg:   cfg,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// Origins are checked by the CORS middleware.
			CheckOrigin: func(*http.Request) bool { return true },
		},
	}
}
