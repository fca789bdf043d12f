package http

import (
	"insight-srv/internal/analytics"
	"insight-srv/internal/middleware"
	"insight-srv/internal/xai"
	"insight-srv/pkg/log"

	"github.com/gin-gonic/gin"
)

// Handler - Interface for the analytics HTTP handler
type Handler interface {
	RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware)
}

type handler struct {
	l   log.Logger
	uc  analytics.UseCase
	xai xai.Generator
}

// New - Factory
func New(l log.Logger, uc analytics.UseCase, xaiGen xai.Generator) Handler {
	return &handler{l: l, uc: uc, xai: xaiGen}
}
