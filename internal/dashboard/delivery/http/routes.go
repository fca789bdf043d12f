package http

import (
	"insight-srv/internal/middleware"

	"github.com/gin-gonic/gin"
)

func (h *handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	pages := r.Group("/api/v1/pages")
	{
		pages.GET("/overview", h.Overview)
		pages.GET("/alerts", h.Alerts)
		pages.GET("/alerts/stream", h.AlertsStream)
		pages.GET("/mentions", h.Mentions)
		pages.GET("/influencers", h.Influencers)
		pages.GET("/insights", h.Insights)
	}
}
