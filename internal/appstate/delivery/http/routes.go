package http

import (
	"insight-srv/internal/middleware"

	"github.com/gin-gonic/gin"
)

func (h *handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	state := r.Group("/api/v1/state")
	{
		state.GET("", h.Get)
		state.POST("/sidebar/toggle", h.ToggleSidebar)
		state.POST("/brand", h.SelectBrand)
		state.POST("/alert-count", h.SetAlertCount)
		state.POST("/realtime/toggle", h.ToggleRealTime)
		state.POST("/tour/seen", h.MarkTourSeen)
		state.POST("/comparison", h.AddToComparison)
		state.POST("/comparison/clear", h.ClearComparison)
		state.DELETE("/comparison/:influencer_id", h.RemoveFromComparison)
	}
}
