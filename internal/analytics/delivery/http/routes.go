package http

import (
	"insight-srv/internal/middleware"

	"github.com/gin-gonic/gin"
)

func (h *handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	api := r.Group("/api/v1")
	{
		api.GET("/companies", h.ListCompanies)

		company := api.Group("/companies/:company_id")
		company.GET("/risk", h.GetRiskSummary)
		company.GET("/sentiment", h.GetSentimentSeries)
		company.GET("/alerts", h.ListAlerts)
		company.GET("/influencers", h.ListInfluencers)
		company.GET("/mentions", h.ListMentions)
		company.GET("/keywords", h.ListKeywordTrends)
		company.GET("/themes", h.ListThemes)
		company.GET("/spikes", h.ListSpikeDetections)

		api.GET("/alerts/:alert_id/explanation", h.GetAlertExplanation)

		xaiGroup := api.Group("/xai")
		xaiGroup.POST("/shap", h.SHAPValues)
		xaiGroup.POST("/features", h.FeatureContributions)
		xaiGroup.POST("/confidence", h.ConfidenceScore)
		xaiGroup.POST("/reasoning", h.Reasoning)
	}
}
