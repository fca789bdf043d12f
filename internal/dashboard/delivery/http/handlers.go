package http

import (
	"insight-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

// Overview - Executive dashboard
// @Param brand query string false "brand name, defaults to the selected brand"
// @Router /api/v1/pages/overview [get]
func (h *handler) Overview(c *gin.Context) {
	response.OK(c, h.uc.Overview(c.Request.Context(), c.Query("brand")))
}

// Alerts - Risk alerts with spikes and crisis keywords
// @Router /api/v1/pages/alerts [get]
func (h *handler) Alerts(c *gin.Context) {
	ctx := c.Request.Context()

	brand, q, err := h.processAlertsRequest(c)
	if err != nil {
		h.l.Warnf(ctx, "dashboard.delivery.http.Alerts: processAlertsRequest failed: %v", err)
		response.Error(c, err)
		return
	}
	response.OK(c, h.uc.Alerts(ctx, brand, q))
}

func (h *handler) Mentions(c *gin.Context) {
	ctx := c.Request.Context()

	brand, q, err := h.processMentionsRequest(c)
	if err != nil {
		h.l.Warnf(ctx, "dashboard.delivery.http.Mentions: processMentionsRequest failed: %v", err)
		response.Error(c, err)
		return
	}
	response.OK(c, h.uc.Mentions(ctx, brand, q))
}

func (h *handler) Influencers(c *gin.Context) {
	ctx := c.Request.Context()

	brand, f, err := h.processInfluencersRequest(c)
	if err != nil {
		h.l.Warnf(ctx, "dashboard.delivery.http.Influencers: processInfluencersRequest failed: %v", err)
		response.Error(c, err)
		return
	}
	response.OK(c, h.uc.Influencers(ctx, brand, f))
}

func (h *handler) Insights(c *gin.Context) {
	response.OK(c, h.uc.Insights(c.Request.Context()))
}
