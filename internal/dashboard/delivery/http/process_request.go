package http

import (
	"insight-srv/internal/dashboard"
	"insight-srv/internal/filter"

	"github.com/gin-gonic/gin"
)

func (h *handler) processAlertsRequest(c *gin.Context) (string, dashboard.AlertsQuery, error) {
	var req alertsReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return "", dashboard.AlertsQuery{}, errInvalidQuery
	}
	q, err := req.toQuery()
	return req.Brand, q, err
}

func (h *handler) processMentionsRequest(c *gin.Context) (string, dashboard.MentionsQuery, error) {
	var req mentionsReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return "", dashboard.MentionsQuery{}, errInvalidQuery
	}
	q, err := req.toQuery()
	return req.Brand, q, err
}

func (h *handler) processInfluencersRequest(c *gin.Context) (string, filter.InfluencerFilter, error) {
	var req influencersReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return "", filter.InfluencerFilter{}, errInvalidQuery
	}
	f, err := req.toFilter()
	return req.Brand, f, err
}
