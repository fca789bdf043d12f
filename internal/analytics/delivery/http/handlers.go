package http

import (
	"insight-srv/internal/analytics"
	"insight-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

// ListCompanies - List monitored companies
// @Summary List companies
// @Tags Analytics
// @Produce json
// @Success 200 {object} companiesResp
// @Router /api/v1/companies [get]
func (h *handler) ListCompanies(c *gin.Context) {
	ctx := c.Request.Context()

	companies, err := h.uc.ListCompanies(ctx)
	if err != nil {
		h.l.Errorf(ctx, "analytics.delivery.http.ListCompanies: %v", err)
		response.Error(c, h.mapError(err))
		return
	}
	response.OK(c, newListResp(companies))
}

// GetRiskSummary - Executive risk snapshot for a company
// @Router /api/v1/companies/{company_id}/risk [get]
func (h *handler) GetRiskSummary(c *gin.Context) {
	ctx := c.Request.Context()

	risk, err := h.uc.GetRiskSummary(ctx, c.Param("company_id"))
	if err != nil {
		h.l.Errorf(ctx, "analytics.delivery.http.GetRiskSummary: %v", err)
		response.Error(c, h.mapError(err))
		return
	}
	response.OK(c, risk)
}

func (h *handler) GetSentimentSeries(c *gin.Context) {
	ctx := c.Request.Context()

	series, err := h.uc.GetSentimentSeries(ctx, c.Param("company_id"))
	if err != nil {
		h.l.Errorf(ctx, "analytics.delivery.http.GetSentimentSeries: %v", err)
		response.Error(c, h.mapError(err))
		return
	}
	response.OK(c, newListResp(series))
}

func (h *handler) ListAlerts(c *gin.Context) {
	ctx := c.Request.Context()

	alerts, err := h.uc.ListAlerts(ctx, c.Param("company_id"))
	if err != nil {
		h.l.Errorf(ctx, "analytics.delivery.http.ListAlerts: %v", err)
		response.Error(c, h.mapError(err))
		return
	}
	response.OK(c, newListResp(alerts))
}

func (h *handler) ListInfluencers(c *gin.Context) {
	ctx := c.Request.Context()

	influencers, err := h.uc.ListInfluencers(ctx, c.Param("company_id"))
	if err != nil {
		h.l.Errorf(ctx, "analytics.delivery.http.ListInfluencers: %v", err)
		response.Error(c, h.mapError(err))
		return
	}
	response.OK(c, newListResp(influencers))
}

// ListMentions - Mentions across sources, newest first
// @Param source query string false "news, reddit or twitter"
// @Param limit query int false "maximum number of mentions"
// @Router /api/v1/companies/{company_id}/mentions [get]
func (h *handler) ListMentions(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processMentionsRequest(c)
	if err != nil {
		h.l.Warnf(ctx, "analytics.delivery.http.ListMentions: processMentionsRequest failed: %v", err)
		response.Error(c, err)
		return
	}

	mentions, err := h.uc.ListMentions(ctx, c.Param("company_id"), analytics.MentionQuery{
		Source: req.Source,
		Limit:  req.Limit,
	})
	if err != nil {
		h.l.Errorf(ctx, "analytics.delivery.http.ListMentions: %v", err)
		response.Error(c, h.mapError(err))
		return
	}
	response.OK(c, newListResp(mentions))
}

func (h *handler) ListKeywordTrends(c *gin.Context) {
	ctx := c.Request.Context()

	keywords, err := h.uc.ListKeywordTrends(ctx, c.Param("company_id"))
	if err != nil {
		h.l.Errorf(ctx, "analytics.delivery.http.ListKeywordTrends: %v", err)
		response.Error(c, h.mapError(err))
		return
	}
	response.OK(c, newListResp(keywords))
}

func (h *handler) ListThemes(c *gin.Context) {
	ctx := c.Request.Context()

	themes, err := h.uc.ListThemes(ctx, c.Param("company_id"))
	if err != nil {
		h.l.Errorf(ctx, "analytics.delivery.http.ListThemes: %v", err)
		response.Error(c, h.mapError(err))
		return
	}
	response.OK(c, newListResp(themes))
}

func (h *handler) ListSpikeDetections(c *gin.Context) {
	ctx := c.Request.Context()

	spikes, err := h.uc.ListSpikeDetections(ctx, c.Param("company_id"))
	if err != nil {
		h.l.Errorf(ctx, "analytics.delivery.http.ListSpikeDetections: %v", err)
		response.Error(c, h.mapError(err))
		return
	}
	response.OK(c, newListResp(spikes))
}

// GetAlertExplanation - Why an alert fired
// @Router /api/v1/alerts/{alert_id}/explanation [get]
func (h *handler) GetAlertExplanation(c *gin.Context) {
	ctx := c.Request.Context()

	exp, err := h.uc.GetXAIExplanation(ctx, c.Param("alert_id"))
	if err != nil {
		h.l.Errorf(ctx, "analytics.delivery.http.GetAlertExplanation: %v", err)
		response.Error(c, h.mapError(err))
		return
	}
	response.OK(c, exp)
}

// SHAPValues - Per-word attribution for a text
// @Router /api/v1/xai/shap [post]
func (h *handler) SHAPValues(c *gin.Context) {
	var req shapReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, errInvalidBody)
		return
	}
	response.OK(c, newListResp(h.xai.SHAPValues(req.Text)))
}

func (h *handler) FeatureContributions(c *gin.Context) {
	var req featuresReq
	if err := bindOptionalJSON(c, &req); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, newListResp(h.xai.FeatureContributions(req.toContext())))
}

func (h *handler) ConfidenceScore(c *gin.Context) {
	var req confidenceReq
	if err := bindOptionalJSON(c, &req); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, h.xai.ConfidenceScore(req.toContext()))
}

func (h *handler) Reasoning(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processReasoningRequest(c)
	if err != nil {
		h.l.Warnf(ctx, "analytics.delivery.http.Reasoning: processReasoningRequest failed: %v", err)
		response.Error(c, err)
		return
	}
	response.OK(c, h.xai.Reasoning(req.toContext()))
}
