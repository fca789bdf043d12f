package http

import (
	"insight-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

// Get - Current application state
// @Router /api/v1/state [get]
func (h *handler) Get(c *gin.Context) {
	response.OK(c, h.store.Snapshot())
}

func (h *handler) ToggleSidebar(c *gin.Context) {
	response.OK(c, h.store.ToggleSidebar())
}

func (h *handler) SelectBrand(c *gin.Context) {
	ctx := c.Request.Context()

	var req selectBrandReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, errInvalidBody)
		return
	}

	st, err := h.store.SelectBrand(req.Brand)
	if err != nil {
		h.l.Warnf(ctx, "appstate.delivery.http.SelectBrand: %v", err)
		response.Error(c, h.mapError(err))
		return
	}
	h.l.Infof(ctx, "appstate.delivery.http.SelectBrand: brand set to %s", st.SelectedBrand)
	response.OK(c, st)
}

func (h *handler) SetAlertCount(c *gin.Context) {
	var req alertCountReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, errInvalidBody)
		return
	}

	st, err := h.store.SetAlertCount(*req.Count)
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}
	response.OK(c, st)
}

func (h *handler) ToggleRealTime(c *gin.Context) {
	response.OK(c, h.store.ToggleRealTime())
}

func (h *handler) MarkTourSeen(c *gin.Context) {
	response.OK(c, h.store.MarkTourSeen())
}

// AddToComparison - Add an influencer to the side-by-side comparison (max 3)
// @Failure 409 {object} response.Resp
// @Router /api/v1/state/comparison [post]
func (h *handler) AddToComparison(c *gin.Context) {
	var req comparisonReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, errInvalidBody)
		return
	}

	st, err := h.store.AddToComparison(req.Influencer)
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}
	response.OK(c, st)
}

func (h *handler) RemoveFromComparison(c *gin.Context) {
	st, err := h.store.RemoveFromComparison(c.Param("influencer_id"))
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}
	response.OK(c, st)
}

func (h *handler) ClearComparison(c *gin.Context) {
	response.OK(c, h.store.ClearComparison())
}
