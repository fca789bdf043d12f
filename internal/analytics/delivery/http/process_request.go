package http

import (
	"github.com/gin-gonic/gin"
)

func (h *handler) processMentionsRequest(c *gin.Context) (mentionsReq, error) {
	var req mentionsReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, errInvalidLimit
	}
	return req, nil
}

func (h *handler) processReasoningRequest(c *gin.Context) (reasoningReq, error) {
	var req reasoningReq
	if err := bindOptionalJSON(c, &req); err != nil {
		return req, err
	}
	if req.Kind != "" && !req.toContext().Kind.IsValid() {
		return req, errInvalidKind
	}
	return req, nil
}

// bindOptionalJSON binds a body whose fields all have defaults. An empty body is valid.
func bindOptionalJSON(c *gin.Context, req any) error {
	if c.Request.ContentLength == 0 {
		return nil
	}
	if err := c.ShouldBindJSON(req); err != nil {
		return errInvalidBody
	}
	return nil
}
