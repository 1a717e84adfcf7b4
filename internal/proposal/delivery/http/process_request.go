package http

import (
	"github.com/gin-gonic/gin"
)

func (h *handler) processGenerateRequest(c *gin.Context) (generateReq, error) {
	var req generateReq

	ctx := c.Request.Context()
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Errorf(ctx, "proposal.delivery.http.processGenerateRequest: ShouldBindJSON failed: %v", err)
		return req, errInvalidBody
	}

	return req, nil
}
