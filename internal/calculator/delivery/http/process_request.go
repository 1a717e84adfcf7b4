package http

import (
	"github.com/gin-gonic/gin"
)

func (h *handler) processCalculateRequest(c *gin.Context) (calculateReq, error) {
	var req calculateReq

	ctx := c.Request.Context()
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Errorf(ctx, "calculator.delivery.http.processCalculateRequest: ShouldBindJSON failed: %v", err)
		return req, errInvalidBody
	}

	return req, nil
}

func (h *handler) processProjectionRequest(c *gin.Context) (projectionReq, error) {
	var req projectionReq

	ctx := c.Request.Context()
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Errorf(ctx, "calculator.delivery.http.processProjectionRequest: ShouldBindJSON failed: %v", err)
		return req, errInvalidBody
	}
	if req.Months == 0 {
		req.Months = 12
	}

	return req, nil
}
