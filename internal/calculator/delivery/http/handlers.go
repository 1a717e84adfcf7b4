package http

import (
	"github.com/gin-gonic/gin"

	"roi-srv/pkg/response"
)

// @Summary List catalog properties
// @Description Return the static property catalog the calculator selects from
// @Tags Calculator
// @Produce json
// @Success 200 {object} response.Resp
// @Router /api/v1/calculator/properties [get]
func (h *handler) Properties(c *gin.Context) {
	response.OK(c, h.uc.Properties(c.Request.Context()))
}

// @Summary Run the unified calculation
// @Description Compute the full revenue-uplift model for the given inputs, scenario, risk scenario and overrides
// @Tags Calculator
// @Accept json
// @Produce json
// @Param body body calculateReq true "Calculation request"
// @Success 200 {object} response.Resp
// @Failure 400 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /api/v1/calculator/calculate [post]
func (h *handler) Calculate(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCalculateRequest(c)
	if err != nil {
		response.Error(c, err, h.discord)
		return
	}

	res, err := h.uc.Calculate(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "calculator.delivery.http.Calculate: usecase Calculate failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, res)
}

// @Summary Project the uplift ramp
// @Description Compute the 12- or 36-month ramped uplift series for the given calculation request
// @Tags Calculator
// @Accept json
// @Produce json
// @Param body body projectionReq true "Projection request"
// @Success 200 {object} response.Resp
// @Failure 400 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /api/v1/calculator/projection [post]
func (h *handler) Projection(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processProjectionRequest(c)
	if err != nil {
		response.Error(c, err, h.discord)
		return
	}

	projection, err := h.uc.MonthlyProjection(ctx, req.toInput(), req.Months)
	if err != nil {
		h.l.Errorf(ctx, "calculator.delivery.http.Projection: usecase MonthlyProjection failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, projectionResp{Months: req.Months, Projection: projection})
}
