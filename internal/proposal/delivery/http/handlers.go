package http

import (
	"github.com/gin-gonic/gin"

	"roi-srv/pkg/response"
)

// @Summary Generate a proposal
// @Description Run the calculation, render the proposal PDF and optionally email it
// @Tags Proposal
// @Accept json
// @Produce json
// @Param body body generateReq true "Proposal request"
// @Success 200 {object} response.Resp
// @Failure 400 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Failure 503 {object} response.Resp
// @Router /api/v1/proposals [post]
func (h *handler) Generate(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processGenerateRequest(c)
	if err != nil {
		response.Error(c, err, h.discord)
		return
	}

	out, err := h.uc.Generate(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "proposal.delivery.http.Generate: usecase Generate failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, newGenerateResp(out))
}
