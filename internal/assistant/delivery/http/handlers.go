package http

import (
	"github.com/gin-gonic/gin"

	"skill-tracking-assistant/pkg/response"
)

// Message godoc
// @Summary     Route a message
// @Description Runs one utterance through the action router and returns the result.
// @Tags        Assistant
// @Accept      json
// @Produce     json
// @Param       body body messageReq true "Message"
// @Success     200 {object} messageResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/messages [POST]
func (h *handler) Message(c *gin.Context) {
	ctx := c.Request.Context()

	var req messageReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err, nil)
		return
	}
	if err := req.validate(); err != nil {
		response.Error(c, err, nil)
		return
	}

	result := h.router.Route(ctx, req.toInput())
	response.OK(c, newMessageResp(result))
}

// ListSkills godoc
// @Summary     List skills
// @Description Returns all registered skills.
// @Tags        Assistant
// @Produce     json
// @Success     200 {object} listSkillsResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/skills [GET]
func (h *handler) ListSkills(c *gin.Context) {
	ctx := c.Request.Context()

	skills, err := h.skillUC.List(ctx, scopeFrom(c))
	if err != nil {
		h.l.Errorf(ctx, "skillUC.List: %v", err)
		response.InternalError(c, err)
		return
	}

	response.OK(c, newListSkillsResp(skills))
}
