package http

import (
	"github.com/gin-gonic/gin"

	"skill-tracking-assistant/internal/model"
)

// RegisterRoutes maps the assistant REST surface onto the API group.
func RegisterRoutes(rg *gin.RouterGroup, h Handler) {
	rg.POST("/messages", h.Message)
	rg.GET("/skills", h.ListSkills)
}

// scopeFrom builds a request scope from optional headers. The REST surface
// is single-tenant; the header only disambiguates sessions.
func scopeFrom(c *gin.Context) model.Scope {
	return model.Scope{
		UserID:    c.GetHeader("X-User-ID"),
		SessionID: c.GetHeader("X-Session-ID"),
	}
}
