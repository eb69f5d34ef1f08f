package http

import (
	"context"

	"github.com/gin-gonic/gin"

	"skill-tracking-assistant/internal/dispatch"
	"skill-tracking-assistant/internal/skill"
	pkgLog "skill-tracking-assistant/pkg/log"
)

// Router is the action routing surface, satisfied by *dispatch.Dispatcher.
type Router interface {
	Route(ctx context.Context, input dispatch.Input) dispatch.ActionResult
}

// Handler is the interface for the assistant REST handler.
type Handler interface {
	Message(c *gin.Context)
	ListSkills(c *gin.Context)
}

type handler struct {
	l       pkgLog.Logger
	router  Router
	skillUC skill.UseCase
}

// New creates the assistant REST handler.
func New(l pkgLog.Logger, router Router, skillUC skill.UseCase) Handler {
	return &handler{
		l:       l,
		router:  router,
		skillUC: skillUC,
	}
}
