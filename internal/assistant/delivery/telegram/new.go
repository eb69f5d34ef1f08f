package telegram

import (
	"context"

	"github.com/gin-gonic/gin"

	"skill-tracking-assistant/internal/dispatch"
	pkgLog "skill-tracking-assistant/pkg/log"
	pkgTelegram "skill-tracking-assistant/pkg/telegram"
)

// Router is the action routing surface, satisfied by *dispatch.Dispatcher.
type Router interface {
	Route(ctx context.Context, input dispatch.Input) dispatch.ActionResult
}

// Sender is the outgoing message surface, satisfied by *pkgTelegram.Bot.
type Sender interface {
	SendMessage(chatID int64, text string) error
	SendMessageWithMode(chatID int64, text string, parseMode string) error
}

// Handler is the interface for the Telegram delivery handler.
type Handler interface {
	HandleWebhook(c *gin.Context)
}

// New creates a new Telegram delivery handler.
func New(l pkgLog.Logger, router Router, bot Sender) Handler {
	return &handler{
		l:      l,
		router: router,
		bot:    bot,
		memory: newSessionMemory(),
	}
}

var _ Sender = (*pkgTelegram.Bot)(nil)
