package telegram

import (
	"context"
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"

	"skill-tracking-assistant/internal/dispatch"
	"skill-tracking-assistant/internal/model"
	pkgLog "skill-tracking-assistant/pkg/log"
	pkgResponse "skill-tracking-assistant/pkg/response"
	pkgTelegram "skill-tracking-assistant/pkg/telegram"
)

type handler struct {
	l      pkgLog.Logger
	router Router
	bot    Sender
	memory *sessionMemory
}

const welcomeMessage = `👋 Welcome! I track whatever you want to measure.

Tell me things like:
• "drank 2 glasses of water"
• "did 20 pushups"
• "how much water today?"

I'll set up skills for new things automatically.`

const helpMessage = `*How to use me:*

Log something: ` + "`drank 500ml of water`" + `, ` + "`ran 5 km`" + `
Ask for stats: ` + "`how many pushups today?`" + `
Start tracking something new: just describe it and confirm when I ask.`

// HandleWebhook is the Gin handler for incoming Telegram webhook updates.
// It responds 200 immediately and processes the message in a background
// goroutine; the full pipeline can exceed Telegram's webhook timeout.
func (h *handler) HandleWebhook(c *gin.Context) {
	ctx := c.Request.Context()

	var update pkgTelegram.Update
	if err := c.ShouldBindJSON(&update); err != nil {
		h.l.Errorf(ctx, "telegram handler: failed to parse update: %v", err)
		pkgResponse.Error(c, err, nil)
		return
	}

	// Ignore non-message updates (polls, channel_post, etc.)
	if update.Message == nil || update.Message.Chat == nil {
		pkgResponse.OK(c, map[string]string{"status": "ignored"})
		return
	}

	// Snapshot before spawning the goroutine; the gin context is recycled
	// after the response.
	msg := update.Message

	go func() {
		bgCtx := context.Background()
		h.processMessage(bgCtx, msg)
	}()

	pkgResponse.OK(c, map[string]string{"status": "accepted"})
}

func (h *handler) processMessage(ctx context.Context, msg *pkgTelegram.Message) {
	if msg.Text == "" {
		return
	}

	switch msg.Text {
	case "/start":
		if err := h.bot.SendMessage(msg.Chat.ID, welcomeMessage); err != nil {
			h.l.Warnf(ctx, "telegram handler: send welcome: %v", err)
		}
		return
	case "/help":
		if err := h.bot.SendMessageWithMode(msg.Chat.ID, helpMessage, "Markdown"); err != nil {
			h.l.Warnf(ctx, "telegram handler: send help: %v", err)
		}
		return
	}

	sessionID := strconv.FormatInt(msg.Chat.ID, 10)
	sc := model.Scope{
		SessionID: sessionID,
	}
	if msg.From != nil {
		sc.UserID = fmt.Sprintf("telegram_%d", msg.From.ID)
		sc.Username = msg.From.Username
	}

	result := h.router.Route(ctx, dispatch.Input{
		Text:    msg.Text,
		Scope:   sc,
		History: h.memory.History(sessionID),
	})

	h.memory.Append(sessionID, msg.Text, result.Content)

	if err := h.bot.SendMessage(msg.Chat.ID, result.Content); err != nil {
		h.l.Errorf(ctx, "telegram handler: send reply: %v", err)
	}
}
