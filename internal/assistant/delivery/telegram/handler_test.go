package telegram

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"skill-tracking-assistant/internal/dispatch"
)

type noopLogger struct{}

func (noopLogger) Debug(ctx context.Context, arg ...any)                    {}
func (noopLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (noopLogger) Info(ctx context.Context, arg ...any)                     {}
func (noopLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (noopLogger) Warn(ctx context.Context, arg ...any)                     {}
func (noopLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (noopLogger) Error(ctx context.Context, arg ...any)                    {}
func (noopLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (noopLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (noopLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (noopLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (noopLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (noopLogger) Panic(ctx context.Context, arg ...any)                    {}
func (noopLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

type fakeRouter struct {
	inputs chan dispatch.Input
	result dispatch.ActionResult
}

func (f *fakeRouter) Route(ctx context.Context, input dispatch.Input) dispatch.ActionResult {
	f.inputs <- input
	return f.result
}

type fakeSender struct {
	sent chan string
}

func (f *fakeSender) SendMessage(chatID int64, text string) error {
	f.sent <- text
	return nil
}

func (f *fakeSender) SendMessageWithMode(chatID int64, text string, parseMode string) error {
	f.sent <- text
	return nil
}

func setup(t *testing.T, result dispatch.ActionResult) (*gin.Engine, *fakeRouter, *fakeSender) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	router := &fakeRouter{inputs: make(chan dispatch.Input, 8), result: result}
	sender := &fakeSender{sent: make(chan string, 8)}
	h := New(noopLogger{}, router, sender)

	engine := gin.New()
	engine.POST("/webhook/telegram", h.HandleWebhook)
	return engine, router, sender
}

func post(t *testing.T, engine *gin.Engine, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/webhook/telegram", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func recv[T any](t *testing.T, ch chan T, what string) T {
	t.Helper()
	select {
	case v := <-ch:
		return v
	case <-time.After(2 * time.Second):
		t.Fatalf("timed out waiting for %s", what)
		panic("unreachable")
	}
}

const updateJSON = `{
	"update_id": 1,
	"message": {
		"message_id": 10,
		"from": {"id": 42, "username": "sam"},
		"chat": {"id": 99, "type": "private"},
		"text": "drank 2 glasses of water"
	}
}`

func TestHandleWebhook(t *testing.T) {
	t.Run("acks immediately and replies in background", func(t *testing.T) {
		engine, router, sender := setup(t, dispatch.ActionResult{
			Success: true, Type: dispatch.TypeSkillLogged, Content: "Logged 500 ml of water.",
		})

		w := post(t, engine, updateJSON)
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d", w.Code)
		}

		input := recv(t, router.inputs, "routed input")
		if input.Text != "drank 2 glasses of water" {
			t.Errorf("routed text = %q", input.Text)
		}
		if input.Scope.UserID != "telegram_42" || input.Scope.SessionID != "99" {
			t.Errorf("scope = %+v", input.Scope)
		}

		if reply := recv(t, sender.sent, "reply"); reply != "Logged 500 ml of water." {
			t.Errorf("reply = %q", reply)
		}
	})

	t.Run("history accumulates per session", func(t *testing.T) {
		engine, router, sender := setup(t, dispatch.ActionResult{
			Success: true, Type: dispatch.TypeChat, Content: "noted",
		})

		post(t, engine, updateJSON)
		first := recv(t, router.inputs, "first input")
		if len(first.History) != 0 {
			t.Errorf("first message should have empty history, got %d turns", len(first.History))
		}
		recv(t, sender.sent, "first reply")

		post(t, engine, updateJSON)
		second := recv(t, router.inputs, "second input")
		if len(second.History) != 2 {
			t.Fatalf("second message should see 2 turns, got %d", len(second.History))
		}
		if second.History[0].Role != "user" || second.History[1].Role != "assistant" {
			t.Errorf("unexpected history: %+v", second.History)
		}
		recv(t, sender.sent, "second reply")
	})

	t.Run("start command skips routing", func(t *testing.T) {
		engine, router, sender := setup(t, dispatch.ActionResult{})

		post(t, engine, `{"update_id":2,"message":{"chat":{"id":99,"type":"private"},"text":"/start"}}`)

		reply := recv(t, sender.sent, "welcome")
		if reply == "" {
			t.Error("expected a welcome message")
		}
		select {
		case <-router.inputs:
			t.Error("commands must not be routed")
		case <-time.After(100 * time.Millisecond):
		}
	})

	t.Run("non-message update ignored", func(t *testing.T) {
		engine, router, _ := setup(t, dispatch.ActionResult{})

		w := post(t, engine, `{"update_id":3}`)
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d", w.Code)
		}
		select {
		case <-router.inputs:
			t.Error("nothing should be routed")
		case <-time.After(100 * time.Millisecond):
		}
	})

	t.Run("malformed body rejected", func(t *testing.T) {
		engine, _, _ := setup(t, dispatch.ActionResult{})

		w := post(t, engine, `{not json`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, want 400", w.Code)
		}
	})
}
