package telegram

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"skill-tracking-assistant/internal/model"
)

const (
	memorySessions = 1000
	memoryTTL      = 30 * time.Minute
	memoryTurns    = 10
)

// sessionMemory keeps recent conversation turns per chat so the resolver
// sees context across messages. Idle sessions age out via the LRU TTL.
type sessionMemory struct {
	sessions *expirable.LRU[string, []model.ConversationTurn]
}

func newSessionMemory() *sessionMemory {
	return &sessionMemory{
		sessions: expirable.NewLRU[string, []model.ConversationTurn](memorySessions, nil, memoryTTL),
	}
}

func (m *sessionMemory) History(sessionID string) []model.ConversationTurn {
	turns, _ := m.sessions.Get(sessionID)
	return turns
}

// Append records one exchange and trims the window to memoryTurns.
func (m *sessionMemory) Append(sessionID, userText, assistantText string) {
	turns, _ := m.sessions.Get(sessionID)
	turns = append(turns,
		model.ConversationTurn{Role: "user", Text: userText},
		model.ConversationTurn{Role: "assistant", Text: assistantText},
	)
	if len(turns) > memoryTurns {
		turns = turns[len(turns)-memoryTurns:]
	}
	m.sessions.Add(sessionID, turns)
}
