package dispatch

import "skill-tracking-assistant/internal/model"

// ActionResult is the uniform outcome of routing one utterance. Every path
// through the dispatcher produces one; nothing propagates past Route.
type ActionResult struct {
	Success  bool           `json:"success"`
	Type     string         `json:"type"`
	Content  string         `json:"content"`
	Metadata map[string]any `json:"metadata,omitempty"`
}

// Result type discriminators.
const (
	TypeSkillLogged          = "skill_logged"
	TypeSkillQuery           = "skill_query"
	TypeSkillCreated         = "skill_created"
	TypeAwaitingConfirmation = "awaiting_confirmation"
	TypeCancelled            = "confirmation_cancelled"
	TypeChat                 = "chat"
	TypeWebSearch            = "web_search"
	TypeSkillNotFound        = "skill_not_found"
	TypeErrorFallback        = "error_fallback"
)

// Input is one utterance plus its session context.
type Input struct {
	Text    string
	Scope   model.Scope
	History []model.ConversationTurn
}
