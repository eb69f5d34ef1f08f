package model

import "time"

// Skill is a user-defined trackable metric (e.g. water intake, pushups).
type Skill struct {
	ID          string   `json:"id"`          // Stable slug, e.g. "water"
	Name        string   `json:"name"`        // Display name
	Type        string   `json:"type"`        // Coarse kind: counter, measurement, duration
	Description string   `json:"description"` // Short human description
	Unit        string   `json:"unit"`        // Canonical unit entries are stored in
	Triggers    []string `json:"triggers"`    // Trigger words for matching
	DailyGoal   float64  `json:"daily_goal"`  // Optional daily target, 0 = none
	UsageCount  int      `json:"usage_count"` // Number of entries ever logged
	CreatedAt   string   `json:"created_at"`  // RFC3339
}

// Entry is a single logged data point against a skill.
type Entry struct {
	ID        string  `json:"id"` // UUID
	SkillID   string  `json:"skill_id"`
	Amount    float64 `json:"amount"`
	Unit      string  `json:"unit"`
	Note      string  `json:"note,omitempty"`
	CreatedAt string  `json:"created_at"` // RFC3339
}

// DailyStats aggregates a skill's entries for one day.
type DailyStats struct {
	SkillID string  `json:"skill_id"`
	Sum     float64 `json:"sum"`
	Count   int     `json:"count"`
}

// ProposedSkill is a skill definition awaiting creation, either synthesized
// deterministically or proposed by the resolver.
type ProposedSkill struct {
	Name        string   `json:"name"`
	Type        string   `json:"type"`
	Description string   `json:"description"`
	Unit        string   `json:"unit,omitempty"`
	Triggers    []string `json:"triggers"`
	DailyGoal   float64  `json:"daily_goal,omitempty"` // Optional daily target, 0 = none
}

// ExtractedValue is a numeric quantity with a normalized unit parsed from
// free text. It is ephemeral and never persisted.
type ExtractedValue struct {
	Amount float64 `json:"amount"`
	Unit   string  `json:"unit"`
}

// PendingConfirmation is a short-lived record of an outstanding yes/no
// proposal. At most one exists per session; it expires 5 minutes after
// CreatedAt (enforced on read by the confirmation store).
type PendingConfirmation struct {
	SessionID     string        `json:"session_id"`
	Kind          string        `json:"kind"` // "create_skill"
	ProposedSkill ProposedSkill `json:"proposed_skill"`
	OriginalInput string        `json:"original_input"`
	CreatedAt     time.Time     `json:"created_at"`
}

// ConfirmationKindCreateSkill is the only confirmation kind currently issued.
const ConfirmationKindCreateSkill = "create_skill"

// ConversationTurn is one prior exchange fed into the resolver context.
type ConversationTurn struct {
	Role string `json:"role"` // "user" | "assistant"
	Text string `json:"text"`
}
