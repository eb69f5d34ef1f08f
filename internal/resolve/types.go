package resolve

import "skill-tracking-assistant/internal/model"

// Action enumerates the four resolvable actions.
type Action string

const (
	ActionUseSkill    Action = "use_skill"
	ActionCreateSkill Action = "create_skill"
	ActionWebSearch   Action = "web_search"
	ActionChat        Action = "chat"
)

// Meta carries the fields common to every decision variant.
type Meta struct {
	Confidence float64 // [0,1]
	Reasoning  string
}

// Decision is the resolved action for one input: exactly one of UseSkill,
// CreateSkill, WebSearch or Chat. The union is sealed so a type switch over
// the four variants is exhaustive.
type Decision interface {
	Action() Action
	Meta() Meta
	isDecision()
}

// UseSkill routes the input to an existing skill.
type UseSkill struct {
	SkillID     string
	SkillAction string // "log" | "query"
	Extracted   *model.ExtractedValue
	Confidence  float64
	Reasoning   string
}

func (d UseSkill) Action() Action { return ActionUseSkill }
func (d UseSkill) Meta() Meta     { return Meta{Confidence: d.Confidence, Reasoning: d.Reasoning} }
func (UseSkill) isDecision()      {}

// CreateSkill proposes tracking a new metric.
type CreateSkill struct {
	Proposed   model.ProposedSkill
	Confidence float64
	Reasoning  string
}

func (d CreateSkill) Action() Action { return ActionCreateSkill }
func (d CreateSkill) Meta() Meta     { return Meta{Confidence: d.Confidence, Reasoning: d.Reasoning} }
func (CreateSkill) isDecision()      {}

// WebSearch requests a web lookup.
type WebSearch struct {
	Query      string
	Confidence float64
	Reasoning  string
}

func (d WebSearch) Action() Action { return ActionWebSearch }
func (d WebSearch) Meta() Meta     { return Meta{Confidence: d.Confidence, Reasoning: d.Reasoning} }
func (WebSearch) isDecision()      {}

// Chat produces a conversational reply.
type Chat struct {
	SuggestedResponse string
	Confidence        float64
	Reasoning         string
}

func (d Chat) Action() Action { return ActionChat }
func (d Chat) Meta() Meta     { return Meta{Confidence: d.Confidence, Reasoning: d.Reasoning} }
func (Chat) isDecision()      {}

// Input is everything the resolver needs for one resolution.
type Input struct {
	Text    string
	Skills  []model.Skill
	History []model.ConversationTurn
}
