package resolve

import (
	"fmt"
	"sort"
	"strings"

	"skill-tracking-assistant/internal/model"
)

const (
	// MaxSkillsInContext caps the skill list rendered into the prompt.
	MaxSkillsInContext = 15

	// MaxHistoryTurns caps the conversation turns rendered into the prompt.
	MaxHistoryTurns = 5
)

// DecisionSystemPrompt constrains the completion service to JSON-only
// structured decisions over the four actions.
const DecisionSystemPrompt = `You are the decision layer of a personal tracking assistant.
The user tracks personal metrics called skills (water intake, calories, pushups, sleep, ...).

Given the user's message, decide exactly one action:
- "use_skill": the message logs data against, or asks about, a registered skill listed below
- "create_skill": the message tracks something no registered skill covers; propose a new skill
- "web_search": the message needs factual information from the web
- "chat": anything else; reply conversationally

Respond with ONLY a single JSON object, no markdown, no code fences, no prose:
{
  "action": "use_skill|create_skill|web_search|chat",
  "confidence": 0.0-1.0,
  "reasoning": "one short sentence",
  "skill_id": "(use_skill only) id from the list below",
  "skill_action": "(use_skill only) log or query",
  "extracted_data": {"amount": 0, "unit": ""},
  "proposed_skill": {"name": "", "type": "counter|measurement|duration", "description": "", "unit": "", "triggers": [], "daily_goal": 0},
  "search_query": "(web_search only)",
  "suggested_response": "(chat only)"
}
Omit fields that do not apply to the chosen action.
For create_skill, set daily_goal only when the user states a daily target (e.g. "I want to drink 2000ml a day"); otherwise use 0.`

// buildUserPrompt renders the bounded context: at most MaxSkillsInContext
// skills ordered by descending usage count (declaration order among
// untracked ones) and the last MaxHistoryTurns conversation turns.
func buildUserPrompt(input Input) string {
	var sb strings.Builder

	skills := topSkills(input.Skills, MaxSkillsInContext)
	if len(skills) == 0 {
		sb.WriteString("Registered skills: none yet.\n")
	} else {
		sb.WriteString("Registered skills:\n")
		for _, s := range skills {
			sb.WriteString(fmt.Sprintf("- id=%s unit=%s description=%q triggers=%s\n",
				s.ID, s.Unit, s.Description, strings.Join(s.Triggers, ",")))
		}
	}

	if turns := lastTurns(input.History, MaxHistoryTurns); len(turns) > 0 {
		sb.WriteString("\nRecent conversation:\n")
		for _, turn := range turns {
			sb.WriteString(fmt.Sprintf("%s: %s\n", turn.Role, turn.Text))
		}
	}

	sb.WriteString("\nUser message: ")
	sb.WriteString(input.Text)

	return sb.String()
}

// topSkills returns up to limit skills sorted by descending usage count.
// The sort is stable so untracked skills keep their declaration order.
func topSkills(skills []model.Skill, limit int) []model.Skill {
	sorted := make([]model.Skill, len(skills))
	copy(sorted, skills)

	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].UsageCount > sorted[j].UsageCount
	})

	if len(sorted) > limit {
		sorted = sorted[:limit]
	}
	return sorted
}

func lastTurns(history []model.ConversationTurn, limit int) []model.ConversationTurn {
	if len(history) <= limit {
		return history
	}
	return history[len(history)-limit:]
}
