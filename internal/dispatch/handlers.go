package dispatch

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"skill-tracking-assistant/internal/model"
	"skill-tracking-assistant/internal/resolve"
	"skill-tracking-assistant/internal/skill"
)

// dispatchDecision executes one resolver decision. The union is sealed, so
// the type switch covers every variant.
func (d *Dispatcher) dispatchDecision(ctx context.Context, input Input, skills []model.Skill, decision resolve.Decision) ActionResult {
	switch dec := decision.(type) {
	case resolve.UseSkill:
		target, ok := findSkill(skills, dec.SkillID)
		if !ok {
			ids := skillIDs(skills)
			return ActionResult{
				Success:  false,
				Type:     TypeSkillNotFound,
				Content:  fmt.Sprintf("I don't have a skill %q. Available: %s.", dec.SkillID, strings.Join(ids, ", ")),
				Metadata: map[string]any{"available": ids},
			}
		}
		if dec.SkillAction == "query" {
			return d.handleQuery(ctx, input.Scope, target, input.Text)
		}
		return d.handleLog(ctx, input.Scope, target, input.Text, dec.Extracted)

	case resolve.CreateSkill:
		if strings.TrimSpace(dec.Proposed.Name) == "" {
			return ActionResult{Success: true, Type: TypeChat,
				Content: "Tell me a bit more about what you'd like to track and I'll set it up."}
		}
		return d.gateCreate(ctx, input.Scope, dec.Proposed, dec.Confidence, input.Text)

	case resolve.WebSearch:
		out, err := d.research.Search(ctx, input.Scope, dec.Query)
		if err != nil {
			d.l.Warnf(ctx, "dispatch: web search: %v", err)
			return d.errorFallback()
		}
		sources := make([]string, 0, len(out.Sources))
		for _, s := range out.Sources {
			sources = append(sources, s.URL)
		}
		return ActionResult{
			Success:  true,
			Type:     TypeWebSearch,
			Content:  out.Answer,
			Metadata: map[string]any{"sources": sources},
		}

	case resolve.Chat:
		content := dec.SuggestedResponse
		if content == "" {
			content = "I'm not sure what to do with that. You can log something or ask about your stats."
		}
		return ActionResult{Success: true, Type: TypeChat, Content: content}
	}

	return d.errorFallback()
}

// handleLog records one entry against a matched skill. extracted overrides
// the extractor when the resolver already parsed a value.
func (d *Dispatcher) handleLog(ctx context.Context, sc model.Scope, s model.Skill, text string, extracted *model.ExtractedValue) ActionResult {
	value := d.extractor.Extract(text)
	if extracted != nil && extracted.Amount > 0 {
		value = *extracted
	}

	if _, err := d.skills.Log(ctx, sc, skill.LogInput{
		SkillID: s.ID,
		Amount:  value.Amount,
		Unit:    value.Unit,
		Note:    text,
	}); err != nil {
		d.l.Errorf(ctx, "dispatch: log entry: %v", err)
		return d.errorFallback()
	}

	content := fmt.Sprintf("Logged %s %s for %s.", formatAmount(value.Amount), value.Unit, s.Name)
	if out, err := d.skills.DailyStats(ctx, sc, skill.StatsInput{SkillID: s.ID}); err == nil {
		content += fmt.Sprintf(" Today: %s %s", formatAmount(out.Stats.Sum), s.Unit)
		if s.DailyGoal > 0 {
			content += fmt.Sprintf(" of %s", formatAmount(s.DailyGoal))
		}
		content += "."
	}

	return ActionResult{
		Success: true,
		Type:    TypeSkillLogged,
		Content: content,
		Metadata: map[string]any{
			"skill_id": s.ID,
			"amount":   value.Amount,
			"unit":     value.Unit,
		},
	}
}

// handleQuery answers a stats question for a matched skill. "yesterday" in
// the utterance shifts the day window; anything else means today.
func (d *Dispatcher) handleQuery(ctx context.Context, sc model.Scope, s model.Skill, text string) ActionResult {
	day := "today"
	if strings.Contains(strings.ToLower(text), "yesterday") {
		day = "yesterday"
	}

	out, err := d.skills.DailyStats(ctx, sc, skill.StatsInput{SkillID: s.ID, Day: day})
	if err != nil {
		d.l.Errorf(ctx, "dispatch: daily stats: %v", err)
		return d.errorFallback()
	}

	var content string
	if out.Stats.Count == 0 {
		content = fmt.Sprintf("No %s entries for %s yet.", s.Name, day)
	} else {
		content = fmt.Sprintf("%s %s: %s %s across %d entries.",
			s.Name, day, formatAmount(out.Stats.Sum), s.Unit, out.Stats.Count)
		if s.DailyGoal > 0 {
			content += fmt.Sprintf(" Goal: %s %s.", formatAmount(s.DailyGoal), s.Unit)
		}
	}

	return ActionResult{
		Success: true,
		Type:    TypeSkillQuery,
		Content: content,
		Metadata: map[string]any{
			"skill_id": s.ID,
			"day":      day,
			"sum":      out.Stats.Sum,
			"count":    out.Stats.Count,
		},
	}
}

func findSkill(skills []model.Skill, id string) (model.Skill, bool) {
	for _, s := range skills {
		if s.ID == id {
			return s, true
		}
	}
	return model.Skill{}, false
}

func skillIDs(skills []model.Skill) []string {
	ids := make([]string, 0, len(skills))
	for _, s := range skills {
		ids = append(ids, s.ID)
	}
	return ids
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
