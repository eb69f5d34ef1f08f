package resolve

import (
	"encoding/json"
	"fmt"
	"strings"

	"skill-tracking-assistant/internal/model"
)

// FallbackReasoning is the reasoning attached to the hard-floor chat
// decision returned when the completion output is unusable.
const FallbackReasoning = "fallback due to analysis error"

// FallbackConfidence is deliberately above zero so downstream confidence
// thresholds keep behaving predictably on resolver failure.
const FallbackConfidence = 0.3

const defaultConfidence = 0.5

// rawDecision is the wire shape the completion service is asked to emit.
// Unknown fields are dropped by the decoder.
type rawDecision struct {
	Action            string            `json:"action"`
	Confidence        *float64          `json:"confidence"`
	Reasoning         string            `json:"reasoning"`
	SkillID           string            `json:"skill_id"`
	SkillAction       string            `json:"skill_action"`
	ExtractedData     *rawExtracted     `json:"extracted_data"`
	ProposedSkill     *rawProposedSkill `json:"proposed_skill"`
	SearchQuery       string            `json:"search_query"`
	SuggestedResponse string            `json:"suggested_response"`
}

type rawExtracted struct {
	Amount float64 `json:"amount"`
	Unit   string  `json:"unit"`
}

type rawProposedSkill struct {
	Name        string   `json:"name"`
	Type        string   `json:"type"`
	Description string   `json:"description"`
	Unit        string   `json:"unit"`
	Triggers    []string `json:"triggers"`
	DailyGoal   float64  `json:"daily_goal"`
}

// parseDecision runs the ordered recovery chain over the completion output:
// strict JSON parse first, then extraction of the first balanced {...}
// substring. Each stage is pure; an error means both stages failed.
func parseDecision(text string) (rawDecision, error) {
	raw, err := parseStrict(text)
	if err == nil {
		return raw, nil
	}

	if obj, ok := extractBalancedObject(text); ok {
		if raw, err2 := parseStrict(obj); err2 == nil {
			return raw, nil
		}
	}

	return rawDecision{}, fmt.Errorf("resolve: unparseable decision output: %w", err)
}

func parseStrict(text string) (rawDecision, error) {
	var raw rawDecision
	if err := json.Unmarshal([]byte(strings.TrimSpace(text)), &raw); err != nil {
		return rawDecision{}, err
	}
	return raw, nil
}

// extractBalancedObject returns the first balanced top-level {...} substring,
// tracking string literals so braces inside JSON strings do not miscount.
func extractBalancedObject(text string) (string, bool) {
	start := strings.IndexByte(text, '{')
	if start == -1 {
		return "", false
	}

	depth := 0
	inString := false
	escaped := false

	for i := start; i < len(text); i++ {
		c := text[i]

		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}

		switch c {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return text[start : i+1], true
			}
		}
	}

	return "", false
}

// normalize converts a parsed raw decision into the tagged union, applying
// defaults: invalid or absent action becomes chat, absent confidence becomes
// 0.5, and confidence is clamped to [0,1].
func normalize(raw rawDecision) Decision {
	confidence := defaultConfidence
	if raw.Confidence != nil {
		confidence = clamp01(*raw.Confidence)
	}

	switch Action(strings.ToLower(strings.TrimSpace(raw.Action))) {
	case ActionUseSkill:
		d := UseSkill{
			SkillID:     raw.SkillID,
			SkillAction: raw.SkillAction,
			Confidence:  confidence,
			Reasoning:   raw.Reasoning,
		}
		if raw.ExtractedData != nil {
			d.Extracted = &model.ExtractedValue{
				Amount: raw.ExtractedData.Amount,
				Unit:   raw.ExtractedData.Unit,
			}
		}
		return d

	case ActionCreateSkill:
		d := CreateSkill{Confidence: confidence, Reasoning: raw.Reasoning}
		if raw.ProposedSkill != nil {
			d.Proposed = model.ProposedSkill{
				Name:        raw.ProposedSkill.Name,
				Type:        raw.ProposedSkill.Type,
				Description: raw.ProposedSkill.Description,
				Unit:        raw.ProposedSkill.Unit,
				Triggers:    raw.ProposedSkill.Triggers,
				DailyGoal:   raw.ProposedSkill.DailyGoal,
			}
		}
		return d

	case ActionWebSearch:
		return WebSearch{Query: raw.SearchQuery, Confidence: confidence, Reasoning: raw.Reasoning}

	default:
		return Chat{SuggestedResponse: raw.SuggestedResponse, Confidence: confidence, Reasoning: raw.Reasoning}
	}
}

// fallbackDecision is the fixed decision for total resolver failure.
func fallbackDecision() Chat {
	return Chat{Confidence: FallbackConfidence, Reasoning: FallbackReasoning}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
