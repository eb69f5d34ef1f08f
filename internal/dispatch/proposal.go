package dispatch

import (
	"strings"

	"skill-tracking-assistant/internal/model"
)

// proposalRule pairs trigger keywords with a ready-made skill proposal for
// the deterministic log path. Rules are checked in order; first hit wins.
type proposalRule struct {
	keywords []string
	proposal model.ProposedSkill
}

var proposalRules = []proposalRule{
	{
		keywords: []string{"calorie", "kcal", "food", "ate", "lunch", "dinner", "breakfast", "snack"},
		proposal: model.ProposedSkill{
			Name:        "Calories",
			Type:        "measurement",
			Description: "Daily calorie intake",
			Unit:        "kcal",
			Triggers:    []string{"calories", "ate", "food"},
		},
	},
	{
		keywords: []string{"run", "ran", "km", "mile", "jog"},
		proposal: model.ProposedSkill{
			Name:        "Running",
			Type:        "measurement",
			Description: "Running distance",
			Unit:        "km",
			Triggers:    []string{"run", "ran", "jog"},
		},
	},
	{
		keywords: []string{"sleep", "slept"},
		proposal: model.ProposedSkill{
			Name:        "Sleep",
			Type:        "duration",
			Description: "Hours slept per night",
			Unit:        "hours",
			Triggers:    []string{"sleep", "slept"},
		},
	},
	{
		keywords: []string{"weight", "weigh", "kg", "lbs"},
		proposal: model.ProposedSkill{
			Name:        "Weight",
			Type:        "measurement",
			Description: "Body weight",
			Unit:        "kg",
			Triggers:    []string{"weight", "weigh"},
		},
	},
}

// synthesizeProposal infers a skill proposal for a log-intent utterance that
// matched no registered skill. Returns false when no rule applies.
func synthesizeProposal(text string) (model.ProposedSkill, bool) {
	lowered := strings.ToLower(text)
	for _, rule := range proposalRules {
		for _, kw := range rule.keywords {
			if strings.Contains(lowered, kw) {
				return rule.proposal, true
			}
		}
	}
	return model.ProposedSkill{}, false
}
