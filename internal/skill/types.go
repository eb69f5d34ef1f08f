package skill

import "skill-tracking-assistant/internal/model"

// LogInput is the input for recording one entry.
type LogInput struct {
	SkillID string
	Amount  float64
	Unit    string
	Note    string // Original user text, kept for audit
}

// StatsInput selects a skill and a day for aggregation.
type StatsInput struct {
	SkillID string
	Day     string // Relative reference: "", "today", "yesterday", "3 days ago"
}

// StatsOutput is the aggregation result plus the skill it belongs to.
type StatsOutput struct {
	Skill model.Skill
	Stats model.DailyStats
}
