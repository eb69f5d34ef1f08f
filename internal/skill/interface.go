package skill

import (
	"context"

	"skill-tracking-assistant/internal/model"
)

// UseCase defines the business logic interface for the skill domain.
type UseCase interface {
	// List returns all registered skills.
	List(ctx context.Context, sc model.Scope) ([]model.Skill, error)

	// Get returns one skill by ID.
	Get(ctx context.Context, sc model.Scope, id string) (model.Skill, error)

	// CreateFromProposal materializes a proposed skill, deriving a stable
	// slug ID from its name.
	CreateFromProposal(ctx context.Context, sc model.Scope, proposal model.ProposedSkill) (model.Skill, error)

	// Log records one data point against a skill and bumps its usage count.
	Log(ctx context.Context, sc model.Scope, input LogInput) (model.Entry, error)

	// DailyStats aggregates a skill's entries for the day the relative
	// reference resolves to ("today" when empty).
	DailyStats(ctx context.Context, sc model.Scope, input StatsInput) (StatsOutput, error)
}
