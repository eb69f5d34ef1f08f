package repository

import (
	"context"
	"time"

	"skill-tracking-assistant/internal/model"
)

// Repository is the interface for skill and entry persistence.
type Repository interface {
	ListSkills(ctx context.Context) ([]model.Skill, error)
	GetSkill(ctx context.Context, id string) (model.Skill, error)
	CreateSkill(ctx context.Context, s model.Skill) (model.Skill, error)

	// AddEntry appends the entry and increments the owning skill's usage
	// count atomically.
	AddEntry(ctx context.Context, e model.Entry) (model.Entry, error)
	ListEntries(ctx context.Context, opt ListEntriesOptions) ([]model.Entry, error)
}

// ListEntriesOptions filters entries by skill and time window.
type ListEntriesOptions struct {
	SkillID string
	From    time.Time // Inclusive; zero value means unbounded
	To      time.Time // Exclusive; zero value means unbounded
}
