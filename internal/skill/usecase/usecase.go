package usecase

import (
	"context"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	"skill-tracking-assistant/internal/model"
	"skill-tracking-assistant/internal/skill"
	"skill-tracking-assistant/internal/skill/repository"
)

func (uc *implUseCase) List(ctx context.Context, sc model.Scope) ([]model.Skill, error) {
	return uc.repo.ListSkills(ctx)
}

func (uc *implUseCase) Get(ctx context.Context, sc model.Scope, id string) (model.Skill, error) {
	return uc.repo.GetSkill(ctx, id)
}

func (uc *implUseCase) CreateFromProposal(ctx context.Context, sc model.Scope, proposal model.ProposedSkill) (model.Skill, error) {
	name := strings.TrimSpace(proposal.Name)
	if name == "" {
		return model.Skill{}, skill.ErrEmptyName
	}

	unit := proposal.Unit
	if unit == "" {
		unit = "count"
	}

	s := model.Skill{
		ID:          slugify(name),
		Name:        name,
		Type:        proposal.Type,
		Description: proposal.Description,
		Unit:        unit,
		Triggers:    proposal.Triggers,
		DailyGoal:   proposal.DailyGoal,
		CreatedAt:   uc.clock().Format(time.RFC3339),
	}

	created, err := uc.repo.CreateSkill(ctx, s)
	if err != nil {
		uc.l.Warnf(ctx, "skill.CreateFromProposal: %v", err)
		return model.Skill{}, err
	}

	uc.l.Infof(ctx, "skill.CreateFromProposal: created %s (unit=%s) for user %s", created.ID, created.Unit, sc.UserID)
	return created, nil
}

func (uc *implUseCase) Log(ctx context.Context, sc model.Scope, input skill.LogInput) (model.Entry, error) {
	e := model.Entry{
		ID:        uuid.NewString(),
		SkillID:   input.SkillID,
		Amount:    input.Amount,
		Unit:      input.Unit,
		Note:      input.Note,
		CreatedAt: uc.clock().Format(time.RFC3339),
	}

	added, err := uc.repo.AddEntry(ctx, e)
	if err != nil {
		uc.l.Warnf(ctx, "skill.Log: %v", err)
		return model.Entry{}, err
	}

	uc.l.Infof(ctx, "skill.Log: %s %.1f %s for user %s", added.SkillID, added.Amount, added.Unit, sc.UserID)
	return added, nil
}

func (uc *implUseCase) DailyStats(ctx context.Context, sc model.Scope, input skill.StatsInput) (skill.StatsOutput, error) {
	s, err := uc.repo.GetSkill(ctx, input.SkillID)
	if err != nil {
		return skill.StatsOutput{}, err
	}

	from, to, err := uc.dateMath.DayWindow(input.Day, uc.clock())
	if err != nil {
		return skill.StatsOutput{}, err
	}

	entries, err := uc.repo.ListEntries(ctx, repository.ListEntriesOptions{
		SkillID: input.SkillID,
		From:    from,
		To:      to,
	})
	if err != nil {
		return skill.StatsOutput{}, err
	}

	stats := model.DailyStats{SkillID: input.SkillID}
	for _, e := range entries {
		stats.Sum += e.Amount
		stats.Count++
	}
	return skill.StatsOutput{Skill: s, Stats: stats}, nil
}

var slugPattern = regexp.MustCompile(`[^a-z0-9]+`)

// slugify derives a stable skill ID from a display name:
// "Morning Run!" -> "morning_run".
func slugify(name string) string {
	slug := slugPattern.ReplaceAllString(strings.ToLower(name), "_")
	return strings.Trim(slug, "_")
}
