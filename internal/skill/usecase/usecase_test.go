package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"skill-tracking-assistant/internal/model"
	"skill-tracking-assistant/internal/skill"
	"skill-tracking-assistant/internal/skill/repository"
	"skill-tracking-assistant/pkg/datemath"
)

type noopLogger struct{}

func (noopLogger) Debug(ctx context.Context, arg ...any)                    {}
func (noopLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (noopLogger) Info(ctx context.Context, arg ...any)                     {}
func (noopLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (noopLogger) Warn(ctx context.Context, arg ...any)                     {}
func (noopLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (noopLogger) Error(ctx context.Context, arg ...any)                    {}
func (noopLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (noopLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (noopLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (noopLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (noopLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (noopLogger) Panic(ctx context.Context, arg ...any)                    {}
func (noopLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

type fakeRepo struct {
	skills  map[string]model.Skill
	entries []model.Entry
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{skills: make(map[string]model.Skill)}
}

func (r *fakeRepo) ListSkills(ctx context.Context) ([]model.Skill, error) {
	out := make([]model.Skill, 0, len(r.skills))
	for _, s := range r.skills {
		out = append(out, s)
	}
	return out, nil
}

func (r *fakeRepo) GetSkill(ctx context.Context, id string) (model.Skill, error) {
	s, ok := r.skills[id]
	if !ok {
		return model.Skill{}, skill.ErrSkillNotFound
	}
	return s, nil
}

func (r *fakeRepo) CreateSkill(ctx context.Context, s model.Skill) (model.Skill, error) {
	if _, ok := r.skills[s.ID]; ok {
		return model.Skill{}, skill.ErrSkillExists
	}
	r.skills[s.ID] = s
	return s, nil
}

func (r *fakeRepo) AddEntry(ctx context.Context, e model.Entry) (model.Entry, error) {
	s, ok := r.skills[e.SkillID]
	if !ok {
		return model.Entry{}, skill.ErrSkillNotFound
	}
	s.UsageCount++
	r.skills[e.SkillID] = s
	r.entries = append(r.entries, e)
	return e, nil
}

func (r *fakeRepo) ListEntries(ctx context.Context, opt repository.ListEntriesOptions) ([]model.Entry, error) {
	var out []model.Entry
	for _, e := range r.entries {
		if opt.SkillID != "" && e.SkillID != opt.SkillID {
			continue
		}
		ts, err := time.Parse(time.RFC3339, e.CreatedAt)
		if err != nil {
			continue
		}
		if !opt.From.IsZero() && ts.Before(opt.From) {
			continue
		}
		if !opt.To.IsZero() && !ts.Before(opt.To) {
			continue
		}
		out = append(out, e)
	}
	return out, nil
}

func newUseCase(t *testing.T, repo repository.Repository) *implUseCase {
	t.Helper()
	dm, err := datemath.NewParser("UTC")
	if err != nil {
		t.Fatalf("datemath: %v", err)
	}
	return New(noopLogger{}, repo, dm)
}

func TestCreateFromProposal(t *testing.T) {
	ctx := context.Background()
	sc := model.Scope{UserID: "u1"}

	t.Run("derives slug id and defaults unit", func(t *testing.T) {
		uc := newUseCase(t, newFakeRepo())

		created, err := uc.CreateFromProposal(ctx, sc, model.ProposedSkill{
			Name: "Morning Run!",
			Type: "counter",
		})
		if err != nil {
			t.Fatalf("create: %v", err)
		}
		if created.ID != "morning_run" {
			t.Errorf("id = %q, want morning_run", created.ID)
		}
		if created.Unit != "count" {
			t.Errorf("unit = %q, want count", created.Unit)
		}
		if created.CreatedAt == "" {
			t.Error("created_at not set")
		}
	})

	t.Run("daily goal carried onto the skill", func(t *testing.T) {
		uc := newUseCase(t, newFakeRepo())

		created, err := uc.CreateFromProposal(ctx, sc, model.ProposedSkill{
			Name:      "Water Intake",
			Type:      "measurement",
			Unit:      "ml",
			DailyGoal: 2000,
		})
		if err != nil {
			t.Fatalf("create: %v", err)
		}
		if created.DailyGoal != 2000 {
			t.Errorf("daily goal = %v, want 2000", created.DailyGoal)
		}
	})

	t.Run("empty name rejected", func(t *testing.T) {
		uc := newUseCase(t, newFakeRepo())
		_, err := uc.CreateFromProposal(ctx, sc, model.ProposedSkill{Name: "  "})
		if !errors.Is(err, skill.ErrEmptyName) {
			t.Errorf("expected ErrEmptyName, got %v", err)
		}
	})

	t.Run("duplicate surfaces ErrSkillExists", func(t *testing.T) {
		uc := newUseCase(t, newFakeRepo())
		proposal := model.ProposedSkill{Name: "Reading", Unit: "minutes"}
		if _, err := uc.CreateFromProposal(ctx, sc, proposal); err != nil {
			t.Fatalf("first create: %v", err)
		}
		if _, err := uc.CreateFromProposal(ctx, sc, proposal); !errors.Is(err, skill.ErrSkillExists) {
			t.Errorf("expected ErrSkillExists, got %v", err)
		}
	})
}

func TestLog(t *testing.T) {
	ctx := context.Background()
	sc := model.Scope{UserID: "u1"}
	repo := newFakeRepo()
	repo.skills["water"] = model.Skill{ID: "water", Unit: "ml"}

	uc := newUseCase(t, repo)

	e, err := uc.Log(ctx, sc, skill.LogInput{SkillID: "water", Amount: 500, Unit: "ml", Note: "drank 2 glasses"})
	if err != nil {
		t.Fatalf("log: %v", err)
	}
	if e.ID == "" {
		t.Error("entry id not assigned")
	}
	if repo.skills["water"].UsageCount != 1 {
		t.Errorf("usage count = %d, want 1", repo.skills["water"].UsageCount)
	}

	t.Run("unknown skill", func(t *testing.T) {
		_, err := uc.Log(ctx, sc, skill.LogInput{SkillID: "absent", Amount: 1})
		if !errors.Is(err, skill.ErrSkillNotFound) {
			t.Errorf("expected ErrSkillNotFound, got %v", err)
		}
	})
}

func TestDailyStats(t *testing.T) {
	ctx := context.Background()
	sc := model.Scope{UserID: "u1"}
	repo := newFakeRepo()
	repo.skills["water"] = model.Skill{ID: "water", Unit: "ml", DailyGoal: 2000}

	uc := newUseCase(t, repo)
	now := time.Date(2025, 6, 11, 15, 0, 0, 0, time.UTC)
	uc.clock = func() time.Time { return now }

	add := func(ts time.Time, amount float64) {
		repo.entries = append(repo.entries, model.Entry{
			SkillID:   "water",
			Amount:    amount,
			Unit:      "ml",
			CreatedAt: ts.Format(time.RFC3339),
		})
	}
	// Two entries today, two yesterday.
	add(now.Add(-2*time.Hour), 500)
	add(now.Add(-4*time.Hour), 250)
	add(now.AddDate(0, 0, -1), 1000)
	add(now.AddDate(0, 0, -1).Add(-time.Hour), 750)

	t.Run("today", func(t *testing.T) {
		out, err := uc.DailyStats(ctx, sc, skill.StatsInput{SkillID: "water", Day: "today"})
		if err != nil {
			t.Fatalf("stats: %v", err)
		}
		if out.Stats.Sum != 750 || out.Stats.Count != 2 {
			t.Errorf("got sum=%v count=%d, want 750/2", out.Stats.Sum, out.Stats.Count)
		}
		if out.Skill.DailyGoal != 2000 {
			t.Errorf("skill not attached: %+v", out.Skill)
		}
	})

	t.Run("yesterday", func(t *testing.T) {
		out, err := uc.DailyStats(ctx, sc, skill.StatsInput{SkillID: "water", Day: "yesterday"})
		if err != nil {
			t.Fatalf("stats: %v", err)
		}
		if out.Stats.Sum != 1750 || out.Stats.Count != 2 {
			t.Errorf("got sum=%v count=%d, want 1750/2", out.Stats.Sum, out.Stats.Count)
		}
	})

	t.Run("empty day means today", func(t *testing.T) {
		out, err := uc.DailyStats(ctx, sc, skill.StatsInput{SkillID: "water"})
		if err != nil {
			t.Fatalf("stats: %v", err)
		}
		if out.Stats.Sum != 750 {
			t.Errorf("sum = %v, want 750", out.Stats.Sum)
		}
	})

	t.Run("unknown skill", func(t *testing.T) {
		_, err := uc.DailyStats(ctx, sc, skill.StatsInput{SkillID: "absent"})
		if !errors.Is(err, skill.ErrSkillNotFound) {
			t.Errorf("expected ErrSkillNotFound, got %v", err)
		}
	})
}

func TestSlugify(t *testing.T) {
	cases := []struct{ in, want string }{
		{"Water Intake", "water_intake"},
		{"Morning Run!", "morning_run"},
		{"  Push-Ups  ", "push_ups"},
		{"Caffeine (mg)", "caffeine_mg"},
	}
	for _, tc := range cases {
		if got := slugify(tc.in); got != tc.want {
			t.Errorf("slugify(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
