package reminder

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"skill-tracking-assistant/internal/model"
	"skill-tracking-assistant/pkg/gcalendar"
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

type fakeCalendar struct {
	req *gcalendar.CreateEventRequest
	err error
}

func (f *fakeCalendar) CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error) {
	f.req = &req
	if f.err != nil {
		return nil, f.err
	}
	return &gcalendar.Event{ID: "event-1"}, nil
}

func goalSkill() model.Skill {
	return model.Skill{ID: "water", Name: "Water Intake", Unit: "ml", DailyGoal: 2000}
}

func TestScheduleDailyGoal(t *testing.T) {
	ctx := context.Background()
	sc := model.Scope{UserID: "u1"}

	t.Run("creates a daily recurring event", func(t *testing.T) {
		cal := &fakeCalendar{}
		s := New(noopLogger{}, cal, Config{Timezone: "UTC", Hour: 20})
		s.clock = func() time.Time { return time.Date(2025, 6, 11, 9, 0, 0, 0, time.UTC) }

		s.ScheduleDailyGoal(ctx, sc, goalSkill())

		if cal.req == nil {
			t.Fatal("no event created")
		}
		if !strings.Contains(cal.req.Summary, "Water Intake") {
			t.Errorf("summary = %q", cal.req.Summary)
		}
		if len(cal.req.Recurrence) != 1 || cal.req.Recurrence[0] != "RRULE:FREQ=DAILY" {
			t.Errorf("recurrence = %v", cal.req.Recurrence)
		}
		if cal.req.StartTime.Hour() != 20 || cal.req.StartTime.Day() != 11 {
			t.Errorf("start = %v, want today 20:00", cal.req.StartTime)
		}
	})

	t.Run("rolls to tomorrow when the hour has passed", func(t *testing.T) {
		cal := &fakeCalendar{}
		s := New(noopLogger{}, cal, Config{Timezone: "UTC", Hour: 20})
		s.clock = func() time.Time { return time.Date(2025, 6, 11, 21, 0, 0, 0, time.UTC) }

		s.ScheduleDailyGoal(ctx, sc, goalSkill())

		if cal.req == nil {
			t.Fatal("no event created")
		}
		if cal.req.StartTime.Day() != 12 {
			t.Errorf("start = %v, want tomorrow", cal.req.StartTime)
		}
	})

	t.Run("nil calendar is a no-op", func(t *testing.T) {
		s := New(noopLogger{}, nil, Config{})
		s.ScheduleDailyGoal(ctx, sc, goalSkill())
	})

	t.Run("calendar failure is absorbed", func(t *testing.T) {
		cal := &fakeCalendar{err: errors.New("quota exceeded")}
		s := New(noopLogger{}, cal, Config{Timezone: "UTC"})
		s.ScheduleDailyGoal(ctx, sc, goalSkill())
	})
}
