package reminder

import (
	"context"
	"fmt"
	"time"

	"skill-tracking-assistant/internal/model"
	"skill-tracking-assistant/pkg/gcalendar"
	pkgLog "skill-tracking-assistant/pkg/log"
)

const reminderDuration = 15 * time.Minute

// Calendar is the event-creation surface, satisfied by *gcalendar.Client.
type Calendar interface {
	CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error)
}

// Config tunes reminder scheduling.
type Config struct {
	CalendarID string // Empty means the primary calendar
	Timezone   string // IANA name, e.g. "Asia/Ho_Chi_Minh"
	Hour       int    // Local hour of day for the daily reminder
}

// Scheduler creates a recurring calendar reminder when a skill with a daily
// goal is registered. Calendar failures are logged and absorbed; a missing
// reminder never blocks skill creation.
type Scheduler struct {
	l        pkgLog.Logger
	calendar Calendar
	cfg      Config
	clock    func() time.Time
}

// New creates a Scheduler. calendar may be nil when no credentials are
// configured; scheduling is then a logged no-op.
func New(l pkgLog.Logger, calendar Calendar, cfg Config) *Scheduler {
	if cfg.Hour <= 0 || cfg.Hour > 23 {
		cfg.Hour = 20
	}
	return &Scheduler{l: l, calendar: calendar, cfg: cfg, clock: time.Now}
}

// ScheduleDailyGoal creates a daily recurring event reminding the user to
// log the skill.
func (s *Scheduler) ScheduleDailyGoal(ctx context.Context, sc model.Scope, sk model.Skill) {
	if s.calendar == nil {
		s.l.Debugf(ctx, "reminder: calendar not configured, skipping %s", sk.ID)
		return
	}

	loc, err := time.LoadLocation(s.cfg.Timezone)
	if err != nil {
		loc = time.UTC
	}

	now := s.clock().In(loc)
	start := time.Date(now.Year(), now.Month(), now.Day(), s.cfg.Hour, 0, 0, 0, loc)
	if !start.After(now) {
		start = start.AddDate(0, 0, 1)
	}

	event, err := s.calendar.CreateEvent(ctx, gcalendar.CreateEventRequest{
		CalendarID:  s.cfg.CalendarID,
		Summary:     fmt.Sprintf("Log your %s", sk.Name),
		Description: fmt.Sprintf("Daily goal: %g %s", sk.DailyGoal, sk.Unit),
		StartTime:   start,
		EndTime:     start.Add(reminderDuration),
		Timezone:    s.cfg.Timezone,
		Recurrence:  []string{"RRULE:FREQ=DAILY"},
	})
	if err != nil {
		s.l.Warnf(ctx, "reminder: schedule %s: %v", sk.ID, err)
		return
	}

	s.l.Infof(ctx, "reminder: scheduled daily event %s for %s", event.ID, sk.ID)
}
