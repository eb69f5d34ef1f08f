package datemath

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Parser resolves relative day references ("today", "yesterday", "3 days
// ago", "last monday") to absolute times in a fixed timezone.
type Parser struct {
	location *time.Location
}

// NewParser creates a parser for the given IANA timezone string,
// e.g. "Asia/Ho_Chi_Minh".
func NewParser(timezone string) (*Parser, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Parser{location: loc}, nil
}

var (
	daysAgoPattern    = regexp.MustCompile(`^(\d+) days? ago$`)
	inDurationPattern = regexp.MustCompile(`^in (\d+) (day|days|week|weeks|month|months)$`)

	weekdays = map[string]time.Weekday{
		"monday":    time.Monday,
		"tuesday":   time.Tuesday,
		"wednesday": time.Wednesday,
		"thursday":  time.Thursday,
		"friday":    time.Friday,
		"saturday":  time.Saturday,
		"sunday":    time.Sunday,
	}
)

// Parse converts a relative day reference to midnight of that day, using
// baseTime as the reference point. Unrecognized input resolves to today.
func (p *Parser) Parse(relative string, baseTime time.Time) (time.Time, error) {
	relative = strings.ToLower(strings.TrimSpace(relative))

	switch relative {
	case "", "today":
		return p.StartOfDay(baseTime), nil
	case "yesterday":
		return p.StartOfDay(baseTime.AddDate(0, 0, -1)), nil
	case "tomorrow":
		return p.StartOfDay(baseTime.AddDate(0, 0, 1)), nil
	}

	if m := daysAgoPattern.FindStringSubmatch(relative); m != nil {
		n, _ := strconv.Atoi(m[1])
		return p.StartOfDay(baseTime.AddDate(0, 0, -n)), nil
	}

	if m := inDurationPattern.FindStringSubmatch(relative); m != nil {
		n, _ := strconv.Atoi(m[1])
		switch {
		case strings.HasPrefix(m[2], "day"):
			return p.StartOfDay(baseTime.AddDate(0, 0, n)), nil
		case strings.HasPrefix(m[2], "week"):
			return p.StartOfDay(baseTime.AddDate(0, 0, n*7)), nil
		default:
			return p.StartOfDay(baseTime.AddDate(0, n, 0)), nil
		}
	}

	if day, ok := strings.CutPrefix(relative, "last "); ok {
		return p.parseWeekday(day, baseTime, -1)
	}
	if day, ok := strings.CutPrefix(relative, "next "); ok {
		return p.parseWeekday(day, baseTime, +1)
	}

	return p.StartOfDay(baseTime), nil
}

// DayWindow returns the half-open interval [midnight, next midnight) of the
// day the relative reference resolves to.
func (p *Parser) DayWindow(relative string, baseTime time.Time) (time.Time, time.Time, error) {
	start, err := p.Parse(relative, baseTime)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return start, start.AddDate(0, 0, 1), nil
}

// parseWeekday resolves "last monday" (direction -1) or "next friday"
// (direction +1). The result is never the base day itself.
func (p *Parser) parseWeekday(day string, baseTime time.Time, direction int) (time.Time, error) {
	target, ok := weekdays[day]
	if !ok {
		return baseTime, fmt.Errorf("unknown weekday: %q", day)
	}

	delta := int(target-baseTime.In(p.location).Weekday()) * direction
	if delta <= 0 {
		delta += 7
	}
	return p.StartOfDay(baseTime.AddDate(0, 0, delta*direction)), nil
}

// StartOfDay returns midnight at the start of t's day in the parser's
// timezone.
func (p *Parser) StartOfDay(t time.Time) time.Time {
	t = t.In(p.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, p.location)
}
