package shift

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Assignment is one shift window assignment. The effective assignment for a
// date is the latest one with AssignedDate on or before that date.
type Assignment struct {
	ID           string
	EmployeeID   string
	StartTime    string
	EndTime      string
	AssignedDate time.Time
	CreatedAt    time.Time
}

var wallClockRegex = regexp.MustCompile(`^(\d{1,2}):(\d{2})(?::(\d{2}))?$`)

// ParseWallClock parses "HH:MM" (optionally "HH:MM:SS") into minutes since
// midnight. The seconds component, when present, is validated but ignored.
func ParseWallClock(s string) (int, bool) {
	m := wallClockRegex.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return 0, false
	}

	hour, _ := strconv.Atoi(m[1])
	minute, _ := strconv.Atoi(m[2])
	if hour > 23 || minute > 59 {
		return 0, false
	}
	if m[3] != "" {
		if sec, _ := strconv.Atoi(m[3]); sec > 59 {
			return 0, false
		}
	}

	return hour*60 + minute, true
}

// DurationSeconds returns the assigned shift length in seconds. A window
// ending before it starts wraps past midnight. Returns ok=false when either
// side is malformed or the window collapses to zero, which downstream treats
// as "unknown duration" rather than an error.
func (a Assignment) DurationSeconds() (int64, bool) {
	start, ok := ParseWallClock(a.StartTime)
	if !ok {
		return 0, false
	}
	end, ok := ParseWallClock(a.EndTime)
	if !ok {
		return 0, false
	}

	minutes := end - start
	if minutes < 0 {
		minutes += 24 * 60
	}
	if minutes <= 0 {
		return 0, false
	}

	return int64(minutes) * 60, true
}

// StartOnDate anchors the assigned start time on the given calendar day.
func (a Assignment) StartOnDate(date time.Time) (time.Time, bool) {
	start, ok := ParseWallClock(a.StartTime)
	if !ok {
		return time.Time{}, false
	}
	return time.Date(date.Year(), date.Month(), date.Day(), start/60, start%60, 0, 0, date.Location()), true
}
