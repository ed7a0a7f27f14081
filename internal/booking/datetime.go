package booking

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// DefaultHour is the start hour used when the message names a day but no time.
const DefaultHour = 9

var (
	// "15/09" or "15/09/2026"
	dateRe = regexp.MustCompile(`\b(\d{1,2})/(\d{1,2})(?:/(\d{2,4}))?\b`)
	// "alle 15" or "alle 15:30"
	timeRe = regexp.MustCompile(`\balle\s+(\d{1,2})(?::(\d{2}))?\b`)
)

// weekdays is ordered so a message naming several weekday words always
// resolves to the same one (the earliest in the week, accented form first).
var weekdays = []struct {
	name string
	day  time.Weekday
}{
	{"lunedì", time.Monday},
	{"lunedi", time.Monday},
	{"martedì", time.Tuesday},
	{"martedi", time.Tuesday},
	{"mercoledì", time.Wednesday},
	{"mercoledi", time.Wednesday},
	{"giovedì", time.Thursday},
	{"giovedi", time.Thursday},
	{"venerdì", time.Friday},
	{"venerdi", time.Friday},
	{"sabato", time.Saturday},
	{"domenica", time.Sunday},
}

// ParseDateTime interprets a natural Italian date/time expression relative to
// now, in the given location. Supported day forms: oggi, domani, dopodomani,
// weekday names (next occurrence), and gg/mm[/aaaa]. The time comes from an
// "alle HH[:MM]" clause, defaulting to DefaultHour. It returns an error when
// the text names no recognizable day.
func ParseDateTime(text string, now time.Time, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}
	text = strings.ToLower(text)
	now = now.In(loc)

	day, ok := parseDay(text, now)
	if !ok {
		return time.Time{}, fmt.Errorf("no recognizable date in %q", text)
	}

	hour, minute := DefaultHour, 0
	if m := timeRe.FindStringSubmatch(text); m != nil {
		h, err := strconv.Atoi(m[1])
		if err != nil || h > 23 {
			return time.Time{}, fmt.Errorf("invalid hour in %q", text)
		}
		hour = h
		if m[2] != "" {
			mi, err := strconv.Atoi(m[2])
			if err != nil || mi > 59 {
				return time.Time{}, fmt.Errorf("invalid minutes in %q", text)
			}
			minute = mi
		}
	}

	return time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, loc), nil
}

func parseDay(text string, now time.Time) (time.Time, bool) {
	switch {
	case strings.Contains(text, "dopodomani"):
		return now.AddDate(0, 0, 2), true
	case strings.Contains(text, "domani"):
		return now.AddDate(0, 0, 1), true
	case strings.Contains(text, "oggi"):
		return now, true
	}

	for _, wd := range weekdays {
		if !strings.Contains(text, wd.name) {
			continue
		}
		// Next occurrence of the weekday; a bare weekday name never means today.
		days := (int(wd.day) - int(now.Weekday()) + 7) % 7
		if days == 0 {
			days = 7
		}
		return now.AddDate(0, 0, days), true
	}

	if m := dateRe.FindStringSubmatch(text); m != nil {
		day, _ := strconv.Atoi(m[1])
		month, _ := strconv.Atoi(m[2])
		if day < 1 || day > 31 || month < 1 || month > 12 {
			return time.Time{}, false
		}

		year := now.Year()
		if m[3] != "" {
			y, _ := strconv.Atoi(m[3])
			if y < 100 {
				y += 2000
			}
			year = y
		}

		candidate := time.Date(year, time.Month(month), day, 0, 0, 0, 0, now.Location())
		// A day/month without a year that already passed rolls to next year.
		// Compare against local midnight so today's own date never rolls.
		startOfToday := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
		if m[3] == "" && candidate.Before(startOfToday) {
			candidate = candidate.AddDate(1, 0, 0)
		}
		return candidate, true
	}

	return time.Time{}, false
}
