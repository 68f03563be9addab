package calendar

import (
	"errors"
	"strings"
	"time"
)

const DayKeyLayout = "2006-01-02"

var ErrInvalidDayKey = errors.New("invalid calendar date")

// timestamp layouts accepted when a raw date value carries a time component
var timestampLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04:05Z07:00",
}

// DayKey is a timezone-naive calendar date in YYYY-MM-DD form.
// Lexical order of valid keys equals chronological order.
type DayKey string

func ParseDayKey(s string) (DayKey, error) {
	s = strings.TrimSpace(s)
	t, err := time.Parse(DayKeyLayout, s)
	if err != nil {
		return "", ErrInvalidDayKey
	}
	return DayKey(t.Format(DayKeyLayout)), nil
}

// DayKeyOf passes through values already shaped as a calendar date and
// otherwise truncates a timestamp to its calendar date in loc.
func DayKeyOf(raw string, loc *time.Location) (DayKey, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", false
	}
	if k, err := ParseDayKey(raw); err == nil {
		return k, true
	}
	if loc == nil {
		loc = time.Local
	}
	for _, layout := range timestampLayouts {
		t, err := time.ParseInLocation(layout, raw, loc)
		if err == nil {
			return DayKeyFromTime(t.In(loc)), true
		}
	}
	return "", false
}

// DayKeyFromTime uses the calendar fields of t in its own location.
func DayKeyFromTime(t time.Time) DayKey {
	return DayKey(t.Format(DayKeyLayout))
}

func (k DayKey) String() string { return string(k) }

func (k DayKey) IsValid() bool {
	_, err := time.Parse(DayKeyLayout, string(k))
	return err == nil
}

func (k DayKey) Compare(other DayKey) int {
	return strings.Compare(string(k), string(other))
}

func (k DayKey) Before(other DayKey) bool { return k.Compare(other) < 0 }
func (k DayKey) After(other DayKey) bool  { return k.Compare(other) > 0 }

// Midnight returns the start of the day in loc.
func (k DayKey) Midnight(loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}
	t, err := time.ParseInLocation(DayKeyLayout, string(k), loc)
	if err != nil {
		return time.Time{}, ErrInvalidDayKey
	}
	return t, nil
}

func (k DayKey) AddDays(n int) (DayKey, error) {
	t, err := time.Parse(DayKeyLayout, string(k))
	if err != nil {
		return "", ErrInvalidDayKey
	}
	return DayKeyFromTime(t.AddDate(0, 0, n)), nil
}

// AddMonthsClamped moves n months forward keeping the day of month,
// clamped to the last day of the target month.
func (k DayKey) AddMonthsClamped(n int) (DayKey, error) {
	t, err := time.Parse(DayKeyLayout, string(k))
	if err != nil {
		return "", ErrInvalidDayKey
	}
	y, m, d := t.Date()
	first := time.Date(y, m+time.Month(n), 1, 0, 0, 0, 0, time.UTC)
	last := DaysIn(first.Year(), first.Month())
	if d > last {
		d = last
	}
	return DayKeyFromTime(time.Date(first.Year(), first.Month(), d, 0, 0, 0, 0, time.UTC)), nil
}

func DaysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
