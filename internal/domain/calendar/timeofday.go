package calendar

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var ErrInvalidTimeOfDay = errors.New("invalid time of day")

var timeOfDayLayouts = []string{"15:04", "15:04:05"}

// TimeOfDay is a local wall-clock time without a date or zone.
type TimeOfDay struct {
	hour   int
	minute int
	second int
}

func ParseTimeOfDay(s string) (TimeOfDay, error) {
	s = strings.TrimSpace(s)
	for _, layout := range timeOfDayLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return TimeOfDay{hour: t.Hour(), minute: t.Minute(), second: t.Second()}, nil
		}
	}
	return TimeOfDay{}, ErrInvalidTimeOfDay
}

func NewTimeOfDay(hour, minute, second int) (TimeOfDay, error) {
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 || second < 0 || second > 59 {
		return TimeOfDay{}, ErrInvalidTimeOfDay
	}
	return TimeOfDay{hour: hour, minute: minute, second: second}, nil
}

func (t TimeOfDay) Hour() int   { return t.hour }
func (t TimeOfDay) Minute() int { return t.minute }
func (t TimeOfDay) Second() int { return t.second }

// Seconds since midnight.
func (t TimeOfDay) Seconds() int {
	return t.hour*3600 + t.minute*60 + t.second
}

func (t TimeOfDay) String() string {
	if t.second != 0 {
		return fmt.Sprintf("%02d:%02d:%02d", t.hour, t.minute, t.second)
	}
	return fmt.Sprintf("%02d:%02d", t.hour, t.minute)
}

// Combine places tod on day in loc.
func Combine(day DayKey, tod TimeOfDay, loc *time.Location) (time.Time, error) {
	midnight, err := day.Midnight(loc)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(midnight.Year(), midnight.Month(), midnight.Day(), tod.hour, tod.minute, tod.second, 0, midnight.Location()), nil
}
