package recurrence

import (
	"groombook/internal/domain/calendar"
)

const DefaultMaxOccurrences = 366

type Expander struct {
	maxOccurrences int
}

func NewExpander(maxOccurrences int) *Expander {
	if maxOccurrences <= 0 {
		maxOccurrences = DefaultMaxOccurrences
	}
	return &Expander{maxOccurrences: maxOccurrences}
}

func (e *Expander) MaxOccurrences() int { return e.maxOccurrences }

// Expand turns an intent into its occurrence dates. Validation happens before
// any date is produced, so on error nothing partial is returned.
func (e *Expander) Expand(intent Intent) (Occurrences, error) {
	start, err := calendar.ParseDayKey(intent.StartDate)
	if err != nil {
		return nil, newValidationError("startDate", ErrInvalidStartDate)
	}
	if _, err := calendar.ParseTimeOfDay(intent.Time); err != nil {
		return nil, newValidationError("time", ErrInvalidTime)
	}

	rule := intent.Rule
	if !rule.Enabled {
		return Occurrences{start}, nil
	}
	if !rule.Frequency.IsValid() {
		return nil, newValidationError("frequency", ErrInvalidFrequency)
	}

	switch rule.EndMode {
	case EndAfter:
		return e.expandCount(start, rule)
	case EndOn:
		return e.expandUntil(start, rule)
	default:
		return nil, newValidationError("endMode", ErrInvalidEndMode)
	}
}

func (e *Expander) expandCount(start calendar.DayKey, rule Rule) (Occurrences, error) {
	if rule.OccurrenceCount < 1 {
		return nil, newValidationError("occurrenceCount", ErrInvalidOccurrenceCount)
	}
	if rule.OccurrenceCount > e.maxOccurrences {
		return nil, newValidationError("occurrenceCount", ErrOccurrenceCapExceeded)
	}

	out := make(Occurrences, 0, rule.OccurrenceCount)
	for i := 0; i < rule.OccurrenceCount; i++ {
		d, err := step(start, rule.Frequency, i)
		if err != nil {
			return nil, newValidationError("startDate", ErrInvalidStartDate)
		}
		out = append(out, d)
	}
	return out, nil
}

func (e *Expander) expandUntil(start calendar.DayKey, rule Rule) (Occurrences, error) {
	until, err := calendar.ParseDayKey(rule.UntilDate)
	if err != nil {
		return nil, newValidationError("untilDate", ErrInvalidUntilDate)
	}
	if until.Before(start) {
		return nil, newValidationError("untilDate", ErrUntilBeforeStart)
	}

	var out Occurrences
	for i := 0; ; i++ {
		d, err := step(start, rule.Frequency, i)
		if err != nil {
			return nil, newValidationError("startDate", ErrInvalidStartDate)
		}
		if d.After(until) {
			break
		}
		if len(out) == e.maxOccurrences {
			return nil, newValidationError("untilDate", ErrOccurrenceCapExceeded)
		}
		out = append(out, d)
	}
	return out, nil
}

// step computes the i-th occurrence from start rather than from the previous
// one, so monthly series return to the original day after a short month.
func step(start calendar.DayKey, f Frequency, i int) (calendar.DayKey, error) {
	switch f {
	case FrequencyWeekly:
		return start.AddDays(7 * i)
	case FrequencyBiweekly:
		return start.AddDays(14 * i)
	default:
		return start.AddMonthsClamped(i)
	}
}
