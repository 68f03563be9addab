package recurrence

import "groombook/internal/domain/calendar"

type Frequency string

const (
	FrequencyWeekly   Frequency = "weekly"
	FrequencyBiweekly Frequency = "biweekly"
	FrequencyMonthly  Frequency = "monthly"
)

func (f Frequency) IsValid() bool {
	switch f {
	case FrequencyWeekly, FrequencyBiweekly, FrequencyMonthly:
		return true
	default:
		return false
	}
}

type EndMode string

const (
	EndAfter EndMode = "after"
	EndOn    EndMode = "on"
)

func (m EndMode) IsValid() bool {
	switch m {
	case EndAfter, EndOn:
		return true
	default:
		return false
	}
}

// Rule describes how one booking intent repeats. Only the end field selected
// by EndMode is read; the other one is ignored even when set.
type Rule struct {
	Enabled         bool
	Frequency       Frequency
	EndMode         EndMode
	OccurrenceCount int
	UntilDate       string
}

// Intent is what a booking form submits before expansion.
type Intent struct {
	StartDate string
	Time      string
	Rule      Rule
}

func Single(startDate, timeOfDay string) Intent {
	return Intent{StartDate: startDate, Time: timeOfDay}
}

// Occurrences is the expanded, strictly ascending date sequence.
type Occurrences []calendar.DayKey

func (o Occurrences) IsSeries() bool { return len(o) > 1 }

func (o Occurrences) Strings() []string {
	out := make([]string, len(o))
	for i, d := range o {
		out[i] = d.String()
	}
	return out
}
