package appointment

import (
	"time"

	"groombook/internal/domain/calendar"
)

type Mode string

const (
	ModeUpcoming Mode = "upcoming"
	ModePast     Mode = "past"
	ModeUnpaid   Mode = "unpaid"
)

func (m Mode) IsValid() bool {
	switch m {
	case ModeUpcoming, ModePast, ModeUnpaid:
		return true
	default:
		return false
	}
}

func ParseMode(s string) (Mode, bool) {
	m := Mode(s)
	return m, m.IsValid()
}

// UnpaidPredicate decides "past-or-completed and unpaid" for the unpaid bucket.
type UnpaidPredicate func(a Appointment) bool

type ClassifyOptions struct {
	// PendingOnly keeps only pending appointments before the bucket rules run.
	PendingOnly bool
	// Unpaid is required for ModeUnpaid; a nil predicate matches nothing.
	Unpaid UnpaidPredicate
	// Location used to derive day keys from timestamps and to combine date and time.
	Location *time.Location
}

// Classify returns the items belonging to mode, in input order. Malformed
// dates or times never fail the call; they follow the inclusion rules below.
func Classify(items []Appointment, mode Mode, today calendar.DayKey, now time.Time, opts ClassifyOptions) []Appointment {
	loc := opts.Location
	if loc == nil {
		loc = now.Location()
	}

	out := make([]Appointment, 0, len(items))
	for _, a := range items {
		if opts.PendingOnly && a.Status != StatusPending {
			continue
		}

		var keep bool
		switch mode {
		case ModeUnpaid:
			keep = opts.Unpaid != nil && opts.Unpaid(a)
		case ModeUpcoming:
			keep = isUpcoming(a, today, now, loc)
		case ModePast:
			keep = isPast(a, today, now, loc)
		}
		if keep {
			out = append(out, a)
		}
	}
	return out
}

func isUpcoming(a Appointment, today calendar.DayKey, now time.Time, loc *time.Location) bool {
	if a.Status.IsSettled() {
		return false
	}
	day, ok := a.DayKey(loc)
	if !ok {
		return false
	}

	switch c := day.Compare(today); {
	case c > 0:
		return true
	case c < 0:
		// overdue but still being worked on
		return a.Status == StatusInProgress || a.Status == StatusConfirmed
	}

	if a.Status == StatusInProgress {
		return true
	}
	at, ok := a.DateTime(loc)
	if !ok {
		// unparsable time on today: keep it visible
		return true
	}
	return !at.Before(now)
}

// isPast never overlaps isUpcoming: overdue active work stays in upcoming only.
func isPast(a Appointment, today calendar.DayKey, now time.Time, loc *time.Location) bool {
	if isUpcoming(a, today, now, loc) {
		return false
	}
	return hasStarted(a, today, now, loc)
}

// hasStarted reports whether the appointment's start lies before now.
// Same-day items with an unparsable time are not considered started.
func hasStarted(a Appointment, today calendar.DayKey, now time.Time, loc *time.Location) bool {
	day, ok := a.DayKey(loc)
	if !ok {
		return false
	}

	switch c := day.Compare(today); {
	case c < 0:
		return true
	case c > 0:
		return false
	}

	at, ok := a.DateTime(loc)
	if !ok {
		return false
	}
	return at.Before(now)
}

// PastOrCompletedUnpaid is the payment follow-up policy used by listings:
// unpaid, not cancelled, and either completed or already started.
func PastOrCompletedUnpaid(today calendar.DayKey, now time.Time, loc *time.Location) UnpaidPredicate {
	if loc == nil {
		loc = now.Location()
	}
	return func(a Appointment) bool {
		if a.IsPaid() || a.Status == StatusCancelled {
			return false
		}
		if a.Status == StatusCompleted {
			return true
		}
		return hasStarted(a, today, now, loc)
	}
}
