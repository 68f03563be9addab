package appointment

import (
	"sort"
	"time"
)

type sortKey struct {
	dated   bool
	day     string
	seconds int
}

// SortAscending orders by (day, time of day) and keeps input order on ties.
// An unparsable time sorts as midnight of its day; items without a derivable
// day go last, in their original order.
func SortAscending(items []Appointment, loc *time.Location) []Appointment {
	keyed := make([]struct {
		a   Appointment
		key sortKey
	}, len(items))
	for i, a := range items {
		keyed[i].a = a
		keyed[i].key = keyOf(a, loc)
	}

	sort.SliceStable(keyed, func(i, j int) bool {
		return less(keyed[i].key, keyed[j].key)
	})

	out := make([]Appointment, len(keyed))
	for i := range keyed {
		out[i] = keyed[i].a
	}
	return out
}

func keyOf(a Appointment, loc *time.Location) sortKey {
	day, ok := a.DayKey(loc)
	if !ok {
		return sortKey{}
	}
	k := sortKey{dated: true, day: day.String()}
	if tod, ok := a.TimeOfDay(); ok {
		k.seconds = tod.Seconds()
	}
	return k
}

func less(a, b sortKey) bool {
	if a.dated != b.dated {
		return a.dated
	}
	if !a.dated {
		return false
	}
	if a.day != b.day {
		return a.day < b.day
	}
	return a.seconds < b.seconds
}
