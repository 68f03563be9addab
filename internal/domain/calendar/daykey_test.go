//go:build unit

package calendar_test

import (
	"testing"
	"time"

	"groombook/internal/domain/calendar"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDayKey(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		want  calendar.DayKey
		errIs error
	}{
		{name: "calendar date", in: "2025-06-10", want: "2025-06-10"},
		{name: "leap day", in: "2024-02-29", want: "2024-02-29"},
		{name: "non leap day", in: "2025-02-29", errIs: calendar.ErrInvalidDayKey},
		{name: "timestamp is not a key", in: "2025-06-10T09:00:00Z", errIs: calendar.ErrInvalidDayKey},
		{name: "empty", in: "", errIs: calendar.ErrInvalidDayKey},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := calendar.ParseDayKey(tt.in)
			if tt.errIs != nil {
				require.ErrorIs(t, err, tt.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDayKeyOf(t *testing.T) {
	sp, err := time.LoadLocation("America/Sao_Paulo")
	require.NoError(t, err)

	tests := []struct {
		name   string
		raw    string
		loc    *time.Location
		want   calendar.DayKey
		wantOK bool
	}{
		{name: "pass through", raw: "2025-06-10", loc: time.UTC, want: "2025-06-10", wantOK: true},
		{name: "surrounding spaces", raw: " 2025-06-10 ", loc: time.UTC, want: "2025-06-10", wantOK: true},
		{name: "utc timestamp truncated in local zone", raw: "2025-06-10T01:30:00Z", loc: sp, want: "2025-06-09", wantOK: true},
		{name: "naive timestamp read in zone", raw: "2025-06-10T23:00:00", loc: sp, want: "2025-06-10", wantOK: true},
		{name: "space separated timestamp", raw: "2025-06-10 08:00:00", loc: time.UTC, want: "2025-06-10", wantOK: true},
		{name: "garbage", raw: "tomorrow", loc: time.UTC},
		{name: "empty", raw: "", loc: time.UTC},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := calendar.DayKeyOf(tt.raw, tt.loc)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDayKeyCompare(t *testing.T) {
	a := calendar.DayKey("2025-01-31")
	b := calendar.DayKey("2025-02-01")

	assert.True(t, a.Before(b))
	assert.True(t, b.After(a))
	assert.Zero(t, a.Compare(a))
}

func TestAddMonthsClamped(t *testing.T) {
	tests := []struct {
		start string
		n     int
		want  calendar.DayKey
	}{
		{start: "2025-01-31", n: 1, want: "2025-02-28"},
		{start: "2024-01-31", n: 1, want: "2024-02-29"},
		{start: "2025-01-31", n: 2, want: "2025-03-31"},
		{start: "2025-01-31", n: 3, want: "2025-04-30"},
		{start: "2025-11-30", n: 3, want: "2026-02-28"},
		{start: "2025-06-15", n: 12, want: "2026-06-15"},
	}
	for _, tt := range tests {
		t.Run(tt.start, func(t *testing.T) {
			got, err := calendar.DayKey(tt.start).AddMonthsClamped(tt.n)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAddDaysAcrossYear(t *testing.T) {
	got, err := calendar.DayKey("2025-12-25").AddDays(14)
	require.NoError(t, err)
	assert.Equal(t, calendar.DayKey("2026-01-08"), got)
}

func TestTimeOfDay(t *testing.T) {
	t.Run("parse hh:mm", func(t *testing.T) {
		tod, err := calendar.ParseTimeOfDay("08:30")
		require.NoError(t, err)
		assert.Equal(t, 8*3600+30*60, tod.Seconds())
		assert.Equal(t, "08:30", tod.String())
	})

	t.Run("parse hh:mm:ss keeps seconds", func(t *testing.T) {
		tod, err := calendar.ParseTimeOfDay("14:05:09")
		require.NoError(t, err)
		assert.Equal(t, "14:05:09", tod.String())
	})

	t.Run("reject malformed", func(t *testing.T) {
		for _, in := range []string{"", "25:00", "8h30", "noon"} {
			_, err := calendar.ParseTimeOfDay(in)
			assert.ErrorIs(t, err, calendar.ErrInvalidTimeOfDay, in)
		}
	})

	t.Run("combine in location", func(t *testing.T) {
		tod, err := calendar.NewTimeOfDay(10, 0, 0)
		require.NoError(t, err)
		got, err := calendar.Combine("2025-06-10", tod, time.UTC)
		require.NoError(t, err)
		assert.Equal(t, time.Date(2025, 6, 10, 10, 0, 0, 0, time.UTC), got)
	})
}
