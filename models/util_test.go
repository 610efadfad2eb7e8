package models

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGenerateID(t *testing.T) {
	id := GenerateID("booking")
	assert.True(t, strings.HasPrefix(id, "booking-"))
	assert.NotEqual(t, id, GenerateID("booking"))
}

func TestSlugify(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"simple", "Seaview Villa", "seaview-villa"},
		{"punctuation collapsed", "St. John's  School!", "st-john-s-school"},
		{"leading and trailing junk", "  --Hello--  ", "hello"},
		{"digits kept", "Unit 42B", "unit-42b"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Slugify(tt.in))
		})
	}
}

func TestBookingOverlaps(t *testing.T) {
	day := func(d int) time.Time {
		return time.Date(2026, 3, d, 0, 0, 0, 0, time.UTC)
	}
	b := &Booking{CheckIn: day(10), CheckOut: day(15)}

	tests := []struct {
		name     string
		in, out  time.Time
		overlaps bool
	}{
		{"same range", day(10), day(15), true},
		{"contained", day(11), day(12), true},
		{"straddles start", day(8), day(11), true},
		{"straddles end", day(14), day(20), true},
		{"back to back before", day(5), day(10), false},
		{"back to back after", day(15), day(20), false},
		{"disjoint", day(20), day(25), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.overlaps, b.Overlaps(tt.in, tt.out))
		})
	}
}

func TestEventOccurrences(t *testing.T) {
	start := time.Date(2026, 1, 5, 9, 0, 0, 0, time.UTC)
	ev := &Event{
		ID:         "event-1",
		Title:      "Standup",
		StartsAt:   start,
		EndsAt:     start.Add(30 * time.Minute),
		Recurrence: RecurrenceWeekly,
	}

	from := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)

	occ := ev.Occurrences(from, to)
	assert.Len(t, occ, 4)
	assert.Equal(t, start, occ[0].StartsAt)
	assert.Equal(t, start.AddDate(0, 0, 21), occ[3].StartsAt)

	// Non-recurring event outside the window yields nothing.
	single := &Event{
		StartsAt:   time.Date(2025, 12, 1, 9, 0, 0, 0, time.UTC),
		EndsAt:     time.Date(2025, 12, 1, 10, 0, 0, 0, time.UTC),
		Recurrence: RecurrenceNone,
	}
	assert.Empty(t, single.Occurrences(from, to))
}
