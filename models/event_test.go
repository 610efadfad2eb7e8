package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testEvent(recurrence string) *Event {
	return &Event{
		ID:         "event-1",
		Title:      "Standup",
		StartsAt:   time.Date(2026, 9, 7, 9, 0, 0, 0, time.UTC),
		EndsAt:     time.Date(2026, 9, 7, 9, 15, 0, 0, time.UTC),
		Recurrence: recurrence,
	}
}

func TestOccurrencesExpansion(t *testing.T) {
	from := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 9, 30, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		recurrence string
		want       int
	}{
		{RecurrenceNone, 1},
		{"", 1},
		{RecurrenceDaily, 23}, // Sep 7..29
		{RecurrenceWeekly, 4}, // Sep 7, 14, 21, 28
		{RecurrenceMonthly, 1},
	}
	for _, tt := range tests {
		t.Run("recurrence "+tt.recurrence, func(t *testing.T) {
			occ := testEvent(tt.recurrence).Occurrences(from, to)
			assert.Len(t, occ, tt.want)
		})
	}
}

func TestOccurrencesWindowExcludesOutside(t *testing.T) {
	ev := testEvent(RecurrenceNone)

	// Window entirely before the event
	occ := ev.Occurrences(
		time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC))
	assert.Empty(t, occ)

	// Half-open: an event starting exactly at `to` is excluded
	occ = ev.Occurrences(
		time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
		ev.StartsAt)
	assert.Empty(t, occ)
}

func TestOccurrencesUnknownRecurrenceTerminates(t *testing.T) {
	ev := testEvent("yearly") // not a supported constant

	done := make(chan []Occurrence, 1)
	go func() {
		done <- ev.Occurrences(
			time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2026, 9, 30, 0, 0, 0, 0, time.UTC))
	}()

	select {
	case occ := <-done:
		// Unrecognised values behave like non-recurring events
		require.Len(t, occ, 1)
		assert.Equal(t, ev.StartsAt, occ[0].StartsAt)
	case <-time.After(2 * time.Second):
		t.Fatal("expansion did not terminate for unknown recurrence")
	}
}

func TestOccurrencesMonthlyKeepsDayOfMonth(t *testing.T) {
	ev := testEvent(RecurrenceMonthly)

	occ := ev.Occurrences(
		time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 12, 31, 0, 0, 0, 0, time.UTC))
	require.Len(t, occ, 4)
	for _, o := range occ {
		assert.Equal(t, 7, o.StartsAt.Day())
	}
}
