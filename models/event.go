package models

import (
	"time"

	"github.com/uptrace/bun"
)

// Recurrence rules supported by the calendar module.
const (
	RecurrenceNone    = "none"
	RecurrenceDaily   = "daily"
	RecurrenceWeekly  = "weekly"
	RecurrenceMonthly = "monthly"
)

// Event is a calendar entry. Recurring events store a single row; the list
// endpoint expands occurrences within the requested window.
type Event struct {
	bun.BaseModel `bun:"table:events,alias:ev" json:"-"`

	ID       string `bun:"id,pk" json:"id"`
	TenantID string `bun:"tenant_id,notnull" json:"tenant_id"`

	Title       string `bun:"title,notnull" json:"title" validate:"required,max=200"`
	Description string `bun:"description" json:"description"`
	Location    string `bun:"location" json:"location"`

	StartsAt time.Time `bun:"starts_at,notnull" json:"starts_at" validate:"required"`
	EndsAt   time.Time `bun:"ends_at,notnull" json:"ends_at" validate:"required"`
	AllDay   bool      `bun:"all_day,notnull,default:false" json:"all_day"`

	// Recurrence is one of the Recurrence* constants
	Recurrence string `bun:"recurrence,notnull,default:'none'" json:"recurrence" validate:"omitempty,oneof=none daily weekly monthly"`

	// Colour is a display hint for calendar UIs (hex code)
	Colour string `bun:"colour" json:"colour" validate:"omitempty,hexcolor"`

	CreatedAt time.Time `bun:"created_at,notnull" json:"created_at"`
	UpdatedAt time.Time `bun:"updated_at,notnull" json:"updated_at"`
}

// Occurrence is a single expanded instance of a (possibly recurring) event.
type Occurrence struct {
	EventID  string    `json:"event_id"`
	Title    string    `json:"title"`
	Location string    `json:"location,omitempty"`
	StartsAt time.Time `json:"starts_at"`
	EndsAt   time.Time `json:"ends_at"`
	AllDay   bool      `json:"all_day"`
	Colour   string    `json:"colour,omitempty"`
}

// Duration returns the event length.
func (e *Event) Duration() time.Duration {
	return e.EndsAt.Sub(e.StartsAt)
}

// Occurrences expands the event within [from, to). Non-recurring events yield
// at most one occurrence; a recurrence value outside the known constants is
// treated as non-recurring rather than trusted to step forward. The expansion
// walks forward from StartsAt applying the recurrence step, so monthly events
// keep their day-of-month where the target month allows it (time.AddDate
// normalisation applies otherwise).
func (e *Event) Occurrences(from, to time.Time) []Occurrence {
	var out []Occurrence

	step := func(t time.Time) time.Time {
		switch e.Recurrence {
		case RecurrenceDaily:
			return t.AddDate(0, 0, 1)
		case RecurrenceWeekly:
			return t.AddDate(0, 0, 7)
		case RecurrenceMonthly:
			return t.AddDate(0, 1, 0)
		}
		return time.Time{}
	}

	recurring := e.Recurrence == RecurrenceDaily ||
		e.Recurrence == RecurrenceWeekly ||
		e.Recurrence == RecurrenceMonthly

	dur := e.Duration()
	start := e.StartsAt
	for !start.After(to) {
		end := start.Add(dur)
		if end.After(from) && start.Before(to) {
			out = append(out, Occurrence{
				EventID:  e.ID,
				Title:    e.Title,
				Location: e.Location,
				StartsAt: start,
				EndsAt:   end,
				AllDay:   e.AllDay,
				Colour:   e.Colour,
			})
		}
		if !recurring {
			break
		}
		start = step(start)
	}
	return out
}
