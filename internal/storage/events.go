package storage

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/conectone/platform/models"
	"github.com/conectone/platform/pkg/result"
)

// Events returns the calendar event repository.
func (s *Storage) Events() *Repository[models.Event] {
	return NewRepository[models.Event](s.db)
}

// GetEvent retrieves an event by ID within a tenant.
func (s *Storage) GetEvent(ctx context.Context, tenantID, id string) (*models.Event, error) {
	return s.Events().GetByID(ctx, tenantID, id)
}

// CreateEvent inserts an event after validating its time range.
func (s *Storage) CreateEvent(ctx context.Context, ev *models.Event) error {
	if ev.EndsAt.Before(ev.StartsAt) {
		return fmt.Errorf("event ends before it starts")
	}
	if ev.Recurrence == "" {
		ev.Recurrence = models.RecurrenceNone
	}
	return s.Events().Create(ctx, ev)
}

// UpdateEvent writes event changes.
func (s *Storage) UpdateEvent(ctx context.Context, ev *models.Event) error {
	if ev.EndsAt.Before(ev.StartsAt) {
		return fmt.Errorf("event ends before it starts")
	}
	ev.UpdatedAt = time.Now()
	return s.Events().Update(ctx, ev)
}

// DeleteEvent removes an event.
func (s *Storage) DeleteEvent(ctx context.Context, tenantID, id string) error {
	n, err := s.Events().Delete(ctx, TenantSpec(tenantID).Where("id = ?", id))
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// PageEvents returns a page of events ordered by start time.
func (s *Storage) PageEvents(ctx context.Context, tenantID string, params result.RequestParameters) (result.PaginatedResult[*models.Event], error) {
	spec := TenantSpec(tenantID).Order("starts_at ASC")
	if params.SearchTerm != "" {
		term := "%" + params.SearchTerm + "%"
		spec.Where("(title LIKE ? OR location LIKE ?)", term, term)
	}
	return s.Events().Page(ctx, spec, params)
}

// Occurrences expands all events intersecting [from, to), recurring ones
// included, sorted by start time. Recurring events are fetched regardless of
// their anchor date since any started series may recur into the window.
func (s *Storage) Occurrences(ctx context.Context, tenantID string, from, to time.Time) ([]models.Occurrence, error) {
	events, err := s.Events().List(ctx, TenantSpec(tenantID).
		Where("(recurrence != ? OR (starts_at < ? AND ends_at > ?))",
			models.RecurrenceNone, to, from))
	if err != nil {
		return nil, err
	}

	var out []models.Occurrence
	for _, ev := range events {
		out = append(out, ev.Occurrences(from, to)...)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartsAt.Before(out[j].StartsAt) })
	return out, nil
}
