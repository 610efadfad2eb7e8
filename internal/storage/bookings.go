package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/uptrace/bun"

	"github.com/conectone/platform/models"
	"github.com/conectone/platform/pkg/result"
)

// Bookings returns the booking repository.
func (s *Storage) Bookings() *Repository[models.Booking] {
	return NewRepository[models.Booking](s.db)
}

// BookingFilter narrows booking listings.
type BookingFilter struct {
	PropertyID string
	Status     string
	// From/To filter bookings whose stay intersects the range
	From time.Time
	To   time.Time
}

// GetBooking retrieves a booking with its property loaded.
func (s *Storage) GetBooking(ctx context.Context, tenantID, id string) (*models.Booking, error) {
	return s.Bookings().GetOne(ctx, NewSpec("b.tenant_id = ?", tenantID).
		Where("b.id = ?", id).
		Relation("Property"))
}

// CreateBooking inserts a pending booking after re-checking availability
// inside a transaction, pricing the stay from the property's nightly rate.
func (s *Storage) CreateBooking(ctx context.Context, b *models.Booking) error {
	if !b.CheckOut.After(b.CheckIn) {
		return fmt.Errorf("check-out must be after check-in")
	}

	return s.RunInTx(ctx, func(ctx context.Context, tx bun.Tx) error {
		props := NewRepository[models.Property](tx)
		prop, err := props.GetByID(ctx, b.TenantID, b.PropertyID)
		if err != nil {
			return err
		}
		if b.Guests > prop.Sleeps {
			return fmt.Errorf("property sleeps %d, got %d guests", prop.Sleeps, b.Guests)
		}

		bookings := NewRepository[models.Booking](tx)
		overlapping, err := bookings.Exists(ctx, TenantSpec(b.TenantID).
			Where("property_id = ?", b.PropertyID).
			Where("status IN (?, ?)", models.BookingStatusPending, models.BookingStatusConfirmed).
			Where("check_in < ?", b.CheckOut).
			Where("check_out > ?", b.CheckIn))
		if err != nil {
			return err
		}
		if overlapping {
			return ErrUnavailable
		}

		b.TotalAmount = int64(b.Nights()) * prop.NightlyRate
		b.Currency = prop.Currency
		b.Status = models.BookingStatusPending
		return bookings.Create(ctx, b)
	})
}

// ConfirmBooking moves a pending booking to confirmed, recording the
// payment reference when given.
func (s *Storage) ConfirmBooking(ctx context.Context, tenantID, id, paymentRef string) (*models.Booking, error) {
	return s.transitionBooking(ctx, tenantID, id, models.BookingStatusPending, models.BookingStatusConfirmed, paymentRef)
}

// CancelBooking cancels a pending or confirmed booking, releasing the dates.
func (s *Storage) CancelBooking(ctx context.Context, tenantID, id string) (*models.Booking, error) {
	b, err := s.Bookings().GetOne(ctx, TenantSpec(tenantID).Where("id = ?", id))
	if err != nil {
		return nil, err
	}
	if !b.Blocking() {
		return nil, fmt.Errorf("booking is %s, cannot cancel", b.Status)
	}
	b.Status = models.BookingStatusCancelled
	b.UpdatedAt = time.Now()
	if err := s.Bookings().Update(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *Storage) transitionBooking(ctx context.Context, tenantID, id, from, to, paymentRef string) (*models.Booking, error) {
	b, err := s.Bookings().GetOne(ctx, TenantSpec(tenantID).Where("id = ?", id))
	if err != nil {
		return nil, err
	}
	if b.Status != from {
		return nil, fmt.Errorf("booking is %s, expected %s", b.Status, from)
	}
	b.Status = to
	if paymentRef != "" {
		b.PaymentRef = paymentRef
	}
	b.UpdatedAt = time.Now()
	if err := s.Bookings().Update(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

// PageBookings returns a filtered page of bookings, newest first, with
// properties loaded.
func (s *Storage) PageBookings(ctx context.Context, tenantID string, filter BookingFilter, params result.RequestParameters) (result.PaginatedResult[*models.Booking], error) {
	spec := NewSpec("b.tenant_id = ?", tenantID).Relation("Property").Order("b.created_at DESC")
	if filter.PropertyID != "" {
		spec.Where("property_id = ?", filter.PropertyID)
	}
	if filter.Status != "" {
		spec.Where("b.status = ?", filter.Status)
	}
	if !filter.From.IsZero() {
		spec.Where("check_out > ?", filter.From)
	}
	if !filter.To.IsZero() {
		spec.Where("check_in < ?", filter.To)
	}
	return s.Bookings().Page(ctx, spec, params)
}

// ListBookings returns every matching booking for exports, newest first,
// properties loaded.
func (s *Storage) ListBookings(ctx context.Context, tenantID string, filter BookingFilter) ([]*models.Booking, error) {
	spec := NewSpec("b.tenant_id = ?", tenantID).Relation("Property").Order("b.created_at DESC")
	if filter.PropertyID != "" {
		spec.Where("property_id = ?", filter.PropertyID)
	}
	if filter.Status != "" {
		spec.Where("b.status = ?", filter.Status)
	}
	if !filter.From.IsZero() {
		spec.Where("check_out > ?", filter.From)
	}
	if !filter.To.IsZero() {
		spec.Where("check_in < ?", filter.To)
	}
	return s.Bookings().List(ctx, spec)
}

// ExpireStaleBookings marks pending bookings older than the hold window as
// expired and returns how many were released. Run by the scheduler.
func (s *Storage) ExpireStaleBookings(ctx context.Context, holdWindow time.Duration) (int64, error) {
	cutoff := time.Now().Add(-holdWindow)
	res, err := s.db.NewUpdate().
		Model((*models.Booking)(nil)).
		Set("status = ?", models.BookingStatusExpired).
		Set("updated_at = ?", time.Now()).
		Where("status = ?", models.BookingStatusPending).
		Where("created_at < ?", cutoff).
		Exec(ctx)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
