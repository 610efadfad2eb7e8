package storage

import (
	"context"
	"time"

	"github.com/conectone/platform/models"
	"github.com/conectone/platform/pkg/result"
)

// Properties returns the property repository.
func (s *Storage) Properties() *Repository[models.Property] {
	return NewRepository[models.Property](s.db)
}

// PropertyFilter narrows property listings.
type PropertyFilter struct {
	City   string
	Type   string
	Status string
	// Sleeps filters to properties sleeping at least this many guests
	Sleeps int
}

// GetProperty retrieves a property by ID within a tenant.
func (s *Storage) GetProperty(ctx context.Context, tenantID, id string) (*models.Property, error) {
	return s.Properties().GetByID(ctx, tenantID, id)
}

// CreateProperty inserts a property, deriving and reserving its slug.
func (s *Storage) CreateProperty(ctx context.Context, p *models.Property) error {
	if p.Slug == "" {
		p.Slug = models.Slugify(p.Name)
	}
	taken, err := s.Properties().Exists(ctx, TenantSpec(p.TenantID).Where("slug = ?", p.Slug))
	if err != nil {
		return err
	}
	if taken {
		return ErrDuplicate
	}
	return s.Properties().Create(ctx, p)
}

// UpdateProperty writes property changes.
func (s *Storage) UpdateProperty(ctx context.Context, p *models.Property) error {
	p.UpdatedAt = time.Now()
	return s.Properties().Update(ctx, p)
}

// DeleteProperty removes a property. Properties with blocking bookings
// cannot be deleted.
func (s *Storage) DeleteProperty(ctx context.Context, tenantID, id string) error {
	blocked, err := s.Bookings().Exists(ctx, TenantSpec(tenantID).
		Where("property_id = ?", id).
		Where("status IN (?, ?)", models.BookingStatusPending, models.BookingStatusConfirmed))
	if err != nil {
		return err
	}
	if blocked {
		return ErrConflict
	}

	n, err := s.Properties().Delete(ctx, TenantSpec(tenantID).Where("id = ?", id))
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// PageProperties returns a filtered page of properties, newest first.
func (s *Storage) PageProperties(ctx context.Context, tenantID string, filter PropertyFilter, params result.RequestParameters) (result.PaginatedResult[*models.Property], error) {
	spec := TenantSpec(tenantID).Order("created_at DESC")
	if filter.City != "" {
		spec.Where("city = ?", filter.City)
	}
	if filter.Type != "" {
		spec.Where("type = ?", filter.Type)
	}
	if filter.Status != "" {
		spec.Where("status = ?", filter.Status)
	}
	if filter.Sleeps > 0 {
		spec.Where("sleeps >= ?", filter.Sleeps)
	}
	if params.SearchTerm != "" {
		term := "%" + params.SearchTerm + "%"
		spec.Where("(name LIKE ? OR city LIKE ? OR description LIKE ?)", term, term, term)
	}
	return s.Properties().Page(ctx, spec, params)
}

// PropertyAvailable reports whether the property has no blocking booking
// overlapping [checkIn, checkOut). Ranges are half-open, so back-to-back
// stays are allowed.
func (s *Storage) PropertyAvailable(ctx context.Context, tenantID, propertyID string, checkIn, checkOut time.Time) (bool, error) {
	overlapping, err := s.Bookings().Exists(ctx, TenantSpec(tenantID).
		Where("property_id = ?", propertyID).
		Where("status IN (?, ?)", models.BookingStatusPending, models.BookingStatusConfirmed).
		Where("check_in < ?", checkOut).
		Where("check_out > ?", checkIn))
	if err != nil {
		return false, err
	}
	return !overlapping, nil
}
