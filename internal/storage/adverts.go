package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/conectone/platform/models"
	"github.com/conectone/platform/pkg/result"
)

// Adverts returns the advert repository.
func (s *Storage) Adverts() *Repository[models.Advert] {
	return NewRepository[models.Advert](s.db)
}

// GetAdvert retrieves an advert by ID within a tenant.
func (s *Storage) GetAdvert(ctx context.Context, tenantID, id string) (*models.Advert, error) {
	return s.Adverts().GetByID(ctx, tenantID, id)
}

// CreateAdvert inserts a draft advert, deriving its slug.
func (s *Storage) CreateAdvert(ctx context.Context, ad *models.Advert) error {
	if ad.Slug == "" {
		ad.Slug = models.Slugify(ad.Title)
	}
	ad.Status = models.AdvertStatusDraft
	return s.Adverts().Create(ctx, ad)
}

// UpdateAdvert writes advert changes.
func (s *Storage) UpdateAdvert(ctx context.Context, ad *models.Advert) error {
	ad.UpdatedAt = time.Now()
	return s.Adverts().Update(ctx, ad)
}

// DeleteAdvert removes an advert.
func (s *Storage) DeleteAdvert(ctx context.Context, tenantID, id string) error {
	n, err := s.Adverts().Delete(ctx, TenantSpec(tenantID).Where("id = ?", id))
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// PublishAdvert moves a draft advert to published with the given lifetime.
// A zero lifetime publishes without expiry.
func (s *Storage) PublishAdvert(ctx context.Context, tenantID, id string, lifetime time.Duration) (*models.Advert, error) {
	ad, err := s.GetAdvert(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}
	if ad.Status == models.AdvertStatusPublished {
		return nil, fmt.Errorf("advert is already published")
	}
	now := time.Now()
	ad.Status = models.AdvertStatusPublished
	ad.PublishedAt = &now
	if lifetime > 0 {
		expires := now.Add(lifetime)
		ad.ExpiresAt = &expires
	} else {
		ad.ExpiresAt = nil
	}
	ad.UpdatedAt = now
	if err := s.Adverts().Update(ctx, ad); err != nil {
		return nil, err
	}
	return ad, nil
}

// UnpublishAdvert moves an advert back to draft.
func (s *Storage) UnpublishAdvert(ctx context.Context, tenantID, id string) (*models.Advert, error) {
	ad, err := s.GetAdvert(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}
	ad.Status = models.AdvertStatusDraft
	ad.PublishedAt = nil
	ad.ExpiresAt = nil
	ad.UpdatedAt = time.Now()
	if err := s.Adverts().Update(ctx, ad); err != nil {
		return nil, err
	}
	return ad, nil
}

// PageAdverts returns a filtered page of adverts, newest first.
func (s *Storage) PageAdverts(ctx context.Context, tenantID, category, status string, params result.RequestParameters) (result.PaginatedResult[*models.Advert], error) {
	spec := TenantSpec(tenantID).Order("created_at DESC")
	if category != "" {
		spec.Where("category = ?", category)
	}
	if status != "" {
		spec.Where("status = ?", status)
	}
	if params.SearchTerm != "" {
		term := "%" + params.SearchTerm + "%"
		spec.Where("(title LIKE ? OR body LIKE ?)", term, term)
	}
	return s.Adverts().Page(ctx, spec, params)
}

// ExpireAdverts marks published adverts past their expiry as expired and
// returns how many changed. Run by the scheduler.
func (s *Storage) ExpireAdverts(ctx context.Context) (int64, error) {
	res, err := s.db.NewUpdate().
		Model((*models.Advert)(nil)).
		Set("status = ?", models.AdvertStatusExpired).
		Set("updated_at = ?", time.Now()).
		Where("status = ?", models.AdvertStatusPublished).
		Where("expires_at IS NOT NULL").
		Where("expires_at < ?", time.Now()).
		Exec(ctx)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
