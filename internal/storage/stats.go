package storage

import (
	"context"

	"github.com/conectone/platform/models"
)

// Statistics summarises a tenant's data across every module.
type Statistics struct {
	Properties int `json:"properties"`
	Bookings   int `json:"bookings"`
	Schools    int `json:"schools"`
	Students   int `json:"students"`
	Adverts    int `json:"adverts"`
	Posts      int `json:"posts"`
	Events     int `json:"events"`
	Products   int `json:"products"`
	Users      int `json:"users"`

	// ConfirmedBookings and Revenue summarise accommodation sales;
	// Revenue is in minor currency units.
	ConfirmedBookings int   `json:"confirmed_bookings"`
	Revenue           int64 `json:"revenue"`
}

// GetStatistics gathers per-module counts and booking revenue for a tenant.
func (s *Storage) GetStatistics(ctx context.Context, tenantID string) (*Statistics, error) {
	stats := &Statistics{}

	counts := []struct {
		dst   *int
		count func() (int, error)
	}{
		{&stats.Properties, func() (int, error) { return s.Properties().Count(ctx, TenantSpec(tenantID)) }},
		{&stats.Bookings, func() (int, error) { return s.Bookings().Count(ctx, TenantSpec(tenantID)) }},
		{&stats.Schools, func() (int, error) { return s.Schools().Count(ctx, TenantSpec(tenantID)) }},
		{&stats.Students, func() (int, error) { return s.Students().Count(ctx, TenantSpec(tenantID)) }},
		{&stats.Adverts, func() (int, error) { return s.Adverts().Count(ctx, TenantSpec(tenantID)) }},
		{&stats.Posts, func() (int, error) { return s.Posts().Count(ctx, TenantSpec(tenantID)) }},
		{&stats.Events, func() (int, error) { return s.Events().Count(ctx, TenantSpec(tenantID)) }},
		{&stats.Products, func() (int, error) { return s.Products().Count(ctx, TenantSpec(tenantID)) }},
		{&stats.Users, func() (int, error) { return s.Users().Count(ctx, TenantSpec(tenantID)) }},
	}
	for _, c := range counts {
		n, err := c.count()
		if err != nil {
			return nil, err
		}
		*c.dst = n
	}

	confirmed, err := s.Bookings().List(ctx, TenantSpec(tenantID).
		Where("status = ?", models.BookingStatusConfirmed))
	if err != nil {
		return nil, err
	}
	stats.ConfirmedBookings = len(confirmed)
	for _, b := range confirmed {
		stats.Revenue += b.TotalAmount
	}

	return stats, nil
}
