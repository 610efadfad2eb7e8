package storage

import (
	"context"
	"fmt"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conectone/platform/internal/config"
	"github.com/conectone/platform/models"
	"github.com/conectone/platform/pkg/result"
)

var testDBSeq atomic.Int64

// newTestStorage opens a fresh in-memory sqlite database with the schema
// migrated. Each test gets its own database.
func newTestStorage(t *testing.T) *Storage {
	t.Helper()

	dsn := fmt.Sprintf("file:test%d?mode=memory&cache=shared", testDBSeq.Add(1))
	cfg := &config.Config{
		Database: config.DatabaseConfig{
			Driver:       "sqlite",
			DSN:          dsn,
			MaxOpenConns: 1,
			MaxIdleConns: 1,
		},
	}

	s, err := New(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	require.NoError(t, s.Migrate(context.Background()))
	return s
}

func testProperty(tenantID string) *models.Property {
	now := time.Now()
	return &models.Property{
		ID:          models.GenerateID("property"),
		TenantID:    tenantID,
		Name:        "Seaview Villa",
		Type:        models.PropertyTypeVilla,
		City:        "Knysna",
		CountryCode: "ZA",
		Sleeps:      6,
		Bedrooms:    3,
		NightlyRate: 185000,
		Currency:    "ZAR",
		Status:      models.PropertyStatusActive,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func testBooking(tenantID, propertyID string, checkIn, checkOut time.Time) *models.Booking {
	now := time.Now()
	return &models.Booking{
		ID:         models.GenerateID("booking"),
		TenantID:   tenantID,
		PropertyID: propertyID,
		GuestName:  "Thandi Nkosi",
		GuestEmail: "thandi@example.com",
		CheckIn:    checkIn,
		CheckOut:   checkOut,
		Guests:     2,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestPropertyCRUD(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	prop := testProperty("acme")
	require.NoError(t, s.CreateProperty(ctx, prop))
	assert.Equal(t, "seaview-villa", prop.Slug)

	got, err := s.GetProperty(ctx, "acme", prop.ID)
	require.NoError(t, err)
	assert.Equal(t, prop.Name, got.Name)
	assert.Equal(t, int64(185000), got.NightlyRate)

	// other tenants cannot see it
	_, err = s.GetProperty(ctx, "other", prop.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	got.Name = "Seaview Villa Deluxe"
	require.NoError(t, s.UpdateProperty(ctx, got))

	got, err = s.GetProperty(ctx, "acme", prop.ID)
	require.NoError(t, err)
	assert.Equal(t, "Seaview Villa Deluxe", got.Name)

	require.NoError(t, s.DeleteProperty(ctx, "acme", prop.ID))
	_, err = s.GetProperty(ctx, "acme", prop.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCreatePropertyDuplicateSlug(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	require.NoError(t, s.CreateProperty(ctx, testProperty("acme")))

	dup := testProperty("acme")
	dup.ID = models.GenerateID("property")
	err := s.CreateProperty(ctx, dup)
	assert.ErrorIs(t, err, ErrDuplicate)

	// same slug under another tenant is fine
	other := testProperty("globex")
	other.ID = models.GenerateID("property")
	assert.NoError(t, s.CreateProperty(ctx, other))
}

func TestCreateBookingPricingAndOverlap(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	prop := testProperty("acme")
	require.NoError(t, s.CreateProperty(ctx, prop))

	b := testBooking("acme", prop.ID, date(2026, 9, 1), date(2026, 9, 5))
	require.NoError(t, s.CreateBooking(ctx, b))
	assert.Equal(t, models.BookingStatusPending, b.Status)
	assert.Equal(t, int64(4*185000), b.TotalAmount)
	assert.Equal(t, "ZAR", b.Currency)

	// overlapping stay is rejected
	overlap := testBooking("acme", prop.ID, date(2026, 9, 3), date(2026, 9, 7))
	err := s.CreateBooking(ctx, overlap)
	assert.ErrorIs(t, err, ErrUnavailable)

	// back-to-back stay is allowed: ranges are half-open
	next := testBooking("acme", prop.ID, date(2026, 9, 5), date(2026, 9, 8))
	assert.NoError(t, s.CreateBooking(ctx, next))
}

func TestCreateBookingValidation(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	prop := testProperty("acme")
	require.NoError(t, s.CreateProperty(ctx, prop))

	reversed := testBooking("acme", prop.ID, date(2026, 9, 5), date(2026, 9, 1))
	err := s.CreateBooking(ctx, reversed)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "check-out must be after check-in")

	crowded := testBooking("acme", prop.ID, date(2026, 9, 1), date(2026, 9, 5))
	crowded.Guests = 12
	err = s.CreateBooking(ctx, crowded)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sleeps")
}

func TestBookingLifecycle(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	prop := testProperty("acme")
	require.NoError(t, s.CreateProperty(ctx, prop))

	b := testBooking("acme", prop.ID, date(2026, 9, 1), date(2026, 9, 5))
	require.NoError(t, s.CreateBooking(ctx, b))

	confirmed, err := s.ConfirmBooking(ctx, "acme", b.ID, "payment-123")
	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusConfirmed, confirmed.Status)
	assert.Equal(t, "payment-123", confirmed.PaymentRef)

	// confirming twice fails
	_, err = s.ConfirmBooking(ctx, "acme", b.ID, "")
	require.Error(t, err)

	cancelled, err := s.CancelBooking(ctx, "acme", b.ID)
	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusCancelled, cancelled.Status)

	// cancelled bookings release the dates
	again := testBooking("acme", prop.ID, date(2026, 9, 1), date(2026, 9, 5))
	assert.NoError(t, s.CreateBooking(ctx, again))
}

func TestDeletePropertyWithBlockingBooking(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	prop := testProperty("acme")
	require.NoError(t, s.CreateProperty(ctx, prop))
	b := testBooking("acme", prop.ID, date(2026, 9, 1), date(2026, 9, 5))
	require.NoError(t, s.CreateBooking(ctx, b))

	err := s.DeleteProperty(ctx, "acme", prop.ID)
	assert.ErrorIs(t, err, ErrConflict)

	_, err = s.CancelBooking(ctx, "acme", b.ID)
	require.NoError(t, err)
	assert.NoError(t, s.DeleteProperty(ctx, "acme", prop.ID))
}

func TestExpireStaleBookings(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	prop := testProperty("acme")
	require.NoError(t, s.CreateProperty(ctx, prop))

	stale := testBooking("acme", prop.ID, date(2026, 9, 1), date(2026, 9, 5))
	require.NoError(t, s.CreateBooking(ctx, stale))

	// backdate the booking past the hold window
	_, err := s.DB().NewUpdate().
		Model((*models.Booking)(nil)).
		Set("created_at = ?", time.Now().Add(-2*time.Hour)).
		Where("id = ?", stale.ID).
		Exec(ctx)
	require.NoError(t, err)

	fresh := testBooking("acme", prop.ID, date(2026, 10, 1), date(2026, 10, 5))
	require.NoError(t, s.CreateBooking(ctx, fresh))

	n, err := s.ExpireStaleBookings(ctx, 30*time.Minute)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	got, err := s.GetBooking(ctx, "acme", stale.ID)
	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusExpired, got.Status)

	got, err = s.GetBooking(ctx, "acme", fresh.ID)
	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusPending, got.Status)
}

func TestPagePropertiesFilterAndSearch(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	for i := 0; i < 30; i++ {
		p := testProperty("acme")
		p.ID = models.GenerateID("property")
		p.Name = fmt.Sprintf("Listing %02d", i)
		p.Slug = fmt.Sprintf("listing-%02d", i)
		if i%2 == 0 {
			p.City = "Cape Town"
		}
		require.NoError(t, s.CreateProperty(ctx, p))
	}

	page, err := s.PageProperties(ctx, "acme", PropertyFilter{}, result.RequestParameters{PageNumber: 1, PageSize: 10})
	require.NoError(t, err)
	assert.Len(t, page.Data, 10)
	assert.Equal(t, 30, page.TotalCount)
	assert.Equal(t, 3, page.TotalPages)
	assert.True(t, page.HasNextPage())
	assert.False(t, page.HasPreviousPage())

	filtered, err := s.PageProperties(ctx, "acme", PropertyFilter{City: "Cape Town"}, result.RequestParameters{PageSize: 50})
	require.NoError(t, err)
	assert.Equal(t, 15, filtered.TotalCount)

	searched, err := s.PageProperties(ctx, "acme", PropertyFilter{}, result.RequestParameters{PageSize: 50, SearchTerm: "Listing 07"})
	require.NoError(t, err)
	assert.Equal(t, 1, searched.TotalCount)
}

func TestSchoolCapacityAndDelete(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	school := &models.School{
		ID:       models.GenerateID("school"),
		TenantID: "acme",
		Name:     "Hillside Primary",
		City:     "Durban",
		Capacity: 2,
	}
	require.NoError(t, s.CreateSchool(ctx, school))
	assert.Equal(t, "hillside-primary", school.Slug)

	newStudent := func(first string) *models.Student {
		return &models.Student{
			ID:        models.GenerateID("student"),
			TenantID:  "acme",
			SchoolID:  school.ID,
			FirstName: first,
			LastName:  "Mokoena",
			Status:    models.StudentStatusEnrolled,
		}
	}

	require.NoError(t, s.CreateStudent(ctx, newStudent("Lerato")))
	require.NoError(t, s.CreateStudent(ctx, newStudent("Sipho")))

	err := s.CreateStudent(ctx, newStudent("Naledi"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "capacity")

	// schools with enrolled students cannot be deleted
	err = s.DeleteSchool(ctx, "acme", school.ID)
	assert.ErrorIs(t, err, ErrConflict)
}

func TestSeedLocations(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	seed := `
countries:
  - code: za
    name: South Africa
    dial_code: "+27"
    currency_code: ZAR
    cities:
      - name: Cape Town
        region: Western Cape
      - name: Johannesburg
        region: Gauteng
  - code: na
    name: Namibia
    dial_code: "+264"
    currency_code: NAD
    cities:
      - name: Windhoek
        region: Khomas
`
	countries, cities, err := s.SeedLocations(ctx, strings.NewReader(seed))
	require.NoError(t, err)
	assert.Equal(t, 2, countries)
	assert.Equal(t, 3, cities)

	// reseeding is idempotent
	_, _, err = s.SeedLocations(ctx, strings.NewReader(seed))
	require.NoError(t, err)

	all, err := s.ListCountries(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "NA", all[0].Code) // Namibia sorts before South Africa

	za, err := s.GetCountry(ctx, "za")
	require.NoError(t, err)
	assert.Equal(t, "South Africa", za.Name)

	zaCities, err := s.ListCitiesByCountry(ctx, "ZA")
	require.NoError(t, err)
	require.Len(t, zaCities, 2)
	assert.Equal(t, "Cape Town", zaCities[0].Name)
}

func TestProductSKUAndUpsert(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	p := &models.Product{
		ID:       models.GenerateID("product"),
		TenantID: "acme",
		SKU:      "WIDGET-001",
		Name:     "Widget",
		Price:    4999,
		Currency: "ZAR",
		Stock:    10,
	}
	require.NoError(t, s.CreateProduct(ctx, p))

	dup := &models.Product{
		ID:       models.GenerateID("product"),
		TenantID: "acme",
		SKU:      "WIDGET-001",
		Name:     "Widget Copy",
		Currency: "ZAR",
	}
	assert.ErrorIs(t, s.CreateProduct(ctx, dup), ErrDuplicate)

	// bulk import updates on SKU collision
	imported := &models.Product{
		ID:       models.GenerateID("product"),
		TenantID: "acme",
		SKU:      "WIDGET-001",
		Name:     "Widget v2",
		Price:    5999,
		Currency: "ZAR",
		Stock:    25,
		Status:   models.ProductStatusActive,
	}
	require.NoError(t, s.UpsertProductsBySKU(ctx, imported))

	got, err := s.GetProductBySKU(ctx, "acme", "WIDGET-001")
	require.NoError(t, err)
	assert.Equal(t, "Widget v2", got.Name)
	assert.Equal(t, int64(5999), got.Price)
	assert.Equal(t, 25, got.Stock)
	assert.Equal(t, p.ID, got.ID) // original row updated, not replaced
}

func TestDeleteCategoryInUse(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	cat := &models.Category{
		ID:       models.GenerateID("category"),
		TenantID: "acme",
		Name:     "Electronics",
	}
	require.NoError(t, s.CreateCategory(ctx, cat))

	p := &models.Product{
		ID:         models.GenerateID("product"),
		TenantID:   "acme",
		SKU:        "TV-001",
		Name:       "Television",
		Currency:   "ZAR",
		CategoryID: cat.ID,
	}
	require.NoError(t, s.CreateProduct(ctx, p))

	assert.ErrorIs(t, s.DeleteCategory(ctx, "acme", cat.ID), ErrConflict)

	require.NoError(t, s.DeleteProduct(ctx, "acme", p.ID))
	assert.NoError(t, s.DeleteCategory(ctx, "acme", cat.ID))
}

func TestUserDuplicates(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	u := &models.User{
		ID:       models.GenerateID("user"),
		TenantID: "acme",
		Username: "alice",
		Email:    "alice@example.com",
		Roles:    []string{models.RoleAdmin},
	}
	require.NoError(t, s.CreateUser(ctx, u))

	sameName := &models.User{
		ID:       models.GenerateID("user"),
		TenantID: "acme",
		Username: "alice",
		Email:    "alice2@example.com",
	}
	assert.ErrorIs(t, s.CreateUser(ctx, sameName), ErrDuplicate)

	sameEmail := &models.User{
		ID:       models.GenerateID("user"),
		TenantID: "acme",
		Username: "alice2",
		Email:    "alice@example.com",
	}
	assert.ErrorIs(t, s.CreateUser(ctx, sameEmail), ErrDuplicate)
}

func TestGetStatistics(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	prop := testProperty("acme")
	require.NoError(t, s.CreateProperty(ctx, prop))

	b := testBooking("acme", prop.ID, date(2026, 9, 1), date(2026, 9, 3))
	require.NoError(t, s.CreateBooking(ctx, b))
	_, err := s.ConfirmBooking(ctx, "acme", b.ID, "")
	require.NoError(t, err)

	// another tenant's data must not leak into the stats
	other := testProperty("globex")
	other.ID = models.GenerateID("property")
	require.NoError(t, s.CreateProperty(ctx, other))

	stats, err := s.GetStatistics(ctx, "acme")
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Properties)
	assert.Equal(t, 1, stats.Bookings)
	assert.Equal(t, 1, stats.ConfirmedBookings)
	assert.Equal(t, int64(2*185000), stats.Revenue)
}
