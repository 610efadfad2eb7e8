package integrity

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conectone/platform/internal/config"
	"github.com/conectone/platform/internal/storage"
	"github.com/conectone/platform/models"
)

var testDBSeq atomic.Int64

const tenant = "default"

func newTestChecker(t *testing.T) (*Checker, *storage.Storage) {
	t.Helper()

	cfg := &config.Config{
		Database: config.DatabaseConfig{
			Driver:       "sqlite",
			DSN:          fmt.Sprintf("file:integrity%d?mode=memory&cache=shared", testDBSeq.Add(1)),
			MaxOpenConns: 1,
			MaxIdleConns: 1,
		},
	}
	store, err := storage.New(cfg)
	require.NoError(t, err)
	require.NoError(t, store.Migrate(t.Context()))
	t.Cleanup(func() { store.Close() })

	return NewChecker(store), store
}

func issuesOfType(report *Report, issueType string) []Issue {
	var out []Issue
	for _, i := range report.Issues {
		if i.Type == issueType {
			out = append(out, i)
		}
	}
	return out
}

func TestCheckCleanTenant(t *testing.T) {
	checker, _ := newTestChecker(t)

	report, err := checker.Check(t.Context(), tenant)
	require.NoError(t, err)
	assert.Empty(t, report.Issues)
	assert.Equal(t, 100, report.HealthScore)
	assert.Equal(t, tenant, report.TenantID)
}

func TestCheckFindsOrphanedBooking(t *testing.T) {
	checker, store := newTestChecker(t)
	ctx := t.Context()
	now := time.Now()

	// The API never creates a booking without a property; simulate a
	// property deleted out-of-band by inserting through the repository.
	booking := &models.Booking{
		ID:          models.GenerateID("booking"),
		TenantID:    tenant,
		PropertyID:  "property-gone",
		GuestName:   "Ghost Guest",
		GuestEmail:  "ghost@example.com",
		CheckIn:     now,
		CheckOut:    now.AddDate(0, 0, 2),
		Guests:      1,
		TotalAmount: 100,
		Currency:    "ZAR",
		Status:      models.BookingStatusConfirmed,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	require.NoError(t, store.Bookings().Create(ctx, booking))

	report, err := checker.Check(ctx, tenant)
	require.NoError(t, err)

	found := issuesOfType(report, IssueOrphanedBooking)
	require.Len(t, found, 1)
	assert.Equal(t, booking.ID, found[0].ID)
	assert.True(t, found[0].Repairable)
	assert.Equal(t, 99, report.HealthScore)

	// Cancelled bookings are not reported even when orphaned
	booking.Status = models.BookingStatusCancelled
	require.NoError(t, store.Bookings().Update(ctx, booking))
	report, err = checker.Check(ctx, tenant)
	require.NoError(t, err)
	assert.Empty(t, issuesOfType(report, IssueOrphanedBooking))
}

func TestCheckFindsOrphanedStudentAndProduct(t *testing.T) {
	checker, store := newTestChecker(t)
	ctx := t.Context()
	now := time.Now()

	student := &models.Student{
		ID:        models.GenerateID("student"),
		TenantID:  tenant,
		SchoolID:  "school-gone",
		FirstName: "Lindiwe",
		LastName:  "Dube",
		Status:    models.StudentStatusEnrolled,
		CreatedAt: now,
		UpdatedAt: now,
	}
	require.NoError(t, store.Students().Create(ctx, student))

	product := &models.Product{
		ID:         models.GenerateID("product"),
		TenantID:   tenant,
		SKU:        "SKU-ORPHAN",
		Name:       "Orphan",
		CategoryID: "category-gone",
		Price:      100,
		Currency:   "ZAR",
		Status:     models.ProductStatusActive,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	require.NoError(t, store.Products().Create(ctx, product))

	report, err := checker.Check(ctx, tenant)
	require.NoError(t, err)
	assert.Len(t, issuesOfType(report, IssueOrphanedStudent), 1)
	assert.Len(t, issuesOfType(report, IssueOrphanedProduct), 1)

	// A product without a category is fine
	product.CategoryID = ""
	require.NoError(t, store.Products().Update(ctx, product))
	report, err = checker.Check(ctx, tenant)
	require.NoError(t, err)
	assert.Empty(t, issuesOfType(report, IssueOrphanedProduct))
}

func TestCheckFindsOverCapacity(t *testing.T) {
	checker, store := newTestChecker(t)
	ctx := t.Context()
	now := time.Now()

	school := &models.School{
		ID:        models.GenerateID("school"),
		TenantID:  tenant,
		Name:      "Tiny Academy",
		Slug:      "tiny-academy",
		Capacity:  1,
		Status:    models.SchoolStatusActive,
		CreatedAt: now,
		UpdatedAt: now,
	}
	require.NoError(t, store.Schools().Create(ctx, school))

	for i := 0; i < 2; i++ {
		st := &models.Student{
			ID:        models.GenerateID("student"),
			TenantID:  tenant,
			SchoolID:  school.ID,
			FirstName: fmt.Sprintf("Student%d", i),
			LastName:  "Test",
			Status:    models.StudentStatusEnrolled,
			CreatedAt: now,
			UpdatedAt: now,
		}
		require.NoError(t, store.Students().Create(ctx, st))
	}

	report, err := checker.Check(ctx, tenant)
	require.NoError(t, err)

	found := issuesOfType(report, IssueOverCapacity)
	require.Len(t, found, 1)
	assert.Equal(t, school.ID, found[0].ID)
	assert.False(t, found[0].Repairable, "capacity issues need a human")
}

func TestRepairFixesOrphans(t *testing.T) {
	checker, store := newTestChecker(t)
	ctx := t.Context()
	now := time.Now()

	booking := &models.Booking{
		ID:          models.GenerateID("booking"),
		TenantID:    tenant,
		PropertyID:  "property-gone",
		GuestName:   "Ghost",
		GuestEmail:  "ghost@example.com",
		CheckIn:     now,
		CheckOut:    now.AddDate(0, 0, 1),
		Guests:      1,
		TotalAmount: 100,
		Currency:    "ZAR",
		Status:      models.BookingStatusPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	require.NoError(t, store.Bookings().Create(ctx, booking))

	payment := &models.Payment{
		ID:                models.GenerateID("payment"),
		TenantID:          tenant,
		BookingID:         "booking-gone",
		Gateway:           "payfast",
		MerchantPaymentID: models.GenerateID("mp"),
		Amount:            100,
		Currency:          "ZAR",
		Status:            models.PaymentStatusCreated,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	require.NoError(t, store.Payments().Create(ctx, payment))

	res, err := checker.Repair(ctx, tenant)
	require.NoError(t, err)
	assert.Equal(t, 2, res.Repaired)
	assert.Equal(t, 0, res.Skipped)

	fixed, err := store.Bookings().GetByID(ctx, tenant, booking.ID)
	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusCancelled, fixed.Status)

	fixedPayment, err := store.Payments().GetByID(ctx, tenant, payment.ID)
	require.NoError(t, err)
	assert.Equal(t, models.PaymentStatusFailed, fixedPayment.Status)

	// A second run finds nothing left to do
	res, err = checker.Repair(ctx, tenant)
	require.NoError(t, err)
	assert.Equal(t, 0, res.Repaired)

	report, err := checker.Check(ctx, tenant)
	require.NoError(t, err)
	assert.Empty(t, report.Issues)
	assert.Equal(t, 100, report.HealthScore)
}

func TestRepairSkipsOverCapacity(t *testing.T) {
	checker, store := newTestChecker(t)
	ctx := t.Context()
	now := time.Now()

	school := &models.School{
		ID:        models.GenerateID("school"),
		TenantID:  tenant,
		Name:      "Full House",
		Slug:      "full-house",
		Capacity:  1,
		Status:    models.SchoolStatusActive,
		CreatedAt: now,
		UpdatedAt: now,
	}
	require.NoError(t, store.Schools().Create(ctx, school))

	for i := 0; i < 3; i++ {
		st := &models.Student{
			ID:        models.GenerateID("student"),
			TenantID:  tenant,
			SchoolID:  school.ID,
			FirstName: fmt.Sprintf("S%d", i),
			LastName:  "T",
			Status:    models.StudentStatusEnrolled,
			CreatedAt: now,
			UpdatedAt: now,
		}
		require.NoError(t, store.Students().Create(ctx, st))
	}

	res, err := checker.Repair(ctx, tenant)
	require.NoError(t, err)
	assert.Equal(t, 0, res.Repaired)
	assert.Equal(t, 1, res.Skipped)

	// Every student is still enrolled
	enrolled, err := store.Students().Count(ctx, storage.TenantSpec(tenant).
		Where("status = ?", models.StudentStatusEnrolled))
	require.NoError(t, err)
	assert.Equal(t, 3, enrolled)
}

func TestCheckFindsDuplicateKeys(t *testing.T) {
	checker, store := newTestChecker(t)
	ctx := t.Context()
	now := time.Now()

	// The stores reserve slugs on create; write through the repository to
	// simulate an out-of-band collision.
	for i := 0; i < 2; i++ {
		ad := &models.Advert{
			ID:        models.GenerateID("advert"),
			TenantID:  tenant,
			Title:     "Same title",
			Slug:      "same-title",
			Status:    models.AdvertStatusDraft,
			CreatedAt: now,
			UpdatedAt: now,
		}
		require.NoError(t, store.Adverts().Create(ctx, ad))

		p := &models.Product{
			ID:        models.GenerateID("product"),
			TenantID:  tenant,
			SKU:       "SKU-DUP",
			Name:      fmt.Sprintf("Widget %d", i),
			Price:     100,
			Currency:  "ZAR",
			Status:    models.ProductStatusActive,
			CreatedAt: now,
			UpdatedAt: now,
		}
		require.NoError(t, store.Products().Create(ctx, p))
	}

	report, err := checker.Check(ctx, tenant)
	require.NoError(t, err)

	found := issuesOfType(report, IssueDuplicateSlug)
	require.Len(t, found, 2)
	for _, issue := range found {
		assert.False(t, issue.Repairable)
	}

	// Never auto-repaired
	res, err := checker.Repair(ctx, tenant)
	require.NoError(t, err)
	assert.Equal(t, 0, res.Repaired)
	assert.Equal(t, 2, res.Skipped)
}

func TestCheckIsTenantScoped(t *testing.T) {
	checker, store := newTestChecker(t)
	ctx := t.Context()
	now := time.Now()

	booking := &models.Booking{
		ID:          models.GenerateID("booking"),
		TenantID:    "other-tenant",
		PropertyID:  "property-gone",
		GuestName:   "Ghost",
		GuestEmail:  "ghost@example.com",
		CheckIn:     now,
		CheckOut:    now.AddDate(0, 0, 1),
		Guests:      1,
		TotalAmount: 100,
		Currency:    "ZAR",
		Status:      models.BookingStatusPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	require.NoError(t, store.Bookings().Create(ctx, booking))

	report, err := checker.Check(ctx, tenant)
	require.NoError(t, err)
	assert.Empty(t, report.Issues)
}
