// Package integrity scans a tenant's data for referential problems the
// schema alone cannot prevent (SQLite deployments run without enforced
// foreign keys across every driver) and optionally repairs them.
package integrity

import (
	"context"
	"fmt"
	"time"

	"github.com/conectone/platform/internal/storage"
	"github.com/conectone/platform/models"
)

// Issue types found by a scan.
const (
	IssueOrphanedBooking = "orphaned_booking" // booking references a missing property
	IssueOrphanedStudent = "orphaned_student" // student references a missing school
	IssueOrphanedProduct = "orphaned_product" // product references a missing category
	IssueOrphanedPayment = "orphaned_payment" // payment references a missing booking
	IssueOverCapacity    = "over_capacity"    // school enrolment exceeds capacity
	IssueDuplicateSlug   = "duplicate_slug"   // two records of one resource share a slug
)

// Issue is a single integrity finding.
type Issue struct {
	Type     string `json:"type"`
	Resource string `json:"resource"`
	ID       string `json:"id"`
	Detail   string `json:"detail"`
	// Repairable reports whether Repair can fix this issue automatically
	Repairable bool `json:"repairable"`
}

// Report summarises a scan.
type Report struct {
	TenantID  string        `json:"tenant_id"`
	ScannedAt time.Time     `json:"scanned_at"`
	Duration  time.Duration `json:"duration_ns"`
	Scanned   int           `json:"scanned"`
	Issues    []Issue       `json:"issues"`

	// HealthScore is 100 minus a point per issue, floored at zero
	HealthScore int `json:"health_score"`
}

// RepairResult summarises a repair run.
type RepairResult struct {
	TenantID string  `json:"tenant_id"`
	Repaired int     `json:"repaired"`
	Skipped  int     `json:"skipped"`
	Issues   []Issue `json:"issues"`
}

// Checker runs integrity scans against storage.
type Checker struct {
	storage *storage.Storage
}

// NewChecker creates a Checker.
func NewChecker(store *storage.Storage) *Checker {
	return &Checker{storage: store}
}

// Check scans one tenant's data and returns a report. The scan never
// mutates anything.
func (c *Checker) Check(ctx context.Context, tenantID string) (*Report, error) {
	start := time.Now()
	report := &Report{
		TenantID:  tenantID,
		ScannedAt: start,
		Issues:    []Issue{},
	}

	scans := []func(context.Context, string, *Report) error{
		c.scanBookings,
		c.scanStudents,
		c.scanProducts,
		c.scanPayments,
		c.scanSchoolCapacity,
		c.scanDuplicateSlugs,
	}
	for _, scan := range scans {
		if err := scan(ctx, tenantID, report); err != nil {
			return nil, err
		}
	}

	report.Duration = time.Since(start)
	report.HealthScore = 100 - len(report.Issues)
	if report.HealthScore < 0 {
		report.HealthScore = 0
	}
	return report, nil
}

// Repair fixes the repairable issues from a fresh scan: orphaned bookings
// and payments are cancelled/failed, orphaned products lose their dangling
// category reference, orphaned students are marked withdrawn. Over-capacity
// and duplicate-key findings are reported but never auto-repaired.
func (c *Checker) Repair(ctx context.Context, tenantID string) (*RepairResult, error) {
	report, err := c.Check(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	res := &RepairResult{TenantID: tenantID, Issues: report.Issues}
	for _, issue := range report.Issues {
		if !issue.Repairable {
			res.Skipped++
			continue
		}
		if err := c.repairIssue(ctx, tenantID, issue); err != nil {
			return res, fmt.Errorf("failed to repair %s %s: %w", issue.Type, issue.ID, err)
		}
		res.Repaired++
	}
	return res, nil
}

func (c *Checker) repairIssue(ctx context.Context, tenantID string, issue Issue) error {
	switch issue.Type {
	case IssueOrphanedBooking:
		b, err := c.storage.Bookings().GetByID(ctx, tenantID, issue.ID)
		if err != nil {
			return err
		}
		b.Status = models.BookingStatusCancelled
		b.UpdatedAt = time.Now()
		return c.storage.Bookings().Update(ctx, b)

	case IssueOrphanedStudent:
		st, err := c.storage.Students().GetByID(ctx, tenantID, issue.ID)
		if err != nil {
			return err
		}
		st.Status = models.StudentStatusWithdrawn
		st.UpdatedAt = time.Now()
		return c.storage.Students().Update(ctx, st)

	case IssueOrphanedProduct:
		p, err := c.storage.Products().GetByID(ctx, tenantID, issue.ID)
		if err != nil {
			return err
		}
		p.CategoryID = ""
		p.UpdatedAt = time.Now()
		return c.storage.Products().Update(ctx, p)

	case IssueOrphanedPayment:
		p, err := c.storage.Payments().GetByID(ctx, tenantID, issue.ID)
		if err != nil {
			return err
		}
		p.Status = models.PaymentStatusFailed
		p.UpdatedAt = time.Now()
		return c.storage.Payments().Update(ctx, p)
	}
	return fmt.Errorf("no repair for issue type %s", issue.Type)
}

func (c *Checker) scanBookings(ctx context.Context, tenantID string, report *Report) error {
	bookings, err := c.storage.Bookings().List(ctx, storage.TenantSpec(tenantID))
	if err != nil {
		return err
	}
	ids, err := c.propertyIDs(ctx, tenantID)
	if err != nil {
		return err
	}
	for _, b := range bookings {
		report.Scanned++
		if b.Status == models.BookingStatusCancelled || b.Status == models.BookingStatusExpired {
			continue
		}
		if !ids[b.PropertyID] {
			report.Issues = append(report.Issues, Issue{
				Type:       IssueOrphanedBooking,
				Resource:   "booking",
				ID:         b.ID,
				Detail:     fmt.Sprintf("references missing property %s", b.PropertyID),
				Repairable: true,
			})
		}
	}
	return nil
}

func (c *Checker) scanStudents(ctx context.Context, tenantID string, report *Report) error {
	students, err := c.storage.Students().List(ctx, storage.TenantSpec(tenantID))
	if err != nil {
		return err
	}
	schools, err := c.storage.Schools().List(ctx, storage.TenantSpec(tenantID))
	if err != nil {
		return err
	}
	ids := make(map[string]bool, len(schools))
	for _, sc := range schools {
		ids[sc.ID] = true
	}
	for _, st := range students {
		report.Scanned++
		if st.Status == models.StudentStatusWithdrawn {
			continue
		}
		if !ids[st.SchoolID] {
			report.Issues = append(report.Issues, Issue{
				Type:       IssueOrphanedStudent,
				Resource:   "student",
				ID:         st.ID,
				Detail:     fmt.Sprintf("references missing school %s", st.SchoolID),
				Repairable: true,
			})
		}
	}
	return nil
}

func (c *Checker) scanProducts(ctx context.Context, tenantID string, report *Report) error {
	products, err := c.storage.Products().List(ctx, storage.TenantSpec(tenantID))
	if err != nil {
		return err
	}
	cats, err := c.storage.Categories().List(ctx, storage.TenantSpec(tenantID))
	if err != nil {
		return err
	}
	ids := make(map[string]bool, len(cats))
	for _, cat := range cats {
		ids[cat.ID] = true
	}
	for _, p := range products {
		report.Scanned++
		if p.CategoryID == "" {
			continue
		}
		if !ids[p.CategoryID] {
			report.Issues = append(report.Issues, Issue{
				Type:       IssueOrphanedProduct,
				Resource:   "product",
				ID:         p.ID,
				Detail:     fmt.Sprintf("references missing category %s", p.CategoryID),
				Repairable: true,
			})
		}
	}
	return nil
}

func (c *Checker) scanPayments(ctx context.Context, tenantID string, report *Report) error {
	payments, err := c.storage.Payments().List(ctx, storage.TenantSpec(tenantID))
	if err != nil {
		return err
	}
	bookings, err := c.storage.Bookings().List(ctx, storage.TenantSpec(tenantID))
	if err != nil {
		return err
	}
	ids := make(map[string]bool, len(bookings))
	for _, b := range bookings {
		ids[b.ID] = true
	}
	for _, p := range payments {
		report.Scanned++
		if p.Status == models.PaymentStatusFailed {
			continue
		}
		if !ids[p.BookingID] {
			report.Issues = append(report.Issues, Issue{
				Type:       IssueOrphanedPayment,
				Resource:   "payment",
				ID:         p.ID,
				Detail:     fmt.Sprintf("references missing booking %s", p.BookingID),
				Repairable: true,
			})
		}
	}
	return nil
}

func (c *Checker) scanSchoolCapacity(ctx context.Context, tenantID string, report *Report) error {
	schools, err := c.storage.Schools().List(ctx, storage.TenantSpec(tenantID))
	if err != nil {
		return err
	}
	for _, sc := range schools {
		report.Scanned++
		if sc.Capacity <= 0 {
			continue
		}
		enrolled, err := c.storage.Students().Count(ctx, storage.TenantSpec(tenantID).
			Where("school_id = ?", sc.ID).
			Where("status = ?", models.StudentStatusEnrolled))
		if err != nil {
			return err
		}
		if enrolled > sc.Capacity {
			report.Issues = append(report.Issues, Issue{
				Type:     IssueOverCapacity,
				Resource: "school",
				ID:       sc.ID,
				Detail:   fmt.Sprintf("%d enrolled, capacity %d", enrolled, sc.Capacity),
				// Deciding which students to withdraw is a human call
				Repairable: false,
			})
		}
	}
	return nil
}

// scanDuplicateSlugs finds slug collisions within a tenant. The stores
// reserve slugs on create, so collisions only appear after out-of-band
// writes. Which record keeps the slug is a human call, so these are
// never auto-repaired.
func (c *Checker) scanDuplicateSlugs(ctx context.Context, tenantID string, report *Report) error {
	type slugged struct {
		resource string
		id       string
		slug     string
	}

	var records []slugged

	props, err := c.storage.Properties().List(ctx, storage.TenantSpec(tenantID))
	if err != nil {
		return err
	}
	for _, p := range props {
		records = append(records, slugged{"property", p.ID, p.Slug})
	}

	schools, err := c.storage.Schools().List(ctx, storage.TenantSpec(tenantID))
	if err != nil {
		return err
	}
	for _, sc := range schools {
		records = append(records, slugged{"school", sc.ID, sc.Slug})
	}

	adverts, err := c.storage.Adverts().List(ctx, storage.TenantSpec(tenantID))
	if err != nil {
		return err
	}
	for _, ad := range adverts {
		records = append(records, slugged{"advert", ad.ID, ad.Slug})
	}

	posts, err := c.storage.Posts().List(ctx, storage.TenantSpec(tenantID))
	if err != nil {
		return err
	}
	for _, p := range posts {
		records = append(records, slugged{"post", p.ID, p.Slug})
	}

	cats, err := c.storage.Categories().List(ctx, storage.TenantSpec(tenantID))
	if err != nil {
		return err
	}
	for _, cat := range cats {
		records = append(records, slugged{"category", cat.ID, cat.Slug})
	}

	// Products are keyed by SKU rather than slug; same collision rule
	products, err := c.storage.Products().List(ctx, storage.TenantSpec(tenantID))
	if err != nil {
		return err
	}
	for _, p := range products {
		records = append(records, slugged{"product", p.ID, p.SKU})
	}

	seen := make(map[string]string, len(records))
	for _, r := range records {
		report.Scanned++
		if r.slug == "" {
			continue
		}
		key := r.resource + "/" + r.slug
		if firstID, ok := seen[key]; ok {
			report.Issues = append(report.Issues, Issue{
				Type:       IssueDuplicateSlug,
				Resource:   r.resource,
				ID:         r.id,
				Detail:     fmt.Sprintf("key %q already used by %s %s", r.slug, r.resource, firstID),
				Repairable: false,
			})
			continue
		}
		seen[key] = r.id
	}
	return nil
}

func (c *Checker) propertyIDs(ctx context.Context, tenantID string) (map[string]bool, error) {
	props, err := c.storage.Properties().List(ctx, storage.TenantSpec(tenantID))
	if err != nil {
		return nil, err
	}
	ids := make(map[string]bool, len(props))
	for _, p := range props {
		ids[p.ID] = true
	}
	return ids, nil
}
