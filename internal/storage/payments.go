package storage

import (
	"context"
	"time"

	"github.com/conectone/platform/models"
	"github.com/conectone/platform/pkg/result"
)

// Payments returns the payment repository.
func (s *Storage) Payments() *Repository[models.Payment] {
	return NewRepository[models.Payment](s.db)
}

// GetPayment retrieves a payment with its booking loaded.
func (s *Storage) GetPayment(ctx context.Context, tenantID, id string) (*models.Payment, error) {
	return s.Payments().GetOne(ctx, NewSpec("pay.tenant_id = ?", tenantID).
		Where("pay.id = ?", id).
		Relation("Booking"))
}

// GetPaymentByMerchantID finds the payment matching an ITN's m_payment_id.
// Lookup is global: the gateway does not know about tenants.
func (s *Storage) GetPaymentByMerchantID(ctx context.Context, merchantPaymentID string) (*models.Payment, error) {
	return s.Payments().GetOne(ctx, NewSpec("merchant_payment_id = ?", merchantPaymentID))
}

// CreatePayment inserts a payment record.
func (s *Storage) CreatePayment(ctx context.Context, p *models.Payment) error {
	if p.Status == "" {
		p.Status = models.PaymentStatusCreated
	}
	return s.Payments().Create(ctx, p)
}

// UpdatePayment writes payment changes.
func (s *Storage) UpdatePayment(ctx context.Context, p *models.Payment) error {
	p.UpdatedAt = time.Now()
	return s.Payments().Update(ctx, p)
}

// PagePayments returns a page of payments, newest first, bookings loaded.
func (s *Storage) PagePayments(ctx context.Context, tenantID, status string, params result.RequestParameters) (result.PaginatedResult[*models.Payment], error) {
	spec := NewSpec("pay.tenant_id = ?", tenantID).Relation("Booking").Order("pay.created_at DESC")
	if status != "" {
		spec.Where("pay.status = ?", status)
	}
	return s.Payments().Page(ctx, spec, params)
}
