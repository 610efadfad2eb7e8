package models

import (
	"time"

	"github.com/uptrace/bun"
)

// Payment statuses mirror the PayFast payment_status values.
const (
	PaymentStatusCreated  = "created"
	PaymentStatusComplete = "COMPLETE"
	PaymentStatusFailed   = "FAILED"
	PaymentStatusPending  = "PENDING"
)

// Payment tracks a gateway checkout for a booking. RawITN keeps the last
// notification payload verbatim for dispute handling.
type Payment struct {
	bun.BaseModel `bun:"table:payments,alias:pay" json:"-"`

	ID       string `bun:"id,pk" json:"id"`
	TenantID string `bun:"tenant_id,notnull" json:"tenant_id"`

	BookingID string   `bun:"booking_id,notnull" json:"booking_id"`
	Booking   *Booking `bun:"rel:belongs-to,join:booking_id=id" json:"booking,omitempty"`

	// Gateway identifies the payment provider ("payfast")
	Gateway string `bun:"gateway,notnull" json:"gateway"`

	// MerchantPaymentID is the m_payment_id sent to the gateway
	MerchantPaymentID string `bun:"merchant_payment_id,notnull" json:"merchant_payment_id"`

	// GatewayPaymentID is the pf_payment_id returned by the gateway
	GatewayPaymentID string `bun:"gateway_payment_id" json:"gateway_payment_id,omitempty"`

	// Amount in minor currency units
	Amount   int64  `bun:"amount,notnull" json:"amount"`
	Currency string `bun:"currency,notnull" json:"currency"`

	Status string `bun:"status,notnull" json:"status"`

	// RawITN is the last instant transaction notification payload received
	RawITN string `bun:"raw_itn" json:"-"`

	CreatedAt time.Time `bun:"created_at,notnull" json:"created_at"`
	UpdatedAt time.Time `bun:"updated_at,notnull" json:"updated_at"`
}
