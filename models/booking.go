package models

import (
	"time"

	"github.com/uptrace/bun"
)

// Booking statuses. Pending bookings hold the dates until the hold window
// elapses or a payment confirms them.
const (
	BookingStatusPending   = "pending"
	BookingStatusConfirmed = "confirmed"
	BookingStatusCancelled = "cancelled"
	BookingStatusExpired   = "expired"
)

// Booking represents a stay reservation against a property.
//
// CheckIn and CheckOut are date-granular; CheckOut must be strictly after
// CheckIn. The storage layer rejects overlapping pending/confirmed bookings
// for the same property.
type Booking struct {
	bun.BaseModel `bun:"table:bookings,alias:b" json:"-"`

	ID       string `bun:"id,pk" json:"id"`
	TenantID string `bun:"tenant_id,notnull" json:"tenant_id"`

	PropertyID string    `bun:"property_id,notnull" json:"property_id" validate:"required"`
	Property   *Property `bun:"rel:belongs-to,join:property_id=id" json:"property,omitempty"`

	GuestName  string `bun:"guest_name,notnull" json:"guest_name" validate:"required,max=200"`
	GuestEmail string `bun:"guest_email,notnull" json:"guest_email" validate:"required,email"`

	CheckIn  time.Time `bun:"check_in,notnull" json:"check_in" validate:"required"`
	CheckOut time.Time `bun:"check_out,notnull" json:"check_out" validate:"required"`
	Guests   int       `bun:"guests,notnull" json:"guests" validate:"min=1"`

	// TotalAmount is the stay total in minor currency units
	TotalAmount int64  `bun:"total_amount,notnull" json:"total_amount"`
	Currency    string `bun:"currency,notnull" json:"currency"`

	Status string `bun:"status,notnull" json:"status"`

	// PaymentRef links the booking to a payment record once checkout starts
	PaymentRef string `bun:"payment_ref" json:"payment_ref,omitempty"`

	CreatedAt time.Time `bun:"created_at,notnull" json:"created_at"`
	UpdatedAt time.Time `bun:"updated_at,notnull" json:"updated_at"`
}

// Nights returns the length of the stay in nights.
func (b *Booking) Nights() int {
	return int(b.CheckOut.Sub(b.CheckIn).Hours() / 24)
}

// Overlaps reports whether the booking dates intersect the given range.
// Ranges are half-open: a check-out on another booking's check-in day is
// not an overlap.
func (b *Booking) Overlaps(checkIn, checkOut time.Time) bool {
	return b.CheckIn.Before(checkOut) && checkIn.Before(b.CheckOut)
}

// Blocking reports whether the booking holds its dates against new bookings.
func (b *Booking) Blocking() bool {
	return b.Status == BookingStatusPending || b.Status == BookingStatusConfirmed
}
