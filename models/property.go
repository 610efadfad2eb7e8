package models

import (
	"time"

	"github.com/uptrace/bun"
)

// Property types supported by the accommodation module.
const (
	PropertyTypeVilla      = "villa"
	PropertyTypeApartment  = "apartment"
	PropertyTypeGuesthouse = "guesthouse"
	PropertyTypeCottage    = "cottage"
	PropertyTypeHotel      = "hotel"
)

// Property statuses.
const (
	PropertyStatusActive   = "active"
	PropertyStatusInactive = "inactive"
	PropertyStatusArchived = "archived"
)

// Property represents a bookable accommodation listing.
//
// Nightly rates are stored in minor currency units (cents) to avoid floating
// point rounding; Currency is an ISO-4217 code.
//
// Example JSON representation:
//
//	{
//	  "id": "property-4f6b...",
//	  "name": "Seaview Villa",
//	  "slug": "seaview-villa",
//	  "type": "villa",
//	  "city": "Knysna",
//	  "country_code": "ZA",
//	  "sleeps": 6,
//	  "bedrooms": 3,
//	  "nightly_rate": 185000,
//	  "currency": "ZAR",
//	  "status": "active"
//	}
type Property struct {
	bun.BaseModel `bun:"table:properties,alias:p" json:"-"`

	ID       string `bun:"id,pk" json:"id"`
	TenantID string `bun:"tenant_id,notnull" json:"tenant_id"`

	// Name is the display name of the listing (required)
	Name string `bun:"name,notnull" json:"name" validate:"required,max=200"`

	// Slug is the URL-safe identifier, unique per tenant
	Slug string `bun:"slug,notnull" json:"slug"`

	// Type is one of the PropertyType* constants
	Type string `bun:"type,notnull" json:"type" validate:"required,oneof=villa apartment guesthouse cottage hotel"`

	Description string `bun:"description" json:"description"`
	Address     string `bun:"address" json:"address"`
	City        string `bun:"city" json:"city" validate:"required"`

	// CountryCode is the ISO-3166 alpha-2 country code
	CountryCode string `bun:"country_code" json:"country_code" validate:"omitempty,len=2"`

	// Sleeps is the maximum number of guests
	Sleeps   int `bun:"sleeps,notnull" json:"sleeps" validate:"min=1,max=50"`
	Bedrooms int `bun:"bedrooms" json:"bedrooms" validate:"min=0"`

	// NightlyRate is the per-night price in minor currency units
	NightlyRate int64  `bun:"nightly_rate,notnull" json:"nightly_rate" validate:"min=0"`
	Currency    string `bun:"currency,notnull" json:"currency" validate:"required,len=3"`

	Status    string    `bun:"status,notnull" json:"status"`
	CreatedAt time.Time `bun:"created_at,notnull" json:"created_at"`
	UpdatedAt time.Time `bun:"updated_at,notnull" json:"updated_at"`

	// Bookings are loaded on demand via Spec relations
	Bookings []*Booking `bun:"rel:has-many,join:id=property_id" json:"bookings,omitempty"`
}
