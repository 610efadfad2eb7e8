package models

import (
	"time"

	"github.com/uptrace/bun"
)

// Advert statuses.
const (
	AdvertStatusDraft     = "draft"
	AdvertStatusPublished = "published"
	AdvertStatusExpired   = "expired"
)

// Advert is a classified advertisement. Published adverts expire automatically
// once ExpiresAt passes (see internal/scheduler).
type Advert struct {
	bun.BaseModel `bun:"table:adverts,alias:ad" json:"-"`

	ID       string `bun:"id,pk" json:"id"`
	TenantID string `bun:"tenant_id,notnull" json:"tenant_id"`

	Title    string `bun:"title,notnull" json:"title" validate:"required,max=200"`
	Slug     string `bun:"slug,notnull" json:"slug"`
	Body     string `bun:"body" json:"body"`
	Category string `bun:"category" json:"category"`

	// Price in minor currency units; 0 means "price on request"
	Price    int64  `bun:"price" json:"price" validate:"min=0"`
	Currency string `bun:"currency" json:"currency" validate:"omitempty,len=3"`

	ContactEmail string `bun:"contact_email" json:"contact_email" validate:"omitempty,email"`

	Status      string     `bun:"status,notnull" json:"status"`
	PublishedAt *time.Time `bun:"published_at" json:"published_at,omitempty"`
	ExpiresAt   *time.Time `bun:"expires_at" json:"expires_at,omitempty"`

	CreatedAt time.Time `bun:"created_at,notnull" json:"created_at"`
	UpdatedAt time.Time `bun:"updated_at,notnull" json:"updated_at"`
}
