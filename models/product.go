package models

import (
	"time"

	"github.com/uptrace/bun"
)

// Product statuses.
const (
	ProductStatusActive       = "active"
	ProductStatusDiscontinued = "discontinued"
)

// Category groups products into a tree (Parent is nil for roots).
type Category struct {
	bun.BaseModel `bun:"table:categories,alias:ca" json:"-"`

	ID       string `bun:"id,pk" json:"id"`
	TenantID string `bun:"tenant_id,notnull" json:"tenant_id"`

	Name string `bun:"name,notnull" json:"name" validate:"required,max=200"`
	Slug string `bun:"slug,notnull" json:"slug"`

	ParentID *string   `bun:"parent_id" json:"parent_id,omitempty"`
	Parent   *Category `bun:"rel:belongs-to,join:parent_id=id" json:"parent,omitempty"`

	CreatedAt time.Time `bun:"created_at,notnull" json:"created_at"`
	UpdatedAt time.Time `bun:"updated_at,notnull" json:"updated_at"`
}

// Product is a catalog item. Prices are minor currency units.
type Product struct {
	bun.BaseModel `bun:"table:products,alias:pr" json:"-"`

	ID       string `bun:"id,pk" json:"id"`
	TenantID string `bun:"tenant_id,notnull" json:"tenant_id"`

	CategoryID string    `bun:"category_id" json:"category_id"`
	Category   *Category `bun:"rel:belongs-to,join:category_id=id" json:"category,omitempty"`

	// SKU is the stock keeping unit, unique per tenant
	SKU string `bun:"sku,notnull" json:"sku" validate:"required,max=64"`

	Name        string `bun:"name,notnull" json:"name" validate:"required,max=200"`
	Description string `bun:"description" json:"description"`

	Price    int64  `bun:"price,notnull" json:"price" validate:"min=0"`
	Currency string `bun:"currency,notnull" json:"currency" validate:"required,len=3"`
	Stock    int    `bun:"stock,notnull" json:"stock" validate:"min=0"`

	Status    string    `bun:"status,notnull" json:"status"`
	CreatedAt time.Time `bun:"created_at,notnull" json:"created_at"`
	UpdatedAt time.Time `bun:"updated_at,notnull" json:"updated_at"`
}
