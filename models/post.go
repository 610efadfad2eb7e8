package models

import (
	"time"

	"github.com/uptrace/bun"
)

// Post statuses.
const (
	PostStatusDraft     = "draft"
	PostStatusPublished = "published"
)

// Post is a blog article. Slugs are unique per tenant.
type Post struct {
	bun.BaseModel `bun:"table:posts,alias:po" json:"-"`

	ID       string `bun:"id,pk" json:"id"`
	TenantID string `bun:"tenant_id,notnull" json:"tenant_id"`

	Title   string `bun:"title,notnull" json:"title" validate:"required,max=200"`
	Slug    string `bun:"slug,notnull" json:"slug"`
	Summary string `bun:"summary" json:"summary" validate:"max=500"`
	Body    string `bun:"body" json:"body"`

	// AuthorID references the user who wrote the post
	AuthorID string `bun:"author_id" json:"author_id"`

	Tags []string `bun:"tags,type:jsonb" json:"tags"`

	Status      string     `bun:"status,notnull" json:"status"`
	PublishedAt *time.Time `bun:"published_at" json:"published_at,omitempty"`

	CreatedAt time.Time `bun:"created_at,notnull" json:"created_at"`
	UpdatedAt time.Time `bun:"updated_at,notnull" json:"updated_at"`
}

// HasTag reports whether the post carries the given tag.
func (p *Post) HasTag(tag string) bool {
	for _, t := range p.Tags {
		if t == tag {
			return true
		}
	}
	return false
}
