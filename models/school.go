package models

import (
	"time"

	"github.com/uptrace/bun"
)

// School statuses.
const (
	SchoolStatusActive   = "active"
	SchoolStatusInactive = "inactive"
)

// School represents an educational institution managed by a tenant.
type School struct {
	bun.BaseModel `bun:"table:schools,alias:s" json:"-"`

	ID       string `bun:"id,pk" json:"id"`
	TenantID string `bun:"tenant_id,notnull" json:"tenant_id"`

	Name        string `bun:"name,notnull" json:"name" validate:"required,max=200"`
	Slug        string `bun:"slug,notnull" json:"slug"`
	City        string `bun:"city" json:"city"`
	CountryCode string `bun:"country_code" json:"country_code" validate:"omitempty,len=2"`
	Email       string `bun:"email" json:"email" validate:"omitempty,email"`
	Phone       string `bun:"phone" json:"phone"`

	// Capacity is the maximum enrolment; 0 means unbounded
	Capacity int `bun:"capacity" json:"capacity" validate:"min=0"`

	Status    string    `bun:"status,notnull" json:"status"`
	CreatedAt time.Time `bun:"created_at,notnull" json:"created_at"`
	UpdatedAt time.Time `bun:"updated_at,notnull" json:"updated_at"`

	Students []*Student `bun:"rel:has-many,join:id=school_id" json:"students,omitempty"`
}

// Student statuses.
const (
	StudentStatusEnrolled  = "enrolled"
	StudentStatusGraduated = "graduated"
	StudentStatusWithdrawn = "withdrawn"
)

// Student represents a learner enrolled at a school.
type Student struct {
	bun.BaseModel `bun:"table:students,alias:st" json:"-"`

	ID       string `bun:"id,pk" json:"id"`
	TenantID string `bun:"tenant_id,notnull" json:"tenant_id"`

	SchoolID string  `bun:"school_id,notnull" json:"school_id" validate:"required"`
	School   *School `bun:"rel:belongs-to,join:school_id=id" json:"school,omitempty"`

	FirstName   string     `bun:"first_name,notnull" json:"first_name" validate:"required,max=100"`
	LastName    string     `bun:"last_name,notnull" json:"last_name" validate:"required,max=100"`
	Email       string     `bun:"email" json:"email" validate:"omitempty,email"`
	DateOfBirth *time.Time `bun:"date_of_birth" json:"date_of_birth,omitempty"`
	Grade       string     `bun:"grade" json:"grade"`

	Status    string    `bun:"status,notnull" json:"status"`
	CreatedAt time.Time `bun:"created_at,notnull" json:"created_at"`
	UpdatedAt time.Time `bun:"updated_at,notnull" json:"updated_at"`
}
