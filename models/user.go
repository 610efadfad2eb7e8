// Package models defines the persistent entities and request/response shapes
// shared by every vertical module of the platform (accommodations, schools,
// adverts, blog, calendar, locations, catalog, payments and identity).
//
// All tenant-owned entities embed a TenantID column. Entities are mapped with
// Bun struct tags; the storage layer registers them in its model registry so
// schema creation and relation resolution work across dialects.
package models

import (
	"time"

	"github.com/uptrace/bun"
)

// Role names used for role-based access control.
const (
	RoleAdmin  = "admin"
	RoleUser   = "user"
	RoleViewer = "viewer"
)

// Role is a named access level carried in JWT claims.
type Role = string

// User represents a platform account within a tenant.
//
// Passwords are stored as bcrypt hashes, never in plain text. API keys are
// stored hashed as well; the clear value is only returned once at creation.
type User struct {
	bun.BaseModel `bun:"table:users,alias:u" json:"-"`

	// ID is the unique user identifier (user-<uuid>)
	ID string `bun:"id,pk" json:"id"`

	// TenantID scopes the account to a tenant
	TenantID string `bun:"tenant_id,notnull" json:"tenant_id"`

	// Username is unique per tenant
	Username string `bun:"username,notnull" json:"username"`

	Email        string `bun:"email,notnull" json:"email"`
	Name         string `bun:"name" json:"name"`
	PasswordHash string `bun:"password_hash,notnull" json:"-"`

	// Roles the user holds (admin, user, viewer)
	Roles []Role `bun:"roles,type:jsonb" json:"roles"`

	// APIKeyHashes holds bcrypt hashes of issued API keys
	APIKeyHashes []string `bun:"api_key_hashes,type:jsonb" json:"-"`

	Enabled     bool       `bun:"enabled,notnull,default:true" json:"enabled"`
	CreatedAt   time.Time  `bun:"created_at,notnull" json:"created_at"`
	UpdatedAt   time.Time  `bun:"updated_at,notnull" json:"updated_at"`
	LastLoginAt *time.Time `bun:"last_login_at" json:"last_login_at,omitempty"`
}

// HasRole reports whether the user holds the given role.
func (u *User) HasRole(role Role) bool {
	for _, r := range u.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// RefreshToken is a stored (hashed) refresh token issued at login.
type RefreshToken struct {
	bun.BaseModel `bun:"table:refresh_tokens,alias:rt" json:"-"`

	ID        string    `bun:"id,pk" json:"id"`
	UserID    string    `bun:"user_id,notnull" json:"user_id"`
	TenantID  string    `bun:"tenant_id,notnull" json:"tenant_id"`
	Token     string    `bun:"token,notnull" json:"-"`
	ExpiresAt time.Time `bun:"expires_at,notnull" json:"expires_at"`
	CreatedAt time.Time `bun:"created_at,notnull" json:"created_at"`
	Revoked   bool      `bun:"revoked,notnull,default:false" json:"revoked"`
}

// AuditLog records an authentication or data-changing event.
type AuditLog struct {
	bun.BaseModel `bun:"table:audit_logs,alias:al" json:"-"`

	ID           int64     `bun:"id,pk,autoincrement" json:"id"`
	TenantID     string    `bun:"tenant_id" json:"tenant_id"`
	Timestamp    time.Time `bun:"timestamp,notnull" json:"timestamp"`
	UserID       string    `bun:"user_id" json:"user_id"`
	Username     string    `bun:"username" json:"username"`
	Action       string    `bun:"action,notnull" json:"action"`
	Resource     string    `bun:"resource" json:"resource"`
	Method       string    `bun:"method" json:"method"`
	Path         string    `bun:"path" json:"path"`
	IPAddress    string    `bun:"ip_address" json:"ip_address"`
	UserAgent    string    `bun:"user_agent" json:"user_agent"`
	Success      bool      `bun:"success,notnull" json:"success"`
	ErrorMessage string    `bun:"error_message" json:"error_message,omitempty"`
}
