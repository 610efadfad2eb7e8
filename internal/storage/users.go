package storage

import (
	"context"
	"time"

	"github.com/conectone/platform/models"
	"github.com/conectone/platform/pkg/result"
)

// Users returns the user repository.
func (s *Storage) Users() *Repository[models.User] {
	return NewRepository[models.User](s.db)
}

// GetUser retrieves a user by ID within a tenant.
func (s *Storage) GetUser(ctx context.Context, tenantID, id string) (*models.User, error) {
	return s.Users().GetByID(ctx, tenantID, id)
}

// GetUserByUsername retrieves a user by username within a tenant.
func (s *Storage) GetUserByUsername(ctx context.Context, tenantID, username string) (*models.User, error) {
	return s.Users().GetOne(ctx, TenantSpec(tenantID).Where("username = ?", username))
}

// GetUserByEmail retrieves a user by email within a tenant.
func (s *Storage) GetUserByEmail(ctx context.Context, tenantID, email string) (*models.User, error) {
	return s.Users().GetOne(ctx, TenantSpec(tenantID).Where("email = ?", email))
}

// CreateUser inserts a new user after checking username and email are free
// within the tenant.
func (s *Storage) CreateUser(ctx context.Context, user *models.User) error {
	taken, err := s.Users().Exists(ctx, TenantSpec(user.TenantID).
		Where("username = ? OR email = ?", user.Username, user.Email))
	if err != nil {
		return err
	}
	if taken {
		return ErrDuplicate
	}
	return s.Users().Create(ctx, user)
}

// UpdateUser writes user changes.
func (s *Storage) UpdateUser(ctx context.Context, user *models.User) error {
	user.UpdatedAt = time.Now()
	return s.Users().Update(ctx, user)
}

// DeleteUser removes a user within a tenant.
func (s *Storage) DeleteUser(ctx context.Context, tenantID, id string) error {
	n, err := s.Users().Delete(ctx, TenantSpec(tenantID).Where("id = ?", id))
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// PageUsers returns a page of tenant users, newest first, optionally
// filtered by a search term over username, email and name.
func (s *Storage) PageUsers(ctx context.Context, tenantID string, params result.RequestParameters) (result.PaginatedResult[*models.User], error) {
	spec := TenantSpec(tenantID).Order("created_at DESC")
	if params.SearchTerm != "" {
		term := "%" + params.SearchTerm + "%"
		spec.Where("(username LIKE ? OR email LIKE ? OR name LIKE ?)", term, term, term)
	}
	return s.Users().Page(ctx, spec, params)
}

// RefreshTokens returns the refresh token repository.
func (s *Storage) RefreshTokens() *Repository[models.RefreshToken] {
	return NewRepository[models.RefreshToken](s.db)
}

// SaveRefreshToken stores a hashed refresh token.
func (s *Storage) SaveRefreshToken(ctx context.Context, token *models.RefreshToken) error {
	return s.RefreshTokens().Create(ctx, token)
}

// GetRefreshTokensByUser lists unrevoked, unexpired tokens for a user.
func (s *Storage) GetRefreshTokensByUser(ctx context.Context, userID string) ([]*models.RefreshToken, error) {
	return s.RefreshTokens().List(ctx, NewSpec("user_id = ?", userID).
		Where("revoked = ?", false).
		Where("expires_at > ?", time.Now()))
}

// RevokeRefreshTokens revokes every token for a user (logout).
func (s *Storage) RevokeRefreshTokens(ctx context.Context, userID string) error {
	_, err := s.db.NewUpdate().
		Model((*models.RefreshToken)(nil)).
		Set("revoked = ?", true).
		Where("user_id = ?", userID).
		Exec(ctx)
	return err
}

// DeleteExpiredRefreshTokens removes tokens past their expiry.
func (s *Storage) DeleteExpiredRefreshTokens(ctx context.Context) (int64, error) {
	return s.RefreshTokens().Delete(ctx, NewSpec("expires_at < ?", time.Now()))
}

// SaveAuditLog stores an audit record. Failures here must not fail the
// request that triggered them; callers log and continue.
func (s *Storage) SaveAuditLog(ctx context.Context, entry *models.AuditLog) error {
	return NewRepository[models.AuditLog](s.db).Create(ctx, entry)
}
