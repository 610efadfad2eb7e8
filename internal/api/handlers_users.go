package api

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/conectone/platform/internal/auth"
	"github.com/conectone/platform/models"
	"github.com/conectone/platform/pkg/result"
)

// UpdateUserRequest represents a user update request
type UpdateUserRequest struct {
	Email   *string       `json:"email,omitempty"`
	Name    *string       `json:"name,omitempty"`
	Roles   []models.Role `json:"roles,omitempty"`
	Enabled *bool         `json:"enabled,omitempty"`
}

// ChangePasswordRequest represents a password change request
type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required,min=8"`
}

// APIKeyResponse carries a freshly generated API key. The clear value is
// returned exactly once.
type APIKeyResponse struct {
	APIKey string `json:"api_key"`
}

// listUsers handles GET /api/v1/users
// @Summary List users
// @Description Page through the tenant's user accounts (admin only)
// @Tags Users
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number (1-based)"
// @Param page_size query int false "Page size"
// @Param search query string false "Search username, email and name"
// @Success 200 {object} result.PaginatedResult[UserResponse] "Page of users"
// @Failure 401 {object} APIError "Unauthorized"
// @Failure 403 {object} APIError "Forbidden"
// @Router /users [get]
func (s *Server) listUsers(c echo.Context) error {
	page, err := s.storage.PageUsers(c.Request().Context(), s.authMiddle.Tenant(c), parseParams(c))
	if err != nil {
		return InternalError("Failed to list users", err.Error())
	}

	users := make([]*UserResponse, len(page.Data))
	for i, u := range page.Data {
		users[i] = toUserResponse(u)
	}
	return c.JSON(http.StatusOK, result.PaginatedResult[*UserResponse]{
		Succeeded:   true,
		Data:        users,
		CurrentPage: page.CurrentPage,
		PageSize:    page.PageSize,
		TotalPages:  page.TotalPages,
		TotalCount:  page.TotalCount,
	})
}

// getUser handles GET /api/v1/users/:id
// @Summary Get user
// @Description Get a single user account (admin only)
// @Tags Users
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Success 200 {object} UserResponse "User"
// @Failure 404 {object} APIError "Not found"
// @Router /users/{id} [get]
func (s *Server) getUser(c echo.Context) error {
	id := c.Param("id")
	user, err := s.storage.GetUser(c.Request().Context(), s.authMiddle.Tenant(c), id)
	if err != nil {
		return storageError(err, "User", id)
	}
	return c.JSON(http.StatusOK, toUserResponse(user))
}

// updateUser handles PUT /api/v1/users/:id
// @Summary Update user
// @Description Update a user's profile, roles or enabled flag (admin only)
// @Tags Users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Param user body UpdateUserRequest true "Fields to update"
// @Success 200 {object} UserResponse "Updated user"
// @Failure 400 {object} APIError "Bad request"
// @Failure 404 {object} APIError "Not found"
// @Router /users/{id} [put]
func (s *Server) updateUser(c echo.Context) error {
	id := c.Param("id")
	ctx := c.Request().Context()
	tenant := s.authMiddle.Tenant(c)

	var req UpdateUserRequest
	if err := c.Bind(&req); err != nil {
		return BadRequestError("Invalid request body", err.Error())
	}

	user, err := s.storage.GetUser(ctx, tenant, id)
	if err != nil {
		return storageError(err, "User", id)
	}

	if req.Email != nil {
		user.Email = *req.Email
	}
	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Roles != nil {
		user.Roles = req.Roles
	}
	if req.Enabled != nil {
		user.Enabled = *req.Enabled
	}

	if err := s.storage.UpdateUser(ctx, user); err != nil {
		return storageError(err, "User", id)
	}
	return c.JSON(http.StatusOK, toUserResponse(user))
}

// deleteUser handles DELETE /api/v1/users/:id
// @Summary Delete user
// @Description Remove a user account (admin only)
// @Tags Users
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Success 200 {object} MessageResponse "Deleted"
// @Failure 404 {object} APIError "Not found"
// @Router /users/{id} [delete]
func (s *Server) deleteUser(c echo.Context) error {
	id := c.Param("id")

	// Admins cannot delete themselves
	if userID, ok := auth.GetUserID(c); ok && userID == id {
		return BadRequestError("Cannot delete own account", "use another admin account")
	}

	if err := s.storage.DeleteUser(c.Request().Context(), s.authMiddle.Tenant(c), id); err != nil {
		return storageError(err, "User", id)
	}
	return c.JSON(http.StatusOK, MessageResponse{Message: "user deleted", ID: id})
}

// changePassword handles POST /api/v1/users/password
// @Summary Change password
// @Description Change the current user's password
// @Tags Users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param password body ChangePasswordRequest true "Current and new password"
// @Success 200 {object} MessageResponse "Password changed"
// @Failure 400 {object} APIError "Bad request"
// @Failure 401 {object} APIError "Unauthorized"
// @Router /users/password [post]
func (s *Server) changePassword(c echo.Context) error {
	claims, ok := auth.GetClaims(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
	}

	var req ChangePasswordRequest
	if err := c.Bind(&req); err != nil {
		return BadRequestError("Invalid request body", err.Error())
	}
	if len(req.NewPassword) < 8 {
		return BadRequestError("Invalid password", "new password must be at least 8 characters")
	}

	ctx := c.Request().Context()
	user, err := s.storage.GetUser(ctx, claims.TenantID, claims.UserID)
	if err != nil {
		return storageError(err, "User", claims.UserID)
	}

	if err := auth.ComparePassword(req.CurrentPassword, user.PasswordHash); err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "current password is incorrect")
	}

	hash, err := auth.HashPassword(req.NewPassword)
	if err != nil {
		return InternalError("Failed to hash password", err.Error())
	}
	user.PasswordHash = hash

	if err := s.storage.UpdateUser(ctx, user); err != nil {
		return storageError(err, "User", user.ID)
	}

	// Password change invalidates every refresh token
	if err := s.storage.RevokeRefreshTokens(ctx, user.ID); err != nil {
		return InternalError("Failed to revoke refresh tokens", err.Error())
	}

	s.logAuditEvent(c, user.ID, user.Username, "password_changed", "user", true, "")
	return c.JSON(http.StatusOK, MessageResponse{Message: "password changed"})
}

// generateAPIKey handles POST /api/v1/users/api-keys
// @Summary Generate API key
// @Description Generate a new API key for the current user; the clear value is returned once
// @Tags Users
// @Produce json
// @Security BearerAuth
// @Success 201 {object} APIKeyResponse "New API key"
// @Failure 401 {object} APIError "Unauthorized"
// @Router /users/api-keys [post]
func (s *Server) generateAPIKey(c echo.Context) error {
	claims, ok := auth.GetClaims(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
	}

	ctx := c.Request().Context()
	user, err := s.storage.GetUser(ctx, claims.TenantID, claims.UserID)
	if err != nil {
		return storageError(err, "User", claims.UserID)
	}

	key, err := auth.GenerateAPIKey()
	if err != nil {
		return InternalError("Failed to generate API key", err.Error())
	}
	hash, err := auth.HashAPIKey(key)
	if err != nil {
		return InternalError("Failed to hash API key", err.Error())
	}

	user.APIKeyHashes = append(user.APIKeyHashes, hash)
	if err := s.storage.UpdateUser(ctx, user); err != nil {
		return storageError(err, "User", user.ID)
	}

	return c.JSON(http.StatusCreated, APIKeyResponse{APIKey: key})
}
