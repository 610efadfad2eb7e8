package api

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/conectone/platform/internal/auth"
	"github.com/conectone/platform/models"
)

// LoginRequest represents a login request
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// RegisterRequest represents a user registration request
type RegisterRequest struct {
	Username string        `json:"username" validate:"required,min=3,max=50"`
	Password string        `json:"password" validate:"required,min=8"`
	Email    string        `json:"email" validate:"required,email"`
	Name     string        `json:"name"`
	Roles    []models.Role `json:"roles"`
}

// RefreshRequest represents a token refresh request
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
	UserID       string `json:"user_id" validate:"required"`
}

// LoginResponse represents a successful login response
type LoginResponse struct {
	User         *UserResponse `json:"user"`
	AccessToken  string        `json:"access_token"`
	RefreshToken string        `json:"refresh_token"`
	ExpiresAt    time.Time     `json:"expires_at"`
	TokenType    string        `json:"token_type"`
}

// UserResponse represents user data returned to client (without sensitive fields)
type UserResponse struct {
	ID          string        `json:"id"`
	TenantID    string        `json:"tenant_id"`
	Username    string        `json:"username"`
	Email       string        `json:"email"`
	Name        string        `json:"name"`
	Roles       []models.Role `json:"roles"`
	Enabled     bool          `json:"enabled"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
	LastLoginAt *time.Time    `json:"last_login_at,omitempty"`
}

// login handles POST /api/v1/auth/login
// @Summary User login
// @Description Authenticate user with username and password, returns JWT tokens
// @Tags Authentication
// @Accept json
// @Produce json
// @Param credentials body LoginRequest true "Login credentials"
// @Success 200 {object} LoginResponse "Successfully logged in"
// @Failure 400 {object} APIError "Bad request - Invalid credentials format"
// @Failure 401 {object} APIError "Unauthorized - Invalid username or password"
// @Failure 500 {object} APIError "Internal server error"
// @Router /auth/login [post]
func (s *Server) login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return BadRequestError("Invalid request body", err.Error())
	}

	ctx := c.Request().Context()
	tenant := s.authMiddle.Tenant(c)

	user, err := s.storage.GetUserByUsername(ctx, tenant, req.Username)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid username or password")
	}

	if !user.Enabled {
		return echo.NewHTTPError(http.StatusUnauthorized, "user account is disabled")
	}

	if err := auth.ComparePassword(req.Password, user.PasswordHash); err != nil {
		s.logAuditEvent(c, user.ID, user.Username, "login_failed", "", false, "invalid password")
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid username or password")
	}

	jwtService := auth.NewJWTService(s.config)
	tokenPair, refreshToken, err := jwtService.GenerateTokenPair(user)
	if err != nil {
		return InternalError("Failed to generate tokens", err.Error())
	}

	hashedRefreshToken, err := jwtService.HashRefreshToken(refreshToken)
	if err != nil {
		return InternalError("Failed to hash refresh token", err.Error())
	}

	refreshTokenModel := &models.RefreshToken{
		ID:        models.GenerateID("refresh"),
		UserID:    user.ID,
		TenantID:  user.TenantID,
		Token:     hashedRefreshToken,
		ExpiresAt: time.Now().Add(s.config.Security.RefreshTokenExpiration),
		CreatedAt: time.Now(),
		Revoked:   false,
	}

	if err := s.storage.SaveRefreshToken(ctx, refreshTokenModel); err != nil {
		return InternalError("Failed to save refresh token", err.Error())
	}

	// Update last login time
	now := time.Now()
	user.LastLoginAt = &now
	if err := s.storage.UpdateUser(ctx, user); err != nil {
		// Log warning but don't fail the login
		fmt.Printf("Warning: failed to update last login time: %v\n", err)
	}

	s.logAuditEvent(c, user.ID, user.Username, "login", "", true, "")

	return c.JSON(http.StatusOK, LoginResponse{
		User:         toUserResponse(user),
		AccessToken:  tokenPair.AccessToken,
		RefreshToken: tokenPair.RefreshToken,
		ExpiresAt:    tokenPair.ExpiresAt,
		TokenType:    tokenPair.TokenType,
	})
}

// register handles POST /api/v1/auth/register
// @Summary Register new user
// @Description Register a new user account in the caller's tenant (admin only)
// @Tags Authentication
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param user body RegisterRequest true "User registration data"
// @Success 201 {object} UserResponse "Successfully created user"
// @Failure 400 {object} APIError "Bad request - Invalid data or validation errors"
// @Failure 409 {object} APIError "Conflict - Username or email already exists"
// @Failure 500 {object} APIError "Internal server error"
// @Router /auth/register [post]
func (s *Server) register(c echo.Context) error {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return BadRequestError("Invalid request body", err.Error())
	}

	ctx := c.Request().Context()
	tenant := s.authMiddle.Tenant(c)

	passwordHash, err := auth.HashPassword(req.Password)
	if err != nil {
		return InternalError("Failed to hash password", err.Error())
	}

	roles := req.Roles
	if len(roles) == 0 {
		roles = []models.Role{models.RoleUser}
	}

	user := &models.User{
		ID:           models.GenerateID("user"),
		TenantID:     tenant,
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: passwordHash,
		Name:         req.Name,
		Roles:        roles,
		Enabled:      true,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	if err := s.storage.CreateUser(ctx, user); err != nil {
		return storageError(err, "User", user.ID)
	}

	if userID, ok := auth.GetUserID(c); ok {
		s.logAuditEvent(c, userID, req.Username, "user_created", "user", true, "")
	}

	return c.JSON(http.StatusCreated, toUserResponse(user))
}

// refresh handles POST /api/v1/auth/refresh
// @Summary Refresh access token
// @Description Get a new access token using a refresh token
// @Tags Authentication
// @Accept json
// @Produce json
// @Param refresh body RefreshRequest true "Refresh token"
// @Success 200 {object} LoginResponse "Successfully refreshed token"
// @Failure 400 {object} APIError "Bad request - Invalid refresh token format"
// @Failure 401 {object} APIError "Unauthorized - Invalid or expired refresh token"
// @Failure 500 {object} APIError "Internal server error"
// @Router /auth/refresh [post]
func (s *Server) refresh(c echo.Context) error {
	var req RefreshRequest
	if err := c.Bind(&req); err != nil {
		return BadRequestError("Invalid request body", err.Error())
	}
	if req.RefreshToken == "" || req.UserID == "" {
		return BadRequestError("Invalid request body", "refresh_token and user_id are required")
	}

	ctx := c.Request().Context()
	jwtService := auth.NewJWTService(s.config)

	// Refresh tokens are stored hashed; compare against every live token
	// for the user.
	tokens, err := s.storage.GetRefreshTokensByUser(ctx, req.UserID)
	if err != nil {
		return InternalError("Failed to load refresh tokens", err.Error())
	}

	var matched *models.RefreshToken
	for _, t := range tokens {
		if jwtService.CompareRefreshToken(req.RefreshToken, t.Token) == nil {
			matched = t
			break
		}
	}
	if matched == nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid or expired refresh token")
	}

	user, err := s.storage.GetUser(ctx, matched.TenantID, matched.UserID)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid or expired refresh token")
	}

	// Rotate: revoke old tokens, issue a fresh pair.
	if err := s.storage.RevokeRefreshTokens(ctx, user.ID); err != nil {
		return InternalError("Failed to revoke refresh tokens", err.Error())
	}

	tokenPair, refreshToken, err := jwtService.GenerateTokenPair(user)
	if err != nil {
		return InternalError("Failed to generate tokens", err.Error())
	}

	hashed, err := jwtService.HashRefreshToken(refreshToken)
	if err != nil {
		return InternalError("Failed to hash refresh token", err.Error())
	}
	if err := s.storage.SaveRefreshToken(ctx, &models.RefreshToken{
		ID:        models.GenerateID("refresh"),
		UserID:    user.ID,
		TenantID:  user.TenantID,
		Token:     hashed,
		ExpiresAt: time.Now().Add(s.config.Security.RefreshTokenExpiration),
		CreatedAt: time.Now(),
	}); err != nil {
		return InternalError("Failed to save refresh token", err.Error())
	}

	return c.JSON(http.StatusOK, LoginResponse{
		User:         toUserResponse(user),
		AccessToken:  tokenPair.AccessToken,
		RefreshToken: tokenPair.RefreshToken,
		ExpiresAt:    tokenPair.ExpiresAt,
		TokenType:    tokenPair.TokenType,
	})
}

// logout handles POST /api/v1/auth/logout
// @Summary Logout user
// @Description Revoke refresh tokens and logout user
// @Tags Authentication
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} MessageResponse "Successfully logged out"
// @Failure 401 {object} APIError "Unauthorized"
// @Failure 500 {object} APIError "Internal server error"
// @Router /auth/logout [post]
func (s *Server) logout(c echo.Context) error {
	userID, ok := auth.GetUserID(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
	}

	if err := s.storage.RevokeRefreshTokens(c.Request().Context(), userID); err != nil {
		return InternalError("Failed to revoke refresh tokens", err.Error())
	}

	if claims, ok := auth.GetClaims(c); ok {
		s.logAuditEvent(c, userID, claims.Username, "logout", "", true, "")
	}

	return c.JSON(http.StatusOK, MessageResponse{
		Message: "successfully logged out",
	})
}

// me handles GET /api/v1/auth/me
// @Summary Get current user
// @Description Get information about the currently authenticated user
// @Tags Authentication
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} UserResponse "Current user information"
// @Failure 401 {object} APIError "Unauthorized"
// @Failure 500 {object} APIError "Internal server error"
// @Router /auth/me [get]
func (s *Server) me(c echo.Context) error {
	claims, ok := auth.GetClaims(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
	}

	user, err := s.storage.GetUser(c.Request().Context(), claims.TenantID, claims.UserID)
	if err != nil {
		return storageError(err, "User", claims.UserID)
	}

	return c.JSON(http.StatusOK, toUserResponse(user))
}

// toUserResponse converts a User model to UserResponse (removes sensitive fields)
func toUserResponse(user *models.User) *UserResponse {
	return &UserResponse{
		ID:          user.ID,
		TenantID:    user.TenantID,
		Username:    user.Username,
		Email:       user.Email,
		Name:        user.Name,
		Roles:       user.Roles,
		Enabled:     user.Enabled,
		CreatedAt:   user.CreatedAt,
		UpdatedAt:   user.UpdatedAt,
		LastLoginAt: user.LastLoginAt,
	}
}

// logAuditEvent logs an authentication/authorization event
func (s *Server) logAuditEvent(c echo.Context, userID, username, action, resource string, success bool, errorMsg string) {
	auditLog := &models.AuditLog{
		TenantID:     s.authMiddle.Tenant(c),
		Timestamp:    time.Now(),
		UserID:       userID,
		Username:     username,
		Action:       action,
		Resource:     resource,
		Method:       c.Request().Method,
		Path:         c.Request().URL.Path,
		IPAddress:    c.RealIP(),
		UserAgent:    c.Request().UserAgent(),
		Success:      success,
		ErrorMessage: errorMsg,
	}

	if err := s.storage.SaveAuditLog(c.Request().Context(), auditLog); err != nil {
		// Log error but don't fail the request
		fmt.Printf("Warning: failed to save audit log: %v\n", err)
	}
}
