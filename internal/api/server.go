// Package api provides the HTTP API server for the platform. It uses the
// Echo framework to serve REST endpoints for every vertical module and a
// WebSocket feed of tenant-scoped entity change events.
package api

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
	"golang.org/x/time/rate"

	_ "github.com/conectone/platform/docs" // Import generated docs
	"github.com/conectone/platform/internal/auth"
	"github.com/conectone/platform/internal/config"
	"github.com/conectone/platform/internal/integrity"
	"github.com/conectone/platform/internal/storage"
	"github.com/conectone/platform/internal/validation"
	"github.com/conectone/platform/pkg/payfast"
)

// Server represents the platform API server.
type Server struct {
	echo       *echo.Echo
	storage    *storage.Storage
	config     *config.Config
	wsHub      *Hub // WebSocket hub for real-time updates
	authMiddle *auth.Middleware
	validator  *validation.Validator
	payfast    *payfast.Client
	integrity  *integrity.Checker
}

// debugLog logs a message only if debug mode is enabled in config
func (s *Server) debugLog(format string, args ...interface{}) {
	if s.config.Server.Debug {
		log.Printf(format, args...)
	}
}

// New creates a new API server instance.
func New(cfg *config.Config, store *storage.Storage) *Server {
	e := echo.New()

	e.HideBanner = true
	e.HidePort = true
	e.Debug = cfg.Server.Debug

	e.HTTPErrorHandler = HTTPErrorHandler

	hub := NewHub()
	authMiddle := auth.NewMiddleware(cfg)

	server := &Server{
		echo:       e,
		storage:    store,
		config:     cfg,
		wsHub:      hub,
		authMiddle: authMiddle,
		validator:  validation.New(),
		payfast: payfast.New(payfast.Config{
			MerchantID:  cfg.PayFast.MerchantID,
			MerchantKey: cfg.PayFast.MerchantKey,
			Passphrase:  cfg.PayFast.Passphrase,
			Sandbox:     cfg.PayFast.Sandbox,
			ReturnURL:   cfg.PayFast.ReturnURL,
			CancelURL:   cfg.PayFast.CancelURL,
			NotifyURL:   cfg.PayFast.NotifyURL,
		}),
		integrity: integrity.NewChecker(store),
	}

	// Start WebSocket hub in background
	go hub.Run()

	server.setupMiddleware()
	server.setupRoutes()

	return server
}

// setupMiddleware configures Echo middleware.
func (s *Server) setupMiddleware() {
	s.echo.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{
		Format: "[${time_rfc3339}] ${status} ${method} ${uri} (${latency_human})\n",
	}))

	s.echo.Use(middleware.Recover())

	s.echo.Use(SecurityHeaders)

	if len(s.config.Security.AllowedOrigins) > 0 {
		s.echo.Use(middleware.CORSWithConfig(middleware.CORSConfig{
			AllowOrigins: s.config.Security.AllowedOrigins,
			AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
			AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization, auth.TenantHeader},
		}))
	}

	s.echo.Use(middleware.RequestID())

	if s.config.Security.RateLimit > 0 {
		s.echo.Use(middleware.RateLimiter(middleware.NewRateLimiterMemoryStore(
			rate.Limit(s.config.Security.RateLimit),
		)))
	}

	s.echo.Use(ValidateContentType)
	s.echo.Use(ValidateAcceptHeader)
}

// setupRoutes configures API routes.
func (s *Server) setupRoutes() {
	// Health check
	s.echo.GET("/health", s.healthCheck)
	s.echo.GET("/", s.healthCheck)

	// Swagger UI documentation (public - but API endpoints are still protected)
	s.echo.GET("/docs/*", echoSwagger.WrapHandler)

	// API v1 group
	v1 := s.echo.Group("/api/v1")

	// Authentication routes
	authRoutes := v1.Group("/auth")
	authRoutes.POST("/login", s.login)
	authRoutes.POST("/register", s.register, s.authMiddle.RequireAuth, s.authMiddle.RequireAdmin)
	authRoutes.POST("/refresh", s.refresh)
	authRoutes.POST("/logout", s.logout, s.authMiddle.RequireAuth)
	authRoutes.GET("/me", s.me, s.authMiddle.RequireAuth)

	// User management routes
	users := v1.Group("/users", s.authMiddle.RequireAuth)
	users.GET("", s.listUsers, s.authMiddle.RequireAdmin)
	users.GET("/:id", s.getUser, ValidateIDFormat, s.authMiddle.RequireAdmin)
	users.PUT("/:id", s.updateUser, ValidateIDFormat, s.authMiddle.RequireAdmin)
	users.DELETE("/:id", s.deleteUser, ValidateIDFormat, s.authMiddle.RequireAdmin)
	users.POST("/password", s.changePassword)
	users.POST("/api-keys", s.generateAPIKey)

	// Accommodation routes
	properties := v1.Group("/properties", s.authMiddle.RequireAuth)
	properties.GET("", s.listProperties)
	properties.GET("/:id", s.getProperty, ValidateIDFormat)
	properties.GET("/:id/availability", s.getPropertyAvailability, ValidateIDFormat)
	properties.POST("", s.createProperty, s.authMiddle.RequireWrite)
	properties.PUT("/:id", s.updateProperty, ValidateIDFormat, s.authMiddle.RequireWrite)
	properties.DELETE("/:id", s.deleteProperty, ValidateIDFormat, s.authMiddle.RequireWrite)

	bookings := v1.Group("/bookings", s.authMiddle.RequireAuth)
	bookings.GET("", s.listBookings)
	bookings.GET("/:id", s.getBooking, ValidateIDFormat)
	bookings.POST("", s.createBooking, s.authMiddle.RequireWrite)
	bookings.POST("/:id/confirm", s.confirmBooking, ValidateIDFormat, s.authMiddle.RequireWrite)
	bookings.POST("/:id/cancel", s.cancelBooking, ValidateIDFormat, s.authMiddle.RequireWrite)

	// School routes
	schools := v1.Group("/schools", s.authMiddle.RequireAuth)
	schools.GET("", s.listSchools)
	schools.GET("/:id", s.getSchool, ValidateIDFormat)
	schools.POST("", s.createSchool, s.authMiddle.RequireWrite)
	schools.PUT("/:id", s.updateSchool, ValidateIDFormat, s.authMiddle.RequireWrite)
	schools.DELETE("/:id", s.deleteSchool, ValidateIDFormat, s.authMiddle.RequireWrite)
	schools.GET("/:id/students", s.listSchoolStudents, ValidateIDFormat)

	students := v1.Group("/students", s.authMiddle.RequireAuth)
	students.GET("", s.listStudents)
	students.GET("/:id", s.getStudent, ValidateIDFormat)
	students.POST("", s.createStudent, s.authMiddle.RequireWrite)
	students.PUT("/:id", s.updateStudent, ValidateIDFormat, s.authMiddle.RequireWrite)
	students.DELETE("/:id", s.deleteStudent, ValidateIDFormat, s.authMiddle.RequireWrite)

	// Advert routes
	adverts := v1.Group("/adverts", s.authMiddle.RequireAuth)
	adverts.GET("", s.listAdverts)
	adverts.GET("/:id", s.getAdvert, ValidateIDFormat)
	adverts.POST("", s.createAdvert, s.authMiddle.RequireWrite)
	adverts.PUT("/:id", s.updateAdvert, ValidateIDFormat, s.authMiddle.RequireWrite)
	adverts.DELETE("/:id", s.deleteAdvert, ValidateIDFormat, s.authMiddle.RequireWrite)
	adverts.POST("/:id/publish", s.publishAdvert, ValidateIDFormat, s.authMiddle.RequireWrite)
	adverts.POST("/:id/unpublish", s.unpublishAdvert, ValidateIDFormat, s.authMiddle.RequireWrite)

	// Blog routes
	posts := v1.Group("/posts", s.authMiddle.RequireAuth)
	posts.GET("", s.listPosts)
	posts.GET("/:id", s.getPost, ValidateIDFormat)
	posts.GET("/slug/:slug", s.getPostBySlug)
	posts.GET("/tag/:tag", s.listPostsByTag)
	posts.POST("", s.createPost, s.authMiddle.RequireWrite)
	posts.PUT("/:id", s.updatePost, ValidateIDFormat, s.authMiddle.RequireWrite)
	posts.DELETE("/:id", s.deletePost, ValidateIDFormat, s.authMiddle.RequireWrite)

	// Calendar routes
	events := v1.Group("/events", s.authMiddle.RequireAuth)
	events.GET("", s.listEvents)
	events.GET("/occurrences", s.listOccurrences)
	events.GET("/:id", s.getEvent, ValidateIDFormat)
	events.POST("", s.createEvent, s.authMiddle.RequireWrite)
	events.PUT("/:id", s.updateEvent, ValidateIDFormat, s.authMiddle.RequireWrite)
	events.DELETE("/:id", s.deleteEvent, ValidateIDFormat, s.authMiddle.RequireWrite)

	// Location reference data (read-only, any authenticated user)
	locations := v1.Group("/locations", s.authMiddle.RequireAuth)
	locations.GET("/countries", s.listCountries)
	locations.GET("/countries/:code", s.getCountry)
	locations.GET("/countries/:code/cities", s.listCitiesByCountry)
	locations.GET("/cities", s.listCities)

	// Catalog routes
	categories := v1.Group("/categories", s.authMiddle.RequireAuth)
	categories.GET("", s.listCategories)
	categories.POST("", s.createCategory, s.authMiddle.RequireWrite)
	categories.PUT("/:id", s.updateCategory, ValidateIDFormat, s.authMiddle.RequireWrite)
	categories.DELETE("/:id", s.deleteCategory, ValidateIDFormat, s.authMiddle.RequireWrite)

	products := v1.Group("/products", s.authMiddle.RequireAuth)
	products.GET("", s.listProducts)
	products.GET("/export.csv", s.exportProductsCSV)
	products.GET("/export.xlsx", s.exportProductsExcel)
	products.POST("/import", s.importProducts, s.authMiddle.RequireWrite)
	products.GET("/:id", s.getProduct, ValidateIDFormat)
	products.POST("", s.createProduct, s.authMiddle.RequireWrite)
	products.PUT("/:id", s.updateProduct, ValidateIDFormat, s.authMiddle.RequireWrite)
	products.DELETE("/:id", s.deleteProduct, ValidateIDFormat, s.authMiddle.RequireWrite)

	// Payment routes. The notify endpoint is public: PayFast calls it
	// server-to-server and authenticates via the ITN signature.
	v1.POST("/payments/notify", s.paymentNotify)
	payments := v1.Group("/payments", s.authMiddle.RequireAuth)
	payments.GET("", s.listPayments)
	payments.GET("/:id", s.getPayment, ValidateIDFormat)
	payments.POST("/checkout", s.checkout, s.authMiddle.RequireWrite)

	// Export routes
	exports := v1.Group("/exports", s.authMiddle.RequireAuth)
	exports.GET("/bookings.csv", s.exportBookingsCSV)

	// Statistics and integrity
	stats := v1.Group("/stats", s.authMiddle.RequireAuth)
	stats.GET("", s.getStatistics)

	integrityRoutes := v1.Group("/integrity", s.authMiddle.RequireAuth)
	integrityRoutes.GET("/check", s.integrityCheck, s.authMiddle.RequireAdmin)
	integrityRoutes.POST("/repair", s.integrityRepair, s.authMiddle.RequireAdmin)

	// WebSocket routes
	ws := v1.Group("/ws", s.authMiddle.RequireAuth)
	ws.GET("/events", s.handleWebSocket)
	ws.GET("/stats", s.getWebSocketStats)
}

// Start starts the HTTP server.
func (s *Server) Start() error {
	addr := fmt.Sprintf("%s:%d", s.config.Server.Host, s.config.Server.Port)

	fmt.Printf("Starting ConectOne API Server\n")
	fmt.Printf("   Address: http://%s\n", addr)
	fmt.Printf("   Database: %s\n", s.config.Database.Driver)
	fmt.Printf("   Debug: %v\n", s.config.Server.Debug)
	fmt.Println()

	// Configure server timeouts
	s.echo.Server.ReadTimeout = s.config.Server.ReadTimeout
	s.echo.Server.WriteTimeout = s.config.Server.WriteTimeout

	if s.config.Server.TLSEnabled {
		return s.echo.StartTLS(addr, s.config.Server.TLSCert, s.config.Server.TLSKey)
	}

	return s.echo.Start(addr)
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	fmt.Println("\nShutting down ConectOne API Server...")

	if err := s.echo.Shutdown(ctx); err != nil {
		return fmt.Errorf("error shutting down server: %w", err)
	}

	if err := s.storage.Close(); err != nil {
		return fmt.Errorf("error closing storage: %w", err)
	}

	fmt.Println("Server shutdown complete")
	return nil
}

// healthCheck handles health check requests.
// @Summary Health check
// @Description Report service and database health
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "Service is healthy"
// @Failure 503 {object} map[string]interface{} "Service is unhealthy"
// @Router /health [get]
func (s *Server) healthCheck(c echo.Context) error {
	if err := s.storage.Ping(c.Request().Context()); err != nil {
		return c.JSON(http.StatusServiceUnavailable, map[string]interface{}{
			"status":  "unhealthy",
			"error":   "database connection failed",
			"details": err.Error(),
		})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":   "healthy",
		"service":  "conectone",
		"database": s.config.Database.Driver,
	})
}

// ServeHTTP allows Server to implement http.Handler for testing
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.echo.ServeHTTP(w, r)
}
