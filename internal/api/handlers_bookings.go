package api

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/conectone/platform/internal/storage"
	"github.com/conectone/platform/models"
	"github.com/conectone/platform/pkg/result"
)

// CreateBookingRequest represents a booking request.
type CreateBookingRequest struct {
	PropertyID string    `json:"property_id" validate:"required"`
	GuestName  string    `json:"guest_name" validate:"required"`
	GuestEmail string    `json:"guest_email" validate:"required,email"`
	CheckIn    time.Time `json:"check_in" validate:"required"`
	CheckOut   time.Time `json:"check_out" validate:"required"`
	Guests     int       `json:"guests" validate:"min=1"`
}

// listBookings handles GET /api/v1/bookings
// @Summary List bookings
// @Description Page through the tenant's bookings, newest first, with optional filters
// @Tags Bookings
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number (1-based)"
// @Param page_size query int false "Page size"
// @Param property_id query string false "Filter by property"
// @Param status query string false "Filter by status"
// @Param from query string false "Stays ending after this date"
// @Param to query string false "Stays starting before this date"
// @Success 200 {object} result.PaginatedResult[models.Booking] "Page of bookings"
// @Failure 401 {object} APIError "Unauthorized"
// @Router /bookings [get]
func (s *Server) listBookings(c echo.Context) error {
	filter := storage.BookingFilter{
		PropertyID: c.QueryParam("property_id"),
		Status:     c.QueryParam("status"),
	}
	if from := c.QueryParam("from"); from != "" {
		t, err := parseDate(from)
		if err != nil {
			return BadRequestError("Invalid from date", err.Error())
		}
		filter.From = t
	}
	if to := c.QueryParam("to"); to != "" {
		t, err := parseDate(to)
		if err != nil {
			return BadRequestError("Invalid to date", err.Error())
		}
		filter.To = t
	}

	page, err := s.storage.PageBookings(c.Request().Context(), s.authMiddle.Tenant(c), filter, parseParams(c))
	if err != nil {
		return InternalError("Failed to list bookings", err.Error())
	}
	return c.JSON(http.StatusOK, page)
}

// getBooking handles GET /api/v1/bookings/:id
// @Summary Get booking
// @Description Get a booking with its property loaded
// @Tags Bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} result.Result[models.Booking] "Booking"
// @Failure 404 {object} APIError "Not found"
// @Router /bookings/{id} [get]
func (s *Server) getBooking(c echo.Context) error {
	id := c.Param("id")
	b, err := s.storage.GetBooking(c.Request().Context(), s.authMiddle.Tenant(c), id)
	if err != nil {
		return storageError(err, "Booking", id)
	}
	return c.JSON(http.StatusOK, result.Ok(b))
}

// createBooking handles POST /api/v1/bookings
// @Summary Create booking
// @Description Reserve a stay; the booking is created pending and priced from the property's nightly rate
// @Tags Bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param booking body CreateBookingRequest true "Booking request"
// @Success 201 {object} result.Result[models.Booking] "Created booking"
// @Failure 400 {object} APIError "Bad request or validation errors"
// @Failure 404 {object} APIError "Property not found"
// @Failure 409 {object} APIError "Dates not available"
// @Router /bookings [post]
func (s *Server) createBooking(c echo.Context) error {
	var req CreateBookingRequest
	if err := c.Bind(&req); err != nil {
		return BadRequestError("Invalid request body", err.Error())
	}

	tenant := s.authMiddle.Tenant(c)
	now := time.Now()
	b := &models.Booking{
		ID:         models.GenerateID("booking"),
		TenantID:   tenant,
		PropertyID: req.PropertyID,
		GuestName:  req.GuestName,
		GuestEmail: req.GuestEmail,
		CheckIn:    req.CheckIn,
		CheckOut:   req.CheckOut,
		Guests:     req.Guests,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if res := s.validator.ValidateBooking(b); !res.Valid {
		return ValidationFailedError("Booking validation failed", fieldErrorMap(res))
	}

	if err := s.storage.CreateBooking(c.Request().Context(), b); err != nil {
		return storageError(err, "Booking", b.ID)
	}

	s.broadcast(tenant, "booking", EventCreated, b)
	return c.JSON(http.StatusCreated, result.Ok(b))
}

// confirmBooking handles POST /api/v1/bookings/:id/confirm
// @Summary Confirm booking
// @Description Move a pending booking to confirmed
// @Tags Bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} result.Result[models.Booking] "Confirmed booking"
// @Failure 400 {object} APIError "Booking is not pending"
// @Failure 404 {object} APIError "Not found"
// @Router /bookings/{id}/confirm [post]
func (s *Server) confirmBooking(c echo.Context) error {
	id := c.Param("id")
	tenant := s.authMiddle.Tenant(c)

	b, err := s.storage.ConfirmBooking(c.Request().Context(), tenant, id, "")
	if err != nil {
		if apiErr := storageError(err, "Booking", id); apiErr.Code != http.StatusInternalServerError {
			return apiErr
		}
		return BadRequestError("Cannot confirm booking", err.Error())
	}

	s.broadcast(tenant, "booking", EventConfirmed, b)
	return c.JSON(http.StatusOK, result.Ok(b))
}

// cancelBooking handles POST /api/v1/bookings/:id/cancel
// @Summary Cancel booking
// @Description Cancel a pending or confirmed booking, releasing the dates
// @Tags Bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} result.Result[models.Booking] "Cancelled booking"
// @Failure 400 {object} APIError "Booking cannot be cancelled"
// @Failure 404 {object} APIError "Not found"
// @Router /bookings/{id}/cancel [post]
func (s *Server) cancelBooking(c echo.Context) error {
	id := c.Param("id")
	tenant := s.authMiddle.Tenant(c)

	b, err := s.storage.CancelBooking(c.Request().Context(), tenant, id)
	if err != nil {
		if apiErr := storageError(err, "Booking", id); apiErr.Code != http.StatusInternalServerError {
			return apiErr
		}
		return BadRequestError("Cannot cancel booking", err.Error())
	}

	s.broadcast(tenant, "booking", EventCancelled, b)
	return c.JSON(http.StatusOK, result.Ok(b))
}
