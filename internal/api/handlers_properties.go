package api

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/conectone/platform/internal/storage"
	"github.com/conectone/platform/models"
	"github.com/conectone/platform/pkg/result"
)

// AvailabilityResponse answers an availability query for a property.
type AvailabilityResponse struct {
	PropertyID string    `json:"property_id"`
	CheckIn    time.Time `json:"check_in"`
	CheckOut   time.Time `json:"check_out"`
	Available  bool      `json:"available"`
}

// listProperties handles GET /api/v1/properties
// @Summary List properties
// @Description Page through the tenant's accommodation listings with optional filters
// @Tags Accommodations
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number (1-based)"
// @Param page_size query int false "Page size"
// @Param search query string false "Search name, city and description"
// @Param city query string false "Filter by city"
// @Param type query string false "Filter by property type"
// @Param status query string false "Filter by status"
// @Param sleeps query int false "Minimum guest capacity"
// @Success 200 {object} result.PaginatedResult[models.Property] "Page of properties"
// @Failure 401 {object} APIError "Unauthorized"
// @Router /properties [get]
func (s *Server) listProperties(c echo.Context) error {
	filter := storage.PropertyFilter{
		City:   c.QueryParam("city"),
		Type:   c.QueryParam("type"),
		Status: c.QueryParam("status"),
	}
	if sleeps := c.QueryParam("sleeps"); sleeps != "" {
		filter.Sleeps = atoi(sleeps)
	}

	page, err := s.storage.PageProperties(c.Request().Context(), s.authMiddle.Tenant(c), filter, parseParams(c))
	if err != nil {
		return InternalError("Failed to list properties", err.Error())
	}
	return c.JSON(http.StatusOK, page)
}

// getProperty handles GET /api/v1/properties/:id
// @Summary Get property
// @Description Get a single accommodation listing
// @Tags Accommodations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Property ID"
// @Success 200 {object} result.Result[models.Property] "Property"
// @Failure 404 {object} APIError "Not found"
// @Router /properties/{id} [get]
func (s *Server) getProperty(c echo.Context) error {
	id := c.Param("id")
	prop, err := s.storage.GetProperty(c.Request().Context(), s.authMiddle.Tenant(c), id)
	if err != nil {
		return storageError(err, "Property", id)
	}
	return c.JSON(http.StatusOK, result.Ok(prop))
}

// getPropertyAvailability handles GET /api/v1/properties/:id/availability
// @Summary Check availability
// @Description Check whether a property is free for a half-open date range
// @Tags Accommodations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Property ID"
// @Param check_in query string true "Check-in date (RFC 3339 or 2006-01-02)"
// @Param check_out query string true "Check-out date (RFC 3339 or 2006-01-02)"
// @Success 200 {object} AvailabilityResponse "Availability"
// @Failure 400 {object} APIError "Bad request"
// @Failure 404 {object} APIError "Not found"
// @Router /properties/{id}/availability [get]
func (s *Server) getPropertyAvailability(c echo.Context) error {
	id := c.Param("id")
	ctx := c.Request().Context()
	tenant := s.authMiddle.Tenant(c)

	checkIn, err := parseDate(c.QueryParam("check_in"))
	if err != nil {
		return BadRequestError("Invalid check_in date", err.Error())
	}
	checkOut, err := parseDate(c.QueryParam("check_out"))
	if err != nil {
		return BadRequestError("Invalid check_out date", err.Error())
	}
	if !checkOut.After(checkIn) {
		return BadRequestError("Invalid date range", "check_out must be after check_in")
	}

	// 404 for unknown properties rather than a vacuous "available"
	if _, err := s.storage.GetProperty(ctx, tenant, id); err != nil {
		return storageError(err, "Property", id)
	}

	available, err := s.storage.PropertyAvailable(ctx, tenant, id, checkIn, checkOut)
	if err != nil {
		return InternalError("Failed to check availability", err.Error())
	}

	return c.JSON(http.StatusOK, AvailabilityResponse{
		PropertyID: id,
		CheckIn:    checkIn,
		CheckOut:   checkOut,
		Available:  available,
	})
}

// createProperty handles POST /api/v1/properties
// @Summary Create property
// @Description Create an accommodation listing
// @Tags Accommodations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param property body models.Property true "Property"
// @Success 201 {object} result.Result[models.Property] "Created property"
// @Failure 400 {object} APIError "Bad request or validation errors"
// @Failure 409 {object} APIError "Duplicate slug"
// @Router /properties [post]
func (s *Server) createProperty(c echo.Context) error {
	var prop models.Property
	if err := c.Bind(&prop); err != nil {
		return BadRequestError("Invalid request body", err.Error())
	}

	prop.ID = models.GenerateID("property")
	prop.TenantID = s.authMiddle.Tenant(c)
	if prop.Status == "" {
		prop.Status = models.PropertyStatusActive
	}
	now := time.Now()
	prop.CreatedAt = now
	prop.UpdatedAt = now

	if res := s.validator.ValidateProperty(&prop); !res.Valid {
		return ValidationFailedError("Property validation failed", fieldErrorMap(res))
	}

	if err := s.storage.CreateProperty(c.Request().Context(), &prop); err != nil {
		return storageError(err, "Property", prop.ID)
	}

	s.broadcast(prop.TenantID, "property", EventCreated, &prop)
	return c.JSON(http.StatusCreated, result.Ok(&prop))
}

// updateProperty handles PUT /api/v1/properties/:id
// @Summary Update property
// @Description Update an accommodation listing
// @Tags Accommodations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Property ID"
// @Param property body models.Property true "Property"
// @Success 200 {object} result.Result[models.Property] "Updated property"
// @Failure 400 {object} APIError "Bad request or validation errors"
// @Failure 404 {object} APIError "Not found"
// @Router /properties/{id} [put]
func (s *Server) updateProperty(c echo.Context) error {
	id := c.Param("id")
	ctx := c.Request().Context()
	tenant := s.authMiddle.Tenant(c)

	existing, err := s.storage.GetProperty(ctx, tenant, id)
	if err != nil {
		return storageError(err, "Property", id)
	}

	var prop models.Property
	if err := c.Bind(&prop); err != nil {
		return BadRequestError("Invalid request body", err.Error())
	}

	// Identity and ownership are never writable
	prop.ID = existing.ID
	prop.TenantID = existing.TenantID
	prop.Slug = existing.Slug
	prop.CreatedAt = existing.CreatedAt

	if res := s.validator.ValidateProperty(&prop); !res.Valid {
		return ValidationFailedError("Property validation failed", fieldErrorMap(res))
	}

	if err := s.storage.UpdateProperty(ctx, &prop); err != nil {
		return storageError(err, "Property", id)
	}

	s.broadcast(tenant, "property", EventUpdated, &prop)
	return c.JSON(http.StatusOK, result.Ok(&prop))
}

// deleteProperty handles DELETE /api/v1/properties/:id
// @Summary Delete property
// @Description Delete a listing; fails when pending or confirmed bookings exist
// @Tags Accommodations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Property ID"
// @Success 200 {object} MessageResponse "Deleted"
// @Failure 404 {object} APIError "Not found"
// @Failure 409 {object} APIError "Blocking bookings exist"
// @Router /properties/{id} [delete]
func (s *Server) deleteProperty(c echo.Context) error {
	id := c.Param("id")
	tenant := s.authMiddle.Tenant(c)

	if err := s.storage.DeleteProperty(c.Request().Context(), tenant, id); err != nil {
		return storageError(err, "Property", id)
	}

	s.broadcast(tenant, "property", EventDeleted, map[string]string{"id": id})
	return c.JSON(http.StatusOK, MessageResponse{Message: "property deleted", ID: id})
}
