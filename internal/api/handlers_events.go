package api

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/conectone/platform/models"
	"github.com/conectone/platform/pkg/result"
)

// listEvents handles GET /api/v1/events
// @Summary List events
// @Description Page through the tenant's calendar events ordered by start time
// @Tags Calendar
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number (1-based)"
// @Param page_size query int false "Page size"
// @Param search query string false "Search title and location"
// @Success 200 {object} result.PaginatedResult[models.Event] "Page of events"
// @Failure 401 {object} APIError "Unauthorized"
// @Router /events [get]
func (s *Server) listEvents(c echo.Context) error {
	page, err := s.storage.PageEvents(c.Request().Context(), s.authMiddle.Tenant(c), parseParams(c))
	if err != nil {
		return InternalError("Failed to list events", err.Error())
	}
	return c.JSON(http.StatusOK, page)
}

// listOccurrences handles GET /api/v1/events/occurrences
// @Summary List occurrences
// @Description Expand all events, recurring ones included, within a half-open window
// @Tags Calendar
// @Produce json
// @Security BearerAuth
// @Param from query string true "Window start (RFC 3339 or 2006-01-02)"
// @Param to query string true "Window end (RFC 3339 or 2006-01-02)"
// @Success 200 {object} result.Result[[]models.Occurrence] "Occurrences sorted by start time"
// @Failure 400 {object} APIError "Bad request"
// @Router /events/occurrences [get]
func (s *Server) listOccurrences(c echo.Context) error {
	from, err := parseDate(c.QueryParam("from"))
	if err != nil {
		return BadRequestError("Invalid from date", err.Error())
	}
	to, err := parseDate(c.QueryParam("to"))
	if err != nil {
		return BadRequestError("Invalid to date", err.Error())
	}
	if !to.After(from) {
		return BadRequestError("Invalid window", "to must be after from")
	}

	occ, err := s.storage.Occurrences(c.Request().Context(), s.authMiddle.Tenant(c), from, to)
	if err != nil {
		return InternalError("Failed to expand occurrences", err.Error())
	}
	return c.JSON(http.StatusOK, result.Ok(&occ))
}

// getEvent handles GET /api/v1/events/:id
// @Summary Get event
// @Tags Calendar
// @Produce json
// @Security BearerAuth
// @Param id path string true "Event ID"
// @Success 200 {object} result.Result[models.Event] "Event"
// @Failure 404 {object} APIError "Not found"
// @Router /events/{id} [get]
func (s *Server) getEvent(c echo.Context) error {
	id := c.Param("id")
	ev, err := s.storage.GetEvent(c.Request().Context(), s.authMiddle.Tenant(c), id)
	if err != nil {
		return storageError(err, "Event", id)
	}
	return c.JSON(http.StatusOK, result.Ok(ev))
}

// createEvent handles POST /api/v1/events
// @Summary Create event
// @Description Create a calendar event, optionally recurring
// @Tags Calendar
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param event body models.Event true "Event"
// @Success 201 {object} result.Result[models.Event] "Created event"
// @Failure 400 {object} APIError "Bad request or validation errors"
// @Router /events [post]
func (s *Server) createEvent(c echo.Context) error {
	var ev models.Event
	if err := c.Bind(&ev); err != nil {
		return BadRequestError("Invalid request body", err.Error())
	}

	ev.ID = models.GenerateID("event")
	ev.TenantID = s.authMiddle.Tenant(c)
	now := time.Now()
	ev.CreatedAt = now
	ev.UpdatedAt = now

	if res := s.validator.ValidateEvent(&ev); !res.Valid {
		return ValidationFailedError("Event validation failed", fieldErrorMap(res))
	}

	if err := s.storage.CreateEvent(c.Request().Context(), &ev); err != nil {
		return storageError(err, "Event", ev.ID)
	}

	s.broadcast(ev.TenantID, "event", EventCreated, &ev)
	return c.JSON(http.StatusCreated, result.Ok(&ev))
}

// updateEvent handles PUT /api/v1/events/:id
// @Summary Update event
// @Tags Calendar
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Event ID"
// @Param event body models.Event true "Event"
// @Success 200 {object} result.Result[models.Event] "Updated event"
// @Failure 400 {object} APIError "Bad request"
// @Failure 404 {object} APIError "Not found"
// @Router /events/{id} [put]
func (s *Server) updateEvent(c echo.Context) error {
	id := c.Param("id")
	ctx := c.Request().Context()
	tenant := s.authMiddle.Tenant(c)

	existing, err := s.storage.GetEvent(ctx, tenant, id)
	if err != nil {
		return storageError(err, "Event", id)
	}

	var ev models.Event
	if err := c.Bind(&ev); err != nil {
		return BadRequestError("Invalid request body", err.Error())
	}

	ev.ID = existing.ID
	ev.TenantID = existing.TenantID
	ev.CreatedAt = existing.CreatedAt

	if res := s.validator.ValidateEvent(&ev); !res.Valid {
		return ValidationFailedError("Event validation failed", fieldErrorMap(res))
	}

	if err := s.storage.UpdateEvent(ctx, &ev); err != nil {
		return storageError(err, "Event", id)
	}

	s.broadcast(tenant, "event", EventUpdated, &ev)
	return c.JSON(http.StatusOK, result.Ok(&ev))
}

// deleteEvent handles DELETE /api/v1/events/:id
// @Summary Delete event
// @Tags Calendar
// @Produce json
// @Security BearerAuth
// @Param id path string true "Event ID"
// @Success 200 {object} MessageResponse "Deleted"
// @Failure 404 {object} APIError "Not found"
// @Router /events/{id} [delete]
func (s *Server) deleteEvent(c echo.Context) error {
	id := c.Param("id")
	tenant := s.authMiddle.Tenant(c)

	if err := s.storage.DeleteEvent(c.Request().Context(), tenant, id); err != nil {
		return storageError(err, "Event", id)
	}

	s.broadcast(tenant, "event", EventDeleted, map[string]string{"id": id})
	return c.JSON(http.StatusOK, MessageResponse{Message: "event deleted", ID: id})
}
