package api

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/conectone/platform/models"
	"github.com/conectone/platform/pkg/result"
)

// listAdverts handles GET /api/v1/adverts
// @Summary List adverts
// @Description Page through the tenant's adverts, newest first, with optional filters
// @Tags Adverts
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number (1-based)"
// @Param page_size query int false "Page size"
// @Param category query string false "Filter by category"
// @Param status query string false "Filter by status"
// @Param search query string false "Search title and body"
// @Success 200 {object} result.PaginatedResult[models.Advert] "Page of adverts"
// @Failure 401 {object} APIError "Unauthorized"
// @Router /adverts [get]
func (s *Server) listAdverts(c echo.Context) error {
	page, err := s.storage.PageAdverts(c.Request().Context(), s.authMiddle.Tenant(c),
		c.QueryParam("category"), c.QueryParam("status"), parseParams(c))
	if err != nil {
		return InternalError("Failed to list adverts", err.Error())
	}
	return c.JSON(http.StatusOK, page)
}

// getAdvert handles GET /api/v1/adverts/:id
// @Summary Get advert
// @Tags Adverts
// @Produce json
// @Security BearerAuth
// @Param id path string true "Advert ID"
// @Success 200 {object} result.Result[models.Advert] "Advert"
// @Failure 404 {object} APIError "Not found"
// @Router /adverts/{id} [get]
func (s *Server) getAdvert(c echo.Context) error {
	id := c.Param("id")
	ad, err := s.storage.GetAdvert(c.Request().Context(), s.authMiddle.Tenant(c), id)
	if err != nil {
		return storageError(err, "Advert", id)
	}
	return c.JSON(http.StatusOK, result.Ok(ad))
}

// createAdvert handles POST /api/v1/adverts
// @Summary Create advert
// @Description Create a classified advert in draft state
// @Tags Adverts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param advert body models.Advert true "Advert"
// @Success 201 {object} result.Result[models.Advert] "Created advert"
// @Failure 400 {object} APIError "Bad request or validation errors"
// @Failure 409 {object} APIError "Duplicate slug"
// @Router /adverts [post]
func (s *Server) createAdvert(c echo.Context) error {
	var ad models.Advert
	if err := c.Bind(&ad); err != nil {
		return BadRequestError("Invalid request body", err.Error())
	}

	ad.ID = models.GenerateID("advert")
	ad.TenantID = s.authMiddle.Tenant(c)
	now := time.Now()
	ad.CreatedAt = now
	ad.UpdatedAt = now

	if res := s.validator.ValidateAdvert(&ad); !res.Valid {
		return ValidationFailedError("Advert validation failed", fieldErrorMap(res))
	}

	if err := s.storage.CreateAdvert(c.Request().Context(), &ad); err != nil {
		return storageError(err, "Advert", ad.ID)
	}

	s.broadcast(ad.TenantID, "advert", EventCreated, &ad)
	return c.JSON(http.StatusCreated, result.Ok(&ad))
}

// updateAdvert handles PUT /api/v1/adverts/:id
// @Summary Update advert
// @Description Update an advert's content; publication state is managed via publish/unpublish
// @Tags Adverts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Advert ID"
// @Param advert body models.Advert true "Advert"
// @Success 200 {object} result.Result[models.Advert] "Updated advert"
// @Failure 400 {object} APIError "Bad request"
// @Failure 404 {object} APIError "Not found"
// @Router /adverts/{id} [put]
func (s *Server) updateAdvert(c echo.Context) error {
	id := c.Param("id")
	ctx := c.Request().Context()
	tenant := s.authMiddle.Tenant(c)

	existing, err := s.storage.GetAdvert(ctx, tenant, id)
	if err != nil {
		return storageError(err, "Advert", id)
	}

	var ad models.Advert
	if err := c.Bind(&ad); err != nil {
		return BadRequestError("Invalid request body", err.Error())
	}

	ad.ID = existing.ID
	ad.TenantID = existing.TenantID
	ad.Slug = existing.Slug
	ad.CreatedAt = existing.CreatedAt
	ad.Status = existing.Status
	ad.PublishedAt = existing.PublishedAt
	ad.ExpiresAt = existing.ExpiresAt

	if res := s.validator.ValidateAdvert(&ad); !res.Valid {
		return ValidationFailedError("Advert validation failed", fieldErrorMap(res))
	}

	if err := s.storage.UpdateAdvert(ctx, &ad); err != nil {
		return storageError(err, "Advert", id)
	}

	s.broadcast(tenant, "advert", EventUpdated, &ad)
	return c.JSON(http.StatusOK, result.Ok(&ad))
}

// deleteAdvert handles DELETE /api/v1/adverts/:id
// @Summary Delete advert
// @Tags Adverts
// @Produce json
// @Security BearerAuth
// @Param id path string true "Advert ID"
// @Success 200 {object} MessageResponse "Deleted"
// @Failure 404 {object} APIError "Not found"
// @Router /adverts/{id} [delete]
func (s *Server) deleteAdvert(c echo.Context) error {
	id := c.Param("id")
	tenant := s.authMiddle.Tenant(c)

	if err := s.storage.DeleteAdvert(c.Request().Context(), tenant, id); err != nil {
		return storageError(err, "Advert", id)
	}

	s.broadcast(tenant, "advert", EventDeleted, map[string]string{"id": id})
	return c.JSON(http.StatusOK, MessageResponse{Message: "advert deleted", ID: id})
}

// publishAdvert handles POST /api/v1/adverts/:id/publish
// @Summary Publish advert
// @Description Publish a draft advert; it expires automatically after the configured lifetime
// @Tags Adverts
// @Produce json
// @Security BearerAuth
// @Param id path string true "Advert ID"
// @Success 200 {object} result.Result[models.Advert] "Published advert"
// @Failure 400 {object} APIError "Advert is already published"
// @Failure 404 {object} APIError "Not found"
// @Router /adverts/{id}/publish [post]
func (s *Server) publishAdvert(c echo.Context) error {
	id := c.Param("id")
	tenant := s.authMiddle.Tenant(c)

	ad, err := s.storage.PublishAdvert(c.Request().Context(), tenant, id, s.config.Scheduler.AdvertLifetime)
	if err != nil {
		if apiErr := storageError(err, "Advert", id); apiErr.Code != http.StatusInternalServerError {
			return apiErr
		}
		return BadRequestError("Cannot publish advert", err.Error())
	}

	s.broadcast(tenant, "advert", EventPublished, ad)
	return c.JSON(http.StatusOK, result.Ok(ad))
}

// unpublishAdvert handles POST /api/v1/adverts/:id/unpublish
// @Summary Unpublish advert
// @Description Move a published advert back to draft, clearing its expiry
// @Tags Adverts
// @Produce json
// @Security BearerAuth
// @Param id path string true "Advert ID"
// @Success 200 {object} result.Result[models.Advert] "Draft advert"
// @Failure 404 {object} APIError "Not found"
// @Router /adverts/{id}/unpublish [post]
func (s *Server) unpublishAdvert(c echo.Context) error {
	id := c.Param("id")
	tenant := s.authMiddle.Tenant(c)

	ad, err := s.storage.UnpublishAdvert(c.Request().Context(), tenant, id)
	if err != nil {
		return storageError(err, "Advert", id)
	}

	s.broadcast(tenant, "advert", EventUpdated, ad)
	return c.JSON(http.StatusOK, result.Ok(ad))
}
