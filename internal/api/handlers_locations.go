package api

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/conectone/platform/pkg/result"
)

// listCountries handles GET /api/v1/locations/countries
// @Summary List countries
// @Description List all countries in natural name order
// @Tags Locations
// @Produce json
// @Security BearerAuth
// @Success 200 {object} result.Result[[]models.Country] "Countries"
// @Failure 401 {object} APIError "Unauthorized"
// @Router /locations/countries [get]
func (s *Server) listCountries(c echo.Context) error {
	countries, err := s.storage.ListCountries(c.Request().Context())
	if err != nil {
		return InternalError("Failed to list countries", err.Error())
	}
	return c.JSON(http.StatusOK, result.Ok(countries))
}

// getCountry handles GET /api/v1/locations/countries/:code
// @Summary Get country
// @Description Look up a country by ISO-3166 alpha-2 code, case-insensitive
// @Tags Locations
// @Produce json
// @Security BearerAuth
// @Param code path string true "ISO country code"
// @Success 200 {object} result.Result[models.Country] "Country"
// @Failure 404 {object} APIError "Not found"
// @Router /locations/countries/{code} [get]
func (s *Server) getCountry(c echo.Context) error {
	code := c.Param("code")
	country, err := s.storage.GetCountry(c.Request().Context(), code)
	if err != nil {
		return storageError(err, "Country", code)
	}
	return c.JSON(http.StatusOK, result.Ok(country))
}

// listCitiesByCountry handles GET /api/v1/locations/countries/:code/cities
// @Summary List a country's cities
// @Description List a country's cities in natural name order
// @Tags Locations
// @Produce json
// @Security BearerAuth
// @Param code path string true "ISO country code"
// @Success 200 {object} result.Result[[]models.City] "Cities"
// @Failure 404 {object} APIError "Country not found"
// @Router /locations/countries/{code}/cities [get]
func (s *Server) listCitiesByCountry(c echo.Context) error {
	code := c.Param("code")
	ctx := c.Request().Context()

	if _, err := s.storage.GetCountry(ctx, code); err != nil {
		return storageError(err, "Country", code)
	}

	cities, err := s.storage.ListCitiesByCountry(ctx, code)
	if err != nil {
		return InternalError("Failed to list cities", err.Error())
	}
	return c.JSON(http.StatusOK, result.Ok(cities))
}

// listCities handles GET /api/v1/locations/cities
// @Summary Search cities
// @Description Page through all cities with optional name/region search
// @Tags Locations
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number (1-based)"
// @Param page_size query int false "Page size"
// @Param search query string false "Search name and region"
// @Success 200 {object} result.PaginatedResult[models.City] "Page of cities"
// @Failure 401 {object} APIError "Unauthorized"
// @Router /locations/cities [get]
func (s *Server) listCities(c echo.Context) error {
	page, err := s.storage.PageCities(c.Request().Context(), parseParams(c))
	if err != nil {
		return InternalError("Failed to list cities", err.Error())
	}
	return c.JSON(http.StatusOK, page)
}
