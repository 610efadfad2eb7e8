package api

import (
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/conectone/platform/pkg/result"
)

// parseParams reads the standard list parameters from the query string:
// page, page_size, search and order_by. Out-of-range values fall back to the
// defaults enforced by result.RequestParameters.
func parseParams(c echo.Context) result.RequestParameters {
	params := result.RequestParameters{
		SearchTerm: c.QueryParam("search"),
		OrderBy:    c.QueryParam("order_by"),
	}

	if pageParam := c.QueryParam("page"); pageParam != "" {
		if parsed, err := strconv.Atoi(pageParam); err == nil && parsed > 0 {
			params.PageNumber = parsed
		}
	}

	if sizeParam := c.QueryParam("page_size"); sizeParam != "" {
		if parsed, err := strconv.Atoi(sizeParam); err == nil && parsed > 0 {
			params.PageSize = parsed
			if params.PageSize > result.MaxPageSize {
				params.PageSize = result.MaxPageSize
			}
		}
	}

	return params
}
