package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/conectone/platform/internal/storage"
	"github.com/conectone/platform/models"
	"github.com/conectone/platform/pkg/csvutil"
	"github.com/conectone/platform/pkg/result"
)

// getStatistics handles GET /api/v1/stats
// @Summary Tenant statistics
// @Description Per-module record counts plus confirmed booking revenue
// @Tags Statistics
// @Produce json
// @Security BearerAuth
// @Success 200 {object} result.Result[storage.Statistics] "Statistics"
// @Failure 401 {object} APIError "Unauthorized"
// @Router /stats [get]
func (s *Server) getStatistics(c echo.Context) error {
	stats, err := s.storage.GetStatistics(c.Request().Context(), s.authMiddle.Tenant(c))
	if err != nil {
		return InternalError("Failed to gather statistics", err.Error())
	}
	return c.JSON(http.StatusOK, result.Ok(stats))
}

// exportBookingsCSV handles GET /api/v1/exports/bookings.csv
// @Summary Export bookings as CSV
// @Description Download the tenant's bookings as a CSV file, with the same filters as the list endpoint
// @Tags Exports
// @Produce text/csv
// @Security BearerAuth
// @Param property_id query string false "Filter by property"
// @Param status query string false "Filter by status"
// @Param from query string false "Stays ending after this date"
// @Param to query string false "Stays starting before this date"
// @Success 200 {string} string "CSV payload"
// @Failure 400 {object} APIError "Bad request"
// @Router /exports/bookings.csv [get]
func (s *Server) exportBookingsCSV(c echo.Context) error {
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

	bookings, err := s.storage.ListBookings(c.Request().Context(), s.authMiddle.Tenant(c), filter)
	if err != nil {
		return InternalError("Failed to export bookings", err.Error())
	}

	c.Response().Header().Set(echo.HeaderContentType, "text/csv; charset=utf-8")
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="bookings.csv"`)
	c.Response().WriteHeader(http.StatusOK)

	w := csvutil.NewWriter(c.Response(), []csvutil.Column[*models.Booking]{
		{Header: "id", Value: func(b *models.Booking) string { return b.ID }},
		{Header: "property", Value: func(b *models.Booking) string {
			if b.Property != nil {
				return b.Property.Name
			}
			return b.PropertyID
		}},
		{Header: "guest_name", Value: func(b *models.Booking) string { return b.GuestName }},
		{Header: "guest_email", Value: func(b *models.Booking) string { return b.GuestEmail }},
		{Header: "check_in", Value: func(b *models.Booking) string { return b.CheckIn.Format("2006-01-02") }},
		{Header: "check_out", Value: func(b *models.Booking) string { return b.CheckOut.Format("2006-01-02") }},
		{Header: "guests", Value: func(b *models.Booking) string { return strconv.Itoa(b.Guests) }},
		{Header: "total_amount", Value: func(b *models.Booking) string { return strconv.FormatInt(b.TotalAmount, 10) }},
		{Header: "currency", Value: func(b *models.Booking) string { return b.Currency }},
		{Header: "status", Value: func(b *models.Booking) string { return b.Status }},
		{Header: "created_at", Value: func(b *models.Booking) string { return b.CreatedAt.Format(time.RFC3339) }},
	})
	return w.WriteAll(bookings)
}

// integrityCheck handles GET /api/v1/integrity/check
// @Summary Run integrity scan
// @Description Scan the tenant's data for referential problems (admin only); never mutates anything
// @Tags Integrity
// @Produce json
// @Security BearerAuth
// @Success 200 {object} result.Result[integrity.Report] "Scan report"
// @Failure 403 {object} APIError "Forbidden"
// @Router /integrity/check [get]
func (s *Server) integrityCheck(c echo.Context) error {
	report, err := s.integrity.Check(c.Request().Context(), s.authMiddle.Tenant(c))
	if err != nil {
		return InternalError("Integrity scan failed", err.Error())
	}
	return c.JSON(http.StatusOK, result.Ok(report))
}

// integrityRepair handles POST /api/v1/integrity/repair
// @Summary Repair integrity issues
// @Description Scan and repair the repairable findings (admin only)
// @Tags Integrity
// @Produce json
// @Security BearerAuth
// @Success 200 {object} result.Result[integrity.RepairResult] "Repair summary"
// @Failure 403 {object} APIError "Forbidden"
// @Router /integrity/repair [post]
func (s *Server) integrityRepair(c echo.Context) error {
	tenant := s.authMiddle.Tenant(c)
	res, err := s.integrity.Repair(c.Request().Context(), tenant)
	if err != nil {
		return InternalError("Integrity repair failed", err.Error())
	}
	if res.Repaired > 0 {
		s.broadcast(tenant, "integrity", EventUpdated, res)
	}
	return c.JSON(http.StatusOK, result.Ok(res))
}
