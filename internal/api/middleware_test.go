package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runMiddleware(t *testing.T, mw echo.MiddlewareFunc, req *http.Request) error {
	t.Helper()
	e := echo.New()
	c := e.NewContext(req, httptest.NewRecorder())
	handler := mw(func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	return handler(c)
}

func TestValidateContentType(t *testing.T) {
	body := strings.NewReader(`{"x":1}`)

	req := httptest.NewRequest(http.MethodPost, "/", body)
	req.Header.Set("Content-Type", "text/plain")
	err := runMiddleware(t, ValidateContentType, req)
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, err.(*APIError).Code)

	// JSON, multipart and form bodies pass
	for _, ct := range []string{
		"application/json",
		"application/json; charset=utf-8",
		"multipart/form-data; boundary=x",
		"application/x-www-form-urlencoded",
	} {
		req = httptest.NewRequest(http.MethodPost, "/", strings.NewReader("x"))
		req.Header.Set("Content-Type", ct)
		assert.NoError(t, runMiddleware(t, ValidateContentType, req), ct)
	}

	// GET requests are never checked
	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Content-Type", "text/plain")
	assert.NoError(t, runMiddleware(t, ValidateContentType, req))

	// Empty bodies are allowed regardless of Content-Type
	req = httptest.NewRequest(http.MethodPost, "/", nil)
	req.Header.Set("Content-Type", "text/plain")
	assert.NoError(t, runMiddleware(t, ValidateContentType, req))
}

func TestValidateAcceptHeader(t *testing.T) {
	for _, accept := range []string{
		"", "*/*", "application/json", "application/*",
		"text/csv", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
	} {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		if accept != "" {
			req.Header.Set("Accept", accept)
		}
		assert.NoError(t, runMiddleware(t, ValidateAcceptHeader, req), accept)
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Accept", "text/html")
	err := runMiddleware(t, ValidateAcceptHeader, req)
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, err.(*APIError).Code)
}

func TestValidateIDFormat(t *testing.T) {
	check := func(id string) error {
		e := echo.New()
		c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
		c.SetParamNames("id")
		c.SetParamValues(id)
		handler := ValidateIDFormat(func(c echo.Context) error { return nil })
		return handler(c)
	}

	assert.NoError(t, check("property-1a2b3c"))
	assert.NoError(t, check(""))
	assert.Error(t, check("has space"))
	assert.Error(t, check("ab"))
	assert.Error(t, check(strings.Repeat("x", 257)))
}

func TestSecurityHeaders(t *testing.T) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	handler := SecurityHeaders(func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	require.NoError(t, handler(c))

	assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
	assert.Equal(t, "DENY", rec.Header().Get("X-Frame-Options"))
	assert.Equal(t, "strict-origin-when-cross-origin", rec.Header().Get("Referrer-Policy"))
}

func TestHTTPErrorHandlerShapes(t *testing.T) {
	e := echo.New()
	e.Debug = true

	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	HTTPErrorHandler(NotFoundError("Advert", "advert-1"), c)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Advert not found")

	rec = httptest.NewRecorder()
	c = e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	HTTPErrorHandler(echo.NewHTTPError(http.StatusUnauthorized, "nope"), c)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Unauthorized")
}

func TestHTTPErrorHandlerHidesInternalDetails(t *testing.T) {
	e := echo.New()
	e.Debug = false

	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	HTTPErrorHandler(InternalError("Failed", "secret dsn string"), c)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "secret dsn string")
}
