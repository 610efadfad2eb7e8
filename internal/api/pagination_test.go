package api

import (
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"github.com/conectone/platform/pkg/result"
)

func paramsFor(t *testing.T, query string) result.RequestParameters {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest("GET", "/?"+query, nil)
	c := e.NewContext(req, httptest.NewRecorder())
	return parseParams(c)
}

func TestParseParams(t *testing.T) {
	p := paramsFor(t, "page=3&page_size=50&search=villa&order_by=name")
	assert.Equal(t, 3, p.Page())
	assert.Equal(t, 50, p.Size())
	assert.Equal(t, "villa", p.SearchTerm)
	assert.Equal(t, "name", p.OrderBy)
}

func TestParseParamsDefaults(t *testing.T) {
	p := paramsFor(t, "")
	assert.Equal(t, 1, p.Page())
	assert.Equal(t, result.DefaultPageSize, p.Size())
	assert.Equal(t, 0, p.Offset())
}

func TestParseParamsIgnoresGarbage(t *testing.T) {
	p := paramsFor(t, "page=abc&page_size=-5")
	assert.Equal(t, 1, p.Page())
	assert.Equal(t, result.DefaultPageSize, p.Size())
}

func TestParseParamsClampsPageSize(t *testing.T) {
	p := paramsFor(t, "page_size=100000")
	assert.Equal(t, result.MaxPageSize, p.Size())
}
