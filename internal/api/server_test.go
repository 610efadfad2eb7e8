package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conectone/platform/internal/auth"
	"github.com/conectone/platform/internal/config"
	"github.com/conectone/platform/internal/storage"
	"github.com/conectone/platform/models"
	"github.com/conectone/platform/pkg/result"
)

var testServerSeq atomic.Int64

// newTestServer builds a full server over a fresh in-memory database with
// authentication disabled; tenants are selected via the X-Tenant-ID header.
func newTestServer(t *testing.T) *Server {
	t.Helper()

	cfg := &config.Config{
		Server: config.ServerConfig{
			Host:  "127.0.0.1",
			Port:  8080,
			Debug: true,
		},
		Database: config.DatabaseConfig{
			Driver:       "sqlite",
			DSN:          fmt.Sprintf("file:apitest%d?mode=memory&cache=shared", testServerSeq.Add(1)),
			MaxOpenConns: 1,
			MaxIdleConns: 1,
		},
		Security: config.SecurityConfig{
			AuthEnabled:            false,
			DefaultTenant:          "default",
			JWTSecret:              "test-secret",
			JWTExpiration:          time.Hour,
			RefreshTokenExpiration: 24 * time.Hour,
		},
		PayFast: config.PayFastConfig{
			MerchantID:  "10000100",
			MerchantKey: "46f0cd694581a",
			Sandbox:     true,
		},
		Scheduler: config.SchedulerConfig{
			AdvertLifetime: 720 * time.Hour,
		},
	}

	store, err := storage.New(cfg)
	require.NoError(t, err)
	require.NoError(t, store.Migrate(t.Context()))
	t.Cleanup(func() { store.Close() })

	return New(cfg, store)
}

// doJSON runs a JSON request against the server and decodes the response
// into out when non-nil.
func doJSON(t *testing.T, s *Server, method, path string, body interface{}, out interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set(echoHeaderContentType, "application/json")
	}
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)

	if out != nil {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), out),
			"response body: %s", rec.Body.String())
	}
	return rec
}

const echoHeaderContentType = "Content-Type"

func testPropertyBody() map[string]interface{} {
	return map[string]interface{}{
		"name":         "Seaview Villa",
		"type":         "villa",
		"city":         "Knysna",
		"country_code": "ZA",
		"sleeps":       6,
		"bedrooms":     3,
		"nightly_rate": 185000,
		"currency":     "ZAR",
	}
}

func TestHealthCheck(t *testing.T) {
	s := newTestServer(t)

	var body map[string]interface{}
	rec := doJSON(t, s, http.MethodGet, "/health", nil, &body)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "healthy", body["status"])
	assert.Equal(t, "conectone", body["service"])
}

func TestPropertyLifecycle(t *testing.T) {
	s := newTestServer(t)

	var created result.Result[*models.Property]
	rec := doJSON(t, s, http.MethodPost, "/api/v1/properties", testPropertyBody(), &created)
	require.Equal(t, http.StatusCreated, rec.Code)
	require.True(t, created.Succeeded)
	assert.Equal(t, "seaview-villa", created.Data.Slug)
	assert.Equal(t, "default", created.Data.TenantID)
	assert.Equal(t, models.PropertyStatusActive, created.Data.Status)

	id := created.Data.ID

	var fetched result.Result[*models.Property]
	rec = doJSON(t, s, http.MethodGet, "/api/v1/properties/"+id, nil, &fetched)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Seaview Villa", fetched.Data.Name)

	// Update keeps identity fields
	update := testPropertyBody()
	update["name"] = "Seaview Villa Deluxe"
	update["nightly_rate"] = 210000
	var updated result.Result[*models.Property]
	rec = doJSON(t, s, http.MethodPut, "/api/v1/properties/"+id, update, &updated)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, id, updated.Data.ID)
	assert.Equal(t, "seaview-villa", updated.Data.Slug)
	assert.EqualValues(t, 210000, updated.Data.NightlyRate)

	var page result.PaginatedResult[*models.Property]
	rec = doJSON(t, s, http.MethodGet, "/api/v1/properties?city=Knysna", nil, &page)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, page.TotalCount)

	rec = doJSON(t, s, http.MethodDelete, "/api/v1/properties/"+id, nil, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	var notFound APIError
	rec = doJSON(t, s, http.MethodGet, "/api/v1/properties/"+id, nil, &notFound)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Property not found", notFound.Message)
}

func TestCreatePropertyValidationErrors(t *testing.T) {
	s := newTestServer(t)

	body := testPropertyBody()
	body["type"] = "castle"
	delete(body, "city")

	var apiErr APIError
	rec := doJSON(t, s, http.MethodPost, "/api/v1/properties", body, &apiErr)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, apiErr.FieldError, "type")
	assert.Contains(t, apiErr.FieldError, "city")
}

func TestDuplicateSlugConflict(t *testing.T) {
	s := newTestServer(t)

	rec := doJSON(t, s, http.MethodPost, "/api/v1/properties", testPropertyBody(), nil)
	require.Equal(t, http.StatusCreated, rec.Code)

	var apiErr APIError
	rec = doJSON(t, s, http.MethodPost, "/api/v1/properties", testPropertyBody(), &apiErr)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "Property already exists", apiErr.Message)
}

func TestBookingFlow(t *testing.T) {
	s := newTestServer(t)

	var prop result.Result[*models.Property]
	rec := doJSON(t, s, http.MethodPost, "/api/v1/properties", testPropertyBody(), &prop)
	require.Equal(t, http.StatusCreated, rec.Code)

	booking := map[string]interface{}{
		"property_id": prop.Data.ID,
		"guest_name":  "Thandi Nkosi",
		"guest_email": "thandi@example.com",
		"check_in":    "2026-09-01T00:00:00Z",
		"check_out":   "2026-09-05T00:00:00Z",
		"guests":      2,
	}

	var created result.Result[*models.Booking]
	rec = doJSON(t, s, http.MethodPost, "/api/v1/bookings", booking, &created)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, models.BookingStatusPending, created.Data.Status)
	assert.EqualValues(t, 4*185000, created.Data.TotalAmount)
	assert.Equal(t, "ZAR", created.Data.Currency)

	// Overlapping dates are rejected
	var apiErr APIError
	rec = doJSON(t, s, http.MethodPost, "/api/v1/bookings", booking, &apiErr)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "Dates not available", apiErr.Message)

	// Availability endpoint agrees
	var avail AvailabilityResponse
	rec = doJSON(t, s, http.MethodGet,
		"/api/v1/properties/"+prop.Data.ID+"/availability?check_in=2026-09-03&check_out=2026-09-06", nil, &avail)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.False(t, avail.Available)

	rec = doJSON(t, s, http.MethodGet,
		"/api/v1/properties/"+prop.Data.ID+"/availability?check_in=2026-09-05&check_out=2026-09-08", nil, &avail)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, avail.Available)

	// Confirm then refuse a second confirm
	var confirmed result.Result[*models.Booking]
	rec = doJSON(t, s, http.MethodPost, "/api/v1/bookings/"+created.Data.ID+"/confirm", nil, &confirmed)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, models.BookingStatusConfirmed, confirmed.Data.Status)

	rec = doJSON(t, s, http.MethodPost, "/api/v1/bookings/"+created.Data.ID+"/confirm", nil, &apiErr)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// Cancel releases the dates
	rec = doJSON(t, s, http.MethodPost, "/api/v1/bookings/"+created.Data.ID+"/cancel", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, s, http.MethodPost, "/api/v1/bookings", booking, nil)
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestTenantIsolationViaHeader(t *testing.T) {
	s := newTestServer(t)

	raw, err := json.Marshal(testPropertyBody())
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/properties", bytes.NewReader(raw))
	req.Header.Set(echoHeaderContentType, "application/json")
	req.Header.Set("X-Tenant-ID", "acme")
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)
	require.Equal(t, http.StatusCreated, rec.Code)

	// The default tenant sees nothing
	var page result.PaginatedResult[*models.Property]
	doJSON(t, s, http.MethodGet, "/api/v1/properties", nil, &page)
	assert.Equal(t, 0, page.TotalCount)

	// The acme tenant sees its listing
	req = httptest.NewRequest(http.MethodGet, "/api/v1/properties", nil)
	req.Header.Set("X-Tenant-ID", "acme")
	rec = httptest.NewRecorder()
	s.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &page))
	assert.Equal(t, 1, page.TotalCount)
}

func TestAdvertPublishLifecycle(t *testing.T) {
	s := newTestServer(t)

	var created result.Result[*models.Advert]
	rec := doJSON(t, s, http.MethodPost, "/api/v1/adverts", map[string]interface{}{
		"title":    "Mountain bike for sale",
		"category": "sport",
		"price":    450000,
		"currency": "ZAR",
	}, &created)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, models.AdvertStatusDraft, created.Data.Status)

	var published result.Result[*models.Advert]
	rec = doJSON(t, s, http.MethodPost, "/api/v1/adverts/"+created.Data.ID+"/publish", nil, &published)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, models.AdvertStatusPublished, published.Data.Status)
	require.NotNil(t, published.Data.ExpiresAt)
	assert.WithinDuration(t, time.Now().Add(720*time.Hour), *published.Data.ExpiresAt, time.Minute)

	// Publishing twice is a 400
	var apiErr APIError
	rec = doJSON(t, s, http.MethodPost, "/api/v1/adverts/"+created.Data.ID+"/publish", nil, &apiErr)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var draft result.Result[*models.Advert]
	rec = doJSON(t, s, http.MethodPost, "/api/v1/adverts/"+created.Data.ID+"/unpublish", nil, &draft)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, models.AdvertStatusDraft, draft.Data.Status)
	assert.Nil(t, draft.Data.ExpiresAt)
}

func TestEventOccurrences(t *testing.T) {
	s := newTestServer(t)

	rec := doJSON(t, s, http.MethodPost, "/api/v1/events", map[string]interface{}{
		"title":      "Standup",
		"starts_at":  "2026-09-07T09:00:00Z",
		"ends_at":    "2026-09-07T09:15:00Z",
		"recurrence": "weekly",
	}, nil)
	require.Equal(t, http.StatusCreated, rec.Code)

	var occ result.Result[[]models.Occurrence]
	rec = doJSON(t, s, http.MethodGet,
		"/api/v1/events/occurrences?from=2026-09-01&to=2026-09-30", nil, &occ)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, occ.Data, 4)

	// Missing window is a 400
	var apiErr APIError
	rec = doJSON(t, s, http.MethodGet, "/api/v1/events/occurrences", nil, &apiErr)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestProductImportExport(t *testing.T) {
	s := newTestServer(t)

	var cat result.Result[*models.Category]
	rec := doJSON(t, s, http.MethodPost, "/api/v1/categories", map[string]interface{}{
		"name": "Outdoor Gear",
	}, &cat)
	require.Equal(t, http.StatusCreated, rec.Code)

	csvBody := strings.Join([]string{
		"sku,name,description,category,price,currency,stock,status",
		"SKU-001,Tent,Two-person tent,outdoor-gear,250000,ZAR,4,active",
		"SKU-002,Lantern,,outdoor-gear,45000,ZAR,10,active",
		"SKU-003,Broken,,outdoor-gear,notanumber,ZAR,1,active",
	}, "\n")

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("file", "products.csv")
	require.NoError(t, err)
	_, err = fw.Write([]byte(csvBody))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/products/import", &buf)
	req.Header.Set(echoHeaderContentType, mw.FormDataContentType())
	rec2 := httptest.NewRecorder()
	s.ServeHTTP(rec2, req)
	require.Equal(t, http.StatusOK, rec2.Code, rec2.Body.String())

	var imported ImportResponse
	require.NoError(t, json.Unmarshal(rec2.Body.Bytes(), &imported))
	assert.Equal(t, 2, imported.Imported)
	assert.Equal(t, 1, imported.Skipped)
	require.Len(t, imported.Errors, 1)
	assert.Contains(t, imported.Errors[0], "invalid price")

	// Re-importing the same file upserts rather than duplicating
	var buf2 bytes.Buffer
	mw = multipart.NewWriter(&buf2)
	fw, err = mw.CreateFormFile("file", "products.csv")
	require.NoError(t, err)
	_, err = fw.Write([]byte(csvBody))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req = httptest.NewRequest(http.MethodPost, "/api/v1/products/import", &buf2)
	req.Header.Set(echoHeaderContentType, mw.FormDataContentType())
	rec2 = httptest.NewRecorder()
	s.ServeHTTP(rec2, req)
	require.Equal(t, http.StatusOK, rec2.Code)

	var page result.PaginatedResult[*models.Product]
	doJSON(t, s, http.MethodGet, "/api/v1/products", nil, &page)
	assert.Equal(t, 2, page.TotalCount)

	// CSV export round-trips the catalog
	req = httptest.NewRequest(http.MethodGet, "/api/v1/products/export.csv", nil)
	req.Header.Set("Accept", "text/csv")
	rec2 = httptest.NewRecorder()
	s.ServeHTTP(rec2, req)
	require.Equal(t, http.StatusOK, rec2.Code)
	assert.Contains(t, rec2.Header().Get(echoHeaderContentType), "text/csv")
	lines := strings.Split(strings.TrimSpace(rec2.Body.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "sku,name,description,category,price,currency,stock,status", lines[0])
	assert.Contains(t, rec2.Body.String(), "SKU-001,Tent")
	assert.Contains(t, rec2.Body.String(), "outdoor-gear")
}

func TestStatistics(t *testing.T) {
	s := newTestServer(t)

	rec := doJSON(t, s, http.MethodPost, "/api/v1/properties", testPropertyBody(), nil)
	require.Equal(t, http.StatusCreated, rec.Code)

	var stats result.Result[*storage.Statistics]
	rec = doJSON(t, s, http.MethodGet, "/api/v1/stats", nil, &stats)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, stats.Data.Properties)
	assert.Equal(t, 0, stats.Data.Bookings)
}

func TestAuthLoginFlow(t *testing.T) {
	s := newTestServer(t)

	// Register through the API requires auth; seed directly
	hash, err := auth.HashPassword("correct-horse-battery")
	require.NoError(t, err)
	user := &models.User{
		ID:           models.GenerateID("user"),
		TenantID:     "default",
		Username:     "alice",
		Email:        "alice@example.com",
		PasswordHash: hash,
		Roles:        []models.Role{models.RoleAdmin},
		Enabled:      true,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
	require.NoError(t, s.storage.CreateUser(t.Context(), user))

	var login LoginResponse
	rec := doJSON(t, s, http.MethodPost, "/api/v1/auth/login", map[string]string{
		"username": "alice",
		"password": "correct-horse-battery",
	}, &login)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, login.AccessToken)
	assert.NotEmpty(t, login.RefreshToken)
	assert.Equal(t, "Bearer", login.TokenType)
	assert.Equal(t, "alice", login.User.Username)

	// Refresh rotates the token
	var refreshed LoginResponse
	rec = doJSON(t, s, http.MethodPost, "/api/v1/auth/refresh", map[string]string{
		"refresh_token": login.RefreshToken,
		"user_id":       login.User.ID,
	}, &refreshed)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotEqual(t, login.RefreshToken, refreshed.RefreshToken)

	// The old refresh token is revoked
	rec = doJSON(t, s, http.MethodPost, "/api/v1/auth/refresh", map[string]string{
		"refresh_token": login.RefreshToken,
		"user_id":       login.User.ID,
	}, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// Wrong password is rejected
	rec = doJSON(t, s, http.MethodPost, "/api/v1/auth/login", map[string]string{
		"username": "alice",
		"password": "wrong",
	}, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestIntegrityEndpoints(t *testing.T) {
	s := newTestServer(t)

	var check result.Result[json.RawMessage]
	rec := doJSON(t, s, http.MethodGet, "/api/v1/integrity/check", nil, &check)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, check.Succeeded)

	rec = doJSON(t, s, http.MethodPost, "/api/v1/integrity/repair", nil, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}
