// Package conectone is a typed Go client for the platform's REST API. It
// wraps the result envelopes the server returns and carries the bearer token
// and tenant header on every request.
package conectone

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/conectone/platform/models"
	"github.com/conectone/platform/pkg/result"
)

// Client talks to a ConectOne API server.
type Client struct {
	http   *resty.Client
	tenant string
}

// Option configures a Client.
type Option func(*Client)

// WithTenant sets the X-Tenant-ID header sent on every request. Only needed
// when the token's tenant should be overridden or auth is disabled.
func WithTenant(tenantID string) Option {
	return func(c *Client) { c.tenant = tenantID }
}

// WithTimeout sets the per-request timeout (default 30s).
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.http.SetTimeout(d) }
}

// WithToken sets a bearer token up front, skipping Login.
func WithToken(token string) Option {
	return func(c *Client) { c.http.SetAuthToken(token) }
}

// New creates a client for the given base URL (e.g. "http://localhost:8080").
func New(baseURL string, opts ...Option) (*Client, error) {
	if baseURL == "" {
		return nil, fmt.Errorf("baseURL is required")
	}

	c := &Client{
		http: resty.New().
			SetBaseURL(baseURL + "/api/v1").
			SetTimeout(30 * time.Second),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.tenant != "" {
		c.http.SetHeader("X-Tenant-ID", c.tenant)
	}
	return c, nil
}

// APIError is the error envelope returned by the server.
type APIError struct {
	Code    int               `json:"code"`
	Message string            `json:"message"`
	Details string            `json:"details,omitempty"`
	Fields  map[string]string `json:"field_errors,omitempty"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("conectone: %s: %s (HTTP %d)", e.Message, e.Details, e.Code)
	}
	return fmt.Sprintf("conectone: %s (HTTP %d)", e.Message, e.Code)
}

// do runs a request and maps non-2xx responses to *APIError.
func do(req *resty.Request, method, path string, out interface{}) error {
	apiErr := &APIError{}
	resp, err := req.SetResult(out).SetError(apiErr).Execute(method, path)
	if err != nil {
		return fmt.Errorf("conectone: request failed: %w", err)
	}
	if resp.IsError() {
		if apiErr.Message == "" {
			apiErr.Message = resp.Status()
		}
		apiErr.Code = resp.StatusCode()
		return apiErr
	}
	return nil
}

// TokenPair is the authentication response carried by Login.
type TokenPair struct {
	AccessToken  string    `json:"access_token"`
	RefreshToken string    `json:"refresh_token"`
	ExpiresAt    time.Time `json:"expires_at"`
	TokenType    string    `json:"token_type"`
}

type loginResponse struct {
	TokenPair
	User struct {
		ID       string   `json:"id"`
		TenantID string   `json:"tenant_id"`
		Username string   `json:"username"`
		Roles    []string `json:"roles"`
	} `json:"user"`
}

// Login authenticates and stores the bearer token for subsequent calls.
func (c *Client) Login(ctx context.Context, username, password string) (*TokenPair, error) {
	var out loginResponse
	err := do(c.http.R().SetContext(ctx).SetBody(map[string]string{
		"username": username,
		"password": password,
	}), resty.MethodPost, "/auth/login", &out)
	if err != nil {
		return nil, err
	}
	c.http.SetAuthToken(out.AccessToken)
	return &out.TokenPair, nil
}

// ListParams are the paging controls accepted by every list call.
type ListParams struct {
	Page     int
	PageSize int
	Search   string
	// Filters are endpoint-specific query parameters (status, city, ...)
	Filters map[string]string
}

func (p ListParams) apply(req *resty.Request) *resty.Request {
	if p.Page > 0 {
		req.SetQueryParam("page", fmt.Sprint(p.Page))
	}
	if p.PageSize > 0 {
		req.SetQueryParam("page_size", fmt.Sprint(p.PageSize))
	}
	if p.Search != "" {
		req.SetQueryParam("search", p.Search)
	}
	for k, v := range p.Filters {
		req.SetQueryParam(k, v)
	}
	return req
}

// ListProperties pages through accommodation listings.
func (c *Client) ListProperties(ctx context.Context, p ListParams) (*result.PaginatedResult[*models.Property], error) {
	var out result.PaginatedResult[*models.Property]
	if err := do(p.apply(c.http.R().SetContext(ctx)), resty.MethodGet, "/properties", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetProperty fetches one property.
func (c *Client) GetProperty(ctx context.Context, id string) (*models.Property, error) {
	var out result.Result[*models.Property]
	if err := do(c.http.R().SetContext(ctx), resty.MethodGet, "/properties/"+id, &out); err != nil {
		return nil, err
	}
	return out.Data, nil
}

// CreateProperty creates an accommodation listing.
func (c *Client) CreateProperty(ctx context.Context, prop *models.Property) (*models.Property, error) {
	var out result.Result[*models.Property]
	if err := do(c.http.R().SetContext(ctx).SetBody(prop), resty.MethodPost, "/properties", &out); err != nil {
		return nil, err
	}
	return out.Data, nil
}

// Availability reports whether a property is free for a half-open range.
func (c *Client) Availability(ctx context.Context, propertyID string, checkIn, checkOut time.Time) (bool, error) {
	var out struct {
		Available bool `json:"available"`
	}
	err := do(c.http.R().SetContext(ctx).
		SetQueryParam("check_in", checkIn.Format("2006-01-02")).
		SetQueryParam("check_out", checkOut.Format("2006-01-02")),
		resty.MethodGet, "/properties/"+propertyID+"/availability", &out)
	if err != nil {
		return false, err
	}
	return out.Available, nil
}

// BookingRequest is the payload for CreateBooking.
type BookingRequest struct {
	PropertyID string    `json:"property_id"`
	GuestName  string    `json:"guest_name"`
	GuestEmail string    `json:"guest_email"`
	CheckIn    time.Time `json:"check_in"`
	CheckOut   time.Time `json:"check_out"`
	Guests     int       `json:"guests"`
}

// CreateBooking reserves a stay. The returned booking is pending.
func (c *Client) CreateBooking(ctx context.Context, req BookingRequest) (*models.Booking, error) {
	var out result.Result[*models.Booking]
	if err := do(c.http.R().SetContext(ctx).SetBody(req), resty.MethodPost, "/bookings", &out); err != nil {
		return nil, err
	}
	return out.Data, nil
}

// ConfirmBooking moves a pending booking to confirmed.
func (c *Client) ConfirmBooking(ctx context.Context, id string) (*models.Booking, error) {
	var out result.Result[*models.Booking]
	if err := do(c.http.R().SetContext(ctx), resty.MethodPost, "/bookings/"+id+"/confirm", &out); err != nil {
		return nil, err
	}
	return out.Data, nil
}

// CancelBooking cancels a pending or confirmed booking.
func (c *Client) CancelBooking(ctx context.Context, id string) (*models.Booking, error) {
	var out result.Result[*models.Booking]
	if err := do(c.http.R().SetContext(ctx), resty.MethodPost, "/bookings/"+id+"/cancel", &out); err != nil {
		return nil, err
	}
	return out.Data, nil
}

// ListBookings pages through bookings. Use Filters for property_id, status,
// from and to.
func (c *Client) ListBookings(ctx context.Context, p ListParams) (*result.PaginatedResult[*models.Booking], error) {
	var out result.PaginatedResult[*models.Booking]
	if err := do(p.apply(c.http.R().SetContext(ctx)), resty.MethodGet, "/bookings", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListCountries returns the location reference data.
func (c *Client) ListCountries(ctx context.Context) ([]*models.Country, error) {
	var out result.Result[[]*models.Country]
	if err := do(c.http.R().SetContext(ctx), resty.MethodGet, "/locations/countries", &out); err != nil {
		return nil, err
	}
	return out.Data, nil
}

// Statistics mirrors the server's per-tenant statistics payload.
type Statistics struct {
	Properties        int   `json:"properties"`
	Bookings          int   `json:"bookings"`
	Schools           int   `json:"schools"`
	Students          int   `json:"students"`
	Adverts           int   `json:"adverts"`
	Posts             int   `json:"posts"`
	Events            int   `json:"events"`
	Products          int   `json:"products"`
	Users             int   `json:"users"`
	ConfirmedBookings int   `json:"confirmed_bookings"`
	Revenue           int64 `json:"revenue"`
}

// GetStatistics fetches the tenant's cross-module statistics.
func (c *Client) GetStatistics(ctx context.Context) (*Statistics, error) {
	var out result.Result[*Statistics]
	if err := do(c.http.R().SetContext(ctx), resty.MethodGet, "/stats", &out); err != nil {
		return nil, err
	}
	return out.Data, nil
}
