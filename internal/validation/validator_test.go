package validation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conectone/platform/models"
)

func fieldErrors(result *ValidationResult) map[string]string {
	out := make(map[string]string, len(result.Errors))
	for _, e := range result.Errors {
		out[e.Field] = e.Message
	}
	return out
}

func TestValidateBooking(t *testing.T) {
	v := New()

	valid := &models.Booking{
		PropertyID: "property-1",
		GuestName:  "Thandi Nkosi",
		GuestEmail: "thandi@example.com",
		CheckIn:    time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
		CheckOut:   time.Date(2026, 9, 5, 0, 0, 0, 0, time.UTC),
		Guests:     2,
	}
	result := v.ValidateBooking(valid)
	assert.True(t, result.Valid)
	assert.Empty(t, result.Errors)
}

func TestValidateBookingErrors(t *testing.T) {
	v := New()

	b := &models.Booking{
		GuestEmail: "not-an-email",
		CheckIn:    time.Date(2026, 9, 5, 0, 0, 0, 0, time.UTC),
		CheckOut:   time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
		Guests:     0,
	}
	result := v.ValidateBooking(b)
	require.False(t, result.Valid)

	fields := fieldErrors(result)
	assert.Contains(t, fields, "property_id")
	assert.Contains(t, fields, "guest_name")
	assert.Equal(t, "Must be a valid email address", fields["guest_email"])
	assert.Equal(t, "Check-out must be after check-in", fields["check_out"])
	assert.Contains(t, fields, "guests")
}

func TestValidateProperty(t *testing.T) {
	v := New()

	p := &models.Property{
		Name:        "Seaview Villa",
		Type:        "villa",
		City:        "Knysna",
		Sleeps:      4,
		Bedrooms:    6,
		NightlyRate: 100000,
		Currency:    "ZAR",
	}
	result := v.ValidateProperty(p)
	require.False(t, result.Valid)
	assert.Equal(t, "bedrooms", result.Errors[0].Field)

	p.Bedrooms = 2
	assert.True(t, v.ValidateProperty(p).Valid)
}

func TestValidatePropertyBadType(t *testing.T) {
	v := New()

	p := &models.Property{
		Name:        "Seaview Villa",
		Type:        "castle",
		City:        "Knysna",
		Sleeps:      4,
		NightlyRate: 100000,
		Currency:    "ZAR",
	}
	result := v.ValidateProperty(p)
	require.False(t, result.Valid)

	fields := fieldErrors(result)
	assert.Contains(t, fields["type"], "Must be one of")
}

func TestValidateEvent(t *testing.T) {
	v := New()

	e := &models.Event{
		Title:      "Standup",
		StartsAt:   time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC),
		EndsAt:     time.Date(2026, 9, 1, 8, 0, 0, 0, time.UTC),
		Recurrence: "fortnightly",
	}
	result := v.ValidateEvent(e)
	require.False(t, result.Valid)

	fields := fieldErrors(result)
	assert.Equal(t, "End time cannot be before start time", fields["ends_at"])
	// recurrence fails both the struct tag and the business rule
	assert.Contains(t, fields, "recurrence")

	e.EndsAt = e.StartsAt.Add(30 * time.Minute)
	e.Recurrence = models.RecurrenceWeekly
	assert.True(t, v.ValidateEvent(e).Valid)
}

func TestValidateAdvert(t *testing.T) {
	v := New()

	a := &models.Advert{
		Title:        "Mountain bike for sale",
		Price:        250000,
		Currency:     "ZAR",
		ContactEmail: "seller@example.com",
	}
	assert.True(t, v.ValidateAdvert(a).Valid)

	a.ContactEmail = "bogus"
	result := v.ValidateAdvert(a)
	require.False(t, result.Valid)
	assert.Equal(t, "contact_email", result.Errors[0].Field)
}

func TestToSnake(t *testing.T) {
	tests := map[string]string{
		"GuestEmail":  "guest_email",
		"SKU":         "sku",
		"CategoryID":  "category_id",
		"Name":        "name",
		"NightlyRate": "nightly_rate",
	}
	for in, want := range tests {
		assert.Equal(t, want, toSnake(in), in)
	}
}
