// Package validation provides request payload validation for the platform
// models. It combines go-playground/validator struct-tag validation with
// module-specific business rules (booking date ranges, advert windows,
// event times) and reports field-level errors suitable for API responses.
//
// # Usage Example
//
//	v := validation.New()
//	result := v.ValidateBooking(&booking)
//	if !result.Valid {
//	    for _, err := range result.Errors {
//	        fmt.Printf("%s: %s\n", err.Field, err.Message)
//	    }
//	}
package validation

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/conectone/platform/models"
)

// Validator validates platform entities before they reach storage.
type Validator struct {
	structValidator *validator.Validate
}

// ValidationError represents a single validation error with field-level details.
type ValidationError struct {
	// Field is the name of the field that failed validation
	Field string `json:"field"`

	// Message describes why the validation failed
	Message string `json:"message"`

	// Value is the invalid value that caused the error (optional)
	Value interface{} `json:"value,omitempty"`
}

// ValidationResult represents the complete result of a validation operation.
type ValidationResult struct {
	// Valid is true if validation passed, false otherwise
	Valid bool `json:"valid"`

	// Errors contains all validation errors found (empty if Valid is true)
	Errors []ValidationError `json:"errors,omitempty"`
}

// New creates a Validator ready to validate every platform entity.
func New() *Validator {
	return &Validator{
		structValidator: validator.New(),
	}
}

// Validate runs struct-tag validation on any entity.
func (v *Validator) Validate(entity interface{}) *ValidationResult {
	errs := v.validateStruct(entity)
	return &ValidationResult{
		Valid:  len(errs) == 0,
		Errors: errs,
	}
}

// ValidateProperty validates an accommodation listing.
func (v *Validator) ValidateProperty(p *models.Property) *ValidationResult {
	errs := v.validateStruct(p)

	if p.Bedrooms > p.Sleeps {
		errs = append(errs, ValidationError{
			Field:   "bedrooms",
			Message: "Bedrooms cannot exceed the number of guests the property sleeps",
			Value:   p.Bedrooms,
		})
	}

	return &ValidationResult{Valid: len(errs) == 0, Errors: errs}
}

// ValidateBooking validates a stay reservation, including the date range.
func (v *Validator) ValidateBooking(b *models.Booking) *ValidationResult {
	errs := v.validateStruct(b)

	if !b.CheckIn.IsZero() && !b.CheckOut.IsZero() && !b.CheckOut.After(b.CheckIn) {
		errs = append(errs, ValidationError{
			Field:   "check_out",
			Message: "Check-out must be after check-in",
		})
	}

	return &ValidationResult{Valid: len(errs) == 0, Errors: errs}
}

// ValidateEvent validates a calendar event, including its time range and
// recurrence settings.
func (v *Validator) ValidateEvent(e *models.Event) *ValidationResult {
	errs := v.validateStruct(e)

	if !e.StartsAt.IsZero() && !e.EndsAt.IsZero() && e.EndsAt.Before(e.StartsAt) {
		errs = append(errs, ValidationError{
			Field:   "ends_at",
			Message: "End time cannot be before start time",
		})
	}

	if e.Recurrence != "" && e.Recurrence != models.RecurrenceNone {
		switch e.Recurrence {
		case models.RecurrenceDaily, models.RecurrenceWeekly, models.RecurrenceMonthly:
		default:
			errs = append(errs, ValidationError{
				Field:   "recurrence",
				Message: "Recurrence must be one of: none, daily, weekly, monthly",
				Value:   e.Recurrence,
			})
		}
	}

	return &ValidationResult{Valid: len(errs) == 0, Errors: errs}
}

// ValidateAdvert validates an advert listing.
func (v *Validator) ValidateAdvert(a *models.Advert) *ValidationResult {
	errs := v.validateStruct(a)

	if a.Price < 0 {
		errs = append(errs, ValidationError{
			Field:   "price",
			Message: "Price cannot be negative",
			Value:   a.Price,
		})
	}

	return &ValidationResult{Valid: len(errs) == 0, Errors: errs}
}

// validateStruct translates validator.v10 tag failures into field errors.
func (v *Validator) validateStruct(entity interface{}) []ValidationError {
	err := v.structValidator.Struct(entity)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []ValidationError{{Field: "document", Message: err.Error()}}
	}

	errs := make([]ValidationError, 0, len(verrs))
	for _, fe := range verrs {
		errs = append(errs, ValidationError{
			Field:   fieldName(fe),
			Message: message(fe),
			Value:   fe.Value(),
		})
	}
	return errs
}

// fieldName returns the lower snake-ish field name used in JSON payloads.
func fieldName(fe validator.FieldError) string {
	// Namespace looks like "Booking.GuestEmail"; drop the struct prefix.
	name := fe.Field()
	return toSnake(name)
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required"
	case "email":
		return "Must be a valid email address"
	case "max":
		return fmt.Sprintf("Must be at most %s characters", fe.Param())
	case "min":
		return fmt.Sprintf("Must be at least %s", fe.Param())
	case "len":
		return fmt.Sprintf("Must be exactly %s characters", fe.Param())
	case "oneof":
		return fmt.Sprintf("Must be one of: %s", strings.ReplaceAll(fe.Param(), " ", ", "))
	default:
		return fmt.Sprintf("Failed validation rule: %s", fe.Tag())
	}
}

func toSnake(s string) string {
	var b strings.Builder
	for i, r := range s {
		if r >= 'A' && r <= 'Z' {
			// keep runs of capitals together (SKU, ID)
			if i > 0 && (s[i-1] < 'A' || s[i-1] > 'Z') {
				b.WriteByte('_')
			}
			b.WriteRune(r + ('a' - 'A'))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
