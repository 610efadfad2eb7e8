package api

import (
	"fmt"
	"strconv"
	"time"

	"github.com/conectone/platform/internal/validation"
)

// atoi parses an integer query parameter, returning 0 on bad input.
func atoi(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}

// parseDate accepts RFC 3339 timestamps and bare dates (2006-01-02).
func parseDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, fmt.Errorf("date is required")
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, fmt.Errorf("expected RFC 3339 or 2006-01-02, got %q", s)
	}
	return t, nil
}

// fieldErrorMap flattens a validation result into the field->message map
// carried by APIError.
func fieldErrorMap(res *validation.ValidationResult) map[string]string {
	out := make(map[string]string, len(res.Errors))
	for _, e := range res.Errors {
		if _, exists := out[e.Field]; !exists {
			out[e.Field] = e.Message
		}
	}
	return out
}
