package shared

import (
	"fmt"
	"strings"
	"time"
)

// Field validators shared by every aggregate. Each validator returns the
// normalized (trimmed) value so constructors and setters can validate and
// store in one call. All failures return *ValidationError.

// ValidateNotBlank ensures the value is not empty or all-whitespace and
// returns the trimmed value.
func ValidateNotBlank(value, field string) (string, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return "", NewValidationError(field, field+" must not be blank")
	}
	return trimmed, nil
}

// ValidateLength ensures the trimmed value has a length within [min, max]
// and returns it. A blank value is always rejected; use
// ValidateLengthAllowBlank for optional fields.
func ValidateLength(value, field string, min, max int) (string, error) {
	trimmed, err := ValidateNotBlank(value, field)
	if err != nil {
		return "", err
	}
	if n := len([]rune(trimmed)); n < min || n > max {
		return "", NewValidationError(field,
			fmt.Sprintf("%s length must be between %d and %d", field, min, max))
	}
	return trimmed, nil
}

// ValidateLengthAllowBlank is ValidateLength for fields where empty is a
// legal value (length bound [0, max]).
func ValidateLengthAllowBlank(value, field string, max int) (string, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return "", nil
	}
	if len([]rune(trimmed)) > max {
		return "", NewValidationError(field,
			fmt.Sprintf("%s length must be between %d and %d", field, 0, max))
	}
	return trimmed, nil
}

// ValidateDigits ensures the value consists only of digits 0-9 and has
// exactly the required length. The raw value is checked without trimming so
// padded input is rejected rather than silently normalized.
func ValidateDigits(value, field string, length int) (string, error) {
	if _, err := ValidateNotBlank(value, field); err != nil {
		return "", err
	}
	for _, r := range value {
		if r < '0' || r > '9' {
			return "", NewValidationError(field, field+" must only contain digits 0-9")
		}
	}
	if len(value) != length {
		return "", NewValidationError(field,
			fmt.Sprintf("%s must be exactly %d digits", field, length))
	}
	return value, nil
}

// ValidateInstantNotPast ensures the instant is set and not strictly earlier
// than the clock's current time. An instant equal to "now" is valid so the
// boundary is never flaky.
func ValidateInstantNotPast(t time.Time, field string, clock Clock) (time.Time, error) {
	if t.IsZero() {
		return time.Time{}, NewValidationError(field, field+" must not be zero")
	}
	if t.Before(clock.Now()) {
		return time.Time{}, NewValidationError(field, field+" must not be in the past")
	}
	return t, nil
}

// ValidateDateNotPast ensures the value's calendar day (UTC) is not before
// the clock's current day. Today is valid.
func ValidateDateNotPast(t time.Time, field string, clock Clock) (time.Time, error) {
	if t.IsZero() {
		return time.Time{}, NewValidationError(field, field+" must not be zero")
	}
	if startOfDay(t).Before(startOfDay(clock.Now())) {
		return time.Time{}, NewValidationError(field, field+" must not be in the past")
	}
	return t, nil
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
