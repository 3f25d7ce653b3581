package validate

import (
	"fmt"
	"regexp"
	"strings"
)

// Error names the offending input field so handlers can surface it in a 400
// response without guessing.
type Error struct {
	Field  string
	Reason string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

func Errorf(field, format string, args ...any) *Error {
	return &Error{Field: field, Reason: fmt.Sprintf(format, args...)}
}

var emailRe = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

func Required(field, value string) *Error {
	if strings.TrimSpace(value) == "" {
		return Errorf(field, "is required")
	}
	return nil
}

func MaxLen(field, value string, max int) *Error {
	if len(value) > max {
		return Errorf(field, "must be at most %d characters", max)
	}
	return nil
}

func MinLen(field, value string, min int) *Error {
	if len(value) < min {
		return Errorf(field, "must be at least %d characters", min)
	}
	return nil
}

func Email(field, value string) *Error {
	if !emailRe.MatchString(value) {
		return Errorf(field, "must be a valid format")
	}
	return nil
}
