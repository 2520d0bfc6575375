package util

import (
	"fmt"
	"strings"
)

// ValidationError marks a request rejected for a malformed or missing
// field. The translator in handlers maps it to a 400 rather than the
// generic 500 path.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func ValidateDescription(description string) bool {
	return len(strings.TrimSpace(description)) > 0
}
