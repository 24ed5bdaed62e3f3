// internal/errors/errors.go
package errors

import (
	"fmt"
	"strings"
)

// ErrInvalidOrgName is returned when the configured organization is not a valid GitHub login.
type ErrInvalidOrgName struct {
	Org string
}

func (e *ErrInvalidOrgName) Error() string {
	return fmt.Sprintf("invalid organization name: %q, expected letters, digits and single hyphens", e.Org)
}

// ErrInvalidOption is returned when a view state value is outside its allowed set.
type ErrInvalidOption struct {
	Field   string
	Value   string
	Allowed []string
}

func (e *ErrInvalidOption) Error() string {
	return fmt.Sprintf("invalid %s: %q, expected one of [%s]", e.Field, e.Value, strings.Join(e.Allowed, ", "))
}

// ErrFetch wraps any failure of the repository listing call.
type ErrFetch struct {
	Org string
	Err error
}

func (e *ErrFetch) Error() string {
	return fmt.Sprintf("fetch repositories of %q: %v", e.Org, e.Err)
}

func (e *ErrFetch) Unwrap() error {
	return e.Err
}
