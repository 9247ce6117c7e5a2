package domain

import (
	"fmt"
	"sort"
	"strings"
)

// FieldErrors maps an offending form field to the reason it was rejected.
type FieldErrors map[string]string

// ValidationError reports malformed, missing, or unknown input fields with
// enough structure for a form to highlight each offending input.
type ValidationError struct {
	Fields FieldErrors
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "validation failed"
	}
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)
	return "validation failed: " + strings.Join(names, ", ")
}

// NotFoundError reports a point lookup that matched no row.
type NotFoundError struct {
	Entity string
	ID     string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Entity, e.ID)
}

// DataAccessError is the sanitized store-level failure returned to callers.
// It carries only the failed operation's name; the underlying store error
// is logged where it occurred and never exposed.
type DataAccessError struct {
	Op string
}

func (e *DataAccessError) Error() string {
	return "data access failed: " + e.Op
}
