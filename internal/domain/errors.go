package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrNotFound marks a request for a record the API no longer has.
// Callers match it with errors.Is to distinguish a stale reference
// from a real failure.
var ErrNotFound = errors.New("not found")

// APIError is a non-2xx response from the billing API, carrying the
// server-provided detail message when one was present.
type APIError struct {
	Op     string
	Status int
	Detail string
}

func (e *APIError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("%s: api returned status %d", e.Op, e.Status)
	}
	return fmt.Sprintf("%s: %s (status %d)", e.Op, e.Detail, e.Status)
}

func (e *APIError) Unwrap() error {
	if e.Status == 404 {
		return ErrNotFound
	}
	return nil
}

// ValidationError carries the per-field problems of a draft that was
// rejected before reaching the API.
type ValidationError struct {
	Problems map[string]string
}

func (e *ValidationError) Error() string {
	fields := make([]string, 0, len(e.Problems))
	for field := range e.Problems {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	var b strings.Builder
	b.WriteString("validation failed")
	for i, field := range fields {
		if i == 0 {
			b.WriteString(": ")
		} else {
			b.WriteString("; ")
		}
		b.WriteString(field)
		b.WriteString(" ")
		b.WriteString(e.Problems[field])
	}
	return b.String()
}
