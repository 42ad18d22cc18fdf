package models

import (
	"errors"
	"fmt"
)

// Sentinel errors for validation.
var (
	ErrMissingName       = errors.New("name is required")
	ErrMissingFrom       = errors.New("from is required")
	ErrMissingTo         = errors.New("to is required")
	ErrMissingWeight     = errors.New("weight is required")
	ErrMissingBlocked    = errors.New("is_blocked is required")
	ErrInvalidCoordinate = errors.New("coordinate out of range")
	ErrNegativeDistance  = errors.New("distance_km cannot be negative")
	ErrNegativeDuration  = errors.New("duration_minutes cannot be negative")
	ErrNegativeWeight    = errors.New("weight cannot be negative")
	ErrInvalidTimestamp  = errors.New("invalid RFC3339 timestamp")
	ErrUnknownAlgorithm  = errors.New("unknown algorithm")
)

// Sentinel errors for entity lookups.
var (
	ErrNodeNotFound = errors.New("node not found")
	ErrEdgeNotFound = errors.New("edge not found")
)

// Sentinel errors for graph mutations and searches.
var (
	// ErrDuplicateID indicates an insert with an id already present
	// (maps to HTTP 409 Conflict).
	ErrDuplicateID = errors.New("duplicate id")

	// ErrInvalidReference indicates an edge naming a missing endpoint
	// (maps to HTTP 422 Unprocessable Entity).
	ErrInvalidReference = errors.New("invalid node reference")

	// ErrUnknownNode indicates a search endpoint absent from the snapshot.
	ErrUnknownNode = errors.New("unknown node")

	// ErrEmptyGraph indicates an operation that needs at least one node.
	ErrEmptyGraph = errors.New("graph has no nodes")

	// ErrSearchCancelled indicates the caller's context ended mid-search.
	ErrSearchCancelled = errors.New("search cancelled")
)

// ErrFieldTooLong returns an error indicating a field exceeds its maximum length.
func ErrFieldTooLong(field string, maxLen int) error {
	return fmt.Errorf("%s exceeds maximum length of %d", field, maxLen)
}

// ErrInvalidKind returns an error indicating an enum field holds an unknown value.
func ErrInvalidKind(field, value string) error {
	return fmt.Errorf("%s has unknown value %q", field, value)
}
