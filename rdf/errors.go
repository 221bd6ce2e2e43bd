package rdf

import "errors"

// Common graph errors.
var (
	// ErrNotFound is returned when an identifier is absent from the graph.
	ErrNotFound = errors.New("term not found")
)
