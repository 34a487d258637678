package graph

import "errors"

// Sentinel errors for the ID-keyed surface.
var (
	// ErrEmptyVertexID indicates an operation was given the empty string as a vertex ID.
	ErrEmptyVertexID = errors.New("graph: vertex ID is empty")

	// ErrVertexNotFound indicates a query referenced an unknown vertex ID.
	ErrVertexNotFound = errors.New("graph: vertex not found")
)
