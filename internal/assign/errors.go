// Package assign implements the seat and room assignment engine: ordering
// students by roll number, splitting them across rooms, laying out per-room
// seat grids and persisting the resulting seating plans.  The engine is
// in-memory and single-pass; it assumes its student and room snapshots are
// already validated and loaded by the caller.
package assign

import "errors"

// ErrInvalidConfiguration is returned when a run cannot proceed at all,
// such as being asked to assign students with zero rooms configured.
// Handlers should translate this into an HTTP 400 response.
var ErrInvalidConfiguration = errors.New("invalid configuration")
