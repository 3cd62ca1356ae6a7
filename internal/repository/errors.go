// Package repository holds the data access logic for the school domain
// entities.  Each repository embeds a *sql.DB and exposes narrow methods
// over one table.  Sentinel errors defined here and next to each
// repository let handlers distinguish failure scenarios with errors.Is
// instead of string matching.
package repository

import "errors"

// ErrDuplicate is returned when an insert collides with an existing row,
// such as a room that already exists in the same building or a seating
// plan reusing an exam date and code.  Handlers should translate this
// into an HTTP 409 response; it must never surface as a crash.
var ErrDuplicate = errors.New("duplicate record")
