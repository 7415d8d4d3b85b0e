// Package repository defines error types that are reused across multiple
// repositories. These sentinel values allow higher layers such as
// handlers to distinguish between different failure scenarios: for
// example, ErrConflict signals that an operation cannot proceed due to
// conflicting state (an overlapping reservation window, an illegal
// status transition, or dependent records blocking a delete).
package repository

import "errors"

// ErrConflict is returned when a mutation cannot be performed because
// of conflicting state, such as creating a reservation whose window
// overlaps an existing booking on the same machine, or deleting a
// laundromat that still hosts machines. Handlers should translate
// this into an HTTP 409 response.
var ErrConflict = errors.New("conflict")

// ErrEmailExists is returned when registration would duplicate an
// email address that is already taken.
var ErrEmailExists = errors.New("email already exists")

// ErrMachineInactive is returned when a reservation targets a machine
// whose active flag is off.
var ErrMachineInactive = errors.New("machine is not active")
