package repositories

import "errors"

// Sentinel errors shared across repositories so higher layers can map
// failures to responses without inspecting error strings.

// ErrNotFound is returned when a row does not exist, or when a parent link in
// an ownership chain is broken. Handlers translate it to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrForbidden is returned when the caller attempts an operation on a
// resource owned by another user. Handlers translate it to HTTP 403.
var ErrForbidden = errors.New("forbidden")

// ErrDuplicate is returned when a uniqueness constraint would be violated,
// such as registering an existing username. Handlers translate it to 400.
var ErrDuplicate = errors.New("duplicate")
