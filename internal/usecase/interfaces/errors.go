package interfaces

import "errors"

// ErrConflict is returned by repositories when a conditional write loses to
// an existing item, so callers can retry with a fresh key instead of treating
// it as an infrastructure failure.
var ErrConflict = errors.New("item already exists")

// ErrNotFound is returned by repositories when a conditional update targets
// an item that no longer exists, e.g. one deleted by a concurrent request.
var ErrNotFound = errors.New("item not found")
