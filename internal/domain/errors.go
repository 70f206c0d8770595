package domain

import "errors"

// ErrNotFound is returned by detail resolvers when no document matches the
// requested slug and no fallback exists for it.
var ErrNotFound = errors.New("document not found")
