// Package store provides the document-store access layer. The interfaces
// describe the operations handlers need; MongoDB implementations back them in
// production and in-memory implementations back them in tests.
package store

import "errors"

// ErrNotFound is returned when a lookup matches no document. Handlers
// translate it into an HTTP 404.
var ErrNotFound = errors.New("not found")
