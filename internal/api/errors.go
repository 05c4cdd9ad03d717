package api

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrNotFound matches 404 responses. A missing profile is reported this
	// way and is handled as a first-use signal, not a failure.
	ErrNotFound = errors.New("not found")
	// ErrUnauthorized matches 401 responses (bad credentials, stale token).
	ErrUnauthorized = errors.New("unauthorized")
)

// Error carries the backend's structured detail message for a non-2xx
// response, or a generic message when the body had none.
type Error struct {
	Status int
	Detail string
}

func (e *Error) Error() string {
	return fmt.Sprintf("backend error (status %d): %s", e.Status, e.Detail)
}

func (e *Error) Is(target error) bool {
	switch target {
	case ErrNotFound:
		return e.Status == http.StatusNotFound
	case ErrUnauthorized:
		return e.Status == http.StatusUnauthorized
	}
	return false
}
