package backend

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownSource = errors.New("backend: unknown mention source")
	ErrEmptyCompany  = errors.New("backend: company id is required")
)

// StatusError is returned for non-2xx responses.
type StatusError struct {
	Path       string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("backend: %s returned status %d", e.Path, e.StatusCode)
}
