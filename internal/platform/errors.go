package platform

import (
	"errors"
	"fmt"
)

// ErrMissingParameter is returned before any network I/O when a required
// identifier is empty.
var ErrMissingParameter = errors.New("missing required parameter")

// StatusError is a non-2xx response from the platform.
type StatusError struct {
	Op     string
	Status int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s: HTTP %d", e.Op, e.Status)
}
