package api

import (
	"fmt"
	"net/http"

	"github.com/mvolkova/taskquest/internal/common"
)

// Error is a failure reported by the backend: a human-readable message plus
// the HTTP status code, so callers handle every API failure with one code
// path.
type Error struct {
	Message string
	Status  int
	Details []string
}

func (e *Error) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("%s (status %d)", e.Message, e.Status)
	}
	return e.Message
}

// Unwrap maps auth-related statuses to the shared sentinel so callers can
// use errors.Is(err, common.ErrorUnauthorized).
func (e *Error) Unwrap() error {
	switch e.Status {
	case http.StatusUnauthorized, http.StatusForbidden:
		return common.ErrorUnauthorized
	}
	return nil
}
