package interfaces

import (
	"errors"
	"fmt"
)

// Errors shared by every adapter behind these interfaces.
var (
	ErrStorageUnavailable = errors.New("storage unavailable")
	ErrMalformedData      = errors.New("malformed data")
	ErrUpstreamFailure    = errors.New("upstream failure")
)

// UpstreamStatusError reports a non-success HTTP answer from an external service.
type UpstreamStatusError struct {
	Service    string
	StatusCode int
	Status     string
}

func (e *UpstreamStatusError) Error() string {
	return fmt.Sprintf("%s responded %d %s", e.Service, e.StatusCode, e.Status)
}

func (e *UpstreamStatusError) Unwrap() error {
	return ErrUpstreamFailure
}
