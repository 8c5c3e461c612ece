package aep

import (
	"errors"
	"fmt"
)

// UpstreamError is returned when AEP answers with a non-2xx status.
// Body is the upstream payload, unmodified.
type UpstreamError struct {
	Operation string
	Status    int
	Body      []byte
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("aep %s returned status %d", e.Operation, e.Status)
}

// NetworkError is returned when the request to AEP could not be completed.
type NetworkError struct {
	Operation string
	Err       error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("could not connect to Adobe API during %s: %v", e.Operation, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// AsUpstream returns the *UpstreamError in err's chain, if any.
func AsUpstream(err error) (*UpstreamError, bool) {
	var upErr *UpstreamError
	if errors.As(err, &upErr) {
		return upErr, true
	}
	return nil, false
}

// IsNetwork reports whether err is, or wraps, a *NetworkError.
func IsNetwork(err error) bool {
	var netErr *NetworkError
	return errors.As(err, &netErr)
}
