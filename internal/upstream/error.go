// Package upstream describes failures of external collaborators such as the
// TinyURL API or the headless browser used for PDF rendering.
package upstream

import (
	"context"
	"errors"
	"fmt"
	"net"
)

// Error wraps a failure reported by, or while talking to, an upstream service.
type Error struct {
	Service string
	Err     error
	Timeout bool
}

func (e *Error) Error() string {
	if e.Timeout {
		return fmt.Sprintf("%s: timed out: %v", e.Service, e.Err)
	}

	return fmt.Sprintf("%s: %v", e.Service, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Retryable reports whether the caller may reasonably try the same request again.
func (e *Error) Retryable() bool {
	return e.Timeout
}

// Wrap converts err into an *Error for the named service, detecting timeouts.
// A nil err yields nil.
func Wrap(service string, err error) error {
	if err == nil {
		return nil
	}

	var existing *Error
	if errors.As(err, &existing) {
		return err
	}

	return &Error{
		Service: service,
		Err:     err,
		Timeout: isTimeout(err),
	}
}

// IsRetryable reports whether err contains a retryable upstream failure.
func IsRetryable(err error) bool {
	var upstreamErr *Error
	if errors.As(err, &upstreamErr) {
		return upstreamErr.Retryable()
	}

	return false
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}

	var netErr net.Error

	return errors.As(err, &netErr) && netErr.Timeout()
}
