package notification

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument is returned for a malformed timeout or urgency
	// encoding. The draft is left unchanged.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrUnsupported marks operations the current platform does not have.
	// It also matches errors.ErrUnsupported.
	ErrUnsupported = fmt.Errorf("not supported on this platform: %w", errors.ErrUnsupported)
)

// DeliveryError is returned by Show when the notification backend fails.
// Its message is the backend's error text, unchanged.
type DeliveryError struct {
	Err error
}

func (e *DeliveryError) Error() string { return e.Err.Error() }

func (e *DeliveryError) Unwrap() error { return e.Err }

// QueryError is returned when a server query fails on a platform that
// supports it, e.g. because no notification server is running.
type QueryError struct {
	Op  string
	Err error
}

func (e *QueryError) Error() string { return e.Op + ": " + e.Err.Error() }

func (e *QueryError) Unwrap() error { return e.Err }
