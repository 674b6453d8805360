package client

import (
	"errors"
	"fmt"
)

// Errors
var (
	// ErrNetwork means the transport could not be established at all.
	ErrNetwork = errors.New("network failure")
	// ErrDecode means the response body did not parse as the expected shape.
	ErrDecode = errors.New("invalid response body")
)

// RemoteError is returned when the transport succeeded but the remote
// answered with a non-2xx status code.
type RemoteError struct {
	Status int
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("remote returned status %d", e.Status)
}
