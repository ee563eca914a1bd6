package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when the upstream user does not exist.
	ErrNotFound = errors.New("user not found")
	// ErrUnauthorized is returned when the upstream rejects the configured token.
	ErrUnauthorized = errors.New("github token is invalid or expired")
	// ErrMissingToken is returned when no GitHub token is configured.
	ErrMissingToken = errors.New("github token missing")
)

// UpstreamError is any other failed upstream call. StatusCode is zero when
// no response was received at all.
type UpstreamError struct {
	StatusCode int
	Err        error
}

func (e *UpstreamError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("github request failed: %v", e.Err)
	}
	return fmt.Sprintf("github responded with status %d: %v", e.StatusCode, e.Err)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}
