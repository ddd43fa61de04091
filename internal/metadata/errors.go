package metadata

import (
	"errors"
	"fmt"
	"time"
)

// NotFoundError indicates the provider reported the repository as missing.
// Note GitHub also answers 404 for private repositories the credential
// cannot see.
type NotFoundError struct {
	Owner string
	Repo  string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("metadata: repository %s/%s not found", e.Owner, e.Repo)
}

// RateLimitError indicates the API quota is exhausted.
type RateLimitError struct {
	Remaining int
	ResetAt   time.Time
}

func (e *RateLimitError) Error() string {
	return fmt.Sprintf("metadata: rate limit exceeded (%d remaining, resets at %s)",
		e.Remaining, e.ResetAt.Format(time.RFC3339))
}

// APIError wraps any other non-success provider response.
type APIError struct {
	StatusCode int
	Message    string
	Err        error
}

func (e *APIError) Error() string {
	return fmt.Sprintf("metadata: provider API error (status %d): %s", e.StatusCode, e.Message)
}

func (e *APIError) Unwrap() error {
	return e.Err
}

// IsNotFound checks if an error is a NotFoundError.
func IsNotFound(err error) bool {
	var notFound *NotFoundError
	return errors.As(err, &notFound)
}

// IsRateLimit checks if an error is a RateLimitError.
func IsRateLimit(err error) bool {
	var rateLimited *RateLimitError
	return errors.As(err, &rateLimited)
}

// AsRateLimit extracts a RateLimitError if the error chain contains one.
func AsRateLimit(err error) (*RateLimitError, bool) {
	var rateLimited *RateLimitError
	if errors.As(err, &rateLimited) {
		return rateLimited, true
	}
	return nil, false
}

// IsAPIError checks if an error is an APIError.
func IsAPIError(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr)
}
