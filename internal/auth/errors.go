package auth

import (
	"errors"
	"fmt"
)

// InvalidTokenFormatError indicates a personal access token that matches
// neither of the known GitHub token prefixes. The token itself is never
// echoed back.
type InvalidTokenFormatError struct {
	Hint string
}

func (e *InvalidTokenFormatError) Error() string {
	return fmt.Sprintf("auth: token does not look like a GitHub personal access token (%s)", e.Hint)
}

// AppAuthError wraps failures during the App token exchange. It always
// propagates; the resolver never downgrades a failed exchange to NoAuth.
type AppAuthError struct {
	Operation string
	Err       error
}

func (e *AppAuthError) Error() string {
	return fmt.Sprintf("auth: app authentication failed during %s: %v", e.Operation, e.Err)
}

func (e *AppAuthError) Unwrap() error {
	return e.Err
}

// IsInvalidTokenFormat checks if an error is an InvalidTokenFormatError.
func IsInvalidTokenFormat(err error) bool {
	var tokenErr *InvalidTokenFormatError
	return errors.As(err, &tokenErr)
}

// IsAppAuthError checks if an error is an AppAuthError.
func IsAppAuthError(err error) bool {
	var appErr *AppAuthError
	return errors.As(err, &appErr)
}
