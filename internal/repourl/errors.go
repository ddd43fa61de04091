package repourl

import (
	"errors"
	"fmt"
)

// InvalidFormatError indicates the input is neither an absolute URL nor an
// "owner/repo" shorthand.
type InvalidFormatError struct {
	Input string
	Err   error
}

func (e *InvalidFormatError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("repourl: invalid repository reference %q: %v", e.Input, e.Err)
	}
	return fmt.Sprintf("repourl: invalid repository reference %q", e.Input)
}

func (e *InvalidFormatError) Unwrap() error {
	return e.Err
}

// MissingOwnerOrRepoError indicates the reference parsed as a URL but its
// path does not carry both an owner and a repository segment.
type MissingOwnerOrRepoError struct {
	Input string
}

func (e *MissingOwnerOrRepoError) Error() string {
	return fmt.Sprintf("repourl: reference %q is missing an owner or repository segment", e.Input)
}

// IsInvalidFormat checks if an error is an InvalidFormatError.
func IsInvalidFormat(err error) bool {
	var formatErr *InvalidFormatError
	return errors.As(err, &formatErr)
}

// IsMissingOwnerOrRepo checks if an error is a MissingOwnerOrRepoError.
func IsMissingOwnerOrRepo(err error) bool {
	var missingErr *MissingOwnerOrRepoError
	return errors.As(err, &missingErr)
}
