package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/reposcout/reposcout/internal/auth"
	"github.com/reposcout/reposcout/internal/repourl"
	"github.com/reposcout/reposcout/internal/resolver"
)

// Exit codes for different error types
const (
	ExitSuccess         = 0 // Successful execution
	ExitGenericError    = 1 // Generic error
	ExitConfigError     = 2 // Configuration error
	ExitValidationError = 3 // Input validation error
	ExitAuthError       = 4 // Authentication error
	ExitNetworkError    = 5 // Network/connectivity error
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	cmd := newRootCommand()
	cmd.SetArgs(args)

	if err := cmd.Execute(); err != nil {
		var cliErr *CLIError
		if errors.As(err, &cliErr) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", cliErr)
			return cliErr.ExitCode()
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return exitCodeFor(err)
	}
	return ExitSuccess
}

// exitCodeFor maps the resolution error taxonomy onto documented exit
// codes. Kinds, not messages, drive the mapping.
func exitCodeFor(err error) int {
	var installErr *resolver.AppInstallationRequiredError

	switch {
	case repourl.IsInvalidFormat(err), repourl.IsMissingOwnerOrRepo(err):
		return ExitValidationError
	case auth.IsInvalidTokenFormat(err), errors.As(err, &installErr):
		return ExitAuthError
	case auth.IsAppAuthError(err):
		return ExitNetworkError
	default:
		return ExitGenericError
	}
}
