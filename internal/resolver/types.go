package resolver

import (
	"context"
	"fmt"
	"time"

	"github.com/reposcout/reposcout/internal/auth"
	"github.com/reposcout/reposcout/internal/repourl"
)

// Service resolves a raw repository reference into normalized identity plus
// provider metadata.
type Service interface {
	Resolve(ctx context.Context, input string, authCfg auth.Config) (*Result, error)
}

// RepoMetadata is the JSON-serializable identity+visibility record.
type RepoMetadata struct {
	Owner     string           `json:"owner"`
	Repo      string           `json:"repo"`
	Branch    string           `json:"branch,omitempty"`
	Commit    string           `json:"commit,omitempty"`
	Provider  repourl.Provider `json:"provider"`
	IsPrivate bool             `json:"isPrivate"`
}

// Result is the merged resolution outcome returned to callers. Warnings
// carry metadata-fetch failures that were recovered into the IsPrivate
// default instead of aborting the resolution.
type Result struct {
	RepoMetadata
	NormalizedURL string    `json:"normalizedUrl"`
	OriginalURL   string    `json:"originalUrl"`
	Warnings      []Warning `json:"warnings,omitempty"`
}

// WarningKind distinguishes recoverable metadata-fetch failures.
type WarningKind string

const (
	WarningRepoNotFound  WarningKind = "repo_not_found"
	WarningRateLimited   WarningKind = "rate_limited"
	WarningProviderError WarningKind = "provider_error"
)

// Warning records a metadata-fetch failure that did not abort resolution.
// Rate-limit warnings keep the remaining count and reset time so the
// observability channel can surface them.
type Warning struct {
	Kind      WarningKind `json:"kind"`
	Message   string      `json:"message"`
	Remaining int         `json:"remaining,omitempty"`
	ResetAt   *time.Time  `json:"resetAt,omitempty"`
}

// Logger is the minimal structured logging surface the service needs.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// WarningSink receives recovered metadata warnings, e.g. a webhook notifier.
type WarningSink interface {
	Notify(ctx context.Context, result *Result, warning Warning)
}

// AppInstallationRequiredError is the hard-stop surfaced when App
// credentials are valid but the App has no installation yet. It carries the
// page the user must visit before a token can be minted.
type AppInstallationRequiredError struct {
	InstallationURL string
}

func (e *AppInstallationRequiredError) Error() string {
	return fmt.Sprintf("resolver: app authentication incomplete, install the app at %s", e.InstallationURL)
}
