package resolver

import (
	"context"

	"github.com/reposcout/reposcout/internal/auth"
	"github.com/reposcout/reposcout/internal/metadata"
	"github.com/reposcout/reposcout/internal/repourl"
)

// AuthResolver is the credential-resolution dependency.
type AuthResolver interface {
	Resolve(ctx context.Context, cfg auth.Config) (auth.Outcome, error)
}

type service struct {
	authResolver AuthResolver
	fetcher      metadata.Fetcher
	logger       Logger
	sink         WarningSink
}

// New creates the resolution service. sink may be nil when no warning
// channel is configured.
func New(authResolver AuthResolver, fetcher metadata.Fetcher, logger Logger, sink WarningSink) Service {
	return &service{
		authResolver: authResolver,
		fetcher:      fetcher,
		logger:       logger,
		sink:         sink,
	}
}

// Resolve runs normalize, auth resolution, and the metadata fetch in
// sequence. Input-validation and auth errors abort the whole resolution;
// metadata-fetch failures degrade to IsPrivate=false with a warning, since
// the parse is still valid and useful without live metadata. That asymmetry
// is deliberate product behavior.
func (s *service) Resolve(ctx context.Context, input string, authCfg auth.Config) (*Result, error) {
	ref, err := repourl.Normalize(input)
	if err != nil {
		return nil, err
	}

	result := &Result{
		RepoMetadata: RepoMetadata{
			Owner:    ref.Owner,
			Repo:     ref.Name,
			Branch:   ref.Branch,
			Commit:   ref.Commit,
			Provider: ref.Provider,
		},
		NormalizedURL: ref.NormalizedURL,
		OriginalURL:   ref.OriginalInput,
	}

	// Only GitHub is queried for metadata. Other providers keep the
	// conservative IsPrivate=false default.
	if ref.Provider != repourl.ProviderGitHub {
		s.logger.Debug("skipping metadata fetch for non-github provider",
			"provider", string(ref.Provider), "repo", ref.Owner+"/"+ref.Name)
		return result, nil
	}

	outcome, err := s.authResolver.Resolve(ctx, authCfg)
	if err != nil {
		return nil, err
	}
	if pending, ok := outcome.(auth.AppAuthPending); ok {
		return nil, &AppInstallationRequiredError{InstallationURL: pending.InstallationURL}
	}

	meta, err := s.fetcher.Fetch(ctx, ref, outcome)
	if err != nil {
		result.Warnings = append(result.Warnings, s.recordWarning(ctx, result, err))
		return result, nil
	}

	result.IsPrivate = meta.Private
	return result, nil
}

// recordWarning classifies a recovered fetch failure, logs it, and pushes it
// to the warning sink when one is configured.
func (s *service) recordWarning(ctx context.Context, result *Result, err error) Warning {
	warning := Warning{Kind: WarningProviderError, Message: err.Error()}

	switch {
	case metadata.IsNotFound(err):
		warning.Kind = WarningRepoNotFound
		s.logger.Warn("repository not found, assuming public",
			"repo", result.Owner+"/"+result.Repo)
	default:
		if rateErr, ok := metadata.AsRateLimit(err); ok {
			warning.Kind = WarningRateLimited
			warning.Remaining = rateErr.Remaining
			resetAt := rateErr.ResetAt
			warning.ResetAt = &resetAt
			s.logger.Warn("rate limited while fetching metadata",
				"repo", result.Owner+"/"+result.Repo,
				"remaining", rateErr.Remaining,
				"reset_at", rateErr.ResetAt)
		} else {
			s.logger.Warn("metadata fetch failed, assuming public",
				"repo", result.Owner+"/"+result.Repo, "error", err)
		}
	}

	if s.sink != nil {
		s.sink.Notify(ctx, result, warning)
	}
	return warning
}
