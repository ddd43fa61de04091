package resolver

import (
	"context"
	"testing"
	"time"

	"github.com/reposcout/reposcout/internal/auth"
	"github.com/reposcout/reposcout/internal/metadata"
	"github.com/reposcout/reposcout/internal/repourl"
)

type stubAuthResolver struct {
	outcome auth.Outcome
	err     error
	calls   int
}

func (s *stubAuthResolver) Resolve(ctx context.Context, cfg auth.Config) (auth.Outcome, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	if s.outcome == nil {
		return auth.NoAuth{}, nil
	}
	return s.outcome, nil
}

type stubFetcher struct {
	meta  *metadata.Metadata
	err   error
	calls int
}

func (s *stubFetcher) Fetch(ctx context.Context, ref *repourl.Reference, outcome auth.Outcome) (*metadata.Metadata, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.meta, nil
}

type testLogger struct {
	warns int
}

func (l *testLogger) Debug(msg string, args ...any) {}
func (l *testLogger) Info(msg string, args ...any)  {}
func (l *testLogger) Warn(msg string, args ...any)  { l.warns++ }
func (l *testLogger) Error(msg string, args ...any) {}

type captureSink struct {
	warnings []Warning
}

func (c *captureSink) Notify(ctx context.Context, result *Result, warning Warning) {
	c.warnings = append(c.warnings, warning)
}

func TestResolveSuccess(t *testing.T) {
	fetcher := &stubFetcher{meta: &metadata.Metadata{Private: true}}
	svc := New(&stubAuthResolver{}, fetcher, &testLogger{}, nil)

	result, err := svc.Resolve(context.Background(), "https://github.com/user/repo/tree/main", auth.Config{})
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}

	if !result.IsPrivate {
		t.Fatal("expected IsPrivate=true")
	}
	if result.Owner != "user" || result.Repo != "repo" || result.Branch != "main" {
		t.Fatalf("unexpected identity: %+v", result)
	}
	if result.NormalizedURL != "https://github.com/user/repo" {
		t.Fatalf("normalizedUrl = %q", result.NormalizedURL)
	}
	if result.OriginalURL != "https://github.com/user/repo/tree/main" {
		t.Fatalf("originalUrl = %q", result.OriginalURL)
	}
	if len(result.Warnings) != 0 {
		t.Fatalf("unexpected warnings: %+v", result.Warnings)
	}
}

func TestResolveInvalidInputHardStop(t *testing.T) {
	authRes := &stubAuthResolver{}
	fetcher := &stubFetcher{}
	svc := New(authRes, fetcher, &testLogger{}, nil)

	_, err := svc.Resolve(context.Background(), "invalid-url", auth.Config{})
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !repourl.IsInvalidFormat(err) {
		t.Fatalf("expected InvalidFormatError, got %v", err)
	}
	if authRes.calls != 0 || fetcher.calls != 0 {
		t.Fatal("invalid input must abort before auth and fetch")
	}
}

func TestResolveNonGitHubSkipsAuthAndFetch(t *testing.T) {
	authRes := &stubAuthResolver{}
	fetcher := &stubFetcher{}
	svc := New(authRes, fetcher, &testLogger{}, nil)

	result, err := svc.Resolve(context.Background(), "https://gitlab.com/user/repo", auth.Config{})
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}

	if result.Provider != repourl.ProviderGitLab {
		t.Fatalf("provider = %q", result.Provider)
	}
	if result.IsPrivate {
		t.Fatal("non-github providers default to IsPrivate=false")
	}
	if authRes.calls != 0 {
		t.Fatal("auth must be skipped for non-github providers")
	}
	if fetcher.calls != 0 {
		t.Fatal("fetch must be skipped for non-github providers")
	}
}

func TestResolveInvalidTokenAbortsBeforeFetch(t *testing.T) {
	fetcher := &stubFetcher{}
	svc := New(&stubAuthResolver{err: &auth.InvalidTokenFormatError{Hint: "bad prefix"}}, fetcher, &testLogger{}, nil)

	_, err := svc.Resolve(context.Background(), "user/repo", auth.Config{Token: "bogus"})
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !auth.IsInvalidTokenFormat(err) {
		t.Fatalf("expected InvalidTokenFormatError, got %v", err)
	}
	if fetcher.calls != 0 {
		t.Fatal("fetch must not run after an auth hard-stop")
	}
}

func TestResolveAppPendingHardStop(t *testing.T) {
	fetcher := &stubFetcher{}
	svc := New(&stubAuthResolver{outcome: auth.AppAuthPending{InstallationURL: "https://github.com/apps/reposcout/installations/new"}},
		fetcher, &testLogger{}, nil)

	_, err := svc.Resolve(context.Background(), "user/repo", auth.Config{})
	if err == nil {
		t.Fatal("expected error, got nil")
	}

	installErr, ok := err.(*AppInstallationRequiredError)
	if !ok {
		t.Fatalf("expected AppInstallationRequiredError, got %v", err)
	}
	if installErr.InstallationURL == "" {
		t.Fatal("installation URL must never be empty")
	}
	if fetcher.calls != 0 {
		t.Fatal("pending app auth must not attempt the metadata fetch")
	}
}

func TestResolveNotFoundDegradesToWarning(t *testing.T) {
	logger := &testLogger{}
	sink := &captureSink{}
	fetcher := &stubFetcher{err: &metadata.NotFoundError{Owner: "user", Repo: "repo"}}
	svc := New(&stubAuthResolver{}, fetcher, logger, sink)

	result, err := svc.Resolve(context.Background(), "user/repo", auth.Config{})
	if err != nil {
		t.Fatalf("metadata failures must not abort resolution: %v", err)
	}

	if result.IsPrivate {
		t.Fatal("expected IsPrivate fallback to false")
	}
	if len(result.Warnings) != 1 || result.Warnings[0].Kind != WarningRepoNotFound {
		t.Fatalf("warnings = %+v", result.Warnings)
	}
	if logger.warns != 1 {
		t.Fatalf("expected 1 warn log, got %d", logger.warns)
	}
	if len(sink.warnings) != 1 {
		t.Fatalf("warning sink received %d warnings", len(sink.warnings))
	}
}

func TestResolveRateLimitWarningKeepsDetail(t *testing.T) {
	reset := time.Now().Add(time.Hour).Truncate(time.Second)
	fetcher := &stubFetcher{err: &metadata.RateLimitError{Remaining: 0, ResetAt: reset}}
	svc := New(&stubAuthResolver{}, fetcher, &testLogger{}, nil)

	result, err := svc.Resolve(context.Background(), "user/repo", auth.Config{})
	if err != nil {
		t.Fatalf("rate limiting must not abort resolution: %v", err)
	}

	if len(result.Warnings) != 1 {
		t.Fatalf("warnings = %+v", result.Warnings)
	}
	warning := result.Warnings[0]
	if warning.Kind != WarningRateLimited {
		t.Fatalf("kind = %q", warning.Kind)
	}
	if warning.ResetAt == nil || !warning.ResetAt.Equal(reset) {
		t.Fatalf("resetAt = %v, want %v", warning.ResetAt, reset)
	}
}

func TestResolveProviderErrorDegradesToWarning(t *testing.T) {
	fetcher := &stubFetcher{err: &metadata.APIError{StatusCode: 500, Message: "boom"}}
	svc := New(&stubAuthResolver{}, fetcher, &testLogger{}, nil)

	result, err := svc.Resolve(context.Background(), "user/repo", auth.Config{})
	if err != nil {
		t.Fatalf("provider errors must not abort resolution: %v", err)
	}
	if len(result.Warnings) != 1 || result.Warnings[0].Kind != WarningProviderError {
		t.Fatalf("warnings = %+v", result.Warnings)
	}
}
