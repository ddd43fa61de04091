package metadata

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/go-github/v66/github"
	"golang.org/x/oauth2"

	"github.com/reposcout/reposcout/internal/auth"
	"github.com/reposcout/reposcout/internal/repourl"
)

// Metadata is the subset of the repository-detail response this system
// consumes.
type Metadata struct {
	Private       bool
	Description   string
	DefaultBranch string
}

// Fetcher retrieves repository metadata from the hosting provider.
type Fetcher interface {
	// Fetch issues exactly one request to the provider's repository-detail
	// endpoint. No retries are attempted; retry policy belongs to callers.
	Fetch(ctx context.Context, ref *repourl.Reference, outcome auth.Outcome) (*Metadata, error)
}

// GitHubFetcher implements Fetcher against the GitHub REST API.
type GitHubFetcher struct {
	httpClient *http.Client
	baseURL    string
}

// NewGitHubFetcher creates a fetcher over the given HTTP client. baseURL
// overrides the API endpoint for GitHub Enterprise; empty means
// api.github.com.
func NewGitHubFetcher(httpClient *http.Client, baseURL string) *GitHubFetcher {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &GitHubFetcher{httpClient: httpClient, baseURL: baseURL}
}

// Fetch looks up owner/repo and classifies the response into the small
// error taxonomy: not-found, rate-limited, or a generic API error.
func (f *GitHubFetcher) Fetch(ctx context.Context, ref *repourl.Reference, outcome auth.Outcome) (*Metadata, error) {
	client, err := f.client(ctx, auth.TokenOf(outcome))
	if err != nil {
		return nil, &APIError{Message: "client setup failed", Err: err}
	}

	repo, resp, err := client.Repositories.Get(ctx, ref.Owner, ref.Name)
	if err != nil {
		return nil, classify(ref, resp, err)
	}

	return &Metadata{
		Private:       repo.GetPrivate(),
		Description:   repo.GetDescription(),
		DefaultBranch: repo.GetDefaultBranch(),
	}, nil
}

// client builds a go-github client, attaching the token as a bearer
// credential when the outcome carries one. The injected HTTP client stays
// the transport underneath the oauth2 layer.
func (f *GitHubFetcher) client(ctx context.Context, token string) (*github.Client, error) {
	httpClient := f.httpClient
	if token != "" {
		ctx = context.WithValue(ctx, oauth2.HTTPClient, f.httpClient)
		ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
		httpClient = oauth2.NewClient(ctx, ts)
	}

	client := github.NewClient(httpClient)
	if f.baseURL != "" {
		return client.WithEnterpriseURLs(f.baseURL, f.baseURL)
	}
	return client, nil
}

// classify translates go-github errors into the stable taxonomy. go-github
// already folds a 403 with X-RateLimit-Remaining: 0 into a RateLimitError,
// which matches the rate-limit signal we care about.
func classify(ref *repourl.Reference, resp *github.Response, err error) error {
	var rateErr *github.RateLimitError
	if errors.As(err, &rateErr) {
		return &RateLimitError{
			Remaining: rateErr.Rate.Remaining,
			ResetAt:   rateErr.Rate.Reset.Time,
		}
	}

	var ghErr *github.ErrorResponse
	if errors.As(err, &ghErr) {
		if ghErr.Response != nil && ghErr.Response.StatusCode == http.StatusNotFound {
			return &NotFoundError{Owner: ref.Owner, Repo: ref.Name}
		}
		status := 0
		if ghErr.Response != nil {
			status = ghErr.Response.StatusCode
		}
		return &APIError{StatusCode: status, Message: ghErr.Message, Err: err}
	}

	status := 0
	if resp != nil {
		status = resp.StatusCode
	}
	return &APIError{StatusCode: status, Message: err.Error(), Err: err}
}
