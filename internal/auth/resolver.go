package auth

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/google/go-github/v66/github"
	"golang.org/x/oauth2"
)

// defaultInstallationURL is used when the configuration does not pin the
// App's own installation page.
const defaultInstallationURL = "https://github.com/settings/installations"

// tokenPrefixes are the two lexical shapes GitHub personal access tokens
// can take: classic tokens and fine-grained tokens.
var tokenPrefixes = []string{"ghp_", "github_pat_"}

// Resolver turns a credential Config into a single tagged Outcome. The only
// path that performs I/O is the App installation-token exchange.
type Resolver struct {
	httpClient *http.Client
	baseURL    string
	now        func() time.Time
}

// NewResolver creates a resolver that performs App token exchanges over the
// given HTTP client. A nil client falls back to http.DefaultClient. baseURL
// overrides the GitHub API endpoint (for GitHub Enterprise); empty means
// api.github.com.
func NewResolver(httpClient *http.Client, baseURL string) *Resolver {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Resolver{
		httpClient: httpClient,
		baseURL:    baseURL,
		now:        time.Now,
	}
}

// Resolve applies the strict priority cascade: App configuration first, then
// a personal token, then no auth. App credentials without an installation ID
// resolve to AppAuthPending; a failed exchange surfaces as an AppAuthError
// and is never silently downgraded.
func (r *Resolver) Resolve(ctx context.Context, cfg Config) (Outcome, error) {
	if cfg.App != nil {
		return r.resolveApp(ctx, cfg.App)
	}

	if token := strings.TrimSpace(cfg.Token); token != "" {
		if !hasKnownPrefix(token) {
			return nil, &InvalidTokenFormatError{Hint: "expected a ghp_ or github_pat_ prefix"}
		}
		return Bearer{Token: token}, nil
	}

	return NoAuth{}, nil
}

func (r *Resolver) resolveApp(ctx context.Context, app *AppConfig) (Outcome, error) {
	if app.InstallationID == 0 {
		installURL := strings.TrimSpace(app.InstallationURL)
		if installURL == "" {
			installURL = defaultInstallationURL
		}
		return AppAuthPending{InstallationURL: installURL}, nil
	}

	appJWT, err := mintAppJWT(app.AppID, app.PrivateKey, r.now())
	if err != nil {
		return nil, &AppAuthError{Operation: "jwt signing", Err: err}
	}

	client, err := r.appClient(ctx, appJWT)
	if err != nil {
		return nil, &AppAuthError{Operation: "client setup", Err: err}
	}

	token, _, err := client.Apps.CreateInstallationToken(ctx, app.InstallationID, &github.InstallationTokenOptions{})
	if err != nil {
		return nil, &AppAuthError{Operation: "installation token exchange", Err: err}
	}

	return AppInstallationToken{
		Token:     token.GetToken(),
		ExpiresAt: token.GetExpiresAt().Time,
	}, nil
}

// appClient builds a go-github client whose requests carry the App JWT.
func (r *Resolver) appClient(ctx context.Context, appJWT string) (*github.Client, error) {
	ctx = context.WithValue(ctx, oauth2.HTTPClient, r.httpClient)
	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: appJWT})
	client := github.NewClient(oauth2.NewClient(ctx, ts))

	if r.baseURL != "" {
		return client.WithEnterpriseURLs(r.baseURL, r.baseURL)
	}
	return client, nil
}

func hasKnownPrefix(token string) bool {
	for _, prefix := range tokenPrefixes {
		if strings.HasPrefix(token, prefix) {
			return true
		}
	}
	return false
}
