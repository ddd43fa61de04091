package auth

import "time"

// Config holds the caller-supplied credential configuration. The two shapes
// are mutually exclusive by priority: when both are supplied, App wins.
type Config struct {
	// App is the GitHub App credential set, if any.
	App *AppConfig

	// Token is a personal access token used when App is nil.
	Token string
}

// AppConfig holds GitHub App credentials.
type AppConfig struct {
	// AppID is the numeric GitHub App identifier.
	AppID int64

	// PrivateKey is the App's signing key in PEM format.
	PrivateKey []byte

	// ClientID and ClientSecret identify the App's OAuth client.
	ClientID     string
	ClientSecret string

	// InstallationID binds the App to an account. Zero means the App has
	// not been installed yet and no token can be minted.
	InstallationID int64

	// InstallationURL is the page a user visits to install the App.
	InstallationURL string
}

// Outcome is the resolved authentication state. It is a closed set:
// NoAuth, Bearer, AppInstallationToken, and AppAuthPending are the only
// implementations, and consumers are expected to type-switch over all four.
type Outcome interface {
	authOutcome()
}

// NoAuth means no credentials are attached to outgoing requests.
type NoAuth struct{}

// Bearer carries a validated personal access token.
type Bearer struct {
	Token string
}

// AppInstallationToken carries an installation-scoped token minted from App
// credentials.
type AppInstallationToken struct {
	Token     string
	ExpiresAt time.Time
}

// AppAuthPending means the App credentials are valid but no installation
// exists yet; InstallationURL is always non-empty and points the user at the
// App's installation page. It is a distinguished outcome, not an error, but
// callers that need a usable token must treat it as incomplete.
type AppAuthPending struct {
	InstallationURL string
}

func (NoAuth) authOutcome()               {}
func (Bearer) authOutcome()               {}
func (AppInstallationToken) authOutcome() {}
func (AppAuthPending) authOutcome()       {}

// TokenOf returns the usable credential carried by an outcome, or an empty
// string for NoAuth and AppAuthPending.
func TokenOf(outcome Outcome) string {
	switch o := outcome.(type) {
	case Bearer:
		return o.Token
	case AppInstallationToken:
		return o.Token
	case NoAuth, AppAuthPending:
		return ""
	default:
		return ""
	}
}
