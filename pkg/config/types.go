package config

import "time"

// Config aggregates all configuration for reposcout: provider integration,
// server, warning notifications, and logging.
type Config struct {
	// Integration contains settings for external integrations.
	Integration IntegrationConfig `json:"integration" yaml:"integration"`

	// Server contains HTTP server settings.
	Server ServerConfig `json:"server" yaml:"server"`

	// Notify contains warning-webhook settings.
	Notify NotifyConfig `json:"notify" yaml:"notify"`

	// Logging contains logging level and output configuration.
	Logging LoggingConfig `json:"logging" yaml:"logging"`
}

// IntegrationConfig manages settings for external service integrations.
type IntegrationConfig struct {
	// GitHub contains GitHub API integration settings.
	GitHub GitHubConfig `json:"github" yaml:"github"`
}

// GitHubConfig holds GitHub credentials and endpoint settings.
type GitHubConfig struct {
	// Token is a personal access token. Ignored when App credentials are
	// configured; the App always wins the priority cascade.
	Token string `json:"token,omitempty" yaml:"token,omitempty"`

	// APIBaseURL overrides the API endpoint for GitHub Enterprise.
	APIBaseURL string `json:"api_base_url,omitempty" yaml:"api_base_url,omitempty"`

	// App contains GitHub App credentials.
	App GitHubAppConfig `json:"app" yaml:"app"`
}

// GitHubAppConfig holds GitHub App credentials. The App is considered
// configured when ID is non-zero.
type GitHubAppConfig struct {
	// ID is the numeric GitHub App identifier.
	ID int64 `json:"id,omitempty" yaml:"id,omitempty"`

	// PrivateKey is the App signing key in PEM form, inline.
	PrivateKey string `json:"private_key,omitempty" yaml:"private_key,omitempty"`

	// PrivateKeyPath points at a PEM file; used when PrivateKey is empty.
	PrivateKeyPath string `json:"private_key_path,omitempty" yaml:"private_key_path,omitempty"`

	// ClientID and ClientSecret identify the App's OAuth client.
	ClientID     string `json:"client_id,omitempty" yaml:"client_id,omitempty"`
	ClientSecret string `json:"client_secret,omitempty" yaml:"client_secret,omitempty"`

	// InstallationID binds the App to an account. Zero means not installed.
	InstallationID int64 `json:"installation_id,omitempty" yaml:"installation_id,omitempty"`

	// InstallationURL is the page users visit to install the App.
	InstallationURL string `json:"installation_url,omitempty" yaml:"installation_url,omitempty"`
}

// ServerConfig contains HTTP server settings.
type ServerConfig struct {
	// Addr is the listen address for the serve command.
	Addr string `json:"addr" yaml:"addr"`
}

// NotifyConfig contains warning-webhook delivery settings. The webhook is
// disabled when URL is empty.
type NotifyConfig struct {
	// WebhookURL receives resolution warnings as JSON payloads.
	WebhookURL string `json:"webhook_url,omitempty" yaml:"webhook_url,omitempty"`

	// MaxRetries bounds delivery attempts beyond the first.
	MaxRetries int `json:"max_retries" yaml:"max_retries"`

	// RetryDelay is the base backoff between attempts.
	RetryDelay time.Duration `json:"retry_delay" yaml:"retry_delay"`
}

// LoggingConfig contains logging behavior settings.
type LoggingConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `json:"level" yaml:"level"`

	// Format is "text" or "json".
	Format string `json:"format" yaml:"format"`

	// Verbose forces debug level regardless of Level.
	Verbose bool `json:"verbose" yaml:"verbose"`

	// Quiet raises the level to warn regardless of Level.
	Quiet bool `json:"quiet" yaml:"quiet"`
}
