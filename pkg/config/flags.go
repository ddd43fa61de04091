package config

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// FlagConfig holds command-line flag values before they are layered onto
// the Config. Set-tracking uses cobra's Changed so that an untouched flag
// never clobbers a file or env value.
type FlagConfig struct {
	Token           string
	APIBaseURL      string
	AppID           int64
	AppKeyPath      string
	InstallationID  int64
	InstallationURL string
	ServerAddr      string
	WebhookURL      string
	LogLevel        string
	LogFormat       string
	Verbose         bool
	Quiet           bool
	ConfigFile      string
}

// AddFlags registers all configuration flags on the command. Persistent
// flags are inherited by subcommands.
func AddFlags(cmd *cobra.Command) *FlagConfig {
	fc := &FlagConfig{}

	cmd.PersistentFlags().StringVarP(&fc.ConfigFile, "config", "c", "",
		"Configuration file path")
	cmd.PersistentFlags().StringVarP(&fc.Token, "token", "t", "",
		"GitHub personal access token")
	cmd.PersistentFlags().StringVar(&fc.APIBaseURL, "github-api-url", "",
		"GitHub API base URL (for GitHub Enterprise)")
	cmd.PersistentFlags().Int64Var(&fc.AppID, "app-id", 0,
		"GitHub App ID")
	cmd.PersistentFlags().StringVar(&fc.AppKeyPath, "app-key", "",
		"Path to the GitHub App private key (PEM)")
	cmd.PersistentFlags().Int64Var(&fc.InstallationID, "installation-id", 0,
		"GitHub App installation ID")
	cmd.PersistentFlags().StringVar(&fc.InstallationURL, "installation-url", "",
		"GitHub App installation page URL")
	cmd.PersistentFlags().StringVar(&fc.ServerAddr, "addr", "",
		"HTTP listen address for the serve command")
	cmd.PersistentFlags().StringVar(&fc.WebhookURL, "webhook-url", "",
		"Webhook URL for resolution warnings")
	cmd.PersistentFlags().StringVar(&fc.LogLevel, "log-level", "",
		"Log level (debug, info, warn, error)")
	cmd.PersistentFlags().StringVar(&fc.LogFormat, "log-format", "",
		"Log format (text, json)")
	cmd.PersistentFlags().BoolVarP(&fc.Verbose, "verbose", "v", false,
		"Enable debug logging")
	cmd.PersistentFlags().BoolVarP(&fc.Quiet, "quiet", "q", false,
		"Suppress informational logging")

	return fc
}

// Apply overlays flags that were explicitly set onto cfg. Flags are the
// highest-precedence configuration layer.
func (fc *FlagConfig) Apply(flags *pflag.FlagSet, cfg *Config) {
	if flags.Changed("token") {
		cfg.Integration.GitHub.Token = fc.Token
	}
	if flags.Changed("github-api-url") {
		cfg.Integration.GitHub.APIBaseURL = fc.APIBaseURL
	}
	if flags.Changed("app-id") {
		cfg.Integration.GitHub.App.ID = fc.AppID
	}
	if flags.Changed("app-key") {
		cfg.Integration.GitHub.App.PrivateKeyPath = fc.AppKeyPath
	}
	if flags.Changed("installation-id") {
		cfg.Integration.GitHub.App.InstallationID = fc.InstallationID
	}
	if flags.Changed("installation-url") {
		cfg.Integration.GitHub.App.InstallationURL = fc.InstallationURL
	}
	if flags.Changed("addr") {
		cfg.Server.Addr = fc.ServerAddr
	}
	if flags.Changed("webhook-url") {
		cfg.Notify.WebhookURL = fc.WebhookURL
	}
	if flags.Changed("log-level") {
		cfg.Logging.Level = fc.LogLevel
	}
	if flags.Changed("log-format") {
		cfg.Logging.Format = fc.LogFormat
	}
	if flags.Changed("verbose") {
		cfg.Logging.Verbose = fc.Verbose
	}
	if flags.Changed("quiet") {
		cfg.Logging.Quiet = fc.Quiet
	}
}
