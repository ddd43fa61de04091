package config

// Validate checks the configuration for internally inconsistent or invalid
// values. It does not verify credentials against the provider.
func Validate(cfg *Config) error {
	switch cfg.Logging.Level {
	case "", "debug", "info", "warn", "error":
	default:
		return &ValidationError{Field: "logging.level", Message: "must be one of debug, info, warn, error"}
	}

	switch cfg.Logging.Format {
	case "", "text", "json":
	default:
		return &ValidationError{Field: "logging.format", Message: "must be text or json"}
	}

	app := cfg.Integration.GitHub.App
	if app.ID != 0 && app.PrivateKey == "" && app.PrivateKeyPath == "" {
		return &ValidationError{Field: "integration.github.app", Message: "a private key is required when an app ID is set"}
	}
	if app.ID == 0 && app.InstallationID != 0 {
		return &ValidationError{Field: "integration.github.app.installation_id", Message: "an installation ID requires an app ID"}
	}

	if cfg.Notify.MaxRetries < 0 {
		return &ValidationError{Field: "notify.max_retries", Message: "must not be negative"}
	}

	if cfg.Server.Addr == "" {
		return &ValidationError{Field: "server.addr", Message: "listen address is required"}
	}

	return nil
}
