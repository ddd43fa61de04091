package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// EnvParser reads configuration from REPOSCOUT_* environment variables. The
// GitHub token additionally honors the conventional GITHUB_TOKEN,
// GITHUB_ACCESS_TOKEN, and GH_TOKEN variables, in that order.
type EnvParser struct {
	// getEnv allows injection of environment variable retrieval for testing
	getEnv func(string) string
}

// NewEnvParser creates an environment variable parser reading the process
// environment.
func NewEnvParser() *EnvParser {
	return &EnvParser{getEnv: os.Getenv}
}

// NewEnvParserWithGetter creates a parser with a custom getter, primarily
// for tests.
func NewEnvParserWithGetter(getter func(string) string) *EnvParser {
	return &EnvParser{getEnv: getter}
}

// Apply overlays environment values onto cfg. It returns an error when a
// variable carries a value of the wrong type.
func (p *EnvParser) Apply(cfg *Config) error {
	var errs []string

	if err := p.applyGitHub(cfg); err != nil {
		errs = append(errs, err.Error())
	}
	if err := p.applyServer(cfg); err != nil {
		errs = append(errs, err.Error())
	}
	if err := p.applyNotify(cfg); err != nil {
		errs = append(errs, err.Error())
	}
	p.applyLogging(cfg)

	if len(errs) > 0 {
		return fmt.Errorf("config: environment parsing failed: %s", strings.Join(errs, "; "))
	}
	return nil
}

func (p *EnvParser) applyGitHub(cfg *Config) error {
	gh := &cfg.Integration.GitHub

	for _, envVar := range []string{"REPOSCOUT_GITHUB_TOKEN", "GITHUB_TOKEN", "GITHUB_ACCESS_TOKEN", "GH_TOKEN"} {
		if v := strings.TrimSpace(p.getEnv(envVar)); v != "" {
			gh.Token = v
			break
		}
	}

	if v := p.getEnv("REPOSCOUT_GITHUB_API_URL"); v != "" {
		gh.APIBaseURL = v
	}

	app := &gh.App
	if v := p.getEnv("REPOSCOUT_GITHUB_APP_ID"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("REPOSCOUT_GITHUB_APP_ID must be an integer, got %q", v)
		}
		app.ID = id
	}
	if v := p.getEnv("REPOSCOUT_GITHUB_APP_PRIVATE_KEY"); v != "" {
		app.PrivateKey = v
	}
	if v := p.getEnv("REPOSCOUT_GITHUB_APP_PRIVATE_KEY_PATH"); v != "" {
		app.PrivateKeyPath = v
	}
	if v := p.getEnv("REPOSCOUT_GITHUB_APP_CLIENT_ID"); v != "" {
		app.ClientID = v
	}
	if v := p.getEnv("REPOSCOUT_GITHUB_APP_CLIENT_SECRET"); v != "" {
		app.ClientSecret = v
	}
	if v := p.getEnv("REPOSCOUT_GITHUB_APP_INSTALLATION_ID"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("REPOSCOUT_GITHUB_APP_INSTALLATION_ID must be an integer, got %q", v)
		}
		app.InstallationID = id
	}
	if v := p.getEnv("REPOSCOUT_GITHUB_APP_INSTALLATION_URL"); v != "" {
		app.InstallationURL = v
	}

	return nil
}

func (p *EnvParser) applyServer(cfg *Config) error {
	if v := p.getEnv("REPOSCOUT_SERVER_ADDR"); v != "" {
		cfg.Server.Addr = v
	}
	return nil
}

func (p *EnvParser) applyNotify(cfg *Config) error {
	if v := p.getEnv("REPOSCOUT_WEBHOOK_URL"); v != "" {
		cfg.Notify.WebhookURL = v
	}
	if v := p.getEnv("REPOSCOUT_WEBHOOK_RETRY_DELAY"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("REPOSCOUT_WEBHOOK_RETRY_DELAY must be a duration, got %q", v)
		}
		cfg.Notify.RetryDelay = d
	}
	return nil
}

func (p *EnvParser) applyLogging(cfg *Config) {
	if v := p.getEnv("REPOSCOUT_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = strings.ToLower(v)
	}
	if v := p.getEnv("REPOSCOUT_LOG_FORMAT"); v != "" {
		cfg.Logging.Format = strings.ToLower(v)
	}
}
