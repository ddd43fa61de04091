package di

import (
	"fmt"
	"net/http"
	"os"

	"github.com/reposcout/reposcout/internal/auth"
	"github.com/reposcout/reposcout/internal/notify"
	"github.com/reposcout/reposcout/internal/resolver"
	"github.com/reposcout/reposcout/pkg/config"
)

// provideAuthConfig translates the configuration's GitHub section into the
// credential cascade input. The App private key is loaded from disk when
// only a path is configured.
func provideAuthConfig(cfg *config.Config) (auth.Config, error) {
	gh := cfg.Integration.GitHub

	if gh.App.ID != 0 {
		key := []byte(gh.App.PrivateKey)
		if len(key) == 0 && gh.App.PrivateKeyPath != "" {
			data, err := os.ReadFile(gh.App.PrivateKeyPath)
			if err != nil {
				return auth.Config{}, fmt.Errorf("read app private key %s: %w", gh.App.PrivateKeyPath, err)
			}
			key = data
		}

		return auth.Config{App: &auth.AppConfig{
			AppID:           gh.App.ID,
			PrivateKey:      key,
			ClientID:        gh.App.ClientID,
			ClientSecret:    gh.App.ClientSecret,
			InstallationID:  gh.App.InstallationID,
			InstallationURL: gh.App.InstallationURL,
		}}, nil
	}

	return auth.Config{Token: gh.Token}, nil
}

// provideWarningSink creates the webhook sink when a URL is configured.
// Without one, warnings only reach the logs.
func provideWarningSink(cfg *config.Config, client *http.Client, logger Logger) resolver.WarningSink {
	if cfg.Notify.WebhookURL == "" {
		return nil
	}

	notifyCfg := notify.DefaultConfig()
	if cfg.Notify.MaxRetries > 0 {
		notifyCfg.MaxRetries = cfg.Notify.MaxRetries
	}
	if cfg.Notify.RetryDelay > 0 {
		notifyCfg.RetryDelay = cfg.Notify.RetryDelay
	}

	return notify.NewWebhookSink(cfg.Notify.WebhookURL, client, notifyCfg, logger)
}
