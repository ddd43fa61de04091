package di

import (
	"fmt"
	"net/http"

	"github.com/reposcout/reposcout/internal/auth"
	"github.com/reposcout/reposcout/internal/metadata"
	"github.com/reposcout/reposcout/internal/resolver"
	"github.com/reposcout/reposcout/pkg/config"
)

// Logger defines the logging interface used throughout the application.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// Container exposes resolved dependencies for the CLI and server layers.
type Container interface {
	Resolver() resolver.Service
	AuthResolver() resolver.AuthResolver
	Fetcher() metadata.Fetcher
	AuthConfig() auth.Config

	Config() *config.Config
	Logger() Logger
	HTTPClient() *http.Client

	Close() error
}

// Option customises container construction using the functional options
// pattern, mostly to swap dependencies in tests.
type Option func(*builder) error

// New creates a container with default wiring and applies the provided
// options.
func New(opts ...Option) (Container, error) {
	b := &builder{}

	for _, opt := range opts {
		if err := opt(b); err != nil {
			return nil, fmt.Errorf("di: failed to apply option: %w", err)
		}
	}

	return b.build()
}

// WithConfig supplies the application configuration.
func WithConfig(cfg *config.Config) Option {
	return func(b *builder) error {
		if cfg == nil {
			return fmt.Errorf("config cannot be nil")
		}
		b.cfg = cfg
		return nil
	}
}

// WithLogger overrides the default slog-backed logger.
func WithLogger(logger Logger) Option {
	return func(b *builder) error {
		b.logger = logger
		return nil
	}
}

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(b *builder) error {
		b.httpClient = client
		return nil
	}
}

// WithFetcher overrides the metadata fetcher, primarily for tests.
func WithFetcher(f metadata.Fetcher) Option {
	return func(b *builder) error {
		b.fetcher = f
		return nil
	}
}

// WithAuthResolver overrides the credential resolver, primarily for tests.
func WithAuthResolver(r resolver.AuthResolver) Option {
	return func(b *builder) error {
		b.authResolver = r
		return nil
	}
}

// WithWarningSink overrides the warning sink.
func WithWarningSink(s resolver.WarningSink) Option {
	return func(b *builder) error {
		b.sink = s
		return nil
	}
}

// builder holds the dependencies being assembled into a container.
type builder struct {
	cfg          *config.Config
	logger       Logger
	httpClient   *http.Client
	fetcher      metadata.Fetcher
	authResolver resolver.AuthResolver
	sink         resolver.WarningSink
}

func (b *builder) build() (Container, error) {
	if b.cfg == nil {
		b.cfg = config.New()
	}
	if b.logger == nil {
		b.logger = provideLoggerWithConfig(b.cfg)
	}
	if b.httpClient == nil {
		b.httpClient = provideHTTPClientWithConfig(b.cfg)
	}

	authCfg, err := provideAuthConfig(b.cfg)
	if err != nil {
		return nil, fmt.Errorf("di: failed to build auth configuration: %w", err)
	}

	if b.authResolver == nil {
		b.authResolver = auth.NewResolver(b.httpClient, b.cfg.Integration.GitHub.APIBaseURL)
	}
	if b.fetcher == nil {
		b.fetcher = metadata.NewGitHubFetcher(b.httpClient, b.cfg.Integration.GitHub.APIBaseURL)
	}
	if b.sink == nil {
		b.sink = provideWarningSink(b.cfg, b.httpClient, b.logger)
	}

	service := resolver.New(b.authResolver, b.fetcher, b.logger, b.sink)

	return &container{
		cfg:          b.cfg,
		logger:       b.logger,
		httpClient:   b.httpClient,
		fetcher:      b.fetcher,
		authResolver: b.authResolver,
		authCfg:      authCfg,
		service:      service,
	}, nil
}

type container struct {
	cfg          *config.Config
	logger       Logger
	httpClient   *http.Client
	fetcher      metadata.Fetcher
	authResolver resolver.AuthResolver
	authCfg      auth.Config
	service      resolver.Service
}

func (c *container) Resolver() resolver.Service          { return c.service }
func (c *container) AuthResolver() resolver.AuthResolver { return c.authResolver }
func (c *container) Fetcher() metadata.Fetcher           { return c.fetcher }
func (c *container) AuthConfig() auth.Config             { return c.authCfg }
func (c *container) Config() *config.Config              { return c.cfg }
func (c *container) Logger() Logger                      { return c.logger }
func (c *container) HTTPClient() *http.Client            { return c.httpClient }

func (c *container) Close() error { return nil }
