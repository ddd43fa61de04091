package di

import (
	"net/http"
	"time"

	"github.com/reposcout/reposcout/pkg/config"
)

const defaultUserAgent = "reposcout (+https://github.com/reposcout/reposcout)"

// provideHTTPClientWithConfig creates the shared HTTP client. One client
// serves the token exchange, the metadata fetch, and the warning webhook.
func provideHTTPClientWithConfig(cfg *config.Config) *http.Client {
	_ = cfg
	return &http.Client{
		Timeout:   30 * time.Second,
		Transport: newHeaderRoundTripper(nil, defaultHTTPHeaders()),
	}
}

func defaultHTTPHeaders() http.Header {
	headers := make(http.Header)
	headers.Set("User-Agent", defaultUserAgent)
	return headers
}

// headerRoundTripper stamps default headers onto every outgoing request
// without overriding headers the caller already set.
type headerRoundTripper struct {
	base    http.RoundTripper
	headers http.Header
}

func newHeaderRoundTripper(base http.RoundTripper, headers http.Header) http.RoundTripper {
	if base == nil {
		base = http.DefaultTransport
	}
	return &headerRoundTripper{base: base, headers: headers}
}

func (t *headerRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	cloned := req.Clone(req.Context())
	for key, values := range t.headers {
		if cloned.Header.Get(key) != "" {
			continue
		}
		for _, value := range values {
			cloned.Header.Add(key, value)
		}
	}
	return t.base.RoundTrip(cloned)
}
