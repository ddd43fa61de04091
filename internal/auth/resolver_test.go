package auth

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"fmt"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"
)

// fakeRoundTripper implements http.RoundTripper for testing.
type fakeRoundTripper struct {
	responses map[string]*http.Response
	requests  []*http.Request
}

func (f *fakeRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	f.requests = append(f.requests, req)
	key := fmt.Sprintf("%s %s", req.Method, req.URL.Path)
	if resp, ok := f.responses[key]; ok {
		return resp, nil
	}
	return &http.Response{
		StatusCode: 404,
		Body:       http.NoBody,
		Header:     make(http.Header),
	}, nil
}

func jsonResponse(statusCode int, body string) *http.Response {
	return &http.Response{
		StatusCode: statusCode,
		Body:       io.NopCloser(strings.NewReader(body)),
		Header:     map[string][]string{"Content-Type": {"application/json"}},
	}
}

func testPrivateKeyPEM(t *testing.T) []byte {
	t.Helper()
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		t.Fatalf("generate key: %v", err)
	}
	return pem.EncodeToMemory(&pem.Block{
		Type:  "RSA PRIVATE KEY",
		Bytes: x509.MarshalPKCS1PrivateKey(key),
	})
}

func TestResolveNoAuth(t *testing.T) {
	r := NewResolver(nil, "")

	outcome, err := r.Resolve(context.Background(), Config{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := outcome.(NoAuth); !ok {
		t.Fatalf("expected NoAuth, got %T", outcome)
	}
}

func TestResolveBearerToken(t *testing.T) {
	tests := []struct {
		name    string
		token   string
		wantErr bool
	}{
		{"classic token", "ghp_abc123", false},
		{"fine grained token", "github_pat_abc123", false},
		{"token with whitespace", "  ghp_abc123  ", false},
		{"oauth shaped token rejected", "gho_abc123", true},
		{"random string rejected", "not-a-token", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewResolver(nil, "")
			outcome, err := r.Resolve(context.Background(), Config{Token: tt.token})

			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %T", outcome)
				}
				if !IsInvalidTokenFormat(err) {
					t.Fatalf("expected InvalidTokenFormatError, got %v", err)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			bearer, ok := outcome.(Bearer)
			if !ok {
				t.Fatalf("expected Bearer, got %T", outcome)
			}
			if bearer.Token != strings.TrimSpace(tt.token) {
				t.Fatalf("token = %q, want %q", bearer.Token, strings.TrimSpace(tt.token))
			}
		})
	}
}

func TestResolveAppPending(t *testing.T) {
	rt := &fakeRoundTripper{}
	r := NewResolver(&http.Client{Transport: rt}, "")

	cfg := Config{App: &AppConfig{
		AppID:           42,
		PrivateKey:      testPrivateKeyPEM(t),
		InstallationURL: "https://github.com/apps/reposcout/installations/new",
	}}

	outcome, err := r.Resolve(context.Background(), cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	pending, ok := outcome.(AppAuthPending)
	if !ok {
		t.Fatalf("expected AppAuthPending, got %T", outcome)
	}
	if pending.InstallationURL != "https://github.com/apps/reposcout/installations/new" {
		t.Fatalf("installation URL = %q", pending.InstallationURL)
	}
	if len(rt.requests) != 0 {
		t.Fatalf("pending resolution must not hit the network, saw %d requests", len(rt.requests))
	}
}

func TestResolveAppPendingDefaultURL(t *testing.T) {
	r := NewResolver(nil, "")

	outcome, err := r.Resolve(context.Background(), Config{App: &AppConfig{AppID: 42}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	pending, ok := outcome.(AppAuthPending)
	if !ok {
		t.Fatalf("expected AppAuthPending, got %T", outcome)
	}
	if pending.InstallationURL == "" {
		t.Fatal("installation URL must never be empty")
	}
}

func TestResolveAppInstallationToken(t *testing.T) {
	expiry := time.Now().Add(time.Hour).UTC().Truncate(time.Second)
	rt := &fakeRoundTripper{responses: map[string]*http.Response{
		"POST /app/installations/99/access_tokens": jsonResponse(201, fmt.Sprintf(
			`{"token":"ghs_installation_token","expires_at":%q}`, expiry.Format(time.RFC3339))),
	}}
	r := NewResolver(&http.Client{Transport: rt}, "")

	cfg := Config{App: &AppConfig{
		AppID:          42,
		PrivateKey:     testPrivateKeyPEM(t),
		InstallationID: 99,
	}}

	outcome, err := r.Resolve(context.Background(), cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	token, ok := outcome.(AppInstallationToken)
	if !ok {
		t.Fatalf("expected AppInstallationToken, got %T", outcome)
	}
	if token.Token != "ghs_installation_token" {
		t.Fatalf("token = %q", token.Token)
	}
	if !token.ExpiresAt.Equal(expiry) {
		t.Fatalf("expiresAt = %v, want %v", token.ExpiresAt, expiry)
	}

	if len(rt.requests) != 1 {
		t.Fatalf("expected a single exchange request, got %d", len(rt.requests))
	}
	if got := rt.requests[0].Header.Get("Authorization"); !strings.HasPrefix(got, "Bearer ") {
		t.Fatalf("exchange request must carry the app JWT, got %q", got)
	}
}

func TestResolveAppExchangeFailure(t *testing.T) {
	rt := &fakeRoundTripper{responses: map[string]*http.Response{
		"POST /app/installations/99/access_tokens": jsonResponse(401, `{"message":"bad credentials"}`),
	}}
	r := NewResolver(&http.Client{Transport: rt}, "")

	cfg := Config{App: &AppConfig{
		AppID:          42,
		PrivateKey:     testPrivateKeyPEM(t),
		InstallationID: 99,
	}}

	_, err := r.Resolve(context.Background(), cfg)
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !IsAppAuthError(err) {
		t.Fatalf("expected AppAuthError, got %v", err)
	}
}

func TestResolveAppBadKey(t *testing.T) {
	r := NewResolver(nil, "")

	cfg := Config{App: &AppConfig{
		AppID:          42,
		PrivateKey:     []byte("not a pem key"),
		InstallationID: 99,
	}}

	_, err := r.Resolve(context.Background(), cfg)
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !IsAppAuthError(err) {
		t.Fatalf("expected AppAuthError, got %v", err)
	}
}

func TestResolveAppWinsOverToken(t *testing.T) {
	r := NewResolver(nil, "")

	cfg := Config{
		App:   &AppConfig{AppID: 42},
		Token: "ghp_should_be_ignored",
	}

	outcome, err := r.Resolve(context.Background(), cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := outcome.(AppAuthPending); !ok {
		t.Fatalf("app config must win the cascade, got %T", outcome)
	}
}
