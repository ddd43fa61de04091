package server

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/reposcout/reposcout/internal/auth"
	"github.com/reposcout/reposcout/internal/resolver"
)

// Server exposes the resolution service over HTTP.
type Server struct {
	service resolver.Service
	authCfg auth.Config
	logger  resolver.Logger
	router  chi.Router
}

// New wires the router. authCfg is the server-side credential baseline;
// per-request tokens override it.
func New(service resolver.Service, authCfg auth.Config, logger resolver.Logger) *Server {
	s := &Server{
		service: service,
		authCfg: authCfg,
		logger:  logger,
	}

	r := chi.NewRouter()
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(s.requestID)

	r.Post("/api/repos/resolve", s.handleResolve)
	r.Get("/healthz", s.handleHealth)

	s.router = r
	return s
}

// Handler returns the underlying router.
func (s *Server) Handler() http.Handler {
	return s.router
}

// ListenAndServe blocks serving HTTP until ctx is cancelled or the listener
// fails.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	s.logger.Info("http server listening", "addr", addr)

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		return err
	}
}

type ctxKey string

const requestIDKey ctxKey = "request_id"

// requestID tags every request with a UUID for log correlation.
func (s *Server) requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := uuid.NewString()
		w.Header().Set("X-Request-Id", id)
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), requestIDKey, id)))
	})
}

func requestIDFrom(ctx context.Context) string {
	if id, ok := ctx.Value(requestIDKey).(string); ok {
		return id
	}
	return ""
}
