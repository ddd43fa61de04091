package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/reposcout/reposcout/internal/auth"
	"github.com/reposcout/reposcout/internal/repourl"
	"github.com/reposcout/reposcout/internal/resolver"
)

type resolveRequest struct {
	URL   string `json:"url"`
	Token string `json:"token,omitempty"`
}

type errorResponse struct {
	Error           string `json:"error"`
	Message         string `json:"message"`
	InstallationURL string `json:"installationUrl,omitempty"`
}

func (s *Server) handleResolve(w http.ResponseWriter, r *http.Request) {
	var req resolveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid_request", Message: "malformed JSON body"})
		return
	}
	if req.URL == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid_request", Message: "url is required"})
		return
	}

	// A token supplied with the request replaces the server-side credential
	// baseline; otherwise the configured App or token applies.
	authCfg := s.authCfg
	if req.Token != "" {
		authCfg = auth.Config{Token: req.Token}
	}

	result, err := s.service.Resolve(r.Context(), req.URL, authCfg)
	if err != nil {
		s.logger.Warn("resolution failed",
			"request_id", requestIDFrom(r.Context()), "input", req.URL, "error", err)
		status, body := classifyError(err)
		writeJSON(w, status, body)
		return
	}

	s.logger.Info("resolved repository",
		"request_id", requestIDFrom(r.Context()),
		"repo", result.Owner+"/"+result.Repo,
		"provider", string(result.Provider),
		"warnings", len(result.Warnings))
	writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// classifyError maps the resolution error taxonomy onto transport status
// codes. The mapping keys off error kinds, never message text.
func classifyError(err error) (int, errorResponse) {
	var installErr *resolver.AppInstallationRequiredError

	switch {
	case repourl.IsInvalidFormat(err):
		return http.StatusBadRequest, errorResponse{Error: "invalid_format", Message: err.Error()}
	case repourl.IsMissingOwnerOrRepo(err):
		return http.StatusBadRequest, errorResponse{Error: "missing_owner_or_repo", Message: err.Error()}
	case auth.IsInvalidTokenFormat(err):
		return http.StatusUnauthorized, errorResponse{Error: "invalid_token_format", Message: err.Error()}
	case auth.IsAppAuthError(err):
		return http.StatusBadGateway, errorResponse{Error: "app_auth_failed", Message: err.Error()}
	case errors.As(err, &installErr):
		return http.StatusForbidden, errorResponse{
			Error:           "app_installation_required",
			Message:         err.Error(),
			InstallationURL: installErr.InstallationURL,
		}
	default:
		return http.StatusInternalServerError, errorResponse{Error: "internal_error", Message: err.Error()}
	}
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
