// Package server exposes the analysis over HTTP.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"

	"github.com/naka-gawa/github-insights/internal/config"
	"github.com/naka-gawa/github-insights/internal/domain"
)

const (
	msgNotFound      = "User not found"
	msgUnauthorized  = "GitHub Token is invalid or expired."
	msgMissingToken  = "Server configuration error: GitHub token missing."
	msgNoRoute       = "Not found"
	msgInternalError = "Internal Server Error: "
)

// Analyzer is the use case behind the HTTP routes.
type Analyzer interface {
	Analyze(ctx context.Context, username string, filter bool) (*domain.AnalysisResult, error)
	Compare(ctx context.Context, first, second string, filter bool) (*domain.Comparison, error)
}

// Handler manages HTTP requests for the API.
type Handler struct {
	Logger   *log.Logger
	Config   config.Config
	analyzer Analyzer
}

// NewHandler creates a new API handler. analyzer may be nil when no GitHub
// token is configured; every analysis request then reports the configuration error.
func NewHandler(logger *log.Logger, cfg config.Config, analyzer Analyzer) *Handler {
	return &Handler{
		Logger:   logger,
		Config:   cfg,
		analyzer: analyzer,
	}
}

// RegisterRoutes sets up the HTTP routes.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/analyze/{username}", h.analyze)
	mux.HandleFunc("GET /api/compare/{first}/{second}", h.compare)
	mux.HandleFunc("GET /healthz", h.health)
	mux.HandleFunc("/api/", h.notFound)
}

func (h *Handler) analyze(w http.ResponseWriter, r *http.Request) {
	username := r.PathValue("username")
	if !h.configured() {
		h.writeError(w, r, domain.ErrMissingToken)
		return
	}
	if !domain.ValidLogin(username) {
		h.writeError(w, r, fmt.Errorf("invalid login %q: %w", username, domain.ErrNotFound))
		return
	}

	result, err := h.analyzer.Analyze(r.Context(), username, filterFlag(r))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, r, http.StatusOK, result)
}

func (h *Handler) compare(w http.ResponseWriter, r *http.Request) {
	if !h.configured() {
		h.writeError(w, r, domain.ErrMissingToken)
		return
	}

	first, second := r.PathValue("first"), r.PathValue("second")
	for _, username := range []string{first, second} {
		if !domain.ValidLogin(username) {
			h.writeError(w, r, fmt.Errorf("invalid login %q: %w", username, domain.ErrNotFound))
			return
		}
	}

	result, err := h.analyzer.Compare(r.Context(), first, second, filterFlag(r))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, r, http.StatusOK, result)
}

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, r, http.StatusOK, map[string]string{"status": "ok"})
}

// notFound answers every unmatched /api/ path.
func (h *Handler) notFound(w http.ResponseWriter, r *http.Request) {
	h.Logger.Printf("%s %s: %d no route", r.Method, r.URL.Path, http.StatusNotFound)
	h.writeJSON(w, r, http.StatusNotFound, map[string]string{"error": msgNoRoute})
}

func (h *Handler) configured() bool {
	return h.Config.GitHubToken != "" && h.analyzer != nil
}

// filterFlag reads ?filter=; anything that does not parse as true is false.
func filterFlag(r *http.Request) bool {
	enabled, err := strconv.ParseBool(r.URL.Query().Get("filter"))
	return err == nil && enabled
}

// statusFor maps an analysis error onto the response status and message.
func statusFor(err error) (int, string) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, msgNotFound
	case errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized, msgUnauthorized
	case errors.Is(err, domain.ErrMissingToken):
		return http.StatusInternalServerError, msgMissingToken
	default:
		return http.StatusInternalServerError, msgInternalError + err.Error()
	}
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status, message := statusFor(err)
	h.Logger.Printf("%s %s: %d %v", r.Method, r.URL.Path, status, err)
	h.writeJSON(w, r, status, map[string]string{"error": message})
}

func (h *Handler) writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.Logger.Printf("%s %s: failed to encode JSON response: %v", r.Method, r.URL.Path, err)
	}
}
