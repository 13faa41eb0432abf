// Package chi exposes the search engine over HTTP.
package chi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/harborline/invsearch/internal/domain"
	"github.com/harborline/invsearch/internal/domain/search/query"
	"github.com/harborline/invsearch/internal/metrics"
	healthuc "github.com/harborline/invsearch/internal/usecase/health"
	searchuc "github.com/harborline/invsearch/internal/usecase/search"
	suggestuc "github.com/harborline/invsearch/internal/usecase/suggest"
)

// Error codes returned in the {"code","message"} error body.
const (
	codeBadRequest        = "bad_request"
	codeValidationFailed  = "validation_failed"
	codeSourceUnavailable = "source_unavailable"
	codeInternalError     = "internal_error"
)

// PageLimits carries the configured pagination bounds.
type PageLimits struct {
	Default int
	Max     int
}

// Server holds the HTTP handlers for the search API.
type Server struct {
	search  *searchuc.Service
	suggest *suggestuc.Service
	health  *healthuc.Service
	limits  PageLimits
	logger  *zap.Logger
}

// NewServer creates an HTTP API server.
func NewServer(
	search *searchuc.Service,
	suggest *suggestuc.Service,
	health *healthuc.Service,
	limits PageLimits,
	logger *zap.Logger,
) *Server {
	if limits.Default <= 0 {
		limits.Default = query.DefaultLimit
	}
	if limits.Max <= 0 {
		limits.Max = query.MaxLimit
	}
	return &Server{
		search:  search,
		suggest: suggest,
		health:  health,
		limits:  limits,
		logger:  logger,
	}
}

// NewRouter builds the chi router with the standard middleware chain.
// An empty apiKeys disables authentication.
func NewRouter(s *Server, apiKeys []string) http.Handler {
	r := chi.NewRouter()
	r.Use(jsonRecoverer(s.logger))
	r.Use(middleware.RequestID)
	r.Use(wideEventMiddleware(s.logger))
	r.Use(BearerAuthMiddleware(apiKeys))
	r.Use(metrics.Middleware())

	r.Get("/health", s.HealthCheck)
	r.Get("/metrics", s.Metrics)

	r.Route("/v1", func(r chi.Router) {
		r.Get("/search", s.Search)
		r.Get("/search/assets", s.SearchAssets)
		r.Get("/search/users", s.SearchUsers)
		r.Get("/search/investments", s.SearchInvestments)
		r.Get("/suggestions", s.Suggestions)
		r.Get("/popular", s.Popular)
	})

	return r
}

// Search handles GET /v1/search.
func (s *Server) Search(w http.ResponseWriter, r *http.Request) {
	s.serveSearch(w, r, s.search.Search)
}

// SearchAssets handles GET /v1/search/assets.
func (s *Server) SearchAssets(w http.ResponseWriter, r *http.Request) {
	s.serveSearch(w, r, s.search.SearchAssets)
}

// SearchUsers handles GET /v1/search/users.
func (s *Server) SearchUsers(w http.ResponseWriter, r *http.Request) {
	s.serveSearch(w, r, s.search.SearchUsers)
}

// SearchInvestments handles GET /v1/search/investments.
func (s *Server) SearchInvestments(w http.ResponseWriter, r *http.Request) {
	s.serveSearch(w, r, s.search.SearchInvestments)
}

type searchFunc func(ctx context.Context, q query.Query) (searchuc.Page, error)

func (s *Server) serveSearch(w http.ResponseWriter, r *http.Request, run searchFunc) {
	q, err := s.queryFromParams(r)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	page, err := run(r.Context(), q)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, searchPageToResponse(page, q))
}

// Suggestions handles GET /v1/suggestions.
func (s *Server) Suggestions(w http.ResponseWriter, r *http.Request) {
	limit, err := intParam(r, "limit", 0)
	if err != nil {
		writeError(w, http.StatusBadRequest, codeValidationFailed, err.Error())
		return
	}

	terms := s.suggest.Suggest(r.URL.Query().Get("q"), limit)
	writeJSON(w, http.StatusOK, suggestionsResponse{Suggestions: terms})
}

// Popular handles GET /v1/popular.
func (s *Server) Popular(w http.ResponseWriter, r *http.Request) {
	limit, err := intParam(r, "limit", 0)
	if err != nil {
		writeError(w, http.StatusBadRequest, codeValidationFailed, err.Error())
		return
	}

	terms := s.suggest.Popular(limit)
	writeJSON(w, http.StatusOK, popularResponse{Searches: terms})
}

// HealthCheck handles GET /health.
func (s *Server) HealthCheck(w http.ResponseWriter, r *http.Request) {
	report := s.health.Check(r.Context())

	httpStatus := http.StatusOK
	if report.Status != healthuc.Healthy {
		httpStatus = http.StatusServiceUnavailable
	}

	writeJSON(w, httpStatus, healthResponse{
		Status: string(report.Status),
		Checks: report.Checks,
	})
}

// Metrics handles GET /metrics.
func (s *Server) Metrics(w http.ResponseWriter, r *http.Request) {
	promhttp.Handler().ServeHTTP(w, r)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, errorResponse{
		Code:    code,
		Message: message,
	})
}

func (s *Server) handleDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidQuery):
		writeError(w, http.StatusBadRequest, codeValidationFailed, err.Error())
	case errors.Is(err, domain.ErrSourceUnavailable):
		s.logger.Error("no record source available", zap.Error(err))
		writeError(w, http.StatusServiceUnavailable, codeSourceUnavailable, domain.ErrSourceUnavailable.Error())
	default:
		s.logger.Error("internal error", zap.Error(err))
		writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
	}
}
