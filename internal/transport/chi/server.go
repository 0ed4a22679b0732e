// Package chi exposes the clinic directory and search API over HTTP.
package chi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	chirouter "github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/novadent/clindex/internal/domain"
	"github.com/novadent/clindex/internal/domain/search/query"
	directoryuc "github.com/novadent/clindex/internal/usecase/directory"
	healthuc "github.com/novadent/clindex/internal/usecase/health"
	searchuc "github.com/novadent/clindex/internal/usecase/search"
)

// errorHandler tries to handle a domain error. Returns true if handled.
type errorHandler func(w http.ResponseWriter, err error, msg string) bool

// Server routes HTTP requests to the clinic usecases.
type Server struct {
	directory     *directoryuc.Service
	search        *searchuc.Service
	health        *healthuc.Service
	logger        *zap.Logger
	errorHandlers []errorHandler
}

// NewServer creates an HTTP API server.
func NewServer(
	directory *directoryuc.Service,
	search *searchuc.Service,
	health *healthuc.Service,
	logger *zap.Logger,
) *Server {
	s := &Server{
		directory: directory,
		search:    search,
		health:    health,
		logger:    logger,
	}
	s.errorHandlers = []errorHandler{
		sentinelHandler(domain.ErrClinicNotFound, http.StatusNotFound, codeClinicNotFound),
		sentinelHandler(domain.ErrAlreadyExists, http.StatusConflict, codeValidationFailed),
		sentinelHandler(domain.ErrInvalidClinic, http.StatusBadRequest, codeValidationFailed),
		sentinelHandler(domain.ErrInvalidQuery, http.StatusBadRequest, codeValidationFailed),
	}
	return s
}

// Register mounts all API routes on r.
func (s *Server) Register(r chirouter.Router) {
	r.Route("/api/v1/clinics", func(r chirouter.Router) {
		r.Get("/search", s.SearchClinics)
		r.Post("/", s.CreateClinic)
		r.Get("/", s.ListClinics)
		r.Put("/{id}", s.UpsertClinic)
		r.Get("/{id}", s.GetClinic)
		r.Delete("/{id}", s.DeleteClinic)
	})
	r.Get("/health", s.HealthCheck)
	r.Get("/metrics", s.Metrics)
}

// SearchClinics handles GET /api/v1/clinics/search.
func (s *Server) SearchClinics(w http.ResponseWriter, r *http.Request) {
	params := r.URL.Query()

	q, err := query.New(query.Terms{
		General:     params.Get("q"),
		Name:        params.Get("name"),
		Email:       params.Get("email"),
		PhoneNumber: params.Get("phone"),
		Address:     params.Get("address"),
		Description: params.Get("description"),
		Website:     params.Get("website"),
	})
	if err != nil {
		writeError(w, http.StatusBadRequest, codeValidationFailed, err.Error())
		return
	}

	limit := 0
	if raw := params.Get("limit"); raw != "" {
		limit, err = strconv.Atoi(raw)
		if err != nil || limit <= 0 {
			writeError(w, http.StatusBadRequest, codeValidationFailed, "limit must be a positive integer")
			return
		}
	}

	clinics, err := s.search.Search(r.Context(), q, limit)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	items := make([]ClinicDTO, len(clinics))
	for i := range clinics {
		items[i] = clinicToDTO(&clinics[i])
	}

	writeJSON(w, http.StatusOK, SearchResultListResponse{
		Items: items,
		Total: len(items),
	})
}

// CreateClinic handles POST /api/v1/clinics.
func (s *Server) CreateClinic(w http.ResponseWriter, r *http.Request) {
	var req UpsertClinicRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "Invalid request body: "+err.Error())
		return
	}

	c, err := clinicFromUpsert(req.ID, req)
	if err != nil {
		writeError(w, http.StatusBadRequest, codeValidationFailed, err.Error())
		return
	}

	stored, err := s.directory.Create(r.Context(), c)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	w.Header().Set("Location", "/api/v1/clinics/"+stored.ID())
	writeJSON(w, http.StatusCreated, clinicToDTO(&stored))
}

// UpsertClinic handles PUT /api/v1/clinics/{id}.
func (s *Server) UpsertClinic(w http.ResponseWriter, r *http.Request) {
	id := chirouter.URLParam(r, "id")

	var req UpsertClinicRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if req.ID != "" && req.ID != id {
		writeError(w, http.StatusBadRequest, codeValidationFailed, "body id does not match path id")
		return
	}

	c, err := clinicFromUpsert(id, req)
	if err != nil {
		writeError(w, http.StatusBadRequest, codeValidationFailed, err.Error())
		return
	}

	stored, created, err := s.directory.Upsert(r.Context(), c)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
		w.Header().Set("Location", "/api/v1/clinics/"+stored.ID())
	}
	writeJSON(w, status, clinicToDTO(&stored))
}

// GetClinic handles GET /api/v1/clinics/{id}.
func (s *Server) GetClinic(w http.ResponseWriter, r *http.Request) {
	id := chirouter.URLParam(r, "id")

	c, err := s.directory.Get(r.Context(), id)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, clinicToDTO(&c))
}

// DeleteClinic handles DELETE /api/v1/clinics/{id}.
func (s *Server) DeleteClinic(w http.ResponseWriter, r *http.Request) {
	id := chirouter.URLParam(r, "id")

	if err := s.directory.Delete(r.Context(), id); err != nil {
		s.handleDomainError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ListClinics handles GET /api/v1/clinics.
func (s *Server) ListClinics(w http.ResponseWriter, r *http.Request) {
	params := r.URL.Query()

	cursor := params.Get("cursor")
	limit := 0
	if raw := params.Get("limit"); raw != "" {
		var err error
		limit, err = strconv.Atoi(raw)
		if err != nil || limit <= 0 {
			writeError(w, http.StatusBadRequest, codeValidationFailed, "limit must be a positive integer")
			return
		}
	}

	clinics, nextCursor, err := s.directory.List(r.Context(), cursor, limit)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	items := make([]ClinicDTO, len(clinics))
	for i := range clinics {
		items[i] = clinicToDTO(&clinics[i])
	}

	resp := ClinicCursorListResponse{
		Items:   items,
		HasMore: nextCursor != "",
	}
	if nextCursor != "" {
		resp.NextCursor = &nextCursor
	}

	writeJSON(w, http.StatusOK, resp)
}

// HealthCheck handles GET /health.
func (s *Server) HealthCheck(w http.ResponseWriter, r *http.Request) {
	report := s.health.Check(r.Context())

	checks := make(map[string]string, len(report.Checks))
	for k, v := range report.Checks {
		checks[k] = string(v)
	}

	httpStatus := http.StatusOK
	if report.Status != healthuc.Healthy {
		httpStatus = http.StatusServiceUnavailable
	}

	writeJSON(w, httpStatus, HealthResponse{
		Status: string(report.Status),
		Checks: checks,
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

func writeError(w http.ResponseWriter, status int, code errorCode, message string) {
	writeJSON(w, status, ErrorResponse{
		Code:    code,
		Message: message,
	})
}

// safeDomainMessage returns a sentinel error message for the client without exposing internals.
func safeDomainMessage(err error) string {
	sentinels := []error{
		domain.ErrClinicNotFound,
		domain.ErrAlreadyExists,
		domain.ErrInvalidClinic,
		domain.ErrInvalidQuery,
	}
	for _, s := range sentinels {
		if errors.Is(err, s) {
			return s.Error()
		}
	}
	return "internal error"
}

// sentinelHandler returns an errorHandler that matches a single sentinel error.
func sentinelHandler(sentinel error, status int, code errorCode) errorHandler {
	return func(w http.ResponseWriter, err error, msg string) bool {
		if !errors.Is(err, sentinel) {
			return false
		}
		writeError(w, status, code, msg)
		return true
	}
}

func (s *Server) handleDomainError(w http.ResponseWriter, err error) {
	s.logger.Warn("domain error", zap.Error(err))
	msg := safeDomainMessage(err)
	for _, h := range s.errorHandlers {
		if h(w, err, msg) {
			return
		}
	}
	s.logger.Error("internal error", zap.Error(err))
	writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
}
