package chi

import (
	"encoding/json"
	"errors"
	"math/rand/v2"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/curio-labs/searchlab/internal/domain"
	"github.com/curio-labs/searchlab/internal/domain/search/request"
	"github.com/curio-labs/searchlab/internal/media"
	chatuc "github.com/curio-labs/searchlab/internal/usecase/chat"
	healthuc "github.com/curio-labs/searchlab/internal/usecase/health"
	memoryuc "github.com/curio-labs/searchlab/internal/usecase/memory"
	searchuc "github.com/curio-labs/searchlab/internal/usecase/search"
)

// errorCode identifies an API error class in responses.
type errorCode string

const (
	codeBadRequest       errorCode = "bad_request"
	codeValidationFailed errorCode = "validation_failed"
	codeNotFound         errorCode = "not_found"
	codeUnknownMethod    errorCode = "unknown_method"
	codePathEscape       errorCode = "path_escape"
	codeNotImplemented   errorCode = "not_implemented"
	codeInternalError    errorCode = "internal_error"
)

type errorResponse struct {
	Code    errorCode `json:"code"`
	Message string    `json:"message"`
}

// errorHandler tries to handle a domain error. Returns true if handled.
type errorHandler func(w http.ResponseWriter, err error, msg string) bool

// Latency is the simulated processing floor of the mocked pipelines.
// A zero Max disables the sleep entirely (tests).
type Latency struct {
	Min time.Duration
	Max time.Duration
}

func (l Latency) sleep() {
	if l.Max <= 0 {
		return
	}
	d := l.Min
	if l.Max > l.Min {
		d += rand.N(l.Max - l.Min)
	}
	time.Sleep(d)
}

// Server is the HTTP API for the search lab.
type Server struct {
	search      *searchuc.Service
	chat        *chatuc.Service
	memory      *memoryuc.Service
	health      *healthuc.Service
	transcriber media.Transcriber
	analyzer    media.Analyzer
	logger      *zap.Logger

	defaultTopK   int
	latency       Latency
	errorHandlers []errorHandler
}

// NewServer creates an HTTP API server.
func NewServer(
	search *searchuc.Service,
	chat *chatuc.Service,
	memory *memoryuc.Service,
	health *healthuc.Service,
	transcriber media.Transcriber,
	analyzer media.Analyzer,
	logger *zap.Logger,
) *Server {
	s := &Server{
		search:      search,
		chat:        chat,
		memory:      memory,
		health:      health,
		transcriber: transcriber,
		analyzer:    analyzer,
		logger:      logger,
		defaultTopK: request.DefaultTopK,
	}
	s.errorHandlers = []errorHandler{
		sentinelHandler(domain.ErrInvalidArgument, http.StatusBadRequest, codeValidationFailed),
		sentinelHandler(domain.ErrUnknownMethod, http.StatusBadRequest, codeUnknownMethod),
		sentinelHandler(domain.ErrMemoryPathEscape, http.StatusBadRequest, codePathEscape),
		sentinelHandler(domain.ErrNotFound, http.StatusNotFound, codeNotFound),
		sentinelHandler(domain.ErrNotImplemented, http.StatusNotImplemented, codeNotImplemented),
	}
	return s
}

// WithDefaultTopK overrides the result cap applied when a request omits top_k.
func (s *Server) WithDefaultTopK(topK int) *Server {
	if topK > 0 {
		s.defaultTopK = topK
	}
	return s
}

// WithLatency sets the simulated processing floor for the mocked pipelines.
func (s *Server) WithLatency(l Latency) *Server {
	s.latency = l
	return s
}

// Register mounts all API routes on the router.
func (s *Server) Register(r chi.Router) {
	r.Get("/health", s.handleHealth)
	r.Get("/metrics", s.handleMetrics)

	r.Route("/api", func(r chi.Router) {
		r.Post("/search/all", s.handleSearchAll)
		r.Route("/search/{method}", func(r chi.Router) {
			r.Post("/", s.handleSearch)
			r.Post("/audio", s.handleSearchAudio)
			r.Post("/image", s.handleSearchImage)
		})
		r.Route("/chat", func(r chi.Router) {
			r.Get("/state", s.handleChatState)
			r.Post("/clear", s.handleChatClear)
			r.Post("/text", s.handleChatText)
			r.Post("/audio", s.handleChatAudio)
			r.Post("/image", s.handleChatImage)
		})
		r.Route("/memory", func(r chi.Router) {
			r.Post("/", s.handleMemoryCommand)
			r.Post("/reset", s.handleMemoryReset)
		})
	})
}

// handleHealth handles GET /health.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	report := s.health.Check(r.Context())

	httpStatus := http.StatusOK
	if report.Status != healthuc.Healthy {
		httpStatus = http.StatusServiceUnavailable
	}

	writeJSON(w, httpStatus, map[string]any{
		"status": report.Status,
		"checks": report.Checks,
	})
}

// handleMetrics handles GET /metrics.
func (s *Server) handleMetrics(w http.ResponseWriter, r *http.Request) {
	promhttp.Handler().ServeHTTP(w, r)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code errorCode, message string) {
	writeJSON(w, status, errorResponse{
		Code:    code,
		Message: message,
	})
}

// safeDomainMessage returns a sentinel error message for the client without exposing internals.
func safeDomainMessage(err error) string {
	sentinels := []error{
		domain.ErrInvalidArgument,
		domain.ErrUnknownMethod,
		domain.ErrMemoryPathEscape,
		domain.ErrNotFound,
		domain.ErrNotImplemented,
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
