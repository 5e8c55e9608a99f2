// Package http exposes a typeguard engine as a JSON API: structural checks,
// single-value matching and registry introspection, plus health and
// Prometheus metrics endpoints.
package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/mitchellh/mapstructure"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/aretw0/typeguard"
	"github.com/aretw0/typeguard/pkg/match"
	"github.com/aretw0/typeguard/pkg/registry"
	"github.com/aretw0/typeguard/pkg/schema"
)

// Server carries the engine and per-instance instruments behind the handler.
type Server struct {
	engine  *typeguard.Engine
	logger  *slog.Logger
	metrics *metrics
}

// CheckRequest is the body of POST /v1/check. Value is deliberately untyped:
// the checker itself reports non-object values as violations.
type CheckRequest struct {
	Schema map[string]any `mapstructure:"schema"`
	Value  any            `mapstructure:"value"`
	Strict bool           `mapstructure:"strict"`
}

// MatchRequest is the body of POST /v1/match and /v1/validate. Types accepts
// a single expression string or a list of them.
type MatchRequest struct {
	Value any `mapstructure:"value"`
	Types any `mapstructure:"types"`
}

// NewHandler creates the HTTP handler for the engine.
func NewHandler(engine *typeguard.Engine, logger *slog.Logger) http.Handler {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Server{engine: engine, logger: logger, metrics: newMetrics()}

	r := chi.NewRouter()
	r.Get("/health", s.handleHealth)
	r.Get("/info", s.handleInfo)
	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(s.metrics.registry, promhttp.HandlerOpts{}))

	r.Route("/v1", func(r chi.Router) {
		r.Post("/check", s.handleCheck)
		r.Post("/match", s.handleMatch)
		r.Post("/validate", s.handleValidate)
		r.Get("/types", s.handleListTypes)
		r.Get("/types/export", s.handleExportTypes)
		r.Post("/types/import", s.handleImportTypes)
	})

	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleInfo(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{
		"app":     "typeguard-http",
		"version": typeguard.Version,
	})
}

func (s *Server) handleCheck(w http.ResponseWriter, r *http.Request) {
	var req CheckRequest
	if err := s.decodeBody(r, &req); err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}

	// A missing schema key decodes to a nil map; hand it to the checker
	// unchanged so the guard error surfaces in the result.
	var sc any
	if req.Schema != nil {
		sc = req.Schema
	}

	var opts []schema.CheckOption
	if req.Strict {
		opts = append(opts, schema.WithStrict())
	}

	result := s.engine.CheckStructure(sc, req.Value, opts...)
	if result.Errors == nil {
		result.Errors = []string{}
	}

	s.metrics.checksTotal.WithLabelValues(outcome(result.Valid)).Inc()
	s.metrics.checkViolations.Observe(float64(len(result.Errors)))
	s.logger.Debug("structural check served", "valid", result.Valid, "violations", len(result.Errors))

	s.writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleMatch(w http.ResponseWriter, r *http.Request) {
	var req MatchRequest
	if err := s.decodeBody(r, &req); err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}

	exprs, err := typeExpressions(req.Types)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}

	ok, err := s.engine.Is(req.Value, exprs...)
	if err != nil {
		// Unregistered names are a caller configuration mistake.
		s.writeError(w, http.StatusBadRequest, err)
		return
	}

	s.metrics.matchesTotal.WithLabelValues(outcome(ok)).Inc()
	s.writeJSON(w, http.StatusOK, map[string]bool{"match": ok})
}

func (s *Server) handleValidate(w http.ResponseWriter, r *http.Request) {
	var req MatchRequest
	if err := s.decodeBody(r, &req); err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}

	exprs, err := typeExpressions(req.Types)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}

	value, err := s.engine.IsType(req.Value, exprs...)
	if err != nil {
		var mismatch *match.MismatchError
		if errors.As(err, &mismatch) {
			s.metrics.matchesTotal.WithLabelValues("invalid").Inc()
			s.writeJSON(w, http.StatusUnprocessableEntity, map[string]any{
				"error":   mismatch.Error(),
				"reasons": mismatch.Reasons,
			})
			return
		}
		s.writeError(w, http.StatusBadRequest, err)
		return
	}

	s.metrics.matchesTotal.WithLabelValues("valid").Inc()
	s.writeJSON(w, http.StatusOK, map[string]any{"value": value})
}

func (s *Server) handleListTypes(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]any{"types": s.engine.ListTypes()})
}

func (s *Server) handleExportTypes(w http.ResponseWriter, r *http.Request) {
	payload, err := s.engine.ExportTypes()
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(payload)); err != nil {
		s.logger.Error("write export response", "error", err)
	}
}

func (s *Server) handleImportTypes(w http.ResponseWriter, r *http.Request) {
	var payload json.RawMessage
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		s.writeError(w, http.StatusBadRequest, fmt.Errorf("invalid request body: %w", err))
		return
	}

	if err := s.engine.ImportTypes(string(payload)); err != nil {
		if errors.Is(err, registry.ErrMalformedImport) {
			s.writeError(w, http.StatusBadRequest, err)
			return
		}
		s.writeError(w, http.StatusInternalServerError, err)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "imported"})
}

// decodeBody decodes the JSON body into a generic map first and then maps it
// onto the request struct, so free-form fields (schemas, candidate values)
// survive untouched next to the typed ones.
func (s *Server) decodeBody(r *http.Request, out any) error {
	var raw map[string]any
	if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
		return fmt.Errorf("invalid request body: %w", err)
	}
	if err := mapstructure.Decode(raw, out); err != nil {
		return fmt.Errorf("invalid request shape: %w", err)
	}
	return nil
}

func typeExpressions(raw any) ([]string, error) {
	switch v := raw.(type) {
	case string:
		return []string{v}, nil
	case []string:
		return v, nil
	case []any:
		exprs := make([]string, 0, len(v))
		for _, item := range v {
			s, ok := item.(string)
			if !ok {
				return nil, fmt.Errorf("types must be strings, got %T", item)
			}
			exprs = append(exprs, s)
		}
		return exprs, nil
	case nil:
		return nil, fmt.Errorf("missing types")
	default:
		return nil, fmt.Errorf("types must be a string or a list of strings, got %T", raw)
	}
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		s.logger.Error("encode response", "error", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, err error) {
	s.writeJSON(w, status, map[string]string{"error": err.Error()})
}
