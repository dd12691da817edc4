// Package http exposes the simulator as a stateless JSON API. Every
// request resolves a shared read-only definition and runs an
// independent simulation; there is nothing to lock and nothing to
// cache.
package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/automatalab/automata/internal/presentation/graph"
	"github.com/automatalab/automata/pkg/domain"
)

// Engine defines the simulator surface the server needs.
type Engine interface {
	List() ([]string, error)
	Definition(name string) (*domain.Definition, error)
	Simulate(name, input string) (*domain.Result, error)
}

// Server routes API requests to the engine.
type Server struct {
	engine  Engine
	logger  *slog.Logger
	metrics *metrics
}

// NewHandler creates the HTTP handler: definition listing, simulation,
// diagram export and prometheus metrics.
func NewHandler(engine Engine, logger *slog.Logger) http.Handler {
	reg := prometheus.NewRegistry()
	s := &Server{
		engine:  engine,
		logger:  logger,
		metrics: newMetrics(reg),
	}

	r := chi.NewRouter()
	r.Get("/definitions", s.listDefinitions)
	r.Get("/definitions/{name}", s.getDefinition)
	r.Get("/definitions/{name}/graph", s.getGraph)
	r.Post("/simulate", s.simulate)
	r.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	return r
}

// SimulateRequest is the body of POST /simulate.
type SimulateRequest struct {
	Definition string `json:"definition"`
	Input      string `json:"input"`
}

// SimulateResponse echoes the request plus the run outcome. RunID tags
// the response for client-side correlation; the engine itself is
// stateless and remembers nothing.
type SimulateResponse struct {
	RunID      string                  `json:"run_id"`
	Definition string                  `json:"definition"`
	Input      string                  `json:"input"`
	Trace      domain.Trace            `json:"trace"`
	Accepted   bool                    `json:"accepted"`
	Error      *domain.SimulationError `json:"error,omitempty"`
}

func (s *Server) listDefinitions(w http.ResponseWriter, r *http.Request) {
	names, err := s.engine.List()
	if err != nil {
		s.internalError(w, "list definitions", err)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]any{"definitions": names})
}

func (s *Server) getDefinition(w http.ResponseWriter, r *http.Request) {
	def, ok := s.resolve(w, chi.URLParam(r, "name"))
	if !ok {
		return
	}
	s.writeJSON(w, http.StatusOK, def)
}

func (s *Server) getGraph(w http.ResponseWriter, r *http.Request) {
	def, ok := s.resolve(w, chi.URLParam(r, "name"))
	if !ok {
		return
	}

	format := r.URL.Query().Get("format")
	var out string
	switch format {
	case "", "mermaid":
		out = graph.GenerateMermaid(def, nil)
	case "dot":
		out = graph.GenerateDOT(def, nil)
	default:
		http.Error(w, "unknown format: "+format, http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte(out))
}

func (s *Server) simulate(w http.ResponseWriter, r *http.Request) {
	var req SimulateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if req.Definition == "" {
		http.Error(w, "definition is required", http.StatusBadRequest)
		return
	}

	res, err := s.engine.Simulate(req.Definition, req.Input)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		s.internalError(w, "simulate", err)
		return
	}

	s.metrics.observe(req.Definition, req.Input, res)

	s.writeJSON(w, http.StatusOK, SimulateResponse{
		RunID:      uuid.NewString(),
		Definition: req.Definition,
		Input:      req.Input,
		Trace:      res.Trace,
		Accepted:   res.Accepted,
		Error:      res.Err,
	})
}

func (s *Server) resolve(w http.ResponseWriter, name string) (*domain.Definition, bool) {
	def, err := s.engine.Definition(name)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return nil, false
		}
		s.internalError(w, "load definition", err)
		return nil, false
	}
	return def, true
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("encode response", "error", err)
	}
}

func (s *Server) internalError(w http.ResponseWriter, op string, err error) {
	s.logger.Error(op, "error", err)
	http.Error(w, op+" failed", http.StatusInternalServerError)
}
