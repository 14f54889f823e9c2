// Package server serves chart definitions from a directory as live SVG
// previews.
//
// Every request loads the definition from disk and renders it into a fresh
// registry, so edits to the files show up on the next request and concurrent
// requests never share element state.
//
// Routes:
//
//	GET  /healthz                                   liveness and version
//	GET  /charts                                    definitions in the directory
//	GET  /charts/{name}.svg                         rendered chart
//	POST /charts/{name}/nodes/{id}/events/{event}   dispatch a simulated event
package server

import (
	"context"
	"encoding/json"
	"net/http"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/flowchart/pkg/errors"
	fio "github.com/matzehuels/flowchart/pkg/io"
	"github.com/matzehuels/flowchart/pkg/layout"
)

// DefaultAddr is the listen address used when none is configured.
const DefaultAddr = "127.0.0.1:8080"

// shutdownTimeout bounds graceful shutdown after the context is cancelled.
const shutdownTimeout = 5 * time.Second

// Config configures a preview server.
type Config struct {
	// Addr is the listen address. Empty means DefaultAddr.
	Addr string
	// Dir holds the chart definitions (.json or .toml).
	Dir string
	// Engine lays out charts. Required.
	Engine layout.Engine
	// Logger receives request logs. Nil uses log.Default().
	Logger *log.Logger
}

// SetDefaults fills unset fields.
func (c *Config) SetDefaults() {
	if c.Addr == "" {
		c.Addr = DefaultAddr
	}
	if c.Dir == "" {
		c.Dir = "."
	}
	if c.Logger == nil {
		c.Logger = log.Default()
	}
}

// Server is the HTTP preview server.
type Server struct {
	cfg    Config
	router chi.Router
}

// New creates a server with defaults applied to cfg.
func New(cfg Config) *Server {
	cfg.SetDefaults()
	s := &Server{cfg: cfg}
	s.router = s.routes()
	return s
}

// Handler returns the server's HTTP handler.
func (s *Server) Handler() http.Handler { return s.router }

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(middleware.Recoverer)
	r.Use(s.logRequests)

	r.Get("/healthz", s.handleHealth)
	r.Route("/charts", func(r chi.Router) {
		r.Get("/", s.handleList)
		r.Get("/{name}.svg", s.handleSVG)
		r.Post("/{name}/nodes/{id}/events/{event}", s.handleEvent)
	})
	return r
}

// ListenAndServe serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() { errc <- srv.ListenAndServe() }()
	s.cfg.Logger.Info("serving charts", "addr", s.cfg.Addr, "dir", s.cfg.Dir)

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		return ctx.Err()
	}
}

// chartFile resolves a chart name to its definition file.
func (s *Server) chartFile(name string) (string, error) {
	if err := errors.ValidateChartName(name); err != nil {
		return "", err
	}
	for _, ext := range []string{fio.ExtTOML, fio.ExtJSON} {
		rel := name + ext
		if err := errors.ValidatePath(rel); err != nil {
			return "", err
		}
		path := filepath.Join(s.cfg.Dir, rel)
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}
	return "", errors.New(errors.ErrCodeNotFound, "chart %q not found", name)
}

// chartNames lists the definitions in the chart directory.
func (s *Server) chartNames() ([]string, error) {
	entries, err := os.ReadDir(s.cfg.Dir)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "read chart directory")
	}
	seen := map[string]bool{}
	var names []string
	for _, e := range entries {
		if e.IsDir() || !fio.IsDefinitionFile(e.Name()) {
			continue
		}
		name := strings.TrimSuffix(e.Name(), filepath.Ext(e.Name()))
		if errors.ValidateChartName(name) != nil || seen[name] {
			continue
		}
		seen[name] = true
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

// =============================================================================
// Responses
// =============================================================================

type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, err error) {
	writeJSON(w, statusFor(err), errorResponse{
		Error: errors.UserMessage(err),
		Code:  string(errors.GetCode(err)),
	})
}

// statusFor maps error codes to HTTP status codes.
func statusFor(err error) int {
	switch errors.GetCode(err) {
	case errors.ErrCodeNotFound, errors.ErrCodeFileNotFound:
		return http.StatusNotFound
	case errors.ErrCodeInvalidInput, errors.ErrCodeInvalidPath:
		return http.StatusBadRequest
	case errors.ErrCodeInvalidFormat, errors.ErrCodeInvalidDirection, errors.ErrCodeInvalidStyle,
		errors.ErrCodeDuplicateID, errors.ErrCodeUnresolvedEdge:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
