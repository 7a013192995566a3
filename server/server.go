// Package server exposes the curve fitting engine over HTTP: a JSON fit
// endpoint, a spreadsheet upload endpoint, and rendered fit charts.
package server

import (
	"fmt"
	"log"
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/fitkit/curvefit/dataset"
)

// Options holds the server configuration.
type Options struct {
	Addr           string
	MaxUploadBytes int64
}

// NewDefaultOptions returns a default set of server options.
func NewDefaultOptions() *Options {
	return &Options{
		Addr:           ":8080",
		MaxUploadBytes: 10 << 20,
	}
}

// Server routes fit requests to the engine. Uploaded datasets are kept in
// memory only for the chart render handoff; nothing persists.
type Server struct {
	opt    *Options
	router *chi.Mux

	mu       sync.RWMutex
	datasets map[string]*dataset.Dataset
}

// New creates a new instance of a Server using the provided options. If no
// options are provided a default is used.
func New(opt *Options) *Server {
	if opt == nil {
		opt = NewDefaultOptions()
	}

	s := &Server{
		opt:      opt,
		router:   chi.NewRouter(),
		datasets: make(map[string]*dataset.Dataset),
	}
	s.setupMiddleware()
	s.setupRoutes()
	return s
}

func (s *Server) setupMiddleware() {
	s.router.Use(middleware.Logger)
	s.router.Use(middleware.Recoverer)
	s.router.Use(middleware.Compress(5))
}

func (s *Server) setupRoutes() {
	s.router.Post("/api/fit", s.handleFit)
	s.router.Post("/api/upload", s.handleUpload)
	s.router.Get("/api/chart/{id}", s.handleChart)
}

// Router returns the http handler for mounting or testing.
func (s *Server) Router() http.Handler {
	return s.router
}

// ListenAndServe starts the server on the configured address.
func (s *Server) ListenAndServe() error {
	log.Printf("listening on %s", s.opt.Addr)
	if err := http.ListenAndServe(s.opt.Addr, s.router); err != nil {
		return fmt.Errorf("server stopped, %w", err)
	}
	return nil
}

func (s *Server) storeDataset(id string, ds *dataset.Dataset) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.datasets[id] = ds
}

func (s *Server) lookupDataset(id string) (*dataset.Dataset, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ds, exists := s.datasets[id]
	return ds, exists
}
