// Package server exposes the resolver and geometry pipeline over HTTP.
package server

import (
	"fmt"
	"log"
	"net/http"
	"sync"

	"github.com/gorilla/mux"
	"github.com/rs/cors"

	"github.com/arx-os/georesolve/pkg/plan"
	"github.com/arx-os/georesolve/pkg/resolver"
)

// Server hosts the resolution API for a single project. The resolver
// is shared mutable state; every handler that touches it holds mu.
type Server struct {
	projectPath string
	port        int

	mu       sync.Mutex
	plan     *plan.PlacementPlan
	resolver *resolver.Resolver
}

// New creates a server for the given project directory.
func New(projectPath string, port int) *Server {
	return &Server{
		projectPath: projectPath,
		port:        port,
	}
}

// Start loads the project plan and launches the HTTP server.
func (s *Server) Start() error {
	if err := s.loadProject(); err != nil {
		return err
	}

	handler := s.handler()

	addr := fmt.Sprintf(":%d", s.port)
	log.Printf("georesolve server starting on http://localhost%s", addr)
	log.Printf("Project: %s", s.projectPath)

	return http.ListenAndServe(addr, handler)
}

// loadProject reads the plan and builds a fresh resolver from it.
func (s *Server) loadProject() error {
	p, err := plan.LoadProject(s.projectPath)
	if err != nil {
		return fmt.Errorf("loading project: %w", err)
	}
	if report := plan.ValidateSchema(p); !report.Valid {
		return fmt.Errorf("plan has validation errors: %s", report.Summary)
	}
	r, err := plan.Build(p)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.plan = p
	s.resolver = r
	s.mu.Unlock()
	return nil
}

// handler builds the routed, CORS-wrapped handler stack.
func (s *Server) handler() http.Handler {
	r := mux.NewRouter()

	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/health", s.handleHealth).Methods("GET")
	api.HandleFunc("/plan", s.handlePlan).Methods("GET")
	api.HandleFunc("/resolve", s.handleResolve).Methods("POST")
	api.HandleFunc("/optimize", s.handleOptimize).Methods("POST")
	api.HandleFunc("/conflicts", s.handleConflicts).Methods("GET")
	api.HandleFunc("/snapshot", s.handleSnapshot).Methods("GET")
	api.HandleFunc("/reset", s.handleReset).Methods("POST")

	geom := api.PathPrefix("/geometry").Subrouter()
	geom.HandleFunc("/extrude", s.handleExtrude).Methods("POST")
	geom.HandleFunc("/transform", s.handleTransform).Methods("POST")
	geom.HandleFunc("/validate", s.handleValidate).Methods("POST")

	m := api.PathPrefix("/mesh").Subrouter()
	m.HandleFunc("/optimize", s.handleMeshOptimize).Methods("POST")
	m.HandleFunc("/lod", s.handleLOD).Methods("POST")
	m.HandleFunc("/batch", s.handleBatch).Methods("POST")

	c := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"*"},
	})

	return c.Handler(r)
}
