package server

import (
	"encoding/json"
	"net/http"

	"github.com/arx-os/georesolve/pkg/geometry"
	"github.com/arx-os/georesolve/pkg/mesh"
	"github.com/arx-os/georesolve/pkg/plan"
	"github.com/arx-os/georesolve/pkg/report"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	objects := s.resolver.Registry().Len()
	constraints := s.resolver.ConstraintCount()
	s.mu.Unlock()

	writeJSON(w, http.StatusOK, map[string]any{
		"status":      "ok",
		"objects":     objects,
		"constraints": constraints,
	})
}

func (s *Server) handlePlan(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	p := s.plan
	s.mu.Unlock()

	writeJSON(w, http.StatusOK, p)
}

type resolveRequest struct {
	MaxIterations int     `json:"max_iterations,omitempty"`
	Tolerance     float64 `json:"tolerance,omitempty"`
}

func (s *Server) handleResolve(w http.ResponseWriter, r *http.Request) {
	var req resolveRequest
	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid JSON")
			return
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	maxIterations := req.MaxIterations
	if maxIterations <= 0 {
		maxIterations = s.plan.Resolution.MaxIterationsOrDefault()
	}
	tolerance := req.Tolerance
	if tolerance <= 0 {
		tolerance = s.plan.Resolution.ToleranceOrDefault()
	}

	result := s.resolver.ResolveConstraints(maxIterations, tolerance)
	writeJSON(w, http.StatusOK, map[string]any{
		"result":   result,
		"snapshot": report.Assemble(s.resolver),
	})
}

func (s *Server) handleOptimize(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	result := s.resolver.OptimizeLayout(s.plan.Goals.ResolverGoals())
	writeJSON(w, http.StatusOK, map[string]any{
		"result":   result,
		"snapshot": report.Assemble(s.resolver),
	})
}

func (s *Server) handleConflicts(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	conflicts := s.resolver.DetectConflicts()
	collisions := s.resolver.Detect3DCollisions()
	s.mu.Unlock()

	writeJSON(w, http.StatusOK, map[string]any{
		"conflicts":  conflicts,
		"collisions": collisions,
	})
}

func (s *Server) handleSnapshot(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	snapshot := report.Assemble(s.resolver)
	s.mu.Unlock()

	writeJSON(w, http.StatusOK, snapshot)
}

// handleReset rebuilds the resolver from the plan on disk, discarding
// any resolved positions and history.
func (s *Server) handleReset(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	r, err := plan.Build(s.plan)
	if err == nil {
		s.resolver = r
	}
	s.mu.Unlock()

	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "reset"})
}

type extrudeRequest struct {
	Geometry geometry.Geometry `json:"geometry"`
	Height   float64           `json:"height"`
}

func (s *Server) handleExtrude(w http.ResponseWriter, r *http.Request) {
	var req extrudeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	if req.Height == 0 {
		req.Height = 3.0
	}

	writeJSON(w, http.StatusOK, geometry.Extrude(req.Geometry, req.Height))
}

type transformRequest struct {
	Geometry geometry.Geometry         `json:"geometry"`
	From     geometry.CoordinateSystem `json:"from"`
	To       geometry.CoordinateSystem `json:"to"`
	Scale    *geometry.ScaleFactors    `json:"scale,omitempty"`
}

func (s *Server) handleTransform(w http.ResponseWriter, r *http.Request) {
	var req transformRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	out, err := geometry.Transform(req.Geometry, req.From, req.To, req.Scale)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, out)
}

type validateRequest struct {
	Geometry geometry.Geometry `json:"geometry"`
	Apply    bool              `json:"apply_corrections,omitempty"`
}

func (s *Server) handleValidate(w http.ResponseWriter, r *http.Request) {
	var req validateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	rep := geometry.Validate(req.Geometry)
	resp := map[string]any{"report": rep}
	if req.Apply {
		resp["geometry"] = geometry.ApplyCorrections(req.Geometry, rep)
	}
	writeJSON(w, http.StatusOK, resp)
}

type meshOptimizeRequest struct {
	Geometry geometry.Geometry `json:"geometry"`
	Level    string            `json:"level,omitempty"`
}

func (s *Server) handleMeshOptimize(w http.ResponseWriter, r *http.Request) {
	var req meshOptimizeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	if req.Level == "" {
		req.Level = mesh.LevelMedium
	}

	optimized := mesh.Optimize(req.Geometry, req.Level)
	writeJSON(w, http.StatusOK, map[string]any{
		"geometry": optimized,
		"metrics":  mesh.CalculateMetrics(req.Geometry, optimized),
	})
}

type lodRequest struct {
	Geometry geometry.Geometry `json:"geometry"`
	Levels   []string          `json:"levels,omitempty"`
}

func (s *Server) handleLOD(w http.ResponseWriter, r *http.Request) {
	var req lodRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	writeJSON(w, http.StatusOK, mesh.GenerateLOD(req.Geometry, req.Levels))
}

type batchRequest struct {
	Geometries []geometry.Geometry `json:"geometries"`
	Operations []string            `json:"operations,omitempty"`
}

func (s *Server) handleBatch(w http.ResponseWriter, r *http.Request) {
	var req batchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	writeJSON(w, http.StatusOK, mesh.BatchProcess(req.Geometries, req.Operations))
}
