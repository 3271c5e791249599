package server

import (
	"net/http"
)

// handleRoot handles GET /api, the liveness route the frontend pings.
func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"message": "Portfolio API is running!"})
}

// handleHealth handles GET /health.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	status, service := s.health.Check(r.Context())
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  status,
		"service": service,
	})
}
