package server

import (
	"net/http"
)

// handleProjectList handles GET /api/projects.
func (s *Server) handleProjectList(w http.ResponseWriter, r *http.Request) {
	projects, err := s.projects.List(r.Context())
	if err != nil {
		writeServiceError(w, err, "Error fetching projects")
		return
	}

	writeJSON(w, http.StatusOK, projects)
}
