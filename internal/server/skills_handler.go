package server

import (
	"encoding/json"
	"net/http"

	"portfolio-backend/internal/services"
)

// handleSkillList handles GET /api/skills.
func (s *Server) handleSkillList(w http.ResponseWriter, r *http.Request) {
	skills, err := s.skills.List(r.Context())
	if err != nil {
		writeServiceError(w, err, "Error fetching skills")
		return
	}

	writeJSON(w, http.StatusOK, skills)
}

// handleSkillCreate handles POST /api/skills.
func (s *Server) handleSkillCreate(w http.ResponseWriter, r *http.Request) {
	var input services.SkillInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"message": "invalid request body"})
		return
	}

	skill, err := s.skills.Create(r.Context(), input)
	if err != nil {
		writeServiceError(w, err, "Error saving skill")
		return
	}

	writeJSON(w, http.StatusCreated, skill)
}
