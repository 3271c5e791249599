package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// handleLeetCodeStats handles GET /api/leetcode/{username}. The upstream
// payload is relayed verbatim; reshaping is the caller's concern.
func (s *Server) handleLeetCodeStats(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")

	payload, err := s.stats.Fetch(r.Context(), username)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "Failed to fetch LeetCode stats"})
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(payload)
}
