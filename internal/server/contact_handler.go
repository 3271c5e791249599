package server

import (
	"encoding/json"
	"net/http"
)

// submitRequest is the expected JSON body for POST /api/contact.
type submitRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// handleContactSubmit handles POST /api/contact.
func (s *Server) handleContactSubmit(w http.ResponseWriter, r *http.Request) {
	var req submitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"message": "All fields are required"})
		return
	}

	if _, err := s.contacts.Submit(r.Context(), req.Name, req.Email, req.Message); err != nil {
		writeServiceError(w, err, "Error saving message")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Message received successfully!"})
}

// handleContactList handles GET /api/contact.
func (s *Server) handleContactList(w http.ResponseWriter, r *http.Request) {
	messages, err := s.contacts.List(r.Context())
	if err != nil {
		writeServiceError(w, err, "Error fetching messages")
		return
	}

	writeJSON(w, http.StatusOK, messages)
}
