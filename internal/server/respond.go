package server

import (
	"encoding/json"
	"net/http"
	"strings"

	apperrors "portfolio-backend/pkg/errors"
)

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// writeServiceError maps the error taxonomy onto HTTP statuses: validation
// errors are caller-fixable 400s, unauthorized is 401, everything else is a
// 500 carrying the underlying detail.
func writeServiceError(w http.ResponseWriter, err error, fallback string) {
	appErr, ok := err.(*apperrors.AppError)
	if !ok {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"message": fallback})
		return
	}

	switch appErr.Code {
	case apperrors.ErrCodeValidation:
		writeJSON(w, http.StatusBadRequest, map[string]string{"message": appErr.Message})
	case apperrors.ErrCodeUnauthorized:
		writeJSON(w, http.StatusUnauthorized, map[string]string{"message": appErr.Message})
	default:
		body := map[string]string{"message": appErr.Message}
		if appErr.Err != nil {
			body["error"] = appErr.Err.Error()
		}
		writeJSON(w, http.StatusInternalServerError, body)
	}
}

// bearerToken extracts the token from an Authorization header.
func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}
	return parts[1], true
}
