package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"campushub-backend/internal/logger"
	"campushub-backend/internal/repository"
	"campushub-backend/internal/service"
)

type errorResponse struct {
	Error string `json:"error"`
}

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.Error("failed to encode response", "error", err)
	}
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, errorResponse{Error: message})
}

// respondServiceError maps service-layer failures to user-visible French
// messages. Side-effect (notification) failures never reach this path;
// only primary mutation errors do.
func respondServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		respondError(w, http.StatusNotFound, "Introuvable.")
	case errors.Is(err, service.ErrInvalidCredentials):
		respondError(w, http.StatusUnauthorized, "Email ou mot de passe incorrect.")
	default:
		logger.Error("request failed", "error", err)
		respondError(w, http.StatusInternalServerError, "Une erreur est survenue. Veuillez réessayer.")
	}
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		respondError(w, http.StatusBadRequest, "Requête invalide.")
		return false
	}
	return true
}
