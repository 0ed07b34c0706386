package utils

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"elo_server/services"
)

// WriteJSON writes a JSON response with the given status code.
func WriteJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("Failed to encode response: %v", err)
	}
}

// WriteError maps a service error to its status code and writes the uniform
// single-field error body.
func WriteError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	message := "Erro interno do servidor"

	var validationErr *services.ValidationError
	var upstreamErr *services.UpstreamError
	switch {
	case errors.As(err, &validationErr):
		status = http.StatusBadRequest
		message = validationErr.Message
	case errors.Is(err, services.ErrUnauthorized):
		status = http.StatusUnauthorized
		message = services.ErrUnauthorized.Error()
	case errors.Is(err, services.ErrQuotaExceeded):
		status = http.StatusTooManyRequests
		message = services.ErrQuotaExceeded.Error()
	case errors.As(err, &upstreamErr):
		status = http.StatusBadGateway
		message = upstreamErr.Error()
	}

	if status >= http.StatusInternalServerError {
		log.Printf("Request failed: %v", err)
	}
	WriteJSON(w, status, map[string]string{"error": message})
}
