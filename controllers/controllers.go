package controllers

import (
	"net/http"

	"elo_server/utils"

	"github.com/go-playground/validator/v10"
)

// validate checks request payloads against their struct tags.
var validate = validator.New()

// HealthCheckHandler provides a basic health check
func HealthCheckHandler(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// WelcomeHandler provides a welcome message
func WelcomeHandler(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, http.StatusOK, map[string]string{"message": "Welcome to the server! This is the Elo Digital API."})
}
