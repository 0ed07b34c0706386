package controllers

import (
	"encoding/json"
	"log"
	"net/http"

	"elo_server/services"
	"elo_server/utils"
)

// AuthController struct
type AuthController struct {
	Auth *services.AuthService
}

// NewAuthController initializes the auth controller
func NewAuthController(auth *services.AuthService) *AuthController {
	return &AuthController{Auth: auth}
}

type signupRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Name     string `json:"name" validate:"required"`
}

type signinRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// HandleSignUp creates an account and seeds its profile.
func (c *AuthController) HandleSignUp(w http.ResponseWriter, r *http.Request) {
	var req signupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, services.NewValidationError("Corpo da requisição inválido"))
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.WriteError(w, services.NewValidationError("Email, password e nome são obrigatórios"))
		return
	}

	user, err := c.Auth.SignUp(r.Context(), req.Email, req.Password, req.Name)
	if err != nil {
		log.Printf("Signup error: %v", err)
		utils.WriteError(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, map[string]interface{}{"user": user})
}

// HandleSignIn verifies credentials and issues a session.
func (c *AuthController) HandleSignIn(w http.ResponseWriter, r *http.Request) {
	var req signinRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, services.NewValidationError("Corpo da requisição inválido"))
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.WriteError(w, services.NewValidationError("Email e password são obrigatórios"))
		return
	}

	session, user, err := c.Auth.SignIn(r.Context(), req.Email, req.Password)
	if err != nil {
		log.Printf("Signin error: %v", err)
		utils.WriteError(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"session": session,
		"user":    user,
	})
}
