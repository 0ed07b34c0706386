package controllers

import (
	"encoding/json"
	"net/http"

	"elo_server/services"
	"elo_server/utils"
)

// ProfileController struct
type ProfileController struct {
	Auth    *services.AuthService
	Profile *services.ProfileService
}

// NewProfileController initializes the profile controller
func NewProfileController(auth *services.AuthService, profile *services.ProfileService) *ProfileController {
	return &ProfileController{Auth: auth, Profile: profile}
}

// HandleGetProfile returns the authenticated user's profile.
func (c *ProfileController) HandleGetProfile(w http.ResponseWriter, r *http.Request) {
	userID, err := c.Auth.UserIDFromToken(r.Header.Get("Authorization"))
	if err != nil {
		utils.WriteError(w, err)
		return
	}

	profile, err := c.Profile.GetProfile(r.Context(), userID)
	if err != nil {
		utils.WriteError(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, map[string]interface{}{"profile": profile})
}

// HandleUpdateProfile merge-updates the authenticated user's profile. The AI
// companion config route shares this handler: same merge semantics.
func (c *ProfileController) HandleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	userID, err := c.Auth.UserIDFromToken(r.Header.Get("Authorization"))
	if err != nil {
		utils.WriteError(w, err)
		return
	}

	updates := map[string]interface{}{}
	if err := json.NewDecoder(r.Body).Decode(&updates); err != nil {
		utils.WriteError(w, services.NewValidationError("Corpo da requisição inválido"))
		return
	}

	profile, err := c.Profile.UpdateProfile(r.Context(), userID, updates)
	if err != nil {
		utils.WriteError(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, map[string]interface{}{"profile": profile})
}
