package controllers

import (
	"encoding/json"
	"log"
	"net/http"

	"elo_server/models"
	"elo_server/services"
	"elo_server/utils"
)

// DiscoverController struct
type DiscoverController struct {
	Auth     *services.AuthService
	Profile  *services.ProfileService
	Discover *services.DiscoverService
}

// NewDiscoverController initializes the discover controller
func NewDiscoverController(auth *services.AuthService, profile *services.ProfileService, discover *services.DiscoverService) *DiscoverController {
	return &DiscoverController{Auth: auth, Profile: profile, Discover: discover}
}

type actRequest struct {
	TargetUserID string `json:"targetUserId" validate:"required"`
	Action       string `json:"action" validate:"required,oneof=like pass"`
}

// viewerFilters substitutes the default filter set for non-premium viewers:
// their filter changes are accepted but not applied.
func (c *DiscoverController) viewerFilters(r *http.Request, userID string, premium bool) (models.DiscoverFilters, error) {
	if !premium {
		return models.DefaultFilters(), nil
	}
	return c.Discover.Filters(r.Context(), userID)
}

// HandleNextCandidate returns the next visible candidate, or null when the
// filtered queue is exhausted.
func (c *DiscoverController) HandleNextCandidate(w http.ResponseWriter, r *http.Request) {
	userID, err := c.Auth.UserIDFromToken(r.Header.Get("Authorization"))
	if err != nil {
		utils.WriteError(w, err)
		return
	}

	premium, err := c.Profile.IsPremium(r.Context(), userID)
	if err != nil {
		utils.WriteError(w, err)
		return
	}
	filters, err := c.viewerFilters(r, userID, premium)
	if err != nil {
		utils.WriteError(w, err)
		return
	}

	candidate, remaining, err := c.Discover.NextCandidate(r.Context(), userID, filters)
	if err != nil {
		log.Printf("Next candidate error: %v", err)
		utils.WriteError(w, err)
		return
	}
	if premium {
		remaining = 9999
	}

	utils.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"profile":     candidate,
		"matchesLeft": remaining,
	})
}

// HandleAct records a like or pass action against the current candidate.
func (c *DiscoverController) HandleAct(w http.ResponseWriter, r *http.Request) {
	userID, err := c.Auth.UserIDFromToken(r.Header.Get("Authorization"))
	if err != nil {
		utils.WriteError(w, err)
		return
	}

	var req actRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, services.NewValidationError("Corpo da requisição inválido"))
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.WriteError(w, services.NewValidationError("targetUserId e action (like|pass) são obrigatórios"))
		return
	}

	premium, err := c.Profile.IsPremium(r.Context(), userID)
	if err != nil {
		utils.WriteError(w, err)
		return
	}

	match, err := c.Discover.Act(r.Context(), userID, req.TargetUserID, req.Action, premium)
	if err != nil {
		log.Printf("Act error: %v", err)
		utils.WriteError(w, err)
		return
	}

	response := map[string]interface{}{"message": "Ação registrada"}
	if match != nil {
		response["message"] = "Like enviado!"
		response["matchId"] = match.ID
	}
	utils.WriteJSON(w, http.StatusOK, response)
}

// HandleUpdateFilters replaces the viewer's filter set.
func (c *DiscoverController) HandleUpdateFilters(w http.ResponseWriter, r *http.Request) {
	userID, err := c.Auth.UserIDFromToken(r.Header.Get("Authorization"))
	if err != nil {
		utils.WriteError(w, err)
		return
	}

	var filters models.DiscoverFilters
	if err := json.NewDecoder(r.Body).Decode(&filters); err != nil {
		utils.WriteError(w, services.NewValidationError("Corpo da requisição inválido"))
		return
	}

	if err := c.Discover.UpdateFilters(r.Context(), userID, filters); err != nil {
		utils.WriteError(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, map[string]interface{}{"filters": filters})
}

// HandleResetFilters widens the filters to their maximum spans.
func (c *DiscoverController) HandleResetFilters(w http.ResponseWriter, r *http.Request) {
	userID, err := c.Auth.UserIDFromToken(r.Header.Get("Authorization"))
	if err != nil {
		utils.WriteError(w, err)
		return
	}

	filters, err := c.Discover.ResetFilters(r.Context(), userID)
	if err != nil {
		utils.WriteError(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, map[string]interface{}{"filters": filters})
}
