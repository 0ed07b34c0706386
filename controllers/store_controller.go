package controllers

import (
	"encoding/json"
	"log"
	"net/http"

	"elo_server/models"
	"elo_server/services"
	"elo_server/utils"
)

// StoreController struct
type StoreController struct {
	Auth  *services.AuthService
	Store *services.StoreService
}

// NewStoreController initializes the store controller
func NewStoreController(auth *services.AuthService, store *services.StoreService) *StoreController {
	return &StoreController{Auth: auth, Store: store}
}

type checkoutRequest struct {
	Items []models.CartItem `json:"items" validate:"required,min=1,dive"`
}

// HandleGetProducts returns the store catalog.
func (c *StoreController) HandleGetProducts(w http.ResponseWriter, r *http.Request) {
	if _, err := c.Auth.UserIDFromToken(r.Header.Get("Authorization")); err != nil {
		utils.WriteError(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, map[string]interface{}{"products": c.Store.Products()})
}

// HandleCheckout records a pending order for the submitted cart.
func (c *StoreController) HandleCheckout(w http.ResponseWriter, r *http.Request) {
	userID, err := c.Auth.UserIDFromToken(r.Header.Get("Authorization"))
	if err != nil {
		utils.WriteError(w, err)
		return
	}

	var req checkoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, services.NewValidationError("Corpo da requisição inválido"))
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.WriteError(w, services.NewValidationError("O carrinho está vazio"))
		return
	}

	order, err := c.Store.Checkout(r.Context(), userID, req.Items)
	if err != nil {
		log.Printf("Checkout error: %v", err)
		utils.WriteError(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, map[string]interface{}{"order": order})
}
