package routes

import (
	"elo_server/controllers"
	"elo_server/services"

	"github.com/gorilla/mux"
)

// RegisterStoreRoutes sets up routes for the in-app store.
func RegisterStoreRoutes(r *mux.Router, authService *services.AuthService, storeService *services.StoreService) {
	controller := controllers.NewStoreController(authService, storeService)

	storeRouter := r.PathPrefix("/store").Subrouter()
	storeRouter.HandleFunc("/products", controller.HandleGetProducts).Methods("GET")
	storeRouter.HandleFunc("/checkout", controller.HandleCheckout).Methods("POST")
}
