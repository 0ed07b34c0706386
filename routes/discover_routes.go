package routes

import (
	"elo_server/controllers"
	"elo_server/services"

	"github.com/gorilla/mux"
)

// RegisterDiscoverRoutes sets up routes for the discovery feed, like/pass
// actions, and filter management.
func RegisterDiscoverRoutes(r *mux.Router, authService *services.AuthService, profileService *services.ProfileService, discoverService *services.DiscoverService) {
	controller := controllers.NewDiscoverController(authService, profileService, discoverService)

	r.HandleFunc("/discover", controller.HandleNextCandidate).Methods("GET")
	r.HandleFunc("/discover/filters", controller.HandleUpdateFilters).Methods("PUT")
	r.HandleFunc("/discover/filters/reset", controller.HandleResetFilters).Methods("POST")
	r.HandleFunc("/matches", controller.HandleAct).Methods("POST")
}
