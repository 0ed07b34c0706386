package routes

import (
	"elo_server/controllers"
	"elo_server/services"

	"github.com/gorilla/mux"
)

// RegisterProfileRoutes sets up routes for profile reads and merge-updates.
// The AI companion config route shares the update handler.
func RegisterProfileRoutes(r *mux.Router, authService *services.AuthService, profileService *services.ProfileService) {
	controller := controllers.NewProfileController(authService, profileService)

	r.HandleFunc("/profile", controller.HandleGetProfile).Methods("GET")
	r.HandleFunc("/profile", controller.HandleUpdateProfile).Methods("PUT")
	r.HandleFunc("/profile/ai-config", controller.HandleUpdateProfile).Methods("PUT")
}
