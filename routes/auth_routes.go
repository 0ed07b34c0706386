package routes

import (
	"elo_server/controllers"
	"elo_server/services"

	"github.com/gorilla/mux"
)

// RegisterAuthRoutes sets up the unauthenticated signup/signin routes.
func RegisterAuthRoutes(r *mux.Router, authService *services.AuthService) {
	controller := controllers.NewAuthController(authService)

	authRouter := r.PathPrefix("/auth").Subrouter()
	authRouter.HandleFunc("/signup", controller.HandleSignUp).Methods("POST")
	authRouter.HandleFunc("/signin", controller.HandleSignIn).Methods("POST")
}
