package routes

import (
	"elo_server/controllers"
	"elo_server/services"

	"github.com/gorilla/mux"
)

// RegisterChatRoutes sets up routes for messages and conversation summaries.
func RegisterChatRoutes(r *mux.Router, authService *services.AuthService, chatService *services.ChatService) {
	controller := controllers.NewChatController(authService, chatService)

	r.HandleFunc("/messages", controller.HandleSendMessage).Methods("POST")
	r.HandleFunc("/messages/{conversationId}", controller.HandleGetMessages).Methods("GET")
	r.HandleFunc("/conversations", controller.HandleGetConversations).Methods("GET")
}
