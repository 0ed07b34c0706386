package controllers

import (
	"encoding/json"
	"log"
	"net/http"

	"elo_server/services"
	"elo_server/utils"

	"github.com/gorilla/mux"
)

// ChatController struct
type ChatController struct {
	Auth *services.AuthService
	Chat *services.ChatService
}

// NewChatController initializes the chat controller
func NewChatController(auth *services.AuthService, chat *services.ChatService) *ChatController {
	return &ChatController{Auth: auth, Chat: chat}
}

type sendMessageRequest struct {
	ConversationID string `json:"conversationId" validate:"required"`
	Text           string `json:"text"`
	Receiver       string `json:"receiver" validate:"required"`
}

// HandleSendMessage stores a new message and, for the AI companion,
// schedules the delayed reply.
func (c *ChatController) HandleSendMessage(w http.ResponseWriter, r *http.Request) {
	userID, err := c.Auth.UserIDFromToken(r.Header.Get("Authorization"))
	if err != nil {
		utils.WriteError(w, err)
		return
	}

	var req sendMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, services.NewValidationError("Corpo da requisição inválido"))
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.WriteError(w, services.NewValidationError("conversationId e receiver são obrigatórios"))
		return
	}

	message, err := c.Chat.SendMessage(r.Context(), userID, req.ConversationID, req.Text, req.Receiver)
	if err != nil {
		log.Printf("Send message error: %v", err)
		utils.WriteError(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, map[string]interface{}{"message": message})
}

// HandleGetMessages returns the ordered messages of one conversation visible
// to the authenticated user.
func (c *ChatController) HandleGetMessages(w http.ResponseWriter, r *http.Request) {
	userID, err := c.Auth.UserIDFromToken(r.Header.Get("Authorization"))
	if err != nil {
		utils.WriteError(w, err)
		return
	}

	conversationID := mux.Vars(r)["conversationId"]
	messages, err := c.Chat.GetMessages(r.Context(), userID, conversationID)
	if err != nil {
		log.Printf("Get messages error: %v", err)
		utils.WriteError(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, map[string]interface{}{"messages": messages})
}

// HandleGetConversations returns one summary per conversation involving the
// authenticated user.
func (c *ChatController) HandleGetConversations(w http.ResponseWriter, r *http.Request) {
	userID, err := c.Auth.UserIDFromToken(r.Header.Get("Authorization"))
	if err != nil {
		utils.WriteError(w, err)
		return
	}

	conversations, err := c.Chat.GetConversations(r.Context(), userID)
	if err != nil {
		log.Printf("Get conversations error: %v", err)
		utils.WriteError(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, map[string]interface{}{"conversations": conversations})
}
