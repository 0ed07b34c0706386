package services

import (
	"context"
	"encoding/json"
	"log"
	"math/rand"
	"sort"
	"strings"
	"time"

	"elo_server/models"

	"github.com/google/uuid"
)

// Notifier pushes realtime events to connected clients. A nil notifier
// disables broadcasting.
type Notifier interface {
	BroadcastToRoom(room, event string, payload interface{})
}

// aiResponses is the fixed pool the AI companion draws from.
var aiResponses = []string{
	"Fico feliz em conversar com você! Como está se sentindo hoje?",
	"Entendo... conte-me mais sobre isso.",
	"Você é importante e suas emoções são válidas.",
	"Estou aqui para você, sempre que precisar.",
	"Que interessante! Me fale mais sobre essa experiência.",
	"Você está indo muito bem. Como posso te ajudar mais?",
	"É completamente normal sentir isso. Vamos explorar juntos?",
}

// ChatService stores messages and derives conversation views. Messages are
// immutable once created; there is no edit or delete.
type ChatService struct {
	KV         KVStore
	Notifier   Notifier
	ReplyDelay time.Duration
}

// NewChatService returns a ChatService with the production reply delay.
func NewChatService(kv KVStore) *ChatService {
	return &ChatService{KV: kv, ReplyDelay: time.Second}
}

// SendMessage appends a message and updates the conversation's denormalized
// last-message record. When the receiver is the AI companion, exactly one
// delayed follow-up reply is scheduled fire-and-forget.
func (cs *ChatService) SendMessage(ctx context.Context, senderID, conversationID, text, receiver string) (*models.Message, error) {
	if strings.TrimSpace(text) == "" {
		return nil, NewValidationError("A mensagem não pode ser vazia")
	}

	message := models.Message{
		ID:             uuid.NewString(),
		ConversationID: conversationID,
		SenderID:       senderID,
		Receiver:       receiver,
		Text:           text,
		Timestamp:      time.Now().UTC().Format(time.RFC3339Nano),
	}

	if err := cs.KV.Set(ctx, models.MessageKey(message.ID), message); err != nil {
		return nil, err
	}
	// No rollback if this write fails: the message exists and the summary is
	// left stale until the next send.
	if err := cs.KV.Set(ctx, models.LastMessageKey(conversationID), models.LastMessage{Text: message.Text, Timestamp: message.Timestamp}); err != nil {
		return nil, err
	}

	cs.broadcast(conversationID, "newMessage", message)

	if receiver == models.AICompanionID {
		cs.scheduleAIReply(conversationID, senderID)
	}

	return &message, nil
}

// scheduleAIReply fires one deferred companion reply. The timer is
// unobserved: if the process exits before the delay elapses, the reply is
// lost.
func (cs *ChatService) scheduleAIReply(conversationID, receiverID string) {
	time.AfterFunc(cs.ReplyDelay, func() {
		ctx := context.Background()

		reply := models.Message{
			ID:             uuid.NewString(),
			ConversationID: conversationID,
			SenderID:       models.AICompanionID,
			Receiver:       receiverID,
			Text:           aiResponses[rand.Intn(len(aiResponses))],
			Timestamp:      time.Now().UTC().Format(time.RFC3339Nano),
		}

		if err := cs.KV.Set(ctx, models.MessageKey(reply.ID), reply); err != nil {
			log.Printf("Failed to store AI reply for conversation %s: %v", conversationID, err)
			return
		}
		if err := cs.KV.Set(ctx, models.LastMessageKey(conversationID), models.LastMessage{Text: reply.Text, Timestamp: reply.Timestamp}); err != nil {
			log.Printf("Failed to update last message for conversation %s: %v", conversationID, err)
		}

		cs.broadcast(conversationID, "newMessage", reply)
	})
}

// GetMessages returns the conversation's messages visible to the requesting
// user, sorted ascending by timestamp. An unknown conversation yields an
// empty slice, not an error.
func (cs *ChatService) GetMessages(ctx context.Context, userID, conversationID string) ([]models.Message, error) {
	all, err := cs.scanMessages(ctx)
	if err != nil {
		return nil, err
	}

	messages := make([]models.Message, 0)
	for _, msg := range all {
		if msg.ConversationID != conversationID {
			continue
		}
		if msg.SenderID != userID && msg.Receiver != userID {
			continue
		}
		messages = append(messages, msg)
	}

	sortByTimestamp(messages)
	return messages, nil
}

// GetConversations derives one summary per conversation involving the user.
// The AI companion conversation is always present and listed first, with a
// synthesized welcome summary when it has no messages yet.
func (cs *ChatService) GetConversations(ctx context.Context, userID string) ([]models.ConversationSummary, error) {
	all, err := cs.scanMessages(ctx)
	if err != nil {
		return nil, err
	}

	seen := map[string]bool{models.AICompanionID: true}
	ids := []string{models.AICompanionID}
	for _, msg := range all {
		if msg.SenderID != userID && msg.Receiver != userID {
			continue
		}
		if !seen[msg.ConversationID] {
			seen[msg.ConversationID] = true
			ids = append(ids, msg.ConversationID)
		}
	}

	summaries := make([]models.ConversationSummary, 0, len(ids))
	for _, id := range ids {
		summary := models.ConversationSummary{
			ID:     id,
			Name:   models.DefaultHumanName,
			Avatar: models.DefaultHumanAvatar,
			Type:   "human",
		}
		if id == models.AICompanionID {
			summary.Name = models.AICompanionName
			summary.Avatar = models.AICompanionAvatar
			summary.Type = "ai"
			summary.LastMessage = models.AIWelcomeMessage
		}

		var last models.LastMessage
		found, err := cs.KV.Get(ctx, models.LastMessageKey(id), &last)
		if err != nil {
			return nil, err
		}
		if found {
			summary.LastMessage = last.Text
			summary.Timestamp = last.Timestamp
		}

		summaries = append(summaries, summary)
	}
	return summaries, nil
}

func (cs *ChatService) scanMessages(ctx context.Context) ([]models.Message, error) {
	raws, err := cs.KV.GetByPrefix(ctx, models.MessagePrefix)
	if err != nil {
		return nil, err
	}

	messages := make([]models.Message, 0, len(raws))
	for _, raw := range raws {
		var msg models.Message
		if err := json.Unmarshal(raw, &msg); err != nil {
			log.Printf("Skipping malformed message record: %v", err)
			continue
		}
		messages = append(messages, msg)
	}
	return messages, nil
}

// sortByTimestamp orders messages ascending by creation time; equal
// timestamps keep their scan order.
func sortByTimestamp(messages []models.Message) {
	sort.SliceStable(messages, func(i, j int) bool {
		return parseTimestamp(messages[i].Timestamp).Before(parseTimestamp(messages[j].Timestamp))
	})
}

func parseTimestamp(value string) time.Time {
	ts, err := time.Parse(time.RFC3339Nano, value)
	if err != nil {
		return time.Time{}
	}
	return ts
}

func (cs *ChatService) broadcast(room, event string, payload interface{}) {
	if cs.Notifier != nil {
		cs.Notifier.BroadcastToRoom(room, event, payload)
	}
}
