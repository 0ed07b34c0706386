package models

// AICompanionID is the reserved participant identifier for the scripted AI
// companion. Messages addressed to it trigger an automatic reply.
const AICompanionID = "ai-companion"

// Display persona for the AI companion conversation.
const (
	AICompanionName    = "Meu Elo"
	AICompanionAvatar  = "🤖"
	AIWelcomeMessage   = "Estou aqui sempre que precisar!"
	DefaultHumanName   = "Outro Usuário"
	DefaultHumanAvatar = "👤"
)

// Message is a single immutable chat message. Ordering within a conversation
// is by timestamp ascending.
type Message struct {
	ID             string `json:"id"`
	ConversationID string `json:"conversationId"`
	SenderID       string `json:"senderId"`
	Receiver       string `json:"receiver"`
	Text           string `json:"text"`
	Timestamp      string `json:"timestamp"`
}

// LastMessage is the denormalized per-conversation record updated on every
// send so conversation lists can render without scanning messages.
type LastMessage struct {
	Text      string `json:"text"`
	Timestamp string `json:"timestamp"`
}

// ConversationSummary is the derived per-conversation view returned by the
// conversations endpoint.
type ConversationSummary struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Avatar      string `json:"avatar"`
	LastMessage string `json:"lastMessage"`
	Timestamp   string `json:"timestamp"`
	Unread      int    `json:"unread"`
	Type        string `json:"type"`
}

// MessageKey builds the KV key for a message record.
func MessageKey(messageID string) string {
	return "message:" + messageID
}

// MessagePrefix is the KV prefix shared by all message records.
const MessagePrefix = "message:"

// LastMessageKey builds the KV key for a conversation's denormalized last
// message.
func LastMessageKey(conversationID string) string {
	return "conversation:" + conversationID + ":lastMessage"
}
