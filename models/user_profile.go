package models

import "time"

// AITraits holds the tunable personality sliders for the AI companion.
type AITraits struct {
	Formality   int `json:"formality"`
	Humor       int `json:"humor"`
	Proactivity int `json:"proactivity"`
}

// UserProfile defines the structure for user profiles stored in the KV store.
type UserProfile struct {
	ID                 string   `json:"id"`
	Email              string   `json:"email"`
	Name               string   `json:"name"`
	Avatar             string   `json:"avatar"`
	Location           string   `json:"location"`
	IsPremium          bool     `json:"isPremium"`
	MemberSince        string   `json:"memberSince"`
	Bio                string   `json:"bio"`
	Job                string   `json:"job"`
	Education          string   `json:"education"`
	Height             string   `json:"height"`
	BodyType           string   `json:"bodyType"`
	RelationshipStatus string   `json:"relationshipStatus"`
	Religion           string   `json:"religion"`
	Languages          []string `json:"languages"`
	Interests          []string `json:"interests"`
	Habits             []string `json:"habits"`
	IdealMatch         string   `json:"idealMatch"`
	NonNegotiables     []string `json:"nonNegotiables"`

	// AI companion configuration
	AICompanionName        string   `json:"aiCompanionName"`
	AICompanionPersonality string   `json:"aiCompanionPersonality"`
	AICompanionAvatar      string   `json:"aiCompanionAvatar"`
	AITraits               AITraits `json:"aiTraits"`
	AIMemory               string   `json:"aiMemory"`
	AITopics               []string `json:"aiTopics"`
}

// DefaultProfile returns the profile record seeded at signup.
func DefaultProfile(id, email, name string) UserProfile {
	return UserProfile{
		ID:             id,
		Email:          email,
		Name:           name,
		Avatar:         "👤",
		MemberSince:    time.Now().UTC().Format(time.RFC3339),
		Languages:      []string{},
		Interests:      []string{},
		Habits:         []string{},
		NonNegotiables: []string{},

		AICompanionName:        "Meu Elo",
		AICompanionPersonality: "amoroso",
		AICompanionAvatar:      "🤖",
		AITraits:               AITraits{Formality: 50, Humor: 50, Proactivity: 50},
		AIMemory:               "medium",
		AITopics:               []string{},
	}
}

// UserKey builds the KV key for a user profile record.
func UserKey(userID string) string {
	return "user:" + userID
}

// CredentialKey builds the KV key for a signup credential record.
func CredentialKey(email string) string {
	return "cred:" + email
}
