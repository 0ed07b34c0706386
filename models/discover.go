package models

// CandidateProfile is a discovery-feed profile eligible for a like/pass
// action.
type CandidateProfile struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Age       int    `json:"age"`
	Avatar    string `json:"avatar"`
	Location  string `json:"location"`
	Job       string `json:"job"`
	Education string `json:"education"`
	Height    string `json:"height"`
	Bio       string `json:"bio"`
	Distance  int    `json:"distance"`
	Smoker    bool   `json:"smoker"`
	Drinker   bool   `json:"drinker"`
	Sports    bool   `json:"sports"`
}

// Lifestyle holds the boolean discovery toggles. An active toggle is a
// requirement; inactive toggles do not constrain candidates.
type Lifestyle struct {
	NonSmoker     bool `json:"nonSmoker"`
	SocialDrinker bool `json:"socialDrinker"`
	Active        bool `json:"active"`
}

// DiscoverFilters narrows which candidates are visible. It never mutates the
// underlying candidate queue.
type DiscoverFilters struct {
	MaxDistance int       `json:"maxDistance"`
	AgeRange    [2]int    `json:"ageRange"`
	Lifestyle   Lifestyle `json:"lifestyle"`
}

// FreeDailySwipes is the daily like/pass allotment for non-premium accounts.
const FreeDailySwipes = 5

// Widest spans selectable in the filter sheet.
const (
	MaxFilterDistance = 200
	MinFilterAge      = 18
	MaxFilterAge      = 100
)

// DefaultFilters returns the filter set applied to every viewer until
// changed (and always substituted for non-premium viewers).
func DefaultFilters() DiscoverFilters {
	return DiscoverFilters{
		MaxDistance: 50,
		AgeRange:    [2]int{18, 50},
	}
}

// WidestFilters returns the "reset filters" state: widest age span, maximum
// distance, no lifestyle toggles.
func WidestFilters() DiscoverFilters {
	return DiscoverFilters{
		MaxDistance: MaxFilterDistance,
		AgeRange:    [2]int{MinFilterAge, MaxFilterAge},
	}
}

// DiscoverState is the per-viewer discovery record: the remaining candidate
// queue, the remaining swipe quota, and the active filters.
type DiscoverState struct {
	Queue     []CandidateProfile `json:"queue"`
	Remaining int                `json:"remaining"`
	Filters   DiscoverFilters    `json:"filters"`
}

// Match records a like action. Every like is recorded independently; there is
// no reciprocal-match detection.
type Match struct {
	ID           string `json:"id"`
	UserID       string `json:"userId"`
	TargetUserID string `json:"targetUserId"`
	CreatedAt    string `json:"createdAt"`
}

// DefaultDeck returns the seed candidate queue presented to a new viewer.
func DefaultDeck() []CandidateProfile {
	return []CandidateProfile{
		{
			ID:        "user1",
			Name:      "Juliana",
			Age:       26,
			Avatar:    "👩",
			Location:  "Rio de Janeiro, RJ",
			Job:       "Designer",
			Education: "PUC-RIO",
			Height:    "1.65m",
			Bio:       "Amo café, design e gatos. Procurando alguém para dividir a conta da Netflix.",
			Distance:  5,
			Drinker:   true,
		},
		{
			ID:        "user2",
			Name:      "Pedro",
			Age:       30,
			Avatar:    "👨",
			Location:  "São Paulo, SP",
			Job:       "Engenheiro",
			Education: "USP",
			Height:    "1.80m",
			Bio:       "Engenheiro de dia, gamer de noite. Bora jogar?",
			Distance:  12,
			Sports:    true,
		},
		{
			ID:        "user3",
			Name:      "Carla",
			Age:       28,
			Avatar:    "👧",
			Location:  "Belo Horizonte, MG",
			Job:       "Médica",
			Education: "UFMG",
			Height:    "1.70m",
			Bio:       "Plantões intermináveis, mas sempre arrumo tempo para um bom vinho.",
			Distance:  45,
			Drinker:   true,
			Sports:    true,
		},
		{
			ID:        "user4",
			Name:      "Marcos",
			Age:       35,
			Avatar:    "🧔",
			Location:  "Curitiba, PR",
			Job:       "Chef",
			Education: "Le Cordon Bleu",
			Height:    "1.78m",
			Bio:       "Cozinho melhor que sua mãe. Duvida?",
			Distance:  80,
			Smoker:    true,
			Drinker:   true,
		},
	}
}

// DiscoverKey builds the KV key for a viewer's discovery state.
func DiscoverKey(userID string) string {
	return "discover:" + userID
}

// MatchKey builds the KV key for a match record.
func MatchKey(matchID string) string {
	return "match:" + matchID
}
