package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"elo_server/models"
	"elo_server/services"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDiscoverServer(t *testing.T) (*mux.Router, *services.MemoryKV, string, string) {
	t.Helper()

	kv := services.NewMemoryKV()
	auth := &services.AuthService{KV: kv, JWTSecret: []byte("test-secret"), TokenTTL: time.Hour}
	profile := &services.ProfileService{KV: kv}
	discover := &services.DiscoverService{KV: kv}

	user, err := auth.SignUp(context.Background(), "ana@example.com", "senha123", "Ana")
	require.NoError(t, err)
	session, _, err := auth.SignIn(context.Background(), "ana@example.com", "senha123")
	require.NoError(t, err)

	controller := NewDiscoverController(auth, profile, discover)
	r := mux.NewRouter()
	r.HandleFunc("/discover", controller.HandleNextCandidate).Methods("GET")
	r.HandleFunc("/discover/filters", controller.HandleUpdateFilters).Methods("PUT")
	r.HandleFunc("/discover/filters/reset", controller.HandleResetFilters).Methods("POST")
	r.HandleFunc("/matches", controller.HandleAct).Methods("POST")

	return r, kv, user.ID, "Bearer " + session.AccessToken
}

type discoverResponse struct {
	Profile     *models.CandidateProfile `json:"profile"`
	MatchesLeft int                      `json:"matchesLeft"`
}

func getNext(t *testing.T, r *mux.Router, token string) discoverResponse {
	t.Helper()
	recorder := doRequest(r, "GET", "/discover", token, "")
	require.Equal(t, http.StatusOK, recorder.Code)

	var body discoverResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	return body
}

func TestNextCandidateReturnsSeededHead(t *testing.T) {
	r, _, _, token := newDiscoverServer(t)

	body := getNext(t, r, token)
	require.NotNil(t, body.Profile)
	assert.Equal(t, "user1", body.Profile.ID)
	assert.Equal(t, models.FreeDailySwipes, body.MatchesLeft)
}

func TestFilterChangesIgnoredForFreeAccounts(t *testing.T) {
	r, _, _, token := newDiscoverServer(t)

	// user1 sits 5km away; a 1km cap would hide it if the filter applied.
	recorder := doRequest(r, "PUT", "/discover/filters", token, `{"maxDistance":1,"ageRange":[18,50]}`)
	require.Equal(t, http.StatusOK, recorder.Code)

	body := getNext(t, r, token)
	require.NotNil(t, body.Profile)
	assert.Equal(t, "user1", body.Profile.ID)
}

func TestFilterChangesApplyForPremiumAccounts(t *testing.T) {
	r, kv, userID, token := newDiscoverServer(t)

	profile := models.DefaultProfile(userID, "ana@example.com", "Ana")
	profile.IsPremium = true
	require.NoError(t, kv.Set(context.Background(), models.UserKey(userID), profile))

	recorder := doRequest(r, "PUT", "/discover/filters", token, `{"maxDistance":1,"ageRange":[18,50]}`)
	require.Equal(t, http.StatusOK, recorder.Code)

	body := getNext(t, r, token)
	assert.Nil(t, body.Profile)

	recorder = doRequest(r, "POST", "/discover/filters/reset", token, "")
	require.Equal(t, http.StatusOK, recorder.Code)

	body = getNext(t, r, token)
	require.NotNil(t, body.Profile)
	assert.Equal(t, "user1", body.Profile.ID)
}

func TestActEndpoint(t *testing.T) {
	r, _, _, token := newDiscoverServer(t)

	t.Run("like returns match id", func(t *testing.T) {
		recorder := doRequest(r, "POST", "/matches", token, `{"targetUserId":"user1","action":"like"}`)
		require.Equal(t, http.StatusOK, recorder.Code)

		var body map[string]interface{}
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
		assert.NotEmpty(t, body["matchId"])
	})

	t.Run("invalid action rejected", func(t *testing.T) {
		recorder := doRequest(r, "POST", "/matches", token, `{"targetUserId":"user2","action":"superlike"}`)
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})

	t.Run("quota exhaustion", func(t *testing.T) {
		for i := 0; i < models.FreeDailySwipes-1; i++ {
			recorder := doRequest(r, "POST", "/matches", token, `{"targetUserId":"any","action":"pass"}`)
			require.Equal(t, http.StatusOK, recorder.Code)
		}
		recorder := doRequest(r, "POST", "/matches", token, `{"targetUserId":"any","action":"pass"}`)
		assert.Equal(t, http.StatusTooManyRequests, recorder.Code)
	})
}
