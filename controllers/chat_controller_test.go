package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"elo_server/services"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) (*mux.Router, string) {
	t.Helper()

	kv := services.NewMemoryKV()
	auth := &services.AuthService{KV: kv, JWTSecret: []byte("test-secret"), TokenTTL: time.Hour}
	chat := services.NewChatService(kv)
	chat.ReplyDelay = time.Millisecond

	_, err := auth.SignUp(context.Background(), "ana@example.com", "senha123", "Ana")
	require.NoError(t, err)
	session, _, err := auth.SignIn(context.Background(), "ana@example.com", "senha123")
	require.NoError(t, err)

	controller := NewChatController(auth, chat)
	r := mux.NewRouter()
	r.HandleFunc("/messages", controller.HandleSendMessage).Methods("POST")
	r.HandleFunc("/messages/{conversationId}", controller.HandleGetMessages).Methods("GET")
	r.HandleFunc("/conversations", controller.HandleGetConversations).Methods("GET")

	return r, "Bearer " + session.AccessToken
}

func doRequest(r *mux.Router, method, path, token, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if token != "" {
		req.Header.Set("Authorization", token)
	}
	recorder := httptest.NewRecorder()
	r.ServeHTTP(recorder, req)
	return recorder
}

func TestEndpointsRequireAuth(t *testing.T) {
	r, _ := newTestServer(t)

	paths := []struct {
		method, path string
	}{
		{"GET", "/conversations"},
		{"GET", "/messages/conv1"},
		{"POST", "/messages"},
	}
	for _, tc := range paths {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			recorder := doRequest(r, tc.method, tc.path, "", `{}`)
			assert.Equal(t, http.StatusUnauthorized, recorder.Code)

			var body map[string]string
			require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
			assert.NotEmpty(t, body["error"])
		})
	}
}

func TestSendAndFetchMessages(t *testing.T) {
	r, token := newTestServer(t)

	recorder := doRequest(r, "POST", "/messages", token, `{"conversationId":"conv1","text":"oi","receiver":"bob"}`)
	require.Equal(t, http.StatusOK, recorder.Code)

	var sendBody struct {
		Message struct {
			ID   string `json:"id"`
			Text string `json:"text"`
		} `json:"message"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &sendBody))
	assert.NotEmpty(t, sendBody.Message.ID)
	assert.Equal(t, "oi", sendBody.Message.Text)

	recorder = doRequest(r, "GET", "/messages/conv1", token, "")
	require.Equal(t, http.StatusOK, recorder.Code)

	var listBody struct {
		Messages []struct {
			Text string `json:"text"`
		} `json:"messages"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &listBody))
	require.Len(t, listBody.Messages, 1)
	assert.Equal(t, "oi", listBody.Messages[0].Text)
}

func TestSendMessageValidatesBody(t *testing.T) {
	r, token := newTestServer(t)

	t.Run("missing receiver", func(t *testing.T) {
		recorder := doRequest(r, "POST", "/messages", token, `{"conversationId":"conv1","text":"oi"}`)
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})

	t.Run("empty text", func(t *testing.T) {
		recorder := doRequest(r, "POST", "/messages", token, `{"conversationId":"conv1","text":"   ","receiver":"bob"}`)
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}

func TestConversationsEndpoint(t *testing.T) {
	r, token := newTestServer(t)

	recorder := doRequest(r, "GET", "/conversations", token, "")
	require.Equal(t, http.StatusOK, recorder.Code)

	var body struct {
		Conversations []struct {
			ID   string `json:"id"`
			Type string `json:"type"`
		} `json:"conversations"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	require.NotEmpty(t, body.Conversations)
	assert.Equal(t, "ai-companion", body.Conversations[0].ID)
	assert.Equal(t, "ai", body.Conversations[0].Type)
}
