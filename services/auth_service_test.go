package services

import (
	"context"
	"testing"
	"time"

	"elo_server/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAuth() (*AuthService, *MemoryKV) {
	kv := NewMemoryKV()
	return &AuthService{KV: kv, JWTSecret: []byte("test-secret"), TokenTTL: time.Hour}, kv
}

func TestSignUpSeedsProfile(t *testing.T) {
	as, kv := newTestAuth()
	ctx := context.Background()

	user, err := as.SignUp(ctx, "ana@example.com", "senha123", "Ana")
	require.NoError(t, err)
	require.NotEmpty(t, user.ID)
	assert.Equal(t, "ana@example.com", user.Email)

	var profile models.UserProfile
	found, err := kv.Get(ctx, models.UserKey(user.ID), &profile)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "Ana", profile.Name)
	assert.Equal(t, "👤", profile.Avatar)
	assert.False(t, profile.IsPremium)
	assert.Equal(t, "Meu Elo", profile.AICompanionName)
	assert.Equal(t, "amoroso", profile.AICompanionPersonality)
	assert.Equal(t, models.AITraits{Formality: 50, Humor: 50, Proactivity: 50}, profile.AITraits)
	assert.Equal(t, "medium", profile.AIMemory)
	assert.NotEmpty(t, profile.MemberSince)
}

func TestSignUpValidation(t *testing.T) {
	as, _ := newTestAuth()
	ctx := context.Background()

	cases := []struct {
		name                  string
		email, password, user string
	}{
		{"missing email", "", "senha123", "Ana"},
		{"missing password", "ana@example.com", "", "Ana"},
		{"missing name", "ana@example.com", "senha123", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := as.SignUp(ctx, tc.email, tc.password, tc.user)
			var ve *ValidationError
			require.ErrorAs(t, err, &ve)
		})
	}

	t.Run("duplicate email", func(t *testing.T) {
		_, err := as.SignUp(ctx, "ana@example.com", "senha123", "Ana")
		require.NoError(t, err)
		_, err = as.SignUp(ctx, "ana@example.com", "outra", "Ana 2")
		var ve *ValidationError
		require.ErrorAs(t, err, &ve)
	})
}

func TestSignInAndTokenRoundTrip(t *testing.T) {
	as, _ := newTestAuth()
	ctx := context.Background()

	user, err := as.SignUp(ctx, "ana@example.com", "senha123", "Ana")
	require.NoError(t, err)

	session, signedIn, err := as.SignIn(ctx, "ana@example.com", "senha123")
	require.NoError(t, err)
	require.NotEmpty(t, session.AccessToken)
	assert.Equal(t, "bearer", session.TokenType)
	assert.Equal(t, user.ID, signedIn.ID)
	assert.Equal(t, "Ana", signedIn.Name)

	userID, err := as.UserIDFromToken("Bearer " + session.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, user.ID, userID)
}

func TestSignInRejectsBadCredentials(t *testing.T) {
	as, _ := newTestAuth()
	ctx := context.Background()

	_, err := as.SignUp(ctx, "ana@example.com", "senha123", "Ana")
	require.NoError(t, err)

	t.Run("wrong password", func(t *testing.T) {
		_, _, err := as.SignIn(ctx, "ana@example.com", "errada")
		require.ErrorIs(t, err, ErrUnauthorized)
	})

	t.Run("unknown email", func(t *testing.T) {
		_, _, err := as.SignIn(ctx, "ninguem@example.com", "senha123")
		require.ErrorIs(t, err, ErrUnauthorized)
	})
}

func TestUserIDFromTokenRejectsInvalid(t *testing.T) {
	as, _ := newTestAuth()

	cases := []struct {
		name   string
		header string
	}{
		{"missing header", ""},
		{"not bearer", "Basic abc"},
		{"empty token", "Bearer "},
		{"garbage token", "Bearer not-a-jwt"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := as.UserIDFromToken(tc.header)
			require.ErrorIs(t, err, ErrUnauthorized)
		})
	}

	t.Run("wrong secret", func(t *testing.T) {
		other := &AuthService{KV: NewMemoryKV(), JWTSecret: []byte("other-secret"), TokenTTL: time.Hour}
		_, err := other.SignUp(context.Background(), "ana@example.com", "senha123", "Ana")
		require.NoError(t, err)
		session, _, err := other.SignIn(context.Background(), "ana@example.com", "senha123")
		require.NoError(t, err)

		_, err = as.UserIDFromToken("Bearer " + session.AccessToken)
		require.ErrorIs(t, err, ErrUnauthorized)
	})
}
