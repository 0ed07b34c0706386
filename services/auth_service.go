package services

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"elo_server/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// AuthService is the identity collaborator: it creates accounts, verifies
// credentials, and issues/validates bearer session tokens.
type AuthService struct {
	KV        KVStore
	JWTSecret []byte
	TokenTTL  time.Duration
}

// credential is the stored signup record for an email address.
type credential struct {
	UserID       string `json:"userId"`
	Email        string `json:"email"`
	PasswordHash string `json:"passwordHash"`
}

// User is the identity view of an account returned by signup/signin.
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// Session is an issued bearer session.
type Session struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresAt   int64  `json:"expires_at"`
}

// SignUp creates an account and seeds its profile record with the default
// fields, including the AI companion defaults.
func (as *AuthService) SignUp(ctx context.Context, email, password, name string) (*User, error) {
	if email == "" || password == "" || name == "" {
		return nil, NewValidationError("Email, password e nome são obrigatórios")
	}

	var existing credential
	found, err := as.KV.Get(ctx, models.CredentialKey(email), &existing)
	if err != nil {
		return nil, err
	}
	if found {
		return nil, NewValidationError("Email já cadastrado")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, upstream("hash password", err)
	}

	userID := uuid.NewString()
	cred := credential{UserID: userID, Email: email, PasswordHash: string(hash)}
	if err := as.KV.Set(ctx, models.CredentialKey(email), cred); err != nil {
		return nil, err
	}

	profile := models.DefaultProfile(userID, email, name)
	if err := as.KV.Set(ctx, models.UserKey(userID), profile); err != nil {
		return nil, err
	}

	log.Printf("Created account %s for %s", userID, email)
	return &User{ID: userID, Email: email, Name: name}, nil
}

// SignIn verifies the credential and issues a session token.
func (as *AuthService) SignIn(ctx context.Context, email, password string) (*Session, *User, error) {
	if email == "" || password == "" {
		return nil, nil, NewValidationError("Email e password são obrigatórios")
	}

	var cred credential
	found, err := as.KV.Get(ctx, models.CredentialKey(email), &cred)
	if err != nil {
		return nil, nil, err
	}
	if !found {
		return nil, nil, ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(cred.PasswordHash), []byte(password)); err != nil {
		return nil, nil, ErrUnauthorized
	}

	expiresAt := time.Now().Add(as.TokenTTL)
	claims := jwt.RegisteredClaims{
		Subject:   cred.UserID,
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(as.JWTSecret)
	if err != nil {
		return nil, nil, upstream("sign token", err)
	}

	name := ""
	var profile models.UserProfile
	if found, err := as.KV.Get(ctx, models.UserKey(cred.UserID), &profile); err == nil && found {
		name = profile.Name
	}

	session := &Session{AccessToken: signed, TokenType: "bearer", ExpiresAt: expiresAt.Unix()}
	return session, &User{ID: cred.UserID, Email: cred.Email, Name: name}, nil
}

// UserIDFromToken resolves the authenticated user from an Authorization
// header. Absence or invalidity of the token yields ErrUnauthorized.
func (as *AuthService) UserIDFromToken(authorization string) (string, error) {
	if authorization == "" {
		return "", ErrUnauthorized
	}
	parts := strings.SplitN(authorization, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
		return "", ErrUnauthorized
	}

	claims := &jwt.RegisteredClaims{}
	parsed, err := jwt.ParseWithClaims(parts[1], claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return as.JWTSecret, nil
	})
	if err != nil || !parsed.Valid || claims.Subject == "" {
		return "", ErrUnauthorized
	}
	return claims.Subject, nil
}
