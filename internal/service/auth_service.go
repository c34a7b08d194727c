package service

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"time"

	"github.com/google/uuid"

	"github.com/kemetlearn/kemet_service/internal/errors"
	"github.com/kemetlearn/kemet_service/internal/store"
)

// emailPattern is the only "verification" a login gets: any format-valid
// email is accepted unconditionally. This mirrors the mocked account model;
// there are no passwords and no server-side verification.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// User is the entire account model.
type User struct {
	Email string `json:"email"`
}

// Session pairs an opaque token with the identity it belongs to.
type Session struct {
	Token     string    `json:"token"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// AuthService issues and resolves mock sessions through the key-value
// store.
type AuthService struct {
	kv store.KV
}

// NewAuthService creates a new auth service.
func NewAuthService(kv store.KV) *AuthService {
	return &AuthService{kv: kv}
}

func sessionKey(token string) string {
	return fmt.Sprintf("session:%s", token)
}

// Login accepts any format-valid email and returns a new session.
func (s *AuthService) Login(ctx context.Context, email string) (*Session, error) {
	if !emailPattern.MatchString(email) {
		return nil, errors.Validation("invalid email address")
	}

	session := &Session{
		Token:     uuid.New().String(),
		Email:     email,
		CreatedAt: time.Now().UTC(),
	}

	data, err := json.Marshal(session)
	if err != nil {
		return nil, errors.InternalWrap("failed to encode session", err)
	}
	if err := s.kv.Set(ctx, sessionKey(session.Token), string(data)); err != nil {
		return nil, errors.Wrap(errors.ErrStorageService, "failed to save session", err)
	}

	return session, nil
}

// Logout deletes the session for token. Unknown tokens are a no-op.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	if err := s.kv.Delete(ctx, sessionKey(token)); err != nil {
		return errors.Wrap(errors.ErrStorageService, "failed to delete session", err)
	}
	return nil
}

// Resolve returns the identity (email) for token, or an empty string when
// the token is absent or invalid. Callers fall back to the guest identity.
func (s *AuthService) Resolve(ctx context.Context, token string) string {
	if token == "" {
		return ""
	}

	raw, err := s.kv.Get(ctx, sessionKey(token))
	if err != nil {
		return ""
	}

	var session Session
	if err := json.Unmarshal([]byte(raw), &session); err != nil {
		return ""
	}
	return session.Email
}
