package service

import (
	"context"
	"testing"

	apperrors "github.com/kemetlearn/kemet_service/internal/errors"
	"github.com/kemetlearn/kemet_service/internal/store"
)

func TestLoginRejectsMalformedEmail(t *testing.T) {
	s := NewAuthService(store.NewMemoryStore())

	for _, email := range []string{"", "plain", "a@b", "a b@c.com", "@c.com"} {
		_, err := s.Login(context.Background(), email)
		if err == nil {
			t.Errorf("expected rejection for %q", email)
			continue
		}
		appErr, ok := err.(*apperrors.AppError)
		if !ok || appErr.Code != apperrors.ErrValidation {
			t.Errorf("expected validation error for %q, got %v", email, err)
		}
	}
}

func TestLoginResolveLogout(t *testing.T) {
	s := NewAuthService(store.NewMemoryStore())
	ctx := context.Background()

	session, err := s.Login(ctx, "learner@example.com")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if session.Token == "" {
		t.Fatal("expected a non-empty token")
	}

	if got := s.Resolve(ctx, session.Token); got != "learner@example.com" {
		t.Errorf("expected identity from token, got %q", got)
	}

	if err := s.Logout(ctx, session.Token); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got := s.Resolve(ctx, session.Token); got != "" {
		t.Errorf("expected empty identity after logout, got %q", got)
	}
}

func TestResolveUnknownToken(t *testing.T) {
	s := NewAuthService(store.NewMemoryStore())

	if got := s.Resolve(context.Background(), "no-such-token"); got != "" {
		t.Errorf("expected empty identity, got %q", got)
	}
	if got := s.Resolve(context.Background(), ""); got != "" {
		t.Errorf("expected empty identity for empty token, got %q", got)
	}
}

func TestLogoutUnknownTokenIsNoOp(t *testing.T) {
	s := NewAuthService(store.NewMemoryStore())

	if err := s.Logout(context.Background(), "no-such-token"); err != nil {
		t.Errorf("unexpected err: %v", err)
	}
	if err := s.Logout(context.Background(), ""); err != nil {
		t.Errorf("unexpected err: %v", err)
	}
}
