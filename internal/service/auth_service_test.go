package service

import (
	"context"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/sanuei/YoutubePlanner/internal/apperr"
	"github.com/sanuei/YoutubePlanner/internal/auth"
	"github.com/sanuei/YoutubePlanner/internal/config"
	"github.com/sanuei/YoutubePlanner/internal/dto"
)

func newAuthService(store *fakeStore) *AuthService {
	return &AuthService{
		Users: store,
		Tokens: auth.NewManager(config.JWTConfig{
			Secret:     "test-secret",
			AccessTTL:  time.Hour,
			RefreshTTL: 24 * time.Hour,
		}),
		Logger: zap.NewNop(),
	}
}

func TestRegisterAndLogin(t *testing.T) {
	store := newFakeStore()
	svc := newAuthService(store)
	ctx := context.Background()

	user, err := svc.Register(ctx, dto.RegisterRequest{
		Username: "alice",
		Password: "secret123",
		Email:    "alice@example.com",
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if user.UserID == 0 || user.Username != "alice" {
		t.Fatalf("unexpected user: %+v", user)
	}

	tokens, err := svc.Login(ctx, dto.LoginRequest{Username: "alice", Password: "secret123"})
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if tokens.AccessToken == "" || tokens.RefreshToken == "" {
		t.Fatal("expected both tokens")
	}
	if tokens.User == nil || tokens.User.UserID != user.UserID {
		t.Fatalf("unexpected token user: %+v", tokens.User)
	}
	if tokens.ExpiresIn != 3600 {
		t.Fatalf("expires_in = %d, want 3600", tokens.ExpiresIn)
	}
}

func TestRegisterDuplicateUsername(t *testing.T) {
	store := newFakeStore()
	svc := newAuthService(store)
	ctx := context.Background()

	req := dto.RegisterRequest{Username: "alice", Password: "secret123", Email: "a@example.com"}
	if _, err := svc.Register(ctx, req); err != nil {
		t.Fatalf("first register: %v", err)
	}
	req.Email = "other@example.com"
	_, err := svc.Register(ctx, req)
	if !apperr.IsKind(err, apperr.KindConflict) {
		t.Fatalf("want conflict, got %v", err)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	store := newFakeStore()
	svc := newAuthService(store)
	ctx := context.Background()

	if _, err := svc.Register(ctx, dto.RegisterRequest{Username: "alice", Password: "secret123", Email: "a@example.com"}); err != nil {
		t.Fatalf("first register: %v", err)
	}
	_, err := svc.Register(ctx, dto.RegisterRequest{Username: "bob", Password: "secret123", Email: "a@example.com"})
	if !apperr.IsKind(err, apperr.KindConflict) {
		t.Fatalf("want conflict, got %v", err)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	store := newFakeStore()
	svc := newAuthService(store)
	ctx := context.Background()

	if _, err := svc.Register(ctx, dto.RegisterRequest{Username: "alice", Password: "secret123", Email: "a@example.com"}); err != nil {
		t.Fatalf("register: %v", err)
	}

	for _, req := range []dto.LoginRequest{
		{Username: "alice", Password: "wrong"},
		{Username: "nobody", Password: "secret123"},
	} {
		_, err := svc.Login(ctx, req)
		if !apperr.IsKind(err, apperr.KindUnauthorized) {
			t.Fatalf("login %q: want unauthorized, got %v", req.Username, err)
		}
	}
}

func TestRefreshToken(t *testing.T) {
	store := newFakeStore()
	svc := newAuthService(store)
	ctx := context.Background()

	if _, err := svc.Register(ctx, dto.RegisterRequest{Username: "alice", Password: "secret123", Email: "a@example.com"}); err != nil {
		t.Fatalf("register: %v", err)
	}
	tokens, err := svc.Login(ctx, dto.LoginRequest{Username: "alice", Password: "secret123"})
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	refreshed, err := svc.RefreshToken(ctx, tokens.RefreshToken)
	if err != nil {
		t.Fatalf("refresh: %v", err)
	}
	if refreshed.AccessToken == "" {
		t.Fatal("expected new access token")
	}

	if _, err := svc.RefreshToken(ctx, "not-a-token"); !apperr.IsKind(err, apperr.KindUnauthorized) {
		t.Fatalf("want unauthorized, got %v", err)
	}
}
